package api

// HTTP API默认配置值

const (
	// defaultHTTPPort 默认监听端口
	defaultHTTPPort = 8545

	// defaultEnabled 默认启用读取API
	defaultEnabled = true
)
