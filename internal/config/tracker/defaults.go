package tracker

// 追踪器默认配置值

const (
	// defaultKeyFile 默认付款密钥文件路径
	defaultKeyFile = "./data/payer.key"
)
