package types

// 用户配置结构
//
// 🔧 零值陷阱处理说明：
// 为了区分"用户未设置"和"用户设置为零值"，可选字段使用指针类型：
// - nil: 用户未在配置文件中设置该字段，使用系统默认值
// - &value: 用户明确设置了该值，即使是零值也会被采用

// AppConfig 应用配置文件的顶层结构（JSON）
type AppConfig struct {
	Log     *UserLogConfig     `json:"log,omitempty"`
	Storage *UserStorageConfig `json:"storage,omitempty"`
	API     *UserAPIConfig     `json:"api,omitempty"`
	Tracker *UserTrackerConfig `json:"tracker,omitempty"`
}

// UserLogConfig 用户日志配置
type UserLogConfig struct {
	Level      *string `json:"level,omitempty"`       // debug | info | warn | error
	File       *string `json:"file,omitempty"`        // 日志文件路径，空表示仅控制台
	MaxSizeMB  *int    `json:"max_size_mb,omitempty"` // 单文件最大体积
	MaxBackups *int    `json:"max_backups,omitempty"` // 保留的旧文件数量
	Console    *bool   `json:"console,omitempty"`     // 是否输出到控制台
}

// UserStorageConfig 用户存储配置
type UserStorageConfig struct {
	DataRoot   *string `json:"data_root,omitempty"`   // 数据根目录，badger位于 {data_root}/badger
	SyncWrites *bool   `json:"sync_writes,omitempty"` // 是否同步写入
	InMemory   *bool   `json:"in_memory,omitempty"`   // 纯内存模式（测试用）
}

// UserAPIConfig 用户HTTP API配置
type UserAPIConfig struct {
	HTTPPort *int  `json:"http_port,omitempty"` // 监听端口
	Enabled  *bool `json:"enabled,omitempty"`   // 是否启用读取API
}

// UserTrackerConfig 用户追踪器配置
type UserTrackerConfig struct {
	ProgramID *string `json:"program_id,omitempty"` // 部署标识（base58），空则使用默认派生值
	KeyFile   *string `json:"key_file,omitempty"`   // 付款密钥文件路径
}
