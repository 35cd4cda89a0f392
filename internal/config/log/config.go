package log

import (
	"github.com/fbtracker/v1/pkg/types"
)

// LogOptions 日志配置选项
type LogOptions struct {
	Level      types.LogLevel `json:"level"`       // 日志级别
	File       string         `json:"file"`        // 日志文件路径，空表示仅控制台输出
	MaxSizeMB  int            `json:"max_size_mb"` // 单文件最大体积（MB）
	MaxBackups int            `json:"max_backups"` // 保留的旧文件数量
	Console    bool           `json:"console"`     // 是否输出到控制台
}

// Config 日志配置实现
type Config struct {
	options *LogOptions
}

// New 创建日志配置，用户配置覆盖默认值
func New(userConfig *types.UserLogConfig) *Config {
	options := createDefaultLogOptions()

	if userConfig != nil {
		if userConfig.Level != nil {
			options.Level = types.LogLevel(*userConfig.Level)
		}
		if userConfig.File != nil {
			options.File = *userConfig.File
		}
		if userConfig.MaxSizeMB != nil {
			options.MaxSizeMB = *userConfig.MaxSizeMB
		}
		if userConfig.MaxBackups != nil {
			options.MaxBackups = *userConfig.MaxBackups
		}
		if userConfig.Console != nil {
			options.Console = *userConfig.Console
		}
	}

	return &Config{options: options}
}

// GetOptions 获取完整的日志配置选项
func (c *Config) GetOptions() *LogOptions {
	return c.options
}

// GetLevel 获取日志级别
func (c *Config) GetLevel() types.LogLevel { return c.options.Level }

// GetFile 获取日志文件路径
func (c *Config) GetFile() string { return c.options.File }

// IsConsoleEnabled 是否启用控制台输出
func (c *Config) IsConsoleEnabled() bool { return c.options.Console }
