package api

import (
	"github.com/fbtracker/v1/pkg/types"
)

// APIOptions HTTP API配置选项
type APIOptions struct {
	HTTPPort int  `json:"http_port"` // 监听端口
	Enabled  bool `json:"enabled"`   // 是否启用读取API
}

// Config API配置实现
type Config struct {
	options *APIOptions
}

// New 创建API配置，用户配置覆盖默认值
func New(userConfig *types.UserAPIConfig) *Config {
	options := &APIOptions{
		HTTPPort: defaultHTTPPort,
		Enabled:  defaultEnabled,
	}

	if userConfig != nil {
		if userConfig.HTTPPort != nil {
			options.HTTPPort = *userConfig.HTTPPort
		}
		if userConfig.Enabled != nil {
			options.Enabled = *userConfig.Enabled
		}
	}

	return &Config{options: options}
}

// GetOptions 获取完整的API配置选项
func (c *Config) GetOptions() *APIOptions { return c.options }

// GetHTTPPort 获取监听端口
func (c *Config) GetHTTPPort() int { return c.options.HTTPPort }

// IsEnabled 是否启用API
func (c *Config) IsEnabled() bool { return c.options.Enabled }
