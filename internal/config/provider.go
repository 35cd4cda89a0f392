// Package config 配置聚合与加载
//
// 每个关注点（日志、存储、API、追踪器）有独立的config.go/defaults.go对，
// 本文件负责从JSON配置文件加载用户配置并分发给各子配置。
package config

import (
	"encoding/json"
	"fmt"
	"os"

	apiconfig "github.com/fbtracker/v1/internal/config/api"
	logconfig "github.com/fbtracker/v1/internal/config/log"
	badgerconfig "github.com/fbtracker/v1/internal/config/storage/badger"
	trackerconfig "github.com/fbtracker/v1/internal/config/tracker"
	"github.com/fbtracker/v1/pkg/types"
)

// Provider 配置提供者
type Provider struct {
	appConfig *types.AppConfig
}

// NewProvider 创建配置提供者
func NewProvider(appConfig *types.AppConfig) *Provider {
	return &Provider{appConfig: appConfig}
}

// LoadFromFile 从JSON文件加载用户配置
//
// 文件不存在不是错误：返回空配置，各子配置使用默认值。
func LoadFromFile(path string) (*types.AppConfig, error) {
	if path == "" {
		return &types.AppConfig{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &types.AppConfig{}, nil
		}
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	var appConfig types.AppConfig
	if err := json.Unmarshal(data, &appConfig); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	return &appConfig, nil
}

// GetLog 获取日志配置
func (p *Provider) GetLog() *logconfig.Config {
	var user *types.UserLogConfig
	if p.appConfig != nil {
		user = p.appConfig.Log
	}
	return logconfig.New(user)
}

// GetBadger 获取BadgerDB存储配置
func (p *Provider) GetBadger() *badgerconfig.Config {
	var user *types.UserStorageConfig
	if p.appConfig != nil {
		user = p.appConfig.Storage
	}
	return badgerconfig.New(user)
}

// GetAPI 获取HTTP API配置
func (p *Provider) GetAPI() *apiconfig.Config {
	var user *types.UserAPIConfig
	if p.appConfig != nil {
		user = p.appConfig.API
	}
	return apiconfig.New(user)
}

// GetTracker 获取追踪器部署配置
func (p *Provider) GetTracker() (*trackerconfig.Config, error) {
	var user *types.UserTrackerConfig
	if p.appConfig != nil {
		user = p.appConfig.Tracker
	}
	return trackerconfig.New(user)
}
