// Package http 追踪器只读HTTP API
//
// 状态变更只能通过CLI/客户端提交，HTTP面只暴露读取：
// 追踪记录、赛季表、健康检查与prometheus指标。
package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fbtracker/v1/internal/api/http/handlers"
	apiconfig "github.com/fbtracker/v1/internal/config/api"
	"github.com/fbtracker/v1/internal/core/infrastructure/metrics"
	log "github.com/fbtracker/v1/pkg/interfaces/infrastructure/log"
)

// Server 只读API服务器
type Server struct {
	config  *apiconfig.Config
	engine  *gin.Engine
	server  *http.Server
	logger  log.Logger
	handler *handlers.TrackerHandler
	metrics *metrics.Registry
}

// NewServer 创建API服务器并注册路由
func NewServer(
	config *apiconfig.Config,
	handler *handlers.TrackerHandler,
	reg *metrics.Registry,
	logger log.Logger,
) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{
		config:  config,
		engine:  engine,
		logger:  logger,
		handler: handler,
		metrics: reg,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if s.metrics != nil {
		s.engine.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	}

	v1 := s.engine.Group("/api/v1")
	{
		v1.GET("/tracker/state", s.handler.GetState)
		v1.GET("/tracker/seasons", s.handler.GetSeasons)
		v1.GET("/tracker/seasons/:key", s.handler.GetSeason)
	}
}

// Start 启动HTTP监听（非阻塞）
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.config.GetHTTPPort())
	s.server = &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	s.logger.Infof("🌐 HTTP API监听于 %s", addr)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Errorf("HTTP服务器异常退出: %v", err)
		}
	}()
	return nil
}

// Stop 优雅关闭HTTP服务器
func (s *Server) Stop(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	s.logger.Info("关闭HTTP API服务器")
	return s.server.Shutdown(ctx)
}
