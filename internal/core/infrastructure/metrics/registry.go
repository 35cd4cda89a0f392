// Package metrics 提供基于prometheus的指标注册表
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry 追踪器指标注册表
type Registry struct {
	registry *prometheus.Registry

	// TransitionsTotal 状态转换计数，按指令和结果分类
	TransitionsTotal *prometheus.CounterVec

	// ChampionshipsTotal 当前累计冠军数
	ChampionshipsTotal prometheus.Gauge

	// CurrentSeason 当前待处理赛季
	CurrentSeason prometheus.Gauge
}

// NewRegistry 创建指标注册表并注册所有指标
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		registry: reg,
		TransitionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fbtracker",
			Name:      "transitions_total",
			Help:      "状态转换次数，按指令与结果分类",
		}, []string{"instruction", "result"}),
		ChampionshipsTotal: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "fbtracker",
			Name:      "championships_total",
			Help:      "当前累计冠军数",
		}),
		CurrentSeason: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "fbtracker",
			Name:      "current_season",
			Help:      "当前待处理赛季键",
		}),
	}

	reg.MustRegister(r.TransitionsTotal, r.ChampionshipsTotal, r.CurrentSeason)
	return r
}

// Handler 返回prometheus指标的HTTP处理器
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// ObserveTransition 记录一次状态转换
func (r *Registry) ObserveTransition(instruction string, err error) {
	result := "success"
	if err != nil {
		result = "failure"
	}
	r.TransitionsTotal.WithLabelValues(instruction, result).Inc()
}

// UpdateTrackerState 刷新追踪器状态相关指标
func (r *Registry) UpdateTrackerState(total uint64, season uint16) {
	r.ChampionshipsTotal.Set(float64(total))
	r.CurrentSeason.Set(float64(season))
}
