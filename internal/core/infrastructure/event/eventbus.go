// 基于asaskevich/EventBus的事件总线实现
package event

import (
	"sync/atomic"

	evbus "github.com/asaskevich/EventBus"
	eventif "github.com/fbtracker/v1/pkg/interfaces/infrastructure/event"
	log "github.com/fbtracker/v1/pkg/interfaces/infrastructure/log"
)

// Bus 进程内事件总线
//
// 追踪器的事件面很小（初始化、推进、完成三个主题），
// 直接同步分发，订阅回调不得阻塞。
type Bus struct {
	bus       evbus.Bus
	logger    log.Logger
	published uint64 // 已发布事件计数
	closed    atomic.Bool
}

var _ eventif.Bus = (*Bus)(nil)

// New 创建事件总线
func New(logger log.Logger) *Bus {
	return &Bus{
		bus:    evbus.New(),
		logger: logger,
	}
}

// Publish 发布事件到指定主题
func (b *Bus) Publish(topic string, args ...interface{}) {
	if b.closed.Load() {
		return
	}
	atomic.AddUint64(&b.published, 1)
	b.logger.Debugf("发布事件: %s", topic)
	b.bus.Publish(topic, args...)
}

// Subscribe 订阅主题
func (b *Bus) Subscribe(topic string, fn interface{}) error {
	return b.bus.Subscribe(topic, fn)
}

// Unsubscribe 取消订阅
func (b *Bus) Unsubscribe(topic string, fn interface{}) error {
	return b.bus.Unsubscribe(topic, fn)
}

// Close 关闭总线，后续Publish被静默丢弃
func (b *Bus) Close() {
	b.closed.Store(true)
}

// PublishedCount 返回已发布事件总数
func (b *Bus) PublishedCount() uint64 {
	return atomic.LoadUint64(&b.published)
}
