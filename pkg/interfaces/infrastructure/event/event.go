// Package event 提供事件总线接口定义
package event

// 追踪器生命周期事件主题
const (
	// TopicTrackerInitialized 追踪器完成初始化
	TopicTrackerInitialized = "tracker.initialized"

	// TopicSeasonAdvanced 赛季成功推进一步
	TopicSeasonAdvanced = "tracker.season_advanced"

	// TopicTrackerCompleted 追踪器到达终态
	TopicTrackerCompleted = "tracker.completed"
)

// Bus 进程内事件总线接口
//
// 订阅回调在发布方goroutine同步执行，回调内不得阻塞。
type Bus interface {
	// Publish 发布事件到指定主题
	Publish(topic string, args ...interface{})

	// Subscribe 订阅主题，fn签名需与发布参数匹配
	Subscribe(topic string, fn interface{}) error

	// Unsubscribe 取消订阅
	Unsubscribe(topic string, fn interface{}) error

	// Close 关闭总线并移除全部订阅
	Close()
}
