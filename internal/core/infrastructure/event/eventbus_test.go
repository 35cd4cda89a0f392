package event

import (
	"testing"

	corelog "github.com/fbtracker/v1/internal/core/infrastructure/log"
	eventif "github.com/fbtracker/v1/pkg/interfaces/infrastructure/event"
)

func TestPublishSubscribe(t *testing.T) {
	bus := New(corelog.NewNop())

	var received []string
	if err := bus.Subscribe(eventif.TopicSeasonAdvanced, func(addr string) {
		received = append(received, addr)
	}); err != nil {
		t.Fatalf("订阅失败: %v", err)
	}

	bus.Publish(eventif.TopicSeasonAdvanced, "addr-1")
	bus.Publish(eventif.TopicSeasonAdvanced, "addr-2")

	if len(received) != 2 || received[0] != "addr-1" || received[1] != "addr-2" {
		t.Errorf("收到事件 %v, 期望 [addr-1 addr-2]", received)
	}
	if bus.PublishedCount() != 2 {
		t.Errorf("已发布计数 = %d, 期望 2", bus.PublishedCount())
	}
}

func TestTopicsIsolated(t *testing.T) {
	bus := New(corelog.NewNop())

	var initialized, advanced int
	_ = bus.Subscribe(eventif.TopicTrackerInitialized, func(addr string) { initialized++ })
	_ = bus.Subscribe(eventif.TopicSeasonAdvanced, func(addr string) { advanced++ })

	bus.Publish(eventif.TopicTrackerInitialized, "addr")
	bus.Publish(eventif.TopicSeasonAdvanced, "addr")
	bus.Publish(eventif.TopicSeasonAdvanced, "addr")

	if initialized != 1 || advanced != 2 {
		t.Errorf("计数 = (%d, %d), 期望 (1, 2)", initialized, advanced)
	}
}

func TestUnsubscribe(t *testing.T) {
	bus := New(corelog.NewNop())

	var count int
	handler := func(addr string) { count++ }
	_ = bus.Subscribe(eventif.TopicSeasonAdvanced, handler)

	bus.Publish(eventif.TopicSeasonAdvanced, "addr")
	if err := bus.Unsubscribe(eventif.TopicSeasonAdvanced, handler); err != nil {
		t.Fatalf("取消订阅失败: %v", err)
	}
	bus.Publish(eventif.TopicSeasonAdvanced, "addr")

	if count != 1 {
		t.Errorf("回调次数 = %d, 期望 1", count)
	}
}

func TestCloseDropsPublishes(t *testing.T) {
	bus := New(corelog.NewNop())

	var count int
	_ = bus.Subscribe(eventif.TopicTrackerCompleted, func(addr string) { count++ })

	bus.Publish(eventif.TopicTrackerCompleted, "addr")
	bus.Close()
	bus.Publish(eventif.TopicTrackerCompleted, "addr")

	if count != 1 {
		t.Errorf("回调次数 = %d, 期望 1（关闭后静默丢弃）", count)
	}
	if bus.PublishedCount() != 1 {
		t.Errorf("已发布计数 = %d, 期望 1", bus.PublishedCount())
	}
}
