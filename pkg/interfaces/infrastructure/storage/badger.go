// Package storage 提供存储层接口定义
package storage

import (
	"context"
	"time"
)

// Entry 批量写入的键值对
type Entry struct {
	Key   []byte
	Value []byte
}

// BadgerStore BadgerDB键值存储接口
//
// 账户状态的唯一持久化通道。实现必须保证：
// - Get 对不存在的键返回 (nil, nil)
// - Set/Delete 在返回前完成落盘（按配置的同步策略）
// - SetBatch 的全部条目在同一事务内提交，要么全部生效要么全部失败
type BadgerStore interface {
	//-------------------------------------------------------------------------
	// 生命周期管理
	//-------------------------------------------------------------------------

	// Close 关闭数据库连接
	// 确保所有待处理的事务被提交，数据被正确写入磁盘
	// 应用关闭时必须调用此方法以避免数据损坏
	Close() error

	//-------------------------------------------------------------------------
	// 基本键值操作
	//-------------------------------------------------------------------------

	// Get 获取指定键的值
	// 如果键不存在，返回nil值和nil错误
	Get(ctx context.Context, key []byte) ([]byte, error)

	// Set 设置键值对
	// 如果键已存在，将覆盖原有值
	Set(ctx context.Context, key, value []byte) error

	// SetWithTTL 设置键值对并指定过期时间
	// ttl为0表示永不过期
	SetWithTTL(ctx context.Context, key, value []byte, ttl time.Duration) error

	// SetBatch 在单个事务中原子写入多对键值
	SetBatch(ctx context.Context, entries []Entry) error

	// Delete 删除指定键的值
	// 如果键不存在，不会返回错误
	Delete(ctx context.Context, key []byte) error

	// Exists 检查键是否存在
	Exists(ctx context.Context, key []byte) (bool, error)
}
