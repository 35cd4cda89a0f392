// Package badger 提供基于BadgerDB的存储实现
package badger

import (
	"context"
	"fmt"
	"os"
	"sync/atomic"
	"time"

	badgerdb "github.com/dgraph-io/badger/v3"
	badgerconfig "github.com/fbtracker/v1/internal/config/storage/badger"
	log "github.com/fbtracker/v1/pkg/interfaces/infrastructure/log"
	interfaces "github.com/fbtracker/v1/pkg/interfaces/infrastructure/storage"
)

// Store 实现BadgerStore接口
type Store struct {
	db      *badgerdb.DB
	config  *badgerconfig.Config
	logger  log.Logger
	closing int32
}

var _ interfaces.BadgerStore = (*Store)(nil)

// New 创建新的BadgerStore实例
func New(config *badgerconfig.Config, logger log.Logger) (*Store, error) {
	store := &Store{
		config: config,
		logger: logger,
	}

	var opts badgerdb.Options
	if config.IsInMemory() {
		logger.Infof("🧠 启用内存BadgerDB模式")
		opts = badgerdb.DefaultOptions("").WithInMemory(true)
	} else {
		dataDir := config.GetPath()
		if err := os.MkdirAll(dataDir, 0700); err != nil {
			return nil, fmt.Errorf("无法创建BadgerDB数据目录: %w", err)
		}
		logger.Infof("初始化BadgerDB存储，数据目录: %s", dataDir)

		opts = badgerdb.DefaultOptions(dataDir)
		opts.SyncWrites = config.IsSyncWritesEnabled()
	}

	// 数据量极小，统一压缩缓存配置
	opts.MemTableSize = config.GetMemTableSize()
	opts.NumMemtables = 2
	opts.NumCompactors = 2
	opts.Logger = newBadgerLogger(logger)

	db, err := badgerdb.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("打开BadgerDB失败: %w", err)
	}

	store.db = db
	return store, nil
}

// Close 关闭数据库连接
func (s *Store) Close() error {
	if !atomic.CompareAndSwapInt32(&s.closing, 0, 1) {
		return nil
	}
	s.logger.Info("关闭BadgerDB存储")
	return s.db.Close()
}

// Get 获取指定键的值
// 键不存在时返回(nil, nil)
func (s *Store) Get(ctx context.Context, key []byte) ([]byte, error) {
	var value []byte
	err := s.db.View(func(txn *badgerdb.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if err == badgerdb.ErrKeyNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("读取键失败: %w", err)
	}
	return value, nil
}

// Set 设置键值对
func (s *Store) Set(ctx context.Context, key, value []byte) error {
	return s.SetWithTTL(ctx, key, value, 0)
}

// SetWithTTL 设置键值对并指定过期时间
func (s *Store) SetWithTTL(ctx context.Context, key, value []byte, ttl time.Duration) error {
	if atomic.LoadInt32(&s.closing) == 1 {
		return fmt.Errorf("存储已关闭")
	}
	err := s.db.Update(func(txn *badgerdb.Txn) error {
		entry := badgerdb.NewEntry(key, value)
		if ttl > 0 {
			entry = entry.WithTTL(ttl)
		}
		return txn.SetEntry(entry)
	})
	if err != nil {
		return fmt.Errorf("写入键失败: %w", err)
	}
	return nil
}

// SetBatch 在单个事务中原子写入多对键值
// 任意条目失败则整个事务回滚，不存在部分写入
func (s *Store) SetBatch(ctx context.Context, entries []interfaces.Entry) error {
	if atomic.LoadInt32(&s.closing) == 1 {
		return fmt.Errorf("存储已关闭")
	}
	if len(entries) == 0 {
		return nil
	}
	err := s.db.Update(func(txn *badgerdb.Txn) error {
		for _, entry := range entries {
			if err := txn.SetEntry(badgerdb.NewEntry(entry.Key, entry.Value)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("批量写入失败: %w", err)
	}
	return nil
}

// Delete 删除指定键的值
func (s *Store) Delete(ctx context.Context, key []byte) error {
	err := s.db.Update(func(txn *badgerdb.Txn) error {
		return txn.Delete(key)
	})
	if err != nil && err != badgerdb.ErrKeyNotFound {
		return fmt.Errorf("删除键失败: %w", err)
	}
	return nil
}

// Exists 检查键是否存在
func (s *Store) Exists(ctx context.Context, key []byte) (bool, error) {
	err := s.db.View(func(txn *badgerdb.Txn) error {
		_, err := txn.Get(key)
		return err
	})
	if err == badgerdb.ErrKeyNotFound {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("检查键失败: %w", err)
	}
	return true, nil
}

// badgerLogger 将BadgerDB内部日志桥接到系统日志
type badgerLogger struct {
	logger log.Logger
}

func newBadgerLogger(logger log.Logger) *badgerLogger {
	return &badgerLogger{logger: logger}
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Errorf("[badger] "+format, args...)
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warnf("[badger] "+format, args...)
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	// BadgerDB的info日志过于冗长，降级为debug
	l.logger.Debugf("[badger] "+format, args...)
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debugf("[badger] "+format, args...)
}
