package badger

// BadgerDB存储默认配置值

const (
	// defaultPath 默认数据库路径
	// 原因：统一的数据目录便于管理和备份
	defaultPath = "./data/badger"

	// defaultSyncWrites 默认启用同步写入
	// 原因：账户状态需要强一致性，同步写入确保数据安全性
	// 虽然性能略有损失，但数据完整性更重要
	defaultSyncWrites = true

	// defaultInMemory 默认使用磁盘模式
	defaultInMemory = false

	// defaultMemTableSize 默认内存表大小为8MB
	// 原因：追踪器数据量极小（单条11字节记录加少量账户），
	// 无需BadgerDB默认的64MB内存表
	defaultMemTableSize = 8 << 20 // 8MB
)

func createDefaultBadgerOptions() *BadgerOptions {
	return &BadgerOptions{
		Path:         defaultPath,
		SyncWrites:   defaultSyncWrites,
		InMemory:     defaultInMemory,
		MemTableSize: defaultMemTableSize,
	}
}
