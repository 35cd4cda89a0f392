// Package constants 追踪器协议常量
//
// 这些常量与历史部署的二进制布局和地址派生结果绑定，
// 修改任何一项都会破坏与既有链上状态的兼容性。
package constants

// 赛季范围与初始状态
const (
	// StartSeason 第一个被追踪的赛季（2010表示2010-11赛季）
	StartSeason uint16 = 2010

	// EndSeason 最后一个被追踪的赛季（2024表示2024-25赛季）
	EndSeason uint16 = 2024

	// SeasonCount 被追踪的赛季总数
	SeasonCount = int(EndSeason-StartSeason) + 1

	// InitialChampionships 追踪起点之前的历史冠军数
	InitialChampionships uint64 = 17
)

// 二进制布局
const (
	// TrackerRecordSize 追踪记录的固定编码长度（8 + 2 + 1字节）
	TrackerRecordSize = 11
)

// 地址派生
const (
	// TrackerSeedTag 单例追踪记录的派生种子
	TrackerSeedTag = "fenerbahce_tracker"

	// DerivedAddressMarker 派生地址域分隔标记
	// 保证派生哈希与普通公钥哈希处于不同的输入域
	DerivedAddressMarker = "TrackerDerivedAddress"

	// DefaultProgramSeed 未显式配置部署标识时使用的默认种子
	DefaultProgramSeed = "fenerbahce_tracker_program_v1"
)

// 指令判别码（请求负载第0字节）
const (
	// InstructionInitialize 初始化追踪器
	InstructionInitialize byte = 0

	// InstructionAdvance 推进一个赛季
	InstructionAdvance byte = 1
)
