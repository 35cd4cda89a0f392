// Package types 追踪器业务数据结构
//
// 🎯 **设计理念**
// 本文件定义冠军追踪器的核心业务数据结构：持久化的追踪记录
// （TrackerRecord）和静态的赛季历史条目（SeasonEntry）。
//
// 📊 **核心概念**
// - **追踪记录**：全局唯一的持久化状态，记录累计冠军数与赛季进度
// - **赛季条目**：不可变的历史事实，一个赛季对应一条
// - **单例约束**：每个部署只存在一条追踪记录，由派生地址保证
package types

import "fmt"

// TrackerRecord 冠军追踪记录（唯一的持久化实体）
//
// 二进制布局固定为11字节，字段按声明顺序小端编码：
//
//	[0..8)   TotalChampionships  uint64
//	[8..10)  CurrentSeasonKey    uint16
//	[10..11) SeasonsProcessed    uint8
//
// 注意：布局不含版本标记，与历史部署保持字节兼容。
// 如未来需要演进模式，需引入新的派生地址而非修改本布局。
type TrackerRecord struct {
	TotalChampionships uint64 `json:"total_championships"` // 累计冠军数（单调不减）
	CurrentSeasonKey   uint16 `json:"current_season_key"`  // 当前待处理赛季（如2010表示2010-11赛季）
	SeasonsProcessed   uint8  `json:"seasons_processed"`   // 已处理赛季数
}

// SeasonString 返回赛季的人类可读形式，如 "2010-2011"
func (r *TrackerRecord) SeasonString() string {
	return fmt.Sprintf("%d-%d", r.CurrentSeasonKey, r.CurrentSeasonKey+1)
}

// SeasonEntry 单个赛季的静态历史条目
//
// 从内嵌常量表加载，启动时校验一次，运行期永不变更。
// 并列/共享冠军的情况仍以布尔标记表达，不做更细区分。
type SeasonEntry struct {
	SeasonKey uint16 `json:"season_key"` // 赛季键（起始年份）
	Rank      uint8  `json:"rank"`       // 联赛排名（1起）
	Champion  bool   `json:"champion"`   // 是否夺冠
	Points    uint16 `json:"points"`     // 积分
	Narrative string `json:"narrative"`  // 赛季简述
}
