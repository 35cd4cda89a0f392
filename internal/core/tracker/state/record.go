// Package state 追踪记录的固定布局二进制编解码
//
// 📊 **二进制布局（11字节，固定偏移）**
//
//	[0..8)   TotalChampionships  uint64 小端
//	[8..10)  CurrentSeasonKey    uint16 小端
//	[10..11) SeasonsProcessed    uint8
//
// 布局没有版本标记，调用方负责在记录的整个生命周期内保持
// 模式一致。这与历史部署字节兼容，属于已知的迁移风险，
// 不在本层"修复"。
package state

import (
	"encoding/binary"
	"fmt"

	"github.com/fbtracker/v1/pkg/constants"
	"github.com/fbtracker/v1/pkg/types"
)

// NewRecord 构造初始状态的追踪记录
func NewRecord() *types.TrackerRecord {
	return &types.TrackerRecord{
		TotalChampionships: constants.InitialChampionships,
		CurrentSeasonKey:   constants.StartSeason,
		SeasonsProcessed:   0,
	}
}

// IsComplete 判断记录是否到达终态（全部赛季已处理）
func IsComplete(r *types.TrackerRecord) bool {
	return r.CurrentSeasonKey > constants.EndSeason
}

// Encode 将追踪记录编码为恰好11字节
func Encode(r *types.TrackerRecord) []byte {
	buf := make([]byte, constants.TrackerRecordSize)
	binary.LittleEndian.PutUint64(buf[0:8], r.TotalChampionships)
	binary.LittleEndian.PutUint16(buf[8:10], r.CurrentSeasonKey)
	buf[10] = r.SeasonsProcessed
	return buf
}

// Decode 从字节序列解码追踪记录
//
// 输入短于11字节时返回DecodeError。多余的尾部字节被忽略，
// 与编码端"定长写入"的约定保持宽容读取。
func Decode(data []byte) (*types.TrackerRecord, error) {
	if len(data) < constants.TrackerRecordSize {
		return nil, &types.DecodeError{
			Reason: fmt.Sprintf("数据长度%d不足%d字节", len(data), constants.TrackerRecordSize),
		}
	}
	return &types.TrackerRecord{
		TotalChampionships: binary.LittleEndian.Uint64(data[0:8]),
		CurrentSeasonKey:   binary.LittleEndian.Uint16(data[8:10]),
		SeasonsProcessed:   data[10],
	}, nil
}

// EncodeInto 将记录编码写入目标缓冲区
// 目标长度不足时返回错误，供账户数据原地重写使用
func EncodeInto(r *types.TrackerRecord, dst []byte) error {
	if len(dst) < constants.TrackerRecordSize {
		return &types.DecodeError{
			Reason: fmt.Sprintf("目标缓冲区长度%d不足%d字节", len(dst), constants.TrackerRecordSize),
		}
	}
	copy(dst, Encode(r))
	return nil
}
