// Package processor 追踪器的状态转换引擎
//
// 🎯 **状态机**
//
//	未初始化 --Initialize--> 进行中(season=2010)
//	进行中   --Advance---->  进行中(season+1) ... --> 完成(season>2024)
//	完成     --Advance---->  完成（幂等空操作，返回成功）
//
// 任何转换都不会减小CurrentSeasonKey或TotalChampionships。
// 前置条件校验失败返回分类错误，宿主据此丢弃全部账户修改。
package processor

import (
	"context"
	"math"

	"github.com/fbtracker/v1/internal/core/tracker/instruction"
	"github.com/fbtracker/v1/internal/core/tracker/ledger"
	"github.com/fbtracker/v1/internal/core/tracker/state"
	"github.com/fbtracker/v1/pkg/constants"
	log "github.com/fbtracker/v1/pkg/interfaces/infrastructure/log"
	rtif "github.com/fbtracker/v1/pkg/interfaces/runtime"
	"github.com/fbtracker/v1/pkg/types"
)

// 账户引用索引（见instruction包的账户布局说明）
const (
	idxTracker = 0
	idxPayer   = 1
)

// Processor 实现runtime.Program：两指令的追踪器程序逻辑
type Processor struct {
	deriver rtif.AddressDeriver
	logger  log.Logger
}

var _ rtif.Program = (*Processor)(nil)

// New 创建处理器
func New(deriver rtif.AddressDeriver, logger log.Logger) *Processor {
	return &Processor{
		deriver: deriver,
		logger:  logger,
	}
}

// Execute 处理一次程序调用
func (p *Processor) Execute(ctx context.Context, call rtif.CallContext, payload []byte) error {
	inst, err := instruction.Unpack(payload)
	if err != nil {
		return err
	}

	p.logger.Infof("🟡🔵 处理指令: %s", inst)

	switch inst {
	case instruction.Initialize:
		return p.processInitialize(call)
	case instruction.Advance:
		return p.processAdvance(call)
	}
	return types.ErrInvalidOperation
}

// processInitialize 初始化追踪器
//
// 前置条件：
// (a) 账户0等于派生的单例地址
// (b) 该地址上不存在任何数据
func (p *Processor) processInitialize(call rtif.CallContext) error {
	tracker, err := call.Account(idxTracker)
	if err != nil {
		return err
	}

	expected, bump, err := p.deriver.Derive(call.ProgramID())
	if err != nil {
		return err
	}
	if !tracker.Address.Equal(expected) {
		p.logger.Warnf("目标账户%s不是派生地址%s", tracker.Address, expected)
		return types.ErrInvalidTarget
	}

	if len(tracker.Data) > 0 {
		p.logger.Warn("追踪器已初始化，拒绝重复创建")
		return types.ErrAlreadyInitialized
	}

	// 按编码定长分配存储并缴足租金豁免，扰动值作为派生授权证明
	if err := call.CreateDerivedAccount(idxTracker, bump, constants.TrackerRecordSize, idxPayer); err != nil {
		return err
	}

	record := state.NewRecord()
	if err := state.EncodeInto(record, tracker.Data); err != nil {
		return err
	}

	p.logger.Infof("🚀 追踪器初始化完成: 起始赛季 %s, 初始冠军数 %d",
		record.SeasonString(), record.TotalChampionships)
	return nil
}

// processAdvance 推进一个赛季
//
// 前置条件：
// (a) 账户0等于派生的单例地址
// (b) 账户归本程序所有
//
// 终态后的推进是幂等空操作：状态保持不变并返回成功，
// 调用方可以安全重试。
func (p *Processor) processAdvance(call rtif.CallContext) error {
	tracker, err := call.Account(idxTracker)
	if err != nil {
		return err
	}

	expected, _, err := p.deriver.Derive(call.ProgramID())
	if err != nil {
		return err
	}
	if !tracker.Address.Equal(expected) {
		return types.ErrInvalidTarget
	}
	if !tracker.Owner.Equal(call.ProgramID()) {
		return types.ErrWrongOwner
	}

	record, err := state.Decode(tracker.Data)
	if err != nil {
		return err
	}

	if state.IsComplete(record) {
		p.logger.Infof("🏁 全部赛季已完成，最终冠军数: %d", record.TotalChampionships)
		return nil
	}

	entry, ok := ledger.Lookup(record.CurrentSeasonKey)
	if !ok {
		// 记录未完成却查不到赛季：内部不变量被破坏
		p.logger.Errorf("赛季%d在赛季表中缺失", record.CurrentSeasonKey)
		return types.ErrLedgerInconsistency
	}

	p.logger.Infof("⚽ 处理赛季 %s: 排名%d - %s", record.SeasonString(), entry.Rank, entry.Narrative)

	if entry.Champion {
		if record.TotalChampionships == math.MaxUint64 {
			return types.ErrCounterOverflow
		}
		record.TotalChampionships++
		p.logger.Infof("🏆 冠军数增加到: %d", record.TotalChampionships)
	} else {
		p.logger.Infof("😞 本赛季无冠。累计冠军数: %d", record.TotalChampionships)
	}

	record.CurrentSeasonKey++
	record.SeasonsProcessed++

	if err := state.EncodeInto(record, tracker.Data); err != nil {
		return err
	}

	if state.IsComplete(record) {
		p.logger.Infof("🎉 全部赛季处理完毕，最终冠军数: %d", record.TotalChampionships)
	} else {
		p.logger.Infof("⏭️  下一赛季: %s", record.SeasonString())
	}
	return nil
}
