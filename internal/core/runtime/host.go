// Package runtime 宿主执行环境实现
//
// 🎯 **模块职责**
// - 账户状态的持久化（BadgerDB）与按调用加载
// - 签名验证：Signer引用必须携带对负载的有效ed25519签名
// - 原子提交：程序返回nil时统一提交可写账户，否则全部丢弃
// - 串行执行：同一宿主上的调用互斥，调用期间独占账户状态
// - 租金收取与派生账户的代理创建（invoke_signed语义）
//
// 追踪器逻辑本身不触碰存储，所有账户访问经由本包。
package runtime

import (
	"bytes"
	"context"
	"crypto/ed25519"
	"fmt"
	"sync"

	"github.com/fbtracker/v1/internal/core/infrastructure/metrics"
	"github.com/fbtracker/v1/internal/core/tracker/instruction"
	"github.com/fbtracker/v1/internal/core/tracker/state"
	eventif "github.com/fbtracker/v1/pkg/interfaces/infrastructure/event"
	log "github.com/fbtracker/v1/pkg/interfaces/infrastructure/log"
	storageif "github.com/fbtracker/v1/pkg/interfaces/infrastructure/storage"
	rtif "github.com/fbtracker/v1/pkg/interfaces/runtime"
	"github.com/fbtracker/v1/pkg/types"
)

// accountKeyPrefix 账户在KV存储中的键前缀
// 完整键: account:<programID|base58>:<address|base58>
const accountKeyPrefix = "account:"

// Host 实现runtime.Host
type Host struct {
	programID types.Address
	program   rtif.Program
	deriver   rtif.AddressDeriver
	rent      rtif.RentCalculator
	store     storageif.BadgerStore
	bus       eventif.Bus
	metrics   *metrics.Registry
	logger    log.Logger

	// 单记录串行执行：调用持锁期间独占全部账户状态
	mu sync.Mutex
}

var _ rtif.Host = (*Host)(nil)

// New 创建宿主执行环境
func New(
	programID types.Address,
	program rtif.Program,
	deriver rtif.AddressDeriver,
	store storageif.BadgerStore,
	bus eventif.Bus,
	reg *metrics.Registry,
	logger log.Logger,
) *Host {
	return &Host{
		programID: programID,
		program:   program,
		deriver:   deriver,
		rent:      NewRent(),
		store:     store,
		bus:       bus,
		metrics:   reg,
		logger:    logger,
	}
}

// Submit 提交一次请求
//
// 流程：验证签名 -> 加载账户副本 -> 执行程序 -> 原子提交或丢弃。
// 执行期间对账户的修改只作用于副本，任何错误返回都保证
// 持久化状态毫无变化。
func (h *Host) Submit(ctx context.Context, payload []byte, refs []types.AccountRef) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	err := h.submitLocked(ctx, payload, refs)
	if h.metrics != nil {
		if inst, uerr := instruction.Unpack(payload); uerr == nil {
			h.metrics.ObserveTransition(inst.String(), err)
		}
	}
	return err
}

func (h *Host) submitLocked(ctx context.Context, payload []byte, refs []types.AccountRef) error {
	// 1. 签名验证：签名者地址即ed25519公钥
	for i, ref := range refs {
		if !ref.Signer {
			continue
		}
		if len(ref.Signature) != ed25519.SignatureSize ||
			!ed25519.Verify(ed25519.PublicKey(ref.Address[:]), payload, ref.Signature) {
			h.logger.Warnf("账户%d (%s) 签名验证失败", i, ref.Address)
			return types.ErrMissingSignature
		}
	}

	// 2. 加载账户副本，不存在的账户给出占位视图
	call := &callContext{
		host:    h,
		refs:    refs,
		loaded:  make([]*types.Account, len(refs)),
		created: make([]bool, len(refs)),
	}
	for i, ref := range refs {
		account, err := h.loadAccount(ctx, ref.Address)
		if err != nil {
			return err
		}
		if account == nil {
			account = &types.Account{Address: ref.Address}
		}
		call.loaded[i] = account
	}

	// 终态空操作的事件抑制依据：执行前的记录字节
	var before []byte
	if len(call.loaded) > 0 {
		before = append(before, call.loaded[0].Data...)
	}

	// 3. 执行程序逻辑
	if err := h.program.Execute(ctx, call, payload); err != nil {
		h.logger.Debugf("调用失败，丢弃全部修改: %v", err)
		return err
	}

	// 4. 可写账户在单个存储事务中原子提交
	var entries []storageif.Entry
	for i, ref := range refs {
		if !ref.Writable && !call.created[i] {
			continue
		}
		entries = append(entries, storageif.Entry{
			Key:   h.accountKey(call.loaded[i].Address),
			Value: encodeAccount(call.loaded[i]),
		})
	}
	if err := h.store.SetBatch(ctx, entries); err != nil {
		return fmt.Errorf("提交账户修改失败: %w", err)
	}

	h.updateTrackerMetrics(call)
	h.publishEvents(payload, call, before)
	return nil
}

// updateTrackerMetrics 调用成功后刷新追踪器状态指标
func (h *Host) updateTrackerMetrics(call *callContext) {
	if h.metrics == nil || len(call.loaded) == 0 {
		return
	}
	if record, err := state.Decode(call.loaded[0].Data); err == nil {
		h.metrics.UpdateTrackerState(record.TotalChampionships, record.CurrentSeasonKey)
	}
}

// Account 读取账户当前持久化状态
func (h *Host) Account(ctx context.Context, addr types.Address) (*types.Account, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	account, err := h.loadAccount(ctx, addr)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, types.ErrAccountNotFound
	}
	return account, nil
}

// FundAccount 为账户注入余额（水龙头语义，供本地部署的付款账户使用）
func (h *Host) FundAccount(ctx context.Context, addr types.Address, amount uint64) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	account, err := h.loadAccount(ctx, addr)
	if err != nil {
		return err
	}
	if account == nil {
		account = &types.Account{Address: addr}
	}
	account.Balance += amount
	return h.persistAccount(ctx, account)
}

// accountKey 构造账户的存储键
func (h *Host) accountKey(addr types.Address) []byte {
	return []byte(accountKeyPrefix + h.programID.String() + ":" + addr.String())
}

// loadAccount 从存储加载账户，不存在返回(nil, nil)
func (h *Host) loadAccount(ctx context.Context, addr types.Address) (*types.Account, error) {
	raw, err := h.store.Get(ctx, h.accountKey(addr))
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	return decodeAccount(addr, raw)
}

// persistAccount 将账户写入存储
func (h *Host) persistAccount(ctx context.Context, account *types.Account) error {
	return h.store.Set(ctx, h.accountKey(account.Address), encodeAccount(account))
}

// publishEvents 调用成功后发布生命周期事件
//
// 只有实际发生状态转换才发布：终态后的幂等空操作推进
// 不改动记录字节，不产生事件。完成事件仅在进入终态的
// 那一次推进发布一次。
func (h *Host) publishEvents(payload []byte, call *callContext, before []byte) {
	if h.bus == nil || len(call.loaded) == 0 {
		return
	}
	inst, err := instruction.Unpack(payload)
	if err != nil {
		return
	}
	switch inst {
	case instruction.Initialize:
		h.bus.Publish(eventif.TopicTrackerInitialized, call.loaded[0].Address.String())
	case instruction.Advance:
		after := call.loaded[0].Data
		if bytes.Equal(before, after) {
			return
		}
		h.bus.Publish(eventif.TopicSeasonAdvanced, call.loaded[0].Address.String())
		if record, err := state.Decode(after); err == nil && state.IsComplete(record) {
			h.bus.Publish(eventif.TopicTrackerCompleted, call.loaded[0].Address.String())
		}
	}
}

// callContext 实现runtime.CallContext
type callContext struct {
	host    *Host
	refs    []types.AccountRef
	loaded  []*types.Account
	created []bool
}

var _ rtif.CallContext = (*callContext)(nil)

func (c *callContext) ProgramID() types.Address {
	return c.host.programID
}

func (c *callContext) AccountCount() int {
	return len(c.refs)
}

func (c *callContext) Account(i int) (*types.Account, error) {
	if i < 0 || i >= len(c.loaded) {
		return nil, fmt.Errorf("账户索引%d越界", i)
	}
	return c.loaded[i], nil
}

func (c *callContext) IsSigner(i int) bool {
	return i >= 0 && i < len(c.refs) && c.refs[i].Signer
}

// CreateDerivedAccount 以派生授权创建账户
//
// 校验扰动值证明（invoke_signed语义），从付款账户扣除
// 租金豁免余额，分配数据并移交所有权给程序。
func (c *callContext) CreateDerivedAccount(i int, bump uint8, size uint64, payerIndex int) error {
	account, err := c.Account(i)
	if err != nil {
		return err
	}
	payer, err := c.Account(payerIndex)
	if err != nil {
		return err
	}

	// 创建的资金来源必须是签名账户
	if !c.IsSigner(payerIndex) {
		return types.ErrMissingSignature
	}

	// 扰动值证明：地址必须由本程序派生
	if !c.host.deriver.Verify(c.host.programID, account.Address, bump) {
		return types.ErrInvalidTarget
	}

	if len(account.Data) > 0 {
		return types.ErrAlreadyInitialized
	}

	required := c.host.rent.MinimumBalance(size)
	if payer.Balance < required {
		return types.ErrInsufficientFunds
	}

	payer.Balance -= required
	account.Balance += required
	account.Owner = c.host.programID
	account.Data = make([]byte, size)
	c.created[i] = true

	c.host.logger.Debugf("创建派生账户 %s: %d字节, 租金%d", account.Address, size, required)
	return nil
}

func (c *callContext) Rent() rtif.RentCalculator {
	return c.host.rent
}
