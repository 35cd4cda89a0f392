// Package runtime 定义宿主执行环境与程序逻辑之间的契约
//
// 🎯 **职责划分**
// 宿主环境负责：账户的加载与原子提交、签名验证、租金收取、
// 派生账户的代理创建。程序逻辑负责：解析请求、校验前置条件、
// 执行状态转换。两者只通过本包接口交互。
//
// 📋 **执行模型**
// 单记录串行执行：宿主保证同一时刻最多一个调用触及追踪记录，
// 调用要么完整提交全部可写账户，要么毫无效果。
package runtime

import (
	"context"

	"github.com/fbtracker/v1/pkg/types"
)

// RentCalculator 存储租金计算器
//
// 宿主按数据长度收取一次性的租金豁免余额，
// 保证账户可被永久保留。
type RentCalculator interface {
	// MinimumBalance 返回指定数据长度的账户达到租金豁免所需的最小余额
	MinimumBalance(dataLen uint64) uint64
}

// AddressDeriver 确定性地址派生器
//
// 纯函数：相同的部署标识永远得到相同的(地址, 扰动值)。
// 派生地址必须不可能对应有效签名密钥，扰动值作为
// 派生逻辑（而非外部签名者）创建账户的授权证明。
type AddressDeriver interface {
	// Derive 为部署标识派生单例存储地址
	// 返回地址、扰动值；找不到合法候选时返回错误
	Derive(programID types.Address) (types.Address, uint8, error)

	// Verify 校验(地址, 扰动值)是否为programID的合法派生结果
	Verify(programID types.Address, addr types.Address, bump uint8) bool
}

// CallContext 一次程序调用的执行上下文
//
// 调用内对账户的修改只作用于副本，宿主在程序返回nil后统一提交。
type CallContext interface {
	// ProgramID 当前调用的目标程序地址
	ProgramID() types.Address

	// AccountCount 本次调用引用的账户数量
	AccountCount() int

	// Account 返回第i个被引用账户的调用内视图
	// 账户不存在时返回地址与零值字段的占位账户（Data为空）
	Account(i int) (*types.Account, error)

	// IsSigner 第i个账户是否携带有效签名
	IsSigner(i int) bool

	// CreateDerivedAccount 以派生授权创建第i个账户
	//
	// 宿主校验(账户地址, bump)确实由本程序派生（invoke_signed语义），
	// 从payerIndex指向的签名账户扣除租金豁免余额，
	// 分配size字节数据并将所有者设为本程序。
	CreateDerivedAccount(i int, bump uint8, size uint64, payerIndex int) error

	// Rent 宿主的租金计算器
	Rent() RentCalculator
}

// Program 可被宿主调度的程序逻辑
type Program interface {
	// Execute 处理一次调用
	// 返回非nil错误时宿主丢弃本次调用的全部账户修改
	Execute(ctx context.Context, call CallContext, payload []byte) error
}

// Host 宿主执行环境对客户端暴露的操作
type Host interface {
	// Submit 提交一次请求：验证签名、加载账户、执行程序、原子提交
	Submit(ctx context.Context, payload []byte, refs []types.AccountRef) error

	// Account 读取账户当前持久化状态
	// 账户不存在时返回 types.ErrAccountNotFound
	Account(ctx context.Context, addr types.Address) (*types.Account, error)
}
