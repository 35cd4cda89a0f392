// Package instruction 请求负载的解析与构造
//
// 协议极简：负载第0字节为判别码，0=初始化、1=推进赛季，
// 两种操作都不携带额外参数，剩余字节被忽略。
package instruction

import (
	"github.com/fbtracker/v1/pkg/constants"
	"github.com/fbtracker/v1/pkg/types"
)

// Kind 指令类型
type Kind byte

const (
	// Initialize 初始化追踪器
	Initialize Kind = Kind(constants.InstructionInitialize)

	// Advance 推进一个赛季
	Advance Kind = Kind(constants.InstructionAdvance)
)

// String 返回指令名称
func (k Kind) String() string {
	switch k {
	case Initialize:
		return "initialize"
	case Advance:
		return "advance"
	}
	return "unknown"
}

// Unpack 从请求负载解析指令
//
// 空负载或未知判别码返回ErrInvalidOperation。
func Unpack(payload []byte) (Kind, error) {
	if len(payload) == 0 {
		return 0, types.ErrInvalidOperation
	}
	switch payload[0] {
	case constants.InstructionInitialize:
		return Initialize, nil
	case constants.InstructionAdvance:
		return Advance, nil
	default:
		return 0, types.ErrInvalidOperation
	}
}

// InitializePayload 构造初始化请求负载
func InitializePayload() []byte {
	return []byte{constants.InstructionInitialize}
}

// AdvancePayload 构造推进请求负载
func AdvancePayload() []byte {
	return []byte{constants.InstructionAdvance}
}

// 指令的账户引用布局
//
// Initialize:
//	0. [writable]         追踪记录派生账户（由程序代理创建）
//	1. [writable, signer] 付款账户
//
// Advance:
//	0. [writable]         追踪记录派生账户

// BuildInitializeRefs 构造初始化指令的账户引用列表
func BuildInitializeRefs(tracker, payer types.Address, payerSignature []byte) []types.AccountRef {
	return []types.AccountRef{
		{Address: tracker, Writable: true},
		{Address: payer, Writable: true, Signer: true, Signature: payerSignature},
	}
}

// BuildAdvanceRefs 构造推进指令的账户引用列表
func BuildAdvanceRefs(tracker types.Address) []types.AccountRef {
	return []types.AccountRef{
		{Address: tracker, Writable: true},
	}
}
