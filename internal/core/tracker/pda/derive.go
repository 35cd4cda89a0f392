// Package pda 派生地址（Program Derived Address）方案
//
// 🎯 **设计目标**
// 为每个部署标识确定性地派生追踪记录的单例存储地址。
// 派生结果必须落在ed25519曲线之外：曲线外的32字节值不可能是
// 有效公钥，因此不存在能为该地址签名的私钥，地址的创建权
// 完全归属派生逻辑本身（扰动值充当授权证明）。
//
// 派生输入: sha256(种子标签 || 扰动值 || 部署标识 || 域分隔标记)
// 扰动值从255递减搜索，取第一个曲线外候选。
package pda

import (
	"crypto/sha256"
	"errors"

	"filippo.io/edwards25519"
	"github.com/fbtracker/v1/pkg/constants"
	rtif "github.com/fbtracker/v1/pkg/interfaces/runtime"
	"github.com/fbtracker/v1/pkg/types"
)

// ErrNoDerivedAddress 256个扰动值全部落在曲线上（概率上不可能发生）
var ErrNoDerivedAddress = errors.New("无法找到合法的派生地址")

// Deriver 追踪器的派生地址实现
//
// 无状态纯函数对象。派生方案通过runtime.AddressDeriver接口注入
// 引擎，宿主模型变化时可整体替换。
type Deriver struct{}

var _ rtif.AddressDeriver = (*Deriver)(nil)

// NewDeriver 创建派生器
func NewDeriver() *Deriver {
	return &Deriver{}
}

// Derive 为部署标识派生单例存储地址
//
// 纯函数：相同programID永远返回相同的(地址, 扰动值)。
func (d *Deriver) Derive(programID types.Address) (types.Address, uint8, error) {
	for bump := 255; bump >= 0; bump-- {
		candidate := deriveCandidate(programID, uint8(bump))
		if !isOnCurve(candidate) {
			return candidate, uint8(bump), nil
		}
	}
	return types.ZeroAddress, 0, ErrNoDerivedAddress
}

// Verify 校验(地址, 扰动值)是否为programID的合法派生结果
//
// 宿主在代理创建账户时用它验证扰动值证明：
// 候选必须逐字节匹配且位于曲线外。
func (d *Deriver) Verify(programID types.Address, addr types.Address, bump uint8) bool {
	candidate := deriveCandidate(programID, bump)
	return candidate.Equal(addr) && !isOnCurve(candidate)
}

// deriveCandidate 计算指定扰动值下的候选地址
func deriveCandidate(programID types.Address, bump uint8) types.Address {
	h := sha256.New()
	h.Write([]byte(constants.TrackerSeedTag))
	h.Write([]byte{bump})
	h.Write(programID[:])
	h.Write([]byte(constants.DerivedAddressMarker))

	var addr types.Address
	copy(addr[:], h.Sum(nil))
	return addr
}

// isOnCurve 判断32字节值是否为有效的ed25519曲线点
//
// 能被解析为曲线点的值可能对应真实公钥，必须拒绝。
func isOnCurve(addr types.Address) bool {
	_, err := new(edwards25519.Point).SetBytes(addr[:])
	return err == nil
}
