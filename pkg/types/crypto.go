// Package types 提供追踪器系统的核心数据类型定义
package types

import (
	"bytes"
	"fmt"

	"github.com/mr-tron/base58"
)

// AddressLength 地址的固定字节长度（ed25519公钥长度）
const AddressLength = 32

// Address 32字节账户地址
//
// 地址空间与ed25519公钥空间一致：
// - 普通账户地址 = ed25519公钥（持有者拥有对应私钥）
// - 派生地址 = 确定性哈希结果，且保证不在ed25519曲线上（无对应私钥）
//
// 文本形式统一使用base58编码。
type Address [AddressLength]byte

// ZeroAddress 零值地址（未初始化标记）
var ZeroAddress = Address{}

// AddressFromBytes 从字节切片构造地址
// 长度不等于32字节时返回错误
func AddressFromBytes(data []byte) (Address, error) {
	var addr Address
	if len(data) != AddressLength {
		return addr, fmt.Errorf("无效的地址长度: %d, 期望 %d", len(data), AddressLength)
	}
	copy(addr[:], data)
	return addr, nil
}

// AddressFromBase58 从base58字符串解析地址
func AddressFromBase58(s string) (Address, error) {
	raw, err := base58.Decode(s)
	if err != nil {
		return Address{}, fmt.Errorf("base58解码失败: %w", err)
	}
	return AddressFromBytes(raw)
}

// String 返回地址的base58文本形式
func (a Address) String() string {
	return base58.Encode(a[:])
}

// Bytes 返回地址的字节副本
func (a Address) Bytes() []byte {
	out := make([]byte, AddressLength)
	copy(out, a[:])
	return out
}

// IsZero 判断是否为零值地址
func (a Address) IsZero() bool {
	return bytes.Equal(a[:], ZeroAddress[:])
}

// Equal 比较两个地址是否相等
func (a Address) Equal(other Address) bool {
	return bytes.Equal(a[:], other[:])
}
