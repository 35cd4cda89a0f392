package runtime

import (
	rtif "github.com/fbtracker/v1/pkg/interfaces/runtime"
)

// 租金模型参数
//
// 豁免余额 = (账户开销 + 数据长度) * 单字节年租金 * 豁免年数。
// 确定性线性公式，所有节点对同一长度得到同一结果。
const (
	// accountStorageOverhead 每个账户的元数据开销（字节）
	accountStorageOverhead = 128

	// unitsPerByteYear 每字节每年的租金（最小货币单位）
	unitsPerByteYear = 3480

	// exemptionYears 一次缴清的豁免年数
	exemptionYears = 2
)

// Rent 实现runtime.RentCalculator
type Rent struct{}

var _ rtif.RentCalculator = (*Rent)(nil)

// NewRent 创建租金计算器
func NewRent() *Rent {
	return &Rent{}
}

// MinimumBalance 返回指定数据长度的账户达到租金豁免所需的最小余额
func (r *Rent) MinimumBalance(dataLen uint64) uint64 {
	return (accountStorageOverhead + dataLen) * unitsPerByteYear * exemptionYears
}
