package types

import "errors"

// 状态转换错误分类
//
// 每个错误对应一类前置条件违反或内部不变量破坏。
// 所有错误都意味着本次调用没有任何部分写入（宿主按调用原子提交/丢弃）。
var (
	// ErrInvalidOperation 请求判别字节无法识别或请求为空
	ErrInvalidOperation = errors.New("无效的操作判别码")

	// ErrInvalidTarget 调用方提供的存储目标与派生的单例地址不匹配
	ErrInvalidTarget = errors.New("目标账户不是预期的派生地址")

	// ErrAlreadyInitialized 追踪记录已存在，重复初始化被拒绝
	ErrAlreadyInitialized = errors.New("追踪器已初始化")

	// ErrWrongOwner 目标账户不归本程序所有
	ErrWrongOwner = errors.New("账户所有者不是本程序")

	// ErrCounterOverflow 冠军计数自增将溢出uint64
	ErrCounterOverflow = errors.New("冠军计数溢出")

	// ErrLedgerInconsistency 记录未完成但当前赛季在赛季表中缺失
	// 属于内部不变量破坏，正常初始化后不应出现
	ErrLedgerInconsistency = errors.New("赛季表内部不一致")

	// ErrMissingSignature 需要签名的账户缺少有效签名
	ErrMissingSignature = errors.New("缺少必需的账户签名")

	// ErrAccountNotFound 请求读取的账户不存在
	ErrAccountNotFound = errors.New("账户不存在")

	// ErrInsufficientFunds 付款账户余额不足以满足租金豁免
	ErrInsufficientFunds = errors.New("余额不足以支付租金豁免")
)

// DecodeError 持久化字节无法解析为有效记录
//
// 携带实际长度信息，便于诊断数据损坏。
type DecodeError struct {
	Reason string
}

func (e *DecodeError) Error() string {
	return "记录解码失败: " + e.Reason
}
