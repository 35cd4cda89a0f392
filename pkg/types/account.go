package types

// Account 宿主环境中的账户视图
//
// 追踪器逻辑只通过宿主运行时访问账户：运行时在每次调用前
// 加载账户副本，调用成功后统一提交可写账户，失败则全部丢弃。
type Account struct {
	Address Address `json:"address"` // 账户地址
	Owner   Address `json:"owner"`   // 所有者程序地址
	Balance uint64  `json:"balance"` // 余额（最小货币单位）
	Data    []byte  `json:"data"`    // 账户数据
}

// AccountRef 一次调用中对账户的引用声明
//
// 与请求负载一起提交给运行时：
// - Signer 账户必须附带对负载的有效ed25519签名
// - 只有 Writable 账户的修改会在成功时提交
type AccountRef struct {
	Address   Address // 被引用的账户地址
	Signer    bool    // 是否为签名者
	Writable  bool    // 是否可写
	Signature []byte  // Signer时必填：对请求负载的ed25519签名
}
