package runtime

import (
	"encoding/binary"

	"github.com/fbtracker/v1/pkg/types"
)

// 账户持久化布局（地址在键中，不重复存储）:
//
//	[0..32)  Owner   32字节
//	[32..40) Balance uint64 小端
//	[40..)   Data    变长
const accountHeaderSize = 40

// encodeAccount 编码账户为持久化字节
func encodeAccount(account *types.Account) []byte {
	buf := make([]byte, accountHeaderSize+len(account.Data))
	copy(buf[0:32], account.Owner[:])
	binary.LittleEndian.PutUint64(buf[32:40], account.Balance)
	copy(buf[accountHeaderSize:], account.Data)
	return buf
}

// decodeAccount 从持久化字节解码账户
func decodeAccount(addr types.Address, raw []byte) (*types.Account, error) {
	if len(raw) < accountHeaderSize {
		return nil, &types.DecodeError{Reason: "账户数据头不完整"}
	}
	account := &types.Account{Address: addr}
	copy(account.Owner[:], raw[0:32])
	account.Balance = binary.LittleEndian.Uint64(raw[32:40])
	account.Data = make([]byte, len(raw)-accountHeaderSize)
	copy(account.Data, raw[accountHeaderSize:])
	return account, nil
}
