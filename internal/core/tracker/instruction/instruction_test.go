package instruction

import (
	"crypto/sha256"
	"errors"
	"testing"

	"github.com/fbtracker/v1/pkg/types"
)

func TestUnpack(t *testing.T) {
	testCases := []struct {
		name    string
		payload []byte
		want    Kind
		wantErr bool
	}{
		{"初始化", []byte{0}, Initialize, false},
		{"推进", []byte{1}, Advance, false},
		{"初始化带尾部字节", []byte{0, 0xDE, 0xAD}, Initialize, false},
		{"未知判别码", []byte{2}, 0, true},
		{"最大判别码", []byte{255}, 0, true},
		{"空负载", nil, 0, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			kind, err := Unpack(tc.payload)
			if tc.wantErr {
				if !errors.Is(err, types.ErrInvalidOperation) {
					t.Fatalf("错误 = %v, 期望 ErrInvalidOperation", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("解析失败: %v", err)
			}
			if kind != tc.want {
				t.Errorf("指令 = %v, 期望 %v", kind, tc.want)
			}
		})
	}
}

func TestPayloadBuilders(t *testing.T) {
	if got := InitializePayload(); len(got) != 1 || got[0] != 0 {
		t.Errorf("初始化负载 = %v, 期望 [0]", got)
	}
	if got := AdvancePayload(); len(got) != 1 || got[0] != 1 {
		t.Errorf("推进负载 = %v, 期望 [1]", got)
	}
}

func TestBuildRefs(t *testing.T) {
	var tracker, payer types.Address
	copy(tracker[:], bytesOf("tracker"))
	copy(payer[:], bytesOf("payer"))
	sig := []byte{1, 2, 3}

	initRefs := BuildInitializeRefs(tracker, payer, sig)
	if len(initRefs) != 2 {
		t.Fatalf("初始化引用数 = %d, 期望 2", len(initRefs))
	}
	if !initRefs[0].Address.Equal(tracker) || !initRefs[0].Writable || initRefs[0].Signer {
		t.Errorf("追踪账户引用错误: %+v", initRefs[0])
	}
	if !initRefs[1].Address.Equal(payer) || !initRefs[1].Signer || !initRefs[1].Writable {
		t.Errorf("付款账户引用错误: %+v", initRefs[1])
	}

	advRefs := BuildAdvanceRefs(tracker)
	if len(advRefs) != 1 {
		t.Fatalf("推进引用数 = %d, 期望 1", len(advRefs))
	}
	if !advRefs[0].Address.Equal(tracker) || !advRefs[0].Writable || advRefs[0].Signer {
		t.Errorf("追踪账户引用错误: %+v", advRefs[0])
	}
}

func TestKindString(t *testing.T) {
	if Initialize.String() != "initialize" || Advance.String() != "advance" {
		t.Error("指令名称不符")
	}
	if Kind(9).String() != "unknown" {
		t.Error("未知指令应返回unknown")
	}
}

func bytesOf(s string) []byte {
	sum := sha256.Sum256([]byte(s))
	return sum[:]
}
