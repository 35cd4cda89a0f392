package pda

import (
	"crypto/sha256"
	"testing"

	"filippo.io/edwards25519"
	"github.com/fbtracker/v1/pkg/types"
)

func testProgramID(seed string) types.Address {
	var addr types.Address
	sum := sha256.Sum256([]byte(seed))
	copy(addr[:], sum[:])
	return addr
}

func TestDeriveDeterminism(t *testing.T) {
	deriver := NewDeriver()
	programID := testProgramID("program-a")

	addr1, bump1, err := deriver.Derive(programID)
	if err != nil {
		t.Fatalf("派生失败: %v", err)
	}

	// 同一输入的每次派生结果必须完全一致
	for i := 0; i < 10; i++ {
		addr2, bump2, err := deriver.Derive(programID)
		if err != nil {
			t.Fatalf("派生失败: %v", err)
		}
		if !addr1.Equal(addr2) || bump1 != bump2 {
			t.Fatalf("派生不确定: (%s, %d) != (%s, %d)", addr1, bump1, addr2, bump2)
		}
	}
}

func TestDeriveOffCurve(t *testing.T) {
	deriver := NewDeriver()
	addr, _, err := deriver.Derive(testProgramID("program-b"))
	if err != nil {
		t.Fatalf("派生失败: %v", err)
	}

	// 派生地址必须不是合法的ed25519曲线点
	if _, err := new(edwards25519.Point).SetBytes(addr[:]); err == nil {
		t.Error("派生地址落在曲线上，存在对应私钥的风险")
	}
}

func TestDeriveDistinctPrograms(t *testing.T) {
	deriver := NewDeriver()

	addrA, _, err := deriver.Derive(testProgramID("program-a"))
	if err != nil {
		t.Fatalf("派生失败: %v", err)
	}
	addrB, _, err := deriver.Derive(testProgramID("program-b"))
	if err != nil {
		t.Fatalf("派生失败: %v", err)
	}

	if addrA.Equal(addrB) {
		t.Error("不同部署标识派生出相同地址")
	}
}

func TestVerify(t *testing.T) {
	deriver := NewDeriver()
	programID := testProgramID("program-c")

	addr, bump, err := deriver.Derive(programID)
	if err != nil {
		t.Fatalf("派生失败: %v", err)
	}

	if !deriver.Verify(programID, addr, bump) {
		t.Error("合法派生结果校验失败")
	}
	if deriver.Verify(programID, addr, bump+1) {
		t.Error("错误扰动值不应通过校验")
	}
	if deriver.Verify(testProgramID("program-d"), addr, bump) {
		t.Error("其他程序不应通过校验")
	}
	if deriver.Verify(programID, types.ZeroAddress, bump) {
		t.Error("任意地址不应通过校验")
	}
}
