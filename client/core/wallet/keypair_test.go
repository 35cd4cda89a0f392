package wallet

import (
	"crypto/ed25519"
	"path/filepath"
	"testing"
)

func TestGenerateAndSign(t *testing.T) {
	keypair, err := Generate()
	if err != nil {
		t.Fatalf("生成密钥对失败: %v", err)
	}

	message := []byte("test-payload")
	sig := keypair.Sign(message)
	if !ed25519.Verify(keypair.PublicKey, message, sig) {
		t.Error("签名验证失败")
	}

	addr := keypair.Address()
	if string(addr[:]) != string(keypair.PublicKey) {
		t.Error("地址应等于公钥字节")
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys", "payer.key")

	original, err := Generate()
	if err != nil {
		t.Fatalf("生成密钥对失败: %v", err)
	}
	if err := original.Save(path); err != nil {
		t.Fatalf("保存失败: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("读取失败: %v", err)
	}
	if !loaded.PrivateKey.Equal(original.PrivateKey) {
		t.Error("读取的私钥与保存的不一致")
	}
	if !loaded.Address().Equal(original.Address()) {
		t.Error("读取的地址与保存的不一致")
	}
}

func TestLoadOrGenerate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payer.key")

	// 首次调用生成并落盘
	first, err := LoadOrGenerate(path)
	if err != nil {
		t.Fatalf("首次生成失败: %v", err)
	}

	// 再次调用读取同一密钥
	second, err := LoadOrGenerate(path)
	if err != nil {
		t.Fatalf("二次读取失败: %v", err)
	}
	if !first.Address().Equal(second.Address()) {
		t.Error("两次调用应返回同一密钥")
	}
}

func TestLoadInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.key")

	if _, err := Load(path); err == nil {
		t.Error("读取不存在的文件应失败")
	}
}
