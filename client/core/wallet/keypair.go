// Package wallet 付款密钥对管理
//
// 付款账户为初始化调用出资（租金豁免余额）并对请求负载签名。
// 密钥为ed25519，文件形式为JSON，私钥base58编码，权限0600。
package wallet

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fbtracker/v1/pkg/types"
	"github.com/mr-tron/base58"
)

// Keypair ed25519密钥对
type Keypair struct {
	PublicKey  ed25519.PublicKey
	PrivateKey ed25519.PrivateKey
}

// keypairFile 密钥文件的JSON结构
type keypairFile struct {
	PublicKey  string `json:"public_key"`  // base58
	PrivateKey string `json:"private_key"` // base58（64字节种子+公钥）
}

// Generate 生成新的密钥对
func Generate() (*Keypair, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("生成密钥对失败: %w", err)
	}
	return &Keypair{PublicKey: pub, PrivateKey: priv}, nil
}

// Address 返回公钥对应的账户地址
func (k *Keypair) Address() types.Address {
	var addr types.Address
	copy(addr[:], k.PublicKey)
	return addr
}

// Sign 对消息签名
func (k *Keypair) Sign(message []byte) []byte {
	return ed25519.Sign(k.PrivateKey, message)
}

// Save 将密钥对写入文件（权限0600）
func (k *Keypair) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("创建密钥目录失败: %w", err)
	}
	data, err := json.MarshalIndent(&keypairFile{
		PublicKey:  base58.Encode(k.PublicKey),
		PrivateKey: base58.Encode(k.PrivateKey),
	}, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("写入密钥文件失败: %w", err)
	}
	return nil
}

// Load 从文件读取密钥对
func Load(path string) (*Keypair, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取密钥文件失败: %w", err)
	}
	var file keypairFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("解析密钥文件失败: %w", err)
	}
	priv, err := base58.Decode(file.PrivateKey)
	if err != nil {
		return nil, fmt.Errorf("解码私钥失败: %w", err)
	}
	if len(priv) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("私钥长度无效: %d", len(priv))
	}
	key := ed25519.PrivateKey(priv)
	return &Keypair{
		PublicKey:  key.Public().(ed25519.PublicKey),
		PrivateKey: key,
	}, nil
}

// LoadOrGenerate 读取密钥文件，不存在时生成并落盘
func LoadOrGenerate(path string) (*Keypair, error) {
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}
	keypair, err := Generate()
	if err != nil {
		return nil, err
	}
	if err := keypair.Save(path); err != nil {
		return nil, err
	}
	return keypair, nil
}
