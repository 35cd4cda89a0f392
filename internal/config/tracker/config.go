package tracker

import (
	"crypto/sha256"

	"github.com/fbtracker/v1/pkg/constants"
	"github.com/fbtracker/v1/pkg/types"
)

// TrackerOptions 追踪器部署配置选项
type TrackerOptions struct {
	ProgramID types.Address `json:"program_id"` // 部署标识
	KeyFile   string        `json:"key_file"`   // 付款密钥文件路径
}

// Config 追踪器配置实现
type Config struct {
	options *TrackerOptions
}

// New 创建追踪器配置
//
// 未显式配置部署标识时，从固定种子确定性生成默认值，
// 保证同一台机器上的所有命令默认指向同一份状态。
func New(userConfig *types.UserTrackerConfig) (*Config, error) {
	options := &TrackerOptions{
		ProgramID: defaultProgramID(),
		KeyFile:   defaultKeyFile,
	}

	if userConfig != nil {
		if userConfig.ProgramID != nil && *userConfig.ProgramID != "" {
			pid, err := types.AddressFromBase58(*userConfig.ProgramID)
			if err != nil {
				return nil, err
			}
			options.ProgramID = pid
		}
		if userConfig.KeyFile != nil {
			options.KeyFile = *userConfig.KeyFile
		}
	}

	return &Config{options: options}, nil
}

// defaultProgramID 从固定种子派生默认部署标识
func defaultProgramID() types.Address {
	var addr types.Address
	sum := sha256.Sum256([]byte(constants.DefaultProgramSeed))
	copy(addr[:], sum[:])
	return addr
}

// GetOptions 获取完整的追踪器配置选项
func (c *Config) GetOptions() *TrackerOptions { return c.options }

// GetProgramID 获取部署标识
func (c *Config) GetProgramID() types.Address { return c.options.ProgramID }

// GetKeyFile 获取付款密钥文件路径
func (c *Config) GetKeyFile() string { return c.options.KeyFile }
