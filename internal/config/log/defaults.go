package log

// 日志默认配置值

import "github.com/fbtracker/v1/pkg/types"

const (
	// defaultLevel 默认info级别
	// 原因：生产环境下debug日志量过大，info提供足够的运行信息
	defaultLevel = types.InfoLevel

	// defaultFile 默认不写文件，仅控制台
	// 原因：追踪器通常作为命令行工具运行，文件日志按需开启
	defaultFile = ""

	// defaultMaxSizeMB 单文件100MB
	defaultMaxSizeMB = 100

	// defaultMaxBackups 保留3个旧文件
	defaultMaxBackups = 3

	// defaultConsole 默认启用控制台输出
	defaultConsole = true
)

func createDefaultLogOptions() *LogOptions {
	return &LogOptions{
		Level:      defaultLevel,
		File:       defaultFile,
		MaxSizeMB:  defaultMaxSizeMB,
		MaxBackups: defaultMaxBackups,
		Console:    defaultConsole,
	}
}
