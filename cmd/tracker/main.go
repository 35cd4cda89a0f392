// 冠军追踪器命令行入口
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

func main() {
	rootCmd := &cobra.Command{
		Use:   "tracker",
		Short: "费内巴切冠军追踪器",
		Long: "🟡🔵 费内巴切冠军追踪器\n\n" +
			"追踪2010-11至2024-25共15个赛季的联赛冠军记录。\n" +
			"状态保存在由部署标识派生的单例账户中，逐赛季推进。",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "配置文件路径(JSON)")

	rootCmd.AddCommand(
		newInitCommand(),
		newAdvanceCommand(),
		newRunCommand(),
		newStateCommand(),
		newSeasonsCommand(),
		newServeCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
}
