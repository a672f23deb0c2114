// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// hot 本地链上的猜正反奖池游戏命令行, 每个交易打包一个区块
package main

import (
	"fmt"
	"os"

	"github.com/33cn/hot/client"
	"github.com/33cn/hot/common/log"
	"github.com/33cn/hot/metrics"
	_ "github.com/33cn/hot/plugin" //register plugin
	"github.com/33cn/hot/pluginmgr"
	_ "github.com/33cn/hot/system" //register system
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hot",
	Short: "heads or tails pool game on a local chain",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLog(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		dump, _ := cmd.Flags().GetBool("metrics")
		if dump {
			metrics.WriteJSON(os.Stdout)
		}
	},
}

//setupLog 配置文件错误时只打印错误, 子命令打开节点时会返回同样的错误
func setupLog(cmd *cobra.Command) bool {
	cfg, _, err := client.LoadConfig(cmd)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "load config:", err)
		return false
	}
	log.SetFileLog(cfg.Log)
	metrics.StartMetrics(cfg)
	return true
}

func init() {
	rootCmd.PersistentFlags().String("conf", "", "config file, empty for the devnet default")
	rootCmd.PersistentFlags().String("datadir", "", "data dir, overrides the db path in config")
	rootCmd.PersistentFlags().Bool("metrics", false, "print metrics as json after the command")

	rootCmd.AddCommand(
		AccountCmd(),
		MockOffchainCmd(),
	)
	pluginmgr.AddCmd(rootCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
