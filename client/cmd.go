// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package client

import (
	"fmt"
	"os"

	"github.com/33cn/hot/common/crypto"
	"github.com/33cn/hot/types"
	"github.com/spf13/cobra"
)

//LoadConfig 读取 --conf 指定的配置文件, 数据库放到 --datadir 下面
func LoadConfig(cmd *cobra.Command) (cfg *types.Config, datadir string, err error) {
	conf, _ := cmd.Flags().GetString("conf")
	datadir, _ = cmd.Flags().GetString("datadir")
	if conf != "" {
		cfg, err = types.InitCfg(conf)
	} else {
		cfg, err = types.InitCfgString("")
	}
	if err != nil {
		return nil, "", err
	}
	if datadir != "" {
		cfg.Store.DbPath = datadir
		cfg.LocalStore.DbPath = datadir
	} else {
		datadir = cfg.Store.DbPath
	}
	return cfg, datadir, nil
}

//OpenNode 命令行使用的节点
func OpenNode(cmd *cobra.Command) (*Node, error) {
	cfg, datadir, err := LoadConfig(cmd)
	if err != nil {
		return nil, err
	}
	if err := LoadVrfKey(cfg, datadir); err != nil {
		return nil, err
	}
	return New(cfg)
}

//GetPrivKey --key 指定的 hex 私钥
func GetPrivKey(cmd *cobra.Command) (crypto.PrivKey, error) {
	key, _ := cmd.Flags().GetString("key")
	if key == "" {
		return nil, types.ErrInvalidParam
	}
	return types.PrivKeyFromHex(key)
}

//AddKeyFlag 添加 --key 参数
func AddKeyFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("key", "k", "", "hex private key of the sender")
	cmd.MarkFlagRequired("key")
}

//PrintJSON 以 json 格式输出
func PrintJSON(msg types.Message) {
	data, err := types.PBToJSON(msg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	fmt.Println(string(data))
}

//SendAndPrint 发送交易并输出交易哈希以及回执
func SendAndPrint(node *Node, tx *types.Transaction) {
	result, err := node.SendTx(tx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	fmt.Println(tx.HashHex())
	PrintJSON(result.Receiptdate)
}
