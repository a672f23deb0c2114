// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands vrf coordinator 命令行
package commands

import (
	"fmt"
	"os"

	"github.com/33cn/hot/client"
	vty "github.com/33cn/hot/plugin/dapp/vrf/types"
	"github.com/33cn/hot/types"
	"github.com/spf13/cobra"
)

//VrfCmd vrf 命令
func VrfCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vrf",
		Short: "VRF coordinator subscriptions and requests",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		CreateSubscriptionCmd(),
		FundSubscriptionCmd(),
		AddConsumerCmd(),
		FulfillCmd(),
		SubscriptionCmd(),
		RequestCmd(),
		VerifyCmd(),
	)
	return cmd
}

//CreateSubscriptionCmd 创建订阅
func CreateSubscriptionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create_sub",
		Short: "Create a subscription owned by the sender",
		Run: func(cmd *cobra.Command, args []string) {
			sendTx(cmd, "CreateSubscription", &vty.VrfCreateSubscription{})
		},
	}
	client.AddKeyFlag(cmd)
	return cmd
}

//FundSubscriptionCmd 充值
func FundSubscriptionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fund_sub",
		Short: "Fund a subscription",
		Run: func(cmd *cobra.Command, args []string) {
			subID, _ := cmd.Flags().GetInt64("sub")
			amountStr, _ := cmd.Flags().GetString("amount")
			amount, err := types.ParseAmount(amountStr)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return
			}
			sendTx(cmd, "FundSubscription", &vty.VrfFundSubscription{SubId: subID, Amount: amount})
		},
	}
	client.AddKeyFlag(cmd)
	cmd.Flags().Int64P("sub", "s", 0, "subscription id")
	cmd.MarkFlagRequired("sub")
	cmd.Flags().StringP("amount", "a", "", "fund amount, e.g. 10")
	cmd.MarkFlagRequired("amount")
	return cmd
}

//AddConsumerCmd 添加 consumer
func AddConsumerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add_consumer",
		Short: "Allow a consumer address to request random words",
		Run: func(cmd *cobra.Command, args []string) {
			subID, _ := cmd.Flags().GetInt64("sub")
			consumer, _ := cmd.Flags().GetString("consumer")
			sendTx(cmd, "AddConsumer", &vty.VrfAddConsumer{SubId: subID, Consumer: consumer})
		},
	}
	client.AddKeyFlag(cmd)
	cmd.Flags().Int64P("sub", "s", 0, "subscription id")
	cmd.MarkFlagRequired("sub")
	cmd.Flags().StringP("consumer", "c", "", "consumer address")
	cmd.MarkFlagRequired("consumer")
	return cmd
}

//FulfillCmd 生成随机数
func FulfillCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fulfill",
		Short: "Fulfill a pending random words request",
		Run: func(cmd *cobra.Command, args []string) {
			id, _ := cmd.Flags().GetInt64("id")
			sendTx(cmd, "FulfillRandomWords", &vty.VrfFulfillRandomWords{RequestId: id})
		},
	}
	client.AddKeyFlag(cmd)
	cmd.Flags().Int64P("id", "i", 0, "request id")
	cmd.MarkFlagRequired("id")
	return cmd
}

//SubscriptionCmd 查询订阅
func SubscriptionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sub",
		Short: "Show a subscription",
		Run: func(cmd *cobra.Command, args []string) {
			id, _ := cmd.Flags().GetInt64("sub")
			query(cmd, "GetSubscription", &vty.ReqVrfSubscription{SubId: id})
		},
	}
	cmd.Flags().Int64P("sub", "s", 0, "subscription id")
	cmd.MarkFlagRequired("sub")
	return cmd
}

//RequestCmd 查询请求
func RequestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "request",
		Short: "Show a pending request",
		Run: func(cmd *cobra.Command, args []string) {
			id, _ := cmd.Flags().GetInt64("id")
			query(cmd, "GetRequest", &vty.ReqVrfRequest{RequestId: id})
		},
	}
	cmd.Flags().Int64P("id", "i", 0, "request id")
	cmd.MarkFlagRequired("id")
	return cmd
}

//VerifyCmd 验证证明
func VerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify the proof of a fulfilled request",
		Run: func(cmd *cobra.Command, args []string) {
			id, _ := cmd.Flags().GetInt64("id")
			query(cmd, "VerifyProof", &vty.ReqVrfRequest{RequestId: id})
		},
	}
	cmd.Flags().Int64P("id", "i", 0, "request id")
	cmd.MarkFlagRequired("id")
	return cmd
}

func sendTx(cmd *cobra.Command, action string, param types.Message) {
	priv, err := client.GetPrivKey(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	tx, err := vty.CreateTx(action, param)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	tx.Sign(priv)
	node, err := client.OpenNode(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	defer node.Close()
	client.SendAndPrint(node, tx)
}

func query(cmd *cobra.Command, funcName string, param types.Message) {
	node, err := client.OpenNode(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	defer node.Close()
	reply, err := node.Query(vty.VrfX, funcName, param)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	client.PrintJSON(reply)
}
