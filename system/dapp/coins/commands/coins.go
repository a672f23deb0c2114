// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands coins 命令行
package commands

import (
	"fmt"
	"os"

	"github.com/33cn/hot/client"
	cty "github.com/33cn/hot/system/dapp/coins/types"
	"github.com/33cn/hot/types"
	"github.com/spf13/cobra"
)

// CoinsCmd coins command func
func CoinsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coins",
		Short: "Native coins transactions and balances",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		TransferCmd(),
		BalanceCmd(),
	)
	return cmd
}

// TransferCmd transfer
func TransferCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Send coins to an address",
		Run:   transfer,
	}
	client.AddKeyFlag(cmd)
	cmd.Flags().StringP("to", "t", "", "receiver account address")
	cmd.MarkFlagRequired("to")
	cmd.Flags().StringP("amount", "a", "", "transaction amount, e.g. 1.5")
	cmd.MarkFlagRequired("amount")
	cmd.Flags().StringP("note", "n", "", "transaction note info")
	return cmd
}

func transfer(cmd *cobra.Command, args []string) {
	to, _ := cmd.Flags().GetString("to")
	amountStr, _ := cmd.Flags().GetString("amount")
	note, _ := cmd.Flags().GetString("note")
	amount, err := types.ParseAmount(amountStr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	priv, err := client.GetPrivKey(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	tx, err := cty.CreateTransfer(to, amount, note)
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

// BalanceCmd balance
func BalanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Get balance of an address",
		Run:   balance,
	}
	cmd.Flags().StringP("addr", "a", "", "account address")
	cmd.MarkFlagRequired("addr")
	return cmd
}

func balance(cmd *cobra.Command, args []string) {
	addr, _ := cmd.Flags().GetString("addr")
	node, err := client.OpenNode(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	defer node.Close()
	bal, err := node.GetBalance(addr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	fmt.Println(addr, types.FormatAmount(bal))
}
