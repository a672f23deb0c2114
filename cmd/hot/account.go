// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/33cn/hot/common"
	"github.com/33cn/hot/types"
	"github.com/spf13/cobra"
)

//AccountCmd 账户
func AccountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Account management",
	}
	cmd.AddCommand(
		genKeyCmd(),
		addrCmd(),
	)
	return cmd
}

func genKeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Generate a private key and print it with its address",
		Run: func(cmd *cobra.Command, args []string) {
			priv, err := types.GenKey()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return
			}
			fmt.Println("key: ", common.ToHex(priv.Bytes()))
			fmt.Println("addr:", types.PrivKeyToAddr(priv))
		},
	}
}

func addrCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "addr",
		Short: "Print the address of a private key",
		Run: func(cmd *cobra.Command, args []string) {
			key, _ := cmd.Flags().GetString("key")
			priv, err := types.PrivKeyFromHex(key)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return
			}
			fmt.Println(types.PrivKeyToAddr(priv))
		},
	}
	cmd.Flags().StringP("key", "k", "", "hex private key")
	cmd.MarkFlagRequired("key")
	return cmd
}
