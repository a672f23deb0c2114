// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands hot 游戏命令行
package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/33cn/hot/client"
	"github.com/33cn/hot/common"
	hty "github.com/33cn/hot/plugin/dapp/hot/types"
	"github.com/33cn/hot/types"
	"github.com/spf13/cobra"
)

//HotCmd hot 命令
func HotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hot",
		Short: "Heads or tails pooled wager",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		CreateCmd(),
		EnterCmd(),
		PerformUpkeepCmd(),
		FulfillCmd(),
		CheckUpkeepCmd(),
		InfoCmd(),
		PlayerCmd(),
		RecentCmd(),
		WinnerShareCmd(),
		HistoryCmd(),
		GamesCmd(),
	)
	return cmd
}

func addGameFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("game", "g", "", "game id")
	cmd.MarkFlagRequired("game")
}

func parseAmount(cmd *cobra.Command, name string) (int64, error) {
	s, _ := cmd.Flags().GetString(name)
	if s == "" {
		return 0, nil
	}
	return types.ParseAmount(s)
}

//CreateCmd 创建游戏
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a game, empty coordinator means the vrf executor",
		Run: func(cmd *cobra.Command, args []string) {
			fee, err := parseAmount(cmd, "fee")
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return
			}
			interval, _ := cmd.Flags().GetInt64("interval")
			keyHash, _ := cmd.Flags().GetString("keyhash")
			sub, _ := cmd.Flags().GetInt64("sub")
			gas, _ := cmd.Flags().GetInt64("gas")
			conf, _ := cmd.Flags().GetInt32("confirmations")
			words, _ := cmd.Flags().GetInt32("words")
			coordinator, _ := cmd.Flags().GetString("coordinator")
			sendTx(cmd, "Create", &hty.HotCreate{
				EntranceFee:          fee,
				Interval:             interval,
				KeyHash:              keyHash,
				SubscriptionId:       sub,
				CallbackGasLimit:     gas,
				RequestConfirmations: conf,
				NumWords:             words,
				Coordinator:          coordinator,
			})
		},
	}
	client.AddKeyFlag(cmd)
	cmd.Flags().StringP("fee", "f", "", "entrance fee, e.g. 0.01")
	cmd.MarkFlagRequired("fee")
	cmd.Flags().Int64P("interval", "i", 30, "seconds between draws")
	cmd.Flags().Int64P("sub", "s", 0, "vrf subscription id")
	cmd.Flags().StringP("keyhash", "", "", "vrf key hash, default from config")
	cmd.Flags().Int64P("gas", "", 0, "callback gas limit, default from config")
	cmd.Flags().Int32P("confirmations", "", 0, "request confirmations, default from config")
	cmd.Flags().Int32P("words", "", 0, "number of random words, default from config")
	cmd.Flags().StringP("coordinator", "c", "", "address of an external coordinator")
	return cmd
}

//EnterCmd 下注, 不指定金额时使用 entrance fee
func EnterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "enter",
		Short: "Enter the current round choosing heads or tails",
		Run: func(cmd *cobra.Command, args []string) {
			gameID, _ := cmd.Flags().GetString("game")
			side, _ := cmd.Flags().GetString("outcome")
			outcome, err := hty.ParseOutcome(strings.ToLower(side))
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return
			}
			amount, err := parseAmount(cmd, "amount")
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return
			}
			priv, err := client.GetPrivKey(cmd)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return
			}
			node, err := client.OpenNode(cmd)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return
			}
			defer node.Close()
			if amount == 0 {
				reply, err := node.Query(hty.HotX, "GetEntranceFee", &hty.ReqHotGame{GameId: gameID})
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
					return
				}
				amount = reply.(*types.Int64).Data
			}
			tx, err := hty.CreateTx("Enter", &hty.HotEnter{GameId: gameID, Outcome: outcome, Amount: amount})
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return
			}
			tx.Sign(priv)
			client.SendAndPrint(node, tx)
		},
	}
	client.AddKeyFlag(cmd)
	addGameFlag(cmd)
	cmd.Flags().StringP("outcome", "o", "heads", "heads or tails")
	cmd.Flags().StringP("amount", "a", "", "stake, default the entrance fee")
	return cmd
}

//PerformUpkeepCmd 开奖
func PerformUpkeepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "upkeep",
		Short: "Close the round and request randomness",
		Run: func(cmd *cobra.Command, args []string) {
			gameID, _ := cmd.Flags().GetString("game")
			sendTx(cmd, "PerformUpkeep", &hty.HotPerformUpkeep{GameId: gameID})
		},
	}
	client.AddKeyFlag(cmd)
	addGameFlag(cmd)
	return cmd
}

//FulfillCmd 链外 coordinator 提交随机数
func FulfillCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fulfill",
		Short: "Deliver random words as the external coordinator",
		Run: func(cmd *cobra.Command, args []string) {
			gameID, _ := cmd.Flags().GetString("game")
			id, _ := cmd.Flags().GetInt64("id")
			hexWords, _ := cmd.Flags().GetStringSlice("words")
			var words [][]byte
			for _, w := range hexWords {
				b, err := common.FromHex(w)
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
					return
				}
				words = append(words, b)
			}
			sendTx(cmd, "Fulfill", &hty.HotFulfill{GameId: gameID, RequestId: id, RandomWords: words})
		},
	}
	client.AddKeyFlag(cmd)
	addGameFlag(cmd)
	cmd.Flags().Int64P("id", "i", 0, "request id")
	cmd.MarkFlagRequired("id")
	cmd.Flags().StringSliceP("words", "w", nil, "hex random words")
	cmd.MarkFlagRequired("words")
	return cmd
}

//CheckUpkeepCmd 是否可以开奖
func CheckUpkeepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check whether the round can be closed",
		Run: func(cmd *cobra.Command, args []string) {
			gameID, _ := cmd.Flags().GetString("game")
			query(cmd, "CheckUpkeep", &hty.ReqHotGame{GameId: gameID})
		},
	}
	addGameFlag(cmd)
	return cmd
}

//InfoCmd 游戏状态
func InfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show a game",
		Run: func(cmd *cobra.Command, args []string) {
			gameID, _ := cmd.Flags().GetString("game")
			query(cmd, "GetGameInfo", &hty.ReqHotGame{GameId: gameID})
		},
	}
	addGameFlag(cmd)
	return cmd
}

//PlayerCmd 第 index 次下注
func PlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Show the entry at index, optionally among heads or tails only",
		Run: func(cmd *cobra.Command, args []string) {
			gameID, _ := cmd.Flags().GetString("game")
			index, _ := cmd.Flags().GetInt64("index")
			side, _ := cmd.Flags().GetString("outcome")
			req := &hty.ReqHotIndex{GameId: gameID, Index: index}
			if side == "" {
				query(cmd, "GetPlayer", req)
				return
			}
			outcome, err := hty.ParseOutcome(strings.ToLower(side))
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return
			}
			if outcome == hty.HotHeads {
				query(cmd, "GetHeader", req)
			} else {
				query(cmd, "GetTailer", req)
			}
		},
	}
	addGameFlag(cmd)
	cmd.Flags().Int64P("index", "i", 0, "entry index")
	cmd.Flags().StringP("outcome", "o", "", "heads or tails")
	return cmd
}

//RecentCmd 上一轮的结果
func RecentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recent",
		Short: "Show the most recent winner and flip",
		Run: func(cmd *cobra.Command, args []string) {
			gameID, _ := cmd.Flags().GetString("game")
			query(cmd, "GetRecentWinner", &hty.ReqHotGame{GameId: gameID})
			query(cmd, "GetRecentFlip", &hty.ReqHotGame{GameId: gameID})
		},
	}
	addGameFlag(cmd)
	return cmd
}

//WinnerShareCmd 赢了以后的奖金
func WinnerShareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "share",
		Short: "Payout of a stake if it wins, or of the last round when amount is empty",
		Run: func(cmd *cobra.Command, args []string) {
			gameID, _ := cmd.Flags().GetString("game")
			amount, err := parseAmount(cmd, "amount")
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return
			}
			side, _ := cmd.Flags().GetString("outcome")
			outcome, err := hty.ParseOutcome(strings.ToLower(side))
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return
			}
			query(cmd, "GetWinnerShare", &hty.ReqHotWinnerShare{GameId: gameID, Amount: amount, Outcome: outcome})
		},
	}
	addGameFlag(cmd)
	cmd.Flags().StringP("amount", "a", "", "stake")
	cmd.Flags().StringP("outcome", "o", "heads", "heads or tails")
	return cmd
}

//HistoryCmd 开奖历史
func HistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List finished rounds",
		Run: func(cmd *cobra.Command, args []string) {
			gameID, _ := cmd.Flags().GetString("game")
			round, _ := cmd.Flags().GetInt64("round")
			count, _ := cmd.Flags().GetInt32("count")
			direction, _ := cmd.Flags().GetInt32("direction")
			query(cmd, "GetRoundHistory", &hty.ReqHotRoundHistory{GameId: gameID, Round: round, Count: count, Direction: direction})
		},
	}
	addGameFlag(cmd)
	cmd.Flags().Int64P("round", "r", 0, "start after this round")
	cmd.Flags().Int32P("count", "c", hty.DefaultRoundCount, "number of rounds")
	cmd.Flags().Int32P("direction", "d", 0, "0 newest first, 1 oldest first")
	return cmd
}

//GamesCmd 地址创建的游戏
func GamesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "games",
		Short: "List games created by an address",
		Run: func(cmd *cobra.Command, args []string) {
			addr, _ := cmd.Flags().GetString("addr")
			query(cmd, "GetGamesByCreator", &types.ReqAddr{Addr: addr})
		},
	}
	cmd.Flags().StringP("addr", "a", "", "creator address")
	cmd.MarkFlagRequired("addr")
	return cmd
}

func sendTx(cmd *cobra.Command, action string, param types.Message) {
	priv, err := client.GetPrivKey(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	tx, err := hty.CreateTx(action, param)
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
	reply, err := node.Query(hty.HotX, funcName, param)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	client.PrintJSON(reply)
}
