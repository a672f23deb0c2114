// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/33cn/hot/client"
	"github.com/33cn/hot/common/crypto"
	hty "github.com/33cn/hot/plugin/dapp/hot/types"
	vty "github.com/33cn/hot/plugin/dapp/vrf/types"
	"github.com/33cn/hot/types"
	"github.com/inconshreveable/log15"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var olog = log15.New("module", "offchain")

//MockOffchainCmd 模拟链下的 keeper 和 vrf 节点: 检查 upkeep, 开奖, 生成随机数
func MockOffchainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mock-offchain",
		Short: "Check upkeep, perform it and fulfill the request through the vrf executor",
		Run: func(cmd *cobra.Command, args []string) {
			game, _ := cmd.Flags().GetString("game")
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
			winner, err := mockOffchain(node, priv, game)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return
			}
			if winner == "" {
				fmt.Println("no winner, pool rolls over")
				return
			}
			fmt.Println("recent winner:", winner)
		},
	}
	client.AddKeyFlag(cmd)
	cmd.Flags().StringP("game", "g", "", "game id")
	cmd.MarkFlagRequired("game")
	return cmd
}

func mockOffchain(node *client.Node, priv crypto.PrivKey, gameID string) (string, error) {
	req := &hty.ReqHotGame{GameId: gameID}
	reply, err := node.Query(hty.HotX, "CheckUpkeep", req)
	if err != nil {
		return "", err
	}
	check := reply.(*hty.ReplyCheckUpkeep)
	if !check.UpkeepNeeded {
		return "", errors.Wrapf(hty.ErrHotUpkeepNotNeeded, "open %v time %v players %v balance %v",
			check.IsOpen, check.TimePassed, check.HasPlayers, check.HasBalance)
	}
	tx, err := hty.CreateTx("PerformUpkeep", &hty.HotPerformUpkeep{GameId: gameID, CheckData: check.PerformData})
	if err != nil {
		return "", err
	}
	tx.Sign(priv)
	if _, err := node.SendTx(tx); err != nil {
		return "", err
	}
	game, err := queryGame(node, gameID)
	if err != nil {
		return "", err
	}
	if game.External {
		return "", errors.Errorf("game uses coordinator %s, request %d must be fulfilled there", game.Coordinator, game.PendingRequestId)
	}
	requestID := game.PendingRequestId
	olog.Info("mockOffchain draw started", "game", gameID, "request", requestID)
	if err := waitConfirmations(node, priv, requestID); err != nil {
		return "", err
	}
	tx, err = vty.CreateTx("FulfillRandomWords", &vty.VrfFulfillRandomWords{RequestId: requestID})
	if err != nil {
		return "", err
	}
	tx.Sign(priv)
	if _, err := node.SendTx(tx); err != nil {
		return "", err
	}
	reply, err = node.Query(hty.HotX, "GetRecentWinner", req)
	if err != nil {
		return "", err
	}
	return reply.(*types.ReplyString).Data, nil
}

func queryGame(node *client.Node, gameID string) (*hty.HotGame, error) {
	reply, err := node.Query(hty.HotX, "GetGameInfo", &hty.ReqHotGame{GameId: gameID})
	if err != nil {
		return nil, err
	}
	return reply.(*hty.HotGame), nil
}

//waitConfirmations 空块不能打包, 用 1 个单位的转账推进高度
func waitConfirmations(node *client.Node, priv crypto.PrivKey, requestID int64) error {
	reply, err := node.Query(vty.VrfX, "GetRequest", &vty.ReqVrfRequest{RequestId: requestID})
	if err != nil {
		return err
	}
	req := reply.(*vty.RandomWordsRequest)
	for node.Executor().LastHeader().Height+1 < req.Height+int64(req.Confirmations) {
		to, err := types.GenKey()
		if err != nil {
			return err
		}
		if _, err := node.Transfer(priv, types.PrivKeyToAddr(to), 1); err != nil {
			return err
		}
	}
	return nil
}
