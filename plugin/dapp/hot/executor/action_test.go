// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"testing"

	"github.com/33cn/hot/common/address"
	dbm "github.com/33cn/hot/common/db"
	"github.com/33cn/hot/executor"
	hty "github.com/33cn/hot/plugin/dapp/hot/types"
	"github.com/33cn/hot/types"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//游戏地址的余额不够支付奖金时, 整个回调失败, 游戏停在 drawing, 余额不变
func TestFulfillPayoutFailed(t *testing.T) {
	db, err := dbm.NewDB("hot", dbm.MemDBBackendStr, "", 0)
	require.Nil(t, err)
	state := executor.NewStateDB(db)
	h := newHot().(*Hot)
	h.SetStateDB(state)
	h.SetEnv(10, 1514533404)

	coordinator := address.ExecAddress("vrf")
	gameAddr := address.ExecAddress("hot.1")
	alice := address.ExecAddress("alice")
	bob := address.ExecAddress("bob")
	game := &hty.HotGame{
		GameId:           "1",
		Address:          gameAddr,
		EntranceFee:      100,
		Coordinator:      coordinator,
		State:            hty.HotStateDrawing,
		Round:            1,
		PendingRequestId: 7,
		Entries:          []*hty.HotEntry{entry(alice, hty.HotHeads, 100), entry(bob, hty.HotHeads, 100)},
	}
	state.Begin()
	require.Nil(t, state.Set(calcGameKey(game.GameId), types.Encode(game)))
	require.Nil(t, state.Set(calcGameAddrKey(gameAddr), types.Encode(&types.ReqString{Data: game.GameId})))
	//奖池 200, 地址上只有 150, 第一笔转账成功, 第二笔失败
	acc := h.GetCoinsAccount()
	require.Nil(t, acc.SaveAccount(&types.Account{Addr: gameAddr, Balance: 150}))
	require.Nil(t, state.Commit())

	state.Begin()
	receipt, err := h.FulfillRandomWords(coordinator, gameAddr, 7, [][]byte{word(2)})
	require.NotNil(t, err)
	assert.Nil(t, receipt)
	assert.Equal(t, hty.ErrHotPayoutFailed, errors.Cause(err))
	state.Rollback()

	after, err := getGame(state, game.GameId)
	require.Nil(t, err)
	assert.Equal(t, int32(hty.HotStateDrawing), after.State)
	assert.Equal(t, int64(7), after.PendingRequestId)
	assert.Equal(t, int64(1), after.Round)
	assert.Len(t, after.Entries, 2)
	assert.False(t, after.HasResult)
	assert.Equal(t, int64(150), acc.LoadAccount(gameAddr).Balance)
	assert.Equal(t, int64(0), acc.LoadAccount(alice).Balance)
	assert.Equal(t, int64(0), acc.LoadAccount(bob).Balance)

	//补足余额以后同一个请求可以开奖
	state.Begin()
	require.Nil(t, acc.SaveAccount(&types.Account{Addr: gameAddr, Balance: 200}))
	require.Nil(t, state.Commit())
	state.Begin()
	_, err = h.FulfillRandomWords(coordinator, gameAddr, 7, [][]byte{word(2)})
	require.Nil(t, err)
	require.Nil(t, state.Commit())
	after, err = getGame(state, game.GameId)
	require.Nil(t, err)
	assert.Equal(t, int32(hty.HotStateOpen), after.State)
	assert.Equal(t, int64(0), after.PendingRequestId)
	assert.Equal(t, int64(100), acc.LoadAccount(alice).Balance)
	assert.Equal(t, int64(100), acc.LoadAccount(bob).Balance)
	assert.Equal(t, int64(0), acc.LoadAccount(gameAddr).Balance)
}
