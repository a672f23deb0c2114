// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor_test

import (
	"fmt"
	"testing"

	"github.com/33cn/hot/common/crypto"
	"github.com/33cn/hot/executor"
	_ "github.com/33cn/hot/system/dapp/coins"
	cty "github.com/33cn/hot/system/dapp/coins/types"
	"github.com/33cn/hot/types"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var genesisTime int64 = 1514533394

func newExecutor(t *testing.T) (*executor.Executor, crypto.PrivKey) {
	priv, err := types.GenKey()
	require.Nil(t, err)
	cfg := types.MustInitCfgString(fmt.Sprintf(`
[genesis]
genesisBlockTime=%d
[[genesis.accounts]]
addr="%s"
amount=%d
`, genesisTime, types.PrivKeyToAddr(priv), 100*types.Coin))
	exec, err := executor.New(cfg, newMemDB(t), newMemDB(t))
	require.Nil(t, err)
	require.Nil(t, exec.Genesis())
	return exec, priv
}

func transferTx(t *testing.T, priv crypto.PrivKey, to string, amount int64) *types.Transaction {
	tx, err := cty.CreateTransfer(to, amount, "")
	require.Nil(t, err)
	tx.Sign(priv)
	return tx
}

func balance(t *testing.T, exec *executor.Executor, addr string) int64 {
	reply, err := exec.Query(types.CoinsX, "GetBalance", &types.ReqBalance{Addresses: []string{addr}})
	require.Nil(t, err)
	return reply.(*types.Accounts).Acc[0].Balance
}

func TestGenesis(t *testing.T) {
	exec, priv := newExecutor(t)
	assert.Equal(t, 100*types.Coin, balance(t, exec, types.PrivKeyToAddr(priv)))
	last := exec.LastHeader()
	require.NotNil(t, last)
	assert.Equal(t, int64(0), last.Height)
	assert.Equal(t, genesisTime, last.BlockTime)
	//重复执行没有影响
	assert.Nil(t, exec.Genesis())
	assert.Equal(t, 100*types.Coin, balance(t, exec, types.PrivKeyToAddr(priv)))
}

func TestExecBlock(t *testing.T) {
	exec, priv := newExecutor(t)
	to, err := types.GenKey()
	require.Nil(t, err)
	toAddr := types.PrivKeyToAddr(to)

	tx1 := transferTx(t, priv, toAddr, 10*types.Coin)
	//余额不足, 回滚
	tx2 := transferTx(t, to, types.PrivKeyToAddr(priv), 20*types.Coin)
	block := &types.Block{Height: 1, BlockTime: genesisTime + 1, Txs: []*types.Transaction{tx1, tx2, tx1}}
	detail, err := exec.ExecBlock(block)
	require.Nil(t, err)
	require.Len(t, detail.Receipts, 3)
	assert.Equal(t, int32(types.ExecOk), detail.Receipts[0].Ty)
	assert.Equal(t, int32(types.ExecErr), detail.Receipts[1].Ty)
	assert.Equal(t, types.ErrNoBalance.Error(), string(detail.Receipts[1].Logs[0].Log))
	assert.Equal(t, int32(types.ExecErr), detail.Receipts[2].Ty)
	assert.Equal(t, types.ErrTxExist.Error(), string(detail.Receipts[2].Logs[0].Log))

	assert.Equal(t, 90*types.Coin, balance(t, exec, types.PrivKeyToAddr(priv)))
	assert.Equal(t, 10*types.Coin, balance(t, exec, toAddr))

	result, err := exec.GetTxResult(tx1.Hash())
	require.Nil(t, err)
	assert.Equal(t, int64(1), result.Height)
	assert.Equal(t, int32(0), result.Index)
	saved, err := exec.GetBlock(1)
	require.Nil(t, err)
	assert.Len(t, saved.Block.Txs, 3)

	reply, err := exec.Query(types.CoinsX, "GetAddrReciver", &types.ReqAddr{Addr: toAddr})
	require.Nil(t, err)
	assert.Equal(t, 10*types.Coin, reply.(*types.Int64).Data)

	//已经打包的交易不能重复执行
	detail, err = exec.ExecBlock(&types.Block{Height: 2, BlockTime: genesisTime + 2, Txs: []*types.Transaction{tx1}})
	require.Nil(t, err)
	assert.Equal(t, int32(types.ExecErr), detail.Receipts[0].Ty)
	assert.Equal(t, 10*types.Coin, balance(t, exec, toAddr))
}

func TestExecBlockCheck(t *testing.T) {
	exec, priv := newExecutor(t)
	tx := transferTx(t, priv, types.PrivKeyToAddr(priv), types.Coin)
	_, err := exec.ExecBlock(&types.Block{Height: 2, BlockTime: genesisTime + 1, Txs: []*types.Transaction{tx}})
	assert.Equal(t, types.ErrBlockHeight, errors.Cause(err))
	_, err = exec.ExecBlock(&types.Block{Height: 1, BlockTime: genesisTime - 1, Txs: []*types.Transaction{tx}})
	assert.Equal(t, types.ErrBlockTime, errors.Cause(err))
	_, err = exec.ExecBlock(&types.Block{Height: 1, BlockTime: genesisTime})
	assert.Equal(t, types.ErrEmptyTx, err)

	//给自己转账失败, 未签名的交易失败
	unsigned, err := cty.CreateTransfer(types.PrivKeyToAddr(priv), types.Coin, "")
	require.Nil(t, err)
	detail, err := exec.ExecBlock(&types.Block{Height: 1, BlockTime: genesisTime, Txs: []*types.Transaction{tx, unsigned}})
	require.Nil(t, err)
	assert.Equal(t, types.ErrSendSameToRecv.Error(), string(detail.Receipts[0].Logs[0].Log))
	assert.Equal(t, types.ErrNoSignature.Error(), string(detail.Receipts[1].Logs[0].Log))
}

func TestExecUnknownDriver(t *testing.T) {
	exec, priv := newExecutor(t)
	tx := types.NewTransaction("nosuchexec", &types.ReqNil{})
	tx.Sign(priv)
	detail, err := exec.ExecBlock(&types.Block{Height: 1, BlockTime: genesisTime, Txs: []*types.Transaction{tx}})
	require.Nil(t, err)
	assert.Equal(t, types.ErrUnRegistedDriver.Error(), string(detail.Receipts[0].Logs[0].Log))
	_, err = exec.Query("nosuchexec", "Any", &types.ReqNil{})
	assert.Equal(t, types.ErrUnRegistedDriver, err)
}

func TestQueryClock(t *testing.T) {
	exec, _ := newExecutor(t)
	exec.SetClock(func() int64 { return genesisTime - 100 })
	assert.Equal(t, genesisTime, exec.Now())
	exec.SetClock(func() int64 { return genesisTime + 100 })
	assert.Equal(t, genesisTime+100, exec.Now())
}

func TestGetBlockHash(t *testing.T) {
	exec, priv := newExecutor(t)
	genesis := exec.LastHeader()
	hash, err := exec.GetBlockHash(0)
	require.Nil(t, err)
	assert.Equal(t, genesis.Hash, hash)

	to, err := types.GenKey()
	require.Nil(t, err)
	block := &types.Block{Height: 1, BlockTime: genesisTime + 1, Txs: []*types.Transaction{transferTx(t, priv, types.PrivKeyToAddr(to), 1)}}
	_, err = exec.ExecBlock(block)
	require.Nil(t, err)
	hash, err = exec.GetBlockHash(1)
	require.Nil(t, err)
	assert.Equal(t, exec.LastHeader().Hash, hash)
	assert.NotEqual(t, genesis.Hash, hash)

	_, err = exec.GetBlockHash(2)
	assert.Equal(t, types.ErrBlockHeight, errors.Cause(err))
	_, err = exec.GetBlockHash(-1)
	assert.Equal(t, types.ErrBlockHeight, errors.Cause(err))
}
