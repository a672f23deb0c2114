// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor_test

import (
	"strings"
	"testing"

	"github.com/33cn/hot/common/address"
	cty "github.com/33cn/hot/system/dapp/coins/types"
	"github.com/33cn/hot/types"
	"github.com/33cn/hot/util/testnode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertErr(t *testing.T, want, err error) {
	require.NotNil(t, err)
	assert.True(t, strings.HasSuffix(err.Error(), want.Error()), "want %v got %v", want, err)
}

func reciver(t *testing.T, mock *testnode.HotMock, addr string) int64 {
	reply, err := mock.Query(cty.CoinsX, "GetAddrReciver", &types.ReqAddr{Addr: addr})
	require.Nil(t, err)
	return reply.(*types.Int64).Data
}

func TestTransfer(t *testing.T) {
	mock := testnode.New()
	defer mock.Close()
	from := mock.GetGenesisKey(0)
	to, _ := mock.Genaddress()

	require.Nil(t, mock.Transfer(from, to, 5*types.Coin))
	assert.Equal(t, 5*types.Coin, mock.GetBalance(to))
	assert.Equal(t, testnode.GenesisAmount-5*types.Coin, mock.GetBalance(mock.GetGenesisAddr(0)))
	assert.Equal(t, 5*types.Coin, reciver(t, mock, to))
	assert.Equal(t, testnode.GenesisAmount, reciver(t, mock, mock.GetGenesisAddr(0)))

	//地址大小写不敏感
	require.Nil(t, mock.Transfer(from, to[:2]+strings.ToUpper(to[2:]), types.Coin))
	assert.Equal(t, 6*types.Coin, mock.GetBalance(to))
}

func TestTransferErr(t *testing.T) {
	mock := testnode.New()
	defer mock.Close()
	from := mock.GetGenesisKey(0)
	to, priv := mock.Genaddress()

	assertErr(t, types.ErrNoBalance, mock.Transfer(priv, mock.GetGenesisAddr(0), 1))
	assertErr(t, types.ErrAmount, mock.Transfer(from, to, 0))
	assertErr(t, types.ErrSendSameToRecv, mock.Transfer(from, mock.GetGenesisAddr(0), 1))
	assert.NotNil(t, mock.Transfer(from, "not an address", 1))
	//执行器地址只能由执行器转入
	assertErr(t, types.ErrInvalidAddress, mock.Transfer(from, address.ExecAddress("hot"), 1))
	assert.Equal(t, testnode.GenesisAmount, mock.GetBalance(mock.GetGenesisAddr(0)))
	assert.Equal(t, int64(0), reciver(t, mock, to))
}

func TestGenesisOnlyAtZero(t *testing.T) {
	mock := testnode.New()
	defer mock.Close()
	to, _ := mock.Genaddress()
	tx, err := cty.CreateGenesis(to, types.Coin)
	require.Nil(t, err)
	_, err = mock.SendTx(mock.GetGenesisKey(0), tx)
	assertErr(t, types.ErrGenesis, err)
	assert.Equal(t, int64(0), mock.GetBalance(to))
}
