// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/hot/common/address"
	cty "github.com/33cn/hot/system/dapp/coins/types"
	"github.com/33cn/hot/types"
)

func calcAddrKey(addr string) []byte {
	return []byte("LODB-coins-Reciver:" + addr)
}

func (c *Coins) updateReciver(addr string, amount int64) (*types.KeyValue, error) {
	var reciver types.Int64
	value, err := c.GetLocalDB().Get(calcAddrKey(addr))
	if err != nil && err != types.ErrNotFound {
		return nil, err
	}
	if len(value) != 0 {
		if err := types.Decode(value, &reciver); err != nil {
			return nil, err
		}
	}
	reciver.Data += amount
	return &types.KeyValue{Key: calcAddrKey(addr), Value: types.Encode(&reciver)}, nil
}

// ExecLocal_Transfer 统计地址收到的金额
func (c *Coins) ExecLocal_Transfer(transfer *cty.CoinsTransfer, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	kv, err := c.updateReciver(address.FormatAddr(transfer.To), transfer.Amount)
	if err != nil {
		return nil, err
	}
	return &types.LocalDBSet{KV: []*types.KeyValue{kv}}, nil
}

// ExecLocal_Genesis 统计地址收到的金额
func (c *Coins) ExecLocal_Genesis(genesis *cty.CoinsGenesis, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	kv, err := c.updateReciver(address.FormatAddr(genesis.To), genesis.Amount)
	if err != nil {
		return nil, err
	}
	return &types.LocalDBSet{KV: []*types.KeyValue{kv}}, nil
}
