// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/hot/common/address"
	drivers "github.com/33cn/hot/system/dapp"
	cty "github.com/33cn/hot/system/dapp/coins/types"
	"github.com/33cn/hot/types"
)

// Exec_Transfer 转账, 不允许直接转给执行器地址
func (c *Coins) Exec_Transfer(transfer *cty.CoinsTransfer, tx *types.Transaction, index int) (*types.Receipt, error) {
	if err := address.CheckAddress(transfer.To); err != nil {
		return nil, err
	}
	to := address.FormatAddr(transfer.To)
	if drivers.IsDriverAddress(to) {
		return nil, types.ErrInvalidAddress
	}
	clog.Debug("Exec_Transfer", "from", tx.From(), "to", to, "amount", types.FormatAmount(transfer.Amount))
	return c.GetCoinsAccount().Transfer(tx.From(), to, transfer.Amount)
}

// Exec_Genesis 创世分配
func (c *Coins) Exec_Genesis(genesis *cty.CoinsGenesis, tx *types.Transaction, index int) (*types.Receipt, error) {
	if c.GetHeight() != 0 {
		return nil, types.ErrGenesis
	}
	if err := address.CheckAddress(genesis.To); err != nil {
		return nil, err
	}
	return c.GetCoinsAccount().GenesisInit(address.FormatAddr(genesis.To), genesis.Amount)
}
