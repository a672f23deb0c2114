// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/hot/common/address"
	"github.com/33cn/hot/types"
)

// Query_GetAddrReciver 地址累计收到的金额
func (c *Coins) Query_GetAddrReciver(in *types.ReqAddr) (types.Message, error) {
	reciver := types.Int64{}
	addrReciver, err := c.GetLocalDB().Get(calcAddrKey(address.FormatAddr(in.Addr)))
	if err != nil {
		if err == types.ErrNotFound {
			return &reciver, nil
		}
		return nil, err
	}
	err = types.Decode(addrReciver, &reciver)
	if err != nil {
		return nil, err
	}
	return &reciver, nil
}

// Query_GetBalance 查询余额
func (c *Coins) Query_GetBalance(in *types.ReqBalance) (types.Message, error) {
	if len(in.Addresses) == 0 {
		return nil, types.ErrInvalidParam
	}
	addrs := make([]string, 0, len(in.Addresses))
	for _, addr := range in.Addresses {
		if err := address.CheckAddress(addr); err != nil {
			return nil, err
		}
		addrs = append(addrs, address.FormatAddr(addr))
	}
	return &types.Accounts{Acc: c.GetCoinsAccount().LoadAccounts(addrs)}, nil
}
