// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	hty "github.com/33cn/hot/plugin/dapp/hot/types"
	"github.com/33cn/hot/types"
)

//ExecLocal_Create 按照创建者索引游戏
func (h *Hot) ExecLocal_Create(payload *hty.HotCreate, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	set := &types.LocalDBSet{}
	for _, l := range receipt.Logs {
		if l.Ty != hty.TyLogHotCreate {
			continue
		}
		var r hty.ReceiptHotCreate
		if err := types.Decode(l.Log, &r); err != nil {
			return nil, err
		}
		set.KV = append(set.KV, &types.KeyValue{
			Key:   calcCreatorKey(r.Creator, r.GameId),
			Value: types.Encode(&types.ReqString{Data: r.GameId}),
		})
	}
	return set, nil
}

//ExecLocal_Fulfill 开奖历史
func (h *Hot) ExecLocal_Fulfill(payload *hty.HotFulfill, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return h.execLocalResult(receipt)
}

func (h *Hot) execLocalResult(receipt *types.ReceiptData) (*types.LocalDBSet, error) {
	set := &types.LocalDBSet{}
	for _, l := range receipt.Logs {
		if l.Ty != hty.TyLogHotResult {
			continue
		}
		var r hty.ReceiptHotResult
		if err := types.Decode(l.Log, &r); err != nil {
			return nil, err
		}
		set.KV = append(set.KV, &types.KeyValue{Key: calcRoundKey(r.GameId, r.Round), Value: l.Log})
	}
	return set, nil
}
