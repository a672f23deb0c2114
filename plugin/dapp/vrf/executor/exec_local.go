// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	vty "github.com/33cn/hot/plugin/dapp/vrf/types"
	"github.com/33cn/hot/types"
)

//ExecLocal_CreateSubscription 按照 owner 索引订阅
func (v *Vrf) ExecLocal_CreateSubscription(payload *vty.VrfCreateSubscription, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	set := &types.LocalDBSet{}
	for _, l := range receipt.Logs {
		if l.Ty != vty.TyLogVrfSubscriptionCreated {
			continue
		}
		var sub vty.Subscription
		if err := types.Decode(l.Log, &sub); err != nil {
			return nil, err
		}
		set.KV = append(set.KV, &types.KeyValue{
			Key:   calcOwnerSubKey(sub.Owner, sub.SubId),
			Value: types.Encode(&types.Int64{Data: sub.SubId}),
		})
	}
	return set, nil
}

//ExecLocal_FulfillRandomWords consumer 的日志交给 consumer 建立索引
func (v *Vrf) ExecLocal_FulfillRandomWords(payload *vty.VrfFulfillRandomWords, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	set := &types.LocalDBSet{}
	for _, l := range receipt.Logs {
		if l.Ty != vty.TyLogVrfRandomWordsFulfilled {
			continue
		}
		var proof vty.RandomWordsProof
		if err := types.Decode(l.Log, &proof); err != nil {
			return nil, err
		}
		driver, err := v.GetAPI().LoadDriver(proof.Execer)
		if err != nil {
			return nil, err
		}
		local, ok := driver.(vty.ConsumerLocal)
		if !ok {
			continue
		}
		lset, err := local.ExecLocalRandomWords(tx, receipt, index)
		if err != nil {
			return nil, err
		}
		set.KV = append(set.KV, lset.KV...)
	}
	return set, nil
}
