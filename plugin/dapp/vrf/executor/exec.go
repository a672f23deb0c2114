// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	vty "github.com/33cn/hot/plugin/dapp/vrf/types"
	"github.com/33cn/hot/types"
)

//Exec_CreateSubscription 创建订阅
func (v *Vrf) Exec_CreateSubscription(payload *vty.VrfCreateSubscription, tx *types.Transaction, index int) (*types.Receipt, error) {
	return newAction(v, tx, index).createSubscription()
}

//Exec_FundSubscription 给订阅充值
func (v *Vrf) Exec_FundSubscription(payload *vty.VrfFundSubscription, tx *types.Transaction, index int) (*types.Receipt, error) {
	return newAction(v, tx, index).fundSubscription(payload)
}

//Exec_AddConsumer 添加 consumer
func (v *Vrf) Exec_AddConsumer(payload *vty.VrfAddConsumer, tx *types.Transaction, index int) (*types.Receipt, error) {
	return newAction(v, tx, index).addConsumer(payload)
}

//Exec_FulfillRandomWords 生成随机数
func (v *Vrf) Exec_FulfillRandomWords(payload *vty.VrfFulfillRandomWords, tx *types.Transaction, index int) (*types.Receipt, error) {
	return newAction(v, tx, index).fulfillRandomWords(payload)
}
