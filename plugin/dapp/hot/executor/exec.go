// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	hty "github.com/33cn/hot/plugin/dapp/hot/types"
	"github.com/33cn/hot/types"
)

//Exec_Create 创建游戏
func (h *Hot) Exec_Create(payload *hty.HotCreate, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := newAction(h, tx, index)
	return action.create(payload)
}

//Exec_Enter 下注
func (h *Hot) Exec_Enter(payload *hty.HotEnter, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := newAction(h, tx, index)
	return action.enter(payload)
}

//Exec_PerformUpkeep 任何人都可以调用, 条件不满足时失败
func (h *Hot) Exec_PerformUpkeep(payload *hty.HotPerformUpkeep, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := newAction(h, tx, index)
	return action.performUpkeep(payload)
}

//Exec_Fulfill 链外 coordinator 提交随机数
func (h *Hot) Exec_Fulfill(payload *hty.HotFulfill, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := newAction(h, tx, index)
	return action.fulfill(action.fromaddr, payload.GameId, payload.RequestId, payload.RandomWords)
}
