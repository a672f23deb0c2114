// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/33cn/hot/types"
)

// action type
const (
	CoinsActionTransfer = 1
	CoinsActionGenesis  = 2
)

var (
	// CoinsX coins
	CoinsX = types.CoinsX
	// ExecerCoins execer coins
	ExecerCoins = []byte(CoinsX)
	actionName  = map[string]int32{
		"Transfer": CoinsActionTransfer,
		"Genesis":  CoinsActionGenesis,
	}
)

func init() {
	types.RegistorExecutor(CoinsX, NewType())
}

// CoinsType coins 交易类型
type CoinsType struct {
	types.ExecTypeBase
}

// NewType new coins type
func NewType() *CoinsType {
	c := &CoinsType{}
	c.SetChild(c)
	return c
}

// GetName 执行器名字
func (c *CoinsType) GetName() string {
	return CoinsX
}

// GetPayload 返回 CoinsAction
func (c *CoinsType) GetPayload() types.Message {
	return &CoinsAction{}
}

// GetLogMap coins 只使用系统日志
func (c *CoinsType) GetLogMap() map[int64]*types.LogInfo {
	return nil
}

// GetTypeMap action 名字和类型的对应关系
func (c *CoinsType) GetTypeMap() map[string]int32 {
	return actionName
}

// CreateTransfer 构造转账交易
func CreateTransfer(to string, amount int64, note string) (*types.Transaction, error) {
	return types.LoadExecutorType(CoinsX).CreateTransaction("Transfer", &CoinsTransfer{To: to, Amount: amount, Note: note})
}

// CreateGenesis 构造创世交易, 只能在高度0执行
func CreateGenesis(to string, amount int64) (*types.Transaction, error) {
	return types.LoadExecutorType(CoinsX).CreateTransaction("Genesis", &CoinsGenesis{To: to, Amount: amount})
}
