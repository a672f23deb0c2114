// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

/*
coins 是一个货币的exec。内置货币的执行器。

主要提供两种操作：
EventTransfer -> 转移资产
EventGenesis -> 创世分配, 只在高度0执行
*/

import (
	drivers "github.com/33cn/hot/system/dapp"
	"github.com/33cn/hot/types"
	log "github.com/inconshreveable/log15"
)

var clog = log.New("module", "execs.coins")
var driverName = types.CoinsX

// Init 注册执行器
func Init(name string, cfg *types.Config) {
	if name != driverName {
		panic("system dapp can't be rename")
	}
	drivers.Register(driverName, newCoins)
}

//初始化过程比较重量级，有很多reflact, 所以弄成全局的
func init() {
	ety := types.LoadExecutorType(driverName)
	ety.InitFuncList(types.ListMethod(&Coins{}))
}

// GetName 执行器名字
func GetName() string {
	return newCoins().GetName()
}

// Coins 原生币执行器
type Coins struct {
	drivers.DriverBase
}

func newCoins() drivers.Driver {
	c := &Coins{}
	c.SetChild(c)
	c.SetExecutorType(types.LoadExecutorType(driverName))
	return c
}

// GetDriverName 驱动名
func (c *Coins) GetDriverName() string {
	return driverName
}
