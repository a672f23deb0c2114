// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package executor 猜正反的奖池游戏
//
// 每个游戏有自己的资金地址。游戏开放时玩家选择正面或者反面并下注,
// 间隔时间到了以后任何人都可以发送 PerformUpkeep 关闭下注并请求随机数,
// coordinator 回调 fulfill 以后按照下注比例把奖池分给猜中的玩家, 游戏重新开放。
package executor

import (
	"github.com/33cn/hot/common/address"
	hty "github.com/33cn/hot/plugin/dapp/hot/types"
	vty "github.com/33cn/hot/plugin/dapp/vrf/types"
	drivers "github.com/33cn/hot/system/dapp"
	"github.com/33cn/hot/types"
	log "github.com/inconshreveable/log15"
	"github.com/pkg/errors"
)

var hlog = log.New("module", "execs.hot")

var driverName = hty.HotX

//Init 注册执行器
func Init(name string, cfg *types.Config) {
	if name != driverName {
		panic("system dapp can't be rename")
	}
	drivers.Register(driverName, newHot)
}

func init() {
	ety := types.LoadExecutorType(driverName)
	ety.InitFuncList(types.ListMethod(&Hot{}))
}

//GetName 执行器名字
func GetName() string {
	return newHot().GetName()
}

//Hot 执行器
type Hot struct {
	drivers.DriverBase
}

func newHot() drivers.Driver {
	h := &Hot{}
	h.SetChild(h)
	h.SetExecutorType(types.LoadExecutorType(driverName))
	return h
}

//GetDriverName 驱动名
func (h *Hot) GetDriverName() string {
	return driverName
}

func (h *Hot) hotConfig() *types.HotConfig {
	return h.GetAPI().GetConfig().Hot
}

//FulfillRandomWords vrf coordinator 的回调, consumer 为游戏的资金地址
func (h *Hot) FulfillRandomWords(caller, consumer string, requestID int64, words [][]byte) (*types.Receipt, error) {
	gameID, err := getGameIDByAddr(h.GetStateDB(), address.FormatAddr(consumer))
	if err != nil {
		return nil, errors.Wrapf(err, "consumer %s", consumer)
	}
	return newAction(h, nil, 0).fulfill(caller, gameID, requestID, words)
}

//ExecLocalRandomWords coordinator 回调时产生的开奖日志
func (h *Hot) ExecLocalRandomWords(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return h.execLocalResult(receipt)
}

var _ vty.Consumer = (*Hot)(nil)
var _ vty.ConsumerLocal = (*Hot)(nil)
