// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"reflect"

	"github.com/33cn/hot/types"
)

//hot op
const (
	HotActionCreate = 1 + iota
	HotActionEnter
	HotActionPerformUpkeep
	HotActionFulfill

	//log for hot
	TyLogHotCreate      = 1001
	TyLogHotEnter       = 1002
	TyLogHotDrawStarted = 1003
	TyLogHotResult      = 1004
)

//游戏状态
const (
	HotStateOpen    = 0
	HotStateDrawing = 1
)

//下注的结果
const (
	HotHeads = 0
	HotTails = 1
)

const (
	//HotX 执行器名字
	HotX = "hot"
	//DefaultRoundCount 查询历史时默认返回的轮数
	DefaultRoundCount = 20
	//MaxRoundCount 查询历史时最多返回的轮数
	MaxRoundCount = 100
)

var (
	actionName = map[string]int32{
		"Create":        HotActionCreate,
		"Enter":         HotActionEnter,
		"PerformUpkeep": HotActionPerformUpkeep,
		"Fulfill":       HotActionFulfill,
	}
	logMap = map[int64]*types.LogInfo{
		TyLogHotCreate:      {Ty: reflect.TypeOf(ReceiptHotCreate{}), Name: "LogHotCreate"},
		TyLogHotEnter:       {Ty: reflect.TypeOf(ReceiptHotEnter{}), Name: "LogHotEnter"},
		TyLogHotDrawStarted: {Ty: reflect.TypeOf(ReceiptHotDrawStarted{}), Name: "LogHotDrawStarted"},
		TyLogHotResult:      {Ty: reflect.TypeOf(ReceiptHotResult{}), Name: "LogHotResult"},
	}
)

func init() {
	types.RegistorExecutor(HotX, NewType())
}

//HotType hot 交易类型
type HotType struct {
	types.ExecTypeBase
}

//NewType new
func NewType() *HotType {
	c := &HotType{}
	c.SetChild(c)
	return c
}

//GetName 执行器名字
func (h *HotType) GetName() string {
	return HotX
}

//GetPayload HotAction
func (h *HotType) GetPayload() types.Message {
	return &HotAction{}
}

//GetTypeMap action 类型
func (h *HotType) GetTypeMap() map[string]int32 {
	return actionName
}

//GetLogMap 日志类型
func (h *HotType) GetLogMap() map[int64]*types.LogInfo {
	return logMap
}

//CreateTx 构造交易
func CreateTx(action string, param types.Message) (*types.Transaction, error) {
	return types.LoadExecutorType(HotX).CreateTransaction(action, param)
}

//OutcomeName heads or tails
func OutcomeName(outcome int32) string {
	switch outcome {
	case HotHeads:
		return "heads"
	case HotTails:
		return "tails"
	}
	return "unknown"
}

//ParseOutcome heads/tails/0/1
func ParseOutcome(s string) (int32, error) {
	switch s {
	case "heads", "head", "h", "0":
		return HotHeads, nil
	case "tails", "tail", "t", "1":
		return HotTails, nil
	}
	return 0, ErrHotOutcome
}

//StateName open or drawing
func StateName(state int32) string {
	switch state {
	case HotStateOpen:
		return "open"
	case HotStateDrawing:
		return "drawing"
	}
	return "unknown"
}

//GameExecName 游戏资金地址对应的名字
func GameExecName(gameID string) string {
	return HotX + "." + gameID
}
