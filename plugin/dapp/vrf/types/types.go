// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"math/big"
	"reflect"

	"github.com/33cn/hot/types"
)

//vrf op
const (
	VrfActionCreateSubscription = 1 + iota
	VrfActionFundSubscription
	VrfActionAddConsumer
	VrfActionFulfillRandomWords

	//log for vrf
	TyLogVrfSubscriptionCreated  = 901
	TyLogVrfSubscriptionFunded   = 902
	TyLogVrfConsumerAdded        = 903
	TyLogVrfRandomWordsRequested = 904
	TyLogVrfRandomWordsFulfilled = 905
)

const (
	//VrfX 执行器名字
	VrfX = "vrf"
	//MaxConsumers 一个订阅最多的 consumer 数量
	MaxConsumers = 100
	//WeiPerUnit gasPriceLink 以 1e-18 coin 计价, 1 个最小单位等于 1e10
	WeiPerUnit = 1e10
)

var (
	actionName = map[string]int32{
		"CreateSubscription": VrfActionCreateSubscription,
		"FundSubscription":   VrfActionFundSubscription,
		"AddConsumer":        VrfActionAddConsumer,
		"FulfillRandomWords": VrfActionFulfillRandomWords,
	}
	logMap = map[int64]*types.LogInfo{
		TyLogVrfSubscriptionCreated:  {Ty: reflect.TypeOf(Subscription{}), Name: "LogVrfSubscriptionCreated"},
		TyLogVrfSubscriptionFunded:   {Ty: reflect.TypeOf(Subscription{}), Name: "LogVrfSubscriptionFunded"},
		TyLogVrfConsumerAdded:        {Ty: reflect.TypeOf(Subscription{}), Name: "LogVrfConsumerAdded"},
		TyLogVrfRandomWordsRequested: {Ty: reflect.TypeOf(RandomWordsRequest{}), Name: "LogVrfRandomWordsRequested"},
		TyLogVrfRandomWordsFulfilled: {Ty: reflect.TypeOf(RandomWordsProof{}), Name: "LogVrfRandomWordsFulfilled"},
	}
)

func init() {
	types.RegistorExecutor(VrfX, NewType())
}

//Coordinator 其他执行器在自己的交易里面请求随机数
type Coordinator interface {
	RequestRandomWords(req *ReqRandomWords) (requestID int64, receipt *types.Receipt, err error)
}

//Consumer 接收随机数的执行器, caller 为 coordinator 的地址
type Consumer interface {
	FulfillRandomWords(caller, consumer string, requestID int64, words [][]byte) (*types.Receipt, error)
}

//ConsumerLocal consumer 在 FulfillRandomWords 交易中生成的日志由自己建立本地索引
type ConsumerLocal interface {
	ExecLocalRandomWords(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error)
}

//VrfType vrf 交易类型
type VrfType struct {
	types.ExecTypeBase
}

//NewType new
func NewType() *VrfType {
	c := &VrfType{}
	c.SetChild(c)
	return c
}

//GetName 执行器名字
func (v *VrfType) GetName() string {
	return VrfX
}

//GetPayload VrfAction
func (v *VrfType) GetPayload() types.Message {
	return &VrfAction{}
}

//GetTypeMap action 类型
func (v *VrfType) GetTypeMap() map[string]int32 {
	return actionName
}

//GetLogMap 日志类型
func (v *VrfType) GetLogMap() map[int64]*types.LogInfo {
	return logMap
}

//CreateTx 构造交易
func CreateTx(action string, param types.Message) (*types.Transaction, error) {
	return types.LoadExecutorType(VrfX).CreateTransaction(action, param)
}

//CalcPayment 一次请求的费用: baseFee + gasPriceLink * callbackGasLimit, 换算成最小单位后截断
func CalcPayment(cfg *types.VrfConfig, gasLimit int64) int64 {
	gas := new(big.Int).Mul(big.NewInt(cfg.GasPriceLink), big.NewInt(gasLimit))
	gas.Quo(gas, big.NewInt(WeiPerUnit))
	return cfg.BaseFee + gas.Int64()
}
