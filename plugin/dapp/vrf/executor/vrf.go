// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package executor vrf coordinator 执行器
//
// 订阅的 owner 把 consumer 加入订阅以后, consumer 执行器可以在自己的交易里面
// 请求随机数。请求达到确认高度以后, 任何人都可以发送 FulfillRandomWords 交易,
// coordinator 用自己的 vrf 私钥生成随机数和证明, 然后回调 consumer。
package executor

import (
	"sync"

	"github.com/33cn/hot/common"
	"github.com/33cn/hot/common/vrf/p256"
	vty "github.com/33cn/hot/plugin/dapp/vrf/types"
	drivers "github.com/33cn/hot/system/dapp"
	"github.com/33cn/hot/types"
	log "github.com/inconshreveable/log15"
	"github.com/pkg/errors"
)

var vlog = log.New("module", "execs.vrf")

var driverName = vty.VrfX

var (
	keyMu    sync.Mutex
	keyCache = make(map[string]*p256.PrivateKey)
)

//Init 注册执行器
func Init(name string, cfg *types.Config) {
	if name != driverName {
		panic("system dapp can't be rename")
	}
	drivers.Register(driverName, newVrf)
}

//初始化过程比较重量级，有很多reflact, 所以弄成全局的
func init() {
	ety := types.LoadExecutorType(driverName)
	ety.InitFuncList(types.ListMethod(&Vrf{}))
}

//GetName 执行器名字
func GetName() string {
	return newVrf().GetName()
}

//Vrf coordinator 执行器
type Vrf struct {
	drivers.DriverBase
}

func newVrf() drivers.Driver {
	v := &Vrf{}
	v.SetChild(v)
	v.SetExecutorType(types.LoadExecutorType(driverName))
	return v
}

//GetDriverName 驱动名
func (v *Vrf) GetDriverName() string {
	return driverName
}

func (v *Vrf) vrfConfig() *types.VrfConfig {
	return v.GetAPI().GetConfig().Vrf
}

//privateKey 配置中的 vrf 私钥, 解析结果缓存
func (v *Vrf) privateKey() (*p256.PrivateKey, error) {
	hexkey := v.vrfConfig().PrivateKey
	keyMu.Lock()
	defer keyMu.Unlock()
	if key, ok := keyCache[hexkey]; ok {
		return key, nil
	}
	d, err := common.FromHex(hexkey)
	if err != nil {
		return nil, errors.Wrap(vty.ErrVrfKey, err.Error())
	}
	key, err := p256.NewVrfPrivateKey(d)
	if err != nil {
		return nil, errors.Wrap(vty.ErrVrfKey, err.Error())
	}
	keyCache[hexkey] = key
	return key, nil
}

//RequestRandomWords 由 consumer 执行器在自己的交易中调用
func (v *Vrf) RequestRandomWords(req *vty.ReqRandomWords) (int64, *types.Receipt, error) {
	action := newAction(v, nil, 0)
	return action.requestRandomWords(req)
}
