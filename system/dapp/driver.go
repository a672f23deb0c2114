// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dapp 执行器的公共接口和基础实现
//
// 执行器通过反射调用子类的 Exec_XXX, ExecLocal_XXX, Query_XXX 方法,
// XXX 为 action 的名字或者查询的函数名。
package dapp

import (
	"reflect"

	"github.com/33cn/hot/account"
	dbm "github.com/33cn/hot/common/db"
	"github.com/33cn/hot/types"
	log "github.com/inconshreveable/log15"
)

var blog = log.New("module", "execs.base")

//ExecAPI 执行器访问执行环境的接口, 由 executor 实现
type ExecAPI interface {
	GetConfig() *types.Config
	//LoadDriver 加载一个和当前交易共享状态数据库以及区块信息的执行器
	LoadDriver(name string) (Driver, error)
	//GetBlockHash 已经提交的区块的哈希, 高度必须小于当前区块
	GetBlockHash(height int64) ([]byte, error)
}

//Driver 执行器
type Driver interface {
	SetStateDB(dbm.KV)
	GetStateDB() dbm.KV
	SetLocalDB(dbm.KVDB)
	GetLocalDB() dbm.KVDB
	GetCoinsAccount() *account.DB
	//驱动的名字，这个名称是固定的
	GetDriverName() string
	GetName() string
	GetExecAddr() string
	SetEnv(height, blocktime int64)
	GetHeight() int64
	GetBlockTime() int64
	SetAPI(ExecAPI)
	GetAPI() ExecAPI
	CheckTx(tx *types.Transaction, index int) error
	Exec(tx *types.Transaction, index int) (*types.Receipt, error)
	ExecLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error)
	Query(funcName string, params []byte) (types.Message, error)
	GetFuncMap() map[string]reflect.Method
	GetExecutorType() types.ExecutorType
}

//DriverBase 执行器的公共部分
type DriverBase struct {
	statedb      dbm.KV
	localdb      dbm.KVDB
	coinsaccount *account.DB
	height       int64
	blocktime    int64
	child        Driver
	childValue   reflect.Value
	api          ExecAPI
	ety          types.ExecutorType
}

//SetAPI 设置执行环境
func (d *DriverBase) SetAPI(api ExecAPI) {
	d.api = api
}

//GetAPI 执行环境
func (d *DriverBase) GetAPI() ExecAPI {
	return d.api
}

//SetEnv 设置区块高度和时间
func (d *DriverBase) SetEnv(height, blocktime int64) {
	d.height = height
	d.blocktime = blocktime
}

//SetExecutorType 设置交易类型
func (d *DriverBase) SetExecutorType(e types.ExecutorType) {
	d.ety = e
}

//GetExecutorType 交易类型
func (d *DriverBase) GetExecutorType() types.ExecutorType {
	return d.ety
}

//GetFuncMap 子类的方法列表
func (d *DriverBase) GetFuncMap() map[string]reflect.Method {
	if d.ety == nil {
		return nil
	}
	return d.ety.GetExecFuncMap()
}

//SetChild 设置子类
func (d *DriverBase) SetChild(e Driver) {
	d.child = e
	d.childValue = reflect.ValueOf(e)
}

//CheckTx 默认情况下，tx.To 地址指向合约地址
func (d *DriverBase) CheckTx(tx *types.Transaction, index int) error {
	if ExecAddress(string(tx.Execer)) != tx.To {
		return types.ErrToAddrNotSameToExecAddr
	}
	return nil
}

//Exec 调用子类的 Exec_XXX
func (d *DriverBase) Exec(tx *types.Transaction, index int) (receipt *types.Receipt, err error) {
	if d.ety == nil {
		return nil, types.ErrActionNotSupport
	}
	name, value, err := d.ety.DecodePayloadValue(tx)
	if err != nil {
		return nil, err
	}
	funcmap := d.child.GetFuncMap()
	funcname := "Exec_" + name
	if _, ok := funcmap[funcname]; !ok {
		return nil, types.ErrActionNotSupport
	}
	valueret := funcmap[funcname].Func.Call([]reflect.Value{d.childValue, value, reflect.ValueOf(tx), reflect.ValueOf(index)})
	if !types.IsOK(valueret, 2) {
		return nil, types.ErrMethodReturnType
	}
	//参数1
	r1 := valueret[0].Interface()
	if r1 != nil {
		if r, ok := r1.(*types.Receipt); ok {
			receipt = r
		} else {
			return nil, types.ErrMethodReturnType
		}
	}
	//参数2
	r2 := valueret[1].Interface()
	err = nil
	if r2 != nil {
		if r, ok := r2.(error); ok {
			err = r
		} else {
			return nil, types.ErrMethodReturnType
		}
	}
	return receipt, err
}

//ExecLocal 调用子类的 ExecLocal_XXX, 子类没有实现时返回空集合
func (d *DriverBase) ExecLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	var set types.LocalDBSet
	lset, err := d.callLocal("ExecLocal_", tx, receipt, index)
	if err != nil {
		if err != types.ErrActionNotSupport {
			blog.Error("call ExecLocal", "tx.Execer", string(tx.Execer), "err", err)
			return nil, err
		}
		return &set, nil
	}
	if lset != nil && lset.KV != nil {
		set.KV = append(set.KV, lset.KV...)
	}
	return &set, nil
}

func (d *DriverBase) callLocal(prefix string, tx *types.Transaction, receipt *types.ReceiptData, index int) (set *types.LocalDBSet, err error) {
	if d.ety == nil {
		return nil, types.ErrActionNotSupport
	}
	name, value, err := d.ety.DecodePayloadValue(tx)
	if err != nil {
		return nil, err
	}
	funcname := prefix + name
	funcmap := d.child.GetFuncMap()
	if _, ok := funcmap[funcname]; !ok {
		return nil, types.ErrActionNotSupport
	}
	valueret := funcmap[funcname].Func.Call([]reflect.Value{d.childValue, value, reflect.ValueOf(tx), reflect.ValueOf(receipt), reflect.ValueOf(index)})
	if !types.IsOK(valueret, 2) {
		return nil, types.ErrMethodReturnType
	}
	r1 := valueret[0].Interface()
	if r1 != nil {
		if r, ok := r1.(*types.LocalDBSet); ok {
			set = r
		} else {
			return nil, types.ErrMethodReturnType
		}
	}
	r2 := valueret[1].Interface()
	if r2 != nil {
		if r, ok := r2.(error); ok {
			return nil, r
		}
		return nil, types.ErrMethodReturnType
	}
	return set, nil
}

//SetStateDB 设置状态数据库
func (d *DriverBase) SetStateDB(db dbm.KV) {
	if d.coinsaccount == nil {
		d.coinsaccount = account.NewCoinsAccount()
	}
	d.statedb = db
	d.coinsaccount.SetDB(db)
}

//GetStateDB 状态数据库
func (d *DriverBase) GetStateDB() dbm.KV {
	return d.statedb
}

//SetLocalDB 设置本地数据库
func (d *DriverBase) SetLocalDB(db dbm.KVDB) {
	d.localdb = db
}

//GetLocalDB 本地数据库
func (d *DriverBase) GetLocalDB() dbm.KVDB {
	return d.localdb
}

//GetHeight 区块高度
func (d *DriverBase) GetHeight() int64 {
	return d.height
}

//GetBlockTime 区块时间
func (d *DriverBase) GetBlockTime() int64 {
	return d.blocktime
}

//GetName 执行器名字
func (d *DriverBase) GetName() string {
	return d.child.GetDriverName()
}

//GetExecAddr 执行器地址
func (d *DriverBase) GetExecAddr() string {
	return ExecAddress(d.child.GetDriverName())
}

//GetCoinsAccount 原生币账户
func (d *DriverBase) GetCoinsAccount() *account.DB {
	if d.coinsaccount == nil {
		d.coinsaccount = account.NewCoinsAccount()
		d.coinsaccount.SetDB(d.statedb)
	}
	return d.coinsaccount
}
