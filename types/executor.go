// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"reflect"
	"sync"
	"unicode"
	"unicode/utf8"
)

//LogInfo 回执日志的类型信息
type LogInfo struct {
	Ty   reflect.Type
	Name string
}

//ExecutorType 执行器的交易类型描述
type ExecutorType interface {
	GetName() string
	//GetPayload 返回一个新的 action 结构
	GetPayload() Message
	GetTypeMap() map[string]int32
	GetLogMap() map[int64]*LogInfo
	DecodePayload(tx *Transaction) (Message, error)
	DecodePayloadValue(tx *Transaction) (string, reflect.Value, error)
	GetActionName(tx *Transaction) string
	DecodeReceiptLog(log *ReceiptLog) (string, Message, error)
	CreateTransaction(action string, param Message) (*Transaction, error)
	InitFuncList(list map[string]reflect.Method)
	GetExecFuncMap() map[string]reflect.Method
}

//ExecutorAction action 都有 Ty 字段
type ExecutorAction interface {
	GetTy() int32
}

//ExecTypeBase 执行器类型的公共实现
type ExecTypeBase struct {
	child         ExecutorType
	actionFunList map[string]reflect.Method
	actionTyName  map[int32]string
	execFuncList  map[string]reflect.Method
}

//InitFuncList 缓存执行器的 Exec_ / ExecLocal_ / Query_ 方法
func (base *ExecTypeBase) InitFuncList(list map[string]reflect.Method) {
	base.execFuncList = list
}

//GetExecFuncMap 执行器的方法列表
func (base *ExecTypeBase) GetExecFuncMap() map[string]reflect.Method {
	return base.execFuncList
}

//SetChild 设置子类, 缓存 action 的反射信息
func (base *ExecTypeBase) SetChild(child ExecutorType) {
	base.child = child
	base.actionFunList = ListMethod(child.GetPayload())
	base.actionTyName = make(map[int32]string)
	for name, ty := range child.GetTypeMap() {
		base.actionTyName[ty] = name
	}
}

//DecodePayload 解码交易的 payload
func (base *ExecTypeBase) DecodePayload(tx *Transaction) (Message, error) {
	payload := base.child.GetPayload()
	if err := Decode(tx.GetPayload(), payload); err != nil {
		return nil, ErrDecode
	}
	return payload, nil
}

//DecodePayloadValue 返回 action 的名字以及具体的参数
func (base *ExecTypeBase) DecodePayloadValue(tx *Transaction) (string, reflect.Value, error) {
	payload, err := base.DecodePayload(tx)
	if err != nil {
		return "", nilValue, err
	}
	action, ok := payload.(ExecutorAction)
	if !ok {
		return "", nilValue, ErrActionNotSupport
	}
	name, ok := base.actionTyName[action.GetTy()]
	if !ok {
		return "", nilValue, ErrActionNotSupport
	}
	get, ok := base.actionFunList["Get"+name]
	if !ok {
		return "", nilValue, ErrActionNotSupport
	}
	val := get.Func.Call([]reflect.Value{reflect.ValueOf(payload)})
	if !IsOK(val, 1) || IsNilVal(val[0]) {
		return "", nilValue, ErrActionNotSupport
	}
	return name, val[0], nil
}

//GetActionName 交易的 action 名字
func (base *ExecTypeBase) GetActionName(tx *Transaction) string {
	name, _, err := base.DecodePayloadValue(tx)
	if err != nil {
		return "unknown"
	}
	return name
}

//DecodeReceiptLog 按照 LogMap 解码
func (base *ExecTypeBase) DecodeReceiptLog(log *ReceiptLog) (string, Message, error) {
	info, ok := base.child.GetLogMap()[int64(log.Ty)]
	if !ok {
		info, ok = systemLog[int64(log.Ty)]
	}
	if !ok {
		return "", nil, ErrActionNotSupport
	}
	if info.Ty == nil {
		return info.Name, &ReplyString{Data: string(log.Log)}, nil
	}
	msg := reflect.New(info.Ty).Interface().(Message)
	if err := Decode(log.Log, msg); err != nil {
		return "", nil, err
	}
	return info.Name, msg, nil
}

//CreateTransaction 按照 action 名字构造交易, action 结构里面同名的字段保存参数
func (base *ExecTypeBase) CreateTransaction(action string, param Message) (*Transaction, error) {
	ty, ok := base.child.GetTypeMap()[action]
	if !ok || param == nil {
		return nil, ErrActionNotSupport
	}
	payload := base.child.GetPayload()
	v := reflect.ValueOf(payload).Elem()
	field := v.FieldByName(action)
	if !field.IsValid() || field.Type() != reflect.TypeOf(param) {
		return nil, ErrActionNotSupport
	}
	field.Set(reflect.ValueOf(param))
	tyField := v.FieldByName("Ty")
	if !tyField.IsValid() || tyField.Kind() != reflect.Int32 {
		return nil, ErrActionNotSupport
	}
	tyField.SetInt(int64(ty))
	return NewTransaction(base.child.GetName(), payload), nil
}

var systemLog = map[int64]*LogInfo{
	TyLogErr:      {nil, "LogErr"},
	TyLogFee:      {reflect.TypeOf(ReceiptAccountTransfer{}), "LogFee"},
	TyLogTransfer: {reflect.TypeOf(ReceiptAccountTransfer{}), "LogTransfer"},
	TyLogGenesis:  {reflect.TypeOf(ReceiptAccountTransfer{}), "LogGenesis"},
	TyLogDeposit:  {reflect.TypeOf(ReceiptAccountTransfer{}), "LogDeposit"},
}

var (
	executorTypes = make(map[string]ExecutorType)
	etMu          sync.RWMutex
)

//RegistorExecutor 注册执行器类型
func RegistorExecutor(exec string, util ExecutorType) {
	etMu.Lock()
	defer etMu.Unlock()
	if _, exist := executorTypes[exec]; exist {
		panic("DupExecutorType")
	}
	executorTypes[exec] = util
}

//LoadExecutorType 读取执行器类型
func LoadExecutorType(execstr string) ExecutorType {
	etMu.RLock()
	defer etMu.RUnlock()
	return executorTypes[execstr]
}

var nilValue = reflect.ValueOf(nil)

//IsOK 返回值个数是否正确
func IsOK(list []reflect.Value, n int) bool {
	if len(list) != n {
		return false
	}
	for i := 0; i < len(list); i++ {
		if !IsNil(list[i]) && !list[i].CanInterface() {
			return false
		}
	}
	return true
}

//IsNil 判断是否为空
func IsNil(a interface{}) (ok bool) {
	defer func() {
		if e := recover(); e != nil {
			ok = false
		}
	}()
	if v, ok := a.(reflect.Value); ok {
		if !v.IsValid() {
			return true
		}
		return v.IsNil()
	}
	return a == nil || reflect.ValueOf(a).IsNil()
}

//IsNilVal reflect.Value 是否为空
func IsNilVal(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}

// Is this an exported - upper case - name?
func isExported(name string) bool {
	rune, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(rune)
}

//ListMethod 列出所有导出的方法
func ListMethod(action interface{}) map[string]reflect.Method {
	typ := reflect.TypeOf(action)
	return ListMethodByType(typ)
}

//ListMethodByType 列出类型导出的方法
func ListMethodByType(typ reflect.Type) map[string]reflect.Method {
	methods := make(map[string]reflect.Method)
	for m := 0; m < typ.NumMethod(); m++ {
		method := typ.Method(m)
		mname := method.Name
		// Method must be exported.
		if method.PkgPath != "" || !isExported(mname) {
			continue
		}
		methods[mname] = method
	}
	return methods
}

//CallQueryFunc 调用 Query_ 方法
func CallQueryFunc(this reflect.Value, f reflect.Method, in Message) (reply Message, err error) {
	valueret := f.Func.Call([]reflect.Value{this, reflect.ValueOf(in)})
	if len(valueret) != 2 {
		return nil, ErrMethodReturnType
	}
	if !valueret[0].CanInterface() {
		return nil, ErrMethodReturnType
	}
	if !valueret[1].CanInterface() {
		return nil, ErrMethodReturnType
	}
	r1 := valueret[0].Interface()
	if r1 != nil {
		if r, ok := r1.(Message); ok {
			reply = r
		} else {
			return nil, ErrMethodReturnType
		}
	}
	r2 := valueret[1].Interface()
	if r2 != nil {
		if r, ok := r2.(error); ok {
			err = r
		} else {
			return nil, ErrMethodReturnType
		}
	}
	if reply == nil && err == nil {
		return nil, ErrActionNotSupport
	}
	return reply, err
}
