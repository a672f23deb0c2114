// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types 公共的数据结构, 编解码, 配置以及错误定义
package types

import (
	"bytes"

	"github.com/golang/protobuf/jsonpb"
	"github.com/golang/protobuf/proto"
)

//Message 所有 protobuf 消息
type Message proto.Message

//Encode  编码
func Encode(data proto.Message) []byte {
	b, err := proto.Marshal(data)
	if err != nil {
		panic(err)
	}
	return b
}

//Size  消息大小
func Size(data proto.Message) int {
	return proto.Size(data)
}

//Decode  解码
func Decode(data []byte, msg proto.Message) error {
	return proto.Unmarshal(data, msg)
}

//Clone 深度拷贝
func Clone(data proto.Message) proto.Message {
	if data == nil {
		return nil
	}
	return proto.Clone(data)
}

//JSONToPB  JSON格式转换成protobuffer格式
func JSONToPB(data []byte, msg proto.Message) error {
	return jsonpb.Unmarshal(bytes.NewReader(data), msg)
}

//PBToJSON 消息类型转换
func PBToJSON(r Message) ([]byte, error) {
	encode := &jsonpb.Marshaler{EmitDefaults: true, Indent: "    "}
	var buf bytes.Buffer
	if err := encode.Marshal(&buf, r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

//CheckAmount 检查金额
func CheckAmount(amount int64) bool {
	if amount <= 0 || amount >= MaxCoin {
		return false
	}
	return true
}

//NewErrReceipt 执行失败时的回执, 只记录错误日志
func NewErrReceipt(err error) *ReceiptData {
	berr := []byte(err.Error())
	errlog := &ReceiptLog{Ty: TyLogErr, Log: berr}
	return &ReceiptData{Ty: ExecErr, Logs: []*ReceiptLog{errlog}}
}

//NewReceipt 合并 kv 和日志
func NewReceipt(kv []*KeyValue, logs []*ReceiptLog) *Receipt {
	return &Receipt{Ty: ExecOk, KV: kv, Logs: logs}
}

//AppendReceipt 合并两个回执
func AppendReceipt(r1, r2 *Receipt) *Receipt {
	if r1 == nil {
		return r2
	}
	if r2 == nil {
		return r1
	}
	r1.KV = append(r1.KV, r2.KV...)
	r1.Logs = append(r1.Logs, r2.Logs...)
	return r1
}
