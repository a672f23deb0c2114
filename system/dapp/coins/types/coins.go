// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	proto "github.com/golang/protobuf/proto"
)

//CoinsAction coins 执行器的交易
type CoinsAction struct {
	Transfer *CoinsTransfer `protobuf:"bytes,1,opt,name=transfer,proto3" json:"transfer,omitempty"`
	Genesis  *CoinsGenesis  `protobuf:"bytes,2,opt,name=genesis,proto3" json:"genesis,omitempty"`
	Ty       int32          `protobuf:"varint,10,opt,name=ty,proto3" json:"ty,omitempty"`
}

func (m *CoinsAction) Reset()         { *m = CoinsAction{} }
func (m *CoinsAction) String() string { return proto.CompactTextString(m) }
func (*CoinsAction) ProtoMessage()    {}

//GetTransfer get
func (m *CoinsAction) GetTransfer() *CoinsTransfer {
	if m != nil {
		return m.Transfer
	}
	return nil
}

//GetGenesis get
func (m *CoinsAction) GetGenesis() *CoinsGenesis {
	if m != nil {
		return m.Genesis
	}
	return nil
}

//GetTy get
func (m *CoinsAction) GetTy() int32 {
	if m != nil {
		return m.Ty
	}
	return 0
}

//CoinsTransfer 转账
type CoinsTransfer struct {
	To     string `protobuf:"bytes,1,opt,name=to,proto3" json:"to,omitempty"`
	Amount int64  `protobuf:"varint,2,opt,name=amount,proto3" json:"amount,omitempty"`
	Note   string `protobuf:"bytes,3,opt,name=note,proto3" json:"note,omitempty"`
}

func (m *CoinsTransfer) Reset()         { *m = CoinsTransfer{} }
func (m *CoinsTransfer) String() string { return proto.CompactTextString(m) }
func (*CoinsTransfer) ProtoMessage()    {}

//CoinsGenesis 创世
type CoinsGenesis struct {
	Amount int64  `protobuf:"varint,1,opt,name=amount,proto3" json:"amount,omitempty"`
	To     string `protobuf:"bytes,2,opt,name=to,proto3" json:"to,omitempty"`
}

func (m *CoinsGenesis) Reset()         { *m = CoinsGenesis{} }
func (m *CoinsGenesis) String() string { return proto.CompactTextString(m) }
func (*CoinsGenesis) ProtoMessage()    {}
