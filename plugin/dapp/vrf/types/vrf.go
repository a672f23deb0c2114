// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	proto "github.com/golang/protobuf/proto"
)

//VrfAction vrf 执行器的交易
type VrfAction struct {
	CreateSubscription *VrfCreateSubscription `protobuf:"bytes,1,opt,name=createSubscription,proto3" json:"createSubscription,omitempty"`
	FundSubscription   *VrfFundSubscription   `protobuf:"bytes,2,opt,name=fundSubscription,proto3" json:"fundSubscription,omitempty"`
	AddConsumer        *VrfAddConsumer        `protobuf:"bytes,3,opt,name=addConsumer,proto3" json:"addConsumer,omitempty"`
	FulfillRandomWords *VrfFulfillRandomWords `protobuf:"bytes,4,opt,name=fulfillRandomWords,proto3" json:"fulfillRandomWords,omitempty"`
	Ty                 int32                  `protobuf:"varint,10,opt,name=ty,proto3" json:"ty,omitempty"`
}

func (m *VrfAction) Reset()         { *m = VrfAction{} }
func (m *VrfAction) String() string { return proto.CompactTextString(m) }
func (*VrfAction) ProtoMessage()    {}

//GetCreateSubscription get
func (m *VrfAction) GetCreateSubscription() *VrfCreateSubscription {
	if m != nil {
		return m.CreateSubscription
	}
	return nil
}

//GetFundSubscription get
func (m *VrfAction) GetFundSubscription() *VrfFundSubscription {
	if m != nil {
		return m.FundSubscription
	}
	return nil
}

//GetAddConsumer get
func (m *VrfAction) GetAddConsumer() *VrfAddConsumer {
	if m != nil {
		return m.AddConsumer
	}
	return nil
}

//GetFulfillRandomWords get
func (m *VrfAction) GetFulfillRandomWords() *VrfFulfillRandomWords {
	if m != nil {
		return m.FulfillRandomWords
	}
	return nil
}

//GetTy get
func (m *VrfAction) GetTy() int32 {
	if m != nil {
		return m.Ty
	}
	return 0
}

//VrfCreateSubscription 创建订阅, 发送者为 owner
type VrfCreateSubscription struct {
}

func (m *VrfCreateSubscription) Reset()         { *m = VrfCreateSubscription{} }
func (m *VrfCreateSubscription) String() string { return proto.CompactTextString(m) }
func (*VrfCreateSubscription) ProtoMessage()    {}

//VrfFundSubscription 充值
type VrfFundSubscription struct {
	SubId  int64 `protobuf:"varint,1,opt,name=subId,proto3" json:"subId,omitempty"`
	Amount int64 `protobuf:"varint,2,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *VrfFundSubscription) Reset()         { *m = VrfFundSubscription{} }
func (m *VrfFundSubscription) String() string { return proto.CompactTextString(m) }
func (*VrfFundSubscription) ProtoMessage()    {}

//VrfAddConsumer 添加可以请求随机数的地址
type VrfAddConsumer struct {
	SubId    int64  `protobuf:"varint,1,opt,name=subId,proto3" json:"subId,omitempty"`
	Consumer string `protobuf:"bytes,2,opt,name=consumer,proto3" json:"consumer,omitempty"`
}

func (m *VrfAddConsumer) Reset()         { *m = VrfAddConsumer{} }
func (m *VrfAddConsumer) String() string { return proto.CompactTextString(m) }
func (*VrfAddConsumer) ProtoMessage()    {}

//VrfFulfillRandomWords 生成随机数并回调 consumer
type VrfFulfillRandomWords struct {
	RequestId int64 `protobuf:"varint,1,opt,name=requestId,proto3" json:"requestId,omitempty"`
}

func (m *VrfFulfillRandomWords) Reset()         { *m = VrfFulfillRandomWords{} }
func (m *VrfFulfillRandomWords) String() string { return proto.CompactTextString(m) }
func (*VrfFulfillRandomWords) ProtoMessage()    {}

//Subscription 订阅
type Subscription struct {
	SubId     int64    `protobuf:"varint,1,opt,name=subId,proto3" json:"subId,omitempty"`
	Owner     string   `protobuf:"bytes,2,opt,name=owner,proto3" json:"owner,omitempty"`
	Balance   int64    `protobuf:"varint,3,opt,name=balance,proto3" json:"balance,omitempty"`
	Consumers []string `protobuf:"bytes,4,rep,name=consumers,proto3" json:"consumers,omitempty"`
	ReqCount  int64    `protobuf:"varint,5,opt,name=reqCount,proto3" json:"reqCount,omitempty"`
}

func (m *Subscription) Reset()         { *m = Subscription{} }
func (m *Subscription) String() string { return proto.CompactTextString(m) }
func (*Subscription) ProtoMessage()    {}

//ReqRandomWords 执行器之间调用的请求参数
type ReqRandomWords struct {
	KeyHash          string `protobuf:"bytes,1,opt,name=keyHash,proto3" json:"keyHash,omitempty"`
	SubId            int64  `protobuf:"varint,2,opt,name=subId,proto3" json:"subId,omitempty"`
	Confirmations    int32  `protobuf:"varint,3,opt,name=confirmations,proto3" json:"confirmations,omitempty"`
	CallbackGasLimit int64  `protobuf:"varint,4,opt,name=callbackGasLimit,proto3" json:"callbackGasLimit,omitempty"`
	NumWords         int32  `protobuf:"varint,5,opt,name=numWords,proto3" json:"numWords,omitempty"`
	Consumer         string `protobuf:"bytes,6,opt,name=consumer,proto3" json:"consumer,omitempty"`
	Execer           string `protobuf:"bytes,7,opt,name=execer,proto3" json:"execer,omitempty"`
}

func (m *ReqRandomWords) Reset()         { *m = ReqRandomWords{} }
func (m *ReqRandomWords) String() string { return proto.CompactTextString(m) }
func (*ReqRandomWords) ProtoMessage()    {}

//RandomWordsRequest 等待生成的随机数请求
type RandomWordsRequest struct {
	RequestId        int64  `protobuf:"varint,1,opt,name=requestId,proto3" json:"requestId,omitempty"`
	SubId            int64  `protobuf:"varint,2,opt,name=subId,proto3" json:"subId,omitempty"`
	Consumer         string `protobuf:"bytes,3,opt,name=consumer,proto3" json:"consumer,omitempty"`
	Execer           string `protobuf:"bytes,4,opt,name=execer,proto3" json:"execer,omitempty"`
	KeyHash          string `protobuf:"bytes,5,opt,name=keyHash,proto3" json:"keyHash,omitempty"`
	PreSeed          []byte `protobuf:"bytes,6,opt,name=preSeed,proto3" json:"preSeed,omitempty"`
	Height           int64  `protobuf:"varint,7,opt,name=height,proto3" json:"height,omitempty"`
	Confirmations    int32  `protobuf:"varint,8,opt,name=confirmations,proto3" json:"confirmations,omitempty"`
	CallbackGasLimit int64  `protobuf:"varint,9,opt,name=callbackGasLimit,proto3" json:"callbackGasLimit,omitempty"`
	NumWords         int32  `protobuf:"varint,10,opt,name=numWords,proto3" json:"numWords,omitempty"`
	Nonce            int64  `protobuf:"varint,11,opt,name=nonce,proto3" json:"nonce,omitempty"`
}

func (m *RandomWordsRequest) Reset()         { *m = RandomWordsRequest{} }
func (m *RandomWordsRequest) String() string { return proto.CompactTextString(m) }
func (*RandomWordsRequest) ProtoMessage()    {}

//RandomWordsProof 已经生成的随机数以及 vrf 证明
type RandomWordsProof struct {
	RequestId   int64    `protobuf:"varint,1,opt,name=requestId,proto3" json:"requestId,omitempty"`
	Seed        []byte   `protobuf:"bytes,2,opt,name=seed,proto3" json:"seed,omitempty"`
	Output      []byte   `protobuf:"bytes,3,opt,name=output,proto3" json:"output,omitempty"`
	Proof       []byte   `protobuf:"bytes,4,opt,name=proof,proto3" json:"proof,omitempty"`
	RandomWords [][]byte `protobuf:"bytes,5,rep,name=randomWords,proto3" json:"randomWords,omitempty"`
	Payment     int64    `protobuf:"varint,6,opt,name=payment,proto3" json:"payment,omitempty"`
	Height      int64    `protobuf:"varint,7,opt,name=height,proto3" json:"height,omitempty"`
	Consumer    string   `protobuf:"bytes,8,opt,name=consumer,proto3" json:"consumer,omitempty"`
	Execer      string   `protobuf:"bytes,9,opt,name=execer,proto3" json:"execer,omitempty"`
	BlockHash   []byte   `protobuf:"bytes,10,opt,name=blockHash,proto3" json:"blockHash,omitempty"`
}

func (m *RandomWordsProof) Reset()         { *m = RandomWordsProof{} }
func (m *RandomWordsProof) String() string { return proto.CompactTextString(m) }
func (*RandomWordsProof) ProtoMessage()    {}

//ReqVrfSubscription 查询订阅
type ReqVrfSubscription struct {
	SubId int64 `protobuf:"varint,1,opt,name=subId,proto3" json:"subId,omitempty"`
}

func (m *ReqVrfSubscription) Reset()         { *m = ReqVrfSubscription{} }
func (m *ReqVrfSubscription) String() string { return proto.CompactTextString(m) }
func (*ReqVrfSubscription) ProtoMessage()    {}

//ReqVrfRequest 查询请求
type ReqVrfRequest struct {
	RequestId int64 `protobuf:"varint,1,opt,name=requestId,proto3" json:"requestId,omitempty"`
}

func (m *ReqVrfRequest) Reset()         { *m = ReqVrfRequest{} }
func (m *ReqVrfRequest) String() string { return proto.CompactTextString(m) }
func (*ReqVrfRequest) ProtoMessage()    {}

//ReplyVrfProof 验证结果
type ReplyVrfProof struct {
	RequestId   int64    `protobuf:"varint,1,opt,name=requestId,proto3" json:"requestId,omitempty"`
	Valid       bool     `protobuf:"varint,2,opt,name=valid,proto3" json:"valid,omitempty"`
	Output      []byte   `protobuf:"bytes,3,opt,name=output,proto3" json:"output,omitempty"`
	RandomWords [][]byte `protobuf:"bytes,4,rep,name=randomWords,proto3" json:"randomWords,omitempty"`
	PublicKey   []byte   `protobuf:"bytes,5,opt,name=publicKey,proto3" json:"publicKey,omitempty"`
}

func (m *ReplyVrfProof) Reset()         { *m = ReplyVrfProof{} }
func (m *ReplyVrfProof) String() string { return proto.CompactTextString(m) }
func (*ReplyVrfProof) ProtoMessage()    {}

//ReplySubscriptions 订阅列表
type ReplySubscriptions struct {
	Subs []*Subscription `protobuf:"bytes,1,rep,name=subs,proto3" json:"subs,omitempty"`
}

func (m *ReplySubscriptions) Reset()         { *m = ReplySubscriptions{} }
func (m *ReplySubscriptions) String() string { return proto.CompactTextString(m) }
func (*ReplySubscriptions) ProtoMessage()    {}
