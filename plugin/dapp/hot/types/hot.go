// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	proto "github.com/golang/protobuf/proto"
)

//HotAction hot 执行器的交易
type HotAction struct {
	Create        *HotCreate        `protobuf:"bytes,1,opt,name=create,proto3" json:"create,omitempty"`
	Enter         *HotEnter         `protobuf:"bytes,2,opt,name=enter,proto3" json:"enter,omitempty"`
	PerformUpkeep *HotPerformUpkeep `protobuf:"bytes,3,opt,name=performUpkeep,proto3" json:"performUpkeep,omitempty"`
	Fulfill       *HotFulfill       `protobuf:"bytes,4,opt,name=fulfill,proto3" json:"fulfill,omitempty"`
	Ty            int32             `protobuf:"varint,10,opt,name=ty,proto3" json:"ty,omitempty"`
}

func (m *HotAction) Reset()         { *m = HotAction{} }
func (m *HotAction) String() string { return proto.CompactTextString(m) }
func (*HotAction) ProtoMessage()    {}

//GetCreate get
func (m *HotAction) GetCreate() *HotCreate {
	if m != nil {
		return m.Create
	}
	return nil
}

//GetEnter get
func (m *HotAction) GetEnter() *HotEnter {
	if m != nil {
		return m.Enter
	}
	return nil
}

//GetPerformUpkeep get
func (m *HotAction) GetPerformUpkeep() *HotPerformUpkeep {
	if m != nil {
		return m.PerformUpkeep
	}
	return nil
}

//GetFulfill get
func (m *HotAction) GetFulfill() *HotFulfill {
	if m != nil {
		return m.Fulfill
	}
	return nil
}

//GetTy get
func (m *HotAction) GetTy() int32 {
	if m != nil {
		return m.Ty
	}
	return 0
}

//HotCreate 创建游戏, coordinator 为空时使用链上的 vrf 执行器
type HotCreate struct {
	EntranceFee          int64  `protobuf:"varint,1,opt,name=entranceFee,proto3" json:"entranceFee,omitempty"`
	Interval             int64  `protobuf:"varint,2,opt,name=interval,proto3" json:"interval,omitempty"`
	KeyHash              string `protobuf:"bytes,3,opt,name=keyHash,proto3" json:"keyHash,omitempty"`
	SubscriptionId       int64  `protobuf:"varint,4,opt,name=subscriptionId,proto3" json:"subscriptionId,omitempty"`
	CallbackGasLimit     int64  `protobuf:"varint,5,opt,name=callbackGasLimit,proto3" json:"callbackGasLimit,omitempty"`
	RequestConfirmations int32  `protobuf:"varint,6,opt,name=requestConfirmations,proto3" json:"requestConfirmations,omitempty"`
	NumWords             int32  `protobuf:"varint,7,opt,name=numWords,proto3" json:"numWords,omitempty"`
	Coordinator          string `protobuf:"bytes,8,opt,name=coordinator,proto3" json:"coordinator,omitempty"`
}

func (m *HotCreate) Reset()         { *m = HotCreate{} }
func (m *HotCreate) String() string { return proto.CompactTextString(m) }
func (*HotCreate) ProtoMessage()    {}

//HotEnter 下注
type HotEnter struct {
	GameId  string `protobuf:"bytes,1,opt,name=gameId,proto3" json:"gameId,omitempty"`
	Outcome int32  `protobuf:"varint,2,opt,name=outcome,proto3" json:"outcome,omitempty"`
	Amount  int64  `protobuf:"varint,3,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *HotEnter) Reset()         { *m = HotEnter{} }
func (m *HotEnter) String() string { return proto.CompactTextString(m) }
func (*HotEnter) ProtoMessage()    {}

//HotPerformUpkeep 开奖
type HotPerformUpkeep struct {
	GameId    string `protobuf:"bytes,1,opt,name=gameId,proto3" json:"gameId,omitempty"`
	CheckData []byte `protobuf:"bytes,2,opt,name=checkData,proto3" json:"checkData,omitempty"`
}

func (m *HotPerformUpkeep) Reset()         { *m = HotPerformUpkeep{} }
func (m *HotPerformUpkeep) String() string { return proto.CompactTextString(m) }
func (*HotPerformUpkeep) ProtoMessage()    {}

//HotFulfill 链外的 coordinator 提交随机数
type HotFulfill struct {
	GameId      string   `protobuf:"bytes,1,opt,name=gameId,proto3" json:"gameId,omitempty"`
	RequestId   int64    `protobuf:"varint,2,opt,name=requestId,proto3" json:"requestId,omitempty"`
	RandomWords [][]byte `protobuf:"bytes,3,rep,name=randomWords,proto3" json:"randomWords,omitempty"`
}

func (m *HotFulfill) Reset()         { *m = HotFulfill{} }
func (m *HotFulfill) String() string { return proto.CompactTextString(m) }
func (*HotFulfill) ProtoMessage()    {}

//HotEntry 一次下注记录
type HotEntry struct {
	Participant string `protobuf:"bytes,1,opt,name=participant,proto3" json:"participant,omitempty"`
	Outcome     int32  `protobuf:"varint,2,opt,name=outcome,proto3" json:"outcome,omitempty"`
	Amount      int64  `protobuf:"varint,3,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *HotEntry) Reset()         { *m = HotEntry{} }
func (m *HotEntry) String() string { return proto.CompactTextString(m) }
func (*HotEntry) ProtoMessage()    {}

//HotGame 游戏状态
type HotGame struct {
	GameId               string      `protobuf:"bytes,1,opt,name=gameId,proto3" json:"gameId,omitempty"`
	Creator              string      `protobuf:"bytes,2,opt,name=creator,proto3" json:"creator,omitempty"`
	Address              string      `protobuf:"bytes,3,opt,name=address,proto3" json:"address,omitempty"`
	EntranceFee          int64       `protobuf:"varint,4,opt,name=entranceFee,proto3" json:"entranceFee,omitempty"`
	Interval             int64       `protobuf:"varint,5,opt,name=interval,proto3" json:"interval,omitempty"`
	KeyHash              string      `protobuf:"bytes,6,opt,name=keyHash,proto3" json:"keyHash,omitempty"`
	SubscriptionId       int64       `protobuf:"varint,7,opt,name=subscriptionId,proto3" json:"subscriptionId,omitempty"`
	CallbackGasLimit     int64       `protobuf:"varint,8,opt,name=callbackGasLimit,proto3" json:"callbackGasLimit,omitempty"`
	RequestConfirmations int32       `protobuf:"varint,9,opt,name=requestConfirmations,proto3" json:"requestConfirmations,omitempty"`
	NumWords             int32       `protobuf:"varint,10,opt,name=numWords,proto3" json:"numWords,omitempty"`
	Coordinator          string      `protobuf:"bytes,11,opt,name=coordinator,proto3" json:"coordinator,omitempty"`
	External             bool        `protobuf:"varint,12,opt,name=external,proto3" json:"external,omitempty"`
	State                int32       `protobuf:"varint,13,opt,name=state,proto3" json:"state,omitempty"`
	LastTimeStamp        int64       `protobuf:"varint,14,opt,name=lastTimeStamp,proto3" json:"lastTimeStamp,omitempty"`
	Round                int64       `protobuf:"varint,15,opt,name=round,proto3" json:"round,omitempty"`
	PendingRequestId     int64       `protobuf:"varint,16,opt,name=pendingRequestId,proto3" json:"pendingRequestId,omitempty"`
	Entries              []*HotEntry `protobuf:"bytes,17,rep,name=entries,proto3" json:"entries,omitempty"`
	Rollover             int64       `protobuf:"varint,18,opt,name=rollover,proto3" json:"rollover,omitempty"`
	RecentWinner         string      `protobuf:"bytes,19,opt,name=recentWinner,proto3" json:"recentWinner,omitempty"`
	RecentOutcome        int32       `protobuf:"varint,20,opt,name=recentOutcome,proto3" json:"recentOutcome,omitempty"`
	RecentRandomWord     []byte      `protobuf:"bytes,21,opt,name=recentRandomWord,proto3" json:"recentRandomWord,omitempty"`
	RecentWinnerShare    int64       `protobuf:"varint,22,opt,name=recentWinnerShare,proto3" json:"recentWinnerShare,omitempty"`
	HasResult            bool        `protobuf:"varint,23,opt,name=hasResult,proto3" json:"hasResult,omitempty"`
	Nonce                int64       `protobuf:"varint,24,opt,name=nonce,proto3" json:"nonce,omitempty"`
	CreateHeight         int64       `protobuf:"varint,25,opt,name=createHeight,proto3" json:"createHeight,omitempty"`
}

func (m *HotGame) Reset()         { *m = HotGame{} }
func (m *HotGame) String() string { return proto.CompactTextString(m) }
func (*HotGame) ProtoMessage()    {}

type ReceiptHotCreate struct {
	GameId      string `protobuf:"bytes,1,opt,name=gameId,proto3" json:"gameId,omitempty"`
	Creator     string `protobuf:"bytes,2,opt,name=creator,proto3" json:"creator,omitempty"`
	Address     string `protobuf:"bytes,3,opt,name=address,proto3" json:"address,omitempty"`
	Coordinator string `protobuf:"bytes,4,opt,name=coordinator,proto3" json:"coordinator,omitempty"`
}

func (m *ReceiptHotCreate) Reset()         { *m = ReceiptHotCreate{} }
func (m *ReceiptHotCreate) String() string { return proto.CompactTextString(m) }
func (*ReceiptHotCreate) ProtoMessage()    {}

type ReceiptHotEnter struct {
	GameId      string `protobuf:"bytes,1,opt,name=gameId,proto3" json:"gameId,omitempty"`
	Round       int64  `protobuf:"varint,2,opt,name=round,proto3" json:"round,omitempty"`
	Participant string `protobuf:"bytes,3,opt,name=participant,proto3" json:"participant,omitempty"`
	Outcome     int32  `protobuf:"varint,4,opt,name=outcome,proto3" json:"outcome,omitempty"`
	Amount      int64  `protobuf:"varint,5,opt,name=amount,proto3" json:"amount,omitempty"`
	Index       int64  `protobuf:"varint,6,opt,name=index,proto3" json:"index,omitempty"`
}

func (m *ReceiptHotEnter) Reset()         { *m = ReceiptHotEnter{} }
func (m *ReceiptHotEnter) String() string { return proto.CompactTextString(m) }
func (*ReceiptHotEnter) ProtoMessage()    {}

type ReceiptHotDrawStarted struct {
	GameId    string `protobuf:"bytes,1,opt,name=gameId,proto3" json:"gameId,omitempty"`
	Round     int64  `protobuf:"varint,2,opt,name=round,proto3" json:"round,omitempty"`
	RequestId int64  `protobuf:"varint,3,opt,name=requestId,proto3" json:"requestId,omitempty"`
}

func (m *ReceiptHotDrawStarted) Reset()         { *m = ReceiptHotDrawStarted{} }
func (m *ReceiptHotDrawStarted) String() string { return proto.CompactTextString(m) }
func (*ReceiptHotDrawStarted) ProtoMessage()    {}

//ReceiptHotResult 一轮的开奖结果
type ReceiptHotResult struct {
	GameId     string   `protobuf:"bytes,1,opt,name=gameId,proto3" json:"gameId,omitempty"`
	Round      int64    `protobuf:"varint,2,opt,name=round,proto3" json:"round,omitempty"`
	RequestId  int64    `protobuf:"varint,3,opt,name=requestId,proto3" json:"requestId,omitempty"`
	Outcome    int32    `protobuf:"varint,4,opt,name=outcome,proto3" json:"outcome,omitempty"`
	RandomWord []byte   `protobuf:"bytes,5,opt,name=randomWord,proto3" json:"randomWord,omitempty"`
	Winners    []string `protobuf:"bytes,6,rep,name=winners,proto3" json:"winners,omitempty"`
	Payouts    []int64  `protobuf:"varint,7,rep,name=payouts,proto3" json:"payouts,omitempty"`
	Pool       int64    `protobuf:"varint,8,opt,name=pool,proto3" json:"pool,omitempty"`
	Rollover   int64    `protobuf:"varint,9,opt,name=rollover,proto3" json:"rollover,omitempty"`
	Time       int64    `protobuf:"varint,10,opt,name=time,proto3" json:"time,omitempty"`
}

func (m *ReceiptHotResult) Reset()         { *m = ReceiptHotResult{} }
func (m *ReceiptHotResult) String() string { return proto.CompactTextString(m) }
func (*ReceiptHotResult) ProtoMessage()    {}

type ReqHotGame struct {
	GameId string `protobuf:"bytes,1,opt,name=gameId,proto3" json:"gameId,omitempty"`
}

func (m *ReqHotGame) Reset()         { *m = ReqHotGame{} }
func (m *ReqHotGame) String() string { return proto.CompactTextString(m) }
func (*ReqHotGame) ProtoMessage()    {}

type ReqHotIndex struct {
	GameId string `protobuf:"bytes,1,opt,name=gameId,proto3" json:"gameId,omitempty"`
	Index  int64  `protobuf:"varint,2,opt,name=index,proto3" json:"index,omitempty"`
}

func (m *ReqHotIndex) Reset()         { *m = ReqHotIndex{} }
func (m *ReqHotIndex) String() string { return proto.CompactTextString(m) }
func (*ReqHotIndex) ProtoMessage()    {}

type ReqHotWinnerShare struct {
	GameId  string `protobuf:"bytes,1,opt,name=gameId,proto3" json:"gameId,omitempty"`
	Amount  int64  `protobuf:"varint,2,opt,name=amount,proto3" json:"amount,omitempty"`
	Outcome int32  `protobuf:"varint,3,opt,name=outcome,proto3" json:"outcome,omitempty"`
}

func (m *ReqHotWinnerShare) Reset()         { *m = ReqHotWinnerShare{} }
func (m *ReqHotWinnerShare) String() string { return proto.CompactTextString(m) }
func (*ReqHotWinnerShare) ProtoMessage()    {}

type ReqHotRoundHistory struct {
	GameId    string `protobuf:"bytes,1,opt,name=gameId,proto3" json:"gameId,omitempty"`
	Round     int64  `protobuf:"varint,2,opt,name=round,proto3" json:"round,omitempty"`
	Count     int32  `protobuf:"varint,3,opt,name=count,proto3" json:"count,omitempty"`
	Direction int32  `protobuf:"varint,4,opt,name=direction,proto3" json:"direction,omitempty"`
}

func (m *ReqHotRoundHistory) Reset()         { *m = ReqHotRoundHistory{} }
func (m *ReqHotRoundHistory) String() string { return proto.CompactTextString(m) }
func (*ReqHotRoundHistory) ProtoMessage()    {}

type ReplyHotPlayer struct {
	Participant string `protobuf:"bytes,1,opt,name=participant,proto3" json:"participant,omitempty"`
	Outcome     int32  `protobuf:"varint,2,opt,name=outcome,proto3" json:"outcome,omitempty"`
	Amount      int64  `protobuf:"varint,3,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *ReplyHotPlayer) Reset()         { *m = ReplyHotPlayer{} }
func (m *ReplyHotPlayer) String() string { return proto.CompactTextString(m) }
func (*ReplyHotPlayer) ProtoMessage()    {}

type ReplyHotRecentFlip struct {
	HasResult  bool   `protobuf:"varint,1,opt,name=hasResult,proto3" json:"hasResult,omitempty"`
	Outcome    int32  `protobuf:"varint,2,opt,name=outcome,proto3" json:"outcome,omitempty"`
	RandomWord []byte `protobuf:"bytes,3,opt,name=randomWord,proto3" json:"randomWord,omitempty"`
}

func (m *ReplyHotRecentFlip) Reset()         { *m = ReplyHotRecentFlip{} }
func (m *ReplyHotRecentFlip) String() string { return proto.CompactTextString(m) }
func (*ReplyHotRecentFlip) ProtoMessage()    {}

type ReplyCheckUpkeep struct {
	UpkeepNeeded bool   `protobuf:"varint,1,opt,name=upkeepNeeded,proto3" json:"upkeepNeeded,omitempty"`
	TimePassed   bool   `protobuf:"varint,2,opt,name=timePassed,proto3" json:"timePassed,omitempty"`
	HasPlayers   bool   `protobuf:"varint,3,opt,name=hasPlayers,proto3" json:"hasPlayers,omitempty"`
	IsOpen       bool   `protobuf:"varint,4,opt,name=isOpen,proto3" json:"isOpen,omitempty"`
	HasBalance   bool   `protobuf:"varint,5,opt,name=hasBalance,proto3" json:"hasBalance,omitempty"`
	Balance      int64  `protobuf:"varint,6,opt,name=balance,proto3" json:"balance,omitempty"`
	Now          int64  `protobuf:"varint,7,opt,name=now,proto3" json:"now,omitempty"`
	PerformData  []byte `protobuf:"bytes,8,opt,name=performData,proto3" json:"performData,omitempty"`
}

func (m *ReplyCheckUpkeep) Reset()         { *m = ReplyCheckUpkeep{} }
func (m *ReplyCheckUpkeep) String() string { return proto.CompactTextString(m) }
func (*ReplyCheckUpkeep) ProtoMessage()    {}

type ReplyHotRounds struct {
	Rounds []*ReceiptHotResult `protobuf:"bytes,1,rep,name=rounds,proto3" json:"rounds,omitempty"`
}

func (m *ReplyHotRounds) Reset()         { *m = ReplyHotRounds{} }
func (m *ReplyHotRounds) String() string { return proto.CompactTextString(m) }
func (*ReplyHotRounds) ProtoMessage()    {}

type ReplyHotGameIds struct {
	GameIds []string `protobuf:"bytes,1,rep,name=gameIds,proto3" json:"gameIds,omitempty"`
}

func (m *ReplyHotGameIds) Reset()         { *m = ReplyHotGameIds{} }
func (m *ReplyHotGameIds) String() string { return proto.CompactTextString(m) }
func (*ReplyHotGameIds) ProtoMessage()    {}
