// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// Coin 一个币的最小单位数
const Coin int64 = 1e8

// MaxCoin 最大发行量
const MaxCoin int64 = 1e17

// CoinsX 原生币执行器名称
const CoinsX = "coins"

// MaxTxSize 交易的最大字节数
const MaxTxSize = 100000

// MaxTxsPerBlock 每个区块的最大交易数
const MaxTxsPerBlock = 10000

// exec type
const (
	ExecErr  = 0
	ExecPack = 1
	ExecOk   = 2
)

// log type
const (
	TyLogReserved = 0
	TyLogErr      = 1
	TyLogFee      = 2
	//TyLogTransfer coins
	TyLogTransfer = 3
	TyLogGenesis  = 4
	TyLogDeposit  = 5
)

// EmptyValue 本地数据库中已删除 key 的标记值
var EmptyValue = []byte("FFFFFFFFemptyFFFFFFFF")
