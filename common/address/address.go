// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package address 以太坊格式的地址计算, 统一采用小写格式
package address

import (
	"errors"
	"strings"

	"github.com/33cn/hot/common"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	lru "github.com/hashicorp/golang-lru"
)

var addrSeed = []byte("address seed bytes for public key")
var addressCache *lru.Cache
var pubkeyCache *lru.Cache

//MaxExecNameLength 执行器名最大长度
const MaxExecNameLength = 100

//ErrInvalidAddr 地址格式错误
var ErrInvalidAddr = errors.New("ErrInvalidAddr")

func init() {
	var err error
	addressCache, err = lru.New(10240)
	if err != nil {
		panic(err)
	}
	pubkeyCache, err = lru.New(10240)
	if err != nil {
		panic(err)
	}
}

//ExecPubKey 计算执行器的"公钥", 没有对应的私钥
func ExecPubKey(name string) []byte {
	if len(name) > MaxExecNameLength {
		panic("name too long")
	}
	var bname [200]byte
	buf := append(bname[:0], addrSeed...)
	buf = append(buf, []byte(name)...)
	return common.Sha256(buf)
}

//ExecAddress 计算量有点大，做一次cache
func ExecAddress(name string) string {
	if value, ok := addressCache.Get(name); ok {
		return value.(string)
	}
	addr := hashToAddr(ExecPubKey(name))
	addressCache.Add(name, addr)
	return addr
}

//PubKeyToAddr 公钥转地址, 支持压缩和非压缩的 secp256k1 公钥
func PubKeyToAddr(pubKey []byte) string {
	pubStr := string(pubKey)
	if value, ok := pubkeyCache.Get(pubStr); ok {
		return value.(string)
	}
	addr := pubKey2EthAddr(pubKey)
	pubkeyCache.Add(pubStr, addr)
	return addr
}

func pubKey2EthAddr(pubKey []byte) string {
	if len(pubKey) == 33 {
		pub, err := crypto.DecompressPubkey(pubKey)
		if err == nil {
			return FormatAddr(crypto.PubkeyToAddress(*pub).Hex())
		}
	}
	if len(pubKey) == 65 {
		pub, err := crypto.UnmarshalPubkey(pubKey)
		if err == nil {
			return FormatAddr(crypto.PubkeyToAddress(*pub).Hex())
		}
	}
	// just format as eth address if pubkey not compatible
	return hashToAddr(pubKey)
}

func hashToAddr(data []byte) string {
	var a ethcommon.Address
	a.SetBytes(crypto.Keccak256(data)[12:])
	return FormatAddr(a.Hex())
}

//CheckAddress 检查地址
func CheckAddress(addr string) error {
	if ethcommon.IsHexAddress(addr) && common.HasHexPrefix(addr) {
		return nil
	}
	return ErrInvalidAddr
}

//FormatAddr 小写
func FormatAddr(addr string) string {
	return strings.ToLower(addr)
}

//ToBytes 地址转20字节
func ToBytes(addr string) ([]byte, error) {
	if err := CheckAddress(addr); err != nil {
		return nil, err
	}
	return ethcommon.HexToAddress(addr).Bytes(), nil
}
