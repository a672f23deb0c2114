// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/hex"
	"math/rand"

	"github.com/33cn/hot/common"
	"github.com/33cn/hot/common/address"
	"github.com/33cn/hot/common/crypto"
	"github.com/33cn/hot/common/crypto/secp256k1eth"
)

//SignName 默认的签名算法
const SignName = secp256k1eth.Name

//Hash 交易哈希, 不包含签名
func (tx *Transaction) Hash() []byte {
	copytx := *tx
	copytx.Signature = nil
	data := Encode(&copytx)
	return common.Sha256(data)
}

//HashHex hex 格式的交易哈希
func (tx *Transaction) HashHex() string {
	return common.ToHex(tx.Hash())
}

//Size 交易大小
func (tx *Transaction) Size() int {
	return Size(tx)
}

//Sign 交易签名
func (tx *Transaction) Sign(priv crypto.PrivKey) {
	tx.Signature = nil
	data := Encode(tx)
	signature := priv.Sign(data)
	tx.Signature = &Signature{
		Ty:        crypto.GetType(SignName),
		Pubkey:    priv.PubKey().Bytes(),
		Signature: signature.Bytes(),
	}
}

//CheckSign tx check sign
func (tx *Transaction) CheckSign() bool {
	if tx.GetSignature() == nil {
		return false
	}
	copytx := *tx
	copytx.Signature = nil
	data := Encode(&copytx)
	c, err := crypto.New(SignName)
	if err != nil {
		return false
	}
	if tx.Signature.Ty != crypto.GetType(SignName) {
		return false
	}
	return c.Validate(data, tx.Signature.Pubkey, tx.Signature.Signature) == nil
}

//From 交易的发送地址
func (tx *Transaction) From() string {
	if tx.GetSignature() == nil {
		return ""
	}
	return address.PubKeyToAddr(tx.Signature.Pubkey)
}

//Check 交易格式检查
func (tx *Transaction) Check() error {
	if tx.Size() > MaxTxSize {
		return ErrTxMsgSizeTooBig
	}
	if len(tx.Execer) == 0 {
		return ErrExecNameNotAllow
	}
	if tx.GetSignature() == nil {
		return ErrNoSignature
	}
	if !tx.CheckSign() {
		return ErrSign
	}
	return nil
}

//NewTransaction 构造未签名的交易, nonce 随机
func NewTransaction(execer string, payload Message) *Transaction {
	return &Transaction{
		Execer:  []byte(execer),
		Payload: Encode(payload),
		Nonce:   rand.Int63(),
		To:      address.ExecAddress(execer),
	}
}

//GenKey 生成私钥
func GenKey() (crypto.PrivKey, error) {
	c, err := crypto.New(SignName)
	if err != nil {
		return nil, err
	}
	return c.GenKey()
}

//PrivKeyFromHex hex 私钥
func PrivKeyFromHex(key string) (crypto.PrivKey, error) {
	if common.HasHexPrefix(key) {
		key = key[2:]
	}
	b, err := hex.DecodeString(key)
	if err != nil {
		return nil, err
	}
	c, err := crypto.New(SignName)
	if err != nil {
		return nil, err
	}
	return c.PrivKeyFromBytes(b)
}

//PrivKeyToAddr 私钥对应的地址
func PrivKeyToAddr(priv crypto.PrivKey) string {
	return address.PubKeyToAddr(priv.PubKey().Bytes())
}
