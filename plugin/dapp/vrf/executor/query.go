// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"bytes"

	"github.com/33cn/hot/common/address"
	"github.com/33cn/hot/common/vrf/p256"
	vty "github.com/33cn/hot/plugin/dapp/vrf/types"
	"github.com/33cn/hot/types"
)

//Query_GetSubscription 查询订阅
func (v *Vrf) Query_GetSubscription(in *vty.ReqVrfSubscription) (types.Message, error) {
	return getSubscription(v.GetStateDB(), in.SubId)
}

//Query_GetRequest 查询等待中的请求
func (v *Vrf) Query_GetRequest(in *vty.ReqVrfRequest) (types.Message, error) {
	return getRequest(v.GetStateDB(), in.RequestId)
}

//Query_GetProof 查询已经完成的请求
func (v *Vrf) Query_GetProof(in *vty.ReqVrfRequest) (types.Message, error) {
	return getProof(v.GetStateDB(), in.RequestId)
}

//Query_GetPublicKey coordinator 的 vrf 公钥
func (v *Vrf) Query_GetPublicKey(in *types.ReqNil) (types.Message, error) {
	key, err := v.privateKey()
	if err != nil {
		return nil, err
	}
	return &types.ReplyHash{Hash: key.PublicBytes()}, nil
}

//Query_VerifyProof 用公钥重新计算 vrf 输出, 并检查随机数
func (v *Vrf) Query_VerifyProof(in *vty.ReqVrfRequest) (types.Message, error) {
	record, err := getProof(v.GetStateDB(), in.RequestId)
	if err != nil {
		return nil, err
	}
	key, err := v.privateKey()
	if err != nil {
		return nil, err
	}
	reply := &vty.ReplyVrfProof{RequestId: in.RequestId, PublicKey: key.PublicBytes()}
	pub, err := p256.ParseVrfPubKey(reply.PublicKey)
	if err != nil {
		return nil, err
	}
	output, err := pub.ProofToHash(record.Seed, record.Proof)
	if err != nil {
		vlog.Debug("VerifyProof", "requestId", in.RequestId, "err", err)
		return reply, nil
	}
	reply.Output = output[:]
	reply.RandomWords = expandWords(output[:], int32(len(record.RandomWords)))
	reply.Valid = bytes.Equal(reply.Output, record.Output) && wordsEqual(reply.RandomWords, record.RandomWords)
	return reply, nil
}

func wordsEqual(a, b [][]byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !bytes.Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

//Query_GetSubscriptionsByOwner owner 创建的订阅
func (v *Vrf) Query_GetSubscriptionsByOwner(in *types.ReqAddr) (types.Message, error) {
	if err := address.CheckAddress(in.Addr); err != nil {
		return nil, err
	}
	values, err := v.GetLocalDB().List(calcOwnerSubPrefix(address.FormatAddr(in.Addr)), nil, 0, 1)
	if err != nil {
		return nil, err
	}
	reply := &vty.ReplySubscriptions{}
	for _, value := range values {
		var id types.Int64
		if err := types.Decode(value, &id); err != nil {
			return nil, err
		}
		sub, err := getSubscription(v.GetStateDB(), id.Data)
		if err != nil {
			return nil, err
		}
		reply.Subs = append(reply.Subs, sub)
	}
	return reply, nil
}
