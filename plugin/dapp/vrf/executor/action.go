// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/hot/common"
	"github.com/33cn/hot/common/address"
	dbm "github.com/33cn/hot/common/db"
	vty "github.com/33cn/hot/plugin/dapp/vrf/types"
	"github.com/33cn/hot/types"
	"github.com/pkg/errors"
	"github.com/rcrowley/go-metrics"
)

var (
	requestMeter = metrics.GetOrRegisterMeter("vrf.request", nil)
	fulfillMeter = metrics.GetOrRegisterMeter("vrf.fulfill", nil)
)

type action struct {
	v        *Vrf
	db       dbm.KV
	fromaddr string
	height   int64
	execaddr string
	index    int
}

func newAction(v *Vrf, tx *types.Transaction, index int) *action {
	a := &action{
		v:        v,
		db:       v.GetStateDB(),
		height:   v.GetHeight(),
		execaddr: v.GetExecAddr(),
		index:    index,
	}
	if tx != nil {
		a.fromaddr = tx.From()
	}
	return a
}

func (a *action) save(key []byte, msg types.Message) *types.KeyValue {
	value := types.Encode(msg)
	a.db.Set(key, value)
	return &types.KeyValue{Key: key, Value: value}
}

func (a *action) del(key []byte) *types.KeyValue {
	a.db.Set(key, nil)
	return &types.KeyValue{Key: key, Value: nil}
}

//nextID 自增的 id, 从 1 开始
func (a *action) nextID(key []byte) (int64, *types.KeyValue, error) {
	var count types.Int64
	value, err := a.db.Get(key)
	if err != nil && err != types.ErrNotFound {
		return 0, nil, err
	}
	if err == nil {
		if err := types.Decode(value, &count); err != nil {
			return 0, nil, err
		}
	}
	count.Data++
	return count.Data, a.save(key, &count), nil
}

func getSubscription(db dbm.KV, subID int64) (*vty.Subscription, error) {
	value, err := db.Get(calcSubKey(subID))
	if err != nil {
		if err == types.ErrNotFound {
			return nil, vty.ErrInvalidSubscription
		}
		return nil, err
	}
	var sub vty.Subscription
	if err := types.Decode(value, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

func getRequest(db dbm.KV, requestID int64) (*vty.RandomWordsRequest, error) {
	value, err := db.Get(calcRequestKey(requestID))
	if err != nil {
		if err == types.ErrNotFound {
			return nil, vty.ErrNonexistentRequest
		}
		return nil, err
	}
	var req vty.RandomWordsRequest
	if err := types.Decode(value, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

func getProof(db dbm.KV, requestID int64) (*vty.RandomWordsProof, error) {
	value, err := db.Get(calcProofKey(requestID))
	if err != nil {
		if err == types.ErrNotFound {
			return nil, vty.ErrNonexistentRequest
		}
		return nil, err
	}
	var proof vty.RandomWordsProof
	if err := types.Decode(value, &proof); err != nil {
		return nil, err
	}
	return &proof, nil
}

func isConsumer(sub *vty.Subscription, consumer string) bool {
	for _, c := range sub.Consumers {
		if c == consumer {
			return true
		}
	}
	return false
}

func subLog(ty int32, sub *vty.Subscription) *types.ReceiptLog {
	return &types.ReceiptLog{Ty: ty, Log: types.Encode(sub)}
}

func (a *action) createSubscription() (*types.Receipt, error) {
	subID, kv, err := a.nextID(calcSubCountKey())
	if err != nil {
		return nil, err
	}
	sub := &vty.Subscription{SubId: subID, Owner: a.fromaddr}
	kvs := []*types.KeyValue{kv, a.save(calcSubKey(subID), sub)}
	vlog.Debug("createSubscription", "subId", subID, "owner", a.fromaddr)
	return types.NewReceipt(kvs, []*types.ReceiptLog{subLog(vty.TyLogVrfSubscriptionCreated, sub)}), nil
}

func (a *action) fundSubscription(fund *vty.VrfFundSubscription) (*types.Receipt, error) {
	if !types.CheckAmount(fund.Amount) {
		return nil, types.ErrAmount
	}
	sub, err := getSubscription(a.db, fund.SubId)
	if err != nil {
		return nil, err
	}
	if sub.Balance+fund.Amount >= types.MaxCoin {
		return nil, types.ErrAmount
	}
	sub.Balance += fund.Amount
	kv := a.save(calcSubKey(sub.SubId), sub)
	return types.NewReceipt([]*types.KeyValue{kv}, []*types.ReceiptLog{subLog(vty.TyLogVrfSubscriptionFunded, sub)}), nil
}

func (a *action) addConsumer(add *vty.VrfAddConsumer) (*types.Receipt, error) {
	if err := address.CheckAddress(add.Consumer); err != nil {
		return nil, err
	}
	sub, err := getSubscription(a.db, add.SubId)
	if err != nil {
		return nil, err
	}
	if sub.Owner != a.fromaddr {
		return nil, vty.ErrMustBeSubOwner
	}
	consumer := address.FormatAddr(add.Consumer)
	if isConsumer(sub, consumer) {
		return nil, vty.ErrConsumerExists
	}
	if len(sub.Consumers) >= vty.MaxConsumers {
		return nil, vty.ErrTooManyConsumers
	}
	sub.Consumers = append(sub.Consumers, consumer)
	kv := a.save(calcSubKey(sub.SubId), sub)
	return types.NewReceipt([]*types.KeyValue{kv}, []*types.ReceiptLog{subLog(vty.TyLogVrfConsumerAdded, sub)}), nil
}

func (a *action) requestRandomWords(req *vty.ReqRandomWords) (int64, *types.Receipt, error) {
	cfg := a.v.vrfConfig()
	sub, err := getSubscription(a.db, req.SubId)
	if err != nil {
		return 0, nil, err
	}
	if !isConsumer(sub, req.Consumer) {
		return 0, nil, errors.Wrapf(vty.ErrInvalidConsumer, "consumer %s sub %d", req.Consumer, req.SubId)
	}
	if req.Confirmations < cfg.MinConfirmations || req.Confirmations > types.MaxRequestConfirmations {
		return 0, nil, errors.Wrapf(vty.ErrInvalidRequestConfirmations, "have %d want [%d, %d]",
			req.Confirmations, cfg.MinConfirmations, types.MaxRequestConfirmations)
	}
	if req.CallbackGasLimit > cfg.MaxGasLimit {
		return 0, nil, errors.Wrapf(vty.ErrGasLimitTooBig, "have %d want %d", req.CallbackGasLimit, cfg.MaxGasLimit)
	}
	if req.NumWords < 1 || req.NumWords > cfg.MaxNumWords {
		return 0, nil, errors.Wrapf(vty.ErrNumWordsTooBig, "have %d want [1, %d]", req.NumWords, cfg.MaxNumWords)
	}
	requestID, kv, err := a.nextID(calcReqCountKey())
	if err != nil {
		return 0, nil, err
	}
	sub.ReqCount++
	keyHash, err := common.FromHex(req.KeyHash)
	if err != nil {
		return 0, nil, errors.Wrap(types.ErrInvalidParam, "keyHash")
	}
	request := &vty.RandomWordsRequest{
		RequestId:        requestID,
		SubId:            sub.SubId,
		Consumer:         req.Consumer,
		Execer:           req.Execer,
		KeyHash:          req.KeyHash,
		PreSeed:          common.Sha3(keyHash, []byte(req.Consumer), common.Int64ToBytes(sub.SubId), common.Int64ToBytes(sub.ReqCount)),
		Height:           a.height,
		Confirmations:    req.Confirmations,
		CallbackGasLimit: req.CallbackGasLimit,
		NumWords:         req.NumWords,
		Nonce:            sub.ReqCount,
	}
	kvs := []*types.KeyValue{kv, a.save(calcSubKey(sub.SubId), sub), a.save(calcRequestKey(requestID), request)}
	log := &types.ReceiptLog{Ty: vty.TyLogVrfRandomWordsRequested, Log: types.Encode(request)}
	requestMeter.Mark(1)
	vlog.Info("requestRandomWords", "requestId", requestID, "subId", sub.SubId, "consumer", req.Consumer, "height", a.height)
	return requestID, types.NewReceipt(kvs, []*types.ReceiptLog{log}), nil
}

//seedHeight 参与 vrf 输入的区块, 包含请求交易或者在它之后, 最早可以生成的高度上已经提交
func seedHeight(req *vty.RandomWordsRequest) int64 {
	return req.Height + int64(req.Confirmations) - 1
}

//calcSeed vrf 的输入, 由请求的 preSeed, 请求的高度和 id, 以及请求之后的区块哈希决定
func calcSeed(req *vty.RandomWordsRequest, blockHash []byte) []byte {
	return common.Sha3(req.PreSeed, common.Int64ToBytes(req.Height), common.Int64ToBytes(req.RequestId), blockHash)
}

//expandWords 由 vrf 的输出扩展出 numWords 个随机数
func expandWords(output []byte, numWords int32) [][]byte {
	words := make([][]byte, numWords)
	for i := int32(0); i < numWords; i++ {
		words[i] = common.Sha3(output, common.Int64ToBytes(int64(i)))
	}
	return words
}

func (a *action) fulfillRandomWords(fulfill *vty.VrfFulfillRandomWords) (*types.Receipt, error) {
	req, err := getRequest(a.db, fulfill.RequestId)
	if err != nil {
		return nil, err
	}
	if a.height < req.Height+int64(req.Confirmations) {
		return nil, errors.Wrapf(vty.ErrRequestNotConfirmed, "height %d want %d", a.height, req.Height+int64(req.Confirmations))
	}
	key, err := a.v.privateKey()
	if err != nil {
		return nil, err
	}
	sub, err := getSubscription(a.db, req.SubId)
	if err != nil {
		return nil, err
	}
	payment := vty.CalcPayment(a.v.vrfConfig(), req.CallbackGasLimit)
	if sub.Balance < payment {
		return nil, errors.Wrapf(vty.ErrInsufficientBalance, "balance %d payment %d", sub.Balance, payment)
	}
	sub.Balance -= payment

	blockHash, err := a.v.GetAPI().GetBlockHash(seedHeight(req))
	if err != nil {
		return nil, err
	}
	seed := calcSeed(req, blockHash)
	output, proof := key.Evaluate(seed)
	words := expandWords(output[:], req.NumWords)
	record := &vty.RandomWordsProof{
		RequestId:   req.RequestId,
		Seed:        seed,
		Output:      output[:],
		Proof:       proof,
		RandomWords: words,
		Payment:     payment,
		Height:      a.height,
		Consumer:    req.Consumer,
		Execer:      req.Execer,
		BlockHash:   blockHash,
	}
	kvs := []*types.KeyValue{
		a.save(calcSubKey(sub.SubId), sub),
		a.del(calcRequestKey(req.RequestId)),
		a.save(calcProofKey(req.RequestId), record),
	}
	receipt := types.NewReceipt(kvs, []*types.ReceiptLog{{Ty: vty.TyLogVrfRandomWordsFulfilled, Log: types.Encode(record)}})

	//请求已经删除, consumer 失败时整个交易回滚, 请求保留
	consumer, err := a.loadConsumer(req.Execer)
	if err != nil {
		return nil, err
	}
	r, err := consumer.FulfillRandomWords(a.execaddr, req.Consumer, req.RequestId, words)
	if err != nil {
		vlog.Error("fulfillRandomWords consumer", "requestId", req.RequestId, "execer", req.Execer, "err", err)
		return nil, err
	}
	fulfillMeter.Mark(1)
	return types.AppendReceipt(receipt, r), nil
}

func (a *action) loadConsumer(execer string) (vty.Consumer, error) {
	driver, err := a.v.GetAPI().LoadDriver(execer)
	if err != nil {
		return nil, err
	}
	consumer, ok := driver.(vty.Consumer)
	if !ok {
		return nil, errors.Wrap(vty.ErrConsumerNotSupport, execer)
	}
	return consumer, nil
}
