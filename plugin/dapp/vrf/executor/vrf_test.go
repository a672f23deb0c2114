// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"errors"
	"testing"

	"github.com/33cn/hot/common"
	"github.com/33cn/hot/common/address"
	"github.com/33cn/hot/common/crypto"
	dbm "github.com/33cn/hot/common/db"
	"github.com/33cn/hot/common/vrf/p256"
	"github.com/33cn/hot/executor"
	vty "github.com/33cn/hot/plugin/dapp/vrf/types"
	drivers "github.com/33cn/hot/system/dapp"
	"github.com/33cn/hot/types"
	pkgerr "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	keyHash       = "0xd89b2bf150e3b9e13446986e571fb9cab24b13cea0a43ea20a6049a85cc807cc"
	consumerExec  = "vrfconsumer"
	testBlockTime = 1514533394
)

type mockConsumer struct {
	drivers.Driver
	fail      error
	caller    string
	consumer  string
	requestID int64
	words     [][]byte
}

func (m *mockConsumer) FulfillRandomWords(caller, consumer string, requestID int64, words [][]byte) (*types.Receipt, error) {
	if m.fail != nil {
		return nil, m.fail
	}
	m.caller, m.consumer, m.requestID, m.words = caller, consumer, requestID, words
	return types.NewReceipt(nil, nil), nil
}

type mockAPI struct {
	cfg      *types.Config
	consumer *mockConsumer
	salt     string
}

//GetBlockHash 区块哈希由 salt 和高度决定
func (api *mockAPI) GetBlockHash(height int64) ([]byte, error) {
	return common.Sha256(append([]byte(api.salt), common.Int64ToBytes(height)...)), nil
}

func (api *mockAPI) GetConfig() *types.Config {
	return api.cfg
}

func (api *mockAPI) LoadDriver(name string) (drivers.Driver, error) {
	if name == consumerExec {
		return api.consumer, nil
	}
	return nil, types.ErrUnRegistedDriver
}

type testEnv struct {
	t        *testing.T
	v        *Vrf
	state    *executor.StateDB
	api      *mockAPI
	owner    crypto.PrivKey
	consumer string
}

func newTestEnv(t *testing.T) *testEnv {
	db, err := dbm.NewDB("vrf", dbm.MemDBBackendStr, "", 0)
	require.Nil(t, err)
	cfg := types.MustInitCfgString("")
	key, _ := p256.GenerateKey()
	cfg.Vrf.PrivateKey = common.ToHex(key.(*p256.PrivateKey).Bytes())
	owner, err := types.GenKey()
	require.Nil(t, err)
	env := &testEnv{
		t:        t,
		v:        newVrf().(*Vrf),
		state:    executor.NewStateDB(db),
		api:      &mockAPI{cfg: cfg, consumer: &mockConsumer{}},
		owner:    owner,
		consumer: address.ExecAddress(consumerExec + ".1"),
	}
	env.v.SetStateDB(env.state)
	env.v.SetLocalDB(executor.NewLocalDB(db, false))
	env.v.SetAPI(env.api)
	env.setHeight(1)
	return env
}

func (env *testEnv) setHeight(height int64) {
	env.v.SetEnv(height, testBlockTime+height)
}

func (env *testEnv) tx(priv crypto.PrivKey, action string, param types.Message) *types.Transaction {
	tx, err := vty.CreateTx(action, param)
	require.Nil(env.t, err)
	tx.Sign(priv)
	return tx
}

func (env *testEnv) exec(priv crypto.PrivKey, action string, param types.Message) (*types.Receipt, error) {
	env.state.Begin()
	receipt, err := env.v.Exec(env.tx(priv, action, param), 0)
	if err != nil {
		env.state.Rollback()
		return nil, err
	}
	require.Nil(env.t, env.state.Commit())
	return receipt, nil
}

//创建订阅, 充值, 添加 consumer
func (env *testEnv) setupSub(fund int64) int64 {
	receipt, err := env.exec(env.owner, "CreateSubscription", &vty.VrfCreateSubscription{})
	require.Nil(env.t, err)
	var sub vty.Subscription
	require.Nil(env.t, types.Decode(receipt.Logs[0].Log, &sub))
	if fund > 0 {
		_, err = env.exec(env.owner, "FundSubscription", &vty.VrfFundSubscription{SubId: sub.SubId, Amount: fund})
		require.Nil(env.t, err)
	}
	_, err = env.exec(env.owner, "AddConsumer", &vty.VrfAddConsumer{SubId: sub.SubId, Consumer: env.consumer})
	require.Nil(env.t, err)
	return sub.SubId
}

func (env *testEnv) request(subID int64) (int64, error) {
	env.state.Begin()
	id, _, err := env.v.RequestRandomWords(&vty.ReqRandomWords{
		KeyHash:          keyHash,
		SubId:            subID,
		Confirmations:    1,
		CallbackGasLimit: 500000,
		NumWords:         2,
		Consumer:         env.consumer,
		Execer:           consumerExec,
	})
	if err != nil {
		env.state.Rollback()
		return 0, err
	}
	require.Nil(env.t, env.state.Commit())
	return id, nil
}

func TestSubscription(t *testing.T) {
	env := newTestEnv(t)
	subID := env.setupSub(10 * types.Coin)
	assert.Equal(t, int64(1), subID)
	assert.Equal(t, int64(2), env.setupSub(0))

	reply, err := env.v.Query_GetSubscription(&vty.ReqVrfSubscription{SubId: subID})
	require.Nil(t, err)
	sub := reply.(*vty.Subscription)
	assert.Equal(t, types.PrivKeyToAddr(env.owner), sub.Owner)
	assert.Equal(t, 10*types.Coin, sub.Balance)
	assert.Equal(t, []string{env.consumer}, sub.Consumers)

	//只有 owner 可以添加 consumer
	other, err := types.GenKey()
	require.Nil(t, err)
	_, err = env.exec(other, "AddConsumer", &vty.VrfAddConsumer{SubId: subID, Consumer: types.PrivKeyToAddr(other)})
	assert.Equal(t, vty.ErrMustBeSubOwner, err)
	_, err = env.exec(env.owner, "AddConsumer", &vty.VrfAddConsumer{SubId: subID, Consumer: env.consumer})
	assert.Equal(t, vty.ErrConsumerExists, err)
	_, err = env.exec(env.owner, "FundSubscription", &vty.VrfFundSubscription{SubId: 99, Amount: 1})
	assert.Equal(t, vty.ErrInvalidSubscription, err)
	_, err = env.exec(env.owner, "FundSubscription", &vty.VrfFundSubscription{SubId: subID, Amount: 0})
	assert.Equal(t, types.ErrAmount, err)
}

func TestRequestValidation(t *testing.T) {
	env := newTestEnv(t)
	subID := env.setupSub(10 * types.Coin)
	base := vty.ReqRandomWords{KeyHash: keyHash, SubId: subID, Confirmations: 1, CallbackGasLimit: 1, NumWords: 1, Consumer: env.consumer, Execer: consumerExec}
	cases := []struct {
		modify func(r *vty.ReqRandomWords)
		err    error
	}{
		{func(r *vty.ReqRandomWords) { r.SubId = 100 }, vty.ErrInvalidSubscription},
		{func(r *vty.ReqRandomWords) { r.Consumer = types.PrivKeyToAddr(env.owner) }, vty.ErrInvalidConsumer},
		{func(r *vty.ReqRandomWords) { r.Confirmations = 0 }, vty.ErrInvalidRequestConfirmations},
		{func(r *vty.ReqRandomWords) { r.Confirmations = 201 }, vty.ErrInvalidRequestConfirmations},
		{func(r *vty.ReqRandomWords) { r.CallbackGasLimit = 2500001 }, vty.ErrGasLimitTooBig},
		{func(r *vty.ReqRandomWords) { r.NumWords = 0 }, vty.ErrNumWordsTooBig},
		{func(r *vty.ReqRandomWords) { r.NumWords = 501 }, vty.ErrNumWordsTooBig},
	}
	for i, c := range cases {
		req := base
		c.modify(&req)
		_, _, err := env.v.RequestRandomWords(&req)
		assert.Equal(t, c.err, pkgerr.Cause(err), "case %d", i)
	}
	id, _, err := env.v.RequestRandomWords(&base)
	require.Nil(t, err)
	assert.Equal(t, int64(1), id)
}

func TestFulfillRandomWords(t *testing.T) {
	env := newTestEnv(t)
	subID := env.setupSub(10 * types.Coin)
	id, err := env.request(subID)
	require.Nil(t, err)
	assert.Equal(t, int64(1), id)

	reply, err := env.v.Query_GetRequest(&vty.ReqVrfRequest{RequestId: id})
	require.Nil(t, err)
	req := reply.(*vty.RandomWordsRequest)
	assert.Equal(t, int64(1), req.Height)
	assert.Equal(t, env.consumer, req.Consumer)
	assert.Len(t, req.PreSeed, 32)

	//确认高度之前不能生成
	_, err = env.exec(env.owner, "FulfillRandomWords", &vty.VrfFulfillRandomWords{RequestId: id})
	assert.Equal(t, vty.ErrRequestNotConfirmed, pkgerr.Cause(err))
	_, err = env.exec(env.owner, "FulfillRandomWords", &vty.VrfFulfillRandomWords{RequestId: 2})
	assert.Equal(t, vty.ErrNonexistentRequest, err)

	env.setHeight(2)
	//consumer 失败时请求保留, 余额不变
	env.api.consumer.fail = errors.New("ErrConsumerFailed")
	_, err = env.exec(env.owner, "FulfillRandomWords", &vty.VrfFulfillRandomWords{RequestId: id})
	assert.Equal(t, env.api.consumer.fail, err)
	_, err = env.v.Query_GetRequest(&vty.ReqVrfRequest{RequestId: id})
	assert.Nil(t, err)
	reply, err = env.v.Query_GetSubscription(&vty.ReqVrfSubscription{SubId: subID})
	require.Nil(t, err)
	assert.Equal(t, 10*types.Coin, reply.(*vty.Subscription).Balance)

	env.api.consumer.fail = nil
	receipt, err := env.exec(env.owner, "FulfillRandomWords", &vty.VrfFulfillRandomWords{RequestId: id})
	require.Nil(t, err)
	assert.Equal(t, int32(vty.TyLogVrfRandomWordsFulfilled), receipt.Logs[0].Ty)
	assert.Equal(t, address.ExecAddress(vty.VrfX), env.api.consumer.caller)
	assert.Equal(t, env.consumer, env.api.consumer.consumer)
	assert.Equal(t, id, env.api.consumer.requestID)
	assert.Len(t, env.api.consumer.words, 2)

	payment := vty.CalcPayment(env.api.cfg.Vrf, 500000)
	reply, err = env.v.Query_GetSubscription(&vty.ReqVrfSubscription{SubId: subID})
	require.Nil(t, err)
	assert.Equal(t, 10*types.Coin-payment, reply.(*vty.Subscription).Balance)

	//只能生成一次
	_, err = env.exec(env.owner, "FulfillRandomWords", &vty.VrfFulfillRandomWords{RequestId: id})
	assert.Equal(t, vty.ErrNonexistentRequest, err)

	reply, err = env.v.Query_VerifyProof(&vty.ReqVrfRequest{RequestId: id})
	require.Nil(t, err)
	proof := reply.(*vty.ReplyVrfProof)
	assert.True(t, proof.Valid)
	assert.Equal(t, env.api.consumer.words, proof.RandomWords)

	//输入包含请求所在区块的哈希
	reply, err = env.v.Query_GetProof(&vty.ReqVrfRequest{RequestId: id})
	require.Nil(t, err)
	record := reply.(*vty.RandomWordsProof)
	blockHash, _ := env.api.GetBlockHash(req.Height)
	assert.Equal(t, blockHash, record.BlockHash)
	assert.Equal(t, calcSeed(req, blockHash), record.Seed)
	assert.NotEqual(t, common.Sha3(req.PreSeed, common.Int64ToBytes(req.Height), common.Int64ToBytes(req.RequestId)), record.Seed)
}

//同样的 key 和请求, 区块哈希不同时随机数不同
func TestFulfillDependsOnBlockHash(t *testing.T) {
	fulfill := func(key, salt string) [][]byte {
		env := newTestEnv(t)
		env.api.cfg.Vrf.PrivateKey = key
		env.api.salt = salt
		subID := env.setupSub(10 * types.Coin)
		id, err := env.request(subID)
		require.Nil(t, err)
		env.setHeight(2)
		_, err = env.exec(env.owner, "FulfillRandomWords", &vty.VrfFulfillRandomWords{RequestId: id})
		require.Nil(t, err)
		return env.api.consumer.words
	}
	key := newTestEnv(t).api.cfg.Vrf.PrivateKey
	words := fulfill(key, "a")
	require.Len(t, words, 2)
	assert.Equal(t, words, fulfill(key, "a"))
	assert.NotEqual(t, words, fulfill(key, "b"))
}

func TestSeedHeight(t *testing.T) {
	req := &vty.RandomWordsRequest{Height: 10, Confirmations: 1}
	assert.Equal(t, int64(10), seedHeight(req))
	req.Confirmations = 3
	assert.Equal(t, int64(12), seedHeight(req))
	//最早在 Height+Confirmations 生成, 这时 seedHeight 已经提交
	assert.True(t, seedHeight(req) < req.Height+int64(req.Confirmations))
}

func TestCalcPayment(t *testing.T) {
	cfg := types.MustInitCfgString("").Vrf
	assert.Equal(t, types.Coin/4, vty.CalcPayment(cfg, 0))
	assert.Equal(t, types.Coin/4+50000, vty.CalcPayment(cfg, 500000))
	assert.True(t, vty.CalcPayment(cfg, cfg.MaxGasLimit) < types.Coin/2)
	cfg.GasPriceLink = 1 << 62
	assert.True(t, vty.CalcPayment(cfg, cfg.MaxGasLimit) > 0)
}

func TestFulfillInsufficientBalance(t *testing.T) {
	env := newTestEnv(t)
	subID := env.setupSub(0)
	id, err := env.request(subID)
	require.Nil(t, err)
	env.setHeight(3)
	_, err = env.exec(env.owner, "FulfillRandomWords", &vty.VrfFulfillRandomWords{RequestId: id})
	assert.Equal(t, vty.ErrInsufficientBalance, pkgerr.Cause(err))
}

func TestExpandWords(t *testing.T) {
	out := common.Sha3([]byte("output"))
	words := expandWords(out, 3)
	assert.Len(t, words, 3)
	assert.NotEqual(t, words[0], words[1])
	assert.Equal(t, words, expandWords(out, 3))
}
