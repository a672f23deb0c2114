// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor_test

import (
	"math/big"
	"strings"
	"testing"

	"github.com/33cn/hot/common"
	"github.com/33cn/hot/common/address"
	"github.com/33cn/hot/common/crypto"
	hty "github.com/33cn/hot/plugin/dapp/hot/types"
	vty "github.com/33cn/hot/plugin/dapp/vrf/types"
	"github.com/33cn/hot/types"
	"github.com/33cn/hot/util/testnode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	fee      int64 = 100
	interval int64 = 30
	oracle         = 6
)

type hotSuite struct {
	t    *testing.T
	mock *testnode.HotMock
	id   string
}

func newSuite(t *testing.T) *hotSuite {
	mock := testnode.New()
	s := &hotSuite{t: t, mock: mock}
	t.Cleanup(mock.Close)
	return s
}

//createExternal 由测试账户 oracle 作为链外 coordinator 的游戏
func (s *hotSuite) createExternal() {
	s.create(&hty.HotCreate{
		EntranceFee: fee,
		Interval:    interval,
		Coordinator: s.mock.GetGenesisAddr(oracle),
	})
}

func (s *hotSuite) create(create *hty.HotCreate) {
	tx, err := hty.CreateTx("Create", create)
	require.Nil(s.t, err)
	_, err = s.mock.SendTx(s.mock.GetGenesisKey(0), tx)
	require.Nil(s.t, err)
	s.id = tx.HashHex()
}

func (s *hotSuite) send(priv crypto.PrivKey, action string, param types.Message) error {
	tx, err := hty.CreateTx(action, param)
	require.Nil(s.t, err)
	_, err = s.mock.SendTx(priv, tx)
	return err
}

func (s *hotSuite) enter(i int, outcome int32, amount int64) error {
	return s.send(s.mock.GetGenesisKey(i), "Enter", &hty.HotEnter{GameId: s.id, Outcome: outcome, Amount: amount})
}

func (s *hotSuite) perform() error {
	return s.send(s.mock.GetGenesisKey(7), "PerformUpkeep", &hty.HotPerformUpkeep{GameId: s.id})
}

func (s *hotSuite) fulfill(i int, requestID int64, words ...[]byte) error {
	return s.send(s.mock.GetGenesisKey(i), "Fulfill", &hty.HotFulfill{GameId: s.id, RequestId: requestID, RandomWords: words})
}

func (s *hotSuite) query(funcName string, param types.Message) types.Message {
	reply, err := s.mock.Query(hty.HotX, funcName, param)
	require.Nil(s.t, err)
	return reply
}

func (s *hotSuite) game() *hty.HotGame {
	return s.query("GetGameInfo", &hty.ReqHotGame{GameId: s.id}).(*hty.HotGame)
}

func (s *hotSuite) int64Query(funcName string) int64 {
	return s.query(funcName, &hty.ReqHotGame{GameId: s.id}).(*types.Int64).Data
}

func (s *hotSuite) checkUpkeep() *hty.ReplyCheckUpkeep {
	return s.query("CheckUpkeep", &hty.ReqHotGame{GameId: s.id}).(*hty.ReplyCheckUpkeep)
}

func (s *hotSuite) balance(i int) int64 {
	return s.mock.GetBalance(s.mock.GetGenesisAddr(i))
}

//poolEqualBalance 奖池等于游戏地址的余额
func (s *hotSuite) poolEqualBalance() {
	game := s.game()
	var sum int64
	for _, e := range game.Entries {
		sum += e.Amount
	}
	assert.Equal(s.t, game.Rollover+sum, s.mock.GetBalance(game.Address))
}

//draw 时间到了以后开奖, 返回请求 id
func (s *hotSuite) draw() int64 {
	s.mock.Advance(interval)
	require.True(s.t, s.checkUpkeep().UpkeepNeeded)
	require.Nil(s.t, s.perform())
	game := s.game()
	require.Equal(s.t, int32(hty.HotStateDrawing), game.State)
	require.NotZero(s.t, game.PendingRequestId)
	return game.PendingRequestId
}

func word(n int64) []byte {
	return big.NewInt(n).Bytes()
}

func assertErr(t *testing.T, want, err error) {
	require.NotNil(t, err)
	assert.True(t, strings.HasSuffix(err.Error(), want.Error()), "want %v got %v", want, err)
}

func TestCreate(t *testing.T) {
	s := newSuite(t)
	s.createExternal()
	game := s.game()
	assert.Equal(t, s.id, game.GameId)
	assert.Equal(t, s.mock.GetGenesisAddr(0), game.Creator)
	assert.Equal(t, address.ExecAddress(hty.GameExecName(s.id)), game.Address)
	assert.Equal(t, s.mock.GetGenesisAddr(oracle), game.Coordinator)
	assert.True(t, game.External)
	assert.Equal(t, int64(1), game.Round)
	assert.Equal(t, testnode.StartTime, game.LastTimeStamp)
	//未配置的参数使用默认值
	cfg := s.mock.GetCfg().Hot
	assert.Equal(t, cfg.KeyHash, game.KeyHash)
	assert.Equal(t, cfg.NumWords, game.NumWords)
	assert.Equal(t, cfg.RequestConfirmations, game.RequestConfirmations)

	assert.Equal(t, int64(hty.HotStateOpen), s.int64Query("GetHotState"))
	assert.Equal(t, fee, s.int64Query("GetEntranceFee"))
	assert.Equal(t, interval, s.int64Query("GetInterval"))
	assert.Equal(t, testnode.StartTime, s.int64Query("GetLatestTimeStamp"))
	assert.Equal(t, int64(0), s.int64Query("GetNumberOfPlayers"))

	ids := s.query("GetGamesByCreator", &types.ReqAddr{Addr: s.mock.GetGenesisAddr(0)}).(*hty.ReplyHotGameIds)
	assert.Equal(t, []string{s.id}, ids.GameIds)

	//in-chain coordinator
	s.create(&hty.HotCreate{EntranceFee: fee, Interval: interval})
	game = s.game()
	assert.False(t, game.External)
	assert.Equal(t, address.ExecAddress(vty.VrfX), game.Coordinator)
}

func TestCreateParam(t *testing.T) {
	s := newSuite(t)
	bad := []*hty.HotCreate{
		{EntranceFee: 0, Interval: interval},
		{EntranceFee: fee, Interval: 0},
		{EntranceFee: fee, Interval: interval, KeyHash: "0x1234"},
		{EntranceFee: fee, Interval: interval, Coordinator: "not an address"},
		{EntranceFee: fee, Interval: interval, NumWords: -1},
	}
	for _, create := range bad {
		err := s.send(s.mock.GetGenesisKey(0), "Create", create)
		assertErr(t, hty.ErrHotParam, err)
	}
}

func TestEnter(t *testing.T) {
	s := newSuite(t)
	s.createExternal()
	before := s.balance(1)

	//InsufficientStake, 没有任何记录
	assertErr(t, hty.ErrHotNotEnoughETHEntered, s.enter(1, hty.HotHeads, fee-1))
	assert.Equal(t, int64(0), s.int64Query("GetNumberOfPlayers"))
	assert.Equal(t, before, s.balance(1))

	assertErr(t, hty.ErrHotOutcome, s.enter(1, 2, fee))
	assertErr(t, hty.ErrHotNotFound, s.send(s.mock.GetGenesisKey(1), "Enter", &hty.HotEnter{GameId: "0x00", Amount: fee}))

	require.Nil(t, s.enter(1, hty.HotHeads, fee))
	require.Nil(t, s.enter(2, hty.HotTails, 3*fee))
	require.Nil(t, s.enter(1, hty.HotTails, fee+1))
	assert.Equal(t, before-2*fee-1, s.balance(1))
	assert.Equal(t, int64(3), s.int64Query("GetNumberOfPlayers"))
	s.poolEqualBalance()

	player := s.query("GetPlayer", &hty.ReqHotIndex{GameId: s.id, Index: 1}).(*hty.ReplyHotPlayer)
	assert.Equal(t, s.mock.GetGenesisAddr(2), player.Participant)
	assert.Equal(t, int32(hty.HotTails), player.Outcome)
	assert.Equal(t, 3*fee, player.Amount)
	_, err := s.mock.Query(hty.HotX, "GetPlayer", &hty.ReqHotIndex{GameId: s.id, Index: 3})
	assertErr(t, hty.ErrHotParam, err)

	header := s.query("GetHeader", &hty.ReqHotIndex{GameId: s.id, Index: 0}).(*hty.ReplyHotPlayer)
	assert.Equal(t, s.mock.GetGenesisAddr(1), header.Participant)
	_, err = s.mock.Query(hty.HotX, "GetHeader", &hty.ReqHotIndex{GameId: s.id, Index: 1})
	assertErr(t, hty.ErrHotParam, err)
	tailer := s.query("GetTailer", &hty.ReqHotIndex{GameId: s.id, Index: 1}).(*hty.ReplyHotPlayer)
	assert.Equal(t, s.mock.GetGenesisAddr(1), tailer.Participant)
	assert.Equal(t, fee+1, tailer.Amount)
}

//fee 100, 一个人下注正面, 随机数 4, 赢得全部奖池
func TestScenarioSoleWinner(t *testing.T) {
	s := newSuite(t)
	s.createExternal()
	before := s.balance(1)
	require.Nil(t, s.enter(1, hty.HotHeads, fee))
	s.poolEqualBalance()

	//时间没到
	reply := s.checkUpkeep()
	assert.False(t, reply.UpkeepNeeded)
	assert.False(t, reply.TimePassed)
	assert.True(t, reply.HasPlayers)
	assertErr(t, hty.ErrHotUpkeepNotNeeded, s.perform())
	assert.Equal(t, int64(hty.HotStateOpen), s.int64Query("GetHotState"))

	id := s.draw()
	assertErr(t, hty.ErrHotNotOpen, s.enter(2, hty.HotTails, fee))
	assertErr(t, hty.ErrHotUpkeepNotNeeded, s.perform())
	assert.False(t, s.checkUpkeep().IsOpen)

	require.Nil(t, s.fulfill(oracle, id, word(4)))
	game := s.game()
	assert.Equal(t, int32(hty.HotStateOpen), game.State)
	assert.Empty(t, game.Entries)
	assert.Zero(t, game.PendingRequestId)
	assert.Equal(t, testnode.StartTime+interval, game.LastTimeStamp)
	assert.Equal(t, int64(2), game.Round)
	assert.Equal(t, before, s.balance(1))
	assert.Equal(t, int64(0), s.mock.GetBalance(game.Address))

	winner := s.query("GetRecentWinner", &hty.ReqHotGame{GameId: s.id}).(*types.ReplyString)
	assert.Equal(t, s.mock.GetGenesisAddr(1), winner.Data)
	flip := s.query("GetRecentFlip", &hty.ReqHotGame{GameId: s.id}).(*hty.ReplyHotRecentFlip)
	assert.True(t, flip.HasResult)
	assert.Equal(t, int32(hty.HotHeads), flip.Outcome)
	assert.Equal(t, word(4), flip.RandomWord)
	assert.Equal(t, fee, s.query("GetWinnerShare", &hty.ReqHotWinnerShare{GameId: s.id}).(*types.Int64).Data)

	//同一个请求不能再次开奖
	assertErr(t, hty.ErrHotUnknownRequest, s.fulfill(oracle, id, word(4)))

	rounds := s.query("GetRoundHistory", &hty.ReqHotRoundHistory{GameId: s.id}).(*hty.ReplyHotRounds)
	require.Len(t, rounds.Rounds, 1)
	assert.Equal(t, int64(1), rounds.Rounds[0].Round)
	assert.Equal(t, id, rounds.Rounds[0].RequestId)
	assert.Equal(t, []string{s.mock.GetGenesisAddr(1)}, rounds.Rounds[0].Winners)
	assert.Equal(t, []int64{fee}, rounds.Rounds[0].Payouts)
}

//A 正面, B C 反面, 随机数 3, B C 各得 150
func TestScenarioSplit(t *testing.T) {
	s := newSuite(t)
	s.createExternal()
	a, b, c := s.balance(1), s.balance(2), s.balance(3)
	require.Nil(t, s.enter(1, hty.HotHeads, fee))
	require.Nil(t, s.enter(2, hty.HotTails, fee))
	require.Nil(t, s.enter(3, hty.HotTails, fee))
	s.poolEqualBalance()

	//再下注 100 选择反面可以分到的奖金
	share := s.query("GetWinnerShare", &hty.ReqHotWinnerShare{GameId: s.id, Amount: fee, Outcome: hty.HotTails}).(*types.Int64)
	assert.Equal(t, int64(133), share.Data)
	share = s.query("GetWinnerShare", &hty.ReqHotWinnerShare{GameId: s.id, Amount: fee, Outcome: hty.HotHeads}).(*types.Int64)
	assert.Equal(t, int64(200), share.Data)
	for _, amount := range []int64{-1, types.MaxCoin, 1 << 62} {
		_, err := s.mock.Query(hty.HotX, "GetWinnerShare", &hty.ReqHotWinnerShare{GameId: s.id, Amount: amount, Outcome: hty.HotTails})
		assertErr(t, hty.ErrHotParam, err)
	}

	id := s.draw()
	require.Nil(t, s.fulfill(oracle, id, word(3)))
	assert.Equal(t, a-fee, s.balance(1))
	assert.Equal(t, b+fee/2, s.balance(2))
	assert.Equal(t, c+fee/2, s.balance(3))
	game := s.game()
	assert.Equal(t, int64(0), s.mock.GetBalance(game.Address))
	assert.Equal(t, int32(hty.HotTails), game.RecentOutcome)
	assert.Equal(t, s.mock.GetGenesisAddr(2), game.RecentWinner)
	assert.Equal(t, int64(150), game.RecentWinnerShare)
}

func TestScenarioUnauthorized(t *testing.T) {
	s := newSuite(t)
	s.createExternal()
	require.Nil(t, s.enter(1, hty.HotHeads, fee))
	id := s.draw()
	before := s.game()

	assertErr(t, hty.ErrHotUnauthorizedCaller, s.fulfill(1, id, word(4)))
	assert.Equal(t, before, s.game())
	assertErr(t, hty.ErrHotUnknownRequest, s.fulfill(oracle, id+1, word(4)))
	assert.Equal(t, before, s.game())
	assertErr(t, hty.ErrHotParam, s.fulfill(oracle, id))
	assert.Equal(t, before, s.game())
	s.poolEqualBalance()

	require.Nil(t, s.fulfill(oracle, id, word(4)))
}

//没有人猜中时奖池留到下一轮
func TestRollover(t *testing.T) {
	s := newSuite(t)
	s.createExternal()
	c := s.balance(3)
	require.Nil(t, s.enter(1, hty.HotHeads, fee))
	require.Nil(t, s.enter(2, hty.HotHeads, 2*fee))
	id := s.draw()
	require.Nil(t, s.fulfill(oracle, id, word(1)))

	game := s.game()
	assert.Equal(t, 3*fee, game.Rollover)
	assert.Equal(t, "", game.RecentWinner)
	assert.Zero(t, game.RecentWinnerShare)
	assert.Empty(t, game.Entries)
	assert.Equal(t, int32(hty.HotStateOpen), game.State)
	s.poolEqualBalance()

	//空的一轮不能开奖, 即使还有余额
	s.mock.Advance(interval)
	reply := s.checkUpkeep()
	assert.True(t, reply.HasBalance)
	assert.False(t, reply.HasPlayers)
	assertErr(t, hty.ErrHotUpkeepNotNeeded, s.perform())

	require.Nil(t, s.enter(3, hty.HotTails, fee))
	s.poolEqualBalance()
	id = s.draw()
	require.Nil(t, s.fulfill(oracle, id, word(5)))
	assert.Equal(t, c+3*fee, s.balance(3))
	game = s.game()
	assert.Zero(t, game.Rollover)
	assert.Equal(t, int64(0), s.mock.GetBalance(game.Address))
	assert.Equal(t, int64(3), game.Round)

	rounds := s.query("GetRoundHistory", &hty.ReqHotRoundHistory{GameId: s.id, Direction: 1}).(*hty.ReplyHotRounds)
	require.Len(t, rounds.Rounds, 2)
	assert.Equal(t, int64(1), rounds.Rounds[0].Round)
	assert.Empty(t, rounds.Rounds[0].Winners)
	assert.Equal(t, 3*fee, rounds.Rounds[0].Rollover)
	assert.Equal(t, 4*fee, rounds.Rounds[1].Pool)
	rounds = s.query("GetRoundHistory", &hty.ReqHotRoundHistory{GameId: s.id, Round: 2, Count: 1}).(*hty.ReplyHotRounds)
	require.Len(t, rounds.Rounds, 1)
	assert.Equal(t, int64(1), rounds.Rounds[0].Round)
}

//同一个人多次下注按总额分配, 余数给第一个赢家
func TestDustAndRepeatedEntries(t *testing.T) {
	s := newSuite(t)
	s.createExternal()
	a, b, c := s.balance(1), s.balance(2), s.balance(3)
	require.Nil(t, s.enter(1, hty.HotHeads, fee))
	require.Nil(t, s.enter(2, hty.HotHeads, fee))
	require.Nil(t, s.enter(3, hty.HotTails, fee+1))
	require.Nil(t, s.enter(1, hty.HotHeads, fee))
	//pool 401, 正面 300: a 267 + 余数 1, b 133
	id := s.draw()
	require.Nil(t, s.fulfill(oracle, id, word(2)))
	assert.Equal(t, a-2*fee+268, s.balance(1))
	assert.Equal(t, b-fee+133, s.balance(2))
	assert.Equal(t, c-fee-1, s.balance(3))
	assert.Equal(t, int64(0), s.mock.GetBalance(s.game().Address))
}

func TestPoolEqualBalance(t *testing.T) {
	s := newSuite(t)
	s.createExternal()
	amounts := []int64{fee, 7 * fee, fee + 13, 2*fee + 1, fee}
	for i, amount := range amounts {
		require.Nil(t, s.enter(i%5+1, int32(i%2), amount))
		s.poolEqualBalance()
	}
	//直接转账到游戏地址不计入奖池
	require.Nil(t, s.mock.Transfer(s.mock.GetGenesisKey(5), s.game().Address, fee))
	game := s.game()
	assert.Len(t, game.Entries, len(amounts))
	var sum int64
	for _, amount := range amounts {
		sum += amount
	}
	assert.Equal(t, sum+fee, s.mock.GetBalance(game.Address))
}

//链上 vrf coordinator 的完整流程
func TestVrfCoordinator(t *testing.T) {
	s := newSuite(t)
	owner := s.mock.GetGenesisKey(0)
	send := func(priv crypto.PrivKey, action string, param types.Message) error {
		tx, err := vty.CreateTx(action, param)
		require.Nil(t, err)
		_, err = s.mock.SendTx(priv, tx)
		return err
	}
	require.Nil(t, send(owner, "CreateSubscription", &vty.VrfCreateSubscription{}))
	require.Nil(t, send(owner, "FundSubscription", &vty.VrfFundSubscription{SubId: 1, Amount: 100 * types.Coin}))
	s.create(&hty.HotCreate{EntranceFee: fee, Interval: interval, SubscriptionId: 1})
	game := s.game()

	require.Nil(t, s.enter(1, hty.HotHeads, fee))
	require.Nil(t, s.enter(2, hty.HotTails, fee))
	//游戏地址不是订阅的 consumer
	s.mock.Advance(interval)
	assertErr(t, vty.ErrInvalidConsumer, s.perform())
	assert.Equal(t, int64(hty.HotStateOpen), s.int64Query("GetHotState"))

	require.Nil(t, send(owner, "AddConsumer", &vty.VrfAddConsumer{SubId: 1, Consumer: game.Address}))
	id := s.draw()
	req, err := s.mock.Query(vty.VrfX, "GetRequest", &vty.ReqVrfRequest{RequestId: id})
	require.Nil(t, err)
	assert.Equal(t, game.Address, req.(*vty.RandomWordsRequest).Consumer)

	//直接提交随机数的人不是 coordinator
	assertErr(t, hty.ErrHotUnauthorizedCaller, s.fulfill(oracle, id, word(4)))
	require.Nil(t, send(s.mock.GetGenesisKey(5), "FulfillRandomWords", &vty.VrfFulfillRandomWords{RequestId: id}))
	assertErr(t, vty.ErrNonexistentRequest, send(s.mock.GetGenesisKey(5), "FulfillRandomWords", &vty.VrfFulfillRandomWords{RequestId: id}))

	proof, err := s.mock.Query(vty.VrfX, "GetProof", &vty.ReqVrfRequest{RequestId: id})
	require.Nil(t, err)
	words := proof.(*vty.RandomWordsProof).RandomWords
	game = s.game()
	assert.Equal(t, int32(hty.HotStateOpen), game.State)
	assert.Equal(t, words[0], game.RecentRandomWord)
	outcome := int32(new(big.Int).SetBytes(words[0]).Bit(0))
	assert.Equal(t, outcome, game.RecentOutcome)
	assert.Equal(t, s.mock.GetGenesisAddr(int(outcome)+1), game.RecentWinner)
	assert.Equal(t, int64(0), s.mock.GetBalance(game.Address))

	verify, err := s.mock.Query(vty.VrfX, "VerifyProof", &vty.ReqVrfRequest{RequestId: id})
	require.Nil(t, err)
	assert.True(t, verify.(*vty.ReplyVrfProof).Valid)

	rounds := s.query("GetRoundHistory", &hty.ReqHotRoundHistory{GameId: s.id}).(*hty.ReplyHotRounds)
	require.Len(t, rounds.Rounds, 1)
	assert.Equal(t, id, rounds.Rounds[0].RequestId)
}

//请求需要等待确认区块
func TestVrfConfirmations(t *testing.T) {
	s := newSuite(t)
	owner := s.mock.GetGenesisKey(0)
	send := func(priv crypto.PrivKey, action string, param types.Message) error {
		tx, err := vty.CreateTx(action, param)
		require.Nil(t, err)
		_, err = s.mock.SendTx(priv, tx)
		return err
	}
	require.Nil(t, send(owner, "CreateSubscription", &vty.VrfCreateSubscription{}))
	require.Nil(t, send(owner, "FundSubscription", &vty.VrfFundSubscription{SubId: 1, Amount: 10 * types.Coin}))
	s.create(&hty.HotCreate{EntranceFee: fee, Interval: interval, SubscriptionId: 1, RequestConfirmations: 3})
	require.Nil(t, send(owner, "AddConsumer", &vty.VrfAddConsumer{SubId: 1, Consumer: s.game().Address}))
	//同一个账户两边都下注, 结果总是它赢
	require.Nil(t, s.enter(1, hty.HotHeads, fee))
	require.Nil(t, s.enter(1, hty.HotTails, fee))

	//开奖之前拿不到开奖区块的哈希
	exec := s.mock.GetNode().Executor()
	_, err := exec.GetBlockHash(s.mock.LastHeight() + 1)
	require.NotNil(t, err)

	id := s.draw()
	reply, err := s.mock.Query(vty.VrfX, "GetRequest", &vty.ReqVrfRequest{RequestId: id})
	require.Nil(t, err)
	req := reply.(*vty.RandomWordsRequest)
	assert.Equal(t, int32(3), req.Confirmations)
	assert.Equal(t, s.mock.LastHeight(), req.Height)

	fulfill := &vty.VrfFulfillRandomWords{RequestId: id}
	assertErr(t, vty.ErrRequestNotConfirmed, send(s.mock.GetGenesisKey(5), "FulfillRandomWords", fulfill))
	for s.mock.LastHeight()+1 < req.Height+int64(req.Confirmations) {
		require.Nil(t, s.mock.CreateBlock())
	}
	require.Nil(t, send(s.mock.GetGenesisKey(5), "FulfillRandomWords", fulfill))
	game := s.game()
	assert.Equal(t, int32(hty.HotStateOpen), game.State)
	assert.Equal(t, s.mock.GetGenesisAddr(1), game.RecentWinner)

	//vrf 的输入包含开奖之后第 confirmations-1 个区块的哈希
	reply, err = s.mock.Query(vty.VrfX, "GetProof", &vty.ReqVrfRequest{RequestId: id})
	require.Nil(t, err)
	proof := reply.(*vty.RandomWordsProof)
	blockHash, err := exec.GetBlockHash(req.Height + int64(req.Confirmations) - 1)
	require.Nil(t, err)
	assert.Equal(t, blockHash, proof.BlockHash)
	assert.Equal(t, common.Sha3(req.PreSeed, common.Int64ToBytes(req.Height), common.Int64ToBytes(id), blockHash), proof.Seed)
	assert.NotEqual(t, common.Sha3(req.PreSeed, common.Int64ToBytes(req.Height), common.Int64ToBytes(id)), proof.Seed)

	//默认配置下 500000 gas 的费用是 0.2505 coin
	assert.Equal(t, int64(500000), req.CallbackGasLimit)
	reply, err = s.mock.Query(vty.VrfX, "GetSubscription", &vty.ReqVrfSubscription{SubId: 1})
	require.Nil(t, err)
	assert.Equal(t, 10*types.Coin-25050000, reply.(*vty.Subscription).Balance)
}
