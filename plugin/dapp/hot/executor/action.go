// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"encoding/binary"

	"github.com/33cn/hot/account"
	"github.com/33cn/hot/common"
	"github.com/33cn/hot/common/address"
	dbm "github.com/33cn/hot/common/db"
	hty "github.com/33cn/hot/plugin/dapp/hot/types"
	vty "github.com/33cn/hot/plugin/dapp/vrf/types"
	"github.com/33cn/hot/types"
	"github.com/pkg/errors"
	"github.com/rcrowley/go-metrics"
)

var (
	enterMeter  = metrics.GetOrRegisterMeter("hot.enter", nil)
	drawMeter   = metrics.GetOrRegisterMeter("hot.draw", nil)
	resultMeter = metrics.GetOrRegisterMeter("hot.result", nil)
)

type action struct {
	h            *Hot
	coinsAccount *account.DB
	db           dbm.KV
	txhash       string
	fromaddr     string
	blocktime    int64
	height       int64
	execaddr     string
	index        int
}

func newAction(h *Hot, tx *types.Transaction, index int) *action {
	a := &action{
		h:            h,
		coinsAccount: h.GetCoinsAccount(),
		db:           h.GetStateDB(),
		blocktime:    h.GetBlockTime(),
		height:       h.GetHeight(),
		execaddr:     h.GetExecAddr(),
		index:        index,
	}
	if tx != nil {
		a.txhash = tx.HashHex()
		a.fromaddr = tx.From()
	}
	return a
}

func (a *action) save(key []byte, msg types.Message) *types.KeyValue {
	value := types.Encode(msg)
	a.db.Set(key, value)
	return &types.KeyValue{Key: key, Value: value}
}

func (a *action) saveGame(game *hty.HotGame) *types.KeyValue {
	return a.save(calcGameKey(game.GameId), game)
}

func getGame(db dbm.KV, gameID string) (*hty.HotGame, error) {
	value, err := db.Get(calcGameKey(gameID))
	if err != nil {
		if err == types.ErrNotFound {
			return nil, errors.Wrapf(hty.ErrHotNotFound, "game %s", gameID)
		}
		return nil, err
	}
	var game hty.HotGame
	if err := types.Decode(value, &game); err != nil {
		return nil, err
	}
	return &game, nil
}

func getGameIDByAddr(db dbm.KV, addr string) (string, error) {
	value, err := db.Get(calcGameAddrKey(addr))
	if err != nil {
		if err == types.ErrNotFound {
			return "", hty.ErrHotNotFound
		}
		return "", err
	}
	var id types.ReqString
	if err := types.Decode(value, &id); err != nil {
		return "", err
	}
	return id.Data, nil
}

func hotLog(ty int32, msg types.Message) *types.ReceiptLog {
	return &types.ReceiptLog{Ty: ty, Log: types.Encode(msg)}
}

//externalRequestID 链外 coordinator 的请求 id, 非零的正数
func externalRequestID(gameID string, nonce int64) int64 {
	h := common.Sha3([]byte(gameID), common.Int64ToBytes(nonce))
	id := int64(binary.BigEndian.Uint64(h[:8]) >> 1)
	if id == 0 {
		id = 1
	}
	return id
}

func (a *action) create(create *hty.HotCreate) (*types.Receipt, error) {
	cfg := a.h.hotConfig()
	game := &hty.HotGame{
		GameId:               a.txhash,
		Creator:              a.fromaddr,
		Address:              address.ExecAddress(hty.GameExecName(a.txhash)),
		EntranceFee:          create.EntranceFee,
		Interval:             create.Interval,
		KeyHash:              create.KeyHash,
		SubscriptionId:       create.SubscriptionId,
		CallbackGasLimit:     create.CallbackGasLimit,
		RequestConfirmations: create.RequestConfirmations,
		NumWords:             create.NumWords,
		State:                hty.HotStateOpen,
		LastTimeStamp:        a.blocktime,
		Round:                1,
		CreateHeight:         a.height,
	}
	if game.KeyHash == "" {
		game.KeyHash = cfg.KeyHash
	}
	if game.CallbackGasLimit == 0 {
		game.CallbackGasLimit = cfg.CallbackGasLimit
	}
	if game.RequestConfirmations == 0 {
		game.RequestConfirmations = cfg.RequestConfirmations
	}
	if game.NumWords == 0 {
		game.NumWords = cfg.NumWords
	}
	if !types.CheckAmount(game.EntranceFee) {
		return nil, errors.Wrapf(hty.ErrHotParam, "entranceFee %d", game.EntranceFee)
	}
	if game.Interval <= 0 {
		return nil, errors.Wrapf(hty.ErrHotParam, "interval %d", game.Interval)
	}
	if game.NumWords < 1 || game.RequestConfirmations < 0 || game.CallbackGasLimit < 0 {
		return nil, errors.Wrapf(hty.ErrHotParam, "numWords %d confirmations %d gasLimit %d",
			game.NumWords, game.RequestConfirmations, game.CallbackGasLimit)
	}
	keyHash, err := common.FromHex(game.KeyHash)
	if err != nil || len(keyHash) != 32 {
		return nil, errors.Wrapf(hty.ErrHotParam, "keyHash %s", game.KeyHash)
	}
	vrfAddr := address.ExecAddress(vty.VrfX)
	coordinator := address.FormatAddr(create.Coordinator)
	switch coordinator {
	case "", vrfAddr:
		game.Coordinator = vrfAddr
	default:
		if err := address.CheckAddress(coordinator); err != nil {
			return nil, errors.Wrapf(hty.ErrHotParam, "coordinator %s", create.Coordinator)
		}
		game.Coordinator = coordinator
		game.External = true
	}
	if _, err := a.db.Get(calcGameKey(game.GameId)); err == nil {
		return nil, errors.Wrapf(hty.ErrHotParam, "game %s exists", game.GameId)
	}

	kvs := []*types.KeyValue{
		a.saveGame(game),
		a.save(calcGameAddrKey(game.Address), &types.ReqString{Data: game.GameId}),
	}
	log := hotLog(hty.TyLogHotCreate, &hty.ReceiptHotCreate{
		GameId:      game.GameId,
		Creator:     game.Creator,
		Address:     game.Address,
		Coordinator: game.Coordinator,
	})
	hlog.Info("create", "gameId", game.GameId, "creator", game.Creator, "fee", game.EntranceFee,
		"interval", game.Interval, "coordinator", game.Coordinator)
	return types.NewReceipt(kvs, []*types.ReceiptLog{log}), nil
}

func (a *action) enter(enter *hty.HotEnter) (*types.Receipt, error) {
	game, err := getGame(a.db, enter.GameId)
	if err != nil {
		return nil, err
	}
	if game.State != hty.HotStateOpen {
		return nil, errors.Wrapf(hty.ErrHotNotOpen, "game %s state %s", game.GameId, hty.StateName(game.State))
	}
	if enter.Amount < game.EntranceFee {
		return nil, errors.Wrapf(hty.ErrHotNotEnoughETHEntered, "have %d want %d", enter.Amount, game.EntranceFee)
	}
	if enter.Outcome != hty.HotHeads && enter.Outcome != hty.HotTails {
		return nil, errors.Wrapf(hty.ErrHotOutcome, "outcome %d", enter.Outcome)
	}
	receipt, err := a.coinsAccount.Transfer(a.fromaddr, game.Address, enter.Amount)
	if err != nil {
		return nil, err
	}
	game.Entries = append(game.Entries, &hty.HotEntry{
		Participant: a.fromaddr,
		Outcome:     enter.Outcome,
		Amount:      enter.Amount,
	})
	kv := a.saveGame(game)
	log := hotLog(hty.TyLogHotEnter, &hty.ReceiptHotEnter{
		GameId:      game.GameId,
		Round:       game.Round,
		Participant: a.fromaddr,
		Outcome:     enter.Outcome,
		Amount:      enter.Amount,
		Index:       int64(len(game.Entries) - 1),
	})
	enterMeter.Mark(1)
	hlog.Debug("enter", "gameId", game.GameId, "round", game.Round, "player", a.fromaddr,
		"outcome", hty.OutcomeName(enter.Outcome), "amount", enter.Amount)
	return types.AppendReceipt(receipt, types.NewReceipt([]*types.KeyValue{kv}, []*types.ReceiptLog{log})), nil
}

//checkUpkeep 是否可以开奖, CheckUpkeep 查询和 PerformUpkeep 使用同一个判断
func checkUpkeep(game *hty.HotGame, balance, now int64) (bool, *hty.ReplyCheckUpkeep) {
	reply := &hty.ReplyCheckUpkeep{
		IsOpen:      game.State == hty.HotStateOpen,
		TimePassed:  now-game.LastTimeStamp >= game.Interval,
		HasPlayers:  len(game.Entries) > 0,
		HasBalance:  balance > 0,
		Balance:     balance,
		Now:         now,
		PerformData: []byte(game.GameId),
	}
	reply.UpkeepNeeded = reply.IsOpen && reply.TimePassed && reply.HasPlayers && reply.HasBalance
	return reply.UpkeepNeeded, reply
}

func (a *action) performUpkeep(perform *hty.HotPerformUpkeep) (*types.Receipt, error) {
	game, err := getGame(a.db, perform.GameId)
	if err != nil {
		return nil, err
	}
	balance := a.coinsAccount.LoadAccount(game.Address).GetBalance()
	if ok, reply := checkUpkeep(game, balance, a.blocktime); !ok {
		return nil, errors.Wrapf(hty.ErrHotUpkeepNotNeeded, "balance %d players %d state %s timePassed %v",
			balance, len(game.Entries), hty.StateName(game.State), reply.TimePassed)
	}
	game.State = hty.HotStateDrawing

	receipt := &types.Receipt{Ty: types.ExecOk}
	var requestID int64
	if game.External {
		game.Nonce++
		requestID = externalRequestID(game.GameId, game.Nonce)
	} else {
		coordinator, err := a.loadCoordinator()
		if err != nil {
			return nil, err
		}
		id, r, err := coordinator.RequestRandomWords(&vty.ReqRandomWords{
			KeyHash:          game.KeyHash,
			SubId:            game.SubscriptionId,
			Confirmations:    game.RequestConfirmations,
			CallbackGasLimit: game.CallbackGasLimit,
			NumWords:         game.NumWords,
			Consumer:         game.Address,
			Execer:           hty.HotX,
		})
		if err != nil {
			return nil, err
		}
		requestID = id
		receipt = types.AppendReceipt(receipt, r)
	}
	game.PendingRequestId = requestID
	kv := a.saveGame(game)
	log := hotLog(hty.TyLogHotDrawStarted, &hty.ReceiptHotDrawStarted{
		GameId:    game.GameId,
		Round:     game.Round,
		RequestId: requestID,
	})
	drawMeter.Mark(1)
	hlog.Info("performUpkeep", "gameId", game.GameId, "round", game.Round, "requestId", requestID, "pool", gamePool(game))
	return types.AppendReceipt(receipt, types.NewReceipt([]*types.KeyValue{kv}, []*types.ReceiptLog{log})), nil
}

func (a *action) loadCoordinator() (vty.Coordinator, error) {
	driver, err := a.h.GetAPI().LoadDriver(vty.VrfX)
	if err != nil {
		return nil, err
	}
	coordinator, ok := driver.(vty.Coordinator)
	if !ok {
		return nil, errors.Wrap(types.ErrActionNotSupport, "coordinator")
	}
	return coordinator, nil
}

//fulfill 两种回调的公共部分: 检查调用者和请求 id, 开奖, 转账, 开始下一轮
func (a *action) fulfill(caller, gameID string, requestID int64, words [][]byte) (*types.Receipt, error) {
	game, err := getGame(a.db, gameID)
	if err != nil {
		return nil, err
	}
	if address.FormatAddr(caller) != game.Coordinator {
		return nil, errors.Wrapf(hty.ErrHotUnauthorizedCaller, "caller %s", caller)
	}
	if game.PendingRequestId == 0 || game.PendingRequestId != requestID {
		return nil, errors.Wrapf(hty.ErrHotUnknownRequest, "requestId %d pending %d", requestID, game.PendingRequestId)
	}
	if len(words) == 0 {
		return nil, errors.Wrap(hty.ErrHotParam, "no random words")
	}

	res := resolve(game.Entries, gamePool(game), words[0])
	receipt := &types.Receipt{Ty: types.ExecOk}
	for i, winner := range res.winners {
		r, err := a.coinsAccount.Transfer(game.Address, winner, res.payouts[i])
		if err != nil {
			hlog.Error("fulfill payout", "gameId", game.GameId, "winner", winner, "amount", res.payouts[i], "err", err)
			return nil, errors.Wrapf(hty.ErrHotPayoutFailed, "pay %d to %s: %v", res.payouts[i], winner, err)
		}
		receipt = types.AppendReceipt(receipt, r)
	}

	result := &hty.ReceiptHotResult{
		GameId:     game.GameId,
		Round:      game.Round,
		RequestId:  requestID,
		Outcome:    res.outcome,
		RandomWord: words[0],
		Winners:    res.winners,
		Payouts:    res.payouts,
		Pool:       res.pool,
		Time:       a.blocktime,
	}
	game.RecentOutcome = res.outcome
	game.RecentRandomWord = words[0]
	game.HasResult = true
	if len(res.winners) == 0 {
		game.Rollover = res.pool
		game.RecentWinner = ""
		game.RecentWinnerShare = 0
	} else {
		game.Rollover = 0
		game.RecentWinner = res.winners[0]
		game.RecentWinnerShare = winnerShare(game.EntranceFee, res.pool, res.winningStake)
	}
	result.Rollover = game.Rollover
	game.Entries = nil
	game.State = hty.HotStateOpen
	game.LastTimeStamp = a.blocktime
	game.PendingRequestId = 0
	game.Round++

	kv := a.saveGame(game)
	log := hotLog(hty.TyLogHotResult, result)
	resultMeter.Mark(1)
	hlog.Info("fulfill", "gameId", game.GameId, "round", result.Round, "outcome", hty.OutcomeName(res.outcome),
		"winners", len(res.winners), "pool", res.pool, "rollover", game.Rollover)
	return types.AppendReceipt(receipt, types.NewReceipt([]*types.KeyValue{kv}, []*types.ReceiptLog{log})), nil
}
