// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package executor 执行区块中的交易
//
// 区块里面的交易串行执行, 每个交易在 StateDB 的内存事务里面运行,
// 执行失败的交易回滚全部修改, 只留下一个错误回执。
package executor

import (
	"bytes"
	"fmt"
	"sync"
	"time"

	"github.com/33cn/hot/common"
	dbm "github.com/33cn/hot/common/db"
	"github.com/33cn/hot/pluginmgr"
	drivers "github.com/33cn/hot/system/dapp"
	cty "github.com/33cn/hot/system/dapp/coins/types"
	"github.com/33cn/hot/types"
	log "github.com/inconshreveable/log15"
	"github.com/pkg/errors"
	"github.com/rcrowley/go-metrics"
)

var elog = log.New("module", "execs")

var (
	txOkCounter   = metrics.GetOrRegisterCounter("hot.executor.tx.ok", nil)
	txErrCounter  = metrics.GetOrRegisterCounter("hot.executor.tx.err", nil)
	blockTimer    = metrics.GetOrRegisterTimer("hot.executor.block", nil)
	lastHeaderKey = []byte("LastHeader")
)

//Executor 执行器
type Executor struct {
	mu      sync.RWMutex
	cfg     *types.Config
	statedb dbm.DB
	localdb dbm.DB
	last    *types.Header
	clock   func() int64
}

// New new executor, 状态数据库和本地数据库可以是同一个
func New(cfg *types.Config, statedb, localdb dbm.DB) (*Executor, error) {
	pluginmgr.InitExec(cfg)
	exec := &Executor{
		cfg:     cfg,
		statedb: statedb,
		localdb: localdb,
		clock:   func() int64 { return time.Now().Unix() },
	}
	value, err := localdb.Get(lastHeaderKey)
	if err != nil && err != dbm.ErrNotFoundInDb {
		return nil, err
	}
	if len(value) > 0 {
		var header types.Header
		if err := types.Decode(value, &header); err != nil {
			return nil, errors.Wrap(err, "decode last header")
		}
		exec.last = &header
	}
	return exec, nil
}

//SetClock 设置时钟, 查询使用的区块时间由时钟提供
func (exec *Executor) SetClock(clock func() int64) {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	exec.clock = clock
}

//Now 下一个区块的时间, 不会早于最后一个区块
func (exec *Executor) Now() int64 {
	exec.mu.RLock()
	defer exec.mu.RUnlock()
	return exec.nextBlockTime()
}

func (exec *Executor) nextBlockTime() int64 {
	now := exec.clock()
	if exec.last != nil && now < exec.last.BlockTime {
		return exec.last.BlockTime
	}
	return now
}

//GetConfig 配置
func (exec *Executor) GetConfig() *types.Config {
	return exec.cfg
}

//LastHeader 最后一个区块头, 没有创世时返回 nil
func (exec *Executor) LastHeader() *types.Header {
	exec.mu.RLock()
	defer exec.mu.RUnlock()
	if exec.last == nil {
		return nil
	}
	return types.Clone(exec.last).(*types.Header)
}

//Genesis 执行创世区块, 已经存在时直接返回
func (exec *Executor) Genesis() error {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	if exec.last != nil {
		return nil
	}
	block := &types.Block{Height: 0}
	if exec.cfg.Genesis != nil {
		block.BlockTime = exec.cfg.Genesis.GenesisBlockTime
		for _, acc := range exec.cfg.Genesis.Accounts {
			tx, err := cty.CreateGenesis(acc.Addr, acc.Amount)
			if err != nil {
				return err
			}
			block.Txs = append(block.Txs, tx)
		}
	}
	detail, err := exec.execBlock(block)
	if err != nil {
		return err
	}
	for i, r := range detail.Receipts {
		if r.Ty != types.ExecOk {
			return errors.Wrapf(types.ErrGenesis, "genesis tx %d: %s", i, string(r.Logs[0].Log))
		}
	}
	return nil
}

//ExecBlock 执行区块, 返回区块以及每个交易的回执
func (exec *Executor) ExecBlock(block *types.Block) (*types.BlockDetail, error) {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	if exec.last == nil {
		return nil, errors.Wrap(types.ErrBlockHeight, "genesis not executed")
	}
	if block.Height != exec.last.Height+1 {
		return nil, errors.Wrapf(types.ErrBlockHeight, "expect %d got %d", exec.last.Height+1, block.Height)
	}
	if block.BlockTime < exec.last.BlockTime {
		return nil, errors.Wrapf(types.ErrBlockTime, "block time %d before %d", block.BlockTime, exec.last.BlockTime)
	}
	if len(block.Txs) == 0 {
		return nil, types.ErrEmptyTx
	}
	if len(block.Txs) > types.MaxTxsPerBlock {
		return nil, types.ErrTooManyTxs
	}
	return exec.execBlock(block)
}

func (exec *Executor) execBlock(block *types.Block) (*types.BlockDetail, error) {
	beg := time.Now()
	defer blockTimer.UpdateSince(beg)

	if exec.last != nil {
		block.ParentHash = exec.last.Hash
	}
	block.TxHash = calcTxHash(block.Txs)
	state := NewStateDB(exec.statedb)
	local := NewLocalDB(exec.localdb, false)
	detail := &types.BlockDetail{Block: block}
	seen := make(map[string]bool)
	for i, tx := range block.Txs {
		receipt, err := exec.execTx(state, local, block, tx, i, seen)
		if err != nil {
			state.Discard()
			local.Discard()
			return nil, err
		}
		detail.Receipts = append(detail.Receipts, receipt)
	}
	header := &types.Header{
		Height:     block.Height,
		BlockTime:  block.BlockTime,
		ParentHash: block.ParentHash,
		Hash:       blockHash(block),
		TxCount:    int64(len(block.Txs)),
	}
	if err := local.Set(calcBlockKey(block.Height), types.Encode(detail)); err != nil {
		return nil, err
	}
	if err := local.Set(lastHeaderKey, types.Encode(header)); err != nil {
		return nil, err
	}
	if err := state.Flush(); err != nil {
		return nil, errors.Wrap(err, "flush state")
	}
	if err := local.Flush(); err != nil {
		return nil, errors.Wrap(err, "flush local")
	}
	exec.last = header
	elog.Info("ExecBlock", "height", block.Height, "txs", len(block.Txs), "cost", time.Since(beg))
	return detail, nil
}

// 返回的错误只有数据库错误, 交易本身的错误记录在回执里面
func (exec *Executor) execTx(state *StateDB, local *LocalDB, block *types.Block, tx *types.Transaction, index int, seen map[string]bool) (*types.ReceiptData, error) {
	hash := tx.Hash()
	if block.Height > 0 {
		if err := exec.checkTx(local, tx, hash, seen); err != nil {
			txErrCounter.Inc(1)
			return types.NewErrReceipt(err), nil
		}
	}
	seen[string(hash)] = true
	env := newExecEnv(exec.cfg, state, local, block.Height, block.BlockTime)
	driver, err := env.LoadDriver(string(tx.Execer))
	if err != nil {
		txErrCounter.Inc(1)
		return types.NewErrReceipt(err), nil
	}
	if block.Height > 0 {
		if err := driver.CheckTx(tx, index); err != nil {
			txErrCounter.Inc(1)
			return types.NewErrReceipt(err), nil
		}
	}
	state.Begin()
	receipt, err := driver.Exec(tx, index)
	if err == nil {
		err = env.applyKV(receipt)
	}
	if err != nil {
		state.Rollback()
		txErrCounter.Inc(1)
		elog.Debug("execTx", "hash", tx.HashHex(), "execer", string(tx.Execer), "err", err)
		rdata := types.NewErrReceipt(err)
		return rdata, exec.saveTxResult(local, block, tx, hash, index, rdata)
	}
	if err := state.Commit(); err != nil {
		return nil, err
	}
	txOkCounter.Inc(1)
	rdata := &types.ReceiptData{Ty: receipt.Ty, Logs: receipt.Logs}
	local.Begin()
	set, err := driver.ExecLocal(tx, rdata, index)
	if err != nil {
		//本地索引失败不影响交易的执行结果
		elog.Error("execTx ExecLocal", "hash", tx.HashHex(), "err", err)
		local.Rollback()
	} else {
		for _, kv := range set.KV {
			if err := local.Set(kv.Key, kv.Value); err != nil {
				return nil, err
			}
		}
		if err := local.Commit(); err != nil {
			return nil, err
		}
	}
	return rdata, exec.saveTxResult(local, block, tx, hash, index, rdata)
}

func (exec *Executor) checkTx(local *LocalDB, tx *types.Transaction, hash []byte, seen map[string]bool) error {
	if err := tx.Check(); err != nil {
		return err
	}
	if seen[string(hash)] {
		return types.ErrTxExist
	}
	_, err := local.Get(calcTxKey(hash))
	if err == nil {
		return types.ErrTxExist
	}
	if err != types.ErrNotFound {
		return err
	}
	return nil
}

func (exec *Executor) saveTxResult(local *LocalDB, block *types.Block, tx *types.Transaction, hash []byte, index int, rdata *types.ReceiptData) error {
	result := &types.TxResult{
		Height:      block.Height,
		Index:       int32(index),
		Tx:          tx,
		Receiptdate: rdata,
		Blocktime:   block.BlockTime,
	}
	return local.Set(calcTxKey(hash), types.Encode(result))
}

//Query 在已经提交的状态上查询, 区块高度和时间取下一个区块的值
func (exec *Executor) Query(execer, funcName string, param types.Message) (types.Message, error) {
	exec.mu.RLock()
	defer exec.mu.RUnlock()
	var height int64
	if exec.last != nil {
		height = exec.last.Height + 1
	}
	env := newExecEnv(exec.cfg, NewStateDB(exec.statedb), NewLocalDB(exec.localdb, true), height, exec.nextBlockTime())
	driver, err := env.LoadDriver(execer)
	if err != nil {
		return nil, err
	}
	return driver.Query(funcName, types.Encode(param))
}

//GetTxResult 交易的执行结果
func (exec *Executor) GetTxResult(hash []byte) (*types.TxResult, error) {
	value, err := exec.localdb.Get(calcTxKey(hash))
	if err != nil {
		if err == dbm.ErrNotFoundInDb {
			return nil, types.ErrNotFound
		}
		return nil, err
	}
	var result types.TxResult
	if err := types.Decode(value, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

//GetBlock 读取区块
func (exec *Executor) GetBlock(height int64) (*types.BlockDetail, error) {
	value, err := exec.localdb.Get(calcBlockKey(height))
	if err != nil {
		if err == dbm.ErrNotFoundInDb {
			return nil, types.ErrNotFound
		}
		return nil, err
	}
	var detail types.BlockDetail
	if err := types.Decode(value, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

//GetBlockHash 已经提交的区块的哈希
func (exec *Executor) GetBlockHash(height int64) ([]byte, error) {
	exec.mu.RLock()
	defer exec.mu.RUnlock()
	if exec.last == nil || height < 0 || height > exec.last.Height {
		return nil, errors.Wrapf(types.ErrBlockHeight, "block %d not committed", height)
	}
	return loadBlockHash(NewLocalDB(exec.localdb, true), height)
}

func loadBlockHash(local *LocalDB, height int64) ([]byte, error) {
	value, err := local.Get(calcBlockKey(height))
	if err != nil {
		return nil, errors.Wrapf(err, "block %d", height)
	}
	var detail types.BlockDetail
	if err := types.Decode(value, &detail); err != nil {
		return nil, err
	}
	return blockHash(detail.Block), nil
}

func calcTxKey(hash []byte) []byte {
	return append([]byte("TX:"), hash...)
}

func calcBlockKey(height int64) []byte {
	return []byte(fmt.Sprintf("Block:%012d", height))
}

func calcTxHash(txs []*types.Transaction) []byte {
	var buf bytes.Buffer
	for _, tx := range txs {
		buf.Write(tx.Hash())
	}
	return common.Sha256(buf.Bytes())
}

func blockHash(block *types.Block) []byte {
	head := &types.Block{
		Version:    block.Version,
		ParentHash: block.ParentHash,
		TxHash:     block.TxHash,
		StateHash:  block.StateHash,
		Height:     block.Height,
		BlockTime:  block.BlockTime,
	}
	return common.Sha256(types.Encode(head))
}

//execEnv 一个交易的执行环境, 同一个交易里面加载的执行器共享状态数据库
type execEnv struct {
	cfg       *types.Config
	state     *StateDB
	local     *LocalDB
	height    int64
	blocktime int64
	prefixes  [][]byte
}

func newExecEnv(cfg *types.Config, state *StateDB, local *LocalDB, height, blocktime int64) *execEnv {
	return &execEnv{
		cfg:       cfg,
		state:     state,
		local:     local,
		height:    height,
		blocktime: blocktime,
		prefixes:  [][]byte{[]byte("mavl-" + types.CoinsX + "-")},
	}
}

func (e *execEnv) GetConfig() *types.Config {
	return e.cfg
}

//GetBlockHash 当前区块执行时只能读到之前的区块
func (e *execEnv) GetBlockHash(height int64) ([]byte, error) {
	if height < 0 || height >= e.height {
		return nil, errors.Wrapf(types.ErrBlockHeight, "block %d not committed at %d", height, e.height)
	}
	return loadBlockHash(e.local, height)
}

func (e *execEnv) LoadDriver(name string) (drivers.Driver, error) {
	driver, err := drivers.LoadDriver(name)
	if err != nil {
		return nil, err
	}
	driver.SetStateDB(e.state)
	driver.SetLocalDB(e.local)
	driver.SetEnv(e.height, e.blocktime)
	driver.SetAPI(e)
	e.allow(name)
	return driver, nil
}

func (e *execEnv) allow(name string) {
	prefix := []byte("mavl-" + name + "-")
	for _, p := range e.prefixes {
		if bytes.Equal(p, prefix) {
			return
		}
	}
	e.prefixes = append(e.prefixes, prefix)
}

//applyKV 回执中的 kv 只能写入本交易加载过的执行器的前缀
func (e *execEnv) applyKV(receipt *types.Receipt) error {
	if receipt == nil {
		return types.ErrMethodReturnType
	}
	for _, kv := range receipt.KV {
		if !e.isAllowKey(kv.Key) {
			return errors.Wrapf(types.ErrInvalidParam, "key %s not allowed", string(kv.Key))
		}
		if err := e.state.Set(kv.Key, kv.Value); err != nil {
			return err
		}
	}
	return nil
}

func (e *execEnv) isAllowKey(key []byte) bool {
	for _, p := range e.prefixes {
		if bytes.HasPrefix(key, p) {
			return true
		}
	}
	return false
}
