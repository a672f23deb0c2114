// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package client 单机节点, 每次发送交易打包一个区块
package client

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/33cn/hot/common"
	"github.com/33cn/hot/common/crypto"
	dbm "github.com/33cn/hot/common/db"
	"github.com/33cn/hot/common/vrf/p256"
	"github.com/33cn/hot/executor"
	cty "github.com/33cn/hot/system/dapp/coins/types"
	"github.com/33cn/hot/types"
	log "github.com/inconshreveable/log15"
	pkgerr "github.com/pkg/errors"
)

var clog = log.New("module", "client")

//VrfKeyFile 数据目录下保存 vrf 私钥的文件
const VrfKeyFile = "vrf.key"

//Node 节点
type Node struct {
	mu   sync.Mutex
	cfg  *types.Config
	exec *executor.Executor
	dbs  []dbm.DB
}

//New 按照配置打开数据库
func New(cfg *types.Config) (*Node, error) {
	state, err := dbm.NewDB(cfg.Store.Name, cfg.Store.Driver, cfg.Store.DbPath, cfg.Store.DbCache)
	if err != nil {
		return nil, pkgerr.Wrap(err, "open state db")
	}
	local, err := dbm.NewDB(cfg.LocalStore.Name, cfg.LocalStore.Driver, cfg.LocalStore.DbPath, cfg.LocalStore.DbCache)
	if err != nil {
		state.Close()
		return nil, pkgerr.Wrap(err, "open local db")
	}
	node, err := NewWithDB(cfg, state, local)
	if err != nil {
		state.Close()
		local.Close()
		return nil, err
	}
	node.dbs = []dbm.DB{state, local}
	return node, nil
}

//NewWithDB 使用指定的数据库, 执行创世区块
func NewWithDB(cfg *types.Config, state, local dbm.DB) (*Node, error) {
	exec, err := executor.New(cfg, state, local)
	if err != nil {
		return nil, err
	}
	if err := exec.Genesis(); err != nil {
		return nil, err
	}
	return &Node{cfg: cfg, exec: exec}, nil
}

//GetConfig 配置
func (n *Node) GetConfig() *types.Config {
	return n.cfg
}

//Executor 执行器
func (n *Node) Executor() *executor.Executor {
	return n.exec
}

//SetClock 设置出块时钟
func (n *Node) SetClock(clock func() int64) {
	n.exec.SetClock(clock)
}

//Close 关闭数据库
func (n *Node) Close() {
	for _, db := range n.dbs {
		db.Close()
	}
}

//SendTxs 把交易打包成下一个区块执行
func (n *Node) SendTxs(txs []*types.Transaction) (*types.BlockDetail, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	last := n.exec.LastHeader()
	if last == nil {
		return nil, types.ErrBlockHeight
	}
	block := &types.Block{
		Height:    last.Height + 1,
		BlockTime: n.exec.Now(),
		Txs:       txs,
	}
	return n.exec.ExecBlock(block)
}

//SendTx 发送一个交易, 执行失败时返回回执中的错误
func (n *Node) SendTx(tx *types.Transaction) (*types.TxResult, error) {
	detail, err := n.SendTxs([]*types.Transaction{tx})
	if err != nil {
		return nil, err
	}
	result := &types.TxResult{
		Height:      detail.Block.Height,
		Tx:          tx,
		Receiptdate: detail.Receipts[0],
		Blocktime:   detail.Block.BlockTime,
	}
	return result, ReceiptError(result.Receiptdate)
}

//ReceiptError 失败回执中的错误
func ReceiptError(r *types.ReceiptData) error {
	if r == nil || r.Ty == types.ExecOk {
		return nil
	}
	for _, l := range r.Logs {
		if l.Ty == types.TyLogErr {
			return errors.New(string(l.Log))
		}
	}
	return errors.New("ErrExecFailed")
}

//Query 查询执行器
func (n *Node) Query(execer, funcName string, param types.Message) (types.Message, error) {
	return n.exec.Query(execer, funcName, param)
}

//GetBalance 原生币余额
func (n *Node) GetBalance(addr string) (int64, error) {
	reply, err := n.Query(types.CoinsX, "GetBalance", &types.ReqBalance{Addresses: []string{addr}})
	if err != nil {
		return 0, err
	}
	return reply.(*types.Accounts).Acc[0].Balance, nil
}

//Transfer 原生币转账
func (n *Node) Transfer(priv crypto.PrivKey, to string, amount int64) (*types.TxResult, error) {
	tx, err := cty.CreateTransfer(to, amount, "")
	if err != nil {
		return nil, err
	}
	tx.Sign(priv)
	return n.SendTx(tx)
}

//LoadVrfKey 配置中没有 vrf 私钥时, 读取或者生成数据目录下的私钥文件
func LoadVrfKey(cfg *types.Config, datadir string) error {
	if cfg.Vrf.PrivateKey != "" {
		return nil
	}
	file := filepath.Join(datadir, VrfKeyFile)
	data, err := os.ReadFile(file)
	if err == nil {
		cfg.Vrf.PrivateKey = strings.TrimSpace(string(data))
		return nil
	}
	if !os.IsNotExist(err) {
		return err
	}
	key, _ := p256.GenerateKey()
	if key == nil {
		return p256.ErrInvalidKey
	}
	cfg.Vrf.PrivateKey = common.ToHex(key.(*p256.PrivateKey).Bytes())
	if err := os.MkdirAll(datadir, 0750); err != nil {
		return err
	}
	clog.Info("LoadVrfKey generate new vrf key", "file", file)
	return os.WriteFile(file, []byte(cfg.Vrf.PrivateKey), 0600)
}
