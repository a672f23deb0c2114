// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package testnode 内存数据库上的测试节点, 区块时间由测试控制
package testnode

import (
	"sync"

	"github.com/33cn/hot/client"
	"github.com/33cn/hot/common"
	"github.com/33cn/hot/common/crypto"
	dbm "github.com/33cn/hot/common/db"
	"github.com/33cn/hot/common/log"
	"github.com/33cn/hot/common/vrf/p256"
	_ "github.com/33cn/hot/plugin" //register plugin
	_ "github.com/33cn/hot/system" //register system
	"github.com/33cn/hot/types"
	"github.com/inconshreveable/log15"
)

var chainlog = log15.New("module", "testnode")

//GenesisAmount 每个测试账户的创世余额
const GenesisAmount = 1000 * types.Coin

//AccountNum 测试账户的数量
const AccountNum = 8

//StartTime 创世区块的时间
const StartTime int64 = 1514533394

func init() {
	log.SetLogLevel("error")
}

//HotMock 测试节点
type HotMock struct {
	mu    sync.Mutex
	node  *client.Node
	cfg   *types.Config
	clock int64
	privs []crypto.PrivKey
}

//GetDefaultConfig 默认配置, vrf 私钥随机生成
func GetDefaultConfig() *types.Config {
	cfg := types.MustInitCfgString(types.DefaultConfig)
	key, _ := p256.GenerateKey()
	cfg.Vrf.PrivateKey = common.ToHex(key.(*p256.PrivateKey).Bytes())
	return cfg
}

//New 默认配置的节点
func New() *HotMock {
	return NewWithConfig(GetDefaultConfig())
}

//NewWithConfig 生成测试账户并且执行创世区块
func NewWithConfig(cfg *types.Config) *HotMock {
	mock := &HotMock{cfg: cfg, clock: StartTime}
	cfg.Genesis.GenesisBlockTime = StartTime
	for i := 0; i < AccountNum; i++ {
		priv, err := types.GenKey()
		if err != nil {
			panic(err)
		}
		mock.privs = append(mock.privs, priv)
		cfg.Genesis.Accounts = append(cfg.Genesis.Accounts, &types.GenesisAccount{
			Addr:   types.PrivKeyToAddr(priv),
			Amount: GenesisAmount,
		})
	}
	state, err := dbm.NewDB("state", dbm.MemDBBackendStr, "", 0)
	if err != nil {
		panic(err)
	}
	local, err := dbm.NewDB("local", dbm.MemDBBackendStr, "", 0)
	if err != nil {
		panic(err)
	}
	node, err := client.NewWithDB(cfg, state, local)
	if err != nil {
		panic(err)
	}
	node.SetClock(mock.Now)
	mock.node = node
	chainlog.Debug("NewWithConfig", "accounts", AccountNum)
	return mock
}

//GetCfg 配置
func (mock *HotMock) GetCfg() *types.Config {
	return mock.cfg
}

//GetNode 节点
func (mock *HotMock) GetNode() *client.Node {
	return mock.node
}

//Close 关闭
func (mock *HotMock) Close() {
	mock.node.Close()
}

//Now 当前时间, 下一个区块使用这个时间
func (mock *HotMock) Now() int64 {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return mock.clock
}

//Advance 时间前进 seconds 秒
func (mock *HotMock) Advance(seconds int64) {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	mock.clock += seconds
}

//GetGenesisKey 第 i 个有创世余额的账户
func (mock *HotMock) GetGenesisKey(i int) crypto.PrivKey {
	return mock.privs[i]
}

//GetGenesisAddr 第 i 个有创世余额的账户地址
func (mock *HotMock) GetGenesisAddr(i int) string {
	return types.PrivKeyToAddr(mock.privs[i])
}

//Genaddress 没有余额的新账户
func (mock *HotMock) Genaddress() (string, crypto.PrivKey) {
	priv, err := types.GenKey()
	if err != nil {
		panic(err)
	}
	return types.PrivKeyToAddr(priv), priv
}

//SendTx 签名并且打包一个区块, 交易失败时返回回执中的错误
func (mock *HotMock) SendTx(priv crypto.PrivKey, tx *types.Transaction) (*types.TxResult, error) {
	tx.Sign(priv)
	return mock.node.SendTx(tx)
}

//SendTxs 已经签名的交易打包成一个区块
func (mock *HotMock) SendTxs(txs ...*types.Transaction) (*types.BlockDetail, error) {
	return mock.node.SendTxs(txs)
}

//CreateBlock 区块不能为空, 用最后一个测试账户向新地址转账出一个块
func (mock *HotMock) CreateBlock() error {
	to, _ := mock.Genaddress()
	return mock.Transfer(mock.privs[AccountNum-1], to, 1)
}

//Query 查询
func (mock *HotMock) Query(execer, funcName string, param types.Message) (types.Message, error) {
	return mock.node.Query(execer, funcName, param)
}

//GetBalance 余额
func (mock *HotMock) GetBalance(addr string) int64 {
	balance, err := mock.node.GetBalance(addr)
	if err != nil {
		panic(err)
	}
	return balance
}

//Transfer 转账
func (mock *HotMock) Transfer(priv crypto.PrivKey, to string, amount int64) error {
	_, err := mock.node.Transfer(priv, to, amount)
	return err
}

//LastHeight 最新的区块高度
func (mock *HotMock) LastHeight() int64 {
	return mock.node.Executor().LastHeader().Height
}
