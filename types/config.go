// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

//Config 配置
type Config struct {
	Title      string     `toml:"title"`
	BlockTime  int64      `toml:"blockTime"`
	Log        *Log       `toml:"log"`
	Store      *Store     `toml:"store"`
	LocalStore *Store     `toml:"localStore"`
	Genesis    *Genesis   `toml:"genesis"`
	Vrf        *VrfConfig `toml:"vrf"`
	Hot        *HotConfig `toml:"hot"`
	Metrics    *Metrics   `toml:"metrics"`
}

//Log 日志配置
type Log struct {
	// 日志级别，支持debug(dbug)/info/warn/error(eror)/crit
	Loglevel        string `toml:"loglevel"`
	LogConsoleLevel string `toml:"logConsoleLevel"`
	// 日志文件名，可带目录，所有生成的日志文件都放到此目录下
	LogFile string `toml:"logFile"`
	// 单个日志文件的最大值（单位：兆）
	MaxFileSize uint32 `toml:"maxFileSize"`
	// 最多保存的历史日志文件个数
	MaxBackups uint32 `toml:"maxBackups"`
	// 最多保存的历史日志消息（单位：天）
	MaxAge uint32 `toml:"maxAge"`
	// 日志文件名是否使用本地事件（否则使用UTC时间）
	LocalTime bool `toml:"localTime"`
	// 历史日志文件是否压缩（压缩格式为gz）
	Compress bool `toml:"compress"`
	// 是否打印调用源文件和行号
	CallerFile bool `toml:"callerFile"`
	// 是否打印调用方法
	CallerFunction bool `toml:"callerFunction"`
}

//Store 存储配置
type Store struct {
	Name    string `toml:"name"`
	Driver  string `toml:"driver"`
	DbPath  string `toml:"dbPath"`
	DbCache int32  `toml:"dbCache"`
}

//Genesis 创世配置
type Genesis struct {
	GenesisBlockTime int64             `toml:"genesisBlockTime"`
	Accounts         []*GenesisAccount `toml:"accounts"`
}

//GenesisAccount 创世账户
type GenesisAccount struct {
	Addr   string `toml:"addr"`
	Amount int64  `toml:"amount"`
}

//VrfConfig vrf coordinator 配置
type VrfConfig struct {
	// hex 格式的 p256 私钥, 为空时随机生成
	PrivateKey string `toml:"privateKey"`
	// 每个请求的固定费用, 最小单位
	BaseFee int64 `toml:"baseFee"`
	// 每单位 callbackGasLimit 的费用, 以 1e-18 coin 计
	GasPriceLink     int64 `toml:"gasPriceLink"`
	MinConfirmations int32 `toml:"minConfirmations"`
	MaxGasLimit      int64 `toml:"maxGasLimit"`
	MaxNumWords      int32 `toml:"maxNumWords"`
}

//HotConfig 创建游戏时的默认参数
type HotConfig struct {
	EntranceFee          int64  `toml:"entranceFee"`
	Interval             int64  `toml:"interval"`
	KeyHash              string `toml:"keyHash"`
	CallbackGasLimit     int64  `toml:"callbackGasLimit"`
	RequestConfirmations int32  `toml:"requestConfirmations"`
	NumWords             int32  `toml:"numWords"`
}

//Metrics 监控, DataEmitMode 支持 log 和 influxdb
type Metrics struct {
	EnableMetrics bool     `toml:"enableMetrics"`
	Duration      int64    `toml:"duration"`
	DataEmitMode  string   `toml:"dataEmitMode"`
	Influxdb      Influxdb `toml:"influxdb"`
}

//Influxdb DataEmitMode 为 influxdb 时的参数
type Influxdb struct {
	URL       string `toml:"url"`
	Database  string `toml:"database"`
	Username  string `toml:"username"`
	Password  string `toml:"password"`
	Namespace string `toml:"namespace"`
}

//DefaultConfig devnet 默认配置
var DefaultConfig = `
title="local"
blockTime=1

[log]
loglevel="info"
logConsoleLevel="error"
logFile="logs/hot.log"
maxFileSize=300
maxBackups=100
maxAge=28
localTime=true
compress=true
callerFile=false
callerFunction=false

[store]
name="state"
driver="leveldb"
dbPath="datadir"
dbCache=64

[localStore]
name="local"
driver="leveldb"
dbPath="datadir"
dbCache=64

[genesis]
genesisBlockTime=1514533394

[vrf]
privateKey=""
baseFee=25000000
gasPriceLink=1000000000
minConfirmations=1
maxGasLimit=2500000
maxNumWords=500

[hot]
entranceFee=1000000
interval=30
keyHash="0xd89b2bf150e3b9e13446986e571fb9cab24b13cea0a43ea20a6049a85cc807cc"
callbackGasLimit=500000
requestConfirmations=1
numWords=1

[metrics]
enableMetrics=false
duration=60
dataEmitMode="log"

[metrics.influxdb]
url="http://127.0.0.1:8086"
database="hot"
username=""
password=""
namespace="hot"
`

//InitCfg 读取配置文件, 未配置的部分使用默认值
func InitCfg(path string) (*Config, error) {
	cfg, err := defaultCfg()
	if err != nil {
		return nil, err
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, errors.Wrapf(ErrConfig, "decode %s: %v", path, err)
	}
	return cfg, cfg.check()
}

//InitCfgString 从字符串读取配置
func InitCfgString(s string) (*Config, error) {
	cfg, err := defaultCfg()
	if err != nil {
		return nil, err
	}
	if _, err := toml.Decode(s, cfg); err != nil {
		return nil, errors.Wrapf(ErrConfig, "decode: %v", err)
	}
	return cfg, cfg.check()
}

//MustInitCfgString panic when error
func MustInitCfgString(s string) *Config {
	cfg, err := InitCfgString(s)
	if err != nil {
		panic(err)
	}
	return cfg
}

func defaultCfg() (*Config, error) {
	cfg := &Config{}
	if _, err := toml.Decode(DefaultConfig, cfg); err != nil {
		return nil, errors.Wrapf(ErrConfig, "default: %v", err)
	}
	return cfg, nil
}

func (cfg *Config) check() error {
	if cfg.Vrf.MinConfirmations <= 0 || cfg.Vrf.MinConfirmations > MaxRequestConfirmations {
		return errors.Wrapf(ErrConfig, "vrf.minConfirmations %d", cfg.Vrf.MinConfirmations)
	}
	if cfg.Vrf.MaxNumWords <= 0 || cfg.Vrf.MaxNumWords > MaxNumWords {
		return errors.Wrapf(ErrConfig, "vrf.maxNumWords %d", cfg.Vrf.MaxNumWords)
	}
	if cfg.Vrf.BaseFee < 0 || cfg.Vrf.GasPriceLink < 0 {
		return errors.Wrap(ErrConfig, "vrf fee")
	}
	if cfg.BlockTime <= 0 {
		return errors.Wrapf(ErrConfig, "blockTime %d", cfg.BlockTime)
	}
	if cfg.Metrics != nil && cfg.Metrics.EnableMetrics {
		switch cfg.Metrics.DataEmitMode {
		case MetricsEmitLog, MetricsEmitInfluxdb:
		default:
			return errors.Wrapf(ErrConfig, "metrics.dataEmitMode %s", cfg.Metrics.DataEmitMode)
		}
	}
	for _, acc := range cfg.Genesis.Accounts {
		if !CheckAmount(acc.Amount) {
			return errors.Wrapf(ErrConfig, "genesis amount %d of %s", acc.Amount, acc.Addr)
		}
	}
	return nil
}

//metrics 的输出方式
const (
	MetricsEmitLog      = "log"
	MetricsEmitInfluxdb = "influxdb"
)

//vrf 请求的上限
const (
	MaxRequestConfirmations = 200
	MaxNumWords             = 500
)
