// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dapp

import (
	"sort"
	"sync"

	"github.com/33cn/hot/common/address"
	"github.com/33cn/hot/types"
	log "github.com/inconshreveable/log15"
)

var elog = log.New("module", "execs")

// DriverCreate defines a drivercreate function
type DriverCreate func() Driver

var (
	mu                 sync.RWMutex
	registedExecDriver = make(map[string]DriverCreate)
	execAddressNameMap = make(map[string]string)
)

// Register register driver
func Register(name string, create DriverCreate) {
	mu.Lock()
	defer mu.Unlock()
	if create == nil {
		panic("Execute: Register driver is nil")
	}
	if _, dup := registedExecDriver[name]; dup {
		panic("Execute: Register called twice for driver " + name)
	}
	registedExecDriver[name] = create
	execAddressNameMap[ExecAddress(name)] = name
}

// LoadDriver load driver
func LoadDriver(name string) (driver Driver, err error) {
	mu.RLock()
	defer mu.RUnlock()
	c, ok := registedExecDriver[name]
	if !ok {
		elog.Debug("LoadDriver", "driver", name)
		return nil, types.ErrUnRegistedDriver
	}
	return c(), nil
}

// IsDriverAddress whether or not execdriver by address
func IsDriverAddress(addr string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := execAddressNameMap[addr]
	return ok
}

// GetDriverNames 所有注册的执行器, 按名字排序
func GetDriverNames() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registedExecDriver))
	for name := range registedExecDriver {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ExecAddress 执行器地址
func ExecAddress(name string) string {
	return address.ExecAddress(name)
}
