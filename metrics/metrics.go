// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package metrics 执行器的计数器, 定期写到日志或者 influxdb
package metrics

import (
	"fmt"
	"io"
	"time"

	"github.com/33cn/hot/types"
	log15 "github.com/inconshreveable/log15"
	gometrics "github.com/rcrowley/go-metrics"
)

var log = log15.New("module", "hot metrics")

//logger go-metrics 的 Logger 接口输出到 log15
type logger struct {
	l log15.Logger
}

func (lg *logger) Printf(format string, v ...interface{}) {
	lg.l.Info(fmt.Sprintf(format, v...))
}

//StartMetrics 根据配置定期输出 DefaultRegistry 中的数据
func StartMetrics(cfg *types.Config) {
	m := cfg.Metrics
	if m == nil || !m.EnableMetrics {
		log.Info("Metrics data is not enabled to emit")
		return
	}
	duration := time.Duration(m.Duration) * time.Second
	if duration <= 0 {
		duration = time.Minute
	}

	switch m.DataEmitMode {
	case "", types.MetricsEmitLog:
		log.Info("StartMetrics", "duration", duration)
		go gometrics.Log(gometrics.DefaultRegistry, duration, &logger{l: log})
	case types.MetricsEmitInfluxdb:
		reporter, err := newInfluxReporter(gometrics.DefaultRegistry, duration, &m.Influxdb)
		if err != nil {
			log.Error("StartMetrics with influxdb", "err", err)
			return
		}
		log.Info("StartMetrics with influxdb", "duration", duration,
			"url", m.Influxdb.URL,
			"database", m.Influxdb.Database,
			"username", m.Influxdb.Username,
			"namespace", m.Influxdb.Namespace)
		go reporter.run()
	default:
		log.Error("startMetrics", "The dataEmitMode set is not supported now ", m.DataEmitMode)
	}
}

//WriteJSON 以 json 格式输出所有指标
func WriteJSON(w io.Writer) {
	gometrics.WriteJSONOnce(gometrics.DefaultRegistry, w)
}

//Count 计数器或者 meter 的当前值, 不存在时返回 0
func Count(name string) int64 {
	switch m := gometrics.DefaultRegistry.Get(name).(type) {
	case gometrics.Counter:
		return m.Count()
	case gometrics.Meter:
		return m.Count()
	case gometrics.Timer:
		return m.Count()
	}
	return 0
}
