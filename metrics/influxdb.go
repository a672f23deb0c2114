// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metrics

import (
	"net/url"
	"time"

	"github.com/33cn/hot/types"
	client "github.com/influxdata/influxdb/client"
	"github.com/pkg/errors"
	gometrics "github.com/rcrowley/go-metrics"
)

var percentiles = []float64{0.5, 0.75, 0.95, 0.99, 0.999}

//influxReporter 定期把 registry 写到 influxdb
type influxReporter struct {
	reg       gometrics.Registry
	interval  time.Duration
	url       url.URL
	database  string
	username  string
	password  string
	namespace string
	client    *client.Client
}

func newInfluxReporter(reg gometrics.Registry, interval time.Duration, cfg *types.Influxdb) (*influxReporter, error) {
	u, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, errors.Wrapf(types.ErrConfig, "influxdb url %s: %v", cfg.URL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, errors.Wrapf(types.ErrConfig, "influxdb url %s", cfg.URL)
	}
	if cfg.Database == "" {
		return nil, errors.Wrap(types.ErrConfig, "influxdb database")
	}
	r := &influxReporter{
		reg:       reg,
		interval:  interval,
		url:       *u,
		database:  cfg.Database,
		username:  cfg.Username,
		password:  cfg.Password,
		namespace: cfg.Namespace,
	}
	if err := r.makeClient(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *influxReporter) makeClient() (err error) {
	r.client, err = client.NewClient(client.Config{
		URL:      r.url,
		Username: r.username,
		Password: r.password,
	})
	return err
}

func (r *influxReporter) run() {
	intervalTicker := time.NewTicker(r.interval)
	pingTicker := time.NewTicker(5 * time.Second)
	defer intervalTicker.Stop()
	defer pingTicker.Stop()
	for {
		select {
		case <-intervalTicker.C:
			if err := r.send(); err != nil {
				log.Error("influxdb send", "err", err)
			}
		case <-pingTicker.C:
			if _, _, err := r.client.Ping(); err != nil {
				log.Error("influxdb ping", "url", r.url.String(), "err", err)
				if err = r.makeClient(); err != nil {
					log.Error("influxdb client", "err", err)
				}
			}
		}
	}
}

func (r *influxReporter) send() error {
	bps := client.BatchPoints{
		Points:   points(r.reg, r.namespace, time.Now()),
		Database: r.database,
	}
	_, err := r.client.Write(bps)
	return err
}

func measurement(namespace, name, kind string) string {
	if namespace == "" {
		return name + "." + kind
	}
	return namespace + "." + name + "." + kind
}

//points 每个指标一个点, measurement 为 namespace.name.类型
func points(reg gometrics.Registry, namespace string, now time.Time) []client.Point {
	var pts []client.Point
	add := func(name, kind string, fields map[string]interface{}) {
		pts = append(pts, client.Point{
			Measurement: measurement(namespace, name, kind),
			Fields:      fields,
			Time:        now,
		})
	}
	reg.Each(func(name string, i interface{}) {
		switch m := i.(type) {
		case gometrics.Counter:
			add(name, "count", map[string]interface{}{"value": m.Count()})
		case gometrics.Gauge:
			add(name, "gauge", map[string]interface{}{"value": m.Snapshot().Value()})
		case gometrics.GaugeFloat64:
			add(name, "gauge", map[string]interface{}{"value": m.Snapshot().Value()})
		case gometrics.Histogram:
			ms := m.Snapshot()
			ps := ms.Percentiles(percentiles)
			add(name, "histogram", map[string]interface{}{
				"count":    ms.Count(),
				"max":      ms.Max(),
				"mean":     ms.Mean(),
				"min":      ms.Min(),
				"stddev":   ms.StdDev(),
				"variance": ms.Variance(),
				"p50":      ps[0],
				"p75":      ps[1],
				"p95":      ps[2],
				"p99":      ps[3],
				"p999":     ps[4],
			})
		case gometrics.Meter:
			ms := m.Snapshot()
			add(name, "meter", map[string]interface{}{
				"count": ms.Count(),
				"m1":    ms.Rate1(),
				"m5":    ms.Rate5(),
				"m15":   ms.Rate15(),
				"mean":  ms.RateMean(),
			})
		case gometrics.Timer:
			ms := m.Snapshot()
			ps := ms.Percentiles(percentiles)
			add(name, "timer", map[string]interface{}{
				"count":    ms.Count(),
				"max":      ms.Max(),
				"mean":     ms.Mean(),
				"min":      ms.Min(),
				"stddev":   ms.StdDev(),
				"variance": ms.Variance(),
				"p50":      ps[0],
				"p75":      ps[1],
				"p95":      ps[2],
				"p99":      ps[3],
				"p999":     ps[4],
				"m1":       ms.Rate1(),
				"m5":       ms.Rate5(),
				"m15":      ms.Rate15(),
				"meanrate": ms.RateMean(),
			})
		}
	})
	return pts
}
