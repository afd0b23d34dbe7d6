// Copyright 2022-2026 The N42 Authors
// This file is part of the N42 library.
//
// The N42 library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The N42 library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the N42 library. If not, see <http://www.gnu.org/licenses/>.

package kinds

import (
	"io"
	"time"

	"github.com/VictoriaMetrics/metrics"

	"github.com/metabasenet/metabasenet/log"
	"github.com/metabasenet/metabasenet/node"
)

const datastatInterval = 10 * time.Second

// DataStat registers pull-style gauges on its own metrics.Set reflecting
// the container's current phase; it publishes no CTSDB gauges of its own,
// and other kinds can add gauges through RegisterGauge. A
// ticker drives a periodic Debug log line so the gauges are exercised even
// without a scraper attached; WritePrometheus exposes the set for a caller
// that mounts it on HTTPSERVER.
type DataStat struct {
	Base
	set    *metrics.Set
	c      *node.Container
	done   chan struct{}
	ticker *time.Ticker
}

// NewDataStat constructs the DATASTAT module.
func NewDataStat(sink log.Sink) *DataStat {
	return &DataStat{Base: NewBase("datastat", sink), set: metrics.NewSet()}
}

func (d *DataStat) Initialize(c *node.Container) error {
	d.c = c
	d.set.GetOrCreateGauge("node_phase", func() float64 {
		return float64(c.Phase())
	})
	return d.Base.Initialize(c)
}

func (d *DataStat) Run(c *node.Container) error {
	d.done = make(chan struct{})
	d.ticker = time.NewTicker(datastatInterval)
	go d.loop()
	return d.Base.Run(c)
}

func (d *DataStat) loop() {
	for {
		select {
		case <-d.ticker.C:
			d.sink.Debug("datastat: snapshot", "phase", d.c.Phase())
		case <-d.done:
			return
		}
	}
}

func (d *DataStat) Halt(c *node.Container) error {
	if d.ticker != nil {
		d.ticker.Stop()
	}
	if d.done != nil {
		close(d.done)
	}
	return d.Base.Halt(c)
}

// WritePrometheus renders the current gauge set in Prometheus exposition
// format, for a caller (typically HTTPSERVER) to serve.
func (d *DataStat) WritePrometheus(w io.Writer) {
	d.set.WritePrometheus(w)
}

// RegisterGauge exposes a named pull-style gauge backed by fn, letting
// other modules (e.g. a CTSDB-backed kind) publish their own counters
// through DataStat's set without DataStat importing them.
func (d *DataStat) RegisterGauge(name string, fn func() float64) {
	d.set.GetOrCreateGauge(name, fn)
}
