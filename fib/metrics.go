// Copyright 2024 The Erigon Authors
// This file is part of Erigon.
//
// Erigon is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Erigon is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Erigon. If not, see <http://www.gnu.org/licenses/>.

package fib

import (
	"github.com/prometheus/client_golang/prometheus"
)

// tableMetrics holds the live gauges/counters a routing daemon would scrape
// off a FIB: size, churn, and reclamation health. Each Table registers its
// own set against the collector it is given, keyed by a caller-supplied
// table name label, so multiple tables (e.g. one FIB per address family)
// don't collide in a shared registry.
type tableMetrics struct {
	entries           prometheus.Gauge
	hashOrder         prometheus.Gauge
	deferredFreeDepth prometheus.Gauge
	reservedRows      prometheus.Gauge
	rehashTotal       prometheus.Counter
	reclaimTotal      prometheus.Counter
	routeStepsTotal   prometheus.Counter
}

func newTableMetrics(reg prometheus.Registerer, name string) *tableMetrics {
	labels := prometheus.Labels{"table": name}
	m := &tableMetrics{
		entries: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "fib",
			Name:        "entries",
			Help:        "Number of live (non-sentinel, non-marked) entries in the table.",
			ConstLabels: labels,
		}),
		hashOrder: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "fib",
			Name:        "hash_order",
			Help:        "Current log2 of the bucket array size.",
			ConstLabels: labels,
		}),
		deferredFreeDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "fib",
			Name:        "deferred_free_depth",
			Help:        "Entries awaiting hazard-clearance on the deferred-free list.",
			ConstLabels: labels,
		}),
		reservedRows: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "fib",
			Name:        "reserved_rows",
			Help:        "Soft-link rows currently reserved, out of MaxThreads.",
			ConstLabels: labels,
		}),
		rehashTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "fib",
			Name:        "rehash_total",
			Help:        "Number of times the bucket array was doubled.",
			ConstLabels: labels,
		}),
		reclaimTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "fib",
			Name:        "reclaim_total",
			Help:        "Number of entries physically freed by the reclaimer.",
			ConstLabels: labels,
		}),
		routeStepsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "fib",
			Name:        "route_steps_total",
			Help:        "Total prefix-shortening steps taken across all Route calls.",
			ConstLabels: labels,
		}),
	}
	if reg != nil {
		for _, c := range []prometheus.Collector{
			m.entries, m.hashOrder, m.deferredFreeDepth, m.reservedRows,
			m.rehashTotal, m.reclaimTotal, m.routeStepsTotal,
		} {
			// Registration failures (duplicate registration of a
			// same-named table) are non-fatal: metrics are an
			// observability aid, not load-bearing for correctness.
			_ = reg.Register(c)
		}
	}
	return m
}
