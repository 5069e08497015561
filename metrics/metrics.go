// Package metrics provides lock-free counters and gauges for stack
// instrumentation. Both types are safe for concurrent use so a single
// instance can aggregate over many execution contexts.
package metrics

import "sync/atomic"

// Counter is a monotonically increasing count.
type Counter struct {
	name  string
	value atomic.Int64
}

func NewCounter(name string) *Counter {
	return &Counter{name: name}
}

func (c *Counter) Inc() { c.value.Add(1) }

// Add increments the counter by n. Non-positive n is ignored.
func (c *Counter) Add(n int64) {
	if n > 0 {
		c.value.Add(n)
	}
}

func (c *Counter) Value() int64 { return c.value.Load() }

func (c *Counter) Name() string { return c.name }

// Gauge is a value that can go up and down.
type Gauge struct {
	name  string
	value atomic.Int64
}

func NewGauge(name string) *Gauge {
	return &Gauge{name: name}
}

func (g *Gauge) Set(v int64) { g.value.Store(v) }

// SetMax raises the gauge to v if v is larger than the current value.
func (g *Gauge) SetMax(v int64) {
	for {
		cur := g.value.Load()
		if v <= cur || g.value.CompareAndSwap(cur, v) {
			return
		}
	}
}

func (g *Gauge) Inc() { g.value.Add(1) }

func (g *Gauge) Dec() { g.value.Add(-1) }

func (g *Gauge) Value() int64 { return g.value.Load() }

func (g *Gauge) Name() string { return g.name }
