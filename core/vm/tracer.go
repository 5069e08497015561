package vm

import (
	"github.com/eth2030/evmstack/log"
	"github.com/eth2030/evmstack/metrics"
)

// StackTracer receives one record per successful push. depth is the stack
// depth after the push. Implementations must not mutate the stack.
type StackTracer interface {
	OnPush(value Word, depth int)
}

// NopTracer discards every record. It is the default sink.
type NopTracer struct{}

func (NopTracer) OnPush(Word, int) {}

// StackTraceFunc adapts a function to StackTracer.
type StackTraceFunc func(value Word, depth int)

func (f StackTraceFunc) OnPush(value Word, depth int) { f(value, depth) }

// LogTracer writes each push as a debug record.
type LogTracer struct {
	logger *log.Logger
}

// NewLogTracer returns a LogTracer writing to l, or to the "stack" module of
// the default logger when l is nil.
func NewLogTracer(l *log.Logger) *LogTracer {
	if l == nil {
		l = log.Default().Module("stack")
	}
	return &LogTracer{logger: l}
}

func (t *LogTracer) OnPush(value Word, depth int) {
	t.logger.Debug("push", "value", value.String(), "depth", depth)
}

// MetricsTracer counts pushes and tracks the deepest stack seen.
type MetricsTracer struct {
	Pushes    *metrics.Counter
	PeakDepth *metrics.Gauge
}

func NewMetricsTracer() *MetricsTracer {
	return &MetricsTracer{
		Pushes:    metrics.NewCounter("evm/stack/pushes"),
		PeakDepth: metrics.NewGauge("evm/stack/peak_depth"),
	}
}

func (t *MetricsTracer) OnPush(_ Word, depth int) {
	t.Pushes.Inc()
	t.PeakDepth.SetMax(int64(depth))
}

// MultiTracer fans each record out to every non-nil tracer in order.
func MultiTracer(tracers ...StackTracer) StackTracer {
	var ts multiTracer
	for _, t := range tracers {
		if t != nil {
			ts = append(ts, t)
		}
	}
	return ts
}

type multiTracer []StackTracer

func (m multiTracer) OnPush(value Word, depth int) {
	for _, t := range m {
		t.OnPush(value, depth)
	}
}
