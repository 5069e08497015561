package vm

import (
	"sync"

	"github.com/eth2030/evmstack/metrics"
)

// StackPool is a sync.Pool-backed allocator that lets sequential execution
// contexts reuse the 1024-word backing array. Get and Put are safe for
// concurrent use; a stack obtained from Get still has a single owner until
// it is Put back.
type StackPool struct {
	pool sync.Pool

	allocs *metrics.Counter
	gets   *metrics.Counter
	puts   *metrics.Counter
}

// NewStackPool creates an empty pool.
func NewStackPool() *StackPool {
	sp := &StackPool{
		allocs: metrics.NewCounter("evm/stackpool/allocs"),
		gets:   metrics.NewCounter("evm/stackpool/gets"),
		puts:   metrics.NewCounter("evm/stackpool/puts"),
	}
	sp.pool.New = func() any {
		sp.allocs.Inc()
		return NewStack()
	}
	return sp
}

// Get returns an empty stack configured by opts. Options from a previous
// owner do not carry over.
func (sp *StackPool) Get(opts ...StackOption) *Stack {
	st := sp.pool.Get().(*Stack)
	st.Reset()
	st.tracer = NopTracer{}
	for _, opt := range opts {
		opt(st)
	}
	sp.gets.Inc()
	return st
}

// Put resets st and returns it to the pool. The caller must not use st
// afterwards.
func (sp *StackPool) Put(st *Stack) {
	if st == nil {
		return
	}
	st.Reset()
	st.tracer = NopTracer{}
	sp.puts.Inc()
	sp.pool.Put(st)
}

// Stats returns pool usage counters.
func (sp *StackPool) Stats() StackPoolStats {
	return StackPoolStats{
		Allocations: uint64(sp.allocs.Value()),
		Gets:        uint64(sp.gets.Value()),
		Puts:        uint64(sp.puts.Value()),
	}
}

// StackPoolStats holds pool usage counters.
type StackPoolStats struct {
	Allocations uint64 // stacks created because the pool was empty
	Gets        uint64
	Puts        uint64
}

// HitRate returns the fraction of Gets served without allocating.
func (s StackPoolStats) HitRate() float64 {
	if s.Gets == 0 || s.Allocations >= s.Gets {
		return 0
	}
	return float64(s.Gets-s.Allocations) / float64(s.Gets)
}
