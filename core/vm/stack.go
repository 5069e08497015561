package vm

import (
	"math/big"

	"github.com/ethereum/go-ethereum/params"
	"github.com/holiman/uint256"
	"golang.org/x/crypto/sha3"

	"github.com/eth2030/evmstack/core/types"
)

// StackLimit is the protocol maximum stack depth (1024 words).
const StackLimit = int(params.StackLimit)

// StackOption configures a Stack.
type StackOption func(*Stack)

// WithTracer installs t as the stack's push sink. A nil t disables tracing.
func WithTracer(t StackTracer) StackOption {
	return func(st *Stack) {
		if t == nil {
			t = NopTracer{}
		}
		st.tracer = t
	}
}

// Stack is the EVM operand stack: at most StackLimit 256-bit words, owned by
// a single execution context. It is not safe for concurrent use.
type Stack struct {
	data   []Word
	tracer StackTracer
}

// NewStack returns an empty stack with room for StackLimit words.
func NewStack(opts ...StackOption) *Stack {
	st := &Stack{
		data:   make([]Word, 0, StackLimit),
		tracer: NopTracer{},
	}
	for _, opt := range opts {
		opt(st)
	}
	return st
}

// Push appends w as the new top. A full stack is left unchanged and an
// ErrStackOverflow is returned.
func (st *Stack) Push(w Word) error {
	if len(st.data) >= StackLimit {
		return &StackError{Op: OpPush, Depth: len(st.data), Err: ErrStackOverflow}
	}
	st.data = append(st.data, w)
	st.tracer.OnPush(w, len(st.data))
	return nil
}

// PushUint256 pushes v as a word.
func (st *Stack) PushUint256(v *uint256.Int) error {
	return st.Push(WordFromUint256(v))
}

// PushBig pushes v, which must be non-negative and fit in 256 bits.
func (st *Stack) PushBig(v *big.Int) error {
	w, err := WordFromBig(v)
	if err != nil {
		return err
	}
	return st.Push(w)
}

// PushAddress pushes a right-aligned in a word.
func (st *Stack) PushAddress(a types.Address) error {
	return st.Push(WordFromAddress(a))
}

// PushSize pushes a size or offset such as the result of MSIZE or CODESIZE.
func (st *Stack) PushSize(n uint64) error {
	return st.Push(WordFromUint64(n))
}

// Pop removes and returns the top word.
func (st *Stack) Pop() (Word, error) {
	n := len(st.data)
	if n == 0 {
		return Word{}, &StackError{Op: OpPop, Depth: 0, Err: ErrStackUnderflow}
	}
	w := st.data[n-1]
	st.data = st.data[:n-1]
	return w, nil
}

// Swap exchanges the top word with the word distance positions below it.
// Swap(0) is a no-op; SWAPn maps to Swap(n). The stack is left unchanged
// when distance is not below the current depth.
func (st *Stack) Swap(distance int) error {
	n := len(st.data)
	if distance < 0 || distance >= n {
		return &StackError{Op: OpSwap, Depth: n, Distance: distance, Err: ErrStackUnderflow}
	}
	top := n - 1
	st.data[top], st.data[top-distance] = st.data[top-distance], st.data[top]
	return nil
}

// PeekAt returns the word at index counted from the bottom (0 = bottom).
// ok is false when index is out of range.
func (st *Stack) PeekAt(index int) (w Word, ok bool) {
	if index < 0 || index >= len(st.data) {
		return Word{}, false
	}
	return st.data[index], true
}

// Items returns a copy of the stored words, bottom first.
func (st *Stack) Items() []Word {
	out := make([]Word, len(st.data))
	copy(out, st.data)
	return out
}

// SnapshotTopToBottom returns a copy of the stored words, top first.
func (st *Stack) SnapshotTopToBottom() []Word {
	n := len(st.data)
	out := make([]Word, n)
	for i, w := range st.data {
		out[n-1-i] = w
	}
	return out
}

// Capacity returns StackLimit.
func (st *Stack) Capacity() int { return StackLimit }

// Depth returns the number of stored words.
func (st *Stack) Depth() int { return len(st.data) }

// Reset drops every word, keeping the backing array and the tracer.
func (st *Stack) Reset() {
	st.data = st.data[:0]
}

// Digest returns keccak256 over the stored words, bottom first.
func (st *Stack) Digest() types.Hash {
	d := sha3.NewLegacyKeccak256()
	for i := range st.data {
		d.Write(st.data[i][:])
	}
	return types.BytesToHash(d.Sum(nil))
}
