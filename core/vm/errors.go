package vm

import (
	"errors"
	"fmt"
)

// Stack errors. Stack operations return them wrapped in a *StackError;
// match with errors.Is.
var (
	ErrStackOverflow  = errors.New("evm: stack overflow")
	ErrStackUnderflow = errors.New("evm: stack underflow")
	ErrWordOverflow   = errors.New("evm: value does not fit in 256 bits")
	ErrInvalidWordHex = errors.New("evm: invalid word hex")
)

// StackOp identifies the stack operation that faulted.
type StackOp uint8

const (
	OpPush StackOp = iota + 1
	OpPop
	OpSwap
)

func (op StackOp) String() string {
	switch op {
	case OpPush:
		return "push"
	case OpPop:
		return "pop"
	case OpSwap:
		return "swap"
	default:
		return fmt.Sprintf("StackOp(%d)", uint8(op))
	}
}

// StackError reports a stack precondition violation. Depth is the depth
// before the operation; Distance is only meaningful for OpSwap.
type StackError struct {
	Op       StackOp
	Depth    int
	Distance int
	Err      error
}

func (e *StackError) Error() string {
	if e.Op == OpSwap {
		return fmt.Sprintf("%v (op=%s depth=%d distance=%d)", e.Err, e.Op, e.Depth, e.Distance)
	}
	return fmt.Sprintf("%v (op=%s depth=%d)", e.Err, e.Op, e.Depth)
}

func (e *StackError) Unwrap() error { return e.Err }
