package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/eth2030/evmstack/core/types"
	"github.com/eth2030/evmstack/core/vm"
)

type opKind int

const (
	opPush opKind = iota
	opPushSize
	opPushAddr
	opPop
	opSwap
	opPeek
)

// scriptOp is one parsed operation. Only the field matching kind is set.
type scriptOp struct {
	kind opKind
	word vm.Word
	size uint64
	addr types.Address
	n    int
	src  string
}

func parseScript(args []string) ([]scriptOp, error) {
	ops := make([]scriptOp, 0, len(args))
	for _, arg := range args {
		op, err := parseOp(arg)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}

func parseOp(arg string) (scriptOp, error) {
	name, operand, hasOperand := strings.Cut(arg, ":")
	op := scriptOp{src: arg}
	var err error
	switch strings.ToLower(name) {
	case "push":
		op.kind = opPush
		op.word, err = vm.HexToWord(operand)
	case "pushsize":
		op.kind = opPushSize
		op.size, err = strconv.ParseUint(operand, 10, 64)
	case "pushaddr":
		op.kind = opPushAddr
		op.addr, err = types.ParseAddress(operand)
	case "pop":
		op.kind = opPop
		if hasOperand {
			err = fmt.Errorf("unexpected operand")
		}
	case "swap":
		op.kind = opSwap
		op.n, err = strconv.Atoi(operand)
	case "peek":
		op.kind = opPeek
		op.n, err = strconv.Atoi(operand)
	default:
		err = fmt.Errorf("unknown operation")
	}
	if err != nil {
		return scriptOp{}, fmt.Errorf("op %q: %w", arg, err)
	}
	return op, nil
}

// execute applies ops to st in order and stops at the first fault. Popped
// and peeked words are written to out.
func execute(st *vm.Stack, ops []scriptOp, out io.Writer) error {
	for i, op := range ops {
		var err error
		switch op.kind {
		case opPush:
			err = st.Push(op.word)
		case opPushSize:
			err = st.PushSize(op.size)
		case opPushAddr:
			err = st.PushAddress(op.addr)
		case opPop:
			var w vm.Word
			if w, err = st.Pop(); err == nil {
				fmt.Fprintf(out, "pop %#x\n", w)
			}
		case opSwap:
			err = st.Swap(op.n)
		case opPeek:
			if w, ok := st.PeekAt(op.n); ok {
				fmt.Fprintf(out, "peek %d %#x\n", op.n, w)
			} else {
				fmt.Fprintf(out, "peek %d absent\n", op.n)
			}
		}
		if err != nil {
			return fmt.Errorf("step %d (%s): %w", i, op.src, err)
		}
	}
	return nil
}
