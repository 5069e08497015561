// Package geth converts between this module's stack values and
// go-ethereum's common types, so a go-ethereum based interpreter can drive
// the operand stack. It is the only package that imports go-ethereum/common.
package geth

import (
	gethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/eth2030/evmstack/core/types"
	"github.com/eth2030/evmstack/core/vm"
)

// ToGethAddress converts an Address to a go-ethereum Address.
func ToGethAddress(a types.Address) gethcommon.Address {
	return gethcommon.Address(a)
}

// FromGethAddress converts a go-ethereum Address to an Address.
func FromGethAddress(a gethcommon.Address) types.Address {
	return types.Address(a)
}

// ToGethHash converts a Hash to a go-ethereum Hash.
func ToGethHash(h types.Hash) gethcommon.Hash {
	return gethcommon.Hash(h)
}

// FromGethHash converts a go-ethereum Hash to a Hash.
func FromGethHash(h gethcommon.Hash) types.Hash {
	return types.Hash(h)
}

// WordToGethHash reinterprets a stack word as a go-ethereum Hash, the form
// BLOCKHASH, SLOAD keys and log topics take.
func WordToGethHash(w vm.Word) gethcommon.Hash {
	return gethcommon.Hash(w)
}

// WordFromGethHash reinterprets a go-ethereum Hash as a stack word.
func WordFromGethHash(h gethcommon.Hash) vm.Word {
	return vm.Word(h)
}

// WordFromGethAddress right-aligns a go-ethereum Address in a stack word.
func WordFromGethAddress(a gethcommon.Address) vm.Word {
	return vm.WordFromAddress(FromGethAddress(a))
}

// WordToGethAddress returns the low-order 20 bytes of w as a go-ethereum
// Address, the truncation CALL and BALANCE apply to their address operand.
func WordToGethAddress(w vm.Word) gethcommon.Address {
	return ToGethAddress(w.Address())
}

// PushGethAddress pushes a go-ethereum Address onto st.
func PushGethAddress(st *vm.Stack, a gethcommon.Address) error {
	return st.PushAddress(FromGethAddress(a))
}

// PopUint256 pops the top word of st as a uint256.Int, the operand type of
// go-ethereum's instruction handlers.
func PopUint256(st *vm.Stack) (*uint256.Int, error) {
	w, err := st.Pop()
	if err != nil {
		return nil, err
	}
	return w.Uint256(), nil
}
