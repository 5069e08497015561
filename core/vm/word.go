package vm

import (
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/holiman/uint256"

	"github.com/eth2030/evmstack/core/types"
)

// WordLength is the width of a stack word in bytes.
const WordLength = 32

// Word is a 256-bit big-endian machine word, the unit of stack storage.
type Word [WordLength]byte

// BytesToWord converts b to a Word. Short input is left-padded with zeros,
// long input keeps its low-order 32 bytes.
func BytesToWord(b []byte) Word {
	var w Word
	if len(b) > WordLength {
		b = b[len(b)-WordLength:]
	}
	copy(w[WordLength-len(b):], b)
	return w
}

// WordFromUint256 converts v to a Word. A nil v is the zero word.
func WordFromUint256(v *uint256.Int) Word {
	if v == nil {
		return Word{}
	}
	return Word(v.Bytes32())
}

// WordFromUint64 converts v to a Word.
func WordFromUint64(v uint64) Word {
	return WordFromUint256(uint256.NewInt(v))
}

// WordFromBig converts v to a Word. It returns ErrWordOverflow if v is
// negative or does not fit in 256 bits.
func WordFromBig(v *big.Int) (Word, error) {
	if v == nil {
		return Word{}, nil
	}
	if v.Sign() < 0 {
		return Word{}, fmt.Errorf("%w: negative value %s", ErrWordOverflow, v)
	}
	u, overflow := uint256.FromBig(v)
	if overflow {
		return Word{}, fmt.Errorf("%w: %d-bit value", ErrWordOverflow, v.BitLen())
	}
	return WordFromUint256(u), nil
}

// WordFromAddress embeds a into the low-order 20 bytes of a Word, the
// layout ADDRESS, CALLER and ORIGIN push.
func WordFromAddress(a types.Address) Word {
	var w Word
	copy(w[WordLength-types.AddressLength:], a[:])
	return w
}

// HexToWord parses a hex string of at most 64 digits, with or without a 0x
// prefix.
func HexToWord(s string) (Word, error) {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	if s == "" || len(s) > 2*WordLength {
		return Word{}, fmt.Errorf("%w: %q", ErrInvalidWordHex, s)
	}
	if len(s)%2 == 1 {
		s = "0" + s
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return Word{}, fmt.Errorf("%w: %v", ErrInvalidWordHex, err)
	}
	return BytesToWord(b), nil
}

// Bytes returns a copy of the word's 32 bytes.
func (w Word) Bytes() []byte {
	b := make([]byte, WordLength)
	copy(b, w[:])
	return b
}

// Uint256 returns the word as an unsigned 256-bit integer.
func (w Word) Uint256() *uint256.Int {
	return new(uint256.Int).SetBytes32(w[:])
}

// Big returns the word as a non-negative big.Int.
func (w Word) Big() *big.Int {
	return new(big.Int).SetBytes(w[:])
}

// Address returns the low-order 20 bytes of the word.
func (w Word) Address() types.Address {
	return types.BytesToAddress(w[WordLength-types.AddressLength:])
}

// Hash reinterprets the word as a Hash.
func (w Word) Hash() types.Hash { return types.Hash(w) }

func (w Word) IsZero() bool { return w == Word{} }

// Hex returns the full 64-digit 0x-prefixed encoding.
func (w Word) Hex() string { return "0x" + hex.EncodeToString(w[:]) }

// String returns the minimal 0x-prefixed hex form, "0x0" for zero.
func (w Word) String() string { return w.Uint256().Hex() }

// Format implements fmt.Formatter. %x and %X print the minimal hex digits,
// the '#' flag adds a 0x prefix; %v and %s use String.
func (w Word) Format(s fmt.State, verb rune) {
	switch verb {
	case 'x', 'X':
		digits := w.Uint256().Hex()[2:]
		if verb == 'X' {
			digits = upperHex(digits)
		}
		if s.Flag('#') {
			digits = "0x" + digits
		}
		fmt.Fprint(s, digits)
	case 'v', 's':
		fmt.Fprint(s, w.String())
	default:
		fmt.Fprintf(s, "%%!%c(vm.Word=%s)", verb, w.String())
	}
}

func upperHex(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'f' {
			b[i] = c - 'a' + 'A'
		}
	}
	return string(b)
}
