package vm

import (
	"errors"
	"fmt"
	"math/big"
	"testing"

	"github.com/holiman/uint256"

	"github.com/eth2030/evmstack/core/types"
)

func TestBytesToWord(t *testing.T) {
	w := BytesToWord([]byte{0x12, 0x34})
	if w[30] != 0x12 || w[31] != 0x34 {
		t.Fatalf("BytesToWord short: got %x", w[:])
	}

	long := make([]byte, 40)
	for i := range long {
		long[i] = byte(i)
	}
	w = BytesToWord(long)
	for i := 0; i < WordLength; i++ {
		if w[i] != byte(i+8) {
			t.Fatalf("BytesToWord long: byte %d = %x, want %x", i, w[i], byte(i+8))
		}
	}
}

func TestWordFromUint256(t *testing.T) {
	v := uint256.NewInt(0x0102)
	w := WordFromUint256(v)
	if w[30] != 0x01 || w[31] != 0x02 {
		t.Fatalf("WordFromUint256: got %x", w[:])
	}
	if !w.Uint256().Eq(v) {
		t.Fatalf("Uint256() = %s, want %s", w.Uint256(), v)
	}
	if !WordFromUint256(nil).IsZero() {
		t.Fatal("WordFromUint256(nil) should be zero")
	}
}

func TestWordFromBig(t *testing.T) {
	tests := []struct {
		name    string
		in      *big.Int
		wantErr error
	}{
		{"nil", nil, nil},
		{"zero", big.NewInt(0), nil},
		{"small", big.NewInt(255), nil},
		{"max", new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1)), nil},
		{"negative", big.NewInt(-1), ErrWordOverflow},
		{"257 bits", new(big.Int).Lsh(big.NewInt(1), 256), ErrWordOverflow},
	}
	for _, tt := range tests {
		w, err := WordFromBig(tt.in)
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("%s: err = %v, want %v", tt.name, err, tt.wantErr)
			continue
		}
		if err == nil && tt.in != nil && w.Big().Cmp(tt.in) != 0 {
			t.Errorf("%s: Big() = %s, want %s", tt.name, w.Big(), tt.in)
		}
	}
}

func TestWordFromAddress(t *testing.T) {
	addr := types.HexToAddress("0xffffffffffffffffffffffffffffffffffffffff")
	w := WordFromAddress(addr)
	for i := 0; i < 12; i++ {
		if w[i] != 0 {
			t.Fatalf("byte %d = %#x, want 0", i, w[i])
		}
	}
	for i := 12; i < WordLength; i++ {
		if w[i] != 0xff {
			t.Fatalf("byte %d = %#x, want 0xff", i, w[i])
		}
	}
	if w.Address() != addr {
		t.Fatalf("Address() = %s, want %s", w.Address(), addr)
	}
}

func TestHexToWord(t *testing.T) {
	tests := []struct {
		in      string
		want    Word
		wantErr bool
	}{
		{"0x01", WordFromUint64(1), false},
		{"ff", WordFromUint64(255), false},
		{"0xabc", WordFromUint64(0xabc), false},
		{"0x" + "ff00000000000000000000000000000000000000000000000000000000000001", BytesToWord(append([]byte{0xff}, append(make([]byte, 30), 0x01)...)), false},
		{"", Word{}, true},
		{"0x", Word{}, true},
		{"0xzz", Word{}, true},
		{"0x1" + "0000000000000000000000000000000000000000000000000000000000000000", Word{}, true},
	}
	for _, tt := range tests {
		got, err := HexToWord(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("HexToWord(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err != nil {
			if !errors.Is(err, ErrInvalidWordHex) {
				t.Errorf("HexToWord(%q) err = %v, want ErrInvalidWordHex", tt.in, err)
			}
			continue
		}
		if got != tt.want {
			t.Errorf("HexToWord(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestWord_Formatting(t *testing.T) {
	w := WordFromUint64(0xabc)
	tests := []struct {
		format string
		want   string
	}{
		{"%v", "0xabc"},
		{"%s", "0xabc"},
		{"%x", "abc"},
		{"%X", "ABC"},
		{"%#x", "0xabc"},
		{"%#X", "0xABC"},
	}
	for _, tt := range tests {
		if got := fmt.Sprintf(tt.format, w); got != tt.want {
			t.Errorf("Sprintf(%q) = %q, want %q", tt.format, got, tt.want)
		}
	}
	if got := (Word{}).String(); got != "0x0" {
		t.Errorf("zero String() = %q, want 0x0", got)
	}
	if got := w.Hex(); got != "0x0000000000000000000000000000000000000000000000000000000000000abc" {
		t.Errorf("Hex() = %q", got)
	}
}

func TestWord_BytesIsCopy(t *testing.T) {
	w := WordFromUint64(1)
	b := w.Bytes()
	b[31] = 0xff
	if w[31] != 1 {
		t.Fatal("Bytes() aliases the word")
	}
	if w.Hash() != types.BytesToHash([]byte{1}) {
		t.Fatalf("Hash() = %s", w.Hash())
	}
}
