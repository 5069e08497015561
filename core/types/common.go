// Package types defines the fixed-width byte values shared by the operand
// stack and its collaborators.
package types

import (
	"encoding/hex"
	"fmt"
)

const (
	HashLength    = 32
	AddressLength = 20
)

// Hash is a 32-byte Keccak-256 digest.
type Hash [HashLength]byte

// Address is the 20-byte address of an Ethereum account.
type Address [AddressLength]byte

// EmptyKeccakHash is keccak256 of the empty byte string.
var EmptyKeccakHash = HexToHash("c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470")

// BytesToHash converts b to a Hash. Short input is left-padded with zeros;
// long input keeps its rightmost 32 bytes.
func BytesToHash(b []byte) Hash {
	var h Hash
	h.SetBytes(b)
	return h
}

// HexToHash converts a hex string to Hash. Invalid hex yields the zero hash.
func HexToHash(s string) Hash {
	return BytesToHash(fromHex(s))
}

func (h Hash) Bytes() []byte { return h[:] }

func (h Hash) Hex() string { return "0x" + hex.EncodeToString(h[:]) }

// SetBytes sets the hash from b, left-padding if necessary.
func (h *Hash) SetBytes(b []byte) {
	if len(b) > HashLength {
		b = b[len(b)-HashLength:]
	}
	clear(h[:HashLength-len(b)])
	copy(h[HashLength-len(b):], b)
}

func (h Hash) IsZero() bool { return h == Hash{} }

func (h Hash) String() string { return h.Hex() }

// BytesToAddress converts b to an Address using the same padding rule as
// BytesToHash.
func BytesToAddress(b []byte) Address {
	var a Address
	a.SetBytes(b)
	return a
}

// HexToAddress converts a hex string to Address. Invalid hex yields the
// zero address; use ParseAddress when the input is untrusted.
func HexToAddress(s string) Address {
	return BytesToAddress(fromHex(s))
}

// ParseAddress decodes a hex address, rejecting malformed input and input
// longer than 20 bytes.
func ParseAddress(s string) (Address, error) {
	if has0xPrefix(s) {
		s = s[2:]
	}
	if len(s) > 2*AddressLength {
		return Address{}, fmt.Errorf("address %q: too long", s)
	}
	if len(s)%2 == 1 {
		s = "0" + s
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return Address{}, fmt.Errorf("address %q: %w", s, err)
	}
	return BytesToAddress(b), nil
}

func (a Address) Bytes() []byte { return a[:] }

func (a Address) Hex() string { return "0x" + hex.EncodeToString(a[:]) }

// SetBytes sets the address from b, left-padding if necessary.
func (a *Address) SetBytes(b []byte) {
	if len(b) > AddressLength {
		b = b[len(b)-AddressLength:]
	}
	clear(a[:AddressLength-len(b)])
	copy(a[AddressLength-len(b):], b)
}

func (a Address) IsZero() bool { return a == Address{} }

func (a Address) String() string { return a.Hex() }

// fromHex decodes a hex string, stripping an optional "0x" prefix.
func fromHex(s string) []byte {
	if has0xPrefix(s) {
		s = s[2:]
	}
	if len(s)%2 == 1 {
		s = "0" + s
	}
	b, _ := hex.DecodeString(s)
	return b
}

func has0xPrefix(s string) bool {
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}
