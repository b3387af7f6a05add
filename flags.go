// Copyright 2018 Digital Luddite.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package i8080

// Condition flag bit positions in the PSW flags byte.
//
//	Bit     Name              Use
//	0       carry             1 if carry out of high bit or borrow from high bit
//	1       <unused>          Always one
//	2       parity            1 if number of one bits is even, 0 otherwise
//	3       <unused>          Always zero
//	4       auxiliary carry   1 if carry out of bit 3 or borrow from 4th bit
//	5       <unused>          Always zero
//	6       zero              1 if operation resulted in zero
//	7       sign              Set to most significant bit of result (bit 7)
const (
	FlagCarry    uint = 0
	FlagParity   uint = 2
	FlagAuxCarry uint = 4
	FlagZero     uint = 6
	FlagSign     uint = 7
)

// flagMask covers the five writable condition bits. Bits 1, 3 and 5 are
// fixed and never move.
const flagMask byte = 1<<FlagCarry | 1<<FlagParity | 1<<FlagAuxCarry | 1<<FlagZero | 1<<FlagSign

// Flags holds the 8080 condition flags in their PSW byte layout.
//
// The zero value has the always-one bit unset; use NewFlags.
type Flags struct {
	bits byte
}

// NewFlags returns a flags register in its reset state.
func NewFlags() Flags {
	return Flags{bits: 0x02}
}

// Get returns the value (0 or 1) of the given flag bit.
func (f *Flags) Get(bit uint) byte {
	return (f.bits >> bit) & 0x01
}

// Set sets the given condition flag to one. Writes to the fixed bits are
// ignored.
func (f *Flags) Set(bit uint) {
	f.bits |= (1 << bit) & flagMask
}

// Clear sets the given condition flag to zero. Writes to the fixed bits are
// ignored.
func (f *Flags) Clear(bit uint) {
	f.bits &^= (1 << bit) & flagMask
}

// Put stores v (0 or 1) in the given condition flag.
func (f *Flags) Put(bit uint, v byte) {
	if v == 0 {
		f.Clear(bit)
	} else {
		f.Set(bit)
	}
}

// ClearAll resets every condition flag to zero.
func (f *Flags) ClearAll() {
	f.bits = 0x02
}

// Byte returns the raw PSW flags byte, as pushed by PUSH PSW.
func (f *Flags) Byte() byte {
	return f.bits
}

// SetByte replaces the flags from a raw PSW byte, as popped by POP PSW.
// The fixed bits are re-asserted no matter what the byte carries.
func (f *Flags) SetByte(b byte) {
	f.bits = (b & flagMask) | 0x02
}

// SetZero stores the zero flag computed from the result byte.
func (f *Flags) SetZero(result byte) {
	f.Put(FlagZero, boolBit(result == 0))
}

// SetSign stores the sign flag from bit 7 of the result byte.
func (f *Flags) SetSign(result byte) {
	f.Put(FlagSign, (result>>7)&0x01)
}

// SetParity stores the parity flag computed from the result byte.
func (f *Flags) SetParity(result byte) {
	f.Put(FlagParity, Parity(result))
}

// condition maps one value of the three-bit CCC field to the flag it tests
// and the value that satisfies it.
//
//	NZ -- 000  (not zero)
//	Z  -- 001  (zero)
//	NC -- 010  (no carry)
//	C  -- 011  (carry)
//	PO -- 100  (parity odd)
//	PE -- 101  (parity even)
//	P  -- 110  (positive)
//	M  -- 111  (negative/minus)
type condition struct {
	bit uint
	val byte
}

var conditions = [8]condition{
	{FlagZero, 0},
	{FlagZero, 1},
	{FlagCarry, 0},
	{FlagCarry, 1},
	{FlagParity, 0},
	{FlagParity, 1},
	{FlagSign, 0},
	{FlagSign, 1},
}

// Test reports whether the condition encoded in the three-bit CCC field
// holds for the current flags.
func (f *Flags) Test(ccc byte) bool {
	c := conditions[ccc&0x07]
	return f.Get(c.bit) == c.val
}

func boolBit(b bool) byte {
	if b {
		return 1
	}

	return 0
}
