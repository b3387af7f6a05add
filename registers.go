// Copyright 2018 Digital Luddite.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package i8080

// Reg names one of the seven 8-bit registers. The constant values match the
// three-bit register field used in opcode encodings:
//
//	000  -- B
//	001  -- C
//	010  -- D
//	011  -- E
//	100  -- H
//	101  -- L
//	110  -- M (memory reference through H,L)
//	111  -- A
//
// M is a decode result only; it has no storage cell and Get/Set reject it.
type Reg byte

const (
	B Reg = iota
	C
	D
	E
	H
	L
	M
	A
)

var regNames = [8]string{"B", "C", "D", "E", "H", "L", "M", "A"}

func (r Reg) String() string {
	if int(r) < len(regNames) {
		return regNames[r]
	}

	return "?"
}

// RegisterPair names two registers accessed as a single 16-bit value, with
// Hi as the most significant byte.
type RegisterPair struct {
	Hi, Lo Reg
}

// The three architectural register pairs.
var (
	BC = RegisterPair{B, C}
	DE = RegisterPair{D, E}
	HL = RegisterPair{H, L}
)

// PairByIndex maps the two-bit RP field of an opcode to a register pair.
// Index 3 encodes SP (or PSW for PUSH/POP) and is the caller's business, so
// it is rejected here.
func PairByIndex(idx byte) (RegisterPair, error) {
	switch idx {
	case 0:
		return BC, nil
	case 1:
		return DE, nil
	case 2:
		return HL, nil
	}

	return RegisterPair{}, ErrInvalidPair
}

// RegisterFromOpcode extracts the register number encoded in the opcode
// starting at the given bit offset (0 for source fields, 3 for destination
// fields).
func RegisterFromOpcode(opcode byte, offset uint) Reg {
	return Reg((opcode & (7 << offset)) >> offset)
}

// Registers holds the seven 8-bit register cells.
type Registers struct {
	cells [8]byte
}

// Get returns the value of the given register.
func (r *Registers) Get(reg Reg) (byte, error) {
	if !reg.valid() {
		return 0, ErrInvalidRegister
	}

	return r.cells[reg], nil
}

// Set stores v in the given register.
func (r *Registers) Set(reg Reg, v byte) error {
	if !reg.valid() {
		return ErrInvalidRegister
	}

	r.cells[reg] = v
	return nil
}

// Address calculates a 16-bit address from the given register pair. The
// first register of the pair is the most significant byte of the address.
func (r *Registers) Address(p RegisterPair) (uint16, error) {
	return r.PairValue(p)
}

// PairValue returns the 16-bit value held by the given register pair.
func (r *Registers) PairValue(p RegisterPair) (uint16, error) {
	if !p.valid() {
		return 0, ErrInvalidPair
	}

	return uint16(r.cells[p.Hi])<<8 | uint16(r.cells[p.Lo]), nil
}

// SetPairValue splits v into its high and low bytes and stores them in the
// given register pair.
func (r *Registers) SetPairValue(p RegisterPair, v uint16) error {
	if !p.valid() {
		return ErrInvalidPair
	}

	r.cells[p.Hi] = byte(v >> 8)
	r.cells[p.Lo] = byte(v)
	return nil
}

func (r Reg) valid() bool {
	return r <= A && r != M
}

func (p RegisterPair) valid() bool {
	return p == BC || p == DE || p == HL
}
