// Copyright 2018 Digital Luddite.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package i8080

// Semantic actions for the opcode table. Each handler covers a whole
// instruction family and decodes register, pair and condition fields from
// the opcode byte it is handed. Arithmetic is mod 256 for 8-bit operations
// and mod 65536 for 16-bit operations.

// regValue reads the operand named by a decoded register field, going
// through memory at (H,L) when the field encodes M.
func (m *Machine) regValue(reg Reg) (byte, error) {
	if reg == M {
		addr, _ := m.Registers.Address(HL)
		b, err := m.Memory.Read(addr, 1)
		if err != nil {
			return 0, err
		}

		return b[0], nil
	}

	return m.Registers.Get(reg)
}

// setRegValue stores the value named by a decoded register field, going
// through memory at (H,L) when the field encodes M.
func (m *Machine) setRegValue(reg Reg, v byte) error {
	if reg == M {
		addr, _ := m.Registers.Address(HL)
		m.Memory.Write(addr, v)
		return nil
	}

	return m.Registers.Set(reg, v)
}

// hl returns the address held in the H,L pair.
func (m *Machine) hl() uint16 {
	addr, _ := m.Registers.Address(HL)
	return addr
}

func (m *Machine) nop(opcode byte, operands []byte) error {
	return nil
}

// unhandled covers the UNKNOWN encodings and the instructions left
// unimplemented (DAA, SBB, SBI, DI, EI). They advance past themselves and
// log a warning.
func (m *Machine) unhandled(opcode byte, operands []byte) error {
	m.logger().Printf("unhandled instruction: %02X", opcode)
	return nil
}

// mov copies between registers and memory. The encoding is 01DDDSSS; if
// either field is M, the address comes from the H,L pair. There is no
// memory-to-memory move: that slot is HALT.
func (m *Machine) mov(opcode byte, operands []byte) error {
	dst := RegisterFromOpcode(opcode, 3)
	src := RegisterFromOpcode(opcode, 0)

	v, err := m.regValue(src)
	if err != nil {
		return err
	}

	return m.setRegValue(dst, v)
}

// mvi stores the immediate byte in the register (or memory) named by the
// destination field.
func (m *Machine) mvi(opcode byte, operands []byte) error {
	return m.setRegValue(RegisterFromOpcode(opcode, 3), operands[0])
}

// lxi loads a 16-bit immediate: byte 3 of the instruction goes to the
// high-order register of the pair, byte 2 to the low-order register.
// RP index 3 names the stack pointer.
func (m *Machine) lxi(opcode byte, operands []byte) error {
	lo, hi := operands[0], operands[1]

	rp := (opcode >> 4) & 0x03
	if rp == 0x03 {
		m.SP = uint16(hi)<<8 | uint16(lo)
		return nil
	}

	pair, err := PairByIndex(rp)
	if err != nil {
		return err
	}

	m.Registers.Set(pair.Lo, lo)
	m.Registers.Set(pair.Hi, hi)
	return nil
}

// stax stores the accumulator at the address in B,C (0x02) or D,E (0x12).
func (m *Machine) stax(opcode byte, operands []byte) error {
	pair := BC
	if opcode == 0x12 {
		pair = DE
	}

	addr, _ := m.Registers.Address(pair)
	a, _ := m.Registers.Get(A)
	m.Memory.Write(addr, a)
	return nil
}

// ldax loads the accumulator from the address in B,C (0x0A) or D,E (0x1A).
func (m *Machine) ldax(opcode byte, operands []byte) error {
	pair := BC
	if opcode == 0x1A {
		pair = DE
	}

	addr, _ := m.Registers.Address(pair)
	b, err := m.Memory.Read(addr, 1)
	if err != nil {
		return err
	}

	return m.Registers.Set(A, b[0])
}

func (m *Machine) lda(opcode byte, operands []byte) error {
	addr := uint16(operands[1])<<8 | uint16(operands[0])

	b, err := m.Memory.Read(addr, 1)
	if err != nil {
		return err
	}

	return m.Registers.Set(A, b[0])
}

func (m *Machine) sta(opcode byte, operands []byte) error {
	addr := uint16(operands[1])<<8 | uint16(operands[0])
	a, _ := m.Registers.Get(A)
	m.Memory.Write(addr, a)
	return nil
}

// lhld loads L from the addressed byte and H from the one after it.
func (m *Machine) lhld(opcode byte, operands []byte) error {
	addr := uint16(operands[1])<<8 | uint16(operands[0])

	b, err := m.Memory.Read(addr, 2)
	if err != nil {
		return err
	}

	m.Registers.Set(L, b[0])
	m.Registers.Set(H, b[1])
	return nil
}

// shld stores L at the addressed byte and H at the one after it.
func (m *Machine) shld(opcode byte, operands []byte) error {
	addr := uint16(operands[1])<<8 | uint16(operands[0])

	l, _ := m.Registers.Get(L)
	h, _ := m.Registers.Get(H)
	m.Memory.Write(addr, l)
	m.Memory.Write(addr+1, h)
	return nil
}

// xchg swaps H with D and L with E.
func (m *Machine) xchg(opcode byte, operands []byte) error {
	h, _ := m.Registers.Get(H)
	d, _ := m.Registers.Get(D)
	m.Registers.Set(H, d)
	m.Registers.Set(D, h)

	l, _ := m.Registers.Get(L)
	e, _ := m.Registers.Get(E)
	m.Registers.Set(L, e)
	m.Registers.Set(E, l)
	return nil
}

// xthl swaps L with the byte at SP and H with the byte at SP+1.
func (m *Machine) xthl(opcode byte, operands []byte) error {
	b, err := m.Memory.Read(m.SP, 2)
	if err != nil {
		return err
	}

	l, _ := m.Registers.Get(L)
	m.Registers.Set(L, b[0])
	m.Memory.Write(m.SP, l)

	h, _ := m.Registers.Get(H)
	m.Registers.Set(H, b[1])
	m.Memory.Write(m.SP+1, h)
	return nil
}

func (m *Machine) sphl(opcode byte, operands []byte) error {
	m.SP = m.hl()
	return nil
}

func (m *Machine) pchl(opcode byte, operands []byte) error {
	m.PC = m.hl()
	return nil
}

func (m *Machine) jmp(opcode byte, operands []byte) error {
	m.PC = uint16(operands[1])<<8 | uint16(operands[0])
	return nil
}

// condJmp jumps when the condition in bits 3-5 of the opcode holds.
func (m *Machine) condJmp(opcode byte, operands []byte) error {
	if m.Flags.Test((opcode >> 3) & 0x07) {
		return m.jmp(opcode, operands)
	}

	return nil
}

// call pushes the return address, high byte first, and jumps.
//
//	((SP)-1) <- PCH
//	((SP)-2) <- PCL
//	(SP)     <- (SP)-2
//	(PC)     <- address
func (m *Machine) call(opcode byte, operands []byte) error {
	m.Memory.Write(m.SP-1, byte(m.PC>>8))
	m.Memory.Write(m.SP-2, byte(m.PC))
	m.SP -= 2
	m.PC = uint16(operands[1])<<8 | uint16(operands[0])
	return nil
}

func (m *Machine) condCall(opcode byte, operands []byte) error {
	if m.Flags.Test((opcode >> 3) & 0x07) {
		return m.call(opcode, operands)
	}

	return nil
}

// ret pops the return address pushed by call.
//
//	(PCL) <- (SP)
//	(PCH) <- (SP)+1
//	(SP)  <- (SP)+2
func (m *Machine) ret(opcode byte, operands []byte) error {
	b, err := m.Memory.Read(m.SP, 2)
	if err != nil {
		return err
	}

	m.PC = uint16(b[1])<<8 | uint16(b[0])
	m.SP += 2
	return nil
}

func (m *Machine) condRet(opcode byte, operands []byte) error {
	if m.Flags.Test((opcode >> 3) & 0x07) {
		return m.ret(opcode, operands)
	}

	return nil
}

// rst pushes the program counter like call and jumps to the restart vector
// 8*NNN, where NNN is bits 3-5 of the opcode.
func (m *Machine) rst(opcode byte, operands []byte) error {
	m.Memory.Write(m.SP-1, byte(m.PC>>8))
	m.Memory.Write(m.SP-2, byte(m.PC))
	m.SP -= 2
	m.PC = 8 * uint16((opcode>>3)&0x07)
	return nil
}

// pushPair pushes a register pair, high register first.
func (m *Machine) pushPair(opcode byte, operands []byte) error {
	pair, err := PairByIndex((opcode >> 4) & 0x03)
	if err != nil {
		return err
	}

	hi, _ := m.Registers.Get(pair.Hi)
	lo, _ := m.Registers.Get(pair.Lo)
	m.Memory.Write(m.SP-1, hi)
	m.Memory.Write(m.SP-2, lo)
	m.SP -= 2
	return nil
}

// pushPSW pushes the accumulator and the flags byte.
func (m *Machine) pushPSW(opcode byte, operands []byte) error {
	a, _ := m.Registers.Get(A)
	m.Memory.Write(m.SP-1, a)
	m.Memory.Write(m.SP-2, m.Flags.Byte())
	m.SP -= 2
	return nil
}

func (m *Machine) popPair(opcode byte, operands []byte) error {
	pair, err := PairByIndex((opcode >> 4) & 0x03)
	if err != nil {
		return err
	}

	b, err := m.Memory.Read(m.SP, 2)
	if err != nil {
		return err
	}

	m.Registers.Set(pair.Lo, b[0])
	m.Registers.Set(pair.Hi, b[1])
	m.SP += 2
	return nil
}

func (m *Machine) popPSW(opcode byte, operands []byte) error {
	b, err := m.Memory.Read(m.SP, 2)
	if err != nil {
		return err
	}

	m.Flags.SetByte(b[0])
	m.Registers.Set(A, b[1])
	m.SP += 2
	return nil
}

// addAccumulator adds val to the accumulator and sets Z, S, P, CY and AC.
// val is an int so ADC/ACI can fold the carry into the addend before the
// flag computation.
func (m *Machine) addAccumulator(val int) {
	a, _ := m.Registers.Get(A)

	m.Flags.Put(FlagAuxCarry, boolBit(int(a&0x0F)+(val&0x0F) > 0x0F))
	m.Flags.Put(FlagCarry, boolBit(int(a)+val > 0xFF))

	res := byte((int(a) + val) & 0xFF)
	m.Flags.SetZero(res)
	m.Flags.SetParity(res)
	m.Flags.SetSign(res)
	m.Registers.Set(A, res)
}

func (m *Machine) add(opcode byte, operands []byte) error {
	v, err := m.regValue(RegisterFromOpcode(opcode, 0))
	if err != nil {
		return err
	}

	m.addAccumulator(int(v))
	return nil
}

func (m *Machine) adc(opcode byte, operands []byte) error {
	v, err := m.regValue(RegisterFromOpcode(opcode, 0))
	if err != nil {
		return err
	}

	m.addAccumulator(int(v) + int(m.Flags.Get(FlagCarry)))
	return nil
}

func (m *Machine) adi(opcode byte, operands []byte) error {
	m.addAccumulator(int(operands[0]))
	return nil
}

func (m *Machine) aci(opcode byte, operands []byte) error {
	m.addAccumulator(int(operands[0]) + int(m.Flags.Get(FlagCarry)))
	return nil
}

// subAccumulator subtracts val from the accumulator in signed space and
// returns the re-encoded result. Every flag is recomputed: CY and S are set
// together when signed A is less than the signed operand, AC when the low
// nibbles compare likewise, Z when the difference is zero, and P from the
// result byte.
func (m *Machine) subAccumulator(val byte) byte {
	sv := SignedInt(val)
	sa, _ := m.Registers.Get(A)
	sai := SignedInt(sa)

	m.Flags.ClearAll()
	if sai < sv {
		m.Flags.Set(FlagCarry)
		m.Flags.Set(FlagSign)
	}
	if (sai & 0x0F) < (sv & 0x0F) {
		m.Flags.Set(FlagAuxCarry)
	}

	sai -= sv
	if sai == 0 {
		m.Flags.Set(FlagZero)
	}

	res := SignedByte(sai)
	m.Flags.SetParity(res)
	return res
}

func (m *Machine) sub(opcode byte, operands []byte) error {
	v, err := m.regValue(RegisterFromOpcode(opcode, 0))
	if err != nil {
		return err
	}

	return m.Registers.Set(A, m.subAccumulator(v))
}

func (m *Machine) sui(opcode byte, operands []byte) error {
	return m.Registers.Set(A, m.subAccumulator(operands[0]))
}

// cmp sets the flags as sub does but leaves the accumulator alone.
func (m *Machine) cmp(opcode byte, operands []byte) error {
	v, err := m.regValue(RegisterFromOpcode(opcode, 0))
	if err != nil {
		return err
	}

	m.subAccumulator(v)
	return nil
}

func (m *Machine) cpi(opcode byte, operands []byte) error {
	m.subAccumulator(operands[0])
	return nil
}

// inr increments the register (or memory) named by bits 3-5. Z, S, P and
// AC are affected; CY is not.
func (m *Machine) inr(opcode byte, operands []byte) error {
	reg := RegisterFromOpcode(opcode, 3)

	v, err := m.regValue(reg)
	if err != nil {
		return err
	}

	m.Flags.Put(FlagAuxCarry, boolBit(v&0x0F == 0x0F))

	v++
	m.Flags.SetParity(v)
	m.Flags.SetZero(v)
	m.Flags.SetSign(v)
	return m.setRegValue(reg, v)
}

// dcr decrements the register (or memory) named by bits 3-5. Z, S, P and
// AC are affected; CY is not.
func (m *Machine) dcr(opcode byte, operands []byte) error {
	reg := RegisterFromOpcode(opcode, 3)

	v, err := m.regValue(reg)
	if err != nil {
		return err
	}

	m.Flags.Put(FlagAuxCarry, boolBit(v&0x0F == 0x00))

	v--
	m.Flags.SetParity(v)
	m.Flags.SetZero(v)
	m.Flags.SetSign(v)
	return m.setRegValue(reg, v)
}

// inx increments a register pair or SP. No flags are affected.
func (m *Machine) inx(opcode byte, operands []byte) error {
	rp := (opcode >> 4) & 0x03
	if rp == 0x03 {
		m.SP++
		return nil
	}

	pair, err := PairByIndex(rp)
	if err != nil {
		return err
	}

	v, _ := m.Registers.PairValue(pair)
	return m.Registers.SetPairValue(pair, v+1)
}

// dcx decrements a register pair or SP. No flags are affected.
func (m *Machine) dcx(opcode byte, operands []byte) error {
	rp := (opcode >> 4) & 0x03
	if rp == 0x03 {
		m.SP--
		return nil
	}

	pair, err := PairByIndex(rp)
	if err != nil {
		return err
	}

	v, _ := m.Registers.PairValue(pair)
	return m.Registers.SetPairValue(pair, v-1)
}

// dad adds a register pair (or SP) to H,L. Only the carry flag is
// affected.
func (m *Machine) dad(opcode byte, operands []byte) error {
	var v uint16

	rp := (opcode >> 4) & 0x03
	if rp == 0x03 {
		v = m.SP
	} else {
		pair, err := PairByIndex(rp)
		if err != nil {
			return err
		}
		v, _ = m.Registers.PairValue(pair)
	}

	hl, _ := m.Registers.PairValue(HL)
	sum := uint32(hl) + uint32(v)

	m.Flags.Put(FlagCarry, boolBit(sum > 0xFFFF))
	return m.Registers.SetPairValue(HL, uint16(sum))
}

// andAccumulator ANDs val into the accumulator and sets Z, S and P. The
// caller decides which carry flags to clear: ANA resets CY only, ANI
// resets CY and AC.
func (m *Machine) andAccumulator(val byte) {
	a, _ := m.Registers.Get(A)
	res := a & val

	m.Registers.Set(A, res)
	m.Flags.SetParity(res)
	m.Flags.SetZero(res)
	m.Flags.SetSign(res)
}

func (m *Machine) ana(opcode byte, operands []byte) error {
	v, err := m.regValue(RegisterFromOpcode(opcode, 0))
	if err != nil {
		return err
	}

	m.Flags.Clear(FlagCarry)
	m.andAccumulator(v)
	return nil
}

func (m *Machine) ani(opcode byte, operands []byte) error {
	m.Flags.Clear(FlagCarry)
	m.Flags.Clear(FlagAuxCarry)
	m.andAccumulator(operands[0])
	return nil
}

// orAccumulator combines val with the accumulator through the given
// function. CY and AC are reset; Z, S and P follow the result. XRA, XRI,
// ORA and ORI all funnel through here.
func (m *Machine) orAccumulator(val byte, or func(a, b byte) byte) {
	a, _ := m.Registers.Get(A)
	res := or(val, a)

	m.Registers.Set(A, res)
	m.Flags.Clear(FlagCarry)
	m.Flags.Clear(FlagAuxCarry)
	m.Flags.SetParity(res)
	m.Flags.SetZero(res)
	m.Flags.SetSign(res)
}

func (m *Machine) xra(opcode byte, operands []byte) error {
	v, err := m.regValue(RegisterFromOpcode(opcode, 0))
	if err != nil {
		return err
	}

	m.orAccumulator(v, func(a, b byte) byte { return a ^ b })
	return nil
}

func (m *Machine) xri(opcode byte, operands []byte) error {
	m.orAccumulator(operands[0], func(a, b byte) byte { return a ^ b })
	return nil
}

func (m *Machine) ora(opcode byte, operands []byte) error {
	v, err := m.regValue(RegisterFromOpcode(opcode, 0))
	if err != nil {
		return err
	}

	m.orAccumulator(v, func(a, b byte) byte { return a | b })
	return nil
}

func (m *Machine) ori(opcode byte, operands []byte) error {
	m.orAccumulator(operands[0], func(a, b byte) byte { return a | b })
	return nil
}

// cma complements the accumulator. No flags are affected.
func (m *Machine) cma(opcode byte, operands []byte) error {
	a, _ := m.Registers.Get(A)
	return m.Registers.Set(A, a^0xFF)
}

func (m *Machine) cmc(opcode byte, operands []byte) error {
	if m.Flags.Get(FlagCarry) == 1 {
		m.Flags.Clear(FlagCarry)
	} else {
		m.Flags.Set(FlagCarry)
	}

	return nil
}

func (m *Machine) stc(opcode byte, operands []byte) error {
	m.Flags.Set(FlagCarry)
	return nil
}

// rlc rotates the accumulator left; bit 7 goes to bit 0 and to CY.
func (m *Machine) rlc(opcode byte, operands []byte) error {
	a, _ := m.Registers.Get(A)
	bit := (a >> 7) & 0x01

	m.Flags.Put(FlagCarry, bit)
	return m.Registers.Set(A, a<<1|bit)
}

// ral rotates the accumulator left through the carry; CY goes to bit 0 and
// bit 7 to CY.
func (m *Machine) ral(opcode byte, operands []byte) error {
	cy := m.Flags.Get(FlagCarry)
	a, _ := m.Registers.Get(A)

	m.Flags.Put(FlagCarry, (a>>7)&0x01)
	return m.Registers.Set(A, a<<1|cy)
}

// rrc rotates the accumulator right; bit 0 goes to bit 7 and to CY.
func (m *Machine) rrc(opcode byte, operands []byte) error {
	a, _ := m.Registers.Get(A)
	bit := a & 0x01

	m.Flags.Put(FlagCarry, bit)
	return m.Registers.Set(A, a>>1|bit<<7)
}

// rar rotates the accumulator right through the carry; CY goes to bit 7
// and bit 0 to CY.
func (m *Machine) rar(opcode byte, operands []byte) error {
	cy := m.Flags.Get(FlagCarry)
	a, _ := m.Registers.Get(A)

	m.Flags.Put(FlagCarry, a&0x01)
	return m.Registers.Set(A, a>>1|cy<<7)
}

// out puts the accumulator on the I/O bus at the port named by the
// immediate byte.
func (m *Machine) out(opcode byte, operands []byte) error {
	a, _ := m.Registers.Get(A)
	m.IO.Write(operands[0], a)
	return nil
}

// input reads a byte from the port named by the immediate byte into the
// accumulator.
func (m *Machine) input(opcode byte, operands []byte) error {
	return m.Registers.Set(A, m.IO.Read(operands[0]))
}

func (m *Machine) halt(opcode byte, operands []byte) error {
	return ErrHalt
}
