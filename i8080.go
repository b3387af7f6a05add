// Copyright 2018 Digital Luddite.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package i8080 provides a Go implementation of an Intel 8080 emulator.
//
// The 8080 is an 8-bit microprocessor with a 64 KiB address space, seven
// 8-bit registers (B, C, D, E, H, L and the accumulator A), a 16-bit stack
// pointer and program counter, and 256 I/O ports. A program ("ROM") is a
// flat binary loaded at address 0; execution starts there and proceeds
// instruction by instruction until a HALT or until the program counter
// runs off the top of memory.
package i8080

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// DefaultLogger is the default logger to use. Defaults to logging to
// io.Discard.
var DefaultLogger = log.New(io.Discard, "", 0)

// Machine is an 8080 machine: CPU, memory and I/O bus.
type Machine struct {
	// The 64 KiB of memory. The ROM occupies the low addresses.
	Memory Memory

	// The seven 8-bit registers.
	Registers Registers

	// The PSW condition flags.
	Flags Flags

	// Program counter.
	PC uint16

	// Stack pointer. Programs set it with LXI SP.
	SP uint16

	// The I/O bus. Peripherals attach here.
	IO *IOBus

	// A logger for information about the machine while it's executing.
	// The zero value is the DefaultLogger.
	Logger *log.Logger

	loaded bool
}

// Options provides a means of configuring the machine.
type Options struct {
	Logger *log.Logger
}

// New returns a new Machine instance.
func New(options *Options) *Machine {
	m := &Machine{
		Flags: NewFlags(),
		IO:    NewIOBus(),
	}

	if options != nil {
		m.Logger = options.Logger
	}

	return m
}

// LoadFile loads the ROM at the given path.
func (m *Machine) LoadFile(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, &RomLoadError{Err: err}
	}
	defer f.Close()

	return m.Load(f)
}

// Load reads the ROM image from the reader into memory starting at address
// 0, zero-pads the remainder, and resets the program counter.
func (m *Machine) Load(r io.Reader) (int, error) {
	n, err := m.Memory.Load(r)
	if err != nil {
		return n, &RomLoadError{Err: err}
	}

	m.PC = 0
	m.loaded = true
	return n, nil
}

// LoadBytes loads the ROM image from a byte slice.
func (m *Machine) LoadBytes(p []byte) (int, error) {
	return m.Load(bytes.NewReader(p))
}

// Step fetches, decodes and executes a single instruction, returning the
// opcode byte that ran. The program counter is advanced by the instruction
// length before the semantic action is invoked, so branch instructions see
// the address of the next instruction.
func (m *Machine) Step() (byte, error) {
	code := m.Memory.At(m.PC)
	op := opcodes[code]

	operands, operr := m.Memory.Read(m.PC+1, op.Length-1)

	next := uint32(m.PC) + uint32(op.Length)
	m.PC = uint16(next)

	var err error
	if operr != nil {
		err = &RuntimeError{Opcode: code, Msg: "instruction truncated at top of memory"}
	} else {
		err = op.handler(m, code, operands)
	}

	// The fetch ran past 0xFFFF and nothing branched: the program has
	// walked off the end of memory.
	if next > 0xFFFF && m.PC == uint16(next) {
		if err != nil {
			return code, fmt.Errorf("%w: %w", errMemoryEnd, err)
		}

		return code, errMemoryEnd
	}

	return code, err
}

// Execute runs the fetch-execute loop until a HALT is executed or the
// program counter runs off the end of memory. Errors from individual
// instructions are logged and execution continues.
func (m *Machine) Execute() error {
	if !m.loaded {
		return &RomError{Msg: "no ROM file loaded"}
	}

	for {
		code, err := m.Step()
		m.logger().Printf("op=0x%02X %s", code, m)

		if err == nil {
			continue
		}
		if errors.Is(err, ErrHalt) {
			return nil
		}
		if err != errMemoryEnd {
			m.logger().Printf("%s", err.Error())
		}
		if errors.Is(err, errMemoryEnd) {
			return nil
		}
	}
}

// Disassemble walks the loaded memory from address 0 and writes one line
// per instruction:
//
//	AAAA: BB BB BB  MNEMONIC [#|$]HHLL
//
// Absent instruction bytes print as spaces. Multibyte operands print
// high-byte-first, swapped from their little-endian memory order; the
// prefix is # for immediates and $ for addresses.
func (m *Machine) Disassemble(w io.Writer) error {
	if !m.loaded {
		return &RomError{Msg: "no ROM file loaded"}
	}

	for addr := 0; addr < MemorySize; {
		op := opcodes[m.Memory.At(uint16(addr))]

		var operands []byte
		for i := 1; i < op.Length && addr+i < MemorySize; i++ {
			operands = append(operands, m.Memory.At(uint16(addr+i)))
		}

		_, err := fmt.Fprintf(w, "%04X: %s  %s %s\n",
			addr, instructionBytes(op, operands), op.Mnemonic, formatOperand(op, operands))
		if err != nil {
			return err
		}

		addr += op.Length
	}

	return nil
}

// instructionBytes renders the opcode and operand bytes, padded to the
// width of a three-byte instruction.
func instructionBytes(op OpCode, operands []byte) string {
	b := []string{fmt.Sprintf("%02X", op.Code)}
	for _, o := range operands {
		b = append(b, fmt.Sprintf("%02X", o))
	}
	for len(b) < 3 {
		b = append(b, "  ")
	}

	return strings.Join(b, " ")
}

// formatOperand renders the operand bytes of an instruction, high byte
// first.
func formatOperand(op OpCode, operands []byte) string {
	if len(operands) == 0 {
		return ""
	}

	prefix := "$"
	if op.Kind == OperandImmediate {
		prefix = "#"
	}

	var sb strings.Builder
	sb.WriteString(prefix)
	for i := len(operands) - 1; i >= 0; i-- {
		fmt.Fprintf(&sb, "%02X", operands[i])
	}

	return sb.String()
}

// String implements the fmt.Stringer interface.
func (m *Machine) String() string {
	b, _ := m.Registers.PairValue(BC)
	d, _ := m.Registers.PairValue(DE)
	hl, _ := m.Registers.PairValue(HL)
	a, _ := m.Registers.Get(A)

	return fmt.Sprintf(
		"A=0x%02X BC=0x%04X DE=0x%04X HL=0x%04X PC=0x%04X SP=0x%04X flags=0x%02X",
		a, b, d, hl, m.PC, m.SP, m.Flags.Byte(),
	)
}

// logger returns the logger to use for debugging.
func (m *Machine) logger() *log.Logger {
	if m.Logger == nil {
		return DefaultLogger
	}

	return m.Logger
}
