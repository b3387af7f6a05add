// Copyright 2018 Digital Luddite.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package i8080

import (
	"errors"
	"fmt"
)

var (
	// ErrHalt is returned by the HALT instruction to terminate the execute
	// loop. It is a control signal, not a failure.
	ErrHalt = errors.New("i8080: halt")

	// ErrInvalidRegister is returned when a register operation is given a
	// selector that does not name a storage cell (M, or an undefined
	// value).
	ErrInvalidRegister = errors.New("i8080: invalid register")

	// ErrInvalidPair is returned when a pair operation is given anything
	// other than BC, DE or HL.
	ErrInvalidPair = errors.New("i8080: invalid register pair")

	// errMemoryEnd signals that the program counter advanced past the top
	// of memory.
	errMemoryEnd = errors.New("i8080: program counter ran off end of memory")
)

// RomLoadError is returned when the ROM file cannot be read.
type RomLoadError struct {
	Err error
}

func (e *RomLoadError) Error() string {
	return fmt.Sprintf("i8080: could not load ROM: %s", e.Err.Error())
}

func (e *RomLoadError) Unwrap() error {
	return e.Err
}

// RomError is returned when an operation is invoked before a ROM has been
// loaded.
type RomError struct {
	Msg string
}

func (e *RomError) Error() string {
	return fmt.Sprintf("i8080: %s", e.Msg)
}

// OutOfMemoryError is returned when a memory read extends past the top of
// the address space.
type OutOfMemoryError struct {
	Address uint16
	Size    int
}

func (e *OutOfMemoryError) Error() string {
	return fmt.Sprintf("i8080: read of %d bytes at 0x%04X is out of memory", e.Size, e.Address)
}

// RuntimeError is returned when an instruction cannot be executed. The
// execute loop logs these and keeps going.
type RuntimeError struct {
	Opcode byte
	Msg    string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("i8080: error processing instruction %02X: %s", e.Opcode, e.Msg)
}
