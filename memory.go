// Copyright 2018 Digital Luddite.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package i8080

import "io"

// MemorySize is the size of the 8080 address space.
const MemorySize = 0x10000

// Memory is the flat 64 KiB address space. A ROM image occupies the low
// addresses; the rest is zero.
type Memory struct {
	cells [MemorySize]byte
}

// Read returns size bytes of memory starting at the given address. The
// read fails when address+size reaches the top of memory.
func (m *Memory) Read(address uint16, size int) ([]byte, error) {
	if int(address)+size >= MemorySize {
		return nil, &OutOfMemoryError{Address: address, Size: size}
	}

	out := make([]byte, size)
	copy(out, m.cells[address:int(address)+size])
	return out, nil
}

// Write stores one byte at the given address. The 16-bit address type
// bounds the write to the address space.
func (m *Memory) Write(address uint16, b byte) {
	m.cells[address] = b
}

// At returns the byte at the given address.
func (m *Memory) At(address uint16) byte {
	return m.cells[address]
}

// Load fills memory from the reader starting at address 0 and zeroes the
// remainder. It returns the number of ROM bytes loaded.
func (m *Memory) Load(r io.Reader) (int, error) {
	m.cells = [MemorySize]byte{}

	n, err := io.ReadFull(r, m.cells[:])
	if err == io.ErrUnexpectedEOF || err == io.EOF {
		err = nil
	}

	return n, err
}
