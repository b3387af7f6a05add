// Copyright 2018 Digital Luddite.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package i8080

import (
	"github.com/nsf/termbox-go"
)

// Console port assignments. A program polls the status port, reads keys
// from the data port with IN, and prints characters to the data port with
// OUT.
const (
	ConsoleStatusPort byte = 0x00
	ConsoleDataPort   byte = 0x01
)

// Console is a termbox-backed terminal peripheral for the I/O bus. Bytes
// written to the data port render as characters; reads from the data port
// block for a key press.
type Console struct {
	events chan termbox.Event
	x, y   int
	fg, bg termbox.Attribute
}

// NewConsole initializes termbox and starts polling for key events.
func NewConsole(fg, bg termbox.Attribute) (*Console, error) {
	if err := termbox.Init(); err != nil {
		return nil, err
	}

	c := &Console{
		events: make(chan termbox.Event, 16),
		fg:     fg,
		bg:     bg,
	}
	go c.poll()

	return c, nil
}

// polls for keyboard events.
func (c *Console) poll() {
	for {
		c.events <- termbox.PollEvent()
	}
}

// ReadPort serves IN instructions. The status port answers 1 when a
// terminal event (of any type) is buffered; the data port blocks for the
// next event and answers the key's character byte (0 for keys with no
// character and for non-key events).
func (c *Console) ReadPort(port byte) (byte, bool) {
	switch port {
	case ConsoleStatusPort:
		return boolBit(len(c.events) > 0), true

	case ConsoleDataPort:
		event := <-c.events
		if event.Type != termbox.EventKey {
			return 0x00, true
		}
		if event.Ch != 0 {
			return byte(event.Ch), true
		}
		switch event.Key {
		case termbox.KeyEnter:
			return '\r', true
		case termbox.KeySpace:
			return ' ', true
		}
		return 0x00, true
	}

	return 0x00, false
}

// WritePort serves OUT instructions on the data port, rendering the byte
// at the cursor. Newline and carriage return move the cursor.
func (c *Console) WritePort(port byte, v byte) bool {
	if port != ConsoleDataPort {
		return false
	}

	switch v {
	case '\n':
		c.x = 0
		c.y++
	case '\r':
		c.x = 0
	default:
		termbox.SetCell(c.x, c.y, rune(v), c.fg, c.bg)
		c.x++
		if w, _ := termbox.Size(); c.x >= w {
			c.x = 0
			c.y++
		}
	}

	termbox.Flush()
	return true
}

// Close shuts termbox down.
func (c *Console) Close() {
	termbox.Close()
}
