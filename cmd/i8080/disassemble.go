// Copyright 2018 Digital Luddite.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"

	i8080 "github.com/digitalluddite/8080emulator"
	"github.com/urfave/cli"
)

var cmdDisassemble = cli.Command{
	Name:      "disassemble",
	Usage:     "Disassemble an 8080 ROM",
	ArgsUsage: "ROM",
	Action:    runDisassemble,
}

func runDisassemble(c *cli.Context) error {
	m := i8080.New(nil)

	if err := loadROM(m, c); err != nil {
		return fmt.Errorf("error reading ROM: %s", err)
	}

	if err := m.Disassemble(os.Stdout); err != nil {
		var romErr *i8080.RomError
		if errors.As(err, &romErr) {
			return fmt.Errorf("error parsing ROM: %s", err)
		}

		return err
	}

	return nil
}

// loadROM fills the machine from the first argument, or from stdin when no
// argument is given.
func loadROM(m *i8080.Machine, c *cli.Context) error {
	if c.Args().Present() {
		_, err := m.LoadFile(c.Args().First())
		return err
	}

	_, err := m.Load(os.Stdin)
	return err
}
