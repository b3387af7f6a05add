// Copyright 2018 Digital Luddite.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	i8080 "github.com/digitalluddite/8080emulator"
	termbox "github.com/nsf/termbox-go"
	"github.com/urfave/cli"
)

var cmdEmulate = cli.Command{
	Name:      "emulate",
	Usage:     "Load and execute an 8080 ROM",
	ArgsUsage: "ROM",
	Action:    runEmulate,
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:  "log",
			Usage: "If provided, specifies a log file to write debug output to.",
		},
		cli.BoolFlag{
			Name:  "console",
			Usage: "Attach a terminal console to the I/O bus.",
		},
	},
}

func runEmulate(c *cli.Context) error {
	m := i8080.New(nil)

	// If a log file is specified, create a logger and add it to the
	// machine.
	if fname := c.String("log"); fname != "" {
		f, err := os.Create(fname)
		must(err)
		defer f.Close()

		m.Logger = log.New(f, "", 0)
	}

	var console *i8080.Console
	if c.Bool("console") {
		var err error
		console, err = i8080.NewConsole(
			termbox.ColorDefault, // Foreground
			termbox.ColorDefault, // Background
		)
		must(err)
		defer console.Close()

		m.IO.AttachInput(console)
		m.IO.AttachOutput(console)
	}

	must(loadROM(m, c))

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		if console != nil {
			console.Close()
		}
		os.Exit(1)
	}()

	return m.Execute()
}
