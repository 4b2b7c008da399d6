// Copyright (C) 2021  Antonio Lassandro

// This program is free software: you can redistribute it and/or modify it
// under the terms of the GNU General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
// FITNESS FOR A PARTICULAR PURPOSE.  See the GNU General Public License for
// more details.

// You should have received a copy of the GNU General Public License along
// with this program.  If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"golang.org/x/term"

	"github.com/lassandro/lc3vm/pkg/machine"
)

var helpvar bool

const usage = "lc3vm image-file-1 [image-file-2 ...]"

func init() {
	exe, _ := os.Executable()
	log.SetFlags(0)
	log.SetPrefix(fmt.Sprintf("%s: ", filepath.Base(exe)))
	log.SetOutput(os.Stderr)
}

func init() {
	flag.BoolVar(&helpvar, "help", false, "Displays command usage")
	flag.Parse()
}

func lc3vm() int {
	if helpvar {
		fmt.Println(usage)
		return 0
	}

	args := flag.Args()

	if len(args) < 1 {
		fmt.Println(usage)
		return 2
	}

	var mc machine.Machine
	var dh machine.DeviceHandler
	dh.Keyboard = bufio.NewReader(os.Stdin)
	dh.Display = bufio.NewWriter(os.Stdout)
	dh.Interactive = term.IsTerminal(int(os.Stdin.Fd()))
	mc.Devices = &dh

	mc.State.Reset()

	for _, path := range args {
		file, err := os.Open(path)

		if err == nil {
			err = mc.LoadImage(file)
			file.Close()
		}

		if err != nil {
			fmt.Printf("failed to load image: %s\n", path)
			return 1
		}
	}

	if dh.Interactive {
		enterRawTerm()
		defer exitRawTerm()
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	go func() {
		<-c

		if dh.Interactive {
			exitRawTerm()
		}

		fmt.Println()
		os.Exit(-2)
	}()

	if err := mc.Run(); err != nil {
		// Deferred terminal restore runs before the abort
		panic(err)
	}

	return 0
}

func main() {
	os.Exit(lc3vm())
}
