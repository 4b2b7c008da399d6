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

package machine

import (
	"bufio"
)

type DeviceHandler struct {
	Keyboard *bufio.Reader
	Display  *bufio.Writer

	// Interactive selects the blocking-read policy for GETC/IN: a raw-mode
	// terminal reads empty whenever no key is pending, so the trap retries;
	// on pipes and buffers EOF is final and reads as a NUL byte.
	Interactive bool
}

type MachineState struct {
	Registers [8]uint16
	Program uint16
	Condition uint16
	Running bool
	Memory [1 << 16]uint16
}

type Machine struct {
	Devices *DeviceHandler
	State   MachineState
}
