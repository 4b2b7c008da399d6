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
	"time"
)

// waitKey blocks until the keyboard produces a byte. On interactive input
// the poll retries after a short sleep; elsewhere EOF reads as NUL.
func (mc *Machine) waitKey() byte {
	for {
		if key, ok := mc.pollKey(); ok {
			return key
		}

		if mc.Devices == nil || !mc.Devices.Interactive {
			return 0
		}

		time.Sleep(time.Millisecond)
	}
}

func (mc *Machine) putByte(value byte) {
	if mc.Devices == nil || mc.Devices.Display == nil {
		return
	}

	if err := mc.Devices.Display.WriteByte(value); err != nil {
		panic(err)
	}
}

func (mc *Machine) putString(value string) {
	if mc.Devices == nil || mc.Devices.Display == nil {
		return
	}

	if _, err := mc.Devices.Display.WriteString(value); err != nil {
		panic(err)
	}
}

func (mc *Machine) flush() {
	if mc.Devices == nil || mc.Devices.Display == nil {
		return
	}

	if err := mc.Devices.Display.Flush(); err != nil {
		panic(err)
	}
}

// trap runs a host service routine. R7 already holds the return linkage by
// the time dispatch lands here. Vectors outside the defined set are no-ops.
func (mc *Machine) trap(vector uint16) {
	switch vector {
	// GETC | Read one keyboard byte into R0, no echo
	case TRAP_GETC:
		mc.State.Registers[0] = uint16(mc.waitKey())

	// OUT  | Write the low byte of R0
	case TRAP_OUT:
		mc.putByte(byte(mc.State.Registers[0]))
		mc.flush()

	// PUTS | Write one byte per word starting at R0 until a zero word
	case TRAP_PUTS:
		for addr := mc.State.Registers[0]; ; addr++ {
			cell := mc.read(addr)

			if cell == 0 {
				break
			}

			mc.putByte(byte(cell))
		}

		mc.flush()

	// IN   | Prompt, read one keyboard byte into R0, echo it
	case TRAP_IN:
		mc.putString("Enter a character: ")
		mc.flush()

		key := mc.waitKey()

		mc.putByte(key)
		mc.flush()

		mc.State.Registers[0] = uint16(key)

	// PUTSP| Write packed bytes starting at R0 until a zero word; the high
	//        byte of the final word is skipped when zero
	case TRAP_PUTSP:
		for addr := mc.State.Registers[0]; ; addr++ {
			cell := mc.read(addr)

			if cell == 0 {
				break
			}

			mc.putByte(byte(cell & 0xFF))

			if cell>>8 != 0 {
				mc.putByte(byte(cell >> 8))
			}
		}

		mc.flush()

	// HALT | Announce and clear the running flag
	case TRAP_HALT:
		mc.putString("HALT\n")
		mc.flush()

		mc.State.Running = false
	}
}
