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

package encoding_test

import (
	"testing"

	"github.com/lassandro/lc3vm/pkg/encoding"
)

func TestSignExtend(t *testing.T) {
	tests := []struct {
		Name  string
		Value uint16
		Bits  uint16
		Want  uint16
	}{
		{"Imm5 Positive", 0x000F, 5, 0x000F},
		{"Imm5 Minus One", 0x001F, 5, 0xFFFF},

		// Top bit set, bottom bit clear: the case a bit-zero test gets wrong
		{"Imm5 Boundary", 0x0010, 5, 0xFFF0},

		// Bottom bit set, top bit clear: must not extend
		{"Offset9 Bottom Bit Only", 0x00FF, 9, 0x00FF},

		{"Offset6 Minus Two", 0x003E, 6, 0xFFFE},
		{"Offset9 Minus Two", 0x01FE, 9, 0xFFFE},
		{"Offset11 Minus Two", 0x07FE, 11, 0xFFFE},
		{"One Bit Wide", 0x0001, 1, 0xFFFF},
		{"Full Width Negative", 0x8000, 16, 0x8000},
		{"Full Width Positive", 0x7FFF, 16, 0x7FFF},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			have := encoding.SignExtend(test.Value, test.Bits)

			if have != test.Want {
				t.Errorf(
					"SignExtend(%#04x, %d)\nwant:%#04x\nhave:%#04x",
					test.Value,
					test.Bits,
					test.Want,
					have,
				)
			}
		})
	}
}

func TestSwapEndian(t *testing.T) {
	if have := encoding.SwapEndian(0x1234); have != 0x3412 {
		t.Errorf("SwapEndian(0x1234)\nwant:0x3412\nhave:%#04x", have)
	}

	if have := encoding.SwapEndian(0xFF00); have != 0x00FF {
		t.Errorf("SwapEndian(0xFF00)\nwant:0x00FF\nhave:%#04x", have)
	}

	for _, value := range []uint16{0x0000, 0x00FF, 0x1234, 0xABCD, 0xFFFF} {
		if have := encoding.SwapEndian(encoding.SwapEndian(value)); have != value {
			t.Errorf(
				"SwapEndian not an involution for %#04x: %#04x", value, have,
			)
		}
	}
}
