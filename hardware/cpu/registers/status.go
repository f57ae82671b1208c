// This file is part of Gopher6502.
//
// Gopher6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher6502.  If not, see <https://www.gnu.org/licenses/>.

package registers

import (
	"strings"
)

// StatusRegister is the special purpose register that stores the flags of the CPU.
//
// Only Sign, Overflow, Zero and Carry are changed by instruction execution.
// The other bits are stored as they are loaded and are reproduced exactly by
// Value().
type StatusRegister struct {
	Sign             bool
	Overflow         bool
	Unused           bool
	Break            bool
	DecimalMode      bool
	InterruptDisable bool
	Zero             bool
	Carry            bool
}

// NewStatusRegister is the preferred method of initialisation for the status
// register.
func NewStatusRegister() StatusRegister {
	return StatusRegister{}
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "SR"
}

func flag(s *strings.Builder, set bool, r rune) {
	if set {
		s.WriteRune(r)
	} else {
		s.WriteRune(r + ('a' - 'A'))
	}
}

// String returns the flags in the conventional order, upper case for set
// and lower case for clear. The unused bit is shown as a dash.
func (sr StatusRegister) String() string {
	s := strings.Builder{}
	flag(&s, sr.Sign, 'S')
	flag(&s, sr.Overflow, 'V')
	s.WriteRune('-')
	flag(&s, sr.Break, 'B')
	flag(&s, sr.DecimalMode, 'D')
	flag(&s, sr.InterruptDisable, 'I')
	flag(&s, sr.Zero, 'Z')
	flag(&s, sr.Carry, 'C')
	return s.String()
}

// Reset status flags to initial state.
func (sr *StatusRegister) Reset() {
	sr.Load(0)
}

// SetZeroSign sets the Zero and Sign flags according to the value. Both flags
// are always written.
func (sr *StatusRegister) SetZeroSign(v uint8) {
	sr.Zero = v == 0
	sr.Sign = v&0x80 == 0x80
}

// Value returns the status register as an 8 bit value.
func (sr StatusRegister) Value() uint8 {
	var v uint8

	if sr.Sign {
		v |= 0x80
	}
	if sr.Overflow {
		v |= 0x40
	}
	if sr.Unused {
		v |= 0x20
	}
	if sr.Break {
		v |= 0x10
	}
	if sr.DecimalMode {
		v |= 0x08
	}
	if sr.InterruptDisable {
		v |= 0x04
	}
	if sr.Zero {
		v |= 0x02
	}
	if sr.Carry {
		v |= 0x01
	}

	return v
}

// Load sets every flag from an 8 bit value.
func (sr *StatusRegister) Load(v uint8) {
	sr.Sign = v&0x80 == 0x80
	sr.Overflow = v&0x40 == 0x40
	sr.Unused = v&0x20 == 0x20
	sr.Break = v&0x10 == 0x10
	sr.DecimalMode = v&0x08 == 0x08
	sr.InterruptDisable = v&0x04 == 0x04
	sr.Zero = v&0x02 == 0x02
	sr.Carry = v&0x01 == 0x01
}
