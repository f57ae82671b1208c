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
	"fmt"
)

// Register is an 8 bit register. The zero value is a register holding zero
// with no label.
type Register struct {
	value uint8
	label string
}

// NewRegister is the preferred method of initialisation for Register.
func NewRegister(val uint8, label string) Register {
	return Register{
		value: val,
		label: label,
	}
}

func (r Register) String() string {
	return fmt.Sprintf("%s=%#02x", r.label, r.value)
}

// Label returns the name of the register.
func (r Register) Label() string {
	return r.label
}

// Value returns the current value of the register.
func (r Register) Value() uint8 {
	return r.value
}

// Address returns the current value of the register as a uint16. Used when an
// index register takes part in address arithmetic.
func (r Register) Address() uint16 {
	return uint16(r.value)
}

// IsNegative checks the sign bit of the register.
func (r Register) IsNegative() bool {
	return r.value&0x80 == 0x80
}

// IsZero checks if register is zero.
func (r Register) IsZero() bool {
	return r.value == 0
}

// Load value into register.
func (r *Register) Load(val uint8) {
	r.value = val
}

// Increment adds one to the register, wrapping from 0xff to 0x00.
func (r *Register) Increment() {
	r.value++
}

// Add value to register. Returns carry and overflow states.
//
// Carry is set if the unsigned sum (including the incoming carry) does not fit
// in eight bits. Overflow is set if both operands have the same sign and the
// sign of the result is different.
func (r *Register) Add(val uint8, carry bool) (rcarry bool, overflow bool) {
	v := r.value

	sum := uint16(v) + uint16(val)
	if carry {
		sum++
	}
	r.value = uint8(sum)

	overflow = ((v ^ r.value) & (val ^ r.value) & 0x80) != 0
	rcarry = sum > 0xff

	return rcarry, overflow
}

// Subtract value from register. Returns carry and overflow states.
//
// The carry flag is an inverted borrow: it should be set before a subtraction
// with no borrow and is returned set if no borrow was needed.
func (r *Register) Subtract(val uint8, carry bool) (bool, bool) {
	return r.Add(^val, carry)
}
