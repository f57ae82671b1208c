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

package instructions

// AddressingMode describes the method by which the instruction finds the
// data it operates on.
type AddressingMode int

// List of supported addressing modes.
const (
	Implied AddressingMode = iota // no operand
	Immediate                     // #
	ZeroPage                      // zpg
	ZeroPageIndexedX              // zpg,X
	ZeroPageIndexedY              // zpg,Y
	Absolute                      // abs
	AbsoluteIndexedX              // abs,X
	AbsoluteIndexedY              // abs,Y
	IndexedIndirect               // (ind,X)
	IndirectIndexed               // (ind),Y
)

func (m AddressingMode) String() string {
	switch m {
	case Implied:
		return "Implied"
	case Immediate:
		return "Immediate"
	case ZeroPage:
		return "ZeroPage"
	case ZeroPageIndexedX:
		return "ZeroPageIndexedX"
	case ZeroPageIndexedY:
		return "ZeroPageIndexedY"
	case Absolute:
		return "Absolute"
	case AbsoluteIndexedX:
		return "AbsoluteIndexedX"
	case AbsoluteIndexedY:
		return "AbsoluteIndexedY"
	case IndexedIndirect:
		return "IndexedIndirect"
	case IndirectIndexed:
		return "IndirectIndexed"
	}
	return "unknown addressing mode"
}

// OperandBytes returns the number of bytes that follow the opcode for the
// addressing mode.
func (m AddressingMode) OperandBytes() int {
	switch m {
	case Immediate, ZeroPage, ZeroPageIndexedX, ZeroPageIndexedY, IndexedIndirect, IndirectIndexed:
		return 1
	case Absolute, AbsoluteIndexedX, AbsoluteIndexedY:
		return 2
	}
	return 0
}
