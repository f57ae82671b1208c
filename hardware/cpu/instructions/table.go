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

// the instruction table. the number of bytes for each entry is always one
// more than the number of operand bytes for the addressing mode.
var table = [256]*Definition{
	0x00: {OpCode: 0x00, Operator: Brk, Bytes: 1, AddressingMode: Implied, Effect: Interrupt},

	0x69: {OpCode: 0x69, Operator: Adc, Bytes: 2, AddressingMode: Immediate, Effect: Read},
	0xe9: {OpCode: 0xe9, Operator: Sbc, Bytes: 2, AddressingMode: Immediate, Effect: Read},

	0xa9: {OpCode: 0xa9, Operator: Lda, Bytes: 2, AddressingMode: Immediate, Effect: Read},
	0xa5: {OpCode: 0xa5, Operator: Lda, Bytes: 2, AddressingMode: ZeroPage, Effect: Read},
	0xb5: {OpCode: 0xb5, Operator: Lda, Bytes: 2, AddressingMode: ZeroPageIndexedX, Effect: Read},
	0xad: {OpCode: 0xad, Operator: Lda, Bytes: 3, AddressingMode: Absolute, Effect: Read},
	0xbd: {OpCode: 0xbd, Operator: Lda, Bytes: 3, AddressingMode: AbsoluteIndexedX, Effect: Read},
	0xb9: {OpCode: 0xb9, Operator: Lda, Bytes: 3, AddressingMode: AbsoluteIndexedY, Effect: Read},
	0xa1: {OpCode: 0xa1, Operator: Lda, Bytes: 2, AddressingMode: IndexedIndirect, Effect: Read},
	0xb1: {OpCode: 0xb1, Operator: Lda, Bytes: 2, AddressingMode: IndirectIndexed, Effect: Read},

	0x85: {OpCode: 0x85, Operator: Sta, Bytes: 2, AddressingMode: ZeroPage, Effect: Write},
	0x95: {OpCode: 0x95, Operator: Sta, Bytes: 2, AddressingMode: ZeroPageIndexedX, Effect: Write},
	0x8d: {OpCode: 0x8d, Operator: Sta, Bytes: 3, AddressingMode: Absolute, Effect: Write},
	0x9d: {OpCode: 0x9d, Operator: Sta, Bytes: 3, AddressingMode: AbsoluteIndexedX, Effect: Write},
	0x99: {OpCode: 0x99, Operator: Sta, Bytes: 3, AddressingMode: AbsoluteIndexedY, Effect: Write},
	0x81: {OpCode: 0x81, Operator: Sta, Bytes: 2, AddressingMode: IndexedIndirect, Effect: Write},
	0x91: {OpCode: 0x91, Operator: Sta, Bytes: 2, AddressingMode: IndirectIndexed, Effect: Write},

	0xaa: {OpCode: 0xaa, Operator: Tax, Bytes: 1, AddressingMode: Implied, Effect: Read},
	0xe8: {OpCode: 0xe8, Operator: Inx, Bytes: 1, AddressingMode: Implied, Effect: Read},
}
