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

// Package instructions defines the instruction set understood by the CPU. Each
// opcode is described by a Definition: the operator it performs, the
// addressing mode of its operand and the number of bytes it occupies in
// memory.
//
// The definitions are held in a dense table indexed by opcode. Opcodes that
// are not implemented have a nil entry. Lookup() is the usual way of
// decoding an opcode.
package instructions
