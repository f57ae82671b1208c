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

// Package disassembly decodes a region of memory into a list of instructions.
//
// Decoding is linear: every byte in the region is assumed to be the start of
// an instruction unless it is an operand of the instruction before it. Bytes
// that are not recognised as an opcode are included as data entries.
//
//	dsm, err := disassembly.FromMemory(mc.Mem, cpu.LoadOrigin, cpu.LoadOrigin+uint16(len(program))-1)
//	dsm.Write(os.Stdout, disassembly.WriteAttr{ByteCode: true})
//
// Decoding does not execute anything and memory is not changed. Entries can
// later be marked as executed with UpdateEntry(), using the LastResult field
// of the CPU.
package disassembly
