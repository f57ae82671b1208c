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

// Package cpu emulates a subset of the 6502 microprocessor. Like all 8-bit
// processors of the era, the 6502 executes instructions according to the
// single byte value read from an address pointed to by the program counter.
// This single byte is the opcode and is looked up in the instruction table.
// The instruction definition for that opcode is then used to move execution
// of the program forward.
//
// The CPU owns its own 64KiB of memory. A program is placed in memory with
// Load(), which also points the reset vector at the start of the program.
// Reset() then prepares the registers and Run() executes instructions until a
// BRK instruction is reached.
//
//	mc := cpu.NewCPU()
//	err := mc.LoadAndRun([]uint8{0xa9, 0x05, 0x00})
//
// LoadAndRun() is a convenience for the three calls. Hosts that want to set
// up registers or memory before execution should call them separately.
//
// The bread-and-butter of the CPU type is the ExecuteInstruction() function,
// which executes exactly one instruction. Run() is a loop around it. After
// every instruction the LastResult field describes what was executed. Very
// useful for debuggers.
//
// Execution stops with an error if an opcode is encountered that the CPU does
// not implement. The error is of type *Fault and can be tested with
// errors.Is() against UnimplementedOpcode and InvalidAddressingMode. The
// state of the CPU at that point is exactly as the previous instruction left
// it, with the PC pointing at the faulting opcode.
package cpu
