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

// Package registers implements the three types of registers found in the CPU:
// the 8 bit Register used for A, X and Y; the 16 bit ProgramCounter; and the
// StatusRegister holding the processor flags.
//
// Registers do not touch the status register themselves. Operations that can
// carry or overflow return those conditions and the caller decides what to do
// with them. For example:
//
//	carry, overflow := a.Add(v, sr.Carry)
//	sr.Carry = carry
//	sr.Overflow = overflow
//	sr.SetZeroSign(a.Value())
package registers
