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

package cpu

// LoadOrigin is the address at which Load() places a program.
const LoadOrigin = uint16(0x8000)

// ResetVector is the address of the little-endian word from which Reset()
// loads the PC.
const ResetVector = uint16(0xfffc)

// MaxProgramSize is the largest program that fits between LoadOrigin and the
// top of memory.
const MaxProgramSize = 0x10000 - int(LoadOrigin)
