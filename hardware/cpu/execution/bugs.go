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

package execution

// Bug notes address calculations that don't behave in the way a naive
// reading of the addressing mode suggests. These are not errors, the CPU is
// behaving correctly, but they can catch people out.
type Bug string

// List of noted bugs.
const (
	NoBug Bug = ""

	// the index has carried the address out of the zero page and the high
	// byte has been discarded
	ZeroPageIndexBug Bug = "zero page index bug"

	// the two byte pointer straddles the end of the zero page and the high
	// byte has been read from address 0x00
	ZeroPagePointerBug Bug = "zero page pointer bug"
)
