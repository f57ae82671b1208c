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

import "fmt"

// Definition defines each instruction in the instruction set; one per opcode.
type Definition struct {
	OpCode         uint8
	Operator       Operator
	Bytes          int
	AddressingMode AddressingMode
	Effect         EffectCategory
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	return fmt.Sprintf("%02x %s +%dbytes [mode=%s effect=%s]", defn.OpCode, defn.Operator, defn.Bytes, defn.AddressingMode, defn.Effect)
}

// Lookup returns the definition for the opcode. Returns nil if the opcode is
// not implemented.
func Lookup(opcode uint8) *Definition {
	return table[opcode]
}

// GetDefinitions returns the table of instruction definitions indexed by
// opcode. Entries for unimplemented opcodes are nil.
func GetDefinitions() []*Definition {
	defs := make([]*Definition, len(table))
	copy(defs, table[:])
	return defs
}
