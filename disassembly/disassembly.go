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

package disassembly

import (
	"fmt"

	"github.com/jetsetilly/gopher6502/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher6502/hardware/memory"
	"github.com/jetsetilly/gopher6502/logger"
)

// Disassembly represents the decoded instructions of a region of memory.
type Disassembly struct {
	Entries []Entry

	// index into Entries by address. only the first byte of an instruction
	// is indexed
	byAddress map[uint16]int
}

// FromMemory decodes memory between from and to (inclusive). The final
// instruction may have operand bytes beyond to.
func FromMemory(mem *memory.Memory, from uint16, to uint16) (*Disassembly, error) {
	if to < from {
		return nil, fmt.Errorf("disassembly: range is backwards (%#04x to %#04x)", from, to)
	}

	dsm := &Disassembly{
		byAddress: make(map[uint16]int),
	}

	address := int(from)
	for address <= int(to) {
		e := decode(mem, uint16(address))
		dsm.byAddress[uint16(address)] = len(dsm.Entries)
		dsm.Entries = append(dsm.Entries, e)
		address += len(e.ByteCode)
	}

	logger.Logf(logger.Allow, "disassembly", "%d entries from %#04x to %#04x", len(dsm.Entries), from, to)

	return dsm, nil
}

// decode the instruction at address. the address of an operand wraps to
// 0x0000 at the top of memory.
func decode(mem *memory.Memory, address uint16) Entry {
	opcode := mem.Read(address)

	e := Entry{
		Level: EntryLevelData,
		Result: execution.Result{
			Address:   address,
			ByteCount: 1,
		},
		ByteCode: []uint8{opcode},
	}

	defn := instructions.Lookup(opcode)
	if defn == nil {
		return e
	}

	e.Level = EntryLevelDecoded
	e.Result.Defn = defn
	e.Result.Final = true

	switch defn.AddressingMode.OperandBytes() {
	case 1:
		e.Result.InstructionData = uint16(mem.Read(address + 1))
	case 2:
		e.Result.InstructionData = mem.Read16(address + 1)
	}

	for i := 1; i < defn.Bytes; i++ {
		e.ByteCode = append(e.ByteCode, mem.Read(address+uint16(i)))
	}
	e.Result.ByteCount = defn.Bytes

	return e
}

// GetEntryByAddress returns the entry for the instruction starting at the
// address.
func (dsm *Disassembly) GetEntryByAddress(address uint16) (*Entry, bool) {
	i, ok := dsm.byAddress[address]
	if !ok {
		return nil, false
	}
	return &dsm.Entries[i], true
}

// UpdateEntry marks the entry at the address of the result as executed and
// replaces the decoded result with the result of the execution.
func (dsm *Disassembly) UpdateEntry(result execution.Result) error {
	if !result.Final {
		return fmt.Errorf("disassembly: cannot update entry with unfinalised result (%#04x)", result.Address)
	}

	e, ok := dsm.GetEntryByAddress(result.Address)
	if !ok {
		return fmt.Errorf("disassembly: no entry for address %#04x", result.Address)
	}

	if e.Result.Defn != result.Defn {
		return fmt.Errorf("disassembly: executed instruction does not match entry at %#04x", result.Address)
	}

	e.Level = EntryLevelExecuted
	e.Result = result

	return nil
}
