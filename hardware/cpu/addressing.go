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

import (
	"github.com/jetsetilly/gopher6502/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
)

// resolve returns the effective address for the addressing mode. The operand
// is read from memory starting at the current PC, which is not changed.
//
// The operand and the effective address are noted in LastResult along with
// any zero page wrap-around.
func (mc *CPU) resolve(mode instructions.AddressingMode) (uint16, error) {
	pc := mc.PC.Address()

	var address uint16

	switch mode {
	case instructions.Immediate:
		// the operand is the data. the address is where it is in memory
		mc.LastResult.InstructionData = uint16(mc.Mem.Read(pc))
		address = pc

	case instructions.ZeroPage:
		mc.LastResult.InstructionData = uint16(mc.Mem.Read(pc))
		address = mc.LastResult.InstructionData

	case instructions.ZeroPageIndexedX:
		address = mc.zeroPageIndexed(pc, mc.X.Value())

	case instructions.ZeroPageIndexedY:
		address = mc.zeroPageIndexed(pc, mc.Y.Value())

	case instructions.Absolute:
		mc.LastResult.InstructionData = mc.Mem.Read16(pc)
		address = mc.LastResult.InstructionData

	case instructions.AbsoluteIndexedX:
		mc.LastResult.InstructionData = mc.Mem.Read16(pc)
		address = mc.LastResult.InstructionData + mc.X.Address()

	case instructions.AbsoluteIndexedY:
		mc.LastResult.InstructionData = mc.Mem.Read16(pc)
		address = mc.LastResult.InstructionData + mc.Y.Address()

	case instructions.IndexedIndirect: // x indexing
		base := mc.Mem.Read(pc)
		mc.LastResult.InstructionData = uint16(base)

		// 8bit addition. the index never takes the pointer out of the zero page
		ptr := base + mc.X.Value()
		if uint16(base)+mc.X.Address() > 0xff {
			mc.LastResult.Bug = execution.ZeroPageIndexBug
		}
		address = mc.zeroPagePointer(ptr)

	case instructions.IndirectIndexed: // y indexing
		base := mc.Mem.Read(pc)
		mc.LastResult.InstructionData = uint16(base)
		address = mc.zeroPagePointer(base) + mc.Y.Address()

	default:
		return 0, &Fault{
			Kind:    InvalidAddressingMode,
			Opcode:  mc.Mem.Read(mc.LastResult.Address),
			Address: mc.LastResult.Address,
			Mode:    mode,
		}
	}

	mc.LastResult.EffectiveAddress = address

	return address, nil
}

// zeroPageIndexed reads the zero page operand at pc and adds the index,
// discarding any carry into the high byte.
func (mc *CPU) zeroPageIndexed(pc uint16, index uint8) uint16 {
	base := mc.Mem.Read(pc)
	mc.LastResult.InstructionData = uint16(base)

	if uint16(base)+uint16(index) > 0xff {
		mc.LastResult.Bug = execution.ZeroPageIndexBug
	}

	return uint16(base + index)
}

// zeroPagePointer reads the two byte pointer at ptr. The high byte is read
// from ptr+1 wrapped to the zero page, so a pointer at 0xff has its high byte
// at 0x00.
func (mc *CPU) zeroPagePointer(ptr uint8) uint16 {
	lo := mc.Mem.Read(uint16(ptr))
	hi := mc.Mem.Read(uint16(ptr + 1))
	if ptr == 0xff {
		mc.LastResult.Bug = execution.ZeroPagePointerBug
	}
	return (uint16(hi) << 8) | uint16(lo)
}
