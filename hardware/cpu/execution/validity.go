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

import (
	"fmt"

	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
)

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
func (r Result) IsValid() error {
	if !r.Final {
		return fmt.Errorf("cpu: execution not finalised (bad opcode?)")
	}

	if r.Defn == nil {
		return fmt.Errorf("cpu: finalised execution has no instruction definition")
	}

	// byte count
	if r.ByteCount != r.Defn.Bytes {
		return fmt.Errorf("cpu: unexpected number of bytes read during decode (%d instead of %d)", r.ByteCount, r.Defn.Bytes)
	}

	// operand must fit in the number of bytes read
	if r.Defn.AddressingMode.OperandBytes() < 2 && r.InstructionData > 0xff {
		return fmt.Errorf("cpu: instruction data too large for addressing mode (%#04x for %s)", r.InstructionData, r.Defn.AddressingMode)
	}

	// bugs can only happen in the zero page
	switch r.Bug {
	case NoBug:
	case ZeroPageIndexBug:
		switch r.Defn.AddressingMode {
		case instructions.ZeroPageIndexedX, instructions.ZeroPageIndexedY, instructions.IndexedIndirect:
		default:
			return fmt.Errorf("cpu: unexpected bug for %s addressing (%s)", r.Defn.AddressingMode, r.Bug)
		}
	case ZeroPagePointerBug:
		if r.Defn.AddressingMode != instructions.IndexedIndirect && r.Defn.AddressingMode != instructions.IndirectIndexed {
			return fmt.Errorf("cpu: unexpected bug for %s addressing (%s)", r.Defn.AddressingMode, r.Bug)
		}
	default:
		return fmt.Errorf("cpu: unknown bug (%s)", r.Bug)
	}

	return nil
}
