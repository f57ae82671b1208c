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
	"strings"

	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
)

// Result records the state/result of the most recent instruction.
type Result struct {
	// address of the opcode
	Address uint16

	// the definition of the instruction. nil if the opcode is not
	// implemented
	Defn *instructions.Definition

	// number of bytes read during decode, including the opcode
	ByteCount int

	// the operand as it appears in memory. a single byte for zero page and
	// immediate modes, a little-endian word for absolute modes
	InstructionData uint16

	// the address the instruction operated on. not used for implied
	// instructions
	EffectiveAddress uint16

	// noted wrap-around during address resolution
	Bug Bug

	// whether execution of the instruction completed
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

func (r Result) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("$%04x ", r.Address))

	if r.Defn == nil {
		s.WriteString("???")
		return s.String()
	}

	s.WriteString(r.Defn.Operator.String())

	if operand := r.operand(); operand != "" {
		s.WriteString(" ")
		s.WriteString(operand)
	}

	if r.Bug != NoBug {
		s.WriteString(fmt.Sprintf(" * %s *", r.Bug))
	}

	return s.String()
}

// operand returns the operand in conventional assembler notation.
func (r Result) operand() string {
	switch r.Defn.AddressingMode {
	case instructions.Immediate:
		return fmt.Sprintf("#$%02x", r.InstructionData)
	case instructions.ZeroPage:
		return fmt.Sprintf("$%02x", r.InstructionData)
	case instructions.ZeroPageIndexedX:
		return fmt.Sprintf("$%02x,X", r.InstructionData)
	case instructions.ZeroPageIndexedY:
		return fmt.Sprintf("$%02x,Y", r.InstructionData)
	case instructions.Absolute:
		return fmt.Sprintf("$%04x", r.InstructionData)
	case instructions.AbsoluteIndexedX:
		return fmt.Sprintf("$%04x,X", r.InstructionData)
	case instructions.AbsoluteIndexedY:
		return fmt.Sprintf("$%04x,Y", r.InstructionData)
	case instructions.IndexedIndirect:
		return fmt.Sprintf("($%02x,X)", r.InstructionData)
	case instructions.IndirectIndexed:
		return fmt.Sprintf("($%02x),Y", r.InstructionData)
	}
	return ""
}
