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
	"errors"
	"fmt"

	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
)

// Sentinel errors. Faults returned by ExecuteInstruction() and Run() match
// one of UnimplementedOpcode or InvalidAddressingMode when tested with
// errors.Is().
var (
	UnimplementedOpcode   = errors.New("cpu: unimplemented opcode")
	InvalidAddressingMode = errors.New("cpu: invalid addressing mode")
	ProgramTooLarge       = errors.New("cpu: program too large")
)

// Fault describes the condition that stopped execution.
type Fault struct {
	// one of UnimplementedOpcode or InvalidAddressingMode
	Kind error

	// the opcode and the address it was read from
	Opcode  uint8
	Address uint16

	// the addressing mode being resolved. only meaningful for
	// InvalidAddressingMode
	Mode instructions.AddressingMode
}

func (f *Fault) Error() string {
	if f.Kind == InvalidAddressingMode {
		return fmt.Sprintf("%v (%s) for opcode %#02x at %#04x", f.Kind, f.Mode, f.Opcode, f.Address)
	}
	return fmt.Sprintf("%v (%#02x) at %#04x", f.Kind, f.Opcode, f.Address)
}

// Is implements the errors.Is() interface.
func (f *Fault) Is(target error) bool {
	return target == f.Kind
}
