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
	"strings"

	"github.com/jetsetilly/gopher6502/hardware/cpu/execution"
)

// EntryLevel describes the level of confidence in the Entry.
type EntryLevel int

// List of valid EntryLevel values.
const (
	// the byte is not a recognised opcode
	EntryLevelData EntryLevel = iota

	// the entry was decoded but has not been seen to execute
	EntryLevelDecoded

	// the CPU has executed the entry
	EntryLevelExecuted
)

func (l EntryLevel) String() string {
	switch l {
	case EntryLevelData:
		return "data"
	case EntryLevelDecoded:
		return "decoded"
	case EntryLevelExecuted:
		return "executed"
	}
	return "unknown level"
}

// Entry is a disassembled instruction.
type Entry struct {
	Level EntryLevel

	// the decoded instruction. the Defn field is nil for data entries.
	//
	// for decoded entries, EffectiveAddress is not set because it depends on
	// the state of the CPU at the time of execution
	Result execution.Result

	// the bytes of the instruction as they appear in memory
	ByteCode []uint8
}

// bytecode returns the ByteCode field as a string of hex values.
func (e Entry) bytecode() string {
	s := strings.Builder{}
	for i, b := range e.ByteCode {
		if i > 0 {
			s.WriteRune(' ')
		}
		s.WriteString(fmt.Sprintf("%02x", b))
	}
	return s.String()
}

func (e Entry) String() string {
	return e.Result.String()
}
