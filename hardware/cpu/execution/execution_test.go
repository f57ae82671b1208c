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

package execution_test

import (
	"testing"

	"github.com/jetsetilly/gopher6502/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher6502/test"
)

func TestResultString(t *testing.T) {
	var r execution.Result

	r.Address = 0x8000
	test.ExpectEquality(t, r.String(), "$8000 ???")

	r.Defn = instructions.Lookup(0xa9)
	r.InstructionData = 0x05
	test.ExpectEquality(t, r.String(), "$8000 LDA #$05")

	r.Defn = instructions.Lookup(0x00)
	r.InstructionData = 0
	test.ExpectEquality(t, r.String(), "$8000 BRK")

	r.Defn = instructions.Lookup(0x9d)
	r.InstructionData = 0x2000
	test.ExpectEquality(t, r.String(), "$8000 STA $2000,X")

	r.Defn = instructions.Lookup(0xb1)
	r.InstructionData = 0xff
	r.Bug = execution.ZeroPagePointerBug
	test.ExpectEquality(t, r.String(), "$8000 LDA ($ff),Y * zero page pointer bug *")

	r.Defn = instructions.Lookup(0x81)
	r.InstructionData = 0x10
	r.Bug = execution.NoBug
	test.ExpectEquality(t, r.String(), "$8000 STA ($10,X)")

	r.Reset()
	test.ExpectEquality(t, r.String(), "$0000 ???")
}

func TestResultValidity(t *testing.T) {
	var r execution.Result

	// not finalised
	test.ExpectFailure(t, r.IsValid())

	r.Final = true
	test.ExpectFailure(t, r.IsValid())

	r.Defn = instructions.Lookup(0xb5)
	r.ByteCount = 2
	r.InstructionData = 0xf0
	test.ExpectSuccess(t, r.IsValid())

	r.Bug = execution.ZeroPageIndexBug
	test.ExpectSuccess(t, r.IsValid())

	// wrong bug for addressing mode
	r.Bug = execution.ZeroPagePointerBug
	test.ExpectFailure(t, r.IsValid())
	r.Bug = execution.NoBug

	// byte count doesn't match definition
	r.ByteCount = 3
	test.ExpectFailure(t, r.IsValid())
	r.ByteCount = 2

	// operand too big for a zero page instruction
	r.InstructionData = 0x1ff
	test.ExpectFailure(t, r.IsValid())
}
