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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gopher6502/hardware/cpu"
	"github.com/jetsetilly/gopher6502/test"
)

// load creates a new CPU with the program loaded and the CPU reset. Registers
// and memory can be altered before calling run() or step().
func load(t *testing.T, program ...uint8) *cpu.CPU {
	t.Helper()
	mc := cpu.NewCPU()
	test.DemandSuccess(t, mc.Load(program))
	mc.Reset()
	test.DemandEquality(t, mc.PC.Address(), cpu.LoadOrigin)
	return mc
}

// step executes a single instruction and checks the result for consistency.
func step(t *testing.T, mc *cpu.CPU) {
	t.Helper()
	test.DemandSuccess(t, mc.ExecuteInstruction())
	test.DemandSuccess(t, mc.LastResult.IsValid())
}

// run executes the program until the BRK instruction.
func run(t *testing.T, mc *cpu.CPU) {
	t.Helper()
	test.DemandSuccess(t, mc.Run())
	test.DemandSuccess(t, mc.Halted)
}
