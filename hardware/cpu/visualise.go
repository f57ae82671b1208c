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
	"io"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopher6502/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6502/hardware/cpu/registers"
)

// Visualise writes a graphviz description of the registers and the most
// recent execution result to the io.Writer. Memory is not included.
//
// The output can be rendered with the dot tool:
//
//	dot -Tpng -o cpu.png
func (mc *CPU) Visualise(output io.Writer) {
	state := struct {
		PC         registers.ProgramCounter
		A          registers.Register
		X          registers.Register
		Y          registers.Register
		Status     registers.StatusRegister
		Halted     bool
		LastResult execution.Result
	}{
		PC:         mc.PC,
		A:          mc.A,
		X:          mc.X,
		Y:          mc.Y,
		Status:     mc.Status,
		Halted:     mc.Halted,
		LastResult: mc.LastResult,
	}

	memviz.Map(output, &state)
}
