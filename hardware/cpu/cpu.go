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
	"fmt"

	"github.com/jetsetilly/gopher6502/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher6502/hardware/cpu/registers"
	"github.com/jetsetilly/gopher6502/hardware/memory"
	"github.com/jetsetilly/gopher6502/logger"
)

// CPU implements a subset of the 6502. Register logic is implemented by the
// types in the registers sub-package.
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	Status registers.StatusRegister

	// the 64KiB address space. owned by the CPU instance
	Mem *memory.Memory

	// last result. describes the most recent instruction, including an
	// instruction that caused a fault
	LastResult execution.Result

	// NoFlowControl sets whether the cpu halts on a BRK instruction. if true
	// then BRK is executed like any other single byte instruction and
	// execution continues with the next byte. Run() still returns after
	// executing a BRK.
	NoFlowControl bool

	// the cpu has encountered a BRK instruction. requires a Reset()
	Halted bool
}

// NewCPU is the preferred method of initialisation for the CPU structure. All
// registers and memory are zero.
func NewCPU() *CPU {
	return &CPU{
		PC:     registers.NewProgramCounter(0),
		A:      registers.NewRegister(0, "A"),
		X:      registers.NewRegister(0, "X"),
		Y:      registers.NewRegister(0, "Y"),
		Status: registers.NewStatusRegister(),
		Mem:    memory.NewMemory(),
	}
}

// Snapshot creates a copy of the CPU in its current state. Memory is copied
// too, so the snapshot is independent of the original.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	n.Mem = mc.Mem.Snapshot()
	return &n
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s %s %s %s=%s",
		mc.PC.Label(), mc.PC, mc.A, mc.X, mc.Y,
		mc.Status.Label(), mc.Status)
}

// Load copies the program into memory at LoadOrigin and points the reset
// vector at it. Memory is not changed if the program is larger than
// MaxProgramSize.
func (mc *CPU) Load(program []uint8) error {
	if len(program) > MaxProgramSize {
		return fmt.Errorf("%w: %d bytes (maximum is %d)", ProgramTooLarge, len(program), MaxProgramSize)
	}

	if err := mc.Mem.Load(LoadOrigin, program); err != nil {
		return fmt.Errorf("cpu: %w", err)
	}
	mc.Mem.Write16(ResetVector, LoadOrigin)

	logger.Logf(mc, "CPU", "loaded %d bytes at %#04x", len(program), LoadOrigin)

	return nil
}

// Reset zeroes the A, X and Y registers and the status register. The PC is
// loaded from the reset vector.
func (mc *CPU) Reset() {
	mc.LastResult.Reset()
	mc.Halted = false

	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.Status.Reset()
	mc.PC.Load(mc.Mem.Read16(ResetVector))
}

// LoadAndRun loads the program, resets the CPU and runs it.
func (mc *CPU) LoadAndRun(program []uint8) error {
	if err := mc.Load(program); err != nil {
		return err
	}
	mc.Reset()
	return mc.Run()
}

// Run executes instructions until a BRK instruction is reached or until an
// instruction faults. Returns immediately if the CPU is already halted.
func (mc *CPU) Run() error {
	for !mc.Halted {
		if err := mc.ExecuteInstruction(); err != nil {
			return err
		}
		if mc.NoFlowControl && mc.LastResult.Defn.Operator == instructions.Brk {
			break
		}
	}
	return nil
}

// ExecuteInstruction steps CPU forward one instruction:
//
//  1. read opcode and look up instruction definition
//  2. resolve the effective address according to the addressing mode
//  3. using the operator as a guide, perform the instruction on the data
//  4. move the PC past any operand bytes
//
// If the opcode is not implemented, the PC is left pointing at it and a
// *Fault is returned. Nothing else in the CPU is changed. Does nothing if the
// CPU is halted.
func (mc *CPU) ExecuteInstruction() error {
	if mc.Halted {
		return nil
	}

	// prepare new round of results
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	opcode := mc.Mem.Read(mc.PC.Address())
	mc.PC.Add(1)
	mc.LastResult.ByteCount = 1

	defn := instructions.Lookup(opcode)
	if defn == nil {
		return mc.fault(&Fault{
			Kind:    UnimplementedOpcode,
			Opcode:  opcode,
			Address: mc.LastResult.Address,
		})
	}
	mc.LastResult.Defn = defn

	var address uint16
	if defn.AddressingMode != instructions.Implied {
		var err error
		address, err = mc.resolve(defn.AddressingMode)
		if err != nil {
			return mc.fault(err)
		}
	}

	switch defn.Operator {
	case instructions.Brk:
		if !mc.NoFlowControl {
			mc.Halted = true
			logger.Logf(mc, "CPU", "BRK instruction (%#04x)", mc.LastResult.Address)
		}

	case instructions.Lda:
		mc.A.Load(mc.Mem.Read(address))
		mc.Status.SetZeroSign(mc.A.Value())

	case instructions.Sta:
		mc.Mem.Write(address, mc.A.Value())

	case instructions.Tax:
		mc.X.Load(mc.A.Value())
		mc.Status.SetZeroSign(mc.X.Value())

	case instructions.Inx:
		mc.X.Increment()
		mc.Status.SetZeroSign(mc.X.Value())

	case instructions.Adc:
		// decimal mode is not supported. the DecimalMode flag is ignored
		mc.Status.Carry, mc.Status.Overflow = mc.A.Add(mc.Mem.Read(address), mc.Status.Carry)
		mc.Status.SetZeroSign(mc.A.Value())

	case instructions.Sbc:
		mc.Status.Carry, mc.Status.Overflow = mc.A.Subtract(mc.Mem.Read(address), mc.Status.Carry)
		mc.Status.SetZeroSign(mc.A.Value())

	default:
		return mc.fault(&Fault{
			Kind:    UnimplementedOpcode,
			Opcode:  opcode,
			Address: mc.LastResult.Address,
		})
	}

	operandBytes := defn.AddressingMode.OperandBytes()
	mc.PC.Add(uint16(operandBytes))
	mc.LastResult.ByteCount += operandBytes
	mc.LastResult.Final = true

	return nil
}

// AllowLogging implements the logger.Permission interface. A CPU that is not
// honouring flow control is probably being used to inspect a program and
// shouldn't be filling the log.
func (mc *CPU) AllowLogging() bool {
	return !mc.NoFlowControl
}

// fault rewinds the PC to the start of the current instruction and logs the
// fault before returning it.
func (mc *CPU) fault(err error) error {
	mc.PC.Load(mc.LastResult.Address)
	logger.Log(mc, "CPU", err.Error())
	return err
}
