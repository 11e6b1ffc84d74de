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

	"github.com/jetsetilly/gopher6502/hardware/bus"
	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher6502/hardware/cpu/registers"
)

// ResetVector is the address of the little-endian 16 bit value loaded
// into the program counter by Reset().
const ResetVector = 0xfffc

// StackBase is the bottom of the architectural stack page. Reserved for
// the push/pop operators; none are implemented yet.
const StackBase = 0x0100

// CPU implements the 6502 instruction execution engine. Register logic
// is implemented by the types in the registers sub-package.
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.Register
	Status registers.StatusRegister

	// the CPU is the exclusive owner of its bus. backends are attached
	// through AttachBackend()
	bus *bus.Bus

	defns []*instructions.Definition

	// scratch register for operations on memory values
	acc8 registers.Register

	// last instruction decoded by Step(). diagnostic only
	LastResult Instruction
}

// NewCPU is the preferred method of initialisation for the CPU type. All
// registers are zeroed and the bus is empty.
func NewCPU() *CPU {
	return &CPU{
		PC:     registers.NewProgramCounter(0),
		A:      registers.NewRegister(0, "A"),
		X:      registers.NewRegister(0, "X"),
		Y:      registers.NewRegister(0, "Y"),
		SP:     registers.NewRegister(0, "SP"),
		Status: registers.NewStatusRegister(),
		bus:    bus.NewBus(),
		defns:  instructions.GetDefinitions(),
		acc8:   registers.NewRegister(0, "scratch"),
	}
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s %s %s %s %s=%s",
		mc.PC.Label(), mc.PC, mc.A, mc.X, mc.Y, mc.SP,
		mc.Status.Label(), mc.Status)
}

// AttachBackend binds an address range on the CPU's bus to a backend.
func (mc *CPU) AttachBackend(entry bus.Entry) {
	mc.bus.Attach(entry)
}

// ClearBackends removes every backend from the CPU's bus.
func (mc *CPU) ClearBackends() {
	mc.bus.Clear()
}

// Reset loads the program counter from the reset vector and puts the
// status register into its architectural power-on state.
func (mc *CPU) Reset() error {
	pc, err := mc.bus.Read16Bit(ResetVector)
	if err != nil {
		return err
	}
	mc.PC.Load(pc)
	mc.Status.FromValue(0x34)
	return nil
}

// CurrentInstruction decodes the instruction at the current program
// counter. It is a pure read: no registers are changed and no memory is
// written. The caller is responsible for advancing the program counter.
func (mc *CPU) CurrentInstruction() (Instruction, error) {
	code, err := mc.bus.Read(mc.PC.Address())
	if err != nil {
		return Instruction{}, err
	}

	defn := mc.defns[code]
	if defn == nil {
		return Instruction{}, fmt.Errorf("cpu: invalid opcode (%#02x) at (%#04x)", code, mc.PC.Address())
	}

	inst := Instruction{Defn: defn}

	switch defn.Bytes {
	case 2:
		operand, err := mc.bus.Read(mc.PC.Address() + 1)
		if err != nil {
			return Instruction{}, err
		}
		inst.Operand = uint16(operand)
	case 3:
		operand, err := mc.bus.Read16Bit(mc.PC.Address() + 1)
		if err != nil {
			return Instruction{}, err
		}
		inst.Operand = operand
	}

	return inst, nil
}

// Step executes the instruction at the current program counter: decode,
// advance the program counter past the instruction, execute.
//
// The program counter is advanced before execution so that branch
// instructions see the post-fetch program counter, as on real hardware.
//
// Any error means the instruction did not complete; the CPU should be
// considered to have stopped at the failing instruction.
func (mc *CPU) Step() error {
	inst, err := mc.CurrentInstruction()
	if err != nil {
		return err
	}

	mc.LastResult = inst
	mc.PC.Add(uint16(inst.Defn.Bytes))

	return mc.execute(inst)
}
