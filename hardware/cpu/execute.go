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

	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher6502/hardware/cpu/registers"
	"github.com/jetsetilly/gopher6502/logger"
)

// execute dispatches a decoded instruction to its execution routine. The
// program counter has already been advanced past the instruction.
func (mc *CPU) execute(inst Instruction) error {
	switch inst.Defn.Operator {
	case instructions.Adc:
		return mc.adc(inst)

	case instructions.And:
		return mc.and(inst)

	case instructions.Asl:
		return mc.asl(inst)

	case instructions.Bcc:
		return mc.branch(!mc.Status.Carry, inst)

	case instructions.Bcs:
		return mc.branch(mc.Status.Carry, inst)

	case instructions.Beq:
		return mc.branch(mc.Status.Zero, inst)

	case instructions.Bmi:
		return mc.branch(mc.Status.Sign, inst)

	case instructions.Bne:
		return mc.branch(!mc.Status.Zero, inst)

	case instructions.Bpl:
		return mc.branch(!mc.Status.Sign, inst)

	case instructions.Bit:
		return mc.bit(inst)

	case instructions.Brk:
		// diagnostic stub: no stack push and no interrupt vector load
		logger.Logf("cpu", "BRK: %s", mc.String())
		return nil

	case instructions.Clc:
		mc.Status.Carry = false
		return nil

	case instructions.Cld:
		mc.Status.DecimalMode = false
		return nil

	case instructions.Cli:
		mc.Status.InterruptDisable = false
		return nil

	case instructions.Cmp:
		return mc.compare(mc.A, inst)

	case instructions.Cpx:
		return mc.compare(mc.X, inst)

	case instructions.Cpy:
		return mc.compare(mc.Y, inst)

	case instructions.Dec:
		return mc.dec(inst)

	case instructions.Dex:
		mc.X.Decrement()
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Sign = mc.X.IsNegative()
		return nil

	case instructions.Dey:
		mc.Y.Decrement()
		mc.Status.Zero = mc.Y.IsZero()
		mc.Status.Sign = mc.Y.IsNegative()
		return nil

	case instructions.Jmp:
		address, err := mc.resolveAddress(inst)
		if err != nil {
			return err
		}
		mc.PC.Load(address)
		return nil
	}

	return fmt.Errorf("cpu: %s is not implemented", inst.Defn.Operator)
}

func (mc *CPU) adc(inst Instruction) error {
	operand, err := mc.resolveOperand(inst)
	if err != nil {
		return err
	}

	carry, overflow := mc.A.Add(operand, mc.Status.Carry)
	mc.Status.Carry = carry
	mc.Status.Overflow = overflow
	mc.Status.Zero = mc.A.IsZero()
	mc.Status.Sign = mc.A.IsNegative()
	return nil
}

func (mc *CPU) and(inst Instruction) error {
	operand, err := mc.resolveOperand(inst)
	if err != nil {
		return err
	}

	mc.A.AND(operand)
	mc.Status.Zero = mc.A.IsZero()
	mc.Status.Sign = mc.A.IsNegative()
	return nil
}

func (mc *CPU) asl(inst Instruction) error {
	if inst.Defn.AddressingMode == instructions.Accumulator {
		mc.Status.Carry = mc.A.ASL()
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()
		return nil
	}

	address, err := mc.resolveAddress(inst)
	if err != nil {
		return err
	}
	value, err := mc.bus.Read(address)
	if err != nil {
		return err
	}

	mc.acc8.Load(value)
	mc.Status.Carry = mc.acc8.ASL()
	mc.Status.Zero = mc.acc8.IsZero()
	mc.Status.Sign = mc.acc8.IsNegative()

	return mc.bus.Write(address, mc.acc8.Value())
}

// branch loads the resolved relative address into the program counter if
// the condition holds. Branches never modify the status register.
func (mc *CPU) branch(condition bool, inst Instruction) error {
	if !condition {
		return nil
	}

	address, err := mc.resolveAddress(inst)
	if err != nil {
		return err
	}
	mc.PC.Load(address)
	return nil
}

func (mc *CPU) bit(inst Instruction) error {
	operand, err := mc.resolveOperand(inst)
	if err != nil {
		return err
	}

	mc.acc8.Load(operand)
	mc.Status.Zero = mc.A.Value()&operand == 0
	mc.Status.Overflow = mc.acc8.IsBitV()
	mc.Status.Sign = mc.acc8.IsNegative()
	return nil
}

// compare subtracts the operand from a copy of the register, setting the
// carry, zero and sign flags from the result. The register itself is
// unchanged.
func (mc *CPU) compare(r registers.Register, inst Instruction) error {
	operand, err := mc.resolveOperand(inst)
	if err != nil {
		return err
	}

	mc.acc8.Load(r.Value())
	carry, _ := mc.acc8.Subtract(operand, true)
	mc.Status.Carry = carry
	mc.Status.Zero = mc.acc8.IsZero()
	mc.Status.Sign = mc.acc8.IsNegative()
	return nil
}

func (mc *CPU) dec(inst Instruction) error {
	address, err := mc.resolveAddress(inst)
	if err != nil {
		return err
	}
	value, err := mc.bus.Read(address)
	if err != nil {
		return err
	}

	mc.acc8.Load(value)
	mc.acc8.Decrement()
	mc.Status.Zero = mc.acc8.IsZero()
	mc.Status.Sign = mc.acc8.IsNegative()

	return mc.bus.Write(address, mc.acc8.Value())
}
