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
)

// resolveAddress converts an instruction's raw operand into the
// effective address for the instruction's addressing mode. It may read
// the bus (for the indirect modes) but never writes and never changes a
// register.
//
// Immediate and Accumulator mode instructions have no effective address;
// asking for one is a programming error in the execution routines and is
// reported as such.
func (mc *CPU) resolveAddress(inst Instruction) (uint16, error) {
	switch inst.Defn.AddressingMode {
	case instructions.Absolute:
		return inst.Operand, nil

	case instructions.AbsoluteX:
		// 16 bit wraparound is the natural overflow of the addition
		return inst.Operand + mc.X.Address(), nil

	case instructions.AbsoluteY:
		return inst.Operand + mc.Y.Address(), nil

	case instructions.Indirect:
		return mc.bus.Read16Bit(inst.Operand)

	case instructions.IndirectX:
		// the pointer stays in the zero page: the operand and the index
		// are added as 8 bit values
		ptr := uint8(inst.Operand) + mc.X.Value()
		return mc.bus.Read16Bit(uint16(ptr))

	case instructions.IndirectY:
		address, err := mc.bus.Read16Bit(inst.Operand)
		if err != nil {
			return 0, err
		}
		return address + mc.Y.Address(), nil

	case instructions.ZeroPage:
		return inst.Operand, nil

	case instructions.ZeroPageX:
		return uint16(uint8(inst.Operand) + mc.X.Value()), nil

	case instructions.ZeroPageY:
		return uint16(uint8(inst.Operand) + mc.Y.Value()), nil

	case instructions.Relative:
		// the program counter has already been advanced past the branch
		// instruction. the operand is a signed 8 bit offset from there
		return mc.PC.Address() + uint16(int8(inst.Operand)), nil
	}

	return 0, fmt.Errorf("cpu: cannot get address with %s addressing", inst.Defn.AddressingMode)
}

// resolveOperand returns the byte value an instruction operates on: the
// immediate operand itself in Immediate mode, the byte at the resolved
// effective address for every other mode.
func (mc *CPU) resolveOperand(inst Instruction) (uint8, error) {
	if inst.Defn.AddressingMode == instructions.Immediate {
		return uint8(inst.Operand), nil
	}

	address, err := mc.resolveAddress(inst)
	if err != nil {
		return 0, err
	}

	return mc.bus.Read(address)
}
