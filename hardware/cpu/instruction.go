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

// Instruction is a decoded instruction: a reference to the opcode's
// definition plus the raw operand value, before any addressing mode
// resolution has taken place.
//
// The operand is zero for one byte instructions; zero extended from the
// single operand byte for two byte instructions; and the little-endian
// composition of the two operand bytes for three byte instructions.
type Instruction struct {
	Defn    *instructions.Definition
	Operand uint16
}

func (inst Instruction) String() string {
	if inst.Defn == nil {
		return "undecoded instruction"
	}
	switch inst.Defn.Bytes {
	case 2:
		return fmt.Sprintf("%s %#02x", inst.Defn.Operator, inst.Operand)
	case 3:
		return fmt.Sprintf("%s %#04x", inst.Defn.Operator, inst.Operand)
	}
	return inst.Defn.Operator.String()
}
