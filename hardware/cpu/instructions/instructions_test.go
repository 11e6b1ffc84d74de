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

package instructions_test

import (
	"testing"

	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher6502/test"
)

func TestDefinitions_consistency(t *testing.T) {
	defns := instructions.GetDefinitions()
	test.Equate(t, len(defns), 256)

	count := 0
	for i, defn := range defns {
		if defn == nil {
			continue
		}
		count++

		if int(defn.OpCode) != i {
			t.Errorf("definition %s indexed at %02x", defn, i)
		}

		// the addressing mode implies the instruction length
		expectedBytes := 2
		switch defn.AddressingMode {
		case instructions.Implied, instructions.Accumulator:
			expectedBytes = 1
		case instructions.Absolute, instructions.AbsoluteX, instructions.AbsoluteY, instructions.Indirect:
			expectedBytes = 3
		}
		test.Equate(t, defn.Bytes, expectedBytes)

		if defn.IsBranch() {
			test.Equate(t, defn.Bytes, 2)
		}
	}

	// the documented 6502 instruction set
	test.Equate(t, count, 151)
}

func TestDefinitions_spotChecks(t *testing.T) {
	defns := instructions.GetDefinitions()

	test.Equate(t, defns[0x69].Operator.String(), "ADC")
	test.Equate(t, defns[0x69].AddressingMode.String(), "Immediate")
	test.Equate(t, defns[0x69].Bytes, 2)

	test.Equate(t, defns[0x4c].Operator.String(), "JMP")
	test.Equate(t, defns[0x4c].Bytes, 3)

	test.Equate(t, defns[0x00].Operator.String(), "BRK")
	test.Equate(t, defns[0x00].Bytes, 1)

	test.Equate(t, defns[0x88].Operator.String(), "DEY")
	test.Equate(t, defns[0xca].Operator.String(), "DEX")

	// 0x02 is an undocumented opcode
	if defns[0x02] != nil {
		t.Errorf("expected no definition for opcode 02")
	}
}
