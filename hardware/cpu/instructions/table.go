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

package instructions

// the addressing mode defines how many bytes an instruction requires
func bytesForMode(mode AddressingMode) int {
	switch mode {
	case Implied, Accumulator:
		return 1
	case Absolute, AbsoluteX, AbsoluteY, Indirect:
		return 3
	}
	return 2
}

// GetDefinitions returns the table of instruction definitions for the
// 6502, indexed by opcode byte. Bytes with no documented instruction
// index a nil definition.
func GetDefinitions() []*Definition {
	defs := []*Definition{
		{OpCode: 0x69, Operator: Adc, AddressingMode: Immediate},
		{OpCode: 0x65, Operator: Adc, AddressingMode: ZeroPage},
		{OpCode: 0x75, Operator: Adc, AddressingMode: ZeroPageX},
		{OpCode: 0x6d, Operator: Adc, AddressingMode: Absolute},
		{OpCode: 0x7d, Operator: Adc, AddressingMode: AbsoluteX},
		{OpCode: 0x79, Operator: Adc, AddressingMode: AbsoluteY},
		{OpCode: 0x61, Operator: Adc, AddressingMode: IndirectX},
		{OpCode: 0x71, Operator: Adc, AddressingMode: IndirectY},

		{OpCode: 0x29, Operator: And, AddressingMode: Immediate},
		{OpCode: 0x25, Operator: And, AddressingMode: ZeroPage},
		{OpCode: 0x35, Operator: And, AddressingMode: ZeroPageX},
		{OpCode: 0x2d, Operator: And, AddressingMode: Absolute},
		{OpCode: 0x3d, Operator: And, AddressingMode: AbsoluteX},
		{OpCode: 0x39, Operator: And, AddressingMode: AbsoluteY},
		{OpCode: 0x21, Operator: And, AddressingMode: IndirectX},
		{OpCode: 0x31, Operator: And, AddressingMode: IndirectY},

		{OpCode: 0x0a, Operator: Asl, AddressingMode: Accumulator},
		{OpCode: 0x06, Operator: Asl, AddressingMode: ZeroPage},
		{OpCode: 0x16, Operator: Asl, AddressingMode: ZeroPageX},
		{OpCode: 0x0e, Operator: Asl, AddressingMode: Absolute},
		{OpCode: 0x1e, Operator: Asl, AddressingMode: AbsoluteX},

		{OpCode: 0x90, Operator: Bcc, AddressingMode: Relative},
		{OpCode: 0xb0, Operator: Bcs, AddressingMode: Relative},
		{OpCode: 0xf0, Operator: Beq, AddressingMode: Relative},
		{OpCode: 0x30, Operator: Bmi, AddressingMode: Relative},
		{OpCode: 0xd0, Operator: Bne, AddressingMode: Relative},
		{OpCode: 0x10, Operator: Bpl, AddressingMode: Relative},
		{OpCode: 0x50, Operator: Bvc, AddressingMode: Relative},
		{OpCode: 0x70, Operator: Bvs, AddressingMode: Relative},

		{OpCode: 0x24, Operator: Bit, AddressingMode: ZeroPage},
		{OpCode: 0x2c, Operator: Bit, AddressingMode: Absolute},

		{OpCode: 0x00, Operator: Brk, AddressingMode: Implied},

		{OpCode: 0x18, Operator: Clc, AddressingMode: Implied},
		{OpCode: 0xd8, Operator: Cld, AddressingMode: Implied},
		{OpCode: 0x58, Operator: Cli, AddressingMode: Implied},
		{OpCode: 0xb8, Operator: Clv, AddressingMode: Implied},

		{OpCode: 0xc9, Operator: Cmp, AddressingMode: Immediate},
		{OpCode: 0xc5, Operator: Cmp, AddressingMode: ZeroPage},
		{OpCode: 0xd5, Operator: Cmp, AddressingMode: ZeroPageX},
		{OpCode: 0xcd, Operator: Cmp, AddressingMode: Absolute},
		{OpCode: 0xdd, Operator: Cmp, AddressingMode: AbsoluteX},
		{OpCode: 0xd9, Operator: Cmp, AddressingMode: AbsoluteY},
		{OpCode: 0xc1, Operator: Cmp, AddressingMode: IndirectX},
		{OpCode: 0xd1, Operator: Cmp, AddressingMode: IndirectY},

		{OpCode: 0xe0, Operator: Cpx, AddressingMode: Immediate},
		{OpCode: 0xe4, Operator: Cpx, AddressingMode: ZeroPage},
		{OpCode: 0xec, Operator: Cpx, AddressingMode: Absolute},

		{OpCode: 0xc0, Operator: Cpy, AddressingMode: Immediate},
		{OpCode: 0xc4, Operator: Cpy, AddressingMode: ZeroPage},
		{OpCode: 0xcc, Operator: Cpy, AddressingMode: Absolute},

		{OpCode: 0xc6, Operator: Dec, AddressingMode: ZeroPage},
		{OpCode: 0xd6, Operator: Dec, AddressingMode: ZeroPageX},
		{OpCode: 0xce, Operator: Dec, AddressingMode: Absolute},
		{OpCode: 0xde, Operator: Dec, AddressingMode: AbsoluteX},

		{OpCode: 0xca, Operator: Dex, AddressingMode: Implied},
		{OpCode: 0x88, Operator: Dey, AddressingMode: Implied},

		{OpCode: 0x49, Operator: Eor, AddressingMode: Immediate},
		{OpCode: 0x45, Operator: Eor, AddressingMode: ZeroPage},
		{OpCode: 0x55, Operator: Eor, AddressingMode: ZeroPageX},
		{OpCode: 0x4d, Operator: Eor, AddressingMode: Absolute},
		{OpCode: 0x5d, Operator: Eor, AddressingMode: AbsoluteX},
		{OpCode: 0x59, Operator: Eor, AddressingMode: AbsoluteY},
		{OpCode: 0x41, Operator: Eor, AddressingMode: IndirectX},
		{OpCode: 0x51, Operator: Eor, AddressingMode: IndirectY},

		{OpCode: 0xe6, Operator: Inc, AddressingMode: ZeroPage},
		{OpCode: 0xf6, Operator: Inc, AddressingMode: ZeroPageX},
		{OpCode: 0xee, Operator: Inc, AddressingMode: Absolute},
		{OpCode: 0xfe, Operator: Inc, AddressingMode: AbsoluteX},

		{OpCode: 0xe8, Operator: Inx, AddressingMode: Implied},
		{OpCode: 0xc8, Operator: Iny, AddressingMode: Implied},

		{OpCode: 0x4c, Operator: Jmp, AddressingMode: Absolute},
		{OpCode: 0x6c, Operator: Jmp, AddressingMode: Indirect},

		{OpCode: 0x20, Operator: Jsr, AddressingMode: Absolute},

		{OpCode: 0xa9, Operator: Lda, AddressingMode: Immediate},
		{OpCode: 0xa5, Operator: Lda, AddressingMode: ZeroPage},
		{OpCode: 0xb5, Operator: Lda, AddressingMode: ZeroPageX},
		{OpCode: 0xad, Operator: Lda, AddressingMode: Absolute},
		{OpCode: 0xbd, Operator: Lda, AddressingMode: AbsoluteX},
		{OpCode: 0xb9, Operator: Lda, AddressingMode: AbsoluteY},
		{OpCode: 0xa1, Operator: Lda, AddressingMode: IndirectX},
		{OpCode: 0xb1, Operator: Lda, AddressingMode: IndirectY},

		{OpCode: 0xa2, Operator: Ldx, AddressingMode: Immediate},
		{OpCode: 0xa6, Operator: Ldx, AddressingMode: ZeroPage},
		{OpCode: 0xb6, Operator: Ldx, AddressingMode: ZeroPageY},
		{OpCode: 0xae, Operator: Ldx, AddressingMode: Absolute},
		{OpCode: 0xbe, Operator: Ldx, AddressingMode: AbsoluteY},

		{OpCode: 0xa0, Operator: Ldy, AddressingMode: Immediate},
		{OpCode: 0xa4, Operator: Ldy, AddressingMode: ZeroPage},
		{OpCode: 0xb4, Operator: Ldy, AddressingMode: ZeroPageX},
		{OpCode: 0xac, Operator: Ldy, AddressingMode: Absolute},
		{OpCode: 0xbc, Operator: Ldy, AddressingMode: AbsoluteX},

		{OpCode: 0x4a, Operator: Lsr, AddressingMode: Accumulator},
		{OpCode: 0x46, Operator: Lsr, AddressingMode: ZeroPage},
		{OpCode: 0x56, Operator: Lsr, AddressingMode: ZeroPageX},
		{OpCode: 0x4e, Operator: Lsr, AddressingMode: Absolute},
		{OpCode: 0x5e, Operator: Lsr, AddressingMode: AbsoluteX},

		{OpCode: 0xea, Operator: Nop, AddressingMode: Implied},

		{OpCode: 0x09, Operator: Ora, AddressingMode: Immediate},
		{OpCode: 0x05, Operator: Ora, AddressingMode: ZeroPage},
		{OpCode: 0x15, Operator: Ora, AddressingMode: ZeroPageX},
		{OpCode: 0x0d, Operator: Ora, AddressingMode: Absolute},
		{OpCode: 0x1d, Operator: Ora, AddressingMode: AbsoluteX},
		{OpCode: 0x19, Operator: Ora, AddressingMode: AbsoluteY},
		{OpCode: 0x01, Operator: Ora, AddressingMode: IndirectX},
		{OpCode: 0x11, Operator: Ora, AddressingMode: IndirectY},

		{OpCode: 0x48, Operator: Pha, AddressingMode: Implied},
		{OpCode: 0x08, Operator: Php, AddressingMode: Implied},
		{OpCode: 0x68, Operator: Pla, AddressingMode: Implied},
		{OpCode: 0x28, Operator: Plp, AddressingMode: Implied},

		{OpCode: 0x2a, Operator: Rol, AddressingMode: Accumulator},
		{OpCode: 0x26, Operator: Rol, AddressingMode: ZeroPage},
		{OpCode: 0x36, Operator: Rol, AddressingMode: ZeroPageX},
		{OpCode: 0x2e, Operator: Rol, AddressingMode: Absolute},
		{OpCode: 0x3e, Operator: Rol, AddressingMode: AbsoluteX},

		{OpCode: 0x6a, Operator: Ror, AddressingMode: Accumulator},
		{OpCode: 0x66, Operator: Ror, AddressingMode: ZeroPage},
		{OpCode: 0x76, Operator: Ror, AddressingMode: ZeroPageX},
		{OpCode: 0x6e, Operator: Ror, AddressingMode: Absolute},
		{OpCode: 0x7e, Operator: Ror, AddressingMode: AbsoluteX},

		{OpCode: 0x40, Operator: Rti, AddressingMode: Implied},
		{OpCode: 0x60, Operator: Rts, AddressingMode: Implied},

		{OpCode: 0xe9, Operator: Sbc, AddressingMode: Immediate},
		{OpCode: 0xe5, Operator: Sbc, AddressingMode: ZeroPage},
		{OpCode: 0xf5, Operator: Sbc, AddressingMode: ZeroPageX},
		{OpCode: 0xed, Operator: Sbc, AddressingMode: Absolute},
		{OpCode: 0xfd, Operator: Sbc, AddressingMode: AbsoluteX},
		{OpCode: 0xf9, Operator: Sbc, AddressingMode: AbsoluteY},
		{OpCode: 0xe1, Operator: Sbc, AddressingMode: IndirectX},
		{OpCode: 0xf1, Operator: Sbc, AddressingMode: IndirectY},

		{OpCode: 0x38, Operator: Sec, AddressingMode: Implied},
		{OpCode: 0xf8, Operator: Sed, AddressingMode: Implied},
		{OpCode: 0x78, Operator: Sei, AddressingMode: Implied},

		{OpCode: 0x85, Operator: Sta, AddressingMode: ZeroPage},
		{OpCode: 0x95, Operator: Sta, AddressingMode: ZeroPageX},
		{OpCode: 0x8d, Operator: Sta, AddressingMode: Absolute},
		{OpCode: 0x9d, Operator: Sta, AddressingMode: AbsoluteX},
		{OpCode: 0x99, Operator: Sta, AddressingMode: AbsoluteY},
		{OpCode: 0x81, Operator: Sta, AddressingMode: IndirectX},
		{OpCode: 0x91, Operator: Sta, AddressingMode: IndirectY},

		{OpCode: 0x86, Operator: Stx, AddressingMode: ZeroPage},
		{OpCode: 0x96, Operator: Stx, AddressingMode: ZeroPageY},
		{OpCode: 0x8e, Operator: Stx, AddressingMode: Absolute},

		{OpCode: 0x84, Operator: Sty, AddressingMode: ZeroPage},
		{OpCode: 0x94, Operator: Sty, AddressingMode: ZeroPageX},
		{OpCode: 0x8c, Operator: Sty, AddressingMode: Absolute},

		{OpCode: 0xaa, Operator: Tax, AddressingMode: Implied},
		{OpCode: 0xa8, Operator: Tay, AddressingMode: Implied},
		{OpCode: 0xba, Operator: Tsx, AddressingMode: Implied},
		{OpCode: 0x8a, Operator: Txa, AddressingMode: Implied},
		{OpCode: 0x9a, Operator: Txs, AddressingMode: Implied},
		{OpCode: 0x98, Operator: Tya, AddressingMode: Implied},
	}

	table := make([]*Definition, 256)
	for _, defn := range defs {
		defn.Bytes = bytesForMode(defn.AddressingMode)
		table[defn.OpCode] = defn
	}

	return table
}
