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

// Package instructions defines the static properties of every documented
// opcode in the 6502 instruction set: the operator it performs, the
// addressing mode it uses and the total number of bytes it occupies in the
// program.
//
// The table returned by GetDefinitions() is the single source of truth for
// instruction decoding. Execution of a decoded instruction is the CPU
// package's job; which operators the CPU actually implements is a
// property of the CPU, not of this table.
package instructions
