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

// Package cpu emulates the instruction execution engine of a 6502-class
// processor. The CPU owns its bus exclusively; backends are attached
// after construction and the reset vector is read from whatever backend
// occupies the top of the address space.
//
// A host drives the CPU by calling Step() repeatedly. Step() runs one
// instruction to completion; there is no mid-instruction suspension and
// no timing primitive. Pacing, and stopping, are the host's business.
//
// Instruction set coverage is deliberately partial. The decoder accepts
// every documented opcode but Step() will return an error for operators
// that have no execution routine yet. New operators slot into the
// execute() switch without changes to decoding or to the bus.
//
// All failure conditions (unmapped addresses, invalid opcode bytes,
// unimplemented operators, bad addressing mode requests) are returned as
// errors rather than panics, so a host such as a debugger or a test
// harness can intercept and report them. An unattended host treats any
// error from Step() as fatal.
package cpu
