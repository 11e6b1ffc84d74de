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

// Package hardware groups the emulated components of a 6502-class machine:
// the CPU itself, the address bus and the memory backends that can be
// attached to the bus.
//
// The packages below hardware do not decide what a machine looks like.
// Which backends occupy which address ranges is for the host to decide,
// through CPU.AttachBackend().
package hardware
