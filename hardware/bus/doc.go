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

// Package bus routes CPU memory accesses to the backend that owns the
// address. The bus is the only seam between the CPU and memory: RAM, ROM
// or a memory mapped device can be attached without the CPU knowing the
// difference.
//
// A Backend reports a fixed size and services byte reads/writes at a
// local, zero based offset. An Entry binds one backend to an inclusive
// address range. Overlapping ranges are not checked for; the first entry
// attached that contains an address wins the lookup.
package bus
