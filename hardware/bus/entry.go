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

package bus

import "fmt"

// Backend is anything that can be attached to the bus: a fixed size,
// byte addressable area of memory or a memory mapped device.
//
// Offsets passed to Read and Write have already been translated to the
// backend's local zero based range. The backend must not clamp or wrap
// the offset further, unless that is its intended semantic (mirrored
// RAM, for example).
type Backend interface {
	// Size returns the number of addressable bytes. It is queried once,
	// when the entry for the backend is created.
	Size() uint16

	Read(offset uint16) uint8
	Write(offset uint16, data uint8)
}

// Entry binds a backend to an inclusive range of bus addresses. Each
// entry exclusively owns its backend; no other bus should reference the
// same backend instance.
type Entry struct {
	backend Backend
	name    string
	origin  uint16
	memtop  uint16
}

// NewEntry is the preferred method of initialisation for the Entry type.
// The extent of the range is taken from the backend's reported size:
// origin to origin+size-1 inclusive.
func NewEntry(backend Backend, name string, origin uint16) Entry {
	return Entry{
		backend: backend,
		name:    name,
		origin:  origin,
		memtop:  origin + backend.Size() - 1,
	}
}

func (e Entry) String() string {
	return fmt.Sprintf("%s %#04x to %#04x", e.name, e.origin, e.memtop)
}

// Name returns the label given to the entry on creation.
func (e Entry) Name() string {
	return e.name
}

// Origin returns the first bus address serviced by the entry.
func (e Entry) Origin() uint16 {
	return e.origin
}

// Memtop returns the last bus address serviced by the entry.
func (e Entry) Memtop() uint16 {
	return e.memtop
}

func (e Entry) contains(address uint16) bool {
	return address >= e.origin && address <= e.memtop
}

// read translates the bus address to a backend offset. the caller has
// already established that the entry contains the address.
func (e *Entry) read(address uint16) uint8 {
	return e.backend.Read(address - e.origin)
}

func (e *Entry) write(address uint16, data uint8) {
	e.backend.Write(address-e.origin, data)
}
