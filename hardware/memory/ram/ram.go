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

// Package ram implements the simplest possible bus backend: a fixed size
// array of bytes with no mirroring and no side effects on access.
package ram

import (
	"fmt"

	"github.com/jetsetilly/gopher6502/hardware/bus"
)

// Ram is an area of writable memory that can be attached to the bus.
type Ram struct {
	data []uint8
}

// NewRam is the preferred method of initialisation for the Ram type. All
// bytes are initialised to zero.
func NewRam(size uint16) *Ram {
	return &Ram{
		data: make([]uint8, size),
	}
}

// NewEntry creates a Ram instance of the given size and binds it to a bus
// entry starting at origin.
func NewEntry(name string, origin uint16, size uint16) bus.Entry {
	return bus.NewEntry(NewRam(size), name, origin)
}

func (r *Ram) String() string {
	return fmt.Sprintf("ram [%dk]", len(r.data)/1024)
}

// Size implements the bus.Backend interface.
func (r *Ram) Size() uint16 {
	return uint16(len(r.data))
}

// Read implements the bus.Backend interface.
func (r *Ram) Read(offset uint16) uint8 {
	return r.data[offset]
}

// Write implements the bus.Backend interface.
func (r *Ram) Write(offset uint16, data uint8) {
	r.data[offset] = data
}
