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

import (
	"errors"
	"fmt"

	"github.com/jetsetilly/gopher6502/logger"
)

// AddressError is a sentinel error returned when no attached entry
// contains the requested address.
var AddressError = errors.New("no backend for address")

// BoundaryError is a sentinel error returned when a 16 bit access starts
// at the last byte of an entry's range. The second byte of the access
// would fall in a different entry, or in unmapped space, so the access is
// refused rather than quietly reading across the seam.
var BoundaryError = errors.New("unaligned 16-bit access at end of address range")

// Bus is an ordered list of entries. Insertion order is lookup priority.
type Bus struct {
	entries []Entry
}

// NewBus is the preferred method of initialisation for the Bus type. The
// new bus has no entries.
func NewBus() *Bus {
	return &Bus{
		entries: make([]Entry, 0),
	}
}

func (b *Bus) String() string {
	s := fmt.Sprintf("bus with %d entries", len(b.entries))
	for i := range b.entries {
		s = fmt.Sprintf("%s\n  %s", s, b.entries[i].String())
	}
	return s
}

// Attach appends an entry to the bus. The range of the new entry is not
// checked against the ranges already attached. Keeping ranges disjoint is
// the caller's responsibility.
func (b *Bus) Attach(entry Entry) {
	b.entries = append(b.entries, entry)
	logger.Logf("bus", "%s attached", entry.String())
}

// Clear removes all entries from the bus.
func (b *Bus) Clear() {
	b.entries = b.entries[:0]
}

// entry returns the first attached entry whose inclusive range contains
// the address.
func (b *Bus) entry(address uint16) (*Entry, error) {
	for i := range b.entries {
		if b.entries[i].contains(address) {
			return &b.entries[i], nil
		}
	}
	return nil, fmt.Errorf("bus: %w (%#04x)", AddressError, address)
}

// Read a byte from the backend that owns the address.
func (b *Bus) Read(address uint16) (uint8, error) {
	e, err := b.entry(address)
	if err != nil {
		return 0, err
	}
	return e.read(address), nil
}

// Write a byte through to the backend that owns the address.
func (b *Bus) Write(address uint16, data uint8) error {
	e, err := b.entry(address)
	if err != nil {
		return err
	}
	e.write(address, data)
	return nil
}

// Read16Bit composes a little-endian 16 bit value from the bytes at
// address and address+1. Both bytes must be serviced by the same entry.
func (b *Bus) Read16Bit(address uint16) (uint16, error) {
	e, err := b.entry(address)
	if err != nil {
		return 0, err
	}
	if address == e.memtop {
		return 0, fmt.Errorf("bus: %w (%#04x)", BoundaryError, address)
	}

	lo := e.read(address)
	hi := e.read(address + 1)
	return (uint16(hi) << 8) | uint16(lo), nil
}

// Write16Bit writes a 16 bit value as two bytes, little-endian, at
// address and address+1. Both bytes must be serviced by the same entry.
func (b *Bus) Write16Bit(address uint16, data uint16) error {
	e, err := b.entry(address)
	if err != nil {
		return err
	}
	if address == e.memtop {
		return fmt.Errorf("bus: %w (%#04x)", BoundaryError, address)
	}

	e.write(address, uint8(data))
	e.write(address+1, uint8(data>>8))
	return nil
}
