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

package bus_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gopher6502/hardware/bus"
	"github.com/jetsetilly/gopher6502/test"
)

// mockBackend records the offsets it is accessed with, so that tests can
// check the bus's address translation.
type mockBackend struct {
	size       uint16
	data       []uint8
	lastOffset uint16
}

func newMockBackend(size uint16) *mockBackend {
	return &mockBackend{
		size: size,
		data: make([]uint8, size),
	}
}

func (m *mockBackend) Size() uint16 {
	return m.size
}

func (m *mockBackend) Read(offset uint16) uint8 {
	m.lastOffset = offset
	return m.data[offset]
}

func (m *mockBackend) Write(offset uint16, data uint8) {
	m.lastOffset = offset
	m.data[offset] = data
}

func TestBus_routing(t *testing.T) {
	b := bus.NewBus()

	lo := newMockBackend(0x100)
	hi := newMockBackend(0x100)
	b.Attach(bus.NewEntry(lo, "lo", 0x0000))
	b.Attach(bus.NewEntry(hi, "hi", 0x1000))

	// writes reach the correct backend at the translated offset
	err := b.Write(0x0010, 0xaa)
	test.ExpectedSuccess(t, err)
	test.Equate(t, lo.lastOffset, 0x0010)
	test.Equate(t, lo.data[0x10], 0xaa)

	err = b.Write(0x1020, 0xbb)
	test.ExpectedSuccess(t, err)
	test.Equate(t, hi.lastOffset, 0x0020)
	test.Equate(t, hi.data[0x20], 0xbb)

	// reads round-trip
	v, err := b.Read(0x1020)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, 0xbb)

	// the inclusive limits of a range are serviced
	err = b.Write(0x10ff, 0x01)
	test.ExpectedSuccess(t, err)
	test.Equate(t, hi.lastOffset, 0x00ff)
}

func TestBus_unmappedAddress(t *testing.T) {
	b := bus.NewBus()
	b.Attach(bus.NewEntry(newMockBackend(0x100), "lo", 0x0000))

	_, err := b.Read(0x0100)
	test.ExpectedFailure(t, err)
	if !errors.Is(err, bus.AddressError) {
		t.Errorf("expected AddressError (got: %v)", err)
	}

	err = b.Write(0x2000, 0x00)
	test.ExpectedFailure(t, err)
	if !errors.Is(err, bus.AddressError) {
		t.Errorf("expected AddressError (got: %v)", err)
	}
}

func TestBus_16bitAccess(t *testing.T) {
	b := bus.NewBus()
	m := newMockBackend(0x100)
	b.Attach(bus.NewEntry(m, "mem", 0x4000))

	err := b.Write16Bit(0x4010, 0x1234)
	test.ExpectedSuccess(t, err)

	// little-endian composition of the two bytes
	test.Equate(t, m.data[0x10], 0x34)
	test.Equate(t, m.data[0x11], 0x12)

	v, err := b.Read16Bit(0x4010)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, 0x1234)

	lo, _ := b.Read(0x4010)
	hi, _ := b.Read(0x4011)
	test.Equate(t, v, uint16(lo)|(uint16(hi)<<8))
}

func TestBus_16bitBoundary(t *testing.T) {
	b := bus.NewBus()
	b.Attach(bus.NewEntry(newMockBackend(0x100), "mem", 0x4000))

	// a 16 bit access starting at the last byte of a range is refused
	_, err := b.Read16Bit(0x40ff)
	test.ExpectedFailure(t, err)
	if !errors.Is(err, bus.BoundaryError) {
		t.Errorf("expected BoundaryError (got: %v)", err)
	}

	err = b.Write16Bit(0x40ff, 0x1234)
	test.ExpectedFailure(t, err)
	if !errors.Is(err, bus.BoundaryError) {
		t.Errorf("expected BoundaryError (got: %v)", err)
	}

	// one byte earlier is fine
	_, err = b.Read16Bit(0x40fe)
	test.ExpectedSuccess(t, err)
}

func TestBus_insertionOrder(t *testing.T) {
	b := bus.NewBus()

	first := newMockBackend(0x100)
	second := newMockBackend(0x100)

	// overlapping ranges are not rejected. the first entry attached
	// shadows the second
	b.Attach(bus.NewEntry(first, "first", 0x0000))
	b.Attach(bus.NewEntry(second, "second", 0x0000))

	err := b.Write(0x0000, 0xcc)
	test.ExpectedSuccess(t, err)
	test.Equate(t, first.data[0x00], 0xcc)
	test.Equate(t, second.data[0x00], 0x00)
}

func TestBus_clear(t *testing.T) {
	b := bus.NewBus()
	b.Attach(bus.NewEntry(newMockBackend(0x100), "mem", 0x0000))

	_, err := b.Read(0x0000)
	test.ExpectedSuccess(t, err)

	b.Clear()

	_, err = b.Read(0x0000)
	test.ExpectedFailure(t, err)
}

func TestEntry_range(t *testing.T) {
	e := bus.NewEntry(newMockBackend(0x8000), "RAM", 0x8000)
	test.Equate(t, e.Name(), "RAM")
	test.Equate(t, e.Origin(), 0x8000)
	test.Equate(t, e.Memtop(), 0xffff)
	test.Equate(t, e.String(), "RAM 0x8000 to 0xffff")
}
