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

package ram_test

import (
	"testing"

	"github.com/jetsetilly/gopher6502/hardware/bus"
	"github.com/jetsetilly/gopher6502/hardware/memory/ram"
	"github.com/jetsetilly/gopher6502/test"
)

func TestRam(t *testing.T) {
	r := ram.NewRam(0x8000)
	test.Equate(t, r.Size(), 0x8000)

	// all bytes are zero on creation
	test.Equate(t, r.Read(0x0000), 0x00)
	test.Equate(t, r.Read(0x7fff), 0x00)

	r.Write(0x7fff, 0x42)
	test.Equate(t, r.Read(0x7fff), 0x42)

	test.Equate(t, r.String(), "ram [32k]")
}

func TestRam_entry(t *testing.T) {
	e := ram.NewEntry("RAM", 0x0000, 0x8000)
	test.Equate(t, e.Name(), "RAM")
	test.Equate(t, e.Origin(), 0x0000)
	test.Equate(t, e.Memtop(), 0x7fff)

	// a ram entry behaves through the bus
	b := bus.NewBus()
	b.Attach(e)

	err := b.Write(0x1234, 0x99)
	test.ExpectedSuccess(t, err)
	v, err := b.Read(0x1234)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, 0x99)
}
