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

package cpu_test

// helpers_test.go contains the support code for the cpu_test package:
//
//   - testMem, a ram backend with a variadic putInstructions() function
//     to place a sequence of bytes into memory, and putVector() to prime
//     the reset vector
//
//   - newTestCPU(), returning a CPU with a testMem covering almost the
//     whole address space (the last byte is left unmapped so that bus
//     errors can be provoked)
//
//   - step(), which executes one instruction and fails the test on error

import (
	"testing"

	"github.com/jetsetilly/gopher6502/hardware/bus"
	"github.com/jetsetilly/gopher6502/hardware/cpu"
	"github.com/jetsetilly/gopher6502/hardware/memory/ram"
)

type testMem struct {
	*ram.Ram
}

func newTestMem() *testMem {
	return &testMem{
		Ram: ram.NewRam(0xffff),
	}
}

func (mem *testMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.Write(origin+uint16(i), b)
	}
	return origin + uint16(len(bytes))
}

func (mem *testMem) putVector(address uint16, val uint16) {
	mem.Write(address, uint8(val))
	mem.Write(address+1, uint8(val>>8))
}

func (mem *testMem) assert(t *testing.T, address uint16, value uint8) {
	t.Helper()
	if mem.Read(address) != value {
		t.Errorf("memory assertion failed (%#02x  - wanted %#02x at address %#04x)", mem.Read(address), value, address)
	}
}

// newTestCPU returns a CPU with a single ram backend attached at the
// bottom of the address space, and the reset vector pointing at 0x8000.
func newTestCPU(t *testing.T) (*cpu.CPU, *testMem) {
	t.Helper()

	mc := cpu.NewCPU()
	mem := newTestMem()
	mc.AttachBackend(bus.NewEntry(mem, "RAM", 0x0000))
	mem.putVector(cpu.ResetVector, 0x8000)

	if err := mc.Reset(); err != nil {
		t.Fatal(err)
	}

	return mc, mem
}

func step(t *testing.T, mc *cpu.CPU) {
	t.Helper()
	if err := mc.Step(); err != nil {
		t.Fatal(err)
	}
}
