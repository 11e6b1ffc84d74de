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

// Package test contains helper functions to remove common boilerplate in
// test functions. The functions in this package are often used in
// conjunction with one another.
//
//	func TestExample(t *testing.T) {
//		mc := cpu.NewCPU()
//		err := mc.Reset()
//		test.ExpectedSuccess(t, err)
//		test.Equate(t, mc.PC.Address(), 0x8000)
//	}
package test
