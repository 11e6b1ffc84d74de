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

package registers

import "strings"

// StatusRegister is the special purpose register that stores the flags
// of the CPU.
type StatusRegister struct {
	Sign             bool
	Overflow         bool
	Break            bool
	DecimalMode      bool
	InterruptDisable bool
	Zero             bool
	Carry            bool
}

// NewStatusRegister is the preferred method of initialisation for the
// status register.
func NewStatusRegister() StatusRegister {
	return StatusRegister{}
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "SR"
}

func (sr StatusRegister) String() string {
	s := strings.Builder{}

	if sr.Sign {
		s.WriteRune('S')
	} else {
		s.WriteRune('s')
	}
	if sr.Overflow {
		s.WriteRune('V')
	} else {
		s.WriteRune('v')
	}
	if sr.Break {
		s.WriteRune('B')
	} else {
		s.WriteRune('b')
	}
	if sr.DecimalMode {
		s.WriteRune('D')
	} else {
		s.WriteRune('d')
	}
	if sr.InterruptDisable {
		s.WriteRune('I')
	} else {
		s.WriteRune('i')
	}
	if sr.Zero {
		s.WriteRune('Z')
	} else {
		s.WriteRune('z')
	}
	if sr.Carry {
		s.WriteRune('C')
	} else {
		s.WriteRune('c')
	}

	return s.String()
}

// Reset status flags to initial state.
func (sr *StatusRegister) Reset() {
	sr.FromValue(0)
}

// Value converts the StatusRegister struct into an 8 bit value.
//
// The bit layout follows the source system's status register model:
// Carry in bit 0, then Zero, InterruptDisable, DecimalMode, Break,
// Overflow and Sign in bit 6. Bit 7 is unused and always zero.
func (sr StatusRegister) Value() uint8 {
	var v uint8

	if sr.Carry {
		v |= 0x01
	}
	if sr.Zero {
		v |= 0x02
	}
	if sr.InterruptDisable {
		v |= 0x04
	}
	if sr.DecimalMode {
		v |= 0x08
	}
	if sr.Break {
		v |= 0x10
	}
	if sr.Overflow {
		v |= 0x20
	}
	if sr.Sign {
		v |= 0x40
	}

	return v
}

// FromValue converts an 8 bit value to the StatusRegister struct
// receiver. The bit layout is described in the commentary for the
// Value() function.
func (sr *StatusRegister) FromValue(v uint8) {
	sr.Carry = v&0x01 == 0x01
	sr.Zero = v&0x02 == 0x02
	sr.InterruptDisable = v&0x04 == 0x04
	sr.DecimalMode = v&0x08 == 0x08
	sr.Break = v&0x10 == 0x10
	sr.Overflow = v&0x20 == 0x20
	sr.Sign = v&0x40 == 0x40
}
