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

package instructions

// Operator is the operation performed by an instruction, independent of the
// addressing mode.
type Operator int

// List of operators.
const (
	Brk Operator = iota
	Adc
	Sbc
	Lda
	Sta
	Tax
	Inx
)

// String returns the conventional three letter mnemonic.
func (o Operator) String() string {
	switch o {
	case Brk:
		return "BRK"
	case Adc:
		return "ADC"
	case Sbc:
		return "SBC"
	case Lda:
		return "LDA"
	case Sta:
		return "STA"
	case Tax:
		return "TAX"
	case Inx:
		return "INX"
	}
	return "???"
}
