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

package memory

import (
	"fmt"
	"io"
	"strings"
)

// the number of bytes shown on each line of a dump
const dumpWidth = 16

// Dump writes a hex listing of memory between from and to (inclusive) to
// the io.Writer. Each line starts with the address of the first byte shown.
//
//	8000  a9 05 00
func (mem *Memory) Dump(output io.Writer, from uint16, to uint16) error {
	if to < from {
		return fmt.Errorf("memory: dump range is backwards (%#04x to %#04x)", from, to)
	}

	s := strings.Builder{}
	for a := int(from); a <= int(to); a += dumpWidth {
		s.Reset()
		s.WriteString(fmt.Sprintf("%04x ", a))

		end := a + dumpWidth - 1
		if end > int(to) {
			end = int(to)
		}
		for b := a; b <= end; b++ {
			s.WriteString(fmt.Sprintf(" %02x", mem.data[b]))
		}
		s.WriteString("\n")

		if _, err := io.WriteString(output, s.String()); err != nil {
			return fmt.Errorf("memory: %w", err)
		}
	}

	return nil
}
