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

package disassembly

import (
	"fmt"
	"io"
)

// WriteAttr controls what is printed by the Write*() functions.
type WriteAttr struct {
	ByteCode bool
	Level    bool
}

// Write the entire disassembly to io.Writer.
func (dsm *Disassembly) Write(output io.Writer, attr WriteAttr) error {
	for i := range dsm.Entries {
		if err := dsm.WriteEntry(output, attr, dsm.Entries[i]); err != nil {
			return err
		}
	}
	return nil
}

// WriteEntry writes a single entry to io.Writer.
func (dsm *Disassembly) WriteEntry(output io.Writer, attr WriteAttr, e Entry) error {
	var s string

	if attr.ByteCode {
		s = fmt.Sprintf("%-9s ", e.bytecode())
	}

	s = fmt.Sprintf("%s%s", s, e.String())

	if attr.Level {
		s = fmt.Sprintf("%s [%s]", s, e.Level)
	}

	_, err := io.WriteString(output, s+"\n")
	if err != nil {
		return fmt.Errorf("disassembly: %w", err)
	}

	return nil
}
