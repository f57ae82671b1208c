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

package test

import (
	"fmt"
	"strings"
)

// RingWriter is an io.Writer that keeps only the most recent output. Useful
// for capturing the tail of a long running log.
type RingWriter struct {
	buffer  []byte
	cursor  int
	wrapped bool
}

// NewRingWriter is the preferred method of initialisation for RingWriter.
func NewRingWriter(size int) (*RingWriter, error) {
	if size <= 0 {
		return nil, fmt.Errorf("test: invalid size for RingWriter (%d)", size)
	}
	return &RingWriter{
		buffer: make([]byte, size),
	}, nil
}

func (r *RingWriter) String() string {
	if !r.wrapped {
		return string(r.buffer[:r.cursor])
	}

	var s strings.Builder
	s.Write(r.buffer[r.cursor:])
	s.Write(r.buffer[:r.cursor])
	return s.String()
}

// Reset empties the ring.
func (r *RingWriter) Reset() {
	r.cursor = 0
	r.wrapped = false
}

// Write implements the io.Writer interface.
func (r *RingWriter) Write(p []byte) (n int, err error) {
	size := len(r.buffer)

	// only the tail of an oversized write can survive
	if len(p) >= size {
		copy(r.buffer, p[len(p)-size:])
		r.cursor = 0
		r.wrapped = true
		return len(p), nil
	}

	c := copy(r.buffer[r.cursor:], p)
	if c < len(p) {
		copy(r.buffer, p[c:])
		r.wrapped = true
	}
	r.cursor = (r.cursor + len(p)) % size
	if r.cursor == 0 && len(p) > 0 {
		r.wrapped = true
	}

	return len(p), nil
}
