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

package test_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gopher6502/test"
)

func TestExpectFailure(t *testing.T) {
	test.ExpectFailure(t, false)
	test.ExpectFailure(t, errors.New("test"))
}

func TestExpectSuccess(t *testing.T) {
	test.ExpectSuccess(t, true)
	var err error
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, nil)
}

func TestExpectEquality(t *testing.T) {
	test.ExpectEquality(t, 10, 5+5)
	test.ExpectEquality(t, uint8(0xff), uint8(0x7f)<<1|1)
	test.ExpectEquality(t, true, !false)
}

func TestExpectInequality(t *testing.T) {
	test.ExpectInequality(t, 11, 5+5)
	test.ExpectInequality(t, true, false)
}

func TestWriter(t *testing.T) {
	tw := &test.Writer{}
	test.ExpectSuccess(t, tw.Compare(""))
	tw.Write([]byte("abc"))
	test.ExpectSuccess(t, tw.Compare("abc"))
	tw.Clear()
	test.ExpectEquality(t, tw.String(), "")
}

func TestExpectEqualityHexTypes(t *testing.T) {
	test.ExpectEquality(t, uint8(0xa9), uint8(0xa9), "opcode")
	test.ExpectEquality(t, uint16(0x8000), uint16(0x8000), "address")
	test.ExpectInequality(t, uint16(0x8000), uint16(0x8001), "address")
	test.DemandEquality(t, uint8(0x00), uint8(0x00), "status")
}
