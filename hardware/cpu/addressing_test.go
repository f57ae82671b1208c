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

import (
	"testing"

	"github.com/jetsetilly/gopher6502/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6502/test"
)

func TestLoadAddressingModes(t *testing.T) {
	// zero page
	mc := load(t, 0xa5, 0x10, 0x00)
	mc.Mem.Write(0x0010, 0x42)
	run(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x42)

	// zero page,X wraps within the zero page
	mc = load(t, 0xb5, 0xff, 0x00)
	mc.X.Load(0x02)
	mc.Mem.Write(0x0001, 0x42)
	mc.Mem.Write(0x0101, 0x99)
	run(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x42)

	// absolute
	mc = load(t, 0xad, 0x34, 0x12, 0x00)
	mc.Mem.Write(0x1234, 0x42)
	run(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x42)

	// absolute,X
	mc = load(t, 0xbd, 0xf0, 0x12, 0x00)
	mc.X.Load(0x20)
	mc.Mem.Write(0x1310, 0x42)
	run(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x42)

	// absolute,Y wraps at the top of memory
	mc = load(t, 0xb9, 0xff, 0xff, 0x00)
	mc.Y.Load(0x02)
	mc.Mem.Write(0x0001, 0x42)
	run(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x42)

	// (indirect,X)
	mc = load(t, 0xa1, 0x20, 0x00)
	mc.X.Load(0x04)
	mc.Mem.Write16(0x0024, 0x2074)
	mc.Mem.Write(0x2074, 0x42)
	run(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x42)

	// (indirect),Y
	mc = load(t, 0xb1, 0x86, 0x00)
	mc.Y.Load(0x10)
	mc.Mem.Write16(0x0086, 0x4028)
	mc.Mem.Write(0x4038, 0x42)
	run(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x42)
}

func TestStoreAddressingModes(t *testing.T) {
	// zero page,X wraps within the zero page
	mc := load(t, 0x95, 0xf0, 0x00)
	mc.A.Load(0xba)
	mc.X.Load(0x20)
	run(t, mc)
	test.ExpectEquality(t, mc.Mem.Read(0x0010), 0xba)
	test.ExpectEquality(t, mc.Mem.Read(0x0110), 0x00)

	// absolute,X
	mc = load(t, 0x9d, 0x00, 0x20, 0x00)
	mc.A.Load(0xba)
	mc.X.Load(0x05)
	run(t, mc)
	test.ExpectEquality(t, mc.Mem.Read(0x2005), 0xba)

	// absolute,Y
	mc = load(t, 0x99, 0x00, 0x20, 0x00)
	mc.A.Load(0xba)
	mc.Y.Load(0x06)
	run(t, mc)
	test.ExpectEquality(t, mc.Mem.Read(0x2006), 0xba)

	// (indirect,X)
	mc = load(t, 0x81, 0x40, 0x00)
	mc.A.Load(0xba)
	mc.X.Load(0x01)
	mc.Mem.Write16(0x0041, 0x3000)
	run(t, mc)
	test.ExpectEquality(t, mc.Mem.Read(0x3000), 0xba)

	// (indirect),Y
	mc = load(t, 0x91, 0x40, 0x00)
	mc.A.Load(0xba)
	mc.Y.Load(0x01)
	mc.Mem.Write16(0x0040, 0x30ff)
	run(t, mc)
	test.ExpectEquality(t, mc.Mem.Read(0x3100), 0xba)
}

func TestIndirectPointerWrap(t *testing.T) {
	// (indirect,X) where the index takes the pointer past the end of the zero page
	mc := load(t, 0xa1, 0xfe, 0x00)
	mc.X.Load(0x03)
	mc.Mem.Write16(0x0001, 0x2000)
	mc.Mem.Write16(0x0101, 0x3000)
	mc.Mem.Write(0x2000, 0x42)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x42)
	test.ExpectEquality(t, mc.LastResult.Bug, execution.ZeroPageIndexBug)

	// (indirect,X) where the pointer straddles the end of the zero page
	mc = load(t, 0xa1, 0xfe, 0x00)
	mc.X.Load(0x01)
	mc.Mem.Write(0x00ff, 0x00)
	mc.Mem.Write(0x0000, 0x20)
	mc.Mem.Write(0x0100, 0x30)
	mc.Mem.Write(0x2000, 0x42)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x42)
	test.ExpectEquality(t, mc.LastResult.EffectiveAddress, 0x2000)
	test.ExpectEquality(t, mc.LastResult.Bug, execution.ZeroPagePointerBug)

	// (indirect),Y where the pointer straddles the end of the zero page
	mc = load(t, 0xb1, 0xff, 0x00)
	mc.Y.Load(0x01)
	mc.Mem.Write(0x00ff, 0x00)
	mc.Mem.Write(0x0000, 0x20)
	mc.Mem.Write(0x0100, 0x30)
	mc.Mem.Write(0x2001, 0x42)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x42)
	test.ExpectEquality(t, mc.LastResult.EffectiveAddress, 0x2001)
	test.ExpectEquality(t, mc.LastResult.Bug, execution.ZeroPagePointerBug)
	test.ExpectEquality(t, mc.LastResult.String(), "$8000 LDA ($ff),Y * zero page pointer bug *")

	// (indirect),Y where adding the index crosses into the next page
	mc = load(t, 0xb1, 0x10, 0x00)
	mc.Y.Load(0x10)
	mc.Mem.Write16(0x0010, 0xfff8)
	mc.Mem.Write(0x0008, 0x42)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x42)
	test.ExpectEquality(t, mc.LastResult.EffectiveAddress, 0x0008)
	test.ExpectEquality(t, mc.LastResult.Bug, execution.NoBug)
}
