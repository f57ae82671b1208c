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

// Package test bundles helper functions that remove common boilerplate from
// the standard go test harness.
//
// The Expect functions report a failure with t.Errorf() and allow the test to
// continue. The Demand functions use t.Fatalf() and should be used when the
// value being tested is needed by later parts of the test. For example,
// demanding that a CPU was created successfully before executing
// instructions on it.
//
// Success and failure values depend on the type. A bool is successful when it
// is true and an error is successful when it is nil. An untyped nil is
// considered a success because that is what a nil error looks like once it
// has been passed as an argument of type any.
//
// The Writer type implements io.Writer and should be used to capture output.
// The Compare() function can then be used to test for equality. The
// RingWriter is similar but only keeps the most recent output.
package test
