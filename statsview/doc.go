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

// Package statsview is an optional package that will be built only when the
// statsview build constraint is present.
//
// It provides a HTTP server running locally offering runtime statistics.
// Useful when profiling a host that is driving the CPU in a tight Step()
// loop. Underlying functionality provided by
// "github.com/go-echarts/statsview".
//
// A host launches the viewer before entering its execution loop. The
// Available() function allows the same host code to run whether or not
// the build constraint is present:
//
//	if statsview.Available() {
//		statsview.Launch(os.Stdout)
//	}
//	for {
//		if err := mc.Step(); err != nil {
//			break
//		}
//	}
//
// After launch, graphical statistics will be viewable at:
//
//	localhost:12650/debug/statsview
//
// And standard Go pprof statistics available at:
//
//	localhost:12650/debug/pprof/
package statsview
