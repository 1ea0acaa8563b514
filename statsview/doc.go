// This file is part of Gbasave.
//
// Gbasave is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gbasave is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gbasave.  If not, see <https://www.gnu.org/licenses/>.

// Package statsview is an optional package that will built only when the
// statsview build constraint is present
//
//	It provides a HTTP server running locally offering runtime statistics
//	for the monitor process. Underlying funcionality provided by
//	"github.com/go-echarts/statsview"
//
//	After launch, graphical statistics will be viewable at:
//
//		localhost:12610/debug/statsview
//
//	And standard Go pprof statistics available at:
//
//		localhost:12610/debug/pprof/
//
// Without the build constraint, Available() returns false and Launch() does
// nothing but report that the server is unavailable.
package statsview
