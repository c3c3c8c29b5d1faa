// This file is part of Fretinput.
//
// Fretinput is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Fretinput is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Fretinput.  If not, see <https://www.gnu.org/licenses/>.

package statsview

import (
	"fmt"
	"io"
	"sync"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/jetsetilly/fretinput/logger"
)

// DefaultAddress is the address used when Launch() is given an empty address.
const DefaultAddress = "localhost:12600"

const path = "/debug/statsview"

var launched sync.Once

// Launch a new goroutine running the statsview server. Only the first call to
// Launch() has any effect.
func Launch(addr string, output io.Writer) {
	if addr == "" {
		addr = DefaultAddress
	}

	launched.Do(func() {
		viewer.SetConfiguration(viewer.WithAddr(addr))
		go func() {
			mgr := statsview.New()
			mgr.Start()
		}()

		logger.Logf(logger.Allow, "statsview", "launched on %s", addr)
		if output != nil {
			fmt.Fprintf(output, "stats server available at http://%s%s\n", addr, path)
		}
	})
}
