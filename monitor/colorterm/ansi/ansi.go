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

// Package ansi defines ANSI control codes for the styles and colours used by
// the colour terminal and the log colorizer.
package ansi

import (
	"fmt"
	"strings"
)

// ansi colour numbers.
var colours = map[string]int{
	"black":   0,
	"red":     1,
	"green":   2,
	"yellow":  3,
	"blue":    4,
	"magenta": 5,
	"cyan":    6,
	"white":   7,
}

// ansi targets.
const (
	targetPen       = 3
	targetBrightPen = 9
)

// ansi attributes.
var attributes = map[string]int{
	"bold":      1,
	"underline": 4,
	"inverse":   7,
}

// Pens is the table of colors to be used for text.
var Pens map[string]string

// DimPens is the table of pastel colors to be used for text.
var DimPens map[string]string

// PenStyles is the table of styles to be used for text.
var PenStyles map[string]string

// NormalPen is the CSI sequence for regular text.
const NormalPen = "\033[0m"

// ClearLine is the CSI sequence to erase the current line and return the
// cursor to the first column.
const ClearLine = "\033[2K\r"

func init() {
	Pens = make(map[string]string)
	DimPens = make(map[string]string)
	PenStyles = make(map[string]string)

	for name := range colours {
		Pens[name], _ = ColorBuild(name, "", true)
		DimPens[name], _ = ColorBuild(name, "", false)
	}
	for name := range attributes {
		PenStyles[name], _ = ColorBuild("", name, false)
	}
}

// ColorBuild creates the ANSI sequence for the pen colour and attribute. An
// empty string for either argument leaves that part of the sequence out.
func ColorBuild(pen string, attribute string, brightPen bool) (string, error) {
	var codes []string

	if pen != "" {
		c, ok := colours[strings.ToLower(pen)]
		if !ok {
			return "", fmt.Errorf("ansi: unknown pen colour (%s)", pen)
		}
		t := targetPen
		if brightPen {
			t = targetBrightPen
		}
		codes = append(codes, fmt.Sprintf("%d%d", t, c))
	}

	if attribute != "" {
		a, ok := attributes[strings.ToLower(attribute)]
		if !ok {
			return "", fmt.Errorf("ansi: unknown attribute (%s)", attribute)
		}
		codes = append(codes, fmt.Sprintf("%d", a))
	}

	if len(codes) == 0 {
		return NormalPen, nil
	}

	return fmt.Sprintf("\033[%sm", strings.Join(codes, ";")), nil
}
