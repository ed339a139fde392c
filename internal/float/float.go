// seehuhn.de/go/svg - parsing SVG attribute values
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package float formats floating point numbers as compact decimal strings.
package float

import (
	"regexp"
	"strconv"
	"strings"
)

// Format converts x to a decimal string without an exponent.
//
// At most precision digits are used after the decimal point.  A negative
// precision selects the smallest number of digits for which the result
// parses back to exactly x.  Trailing zeros, a trailing decimal point and the
// zero before the decimal point of numbers between -1 and 1 are omitted.
func Format(x float64, precision int) string {
	out := strconv.FormatFloat(x, 'f', precision, 64)
	if m := tailRegexp.FindStringSubmatchIndex(out); m != nil {
		if m[2] > 0 {
			out = out[:m[2]]
		} else if m[4] > 0 {
			out = out[:m[4]]
		}
	}

	switch {
	case strings.HasPrefix(out, "0."):
		out = out[1:]
	case strings.HasPrefix(out, "-0."):
		out = "-" + out[2:]
	}
	return out
}

var tailRegexp = regexp.MustCompile(`(?:\..*[1-9](0+)|(\.0+))$`)
