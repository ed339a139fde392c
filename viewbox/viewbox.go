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

// Package viewbox implements the SVG viewBox attribute.
//
// A viewBox is given by four numbers "x y width height", separated by white
// space and/or a comma.  The rectangle describes the region of user space
// which is mapped onto the viewport of an element.
package viewbox

import (
	"errors"
	"math"
	"strings"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/svg"
	"seehuhn.de/go/svg/internal/float"
	"seehuhn.de/go/svg/internal/number"
)

// AttrName is the name of the SVG attribute handled by this package.
const AttrName = "viewBox"

// ViewBox is the value of a viewBox attribute.
//
// The zero value is the inactive viewBox, which is used if an element has
// no viewBox attribute.  Active viewBoxes are obtained from [Parse] or [New]
// and always have non-negative width and height.
type ViewBox struct {
	X, Y          float64
	Width, Height float64

	active bool
}

// Inactive returns the viewBox used for elements without a viewBox
// attribute.  All coordinates are zero.
func Inactive() ViewBox {
	return ViewBox{}
}

// New returns an active viewBox for the given rectangle.
// A [svg.ValueError] is returned if width or height are negative, or if one
// of the values is not finite.
func New(x, y, width, height float64) (ViewBox, error) {
	for _, v := range []float64{x, y, width, height} {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return ViewBox{}, &svg.ValueError{
				Attr: AttrName,
				Msg:  "coordinates must be finite",
			}
		}
	}
	if width < 0 || height < 0 {
		return ViewBox{}, &svg.ValueError{
			Attr: AttrName,
			Msg:  "width and height must not be negative",
		}
	}
	return ViewBox{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
		active: true,
	}, nil
}

// Parse reads the value of a viewBox attribute.
//
// Leading and trailing white space is ignored.  If s does not consist of
// exactly four numbers, a [svg.ParseError] is returned.  If width or height
// are negative, a [svg.ValueError] is returned.
func Parse(s string) (ViewBox, error) {
	v, err := parseNumbers(strings.TrimSpace(s))
	if err != nil {
		return ViewBox{}, &svg.ParseError{
			Attr: AttrName,
			Msg:  "string does not match 'x [,] y [,] w [,] h'",
			Err:  err,
		}
	}
	return New(v[0], v[1], v[2], v[3])
}

// parseNumbers matches the grammar
//
//	real WS? SEP? WS? real WS? SEP? WS? real WS? SEP? WS? real
//
// against the whole of s.
func parseNumbers(s string) ([4]float64, error) {
	var v [4]float64

	scan := number.NewScanner(s)
	for i := range v {
		if i > 0 {
			scan.SkipSeparator()
		}
		x, err := scan.ReadNumber()
		if err != nil {
			return v, err
		}
		v[i] = x
	}
	if !scan.EOF() {
		return v, errTrailing
	}
	return v, nil
}

var errTrailing = errors.New("unexpected trailing input")

// IsActive reports whether vb describes an actual viewBox, rather than the
// default used for elements without a viewBox attribute.
func (vb ViewBox) IsActive() bool {
	return vb.active
}

// Rect returns the rectangle covered by the viewBox.
// The zero rectangle is returned for the inactive viewBox.
func (vb ViewBox) Rect() rect.Rect {
	if !vb.active {
		return rect.Rect{}
	}
	return rect.Rect{
		LLx: vb.X,
		LLy: vb.Y,
		URx: vb.X + vb.Width,
		URy: vb.Y + vb.Height,
	}
}

// String returns the viewBox in attribute syntax, or "none" for the
// inactive viewBox.
func (vb ViewBox) String() string {
	if !vb.active {
		return "none"
	}
	return vb.format()
}

func (vb ViewBox) format() string {
	parts := make([]string, 4)
	for i, x := range []float64{vb.X, vb.Y, vb.Width, vb.Height} {
		parts[i] = float.Format(x, -1)
	}
	return strings.Join(parts, " ")
}
