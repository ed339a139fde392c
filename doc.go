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

// Package svg holds the types shared by the parsers for SVG attribute values.
//
// The parsers themselves live in subpackages.  The [viewbox] package, for
// example, reads the value of the viewBox attribute:
//
//	vb, err := viewbox.Parse("0 0 100 50")
//	if svg.IsValueError(err) {
//	    ... the attribute is well-formed but describes an invalid box ...
//	} else if err != nil {
//	    ... the attribute is malformed ...
//	}
//
// All parsers report problems using the two error types of this package:
// [ParseError] is used if the text does not match the syntax of the
// attribute, and [ValueError] is used if the text is syntactically valid
// but the resulting value is not allowed.  Callers decide whether a
// failed attribute is ignored or whether the document is rejected.
//
// [viewbox]: https://pkg.go.dev/seehuhn.de/go/svg/viewbox
package svg
