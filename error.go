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

package svg

import "errors"

// ParseError indicates that an attribute value does not have the
// required syntax.
type ParseError struct {
	// Attr is the name of the attribute, or "" if not known.
	Attr string

	// Msg describes the expected syntax.
	Msg string

	// Err, if non-nil, is the low-level error which triggered the
	// failure.
	Err error
}

func (err *ParseError) Error() string {
	return prefix(err.Attr) + err.Msg
}

func (err *ParseError) Unwrap() error {
	return err.Err
}

// Is makes errors.Is(err, &ParseError{}) match all parse errors.
func (err *ParseError) Is(target error) bool {
	_, ok := target.(*ParseError)
	return ok
}

// ValueError indicates that an attribute value is syntactically correct,
// but describes a value which is not allowed.
type ValueError struct {
	// Attr is the name of the attribute, or "" if not known.
	Attr string

	// Msg names the violated constraint.
	Msg string
}

func (err *ValueError) Error() string {
	return prefix(err.Attr) + err.Msg
}

// Is makes errors.Is(err, &ValueError{}) match all value errors.
func (err *ValueError) Is(target error) bool {
	_, ok := target.(*ValueError)
	return ok
}

func prefix(attr string) string {
	if attr == "" {
		return "svg: invalid attribute: "
	}
	return "svg: invalid " + attr + " attribute: "
}

// IsParseError returns true if err is, or wraps, a [ParseError].
func IsParseError(err error) bool {
	var e *ParseError
	return errors.As(err, &e)
}

// IsValueError returns true if err is, or wraps, a [ValueError].
func IsValueError(err error) bool {
	var e *ValueError
	return errors.As(err, &e)
}
