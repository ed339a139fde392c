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

// Package number reads numbers from the text of SVG attribute values.
//
// The syntax follows the SVG "number" production: an optional sign,
// a mantissa with digits before and/or after the decimal point, and an
// optional exponent.  White space is the XML white space set.
package number

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrNoNumber is returned by [Scanner.ReadNumber] if the input at the
// current position does not start with a number.
var ErrNoNumber = errors.New("expected a number")

// Scanner reads tokens from an attribute value.
type Scanner struct {
	buf string
	pos int
}

// NewScanner returns a scanner positioned at the start of s.
func NewScanner(s string) *Scanner {
	return &Scanner{buf: s}
}

// Pos returns the current byte offset into the input.
func (s *Scanner) Pos() int {
	return s.pos
}

// EOF reports whether all input has been consumed.
func (s *Scanner) EOF() bool {
	return s.pos >= len(s.buf)
}

// Rest returns the input which has not yet been consumed.
func (s *Scanner) Rest() string {
	return s.buf[s.pos:]
}

// ScanBytes advances past all bytes for which accept returns true and
// returns the number of bytes skipped.
func (s *Scanner) ScanBytes(accept func(c byte) bool) int {
	start := s.pos
	for s.pos < len(s.buf) && accept(s.buf[s.pos]) {
		s.pos++
	}
	return s.pos - start
}

// SkipWhiteSpace skips a (possibly empty) run of white space and reports
// whether any input was consumed.
func (s *Scanner) SkipWhiteSpace() bool {
	return s.ScanBytes(IsSpace) > 0
}

// SkipSeparator skips the separator between two numbers in a list:
// optional white space, an optional comma, and more optional white space.
func (s *Scanner) SkipSeparator() {
	s.SkipWhiteSpace()
	if s.pos < len(s.buf) && s.buf[s.pos] == ',' {
		s.pos++
	}
	s.SkipWhiteSpace()
}

// ReadNumber reads a number at the current position and advances past it.
// If no number can be read, the position is left unchanged.
func (s *Scanner) ReadNumber() (float64, error) {
	n := s.numberLen()
	if n == 0 {
		return 0, fmt.Errorf("at offset %d: %w", s.pos, ErrNoNumber)
	}

	x, err := strconv.ParseFloat(s.buf[s.pos:s.pos+n], 64)
	if err != nil {
		// Only range errors are possible here, since numberLen
		// already checked the syntax.
		return 0, fmt.Errorf("at offset %d: %w", s.pos, err)
	}
	s.pos += n
	return x, nil
}

// numberLen returns the length of the number starting at the current
// position, or 0 if there is none.  The position is not modified.
func (s *Scanner) numberLen() int {
	buf := s.buf
	i := s.pos

	if i < len(buf) && (buf[i] == '+' || buf[i] == '-') {
		i++
	}

	intDigits := countDigits(buf[i:])
	i += intDigits
	fracDigits := 0
	if i < len(buf) && buf[i] == '.' {
		fracDigits = countDigits(buf[i+1:])
		if intDigits+fracDigits > 0 {
			i += 1 + fracDigits
		}
	}
	if intDigits+fracDigits == 0 {
		return 0
	}

	// The exponent is only part of the number if at least one digit follows.
	if i < len(buf) && (buf[i] == 'e' || buf[i] == 'E') {
		j := i + 1
		if j < len(buf) && (buf[j] == '+' || buf[j] == '-') {
			j++
		}
		if k := countDigits(buf[j:]); k > 0 {
			i = j + k
		}
	}

	return i - s.pos
}

func countDigits(s string) int {
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	return n
}

// IsSpace reports whether c is an XML white space character.
func IsSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}
