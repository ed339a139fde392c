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

package number

import (
	"errors"
	"strconv"
	"testing"
)

func TestReadNumber(t *testing.T) {
	cases := []struct {
		in   string
		val  float64
		rest string
	}{
		{"0", 0, ""},
		{"1 2", 1, " 2"},
		{"-1.5", -1.5, ""},
		{"+3", 3, ""},
		{"-2.5e1,34", -25, ",34"},
		{"56e2", 5600, ""},
		{"3E-2", 0.03, ""},
		{"1e+2x", 100, "x"},
		{".5", 0.5, ""},
		{"5.", 5, ""},
		{"5.e1", 50, ""},
		{"1.5.5", 1.5, ".5"},
		{"1-2", 1, "-2"},
		{"1e", 1, "e"},
		{"1e-", 1, "e-"},
		{"1ex", 1, "ex"},
		{"007", 7, ""},
		{"0x10", 0, "x10"},
	}
	for _, test := range cases {
		t.Run(test.in, func(t *testing.T) {
			s := NewScanner(test.in)
			val, err := s.ReadNumber()
			if err != nil {
				t.Fatalf("ReadNumber(%q) returned error %v", test.in, err)
			}
			if val != test.val {
				t.Errorf("ReadNumber(%q) = %g, want %g", test.in, val, test.val)
			}
			if rest := s.Rest(); rest != test.rest {
				t.Errorf("ReadNumber(%q) left %q, want %q", test.in, rest, test.rest)
			}
		})
	}
}

func TestReadNumberFail(t *testing.T) {
	cases := []string{"", " 1", ",1", "-", "+", ".", "-.", "e5", "x", "inf", "NaN"}
	for _, in := range cases {
		s := NewScanner(in)
		_, err := s.ReadNumber()
		if !errors.Is(err, ErrNoNumber) {
			t.Errorf("ReadNumber(%q): got error %v, want %v", in, err, ErrNoNumber)
		}
		if s.Pos() != 0 {
			t.Errorf("ReadNumber(%q) moved to offset %d", in, s.Pos())
		}
	}
}

func TestReadNumberRange(t *testing.T) {
	s := NewScanner("1e999")
	_, err := s.ReadNumber()
	if !errors.Is(err, strconv.ErrRange) {
		t.Errorf("got error %v, want %v", err, strconv.ErrRange)
	}
	if s.Pos() != 0 {
		t.Errorf("position moved to %d", s.Pos())
	}
}

func TestSkipSeparator(t *testing.T) {
	cases := []struct {
		in   string
		rest string
	}{
		{"", ""},
		{"1", "1"},
		{" 1", "1"},
		{",1", "1"},
		{" , 1", "1"},
		{"\t\r\n,\n1", "1"},
		{",,1", ",1"},
		{" , ,1", ",1"},
		{"\f1", "\f1"},
	}
	for _, test := range cases {
		s := NewScanner(test.in)
		s.SkipSeparator()
		if rest := s.Rest(); rest != test.rest {
			t.Errorf("SkipSeparator(%q) left %q, want %q", test.in, rest, test.rest)
		}
	}
}

func TestSkipWhiteSpace(t *testing.T) {
	s := NewScanner("  \t1")
	if !s.SkipWhiteSpace() {
		t.Error("white space not skipped")
	}
	if s.SkipWhiteSpace() {
		t.Error("skipped white space twice")
	}
	if s.Pos() != 3 {
		t.Errorf("position = %d, want 3", s.Pos())
	}
	if _, err := s.ReadNumber(); err != nil {
		t.Fatal(err)
	}
	if !s.EOF() {
		t.Errorf("unexpected trailing input %q", s.Rest())
	}
}
