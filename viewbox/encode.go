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

package viewbox

import "encoding/xml"

// MarshalText implements the [encoding.TextMarshaler] interface.
// The inactive viewBox is encoded as the empty string.
func (vb ViewBox) MarshalText() ([]byte, error) {
	if !vb.active {
		return nil, nil
	}
	return []byte(vb.format()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// If the text cannot be parsed, vb is left unchanged.
func (vb *ViewBox) UnmarshalText(text []byte) error {
	res, err := Parse(string(text))
	if err != nil {
		return err
	}
	*vb = res
	return nil
}

// MarshalXMLAttr implements the [xml.MarshalerAttr] interface.
// The inactive viewBox produces no attribute.
func (vb ViewBox) MarshalXMLAttr(name xml.Name) (xml.Attr, error) {
	if !vb.active {
		return xml.Attr{}, nil
	}
	return xml.Attr{Name: name, Value: vb.format()}, nil
}

// UnmarshalXMLAttr implements the [xml.UnmarshalerAttr] interface.
func (vb *ViewBox) UnmarshalXMLAttr(attr xml.Attr) error {
	return vb.UnmarshalText([]byte(attr.Value))
}
