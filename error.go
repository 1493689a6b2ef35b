// seehuhn.de/go/schematic - a library for drawing communications schematics
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

package schematic

import "fmt"

// InvalidParameterError is returned when an element is constructed with a
// parameter value outside its documented range.  The only failure mode in
// this library is invalid construction parameters; shapes themselves cannot
// fail once built.
type InvalidParameterError struct {
	Element string // element name, e.g. "Block"
	Param   string // parameter name, e.g. "NumE"
	Value   any
}

func (err *InvalidParameterError) Error() string {
	return fmt.Sprintf("%s: invalid %s %v", err.Element, err.Param, err.Value)
}
