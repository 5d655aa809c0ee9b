// seehuhn.de/go/tessellate - planar path tessellation
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

package tessellate

import (
	"errors"
	"fmt"
)

// Errors which abort a tessellation request. They are always wrapped in an
// *Error; use errors.Is to test for them.
var (
	ErrDisconnected        = errors.New("components cannot be bridged")
	ErrArrangementDiverged = errors.New("segment arrangement does not converge")
	ErrWindingStalled      = errors.New("winding propagation stalled")
	ErrLoopBound           = errors.New("loop exceeds safety bound")
	ErrRange               = errors.New("coordinate out of range")
)

// Error describes a fatal tessellation failure.
type Error struct {
	Phase  string // "flatten", "arrange", "bridge", "loops" or "winding"
	Detail string // the offending segment, vertex or loop
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("tessellate: %s: %v: %s", e.Phase, e.Err, e.Detail)
}

func (e *Error) Unwrap() error {
	return e.Err
}
