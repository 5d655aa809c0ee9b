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
	"fmt"
	"strings"

	"seehuhn.de/go/geom/vec"
)

// FillRule decides from the winding number of a region whether the
// region is filled.
type FillRule int

const (
	// NonZero fills regions with non-zero winding number.
	NonZero FillRule = iota

	// EvenOdd fills regions with odd winding number.
	EvenOdd

	// Positive fills regions with positive winding number.
	Positive

	// Negative fills regions with negative winding number.
	Negative
)

// Fills reports whether a region with the given winding number is filled.
func (r FillRule) Fills(winding int) bool {
	switch r {
	case NonZero:
		return winding != 0
	case EvenOdd:
		return winding%2 != 0
	case Positive:
		return winding > 0
	case Negative:
		return winding < 0
	}
	return false
}

func (r FillRule) String() string {
	switch r {
	case NonZero:
		return "nonzero"
	case EvenOdd:
		return "evenodd"
	case Positive:
		return "positive"
	case Negative:
		return "negative"
	}
	return fmt.Sprintf("FillRule(%d)", int(r))
}

// ParseFillRule converts a rule name to a FillRule. Besides the names
// returned by String, "odd" is accepted for EvenOdd.
func ParseFillRule(s string) (FillRule, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "nonzero", "non-zero":
		return NonZero, nil
	case "evenodd", "even-odd", "odd":
		return EvenOdd, nil
	case "positive":
		return Positive, nil
	case "negative":
		return Negative, nil
	}
	return 0, fmt.Errorf("unknown fill rule %q", s)
}

// Triangle is a triangle in input units.
type Triangle [3]vec.Vec2

// Area returns the signed area of the triangle, positive for
// counter-clockwise orientation.
func (t Triangle) Area() float64 {
	a, b, c := t[0], t[1], t[2]
	return ((b.X-a.X)*(c.Y-a.Y) - (c.X-a.X)*(b.Y-a.Y)) / 2
}

// Triangles returns the triangles of all loops whose winding number is
// filled by the rule. Loops are visited in order, and within a loop the
// triangles are in clipping order.
func (r *Result) Triangles(rule FillRule) []Triangle {
	var res []Triangle
	for i := range r.Loops {
		l := &r.Loops[i]
		if l.Outer || !rule.Fills(l.Winding) {
			continue
		}
		res = r.appendLoopTriangles(res, i)
	}
	return res
}

// LoopTriangles returns the triangulation of loop i, regardless of its
// winding number. The result is empty for the outer loop and for skipped
// loops.
func (r *Result) LoopTriangles(i int) []Triangle {
	return r.appendLoopTriangles(nil, i)
}

func (r *Result) appendLoopTriangles(res []Triangle, i int) []Triangle {
	for _, t := range r.Loops[i].tris {
		res = append(res, Triangle{
			t[0].Vec(r.Resolution),
			t[1].Vec(r.Resolution),
			t[2].Vec(r.Resolution),
		})
	}
	return res
}
