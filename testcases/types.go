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

package testcases

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// TestCase defines a single tessellation test.
//
// Coordinates are y-up, so that counter-clockwise outlines have winding
// number +1.
type TestCase struct {
	Name   string     // lowercase a-z and _ only
	Path   *path.Data // the outline to tessellate
	Width  int        // canvas width in pixels, zero if the path does not fit a canvas
	Height int        // canvas height in pixels

	// Resolution is the lattice unit. Zero means 1.
	Resolution float64

	// Areas gives the expected total area of the triangles for each fill
	// rule.
	Areas Areas

	// Tolerance is the relative error allowed for Areas. Zero requires an
	// exact match.
	Tolerance float64

	// Windings lists the winding numbers of all bounded faces, in
	// increasing order.
	Windings []int
}

// FillRule selects one of the fill rules. The values match
// tessellate.FillRule.
type FillRule int

const (
	NonZero FillRule = iota
	EvenOdd
	Positive
	Negative
)

// Rules lists all fill rules.
var Rules = []FillRule{NonZero, EvenOdd, Positive, Negative}

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
	return "unknown"
}

// Areas holds one area per fill rule.
type Areas struct {
	NonZero  float64
	EvenOdd  float64
	Positive float64
	Negative float64
}

// For returns the area for the given rule.
func (a Areas) For(rule FillRule) float64 {
	switch rule {
	case NonZero:
		return a.NonZero
	case EvenOdd:
		return a.EvenOdd
	case Positive:
		return a.Positive
	case Negative:
		return a.Negative
	}
	return 0
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// polygon appends a closed polygon through the given points to p.
// The points are given as x, y pairs.
func polygon(p *path.Data, xy ...float64) *path.Data {
	p = p.MoveTo(pt(xy[0], xy[1]))
	for i := 2; i+1 < len(xy); i += 2 {
		p = p.LineTo(pt(xy[i], xy[i+1]))
	}
	return p.Close()
}

// rectangle builds a counter-clockwise rectangle.
func rectangle(x1, y1, x2, y2 float64) *path.Data {
	return polygon(&path.Data{}, x1, y1, x2, y1, x2, y2, x1, y2)
}

// rectangleCW builds a clockwise rectangle.
func rectangleCW(x1, y1, x2, y2 float64) *path.Data {
	return polygon(&path.Data{}, x1, y1, x1, y2, x2, y2, x2, y1)
}

// join concatenates the subpaths of several paths.
func join(ps ...*path.Data) *path.Data {
	res := &path.Data{}
	for _, p := range ps {
		res.Cmds = append(res.Cmds, p.Cmds...)
		res.Coords = append(res.Coords, p.Coords...)
	}
	return res
}
