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

import "seehuhn.de/go/geom/path"

// kappa for cubic Bezier approximation of a quarter circle
const kappa = 0.5522847498307936

var curveCases = []TestCase{
	{
		Name:      "circle",
		Path:      circle(32, 32, 20),
		Width:     64,
		Height:    64,
		Areas:     Areas{NonZero: 1256, EvenOdd: 1256, Positive: 1256},
		Tolerance: 0.01,
		Windings:  []int{1},
	},
	{
		Name:       "circle_fine",
		Path:       circle(32, 32, 20),
		Width:      64,
		Height:     64,
		Resolution: 0.125,
		Areas:      Areas{NonZero: 1247.4375, EvenOdd: 1247.4375, Positive: 1247.4375},
		Tolerance:  0.01,
		Windings:   []int{1},
	},
	{
		Name:      "ring",
		Path:      join(circle(32, 32, 24), circleCW(32, 32, 12)),
		Width:     64,
		Height:    64,
		Areas:     Areas{NonZero: 1364, EvenOdd: 1364, Positive: 1364},
		Tolerance: 0.01,
		Windings:  []int{0, 1},
	},
	{
		Name:      "two_circles",
		Path:      join(circle(24, 32, 14), circle(40, 32, 14)),
		Width:     64,
		Height:    64,
		Areas:     Areas{NonZero: 1054, EvenOdd: 852, Positive: 1054},
		Tolerance: 0.01,
		Windings:  []int{1, 1, 2},
	},
	{
		Name: "quadratic_lens",
		Path: (&path.Data{}).
			MoveTo(pt(10, 32)).
			QuadTo(pt(32, 60), pt(54, 32)).
			QuadTo(pt(32, 4), pt(10, 32)).
			Close(),
		Width:     64,
		Height:    64,
		Areas:     Areas{NonZero: 803, EvenOdd: 803, Negative: 803},
		Tolerance: 0.01,
		Windings:  []int{-1},
	},
	{
		Name:     "cancelling_circles",
		Path:     join(circle(32, 32, 20), circleCW(32, 32, 20)),
		Width:    64,
		Height:   64,
		Windings: []int{0},
	},
}

// circle builds a counter-clockwise circle from four cubic Bézier curves.
func circle(cx, cy, r float64) *path.Data {
	k := r * kappa
	return (&path.Data{}).
		MoveTo(pt(cx+r, cy)).
		CubeTo(pt(cx+r, cy+k), pt(cx+k, cy+r), pt(cx, cy+r)).
		CubeTo(pt(cx-k, cy+r), pt(cx-r, cy+k), pt(cx-r, cy)).
		CubeTo(pt(cx-r, cy-k), pt(cx-k, cy-r), pt(cx, cy-r)).
		CubeTo(pt(cx+k, cy-r), pt(cx+r, cy-k), pt(cx+r, cy)).
		Close()
}

// circleCW builds a clockwise circle, the reverse of circle.
func circleCW(cx, cy, r float64) *path.Data {
	k := r * kappa
	return (&path.Data{}).
		MoveTo(pt(cx+r, cy)).
		CubeTo(pt(cx+r, cy-k), pt(cx+k, cy-r), pt(cx, cy-r)).
		CubeTo(pt(cx-k, cy-r), pt(cx-r, cy-k), pt(cx-r, cy)).
		CubeTo(pt(cx-r, cy+k), pt(cx-k, cy+r), pt(cx, cy+r)).
		CubeTo(pt(cx+k, cy+r), pt(cx+r, cy+k), pt(cx+r, cy)).
		Close()
}
