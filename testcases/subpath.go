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

var subpathCases = []TestCase{
	{
		Name: "two_triangles",
		Path: join(
			triangle(10, 10, 30, 10, 20, 30),
			triangle(40, 10, 60, 10, 50, 30)),
		Width:    64,
		Height:   64,
		Areas:    Areas{NonZero: 400, EvenOdd: 400, Positive: 400},
		Windings: []int{1, 1},
	},
	{
		Name: "open_subpath",
		Path: (&path.Data{}).
			MoveTo(pt(10, 10)).
			LineTo(pt(30, 10)).
			LineTo(pt(30, 30)),
		Width:    64,
		Height:   64,
		Areas:    Areas{NonZero: 200, EvenOdd: 200, Positive: 200},
		Windings: []int{1},
	},
	{
		Name: "open_then_closed",
		Path: join(
			(&path.Data{}).
				MoveTo(pt(10, 10)).
				LineTo(pt(20, 10)).
				LineTo(pt(20, 20)).
				LineTo(pt(10, 20)),
			rectangle(30, 30, 40, 40)),
		Width:    64,
		Height:   64,
		Areas:    Areas{NonZero: 200, EvenOdd: 200, Positive: 200},
		Windings: []int{1, 1},
	},
	{
		Name:     "explicit_return",
		Path:     polygon(&path.Data{}, 10, 10, 30, 10, 30, 30, 10, 10),
		Width:    64,
		Height:   64,
		Areas:    Areas{NonZero: 200, EvenOdd: 200, Positive: 200},
		Windings: []int{1},
	},
	{
		Name:     "stray_move",
		Path:     join((&path.Data{}).MoveTo(pt(50, 50)), rectangle(10, 10, 30, 30)),
		Width:    64,
		Height:   64,
		Areas:    Areas{NonZero: 400, EvenOdd: 400, Positive: 400},
		Windings: []int{1},
	},
}
