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

var precisionCases = []TestCase{
	{
		Name:     "offset_third",
		Path:     rectangle(10.3, 10.3, 30.3, 30.3),
		Width:    64,
		Height:   64,
		Areas:    Areas{NonZero: 400, EvenOdd: 400, Positive: 400},
		Windings: []int{1},
	},
	{
		Name:       "fine_resolution",
		Path:       rectangle(10.25, 10.25, 30.25, 30.25),
		Width:      64,
		Height:     64,
		Resolution: 0.5,
		Areas:      Areas{NonZero: 400, EvenOdd: 400, Positive: 400},
		Windings:   []int{1},
	},
	{
		// 10/3 rounds down and 30/3 is exact, so the square grows to 21x21.
		Name:       "coarse_resolution",
		Path:       rectangle(10, 10, 30, 30),
		Width:      64,
		Height:     64,
		Resolution: 3,
		Areas:      Areas{NonZero: 441, EvenOdd: 441, Positive: 441},
		Windings:   []int{1},
	},
	{
		Name:     "merged_gap",
		Path:     join(rectangle(10, 10, 20, 20), rectangle(20.2, 10, 30, 20)),
		Width:    64,
		Height:   64,
		Areas:    Areas{NonZero: 200, EvenOdd: 200, Positive: 200},
		Windings: []int{1, 1},
	},
	{
		Name:     "large_offset",
		Path:     rectangle(1e6, 1e6, 1e6+100, 1e6+100),
		Areas:    Areas{NonZero: 10000, EvenOdd: 10000, Positive: 10000},
		Windings: []int{1},
	},
	{
		Name: "huge_overlap",
		Path: join(
			rectangle(1e9, 1e9, 1e9+1000, 1e9+1000),
			rectangle(1e9+500, 1e9+500, 1e9+1500, 1e9+1500)),
		Areas:    Areas{NonZero: 1750000, EvenOdd: 1500000, Positive: 1750000},
		Windings: []int{1, 1, 2},
	},
	{
		// The diagonals cross at the origin with the largest cross product
		// the lattice admits.
		Name: "range_limit",
		Path: polygon(&path.Data{},
			-maxCoord, -maxCoord, maxCoord, maxCoord,
			maxCoord, -maxCoord, -maxCoord, maxCoord),
		Areas: Areas{
			NonZero:  2 * maxCoord * maxCoord,
			EvenOdd:  2 * maxCoord * maxCoord,
			Positive: maxCoord * maxCoord,
			Negative: maxCoord * maxCoord,
		},
		Windings: []int{-1, 1},
	},
}

// maxCoord is the largest lattice coordinate accepted at resolution 1.
const maxCoord = 1<<30 - 1
