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

var overlapCases = []TestCase{
	{
		Name:     "origin_squares",
		Path:     join(rectangle(0, 0, 10, 10), rectangle(5, 5, 15, 15)),
		Width:    24,
		Height:   24,
		Areas:    Areas{NonZero: 175, EvenOdd: 150, Positive: 175},
		Windings: []int{1, 1, 2},
	},
	{
		Name:     "two_squares",
		Path:     join(rectangle(20, 20, 30, 30), rectangle(25, 25, 35, 35)),
		Width:    64,
		Height:   64,
		Areas:    Areas{NonZero: 175, EvenOdd: 150, Positive: 175},
		Windings: []int{1, 1, 2},
	},
	{
		Name:     "opposite_squares",
		Path:     join(rectangle(20, 20, 30, 30), rectangleCW(25, 25, 35, 35)),
		Width:    64,
		Height:   64,
		Areas:    Areas{NonZero: 150, EvenOdd: 150, Positive: 75, Negative: 75},
		Windings: []int{-1, 0, 1},
	},
	{
		Name:     "plus",
		Path:     join(rectangle(20, 10, 30, 40), rectangle(10, 20, 40, 30)),
		Width:    64,
		Height:   64,
		Areas:    Areas{NonZero: 500, EvenOdd: 400, Positive: 500},
		Windings: []int{1, 1, 1, 1, 2},
	},
	{
		Name: "three_squares",
		Path: join(
			rectangle(10, 10, 30, 30),
			rectangle(20, 20, 40, 40),
			rectangle(15, 15, 35, 35)),
		Width:    64,
		Height:   64,
		Areas:    Areas{NonZero: 750, EvenOdd: 500, Positive: 750},
		Windings: []int{1, 1, 1, 1, 2, 2, 3},
	},
	{
		Name:     "touching",
		Path:     join(rectangle(10, 10, 20, 20), rectangle(20, 10, 30, 20)),
		Width:    64,
		Height:   64,
		Areas:    Areas{NonZero: 200, EvenOdd: 200, Positive: 200},
		Windings: []int{1, 1},
	},
	{
		Name:     "corner_touch",
		Path:     join(rectangle(10, 10, 20, 20), rectangle(20, 20, 30, 30)),
		Width:    64,
		Height:   64,
		Areas:    Areas{NonZero: 200, EvenOdd: 200, Positive: 200},
		Windings: []int{1, 1},
	},
}

var holeCases = []TestCase{
	{
		Name:     "origin_hole",
		Path:     join(rectangle(0, 0, 20, 20), rectangleCW(5, 5, 15, 15)),
		Width:    24,
		Height:   24,
		Areas:    Areas{NonZero: 300, EvenOdd: 300, Positive: 300},
		Windings: []int{0, 1},
	},
	{
		Name:     "square_hole",
		Path:     join(rectangle(10, 10, 30, 30), rectangleCW(15, 15, 25, 25)),
		Width:    64,
		Height:   64,
		Areas:    Areas{NonZero: 300, EvenOdd: 300, Positive: 300},
		Windings: []int{0, 1},
	},
	{
		Name:     "nested_same_direction",
		Path:     join(rectangle(10, 10, 30, 30), rectangle(15, 15, 25, 25)),
		Width:    64,
		Height:   64,
		Areas:    Areas{NonZero: 400, EvenOdd: 300, Positive: 400},
		Windings: []int{1, 2},
	},
	{
		Name:     "disjoint",
		Path:     join(rectangle(10, 10, 20, 20), rectangle(30, 10, 40, 20)),
		Width:    64,
		Height:   64,
		Areas:    Areas{NonZero: 200, EvenOdd: 200, Positive: 200},
		Windings: []int{1, 1},
	},
}

var selfIntersectCases = []TestCase{
	{
		Name:     "bowtie",
		Path:     polygon(&path.Data{}, 10, 10, 20, 20, 20, 10, 10, 20),
		Width:    64,
		Height:   64,
		Areas:    Areas{NonZero: 50, EvenOdd: 50, Positive: 25, Negative: 25},
		Windings: []int{-1, 1},
	},
	{
		Name:     "star",
		Path:     polygon(&path.Data{}, 32, 7, 47, 52, 8, 24, 56, 24, 17, 52),
		Width:    64,
		Height:   64,
		Areas:    Areas{NonZero: 699, EvenOdd: 486, Positive: 699},
		Windings: []int{1, 1, 1, 1, 1, 2},
	},
}
