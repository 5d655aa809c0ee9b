package testcases

import "seehuhn.de/go/geom/path"

var degenerateCases = []TestCase{
	{
		Name:     "empty",
		Path:     &path.Data{},
		Width:    64,
		Height:   64,
		Windings: []int{},
	},
	{
		Name: "back_and_forth",
		Path: (&path.Data{}).
			MoveTo(pt(10, 10)).
			LineTo(pt(40, 10)).
			Close(),
		Width:    64,
		Height:   64,
		Windings: []int{},
	},
	{
		Name:     "collinear",
		Path:     triangle(10, 10, 20, 10, 30, 10),
		Width:    64,
		Height:   64,
		Windings: []int{},
	},
	{
		Name:     "flat_rectangle",
		Path:     rectangle(10, 10, 40, 10),
		Width:    64,
		Height:   64,
		Windings: []int{},
	},
	{
		Name:     "sub_lattice",
		Path:     rectangle(10.1, 10.1, 10.3, 10.3),
		Width:    64,
		Height:   64,
		Windings: []int{},
	},
	{
		Name:     "duplicate",
		Path:     join(rectangle(10, 10, 20, 20), rectangle(10, 10, 20, 20)),
		Width:    64,
		Height:   64,
		Areas:    Areas{NonZero: 100, Positive: 100},
		Windings: []int{2},
	},
	{
		Name:     "spike",
		Path:     polygon(&path.Data{}, 10, 10, 30, 10, 30, 30, 20, 30, 20, 40, 20, 30, 10, 30),
		Width:    64,
		Height:   64,
		Areas:    Areas{NonZero: 400, EvenOdd: 400, Positive: 400},
		Windings: []int{1},
	},
}
