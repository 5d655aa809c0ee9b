package testcases

import "seehuhn.de/go/geom/path"

var basicCases = []TestCase{
	{
		Name:     "square_ccw",
		Path:     rectangle(10, 10, 30, 30),
		Width:    64,
		Height:   64,
		Areas:    Areas{NonZero: 400, EvenOdd: 400, Positive: 400},
		Windings: []int{1},
	},
	{
		Name:     "square_cw",
		Path:     rectangleCW(10, 10, 30, 30),
		Width:    64,
		Height:   64,
		Areas:    Areas{NonZero: 400, EvenOdd: 400, Negative: 400},
		Windings: []int{-1},
	},
	{
		Name:     "triangle",
		Path:     triangle(10, 10, 54, 10, 32, 50),
		Width:    64,
		Height:   64,
		Areas:    Areas{NonZero: 880, EvenOdd: 880, Positive: 880},
		Windings: []int{1},
	},
	{
		Name:     "u_shape",
		Path:     polygon(&path.Data{}, 10, 10, 40, 10, 40, 40, 30, 40, 30, 20, 20, 20, 20, 40, 10, 40),
		Width:    64,
		Height:   64,
		Areas:    Areas{NonZero: 700, EvenOdd: 700, Positive: 700},
		Windings: []int{1},
	},
}

// triangle builds a triangular path.
func triangle(x1, y1, x2, y2, x3, y3 float64) *path.Data {
	return polygon(&path.Data{}, x1, y1, x2, y2, x3, y3)
}
