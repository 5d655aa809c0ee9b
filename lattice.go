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
	"math"

	"seehuhn.de/go/geom/vec"
)

// Coord is a point on the integer lattice. All geometric predicates of the
// engine operate on Coord values, so that equality and orientation tests
// are exact.
type Coord struct {
	X, Y int64
}

// MaxCoord is the largest absolute value of a lattice coordinate. Below
// this limit all products of coordinate differences used by the geometric
// predicates fit into an int64.
const MaxCoord = 1<<30 - 1

// Snap divides p by the lattice unit and rounds to the nearest lattice point.
// The second return value is false if p is not finite or if a coordinate
// of the lattice point would exceed MaxCoord in absolute value.
func Snap(p vec.Vec2, resolution float64) (Coord, bool) {
	x := math.Round(p.X / resolution)
	y := math.Round(p.Y / resolution)
	if !(math.Abs(x) <= MaxCoord && math.Abs(y) <= MaxCoord) {
		return Coord{}, false
	}
	return Coord{X: int64(x), Y: int64(y)}, true
}

// inRange reports whether both coordinates of c are within MaxCoord.
func (c Coord) inRange() bool {
	return c.X >= -MaxCoord && c.X <= MaxCoord && c.Y >= -MaxCoord && c.Y <= MaxCoord
}

// Vec returns the point in input units.
func (c Coord) Vec(resolution float64) vec.Vec2 {
	return vec.Vec2{X: float64(c.X) * resolution, Y: float64(c.Y) * resolution}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Sub returns c-d.
func (c Coord) Sub(d Coord) Coord {
	return Coord{X: c.X - d.X, Y: c.Y - d.Y}
}

// less orders coordinates by y, then by x.
func (c Coord) less(d Coord) bool {
	if c.Y != d.Y {
		return c.Y < d.Y
	}
	return c.X < d.X
}

// cross returns the z-component of the cross product a×b.
func cross(a, b Coord) int64 {
	return a.X*b.Y - a.Y*b.X
}

// dot returns the scalar product of a and b.
func dot(a, b Coord) int64 {
	return a.X*b.X + a.Y*b.Y
}

// orient returns twice the signed area of the triangle abc.
// The result is positive if a→b→c turns counter-clockwise.
func orient(a, b, c Coord) int64 {
	return cross(b.Sub(a), c.Sub(b))
}

func sign(x int64) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// dist2 returns the squared Euclidean distance between a and b.
func dist2(a, b Coord) int64 {
	d := b.Sub(a)
	return dot(d, d)
}

// signedArea2 returns twice the signed (shoelace) area of the polygon.
func signedArea2(poly []Coord) int64 {
	var sum int64
	n := len(poly)
	for i := range n {
		a, b := poly[i], poly[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum
}
