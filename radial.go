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
	"cmp"
	"slices"
)

// quadrant numbers the four quarter-planes counter-clockwise, starting
// with the positive x-axis. Every non-zero vector belongs to exactly one
// quadrant.
func quadrant(d Coord) int {
	switch {
	case d.X > 0 && d.Y >= 0:
		return 0
	case d.X <= 0 && d.Y > 0:
		return 1
	case d.X < 0 && d.Y <= 0:
		return 2
	default:
		return 3
	}
}

// compareRays orders two edges incident to vertex v by the angle of the
// ray from v to their other endpoint, counter-clockwise from the positive
// x-axis. Only integer arithmetic is used, so the order is exact.
//
// Edges along the same ray are ordered outgoing (V0 == v) before incoming,
// and then by edge index.
func (g *Graph) compareRays(v, a, b int) int {
	at := g.Vertices[v].Coord
	da := g.Vertices[g.far(a, v)].Coord.Sub(at)
	db := g.Vertices[g.far(b, v)].Coord.Sub(at)

	if qa, qb := quadrant(da), quadrant(db); qa != qb {
		return cmp.Compare(qa, qb)
	}
	// inside one quadrant the angles differ by less than π/2
	if c := cross(da, db); c != 0 {
		if c > 0 {
			return -1
		}
		return 1
	}

	outA := g.Edges[a].V0 == v
	outB := g.Edges[b].V0 == v
	if outA != outB {
		if outA {
			return -1
		}
		return 1
	}
	return cmp.Compare(a, b)
}

// far returns the endpoint of edge e which is not v.
func (g *Graph) far(e, v int) int {
	if g.Edges[e].V0 == v {
		return g.Edges[e].V1
	}
	return g.Edges[e].V0
}

func (g *Graph) sortRadially(v int) {
	slices.SortFunc(g.Vertices[v].Edges, func(a, b int) int {
		return g.compareRays(v, a, b)
	})
}
