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
	"errors"
	"slices"
)

// errNoEar is returned by earClip for polygons where a full scan finds no
// vertex that can be clipped.
var errNoEar = errors.New("no ear found")

// earClip triangulates a polygon by repeatedly cutting off ears. The
// triangles have the orientation of the polygon. Polygons with zero area
// give no triangles.
func earClip(poly []Coord) ([][3]Coord, error) {
	ring := removeCollinear(poly)
	if len(ring) < 3 {
		return nil, nil
	}
	s := int64(sign(signedArea2(ring)))
	if s == 0 {
		return nil, nil
	}

	tris := make([][3]Coord, 0, len(ring)-2)
	i, miss := 0, 0
	for len(ring) > 3 {
		n := len(ring)
		if miss >= n {
			return tris, errNoEar
		}
		i %= n
		a, b, c := ring[(i+n-1)%n], ring[i], ring[(i+1)%n]

		o := orient(a, b, c)
		if o == 0 {
			// A degenerate tip can appear after clipping. It has no area.
			ring = slices.Delete(ring, i, i+1)
			miss = 0
			continue
		}
		if o*s > 0 && isEar(ring, i, s) {
			tris = append(tris, [3]Coord{a, b, c})
			ring = slices.Delete(ring, i, i+1)
			miss = 0
			continue
		}
		i++
		miss++
	}
	if orient(ring[0], ring[1], ring[2]) != 0 {
		tris = append(tris, [3]Coord{ring[0], ring[1], ring[2]})
	}
	return tris, nil
}

// isEar reports whether the triangle at ring[i] contains no other polygon
// vertex, boundary included. Vertices coinciding with a corner of the
// triangle are ignored; these occur where a loop passes a point twice.
func isEar(ring []Coord, i int, s int64) bool {
	n := len(ring)
	a, b, c := ring[(i+n-1)%n], ring[i], ring[(i+1)%n]
	for k := 2; k < n-1; k++ {
		p := ring[(i+k)%n]
		if p == a || p == b || p == c {
			continue
		}
		if orient(a, b, p)*s >= 0 && orient(b, c, p)*s >= 0 && orient(c, a, p)*s >= 0 {
			return false
		}
	}
	return true
}

// removeCollinear drops every vertex which is collinear with both of its
// neighbours, until no such vertex is left. This includes repeated points
// and the tips of zero-width spikes.
func removeCollinear(poly []Coord) []Coord {
	ring := slices.Clone(poly)
	for changed := true; changed && len(ring) >= 3; {
		changed = false
		for i := 0; i < len(ring) && len(ring) >= 3; {
			n := len(ring)
			if orient(ring[(i+n-1)%n], ring[i], ring[(i+1)%n]) == 0 {
				ring = slices.Delete(ring, i, i+1)
				changed = true
				continue
			}
			i++
		}
	}
	if len(ring) < 3 {
		return nil
	}
	return ring
}
