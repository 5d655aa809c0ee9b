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

	"go.uber.org/zap"
)

// assignWindings sets the winding number of every loop. The loop around
// the unbounded face gets winding 0, and crossing an edge from its right
// to its left side adds the edge weight.
//
// The flood fill runs on an explicit queue. It fails if some loops cannot
// be reached, which only happens for a disconnected graph.
func assignWindings(g *Graph, loops []Loop, li loopIndex, log *zap.Logger) error {
	if len(loops) == 0 {
		return nil
	}
	start, ok := g.outside()
	if !ok {
		return nil
	}

	resolved := make([]bool, len(loops))
	seed := li.of(start)
	loops[seed].Winding = 0
	loops[seed].Outer = true
	resolved[seed] = true

	queue := []int{seed}
	for len(queue) > 0 {
		l := queue[0]
		queue = queue[1:]

		for _, h := range loops[l].HalfEdges {
			peer := li.of(h.Twin())
			w := acrossWinding(loops[l].Winding, h, g.Edges[h.Edge].Weight)
			if !resolved[peer] {
				loops[peer].Winding = w
				resolved[peer] = true
				queue = append(queue, peer)
			} else if loops[peer].Winding != w {
				log.Warn("inconsistent winding",
					zap.Int("loop", peer),
					zap.Int("have", loops[peer].Winding),
					zap.Int("want", w),
					zap.Stringer("edge", h))
			}
		}
	}

	for l, ok := range resolved {
		if !ok {
			return &Error{
				Phase:  "winding",
				Detail: fmt.Sprintf("loop %d at %v unreachable from outside", l, loops[l].Coords[0]),
				Err:    ErrWindingStalled,
			}
		}
	}
	return nil
}

// acrossWinding returns the winding number on the other side of the edge
// of h, given the winding w on the side of h.
func acrossWinding(w int, h HalfEdge, weight int) int {
	if h.Side == Right {
		return w + weight
	}
	return w - weight
}
