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

import "fmt"

// Loop is a minimal cycle of half-edges bounding one face of the graph.
type Loop struct {
	HalfEdges []HalfEdge
	Coords    []Coord // origin of each half-edge, in loop order

	// Winding is the winding number of the face.
	Winding int

	// Outer is set for the loop around the unbounded face.
	Outer bool

	// Skipped is set if the loop could not be triangulated.
	Skipped bool

	tris [][3]Coord
}

// loopIndex maps every half-edge to the loop it belongs to.
type loopIndex [][2]int

func (li loopIndex) of(h HalfEdge) int {
	return li[h.Edge][h.Side]
}

// extractLoops partitions the half-edges of g into loops. Seeds are taken
// in order of edge index, left side first, so the loop order is
// deterministic.
func extractLoops(g *Graph) ([]Loop, loopIndex, error) {
	return traceLoops(g, g.Next)
}

// traceLoops follows next from every unvisited half-edge until the seed
// is reached again. On a finished graph next is a permutation of the
// half-edges and both checks below never fire; they stop the trace for
// a corrupted successor function.
func traceLoops(g *Graph, next func(HalfEdge) HalfEdge) ([]Loop, loopIndex, error) {
	li := make(loopIndex, len(g.Edges))
	for e := range li {
		li[e] = [2]int{-1, -1}
	}

	// a face boundary cannot be longer than the total number of half-edges
	bound := 2 * len(g.Edges)

	var loops []Loop
	for e := range g.Edges {
		for _, side := range [2]Side{Left, Right} {
			seed := HalfEdge{Edge: e, Side: side}
			if li.of(seed) >= 0 {
				continue
			}

			id := len(loops)
			var loop Loop
			h := seed
			for {
				if li.of(h) >= 0 || len(loop.HalfEdges) >= bound {
					return nil, nil, &Error{
						Phase:  "loops",
						Detail: fmt.Sprintf("loop %d from half-edge %v at %v", id, seed, g.Vertices[g.Origin(seed)].Coord),
						Err:    ErrLoopBound,
					}
				}
				li[h.Edge][h.Side] = id
				loop.HalfEdges = append(loop.HalfEdges, h)
				loop.Coords = append(loop.Coords, g.Vertices[g.Origin(h)].Coord)

				h = next(h)
				if h == seed {
					break
				}
			}
			loops = append(loops, loop)
		}
	}
	return loops, li, nil
}
