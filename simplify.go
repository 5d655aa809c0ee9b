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

// Simplify removes all edges which separate two faces treated alike by
// the rule, and tessellates what is left.
//
// The remaining edges are oriented to have the filled side on the left,
// so in the returned Result every filled face has winding number 1 and
// every other face has winding number 0. Use NonZero to select the filled
// faces from the returned Result.
func (r *Result) Simplify(rule FillRule) (*Result, error) {
	g := r.Graph
	ix := newSegmentIndex()
	for e, edge := range g.Edges {
		left := rule.Fills(r.Loops[r.li.of(HalfEdge{Edge: e, Side: Left})].Winding)
		right := rule.Fills(r.Loops[r.li.of(HalfEdge{Edge: e, Side: Right})].Winding)
		if left == right {
			continue
		}

		a, b := g.Vertices[edge.V0].Coord, g.Vertices[edge.V1].Coord
		if right {
			a, b = b, a
		}
		ix.add(Segment{A: a, B: b, T0: 0, T1: 1, Payload: edge.Payload, Source: e})
	}

	// Removing edges can split the graph into several components, but
	// cannot create new crossings.
	if err := ix.connect(); err != nil {
		return nil, err
	}

	log := r.log
	if log == nil {
		log = noLog
	}
	return build(ix.live(), r.Resolution, log)
}
