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

// Package geojson converts tessellation results to GeoJSON feature
// collections, for inspection in GIS tools.
package geojson

import (
	"github.com/paulmach/go.geo"
	"github.com/paulmach/go.geo/reducers"
	gj "github.com/paulmach/go.geojson"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/tessellate"
)

// Options select the features to emit.
type Options struct {
	// Rule decides which loops are marked as filled, and which loops
	// contribute triangles.
	Rule tessellate.FillRule

	// Loops adds one Polygon feature per face boundary, including the
	// outer loop.
	Loops bool

	// Triangles adds one Polygon feature per triangle of a filled loop.
	Triangles bool

	// Reduce is the Visvalingam area threshold, in squared input units,
	// applied to loop outlines. Zero keeps all vertices.
	Reduce float64
}

// FromResult builds a feature collection from r.
//
// Loop features carry the properties "kind" ("loop"), "loop", "winding",
// "outer", "skipped" and "filled". Triangle features carry "kind"
// ("triangle"), "loop" and "winding".
func FromResult(r *tessellate.Result, opt *Options) *gj.FeatureCollection {
	fc := gj.NewFeatureCollection()

	if opt.Loops {
		for i, l := range r.Loops {
			pts := make([]vec.Vec2, len(l.Coords))
			for j, c := range l.Coords {
				pts[j] = c.Vec(r.Resolution)
			}
			if opt.Reduce > 0 {
				pts = reduce(pts, opt.Reduce)
			}

			f := gj.NewPolygonFeature([][][]float64{ring(pts)})
			f.SetProperty("kind", "loop")
			f.SetProperty("loop", i)
			f.SetProperty("winding", l.Winding)
			f.SetProperty("outer", l.Outer)
			f.SetProperty("skipped", l.Skipped)
			f.SetProperty("filled", !l.Outer && opt.Rule.Fills(l.Winding))
			fc.AddFeature(f)
		}
	}

	if opt.Triangles {
		for i, l := range r.Loops {
			if l.Outer || !opt.Rule.Fills(l.Winding) {
				continue
			}
			for _, t := range r.LoopTriangles(i) {
				f := gj.NewPolygonFeature([][][]float64{ring(t[:])})
				f.SetProperty("kind", "triangle")
				f.SetProperty("loop", i)
				f.SetProperty("winding", l.Winding)
				fc.AddFeature(f)
			}
		}
	}

	return fc
}

// ring converts the vertices of a polygon to a closed GeoJSON ring.
func ring(pts []vec.Vec2) [][]float64 {
	res := make([][]float64, 0, len(pts)+1)
	for _, p := range pts {
		res = append(res, []float64{p.X, p.Y})
	}
	if len(pts) > 0 {
		res = append(res, []float64{pts[0].X, pts[0].Y})
	}
	return res
}

// reduce removes vertices which contribute less than threshold to the
// area of the outline. Outlines which would collapse are returned
// unchanged.
func reduce(pts []vec.Vec2, threshold float64) []vec.Vec2 {
	path := geo.NewPathPreallocate(len(pts), len(pts))
	for i, p := range pts {
		path.SetAt(i, &geo.Point{p.X, p.Y})
	}
	simplified := reducers.VisvalingamThreshold(path, threshold)

	n := simplified.Length()
	if n < 3 {
		return pts
	}
	res := make([]vec.Vec2, n)
	for i := range n {
		p := simplified.GetAt(i)
		res[i] = vec.Vec2{X: p[0], Y: p[1]}
	}
	return res
}
