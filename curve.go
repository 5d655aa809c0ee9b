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

import "seehuhn.de/go/geom/vec"

// Curve is a parametric curve segment over the parameter range [0, 1].
type Curve interface {
	// Start returns the point at t=0.
	Start() vec.Vec2

	// End returns the point at t=1.
	End() vec.Vec2

	// CurvatureSquared returns the square of an upper bound for the
	// distance between the curve and its chord. Straight lines return 0.
	CurvatureSquared() float64

	// SplitAt divides the curve at parameter t into two curves, each
	// re-parametrized over [0, 1].
	SplitAt(t float64) (Curve, Curve)

	// Reverse returns the same curve traversed from End to Start.
	Reverse() Curve
}

// TaggedCurve is a curve together with caller data. The payload is carried
// through flattening and arrangement and ends up on the graph edges.
type TaggedCurve struct {
	Curve   Curve
	Payload any
}

// Line is a straight segment.
type Line struct {
	P0, P1 vec.Vec2
}

func (l Line) Start() vec.Vec2           { return l.P0 }
func (l Line) End() vec.Vec2             { return l.P1 }
func (l Line) CurvatureSquared() float64 { return 0 }
func (l Line) Reverse() Curve            { return Line{P0: l.P1, P1: l.P0} }

func (l Line) SplitAt(t float64) (Curve, Curve) {
	m := lerp(l.P0, l.P1, t)
	return Line{P0: l.P0, P1: m}, Line{P0: m, P1: l.P1}
}

// Quad is a quadratic Bézier curve with control point P1.
type Quad struct {
	P0, P1, P2 vec.Vec2
}

func (q Quad) Start() vec.Vec2 { return q.P0 }
func (q Quad) End() vec.Vec2   { return q.P2 }
func (q Quad) Reverse() Curve  { return Quad{P0: q.P2, P1: q.P1, P2: q.P0} }

// CurvatureSquared uses the error vector e = (P0 - 2*P1 + P2) / 4, which is
// the maximal deviation of the curve from its chord.
func (q Quad) CurvatureSquared() float64 {
	e := q.P0.Sub(q.P1.Mul(2)).Add(q.P2).Mul(0.25)
	return e.X*e.X + e.Y*e.Y
}

func (q Quad) SplitAt(t float64) (Curve, Curve) {
	a := lerp(q.P0, q.P1, t)
	b := lerp(q.P1, q.P2, t)
	m := lerp(a, b, t)
	return Quad{P0: q.P0, P1: a, P2: m}, Quad{P0: m, P1: b, P2: q.P2}
}

// Cubic is a cubic Bézier curve with control points P1 and P2.
type Cubic struct {
	P0, P1, P2, P3 vec.Vec2
}

func (c Cubic) Start() vec.Vec2 { return c.P0 }
func (c Cubic) End() vec.Vec2   { return c.P3 }

func (c Cubic) Reverse() Curve {
	return Cubic{P0: c.P3, P1: c.P2, P2: c.P1, P3: c.P0}
}

// CurvatureSquared uses Wang's bound: the curve stays within
// 3/4 * max(|d1|, |d2|) of its chord.
func (c Cubic) CurvatureSquared() float64 {
	d1 := c.P0.Sub(c.P1.Mul(2)).Add(c.P2) // P0 - 2*P1 + P2
	d2 := c.P1.Sub(c.P2.Mul(2)).Add(c.P3) // P1 - 2*P2 + P3
	m := max(d1.X*d1.X+d1.Y*d1.Y, d2.X*d2.X+d2.Y*d2.Y)
	return m * 9 / 16
}

func (c Cubic) SplitAt(t float64) (Curve, Curve) {
	a := lerp(c.P0, c.P1, t)
	b := lerp(c.P1, c.P2, t)
	d := lerp(c.P2, c.P3, t)
	ab := lerp(a, b, t)
	bd := lerp(b, d, t)
	m := lerp(ab, bd, t)
	return Cubic{P0: c.P0, P1: a, P2: ab, P3: m}, Cubic{P0: m, P1: bd, P2: d, P3: c.P3}
}

func lerp(a, b vec.Vec2, t float64) vec.Vec2 {
	return a.Add(b.Sub(a).Mul(t))
}

// Piece is one flat segment produced by Flatten, in input units.
// T0 and T1 give the span of the original curve covered by the piece.
type Piece struct {
	A, B    vec.Vec2
	T0, T1  float64
	Payload any
}

// Flatten approximates c by straight pieces. A curve whose CurvatureSquared
// is at most tol is emitted as a single piece, otherwise it is split at its
// midpoint and both halves are flattened in turn. Pieces are emitted in
// curve order.
func Flatten(c Curve, payload any, tol float64, emit func(Piece)) {
	flatten(c, payload, tol, 0, 1, 0, emit)
}

func flatten(c Curve, payload any, tol, t0, t1 float64, depth int, emit func(Piece)) {
	// NaN compares false, so curves with NaN coordinates are emitted as is.
	if !(c.CurvatureSquared() > tol) || depth >= maxFlattenDepth {
		emit(Piece{A: c.Start(), B: c.End(), T0: t0, T1: t1, Payload: payload})
		return
	}
	left, right := c.SplitAt(0.5)
	mid := (t0 + t1) / 2
	flatten(left, payload, tol, t0, mid, depth+1, emit)
	flatten(right, payload, tol, mid, t1, depth+1, emit)
}

// maxFlattenDepth bounds the recursion in flatten. Each split divides the
// curvature bound by at least four, so this is only reached for a
// tolerance of zero or less.
const maxFlattenDepth = 16
