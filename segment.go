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
	"math"
	"slices"
)

// Segment is a directed line segment on the lattice.
type Segment struct {
	A, B Coord

	// T0 and T1 give the parametric span of the source curve covered by
	// this segment.
	T0, T1 float64

	// Payload is the caller data of the source curve.
	Payload any

	// Source is the index of the input segment this one was cut from,
	// or -1 for bridges inserted during connectivity repair.
	Source int
}

// IsZero reports whether the segment has zero length.
func (s Segment) IsZero() bool {
	return s.A == s.B
}

// hitCuts finds the interior points at which s and t have to be split so
// that their interiors no longer meet. Shared endpoints are not a cut.
func hitCuts(s, t Segment) (onS, onT []Coord) {
	d := s.B.Sub(s.A)
	e := t.B.Sub(t.A)
	den := cross(d, e)

	if den == 0 {
		if cross(t.A.Sub(s.A), d) != 0 {
			return nil, nil // parallel, on different lines
		}
		// collinear: cut at every endpoint projected into the other interior
		onS = appendInterior(onS, s, t.A)
		onS = appendInterior(onS, s, t.B)
		onT = appendInterior(onT, t, s.A)
		onT = appendInterior(onT, t, s.B)
		return onS, onT
	}

	// point on line, possibly on both
	onS = appendInterior(onS, s, t.A)
	onS = appendInterior(onS, s, t.B)
	onT = appendInterior(onT, t, s.A)
	onT = appendInterior(onT, t, s.B)
	if onS != nil || onT != nil {
		return onS, onT
	}

	// transversal crossing: s.A + a*d = t.A + b*e with a = ns/den, b = nt/den
	w := t.A.Sub(s.A)
	ns := cross(w, e)
	nt := cross(w, d)
	if den < 0 {
		den, ns, nt = -den, -ns, -nt
	}
	if ns <= 0 || ns >= den || nt <= 0 || nt >= den {
		return nil, nil
	}
	a := float64(ns) / float64(den)
	x := Coord{
		X: s.A.X + int64(math.Round(float64(d.X)*a)),
		Y: s.A.Y + int64(math.Round(float64(d.Y)*a)),
	}
	if x != s.A && x != s.B {
		onS = append(onS, x)
	}
	if x != t.A && x != t.B {
		onT = append(onT, x)
	}
	return onS, onT
}

// appendInterior appends p to dst if p lies exactly on s, strictly between
// its endpoints.
func appendInterior(dst []Coord, s Segment, p Coord) []Coord {
	d := s.B.Sub(s.A)
	q := p.Sub(s.A)
	if cross(q, d) != 0 {
		return dst
	}
	k := dot(q, d)
	if k <= 0 || k >= dot(d, d) {
		return dst
	}
	return append(dst, p)
}

// split cuts s at the given points and returns the fragments in order from
// s.A to s.B. Cut points coinciding with an endpoint or with each other
// are ignored, so no fragment has zero length.
func split(s Segment, cuts []Coord) []Segment {
	d := s.B.Sub(s.A)
	dd := float64(dot(d, d))
	pos := func(p Coord) int64 { return dot(p.Sub(s.A), d) }

	pts := slices.Clone(cuts)
	slices.SortFunc(pts, func(p, q Coord) int {
		if c := cmp.Compare(pos(p), pos(q)); c != 0 {
			return c
		}
		if c := cmp.Compare(p.X, q.X); c != 0 {
			return c
		}
		return cmp.Compare(p.Y, q.Y)
	})
	pts = slices.Compact(pts)

	frags := make([]Segment, 0, len(pts)+1)
	prev, prevT := s.A, s.T0
	for _, p := range pts {
		if p == s.A || p == s.B || p == prev {
			continue
		}
		k := min(max(float64(pos(p))/dd, 0), 1)
		t := s.T0 + (s.T1-s.T0)*k
		frags = append(frags, Segment{A: prev, B: p, T0: prevT, T1: t, Payload: s.Payload, Source: s.Source})
		prev, prevT = p, t
	}
	if prev != s.B {
		frags = append(frags, Segment{A: prev, B: s.B, T0: prevT, T1: s.T1, Payload: s.Payload, Source: s.Source})
	}
	return frags
}

// crossesOrTouches reports whether the segment pq meets s anywhere other
// than at a shared endpoint.
func crossesOrTouches(p, q Coord, s Segment) bool {
	b := Segment{A: p, B: q}
	onB, onS := hitCuts(b, s)
	if onB != nil || onS != nil {
		return true
	}
	// identical segments produce no cuts but do overlap
	return (s.A == p && s.B == q) || (s.A == q && s.B == p)
}
