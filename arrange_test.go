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
	"math"
	"slices"
	"testing"
)

// scrambled holds a few random polygons with many crossings, plus one
// square far away from the rest.
var scrambled = [][]Coord{
	{{19, 50}, {6, 9}, {12, 46}, {7, 27}, {4, 11}},
	{{53, 8}, {30, 11}, {54, 7}, {15, 28}, {7, 50}, {6, 28}},
	{{17, 37}, {53, 18}, {15, 39}},
	{{13, 24}, {47, 12}, {8, 7}, {26, 63}},
	{{40, 59}, {58, 46}, {38, 31}, {23, 31}, {10, 38}, {63, 43}},
	{{100, 0}, {110, 0}, {110, 10}, {100, 10}},
}

// polygonSegments returns the edges of the closed polygons. The Source of
// each segment is its index.
func polygonSegments(polys [][]Coord) []Segment {
	var segs []Segment
	for _, poly := range polys {
		for i, a := range poly {
			b := poly[(i+1)%len(poly)]
			segs = append(segs, Segment{A: a, B: b, T0: 0, T1: 1, Source: len(segs)})
		}
	}
	return segs
}

func TestArrangeNoCrossings(t *testing.T) {
	out, err := Arrange(polygonSegments(scrambled))
	if err != nil {
		t.Fatal(err)
	}
	for i := range out {
		if out[i].IsZero() {
			t.Errorf("segment %d has zero length", i)
		}
		for j := i + 1; j < len(out); j++ {
			onS, onT := hitCuts(out[i], out[j])
			if onS != nil || onT != nil {
				t.Errorf("segments %v-%v and %v-%v still meet", out[i].A, out[i].B, out[j].A, out[j].B)
			}
		}
	}
}

func TestArrangeChains(t *testing.T) {
	in := polygonSegments(scrambled)
	out, err := Arrange(in)
	if err != nil {
		t.Fatal(err)
	}

	bySource := make(map[int][]Segment)
	for _, s := range out {
		if s.Source >= 0 {
			bySource[s.Source] = append(bySource[s.Source], s)
		}
	}
	for i, s := range in {
		frags := bySource[i]
		if len(frags) == 0 {
			t.Errorf("segment %d vanished", i)
			continue
		}

		// The fragments must form a path from s.A to s.B.
		balance := make(map[Coord]int)
		span := 0.0
		for _, f := range frags {
			balance[f.A]++
			balance[f.B]--
			if f.T1 < f.T0 {
				t.Errorf("segment %d: fragment with span [%g, %g]", i, f.T0, f.T1)
			}
			span += f.T1 - f.T0
		}
		for c, n := range balance {
			want := 0
			switch c {
			case s.A:
				want = 1
			case s.B:
				want = -1
			}
			if n != want {
				t.Errorf("segment %d: fragments do not form a path at %v", i, c)
			}
		}
		if math.Abs(span-1) > 1e-9 {
			t.Errorf("segment %d: fragments cover a span of %g", i, span)
		}
	}
}

func TestArrangeConnected(t *testing.T) {
	out, err := Arrange(polygonSegments(scrambled))
	if err != nil {
		t.Fatal(err)
	}

	var bridges []Segment
	for _, s := range out {
		if s.Source < 0 {
			bridges = append(bridges, s)
		}
	}
	if len(bridges) != 2 {
		t.Fatalf("got %d bridge segments, want 2", len(bridges))
	}
	if bridges[0].A != bridges[1].B || bridges[0].B != bridges[1].A {
		t.Errorf("bridges %v and %v are not opposite", bridges[0], bridges[1])
	}

	if n := components(out); n != 1 {
		t.Errorf("%d components", n)
	}
}

func components(segs []Segment) int {
	index := make(map[Coord]int)
	vertex := func(c Coord) int {
		if i, ok := index[c]; ok {
			return i
		}
		index[c] = len(index)
		return index[c]
	}
	cc := &unionFind{}
	for _, s := range segs {
		a, b := vertex(s.A), vertex(s.B)
		cc.grow(len(index))
		cc.union(a, b)
	}
	return cc.count()
}

func TestArrangeDeterministic(t *testing.T) {
	first, err := Arrange(polygonSegments(scrambled))
	if err != nil {
		t.Fatal(err)
	}
	for range 3 {
		again, err := Arrange(polygonSegments(scrambled))
		if err != nil {
			t.Fatal(err)
		}
		if !slices.Equal(first, again) {
			t.Fatal("output differs between runs")
		}
	}
}

func TestArrangeZeroLength(t *testing.T) {
	in := []Segment{
		seg(0, 0, 0, 0),
		seg(0, 0, 10, 0),
		seg(10, 0, 0, 0),
	}
	out, err := Arrange(in)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 2 {
		t.Errorf("got %d segments, want 2", len(out))
	}

	out, err = Arrange(nil)
	if err != nil || len(out) != 0 {
		t.Errorf("empty input gives %v, %v", out, err)
	}
}

func TestArrangeOverlap(t *testing.T) {
	// Two overlapping collinear segments are cut into three pieces each
	// covering one stretch of the line.
	out, err := Arrange([]Segment{seg(0, 0, 10, 0), seg(5, 0, 15, 0)})
	if err != nil {
		t.Fatal(err)
	}
	want := map[[2]Coord]int{
		{{0, 0}, {5, 0}}:   1,
		{{5, 0}, {10, 0}}:  2,
		{{10, 0}, {15, 0}}: 1,
	}
	got := make(map[[2]Coord]int)
	for _, s := range out {
		got[[2]Coord{s.A, s.B}]++
	}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for k, n := range want {
		if got[k] != n {
			t.Errorf("%v occurs %d times, want %d", k, got[k], n)
		}
	}
}

func TestArrangeDiverged(t *testing.T) {
	defer func(f func(int) int) { maxCuts = f }(maxCuts)
	maxCuts = func(int) int { return 2 }

	_, err := Arrange(polygonSegments(scrambled))
	if !errors.Is(err, ErrArrangementDiverged) {
		t.Fatalf("got %v, want ErrArrangementDiverged", err)
	}
	var te *Error
	if !errors.As(err, &te) || te.Phase != "arrange" {
		t.Errorf("wrong error %#v", err)
	}

	// inputs without crossings need no cuts
	maxCuts = func(int) int { return 0 }
	if _, err := Arrange(polygonSegments(scrambled[5:])); err != nil {
		t.Error(err)
	}
}

func TestErrorWrapping(t *testing.T) {
	var err error = &Error{Phase: "bridge", Detail: "vertex (1,2)", Err: ErrDisconnected}
	if !errors.Is(err, ErrDisconnected) {
		t.Error("errors.Is fails")
	}
	if errors.Is(err, ErrWindingStalled) {
		t.Error("wrong error matched")
	}
	want := "tessellate: bridge: components cannot be bridged: vertex (1,2)"
	if err.Error() != want {
		t.Errorf("got %q", err.Error())
	}
	var te *Error
	if !errors.As(err, &te) || te.Phase != "bridge" {
		t.Error("errors.As fails")
	}
}
