package tessellate

import (
	"slices"
	"testing"
)

func seg(ax, ay, bx, by int64) Segment {
	return Segment{A: Coord{ax, ay}, B: Coord{bx, by}, T0: 0, T1: 1}
}

func TestHitCuts(t *testing.T) {
	cases := []struct {
		name     string
		s, t     Segment
		onS, onT []Coord
		oneSided bool // rounding depends on which segment is first
	}{
		{"crossing", seg(0, 0, 10, 10), seg(0, 10, 10, 0), []Coord{{5, 5}}, []Coord{{5, 5}}, false},
		{"rounded", seg(0, 0, 3, 1), seg(0, 1, 3, 0), []Coord{{2, 1}}, []Coord{{2, 1}}, true},
		{"t_junction", seg(0, 0, 10, 0), seg(5, 0, 5, 5), []Coord{{5, 0}}, nil, false},
		{"shared_endpoint", seg(0, 0, 10, 0), seg(10, 0, 10, 10), nil, nil, false},
		{"overlap", seg(0, 0, 10, 0), seg(5, 0, 15, 0), []Coord{{5, 0}}, []Coord{{10, 0}}, false},
		{"contained", seg(0, 0, 10, 0), seg(2, 0, 8, 0), []Coord{{2, 0}, {8, 0}}, nil, false},
		{"collinear_apart", seg(0, 0, 10, 0), seg(20, 0, 30, 0), nil, nil, false},
		{"parallel", seg(0, 0, 10, 0), seg(0, 1, 10, 1), nil, nil, false},
		{"apart", seg(0, 0, 1, 0), seg(5, 5, 6, 7), nil, nil, false},
		{"near_miss", seg(0, 0, 10, 0), seg(5, 1, 5, 10), nil, nil, false},
		{"identical", seg(0, 0, 10, 0), seg(10, 0, 0, 0), nil, nil, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			onS, onT := hitCuts(c.s, c.t)
			if !slices.Equal(onS, c.onS) || !slices.Equal(onT, c.onT) {
				t.Errorf("got %v/%v, want %v/%v", onS, onT, c.onS, c.onT)
			}

			if c.oneSided {
				return
			}
			onT2, onS2 := hitCuts(c.t, c.s)
			if !sameSet(onS, onS2) || !sameSet(onT, onT2) {
				t.Errorf("swapped arguments give %v/%v", onS2, onT2)
			}
		})
	}
}

func sameSet(a, b []Coord) bool {
	for _, x := range a {
		if !slices.Contains(b, x) {
			return false
		}
	}
	for _, x := range b {
		if !slices.Contains(a, x) {
			return false
		}
	}
	return true
}

func TestSplit(t *testing.T) {
	s := Segment{A: Coord{0, 0}, B: Coord{10, 0}, T0: 0, T1: 1, Payload: "p", Source: 7}
	frags := split(s, []Coord{{5, 0}, {2, 0}, {5, 0}, {0, 0}, {10, 0}})

	want := []Segment{
		{A: Coord{0, 0}, B: Coord{2, 0}, T0: 0, T1: 0.2, Payload: "p", Source: 7},
		{A: Coord{2, 0}, B: Coord{5, 0}, T0: 0.2, T1: 0.5, Payload: "p", Source: 7},
		{A: Coord{5, 0}, B: Coord{10, 0}, T0: 0.5, T1: 1, Payload: "p", Source: 7},
	}
	if !slices.Equal(frags, want) {
		t.Errorf("got %v", frags)
	}
}

func TestSplitReversed(t *testing.T) {
	s := Segment{A: Coord{10, 0}, B: Coord{0, 0}, T0: 0.5, T1: 1, Source: 3}
	frags := split(s, []Coord{{4, 0}, {8, 0}})
	if len(frags) != 3 {
		t.Fatalf("got %d fragments", len(frags))
	}
	if frags[0].B != (Coord{8, 0}) || frags[1].B != (Coord{4, 0}) || frags[2].B != s.B {
		t.Errorf("fragments out of order: %v", frags)
	}
	if frags[0].T0 != 0.5 || frags[2].T1 != 1 {
		t.Errorf("wrong spans: %v", frags)
	}
	for i := 1; i < len(frags); i++ {
		if frags[i].T0 != frags[i-1].T1 || !(frags[i].T0 > frags[i-1].T0) {
			t.Errorf("spans not increasing: %v", frags)
		}
	}
}

func TestSplitOffLine(t *testing.T) {
	// rounded crossing points need not lie on the segment
	s := seg(0, 0, 3, 1)
	frags := split(s, []Coord{{2, 1}})
	if len(frags) != 2 {
		t.Fatalf("got %d fragments", len(frags))
	}
	if frags[0].B != (Coord{2, 1}) || frags[1].A != (Coord{2, 1}) {
		t.Errorf("wrong fragments %v", frags)
	}
	if frags[0].T1 != 0.7 {
		t.Errorf("wrong parameter %g", frags[0].T1)
	}
}

func TestCrossesOrTouches(t *testing.T) {
	s := seg(0, 0, 10, 0)
	cases := []struct {
		p, q Coord
		want bool
	}{
		{Coord{5, -5}, Coord{5, 5}, true},   // crossing
		{Coord{5, 0}, Coord{5, 5}, true},    // starts on s
		{Coord{10, 0}, Coord{10, 5}, false}, // shared endpoint
		{Coord{0, 5}, Coord{10, 5}, false},  // parallel
		{Coord{10, 0}, Coord{0, 0}, true},   // same segment
		{Coord{2, 0}, Coord{20, 0}, true},   // overlap
	}
	for _, c := range cases {
		if got := crossesOrTouches(c.p, c.q, s); got != c.want {
			t.Errorf("%v-%v: got %t", c.p, c.q, got)
		}
	}
}
