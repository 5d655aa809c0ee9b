package tessellate

import (
	"math"
	"slices"
	"testing"

	"seehuhn.de/go/geom/vec"
)

func TestSnap(t *testing.T) {
	cases := []struct {
		p    vec.Vec2
		res  float64
		want Coord
	}{
		{vec.Vec2{X: 0, Y: 0}, 1, Coord{0, 0}},
		{vec.Vec2{X: 1.4, Y: 1.6}, 1, Coord{1, 2}},
		{vec.Vec2{X: 0.5, Y: -0.5}, 1, Coord{1, -1}},
		{vec.Vec2{X: 2.5, Y: -2.5}, 1, Coord{3, -3}},
		{vec.Vec2{X: 10.25, Y: 10.75}, 0.5, Coord{21, 22}},
		{vec.Vec2{X: 10, Y: 30}, 3, Coord{3, 10}},
		{vec.Vec2{X: 1e9 + 0.4, Y: -1e9}, 1, Coord{1_000_000_000, -1_000_000_000}},
		{vec.Vec2{X: MaxCoord, Y: -MaxCoord - 0.4}, 1, Coord{MaxCoord, -MaxCoord}},
	}
	for _, c := range cases {
		got, ok := Snap(c.p, c.res)
		if !ok || got != c.want {
			t.Errorf("Snap(%v, %g) = %v, %t, want %v", c.p, c.res, got, ok, c.want)
		}
	}
}

func TestSnapOutOfRange(t *testing.T) {
	cases := []struct {
		p   vec.Vec2
		res float64
	}{
		{vec.Vec2{X: MaxCoord + 1, Y: 0}, 1},
		{vec.Vec2{X: 0, Y: -MaxCoord - 1}, 1},
		{vec.Vec2{X: 3e9, Y: 3e9}, 1},
		{vec.Vec2{X: 1e6, Y: 0}, 1e-4},
		{vec.Vec2{X: math.NaN(), Y: 0}, 1},
		{vec.Vec2{X: 0, Y: math.Inf(1)}, 1},
		{vec.Vec2{X: math.Inf(-1), Y: 0}, 1},
	}
	for _, c := range cases {
		if got, ok := Snap(c.p, c.res); ok {
			t.Errorf("Snap(%v, %g) = %v, want rejection", c.p, c.res, got)
		}
	}
}

func TestCoordVec(t *testing.T) {
	c := Coord{X: 21, Y: -3}
	got := c.Vec(0.5)
	if got.X != 10.5 || got.Y != -1.5 {
		t.Errorf("wrong point %v", got)
	}
	if s := c.String(); s != "(21,-3)" {
		t.Errorf("wrong string %q", s)
	}
}

func TestOrient(t *testing.T) {
	a, b := Coord{0, 0}, Coord{10, 0}
	if o := orient(a, b, Coord{5, 1}); o <= 0 {
		t.Errorf("left turn gives %d", o)
	}
	if o := orient(a, b, Coord{5, -1}); o >= 0 {
		t.Errorf("right turn gives %d", o)
	}
	if o := orient(a, b, Coord{20, 0}); o != 0 {
		t.Errorf("collinear points give %d", o)
	}

	// exact far away from the origin
	big := int64(1_000_000_000)
	p := Coord{big, big}
	q := Coord{big + 1000, big + 1}
	r := Coord{2*big + 2000, 2*big + 2}
	if o := orient(p.Sub(p), q.Sub(p), r.Sub(p)); o == 0 {
		t.Error("nearly collinear points reported as collinear")
	}
}

func TestSignedArea2(t *testing.T) {
	ccw := []Coord{{0, 0}, {4, 0}, {4, 3}, {0, 3}}
	if a := signedArea2(ccw); a != 24 {
		t.Errorf("counter-clockwise area %d, want 24", a)
	}
	cw := []Coord{{0, 0}, {0, 3}, {4, 3}, {4, 0}}
	if a := signedArea2(cw); a != -24 {
		t.Errorf("clockwise area %d, want -24", a)
	}
	if a := signedArea2(nil); a != 0 {
		t.Errorf("empty polygon has area %d", a)
	}

	big := int64(1_000_000_000)
	sq := []Coord{{big, big}, {big + 1000, big}, {big + 1000, big + 1000}, {big, big + 1000}}
	if a := signedArea2(sq); a != 2_000_000 {
		t.Errorf("offset square has area %d, want 2000000", a)
	}
}

// TestExtremeCoordinates checks the predicates at the corners of the
// admissible coordinate range, where the products come closest to
// overflowing.
func TestExtremeCoordinates(t *testing.T) {
	const m = MaxCoord
	ll, lr := Coord{-m, -m}, Coord{m, -m}
	ul, ur := Coord{-m, m}, Coord{m, m}

	if o := orient(ll, lr, ul); o <= 0 {
		t.Errorf("left turn gives %d", o)
	}
	if o := orient(ll, ul, lr); o >= 0 {
		t.Errorf("right turn gives %d", o)
	}
	if a := signedArea2([]Coord{ll, lr, ur, ul}); a != 8*m*m {
		t.Errorf("square has area %d, want %d", a, 8*m*m)
	}

	onS, onT := hitCuts(Segment{A: ll, B: ur}, Segment{A: lr, B: ul})
	want := []Coord{{0, 0}}
	if !slices.Equal(onS, want) || !slices.Equal(onT, want) {
		t.Errorf("diagonals cut at %v and %v, want %v", onS, onT, want)
	}
}

func TestSign(t *testing.T) {
	for _, c := range []struct {
		x    int64
		want int
	}{{-7, -1}, {0, 0}, {math.MaxInt64, 1}} {
		if got := sign(c.x); got != c.want {
			t.Errorf("sign(%d) = %d", c.x, got)
		}
	}
}
