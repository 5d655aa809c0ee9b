package tessellate

import (
	"testing"

	"seehuhn.de/go/geom/vec"
)

func TestFills(t *testing.T) {
	windings := []int{-2, -1, 0, 1, 2, 3}
	want := map[FillRule][]bool{
		NonZero:  {true, true, false, true, true, true},
		EvenOdd:  {false, true, false, true, false, true},
		Positive: {false, false, false, true, true, true},
		Negative: {true, true, false, false, false, false},
	}
	for rule, fills := range want {
		for i, w := range windings {
			if got := rule.Fills(w); got != fills[i] {
				t.Errorf("%v.Fills(%d) = %t", rule, w, got)
			}
		}
	}
	if FillRule(17).Fills(1) {
		t.Error("unknown rule fills")
	}
}

func TestParseFillRule(t *testing.T) {
	for _, rule := range []FillRule{NonZero, EvenOdd, Positive, Negative} {
		got, err := ParseFillRule(rule.String())
		if err != nil || got != rule {
			t.Errorf("%v: got %v, %v", rule, got, err)
		}
	}
	if got, err := ParseFillRule(" Even-Odd "); err != nil || got != EvenOdd {
		t.Errorf("got %v, %v", got, err)
	}
	if _, err := ParseFillRule("winding"); err == nil {
		t.Error("unknown rule accepted")
	}
	if s := FillRule(9).String(); s != "FillRule(9)" {
		t.Errorf("got %q", s)
	}
}

func TestTriangleArea(t *testing.T) {
	tri := Triangle{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 0, Y: 3}}
	if a := tri.Area(); a != 6 {
		t.Errorf("area %g, want 6", a)
	}
	tri[1], tri[2] = tri[2], tri[1]
	if a := tri.Area(); a != -6 {
		t.Errorf("area %g, want -6", a)
	}
	if a := (Triangle{{}, vec.Vec2{X: 1, Y: 1}, vec.Vec2{X: 2, Y: 2}}).Area(); a != 0 {
		t.Errorf("degenerate area %g", a)
	}
}
