package tessellate

import (
	"fmt"
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func BenchmarkTessellateO(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			center := float64(size) / 2
			outerR := float64(size) * 0.45
			innerR := float64(size) * 0.30
			oPath := makeOPath(center, center, outerR, innerR)

			tess := NewTessellator()

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				if _, err := tess.Triangles(oPath, NonZero); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkArrangeScrambled(b *testing.B) {
	segs := polygonSegments(scrambled)

	b.ReportAllocs()
	for b.Loop() {
		if _, err := Arrange(segs); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkVectorO benchmarks x/image/vector drawing an "O" shape, as a
// baseline for BenchmarkTessellateO.
func BenchmarkVectorO(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)

			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{255})

			center := float32(size) / 2
			outerR := float32(size) * 0.45
			innerR := float32(size) * 0.30

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				r.Reset(size, size)

				// Outer circle (counter-clockwise)
				addCircleToVector(r, center, center, outerR, false)
				// Inner circle (clockwise)
				addCircleToVector(r, center, center, innerR, true)

				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// makeOPath creates an "O" shape: the outer circle is counter-clockwise,
// the inner circle is clockwise.
func makeOPath(cx, cy, outerR, innerR float64) *path.Data {
	p := &path.Data{}
	p = addCircleToPath(p, cx, cy, outerR, false)
	p = addCircleToPath(p, cx, cy, innerR, true)
	return p
}

// addCircleToPath appends a circle made of four cubic Bézier curves,
// starting at the bottom.
func addCircleToPath(p *path.Data, cx, cy, r float64, clockwise bool) *path.Data {
	// Magic number for circular arc approximation with cubic Bézier
	const k = 0.5522847498
	kr := k * r

	pt := func(x, y float64) vec.Vec2 { return vec.Vec2{X: x, Y: y} }

	p = p.MoveTo(pt(cx, cy-r))
	if clockwise {
		p = p.CubeTo(pt(cx-kr, cy-r), pt(cx-r, cy-kr), pt(cx-r, cy))
		p = p.CubeTo(pt(cx-r, cy+kr), pt(cx-kr, cy+r), pt(cx, cy+r))
		p = p.CubeTo(pt(cx+kr, cy+r), pt(cx+r, cy+kr), pt(cx+r, cy))
		p = p.CubeTo(pt(cx+r, cy-kr), pt(cx+kr, cy-r), pt(cx, cy-r))
	} else {
		p = p.CubeTo(pt(cx+kr, cy-r), pt(cx+r, cy-kr), pt(cx+r, cy))
		p = p.CubeTo(pt(cx+r, cy+kr), pt(cx+kr, cy+r), pt(cx, cy+r))
		p = p.CubeTo(pt(cx-kr, cy+r), pt(cx-r, cy+kr), pt(cx-r, cy))
		p = p.CubeTo(pt(cx-r, cy-kr), pt(cx-kr, cy-r), pt(cx, cy-r))
	}
	return p.Close()
}

// addCircleToVector adds a circle to a vector.Rasterizer using cubic Bézier curves.
func addCircleToVector(r *vector.Rasterizer, cx, cy, radius float32, clockwise bool) {
	const k = float32(0.5522847498)
	kr := k * radius

	if clockwise {
		r.MoveTo(cx, cy-radius)
		r.CubeTo(cx-kr, cy-radius, cx-radius, cy-kr, cx-radius, cy)
		r.CubeTo(cx-radius, cy+kr, cx-kr, cy+radius, cx, cy+radius)
		r.CubeTo(cx+kr, cy+radius, cx+radius, cy+kr, cx+radius, cy)
		r.CubeTo(cx+radius, cy-kr, cx+kr, cy-radius, cx, cy-radius)
	} else {
		r.MoveTo(cx, cy-radius)
		r.CubeTo(cx+kr, cy-radius, cx+radius, cy-kr, cx+radius, cy)
		r.CubeTo(cx+radius, cy+kr, cx+kr, cy+radius, cx, cy+radius)
		r.CubeTo(cx-kr, cy+radius, cx-radius, cy+kr, cx-radius, cy)
		r.CubeTo(cx-radius, cy-kr, cx-kr, cy-radius, cx, cy-radius)
	}
	r.ClosePath()
}
