package main

import (
	"image/color"
	"math"
	"testing"

	"github.com/cheekybits/is"
	"go.uber.org/zap"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/tessellate"
)

func TestDrawSquare(t *testing.T) {
	is := is.New(t)

	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 10, Y: 10}).
		LineTo(vec.Vec2{X: 30, Y: 10}).
		LineTo(vec.Vec2{X: 30, Y: 30}).
		LineTo(vec.Vec2{X: 10, Y: 30}).
		Close()

	cfg := Default()
	cfg.Output.Width = 40
	cfg.Output.Height = 40
	cfg.Output.Scale = 1
	cfg.Output.Wireframe = false

	res, rule, err := process(cfg, zap.NewNop(), p)
	is.NoErr(err)
	is.Equal(rule, tessellate.NonZero)

	img := drawResult(res, rule, newViewport(res, &cfg.Output), false)
	is.Equal(img.At(12, 25), color.Color(palette[0]))
	is.Equal(img.At(25, 12), color.Color(palette[0]))
	is.Equal(img.At(5, 5), color.Color(color.RGBA{0xff, 0xff, 0xff, 0xff}))
	is.Equal(img.At(35, 35), color.Color(color.RGBA{0xff, 0xff, 0xff, 0xff}))
}

func TestSimplifiedRule(t *testing.T) {
	is := is.New(t)

	// a clockwise square has winding -1
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 0, Y: 10}).
		LineTo(vec.Vec2{X: 10, Y: 10}).
		LineTo(vec.Vec2{X: 10, Y: 0}).
		Close()

	cfg := Default()
	cfg.Tessellation.FillRule = "negative"
	cfg.Tessellation.RemoveInternalSegments = true

	res, rule, err := process(cfg, zap.NewNop(), p)
	is.NoErr(err)
	is.Equal(rule, tessellate.NonZero)
	is.Equal(len(res.Triangles(rule)), 2)
}

func TestViewportFit(t *testing.T) {
	is := is.New(t)

	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 1000, Y: 1000}).
		LineTo(vec.Vec2{X: 1100, Y: 1000}).
		LineTo(vec.Vec2{X: 1100, Y: 1100}).
		Close()
	res, err := tessellate.NewTessellator().Tessellate(p)
	is.NoErr(err)

	v := newViewport(res, &OutputConfig{Width: 200, Height: 100})
	is.True(math.Abs(v.scale-0.9) < 1e-9)
	x, y := v.pixel(vec.Vec2{X: 1050, Y: 1050})
	is.True(math.Abs(x-100) < 1e-9)
	is.True(math.Abs(y-50) < 1e-9)
}
