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

package main

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/llgcode/draw2d/draw2dimg"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/tessellate"
)

// viewport maps y-up input coordinates to image pixels.
type viewport struct {
	width, height int
	scale         float64
	x0, y0        float64 // input point at the lower left image corner
}

// newViewport returns the viewport for drawing res. If out.Scale is zero,
// the bounding box of all loops is fitted into the image with a margin.
func newViewport(res *tessellate.Result, out *OutputConfig) *viewport {
	v := &viewport{width: out.Width, height: out.Height, scale: out.Scale}
	if v.scale > 0 {
		return v
	}

	xMin, yMin := math.Inf(1), math.Inf(1)
	xMax, yMax := math.Inf(-1), math.Inf(-1)
	for _, l := range res.Loops {
		for _, c := range l.Coords {
			p := c.Vec(res.Resolution)
			xMin = min(xMin, p.X)
			xMax = max(xMax, p.X)
			yMin = min(yMin, p.Y)
			yMax = max(yMax, p.Y)
		}
	}
	if xMax <= xMin || yMax <= yMin {
		v.scale = 1
		return v
	}

	const margin = 0.05
	dx, dy := xMax-xMin, yMax-yMin
	v.scale = (1 - 2*margin) * min(float64(v.width)/dx, float64(v.height)/dy)
	v.x0 = (xMin+xMax)/2 - float64(v.width)/2/v.scale
	v.y0 = (yMin+yMax)/2 - float64(v.height)/2/v.scale
	return v
}

func (v *viewport) pixel(p vec.Vec2) (float64, float64) {
	return (p.X - v.x0) * v.scale, float64(v.height) - (p.Y-v.y0)*v.scale
}

// palette gives the fill colours of consecutive loops.
var palette = []color.RGBA{
	{0x4e, 0x79, 0xa7, 0xff},
	{0xf2, 0x8e, 0x2b, 0xff},
	{0x59, 0xa1, 0x4f, 0xff},
	{0xe1, 0x57, 0x59, 0xff},
	{0x76, 0xb7, 0xb2, 0xff},
	{0xed, 0xc9, 0x48, 0xff},
}

// drawResult draws the triangles of all loops filled by rule on a white
// background. Each loop gets its own colour.
func drawResult(res *tessellate.Result, rule tessellate.FillRule, v *viewport, wireframe bool) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, v.width, v.height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	gc := draw2dimg.NewGraphicContext(img)
	var tris []tessellate.Triangle
	for i, l := range res.Loops {
		if l.Outer || !rule.Fills(l.Winding) {
			continue
		}
		gc.SetFillColor(palette[i%len(palette)])
		for _, t := range res.LoopTriangles(i) {
			trace(gc, v, t)
			gc.Fill()
			tris = append(tris, t)
		}
	}

	if wireframe && len(tris) > 0 {
		gc.SetStrokeColor(color.Black)
		gc.SetLineWidth(0.5)
		for _, t := range tris {
			trace(gc, v, t)
			gc.Stroke()
		}
	}
	return img
}

func trace(gc *draw2dimg.GraphicContext, v *viewport, t tessellate.Triangle) {
	gc.BeginPath()
	gc.MoveTo(v.pixel(t[0]))
	gc.LineTo(v.pixel(t[1]))
	gc.LineTo(v.pixel(t[2]))
	gc.Close()
}
