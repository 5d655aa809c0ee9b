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

// Command genpdf draws the triangulation of every test case into a PDF
// file, for visual inspection.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/cheggaaa/pb"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/tessellate"
	"seehuhn.de/go/tessellate/testcases"
)

const pdfDir = "testdata/pdf"

// scale is the number of PDF points per canvas pixel.
const scale = 8

func main() {
	if err := os.MkdirAll(pdfDir, 0755); err != nil {
		panic(err)
	}

	total := 0
	for _, cases := range testcases.All {
		total += len(cases)
	}
	bar := pb.StartNew(total)
	defer bar.Finish()

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if tc.Width > 0 && tc.Height > 0 {
				pdfPath := filepath.Join(pdfDir, name+".pdf")
				if err := generatePDF(tc, pdfPath); err != nil {
					panic(fmt.Errorf("%s: %w", name, err))
				}
			}
			bar.Increment()
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	t := tessellate.NewTessellator()
	if tc.Resolution > 0 {
		t.Resolution = tc.Resolution
	}
	res, err := t.Tessellate(tc.Path)
	if err != nil {
		return err
	}

	paper := &pdf.Rectangle{
		URx: float64(tc.Width * scale),
		URy: float64(tc.Height * scale),
	}
	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// test case coordinates are y-up, like PDF user space
	page.Transform(matrix.Matrix{scale, 0, 0, scale, 0, 0})

	// filled triangles, with the gray level cycling per loop
	var tris []tessellate.Triangle
	for i, l := range res.Loops {
		if l.Outer || !tessellate.NonZero.Fills(l.Winding) {
			continue
		}
		page.SetFillColor(color.DeviceGray(0.5 + 0.1*float64(i%5)))
		for _, tri := range res.LoopTriangles(i) {
			page.MoveTo(tri[0].X, tri[0].Y)
			page.LineTo(tri[1].X, tri[1].Y)
			page.LineTo(tri[2].X, tri[2].Y)
			page.ClosePath()
			page.Fill()
			tris = append(tris, tri)
		}
	}

	// triangle edges
	page.SetStrokeColor(color.DeviceGray(0))
	if len(tris) > 0 {
		page.SetLineWidth(0.05)
		for _, tri := range tris {
			page.MoveTo(tri[0].X, tri[0].Y)
			page.LineTo(tri[1].X, tri[1].Y)
			page.LineTo(tri[2].X, tri[2].Y)
			page.ClosePath()
		}
		page.Stroke()
	}

	if len(tc.Path.Cmds) == 0 {
		return page.Close()
	}

	// the input outline on top; PDF has no quadratic curves
	page.SetLineWidth(0.15)
	for cmd, pts := range tc.Path.Iter().ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			page.ClosePath()
		}
	}
	page.Stroke()

	return page.Close()
}
