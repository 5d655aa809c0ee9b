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

// Package pathfile reads and writes paths as JSON.
//
// A path file is a JSON array of commands:
//
//	[{"cmd": "M", "pts": [[10, 10]]}, {"cmd": "L", "pts": [[30, 10]]}, {"cmd": "Z", "pts": []}]
//
// The command letters are M (move to), L (line to), Q (quadratic Bézier,
// control point and end point), C (cubic Bézier, two control points and
// end point) and Z (close path).
package pathfile

import (
	"encoding/json"
	"fmt"
	"io"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Segment is one path command in JSON form.
type Segment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

// Encode converts path data to its JSON form.
func Encode(p *path.Data) []Segment {
	segs := make([]Segment, 0, len(p.Cmds))
	coordIdx := 0
	for _, cmd := range p.Cmds {
		var name string
		var n int
		switch cmd {
		case path.CmdMoveTo:
			name, n = "M", 1
		case path.CmdLineTo:
			name, n = "L", 1
		case path.CmdQuadTo:
			name, n = "Q", 2
		case path.CmdCubeTo:
			name, n = "C", 3
		case path.CmdClose:
			name, n = "Z", 0
		}
		seg := Segment{Cmd: name, Pts: make([][]float64, n)}
		for i := range n {
			pt := p.Coords[coordIdx+i]
			seg.Pts[i] = []float64{pt.X, pt.Y}
		}
		coordIdx += n
		segs = append(segs, seg)
	}
	return segs
}

// Decode converts the JSON form back to path data.
func Decode(segs []Segment) (*path.Data, error) {
	p := &path.Data{}
	for i, seg := range segs {
		pts := make([]vec.Vec2, len(seg.Pts))
		for j, xy := range seg.Pts {
			if len(xy) != 2 {
				return nil, fmt.Errorf("pathfile: command %d: point %d has %d coordinates", i, j, len(xy))
			}
			pts[j] = vec.Vec2{X: xy[0], Y: xy[1]}
		}

		want := numPoints[seg.Cmd]
		if seg.Cmd != "Z" && want == 0 {
			return nil, fmt.Errorf("pathfile: command %d: unknown command %q", i, seg.Cmd)
		}
		if len(pts) != want {
			return nil, fmt.Errorf("pathfile: command %d: %q needs %d points, got %d", i, seg.Cmd, want, len(pts))
		}

		switch seg.Cmd {
		case "M":
			p = p.MoveTo(pts[0])
		case "L":
			p = p.LineTo(pts[0])
		case "Q":
			p = p.QuadTo(pts[0], pts[1])
		case "C":
			p = p.CubeTo(pts[0], pts[1], pts[2])
		case "Z":
			p = p.Close()
		}
	}
	return p, nil
}

var numPoints = map[string]int{"M": 1, "L": 1, "Q": 2, "C": 3, "Z": 0}

// Read decodes a path file.
func Read(r io.Reader) (*path.Data, error) {
	var segs []Segment
	if err := json.NewDecoder(r).Decode(&segs); err != nil {
		return nil, fmt.Errorf("pathfile: %w", err)
	}
	return Decode(segs)
}

// Write encodes p as an indented path file.
func Write(w io.Writer, p *path.Data) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Encode(p))
}
