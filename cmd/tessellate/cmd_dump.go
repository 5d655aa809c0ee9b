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
	"fmt"

	"github.com/kr/pretty"

	"seehuhn.de/go/tessellate"
)

// CmdDump prints the faces found for a path.
type CmdDump struct {
	global *GlobalOptions
}

func init() {
	_, err := parser.AddCommand("dump",
		"Print the faces of a path",
		"Tessellate a path file and print the graph size and every loop with its winding number",
		&CmdDump{global: &globalOpts})
	if err != nil {
		panic(err)
	}
}

func (cmd *CmdDump) Usage() string {
	return "input.json"
}

type loopSummary struct {
	Winding   int
	Outer     bool
	Filled    bool
	Skipped   bool
	Coords    []tessellate.Coord
	Triangles int
}

func (cmd *CmdDump) Execute(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: dump %s", cmd.Usage())
	}

	cfg, log, err := cmd.global.setup()
	if err != nil {
		return err
	}
	defer log.Sync()

	p, err := readPath(args[0])
	if err != nil {
		return err
	}
	res, rule, err := process(cfg, log, p)
	if err != nil {
		return err
	}

	fmt.Printf("vertices: %d, edges: %d, segments: %d\n",
		len(res.Graph.Vertices), len(res.Graph.Edges), len(res.Segments))
	for i, l := range res.Loops {
		s := loopSummary{
			Winding:   l.Winding,
			Outer:     l.Outer,
			Filled:    !l.Outer && rule.Fills(l.Winding),
			Skipped:   l.Skipped,
			Coords:    l.Coords,
			Triangles: len(res.LoopTriangles(i)),
		}
		fmt.Printf("loop %d: %# v\n", i, pretty.Formatter(s))
	}
	return nil
}
