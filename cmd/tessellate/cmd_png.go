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

	"github.com/llgcode/draw2d/draw2dimg"
)

// CmdPNG draws the triangulation of a path into a PNG image.
type CmdPNG struct {
	global *GlobalOptions
}

func init() {
	_, err := parser.AddCommand("png",
		"Draw triangles into a PNG image",
		"Tessellate a path file and draw the triangles of the filled region into a PNG image",
		&CmdPNG{global: &globalOpts})
	if err != nil {
		panic(err)
	}
}

func (cmd *CmdPNG) Usage() string {
	return "input.json output.png"
}

func (cmd *CmdPNG) Execute(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: png %s", cmd.Usage())
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

	view := newViewport(res, &cfg.Output)
	img := drawResult(res, rule, view, cfg.Output.Wireframe)
	return draw2dimg.SaveToPngFile(args[1], img)
}
