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
	"encoding/json"
	"fmt"
	"io"
	"os"

	"seehuhn.de/go/tessellate/geojson"
)

// CmdTriangles writes the triangles of a path as GeoJSON.
type CmdTriangles struct {
	global *GlobalOptions
}

func init() {
	_, err := parser.AddCommand("triangles",
		"Write triangles as GeoJSON",
		"Tessellate a path file and write the triangles of the filled region, and optionally the face outlines, as a GeoJSON feature collection",
		&CmdTriangles{global: &globalOpts})
	if err != nil {
		panic(err)
	}
}

func (cmd *CmdTriangles) Usage() string {
	return "input.json [output.geojson]"
}

func (cmd *CmdTriangles) Execute(args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("usage: triangles %s", cmd.Usage())
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

	fc := geojson.FromResult(res, &geojson.Options{
		Rule:      rule,
		Loops:     cfg.Output.Loops,
		Triangles: true,
		Reduce:    cfg.Output.OutlineReduce,
	})

	var w io.Writer = os.Stdout
	if len(args) == 2 {
		f, err := os.Create(args[1])
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(fc)
}
