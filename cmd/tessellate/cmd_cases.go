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
	"maps"
	"os"
	"path/filepath"
	"runtime"
	"slices"

	"github.com/cheggaaa/pb"
	"github.com/llgcode/draw2d/draw2dimg"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"seehuhn.de/go/tessellate/testcases"
)

// CmdCases draws all built-in test cases.
type CmdCases struct {
	global *GlobalOptions
}

func init() {
	_, err := parser.AddCommand("cases",
		"Draw all test cases",
		"Tessellate every built-in test case and write one PNG image per case into the output directory",
		&CmdCases{global: &globalOpts})
	if err != nil {
		panic(err)
	}
}

func (cmd *CmdCases) Usage() string {
	return "outputdir"
}

func (cmd *CmdCases) Execute(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: cases %s", cmd.Usage())
	}
	outDir := args[0]

	cfg, log, err := cmd.global.setup()
	if err != nil {
		return err
	}
	defer log.Sync()

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}

	type job struct {
		name string
		tc   testcases.TestCase
	}
	var jobs []job
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jobs = append(jobs, job{name: category + "_" + tc.Name, tc: tc})
		}
	}

	bar := pb.StartNew(len(jobs))
	defer bar.Finish()

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, j := range jobs {
		g.Go(func() error {
			defer bar.Increment()

			caseCfg := *cfg
			if j.tc.Resolution > 0 {
				caseCfg.Tessellation.Resolution = j.tc.Resolution
			}
			res, rule, err := process(&caseCfg, log.With(zap.String("case", j.name)), j.tc.Path)
			if err != nil {
				return fmt.Errorf("%s: %w", j.name, err)
			}

			out := caseCfg.Output
			if j.tc.Width > 0 {
				out.Scale = float64(out.Width) / float64(j.tc.Width)
				out.Height = int(float64(j.tc.Height)*out.Scale + 0.5)
			}
			img := drawResult(res, rule, newViewport(res, &out), out.Wireframe)
			return draw2dimg.SaveToPngFile(filepath.Join(outDir, j.name+".png"), img)
		})
	}
	return g.Wait()
}
