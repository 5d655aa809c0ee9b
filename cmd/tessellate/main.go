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

// Command tessellate converts filled paths to triangles.
//
// Paths are read from JSON path files (see package pathfile). The
// triangles can be written as GeoJSON, drawn into a PNG image, or dumped
// as text.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/tessellate"
	"seehuhn.de/go/tessellate/pathfile"
)

// GlobalOptions are the options shared by all subcommands. Values given
// here override the configuration file.
type GlobalOptions struct {
	Config     string  `short:"c" long:"config" description:"YAML configuration file"`
	Resolution float64 `short:"r" long:"resolution" description:"Lattice unit in input units"`
	Flatness   float64 `short:"f" long:"flatness" description:"Curve flattening tolerance in input units"`
	Rule       string  `long:"rule" description:"Fill rule: nonzero, evenodd, positive or negative"`
	Simplify   bool    `short:"s" long:"simplify" description:"Remove segments between faces treated alike"`
	LogLevel   string  `long:"log-level" description:"Log level: debug, info, warn or error"`
	LogFile    string  `long:"log-file" description:"Also write log messages to this file"`
}

var globalOpts = GlobalOptions{}
var parser = flags.NewParser(&globalOpts, flags.HelpFlag|flags.PassDoubleDash)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "tessellate:", err)
		os.Exit(1)
	}
}

func run() error {
	_, err := parser.Parse()
	var e *flags.Error
	if errors.As(err, &e) && e.Type == flags.ErrHelp {
		parser.WriteHelp(os.Stdout)
		return nil
	}
	return err
}

// setup loads the configuration and creates the logger.
func (g *GlobalOptions) setup() (*Config, *zap.Logger, error) {
	cfg, err := Load(g.Config)
	if err != nil {
		return nil, nil, err
	}
	g.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	log, err := newLogger(cfg.Logging)
	if err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}

// apply copies the options which were set on the command line into cfg.
func (g *GlobalOptions) apply(cfg *Config) {
	if g.Resolution != 0 {
		cfg.Tessellation.Resolution = g.Resolution
	}
	if g.Flatness != 0 {
		cfg.Tessellation.Flatness = g.Flatness
	}
	if g.Rule != "" {
		cfg.Tessellation.FillRule = g.Rule
	}
	if g.Simplify {
		cfg.Tessellation.RemoveInternalSegments = true
	}
	if g.LogLevel != "" {
		cfg.Logging.Level = g.LogLevel
	}
	if g.LogFile != "" {
		cfg.Logging.LogFile = g.LogFile
	}
}

// process runs the tessellator configured by cfg on p. The returned
// rule selects the filled loops of the returned result; this is NonZero
// if the result has been simplified.
func process(cfg *Config, log *zap.Logger, p *path.Data) (*tessellate.Result, tessellate.FillRule, error) {
	rule, err := tessellate.ParseFillRule(cfg.Tessellation.FillRule)
	if err != nil {
		return nil, 0, err
	}

	t := cfg.Tessellator(log)
	res, err := t.Tessellate(p)
	if err != nil {
		return nil, 0, err
	}
	if t.RemoveInternalSegments {
		res, err = res.Simplify(rule)
		if err != nil {
			return nil, 0, err
		}
		rule = tessellate.NonZero
	}

	log.Info("tessellated",
		zap.Int("loops", len(res.Loops)),
		zap.Int("triangles", len(res.Triangles(rule))),
		zap.Stringer("rule", rule))
	return res, rule, nil
}

func readPath(fname string) (*path.Data, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return pathfile.Read(f)
}
