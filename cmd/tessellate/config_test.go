package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cheekybits/is"
)

func TestLoadDefaults(t *testing.T) {
	is := is.New(t)

	cfg, err := Load("")
	is.NoErr(err)
	is.Equal(cfg, Default())
	is.NoErr(cfg.Validate())
}

func TestLoadFile(t *testing.T) {
	is := is.New(t)

	fname := filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(fname, []byte(`
tessellation:
  resolution: 0.5
  fill_rule: evenodd
  remove_internal_segments: true
output:
  width: 256
  outline_reduce: 2
logging:
  level: debug
`), 0644)
	is.NoErr(err)

	cfg, err := Load(fname)
	is.NoErr(err)
	is.NoErr(cfg.Validate())

	is.Equal(cfg.Tessellation.Resolution, 0.5)
	is.Equal(cfg.Tessellation.Flatness, 0.25) // default kept
	is.Equal(cfg.Tessellation.FillRule, "evenodd")
	is.True(cfg.Tessellation.RemoveInternalSegments)
	is.Equal(cfg.Output.Width, 256)
	is.Equal(cfg.Output.Height, 512)
	is.Equal(cfg.Output.OutlineReduce, 2.0)
	is.Equal(cfg.Logging.Level, "debug")

	tess := cfg.Tessellator(nil)
	is.Equal(tess.Resolution, 0.5)
	is.True(tess.RemoveInternalSegments)
}

func TestFlagsOverrideFile(t *testing.T) {
	is := is.New(t)

	cfg := Default()
	cfg.Tessellation.FillRule = "evenodd"
	opts := &GlobalOptions{Rule: "positive", Flatness: 0.1, LogLevel: "warn"}
	opts.apply(cfg)

	is.Equal(cfg.Tessellation.FillRule, "positive")
	is.Equal(cfg.Tessellation.Flatness, 0.1)
	is.Equal(cfg.Tessellation.Resolution, 1.0)
	is.Equal(cfg.Logging.Level, "warn")
}

func TestValidate(t *testing.T) {
	is := is.New(t)

	cfg := Default()
	cfg.Tessellation.Resolution = 0
	is.Err(cfg.Validate())

	cfg = Default()
	cfg.Tessellation.FillRule = "sometimes"
	is.Err(cfg.Validate())

	cfg = Default()
	cfg.Output.Height = 0
	is.Err(cfg.Validate())
}

func TestLoadMissing(t *testing.T) {
	is := is.New(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	is.Err(err)
}
