// Command export writes every test case as a path file, together with its
// loops and triangles as GeoJSON. Run from the module root directory.
package main

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/tessellate"
	"seehuhn.de/go/tessellate/geojson"
	"seehuhn.de/go/tessellate/pathfile"
	"seehuhn.de/go/tessellate/testcases"
)

const outDir = "testdata/export"

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	var index struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if err := export(name, tc); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			index.TestCases = append(index.TestCases, toJSON(name, tc))
		}
	}

	if err := writeJSON(filepath.Join(outDir, "index.json"), index); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name       string             `json:"name"`
	Width      int                `json:"width,omitempty"`
	Height     int                `json:"height,omitempty"`
	Resolution float64            `json:"resolution,omitempty"`
	Windings   []int              `json:"windings"`
	Areas      map[string]float64 `json:"areas"`
}

func toJSON(name string, tc testcases.TestCase) jsonTestCase {
	jtc := jsonTestCase{
		Name:       name,
		Width:      tc.Width,
		Height:     tc.Height,
		Resolution: tc.Resolution,
		Windings:   tc.Windings,
		Areas:      make(map[string]float64),
	}
	for _, rule := range testcases.Rules {
		jtc.Areas[rule.String()] = tc.Areas.For(rule)
	}
	return jtc
}

func export(name string, tc testcases.TestCase) error {
	f, err := os.Create(filepath.Join(outDir, name+".json"))
	if err != nil {
		return err
	}
	if err := pathfile.Write(f, tc.Path); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	t := tessellate.NewTessellator()
	if tc.Resolution > 0 {
		t.Resolution = tc.Resolution
	}
	res, err := t.Tessellate(tc.Path)
	if err != nil {
		return err
	}
	fc := geojson.FromResult(res, &geojson.Options{
		Rule:      tessellate.NonZero,
		Loops:     true,
		Triangles: true,
	})
	return writeJSON(filepath.Join(outDir, name+".geojson"), fc)
}

func writeJSON(fname string, v any) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
