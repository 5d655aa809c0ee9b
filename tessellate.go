// Package tessellate converts filled paths into sets of non-overlapping
// triangles.
//
// The outlines of a path are flattened, snapped to an integer lattice and
// split until no two segments cross. The resulting planar graph is used to
// find the faces of the arrangement together with their winding numbers.
// Each face is then triangulated by ear clipping, and a fill rule selects
// the faces which make up the filled region.
//
// Coordinates are taken to be y-up: a counter-clockwise outline encloses a
// region of winding number +1.
//
//go:generate go run ./testcases/export
package tessellate

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Tessellator holds the parameters for converting paths to triangles.
// The zero value is not usable; use NewTessellator.
//
// A Tessellator keeps no state between calls, and can be used
// concurrently as long as its fields are not modified.
type Tessellator struct {
	// Resolution is the lattice unit, in input units. All coordinates are
	// divided by Resolution and rounded; the output is scaled back.
	// Larger values merge nearby points. Must be positive, and small enough
	// that no lattice coordinate exceeds MaxCoord.
	Resolution float64

	// Flatness is the maximal distance between a curve and the polyline
	// replacing it, in input units. Must be positive.
	Flatness float64

	// RemoveInternalSegments makes Triangles merge adjacent faces which
	// the fill rule treats alike, giving fewer triangles.
	RemoveInternalSegments bool

	// Log receives diagnostic messages. Nil disables logging.
	Log *zap.Logger
}

// NewTessellator returns a Tessellator with default parameters.
func NewTessellator() *Tessellator {
	return &Tessellator{
		Resolution: 1,
		Flatness:   defaultFlatness,
		Log:        zap.NewNop(),
	}
}

// Result is the planar subdivision computed for one path.
type Result struct {
	// Loops lists the face boundaries, with resolved winding numbers.
	Loops []Loop

	// Segments are the arranged lattice segments, including bridges.
	Segments []Segment

	// Resolution is the lattice unit used.
	Resolution float64

	// Graph is the planar graph the loops refer to.
	Graph *Graph

	li  loopIndex
	log *zap.Logger
}

// PathRef is the payload attached to curves taken from path data.
type PathRef struct {
	Subpath int // index of the subpath
	Command int // index into path.Data.Cmds of the command producing the curve
}

// Triangles tessellates p and returns the triangles of the regions filled
// under the given rule.
func (t *Tessellator) Triangles(p *path.Data, rule FillRule) ([]Triangle, error) {
	res, err := t.Tessellate(p)
	if err != nil {
		return nil, err
	}
	if t.RemoveInternalSegments {
		res, err = res.Simplify(rule)
		if err != nil {
			return nil, err
		}
		rule = NonZero
	}
	return res.Triangles(rule), nil
}

// Tessellate computes the faces of the arrangement of p, with their winding
// numbers and triangulations. Open subpaths are closed implicitly.
// Paths with non-finite coordinates, or with lattice coordinates beyond
// MaxCoord, give an error wrapping ErrRange.
func (t *Tessellator) Tessellate(p *path.Data) (*Result, error) {
	return t.TessellateCurves(PathCurves(p))
}

// TessellateCurves is like Tessellate, but takes the outline as a list of
// curves. The curves must form closed contours.
func (t *Tessellator) TessellateCurves(cs []TaggedCurve) (*Result, error) {
	if !(t.Resolution > 0) {
		return nil, errInvalidResolution
	}
	if !(t.Flatness > 0) {
		return nil, errInvalidFlatness
	}
	log := t.logger()

	segs, err := t.flatten(cs)
	if err != nil {
		return nil, err
	}
	arranged, err := Arrange(segs)
	if err != nil {
		return nil, err
	}
	log.Debug("arranged",
		zap.Int("curves", len(cs)),
		zap.Int("input", len(segs)),
		zap.Int("segments", len(arranged)))

	return build(arranged, t.Resolution, log)
}

// flatten converts the curves to lattice segments, dropping segments
// whose endpoints round to the same lattice point.
func (t *Tessellator) flatten(cs []TaggedCurve) ([]Segment, error) {
	var segs []Segment
	var bad *vec.Vec2
	tol := t.Flatness * t.Flatness
	for i, tc := range cs {
		Flatten(tc.Curve, tc.Payload, tol, func(p Piece) {
			if bad != nil {
				return
			}
			a, okA := Snap(p.A, t.Resolution)
			b, okB := Snap(p.B, t.Resolution)
			switch {
			case !okA:
				bad = &p.A
				return
			case !okB:
				bad = &p.B
				return
			case a == b:
				return
			}
			segs = append(segs, Segment{
				A: a, B: b,
				T0: p.T0, T1: p.T1,
				Payload: p.Payload,
				Source:  len(segs),
			})
		})
		if bad != nil {
			return nil, &Error{
				Phase:  "flatten",
				Detail: fmt.Sprintf("curve %d at (%g,%g)", i, bad.X, bad.Y),
				Err:    ErrRange,
			}
		}
	}
	return segs, nil
}

func (t *Tessellator) logger() *zap.Logger {
	if t.Log == nil {
		return noLog
	}
	return t.Log
}

// build runs the graph phases on a connected, arranged set of segments.
func build(segs []Segment, resolution float64, log *zap.Logger) (*Result, error) {
	g := NewGraph()
	for _, s := range segs {
		g.AddSegment(s.A, s.B, s.Payload)
	}
	g.Finish()

	loops, li, err := extractLoops(g)
	if err != nil {
		return nil, err
	}
	if err := assignWindings(g, loops, li, log); err != nil {
		return nil, err
	}
	triangulate(loops, log)

	log.Debug("graph",
		zap.Int("vertices", len(g.Vertices)),
		zap.Int("edges", len(g.Edges)),
		zap.Int("loops", len(loops)))

	return &Result{
		Loops:      loops,
		Segments:   segs,
		Resolution: resolution,
		Graph:      g,
		li:         li,
		log:        log,
	}, nil
}

// triangulate ear-clips every bounded loop. A loop which cannot be clipped
// is marked as skipped and contributes no triangles.
func triangulate(loops []Loop, log *zap.Logger) {
	for i := range loops {
		l := &loops[i]
		if l.Outer {
			continue
		}
		tris, err := earClip(l.Coords)
		if err != nil {
			l.Skipped = true
			log.Warn("cannot triangulate loop",
				zap.Int("loop", i),
				zap.Int("winding", l.Winding),
				zap.Int("vertices", len(l.Coords)),
				zap.Stringer("start", l.Coords[0]),
				zap.Error(err))
			continue
		}
		l.tris = tris
	}
}

// PathCurves converts path data to a list of curves. Every subpath is
// closed by a straight line if its last point differs from its first.
// The payload of each curve is a PathRef.
func PathCurves(p *path.Data) []TaggedCurve {
	if p == nil {
		return nil
	}

	var cs []TaggedCurve
	var current, start vec.Vec2
	subpath := -1
	drawn := false

	add := func(c Curve, cmd int) {
		if !drawn {
			subpath++
			drawn = true
		}
		cs = append(cs, TaggedCurve{Curve: c, Payload: PathRef{Subpath: subpath, Command: cmd}})
	}
	closeSubpath := func(cmd int) {
		if drawn && current != start {
			add(Line{P0: current, P1: start}, cmd)
		}
		drawn = false
		current = start
	}

	coordIdx := 0
	for i, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			closeSubpath(i)
			current = p.Coords[coordIdx]
			start = current
			coordIdx++

		case path.CmdLineTo:
			end := p.Coords[coordIdx]
			add(Line{P0: current, P1: end}, i)
			current = end
			coordIdx++

		case path.CmdQuadTo:
			end := p.Coords[coordIdx+1]
			add(Quad{P0: current, P1: p.Coords[coordIdx], P2: end}, i)
			current = end
			coordIdx += 2

		case path.CmdCubeTo:
			end := p.Coords[coordIdx+2]
			add(Cubic{P0: current, P1: p.Coords[coordIdx], P2: p.Coords[coordIdx+1], P3: end}, i)
			current = end
			coordIdx += 3

		case path.CmdClose:
			closeSubpath(i)
		}
	}
	closeSubpath(len(p.Cmds))

	return cs
}

var noLog = zap.NewNop()

var (
	errInvalidResolution = errors.New("tessellate: resolution must be positive")
	errInvalidFlatness   = errors.New("tessellate: flatness must be positive")
)

// defaultFlatness is the default curve flattening tolerance in input
// units, matching the rasteriser default of a quarter device pixel.
const defaultFlatness = 0.25
