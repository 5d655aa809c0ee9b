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

package tessellate

import "fmt"

// Arrange splits the given segments until no two of them meet except at
// shared endpoints, and then adds pairs of opposite bridge segments until
// the resulting set of segments is connected.
//
// All endpoints must be within MaxCoord, otherwise an error wrapping
// ErrRange is returned. Zero-length segments are dropped. Fragments keep
// the direction, payload and source index of the segment they were cut
// from. The output order only depends on the input.
func Arrange(segs []Segment) ([]Segment, error) {
	ix := newSegmentIndex()
	if err := ix.arrange(segs); err != nil {
		return nil, err
	}
	if err := ix.connect(); err != nil {
		return nil, err
	}
	return ix.live(), nil
}

// arrange inserts segs into the index and cuts until a fixed point is
// reached.
func (ix *segmentIndex) arrange(segs []Segment) error {
	var queue []int
	for i, s := range segs {
		if !s.A.inRange() || !s.B.inRange() {
			return &Error{
				Phase:  "arrange",
				Detail: fmt.Sprintf("segment %d %v-%v", i, s.A, s.B),
				Err:    ErrRange,
			}
		}
		if s.IsZero() {
			continue
		}
		queue = append(queue, ix.add(s))
	}

	limit := maxCuts(len(queue))
	cuts := 0

	// replace swaps segment id for its fragments; new fragments are queued
	// so that they get compared against everything near them.
	replace := func(id int, at []Coord) {
		frags := split(ix.segs[id], at)
		ix.remove(id)
		for _, f := range frags {
			queue = append(queue, ix.add(f))
		}
		cuts++
	}

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if !ix.alive[id] {
			continue
		}
		s := ix.segs[id]

		for _, other := range ix.near(s.A, s.B) {
			if other == id || !ix.alive[other] {
				continue
			}
			onS, onT := hitCuts(s, ix.segs[other])
			if onT != nil {
				replace(other, onT)
			}
			if onS != nil {
				replace(id, onS)
				break
			}
		}

		if cuts > limit {
			return &Error{
				Phase:  "arrange",
				Detail: fmt.Sprintf("segment %v-%v after %d cuts", s.A, s.B, cuts),
				Err:    ErrArrangementDiverged,
			}
		}
	}
	return nil
}

// maxCuts bounds the number of cuts performed while arranging n segments.
var maxCuts = func(n int) int {
	return 64*n + 4096
}
