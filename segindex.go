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

import (
	"slices"

	"github.com/Workiva/go-datastructures/augmentedtree"
)

// box is the bounding box of a segment, stored in a two-dimensional
// interval tree. Dimension 1 is x, dimension 2 is y.
type box struct {
	id                     uint64
	xMin, yMin, xMax, yMax int64
}

func newBox(id uint64, a, b Coord) *box {
	return &box{
		id:   id,
		xMin: min(a.X, b.X),
		yMin: min(a.Y, b.Y),
		xMax: max(a.X, b.X),
		yMax: max(a.Y, b.Y),
	}
}

func (b *box) LowAtDimension(d uint64) int64 {
	if d == 1 {
		return b.xMin
	}
	return b.yMin
}

func (b *box) HighAtDimension(d uint64) int64 {
	if d == 1 {
		return b.xMax
	}
	return b.yMax
}

func (b *box) OverlapsAtDimension(i augmentedtree.Interval, d uint64) bool {
	return b.HighAtDimension(d) >= i.LowAtDimension(d) &&
		b.LowAtDimension(d) <= i.HighAtDimension(d)
}

func (b *box) ID() uint64 {
	return b.id
}

// segmentIndex holds the live segments of an arrangement together with a
// spatial index over their bounding boxes.
type segmentIndex struct {
	segs  []Segment // indexed by id; dead entries are kept
	alive []bool
	boxes []*box
	tree  augmentedtree.Tree
	n     int
}

func newSegmentIndex() *segmentIndex {
	return &segmentIndex{tree: augmentedtree.New(2)}
}

// add stores s and returns its id.
func (ix *segmentIndex) add(s Segment) int {
	id := len(ix.segs)
	b := newBox(uint64(id), s.A, s.B)
	ix.segs = append(ix.segs, s)
	ix.alive = append(ix.alive, true)
	ix.boxes = append(ix.boxes, b)
	ix.tree.Add(b)
	ix.n++
	return id
}

// remove deletes the segment with the given id.
func (ix *segmentIndex) remove(id int) {
	if !ix.alive[id] {
		return
	}
	ix.tree.Delete(ix.boxes[id])
	ix.alive[id] = false
	ix.n--
}

// near returns the ids of all live segments whose bounding boxes meet
// the bounding box of a and b, in increasing order.
func (ix *segmentIndex) near(a, b Coord) []int {
	// The query box is grown by one lattice unit, so that boxes which only
	// touch are reported regardless of how the tree treats boundaries.
	q := newBox(0, a, b)
	q.xMin--
	q.yMin--
	q.xMax++
	q.yMax++

	found := ix.tree.Query(q)
	ids := make([]int, 0, len(found))
	for _, iv := range found {
		id := int(iv.ID())
		if ix.alive[id] {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids
}

// live returns all live segments in id order.
func (ix *segmentIndex) live() []Segment {
	res := make([]Segment, 0, ix.n)
	for id, s := range ix.segs {
		if ix.alive[id] {
			res = append(res, s)
		}
	}
	return res
}
