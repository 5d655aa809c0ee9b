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
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/Workiva/go-datastructures/augmentedtree"
	"github.com/Workiva/go-datastructures/queue"
)

// connect joins the connected components of the live segments. In each
// step the closest pair of points from two different components whose
// connecting segment meets no existing segment is joined by a bridge in
// both directions, so that the bridge carries no winding. Pairs at equal
// distance are taken in order of vertex number, where vertices are
// numbered by first appearance in the live segments.
//
// Since segments are only ever added and components only ever merge, a
// pair which is rejected once stays rejected. Each vertex keeps a cursor
// into its neighbours in order of distance, and the queue holds the best
// remaining pair of every vertex.
func (ix *segmentIndex) connect() error {
	b := newBridger(ix)
	if b.components <= 1 {
		return nil
	}

	pq := queue.NewPriorityQueue(len(b.pts), true)
	for v := range b.pts {
		if c := b.advance(v); c != nil {
			if err := pq.Put(c); err != nil {
				return err
			}
		}
	}

	for b.components > 1 && !pq.Empty() {
		items, err := pq.Get(1)
		if err != nil {
			return err
		}
		c := items[0].(*candidate)

		p, q := b.pts[c.i], b.pts[c.j]
		if b.cc.find(c.i) != b.cc.find(c.j) && ix.clear(p, q) {
			ix.add(Segment{A: p, B: q, Source: -1})
			ix.add(Segment{A: q, B: p, Source: -1})
			b.cc.union(c.i, c.j)
			b.components--
		}

		if next := b.advance(c.from); next != nil {
			if err := pq.Put(next); err != nil {
				return err
			}
		}
	}

	if b.components > 1 {
		var stray Coord
		root := b.cc.find(0)
		for i, p := range b.pts {
			if b.cc.find(i) != root {
				stray = p
				break
			}
		}
		return &Error{
			Phase:  "bridge",
			Detail: fmt.Sprintf("%d components left, no bridge to vertex %v", b.components, stray),
			Err:    ErrDisconnected,
		}
	}
	return nil
}

// bridger holds the state of connect.
type bridger struct {
	ix         *segmentIndex
	pts        []Coord
	cc         *unionFind
	components int

	tree   augmentedtree.Tree // one degenerate box per vertex
	extent int64              // search radius which covers all vertices
	cursor []bridgeCursor
}

// bridgeCursor records the progress of the search around one vertex.
// All pairs up to squared distance d and vertex j have been handed out or
// rejected.
type bridgeCursor struct {
	r int64 // half the side of the search box
	d int64
	j int
}

// candidate is a vertex pair i < j at squared distance d, found by the
// search around vertex from.
type candidate struct {
	d    int64
	i, j int
	from int
}

// Compare orders candidates by distance, then by vertex numbers.
func (c *candidate) Compare(other queue.Item) int {
	o := other.(*candidate)
	if r := cmp.Compare(c.d, o.d); r != 0 {
		return r
	}
	if r := cmp.Compare(c.i, o.i); r != 0 {
		return r
	}
	if r := cmp.Compare(c.j, o.j); r != 0 {
		return r
	}
	return cmp.Compare(c.from, o.from)
}

func newBridger(ix *segmentIndex) *bridger {
	b := &bridger{ix: ix, cc: &unionFind{}}

	index := make(map[Coord]int)
	vertex := func(c Coord) int {
		if i, ok := index[c]; ok {
			return i
		}
		i := len(b.pts)
		index[c] = i
		b.pts = append(b.pts, c)
		return i
	}
	for id, s := range ix.segs {
		if !ix.alive[id] {
			continue
		}
		v, w := vertex(s.A), vertex(s.B)
		b.cc.grow(len(b.pts))
		b.cc.union(v, w)
	}

	b.components = b.cc.count()
	if b.components <= 1 {
		return b
	}

	b.tree = augmentedtree.New(2)
	lo, hi := b.pts[0], b.pts[0]
	for v, p := range b.pts {
		b.tree.Add(newBox(uint64(v), p, p))
		lo = Coord{X: min(lo.X, p.X), Y: min(lo.Y, p.Y)}
		hi = Coord{X: max(hi.X, p.X), Y: max(hi.Y, p.Y)}
	}
	b.extent = max(hi.X-lo.X, hi.Y-lo.Y)

	b.cursor = make([]bridgeCursor, len(b.pts))
	for v := range b.cursor {
		b.cursor[v] = bridgeCursor{r: 1, d: -1}
	}
	return b
}

// advance returns the next pair of vertex v, in order of distance, which
// joins two components by a clear segment. The result is nil if no such
// pair is left.
func (b *bridger) advance(v int) *candidate {
	type neighbour struct {
		d int64
		j int
	}

	cur := &b.cursor[v]
	p := b.pts[v]
	var found []neighbour
	for {
		// The box contains the disc of radius r; vertices beyond the disc
		// are left for a later, larger box.
		full := cur.r >= b.extent
		q := &box{xMin: p.X - cur.r, yMin: p.Y - cur.r, xMax: p.X + cur.r, yMax: p.Y + cur.r}
		found = found[:0]
		for _, iv := range b.tree.Query(q) {
			j := int(iv.ID())
			if b.cc.find(j) == b.cc.find(v) {
				continue
			}
			d := dist2(p, b.pts[j])
			if !full && d > cur.r*cur.r {
				continue
			}
			if d < cur.d || d == cur.d && j <= cur.j {
				continue
			}
			found = append(found, neighbour{d: d, j: j})
		}
		slices.SortFunc(found, func(x, y neighbour) int {
			if c := cmp.Compare(x.d, y.d); c != 0 {
				return c
			}
			return cmp.Compare(x.j, y.j)
		})

		for _, n := range found {
			cur.d, cur.j = n.d, n.j
			if b.ix.clear(p, b.pts[n.j]) {
				return &candidate{d: n.d, i: min(v, n.j), j: max(v, n.j), from: v}
			}
		}

		if full {
			return nil
		}
		cur.d, cur.j = cur.r*cur.r, math.MaxInt
		cur.r = min(2*cur.r, b.extent)
	}
}

// clear reports whether the segment pq can be added without meeting any
// live segment other than at a shared endpoint.
func (ix *segmentIndex) clear(p, q Coord) bool {
	for _, id := range ix.near(p, q) {
		if crossesOrTouches(p, q, ix.segs[id]) {
			return false
		}
	}
	return true
}

// unionFind is a disjoint-set forest over the integers 0, ..., n-1.
type unionFind struct {
	parent []int
	size   []int
}

func (u *unionFind) grow(n int) {
	for len(u.parent) < n {
		u.parent = append(u.parent, len(u.parent))
		u.size = append(u.size, 1)
	}
}

func (u *unionFind) find(i int) int {
	for u.parent[i] != i {
		u.parent[i] = u.parent[u.parent[i]]
		i = u.parent[i]
	}
	return i
}

func (u *unionFind) union(i, j int) {
	ri, rj := u.find(i), u.find(j)
	if ri == rj {
		return
	}
	if u.size[ri] < u.size[rj] {
		ri, rj = rj, ri
	}
	u.parent[rj] = ri
	u.size[ri] += u.size[rj]
}

func (u *unionFind) count() int {
	n := 0
	for i := range u.parent {
		if u.parent[i] == i {
			n++
		}
	}
	return n
}
