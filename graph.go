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

// Side selects one of the two half-edges of an edge.
type Side uint8

const (
	// Left is the half-edge traversing its edge from V0 to V1.
	Left Side = iota

	// Right is the half-edge traversing its edge from V1 to V0.
	Right
)

func (s Side) String() string {
	if s == Left {
		return "L"
	}
	return "R"
}

// HalfEdge is one oriented side of a graph edge. Every half-edge has the
// face it bounds on its left-hand side.
type HalfEdge struct {
	Edge int
	Side Side
}

// Twin returns the other half-edge of the same edge.
func (h HalfEdge) Twin() HalfEdge {
	return HalfEdge{Edge: h.Edge, Side: 1 - h.Side}
}

func (h HalfEdge) String() string {
	return fmt.Sprintf("%d%s", h.Edge, h.Side)
}

// Vertex is a graph node at one lattice point.
type Vertex struct {
	Coord Coord

	// Edges lists the incident edges. After Finish, the list is sorted by
	// the angle of the ray from the vertex to the other endpoint,
	// counter-clockwise from the positive x-axis.
	Edges []int
}

// Edge is an undirected connection between two vertices.
//
// Weight is the net number of segments inserted from V0 to V1. The winding
// number of the face to the left of V0→V1 exceeds the winding number to
// the right by Weight.
type Edge struct {
	V0, V1  int
	Weight  int
	Payload any // payload of the first segment inserted

	pos [2]int // position in Vertices[V0].Edges and Vertices[V1].Edges
}

// Graph is a planar graph with one vertex per distinct lattice point.
// Vertices and edges refer to each other by index.
type Graph struct {
	Vertices []Vertex
	Edges    []Edge

	index  map[Coord]int
	sorted bool
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{index: make(map[Coord]int)}
}

func (g *Graph) vertex(c Coord) int {
	if v, ok := g.index[c]; ok {
		return v
	}
	v := len(g.Vertices)
	g.index[c] = v
	g.Vertices = append(g.Vertices, Vertex{Coord: c})
	return v
}

// AddSegment records a segment from c0 to c1. If an edge between the two
// points exists already, its weight is incremented (same direction) or
// decremented (opposite direction). Otherwise a new edge of weight 1 is
// created. Zero-length segments are ignored.
func (g *Graph) AddSegment(c0, c1 Coord, payload any) {
	if c0 == c1 {
		return
	}
	g.sorted = false

	v0 := g.vertex(c0)
	v1 := g.vertex(c1)
	for _, e := range g.Vertices[v0].Edges {
		edge := &g.Edges[e]
		switch {
		case edge.V0 == v0 && edge.V1 == v1:
			edge.Weight++
			return
		case edge.V0 == v1 && edge.V1 == v0:
			edge.Weight--
			return
		}
	}

	e := len(g.Edges)
	g.Edges = append(g.Edges, Edge{V0: v0, V1: v1, Weight: 1, Payload: payload})
	g.Vertices[v0].Edges = append(g.Vertices[v0].Edges, e)
	g.Vertices[v1].Edges = append(g.Vertices[v1].Edges, e)
}

// Finish sorts the incident edges of every vertex into radial order.
// It must be called after the last AddSegment and before any traversal.
func (g *Graph) Finish() {
	for v := range g.Vertices {
		g.sortRadially(v)
		for i, e := range g.Vertices[v].Edges {
			if g.Edges[e].V0 == v {
				g.Edges[e].pos[0] = i
			} else {
				g.Edges[e].pos[1] = i
			}
		}
	}
	g.sorted = true
}

// Origin returns the vertex a half-edge starts at.
func (g *Graph) Origin(h HalfEdge) int {
	if h.Side == Left {
		return g.Edges[h.Edge].V0
	}
	return g.Edges[h.Edge].V1
}

// Head returns the vertex a half-edge ends at.
func (g *Graph) Head(h HalfEdge) int {
	return g.Origin(h.Twin())
}

// Next returns the half-edge following h around the face on its left.
// This is the half-edge leaving the head of h along the edge which is the
// clockwise neighbour of h's own edge there.
func (g *Graph) Next(h HalfEdge) HalfEdge {
	if !g.sorted {
		panic("tessellate: graph traversal before Finish")
	}
	head := g.Head(h)
	edge := &g.Edges[h.Edge]
	p := edge.pos[1]
	if h.Side == Right {
		p = edge.pos[0]
	}

	around := g.Vertices[head].Edges
	n := len(around)
	f := around[(p-1+n)%n]
	if g.Edges[f].V0 == head {
		return HalfEdge{Edge: f, Side: Left}
	}
	return HalfEdge{Edge: f, Side: Right}
}

// Bottom returns the vertex with minimal y coordinate, ties broken by
// minimal x coordinate, or -1 if the graph is empty.
func (g *Graph) Bottom() int {
	best := -1
	for v := range g.Vertices {
		if best < 0 || g.Vertices[v].Coord.less(g.Vertices[best].Coord) {
			best = v
		}
	}
	return best
}

// outside returns a half-edge on the unbounded face. All rays at the
// bottom vertex point into the upper half-plane, so its first edge in
// radial order has the lowest angle; the half-edge arriving at the bottom
// vertex along this edge has the region below on its left.
func (g *Graph) outside() (HalfEdge, bool) {
	v := g.Bottom()
	if v < 0 || len(g.Vertices[v].Edges) == 0 {
		return HalfEdge{}, false
	}
	e := g.Vertices[v].Edges[0]
	if g.Edges[e].V1 == v {
		return HalfEdge{Edge: e, Side: Left}, true
	}
	return HalfEdge{Edge: e, Side: Right}, true
}
