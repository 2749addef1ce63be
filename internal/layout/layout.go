// Package layout computes deterministic 2-D coordinates for graph and
// mind-map visualizations. All functions are pure: the same inputs in the
// same order always produce the same coordinates.
package layout

import "math"

// Point is a 2-D coordinate in canvas space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Node is a positioned vertex ready for drawing.
type Node struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Avatar string `json:"avatar,omitempty"`
	Pos    Point  `json:"pos"`
	Center bool   `json:"center,omitempty"`
}

// Edge connects two nodes by index into the graph's node slice.
type Edge struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// Graph is a set of positioned nodes and the edges between them.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Radial places n points on a circle of the given radius around center.
// Point i sits at angle 2π·i/n, so index order fixes the layout exactly.
func Radial(center Point, radius float64, n int) []Point {
	pts := make([]Point, n)
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = Point{
			X: center.X + radius*math.Cos(angle),
			Y: center.Y + radius*math.Sin(angle),
		}
	}
	return pts
}

// Tree places n children below a root. Child i takes the horizontal slice
// at angle 2π·i/n scaled by spread, and the vertical band
// center.Y + levelHeight + (i mod 3)·bandHeight. Overlap is possible; this
// reproduces the deliberately simple placement, not a force-directed layout.
func Tree(center Point, spread, levelHeight, bandHeight float64, n int) []Point {
	pts := make([]Point, n)
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = Point{
			X: center.X + spread*math.Cos(angle),
			Y: center.Y + levelHeight + float64(i%3)*bandHeight,
		}
	}
	return pts
}

// SubBranch places the index-th child of a tree node, fanning out in
// quarter-turn steps while stepping down a fixed row height.
func SubBranch(parent Point, index int) Point {
	return Point{
		X: parent.X + 80*math.Cos(float64(index)*math.Pi/2),
		Y: parent.Y + 60 + float64(index)*30,
	}
}
