package model

import "github.com/alexiusacademia/goframe/internal/frame"

// PortalDemo returns a 5 m x 4 m single-bay portal frame: two 0.2 x 0.2
// columns, a 0.15 x 0.3 girder, E = 200 GPa, fixed bases and a 10 kN
// lateral load at the top of the left column.
func PortalDemo() *File {
	return &File{
		Name:        "portal",
		Description: "Single-bay portal frame under lateral load",
		Materials: map[string]Material{
			"steel": {E: 200e9},
		},
		Sections: map[string]SectionSpec{
			"column": {Width: 0.2, Depth: 0.2},
			"girder": {Width: 0.15, Depth: 0.3},
		},
		Nodes: []frame.Node{
			{X: 0, Y: 0},
			{X: 5, Y: 0},
			{X: 0, Y: 4},
			{X: 5, Y: 4},
		},
		Elements: []ElementSpec{
			{Start: 0, End: 2, Material: "steel", Section: "column"},
			{Start: 1, End: 3, Material: "steel", Section: "column"},
			{Start: 2, End: 3, Material: "steel", Section: "girder"},
		},
		Supports: []Support{
			{Node: 0, Fixed: true},
			{Node: 1, Fixed: true},
		},
		Loads: []NodalLoad{
			{Node: 2, Fx: 10e3, Type: "W"},
		},
	}
}
