package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/driftline/driftline/component"
)

type meshEntry struct {
	glyph rune
	// glyphs indexed by heading octant for directional meshes, nil otherwise
	headings []rune
}

type materialEntry struct {
	fg tcell.Color
}

// resourceTable maps mesh and material IDs to their terminal representation
type resourceTable struct {
	meshes    map[int]meshEntry
	materials map[int]materialEntry
}

func newResourceTable() *resourceTable {
	return &resourceTable{
		meshes: map[int]meshEntry{
			component.MeshUnknown:    {glyph: '?'},
			component.MeshCarBody:    {glyph: '@', headings: []rune{'>', '/', '^', '\\', '<', '/', 'v', '\\'}},
			component.MeshWheel:      {glyph: 'o'},
			component.MeshSegment:    {glyph: '='},
			component.MeshCheckpoint: {glyph: '|'},
			component.MeshBarrier:    {glyph: '#'},
			component.MeshCone:       {glyph: '*'},
			component.MeshTire:       {glyph: 'O'},
			component.MeshTree:       {glyph: 'T'},
			component.MeshRock:       {glyph: '%'},
		},
		materials: map[int]materialEntry{
			component.MaterialDefault: {fg: tcell.ColorWhite},
			component.MaterialCarRed:  {fg: tcell.ColorRed},
			component.MaterialCarBlue: {fg: tcell.ColorBlue},
			component.MaterialAsphalt: {fg: tcell.ColorGray},
			component.MaterialDirt:    {fg: tcell.ColorSaddleBrown},
			component.MaterialGrass:   {fg: tcell.ColorGreen},
			component.MaterialMetal:   {fg: tcell.ColorSilver},
			component.MaterialRubber:  {fg: tcell.ColorDarkGray},
			component.MaterialWood:    {fg: tcell.ColorRosyBrown},
			component.MaterialStone:   {fg: tcell.ColorLightSlateGray},
		},
	}
}

// lookup resolves a mesh/material pair to a glyph and style. Directional
// meshes pick a glyph from the yaw angle in radians.
func (rt *resourceTable) lookup(meshID, materialID int, yaw float64) (rune, tcell.Style) {
	mesh, ok := rt.meshes[meshID]
	if !ok {
		mesh = rt.meshes[component.MeshUnknown]
	}
	glyph := mesh.glyph
	if mesh.headings != nil {
		glyph = mesh.headings[headingOctant(yaw)]
	}

	mat, ok := rt.materials[materialID]
	if !ok {
		mat = rt.materials[component.MaterialDefault]
	}
	return glyph, tcell.StyleDefault.Foreground(mat.fg)
}
