package component

import "github.com/milk9111/grapplerig/skill"

// Appearance records the mesh/material last applied by a skill.
type Appearance struct {
	Current skill.Appearance
}

var AppearanceComponent = NewComponent[Appearance]()

// Glasses mirrors the super glasses rig state.
type Glasses struct {
	Visible bool
	Pitch   float64
	Light   bool
}

func (g *Glasses) SetVisible(visible bool) { g.Visible = visible }
func (g *Glasses) SetPitch(deg float64)    { g.Pitch = deg }
func (g *Glasses) SetLight(on bool)        { g.Light = on }

var GlassesComponent = NewComponent[Glasses]()
