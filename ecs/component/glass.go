package component

// GlassPanel is an axis-aligned trigger volume the sky walker can cling to.
type GlassPanel struct {
	MinX, MaxX float64
	MinY, MaxY float64
	// Z is the panel's plane; bodies within Reach of it count as touching.
	Z     float64
	Reach float64
}

var GlassPanelComponent = NewComponent[GlassPanel]()
