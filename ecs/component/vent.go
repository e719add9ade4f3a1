package component

// VentArea is a box-shaped trigger at either end of a crawl vent. Leaving an
// entrance holds the size shifter at its current size; leaving an exit
// releases it.
type VentArea struct {
	MinX, MaxX float64
	MinY, MaxY float64
	MinZ, MaxZ float64
	Entrance   bool
}

func (v *VentArea) Contains(x, y, z float64) bool {
	return x >= v.MinX && x <= v.MaxX &&
		y >= v.MinY && y <= v.MaxY &&
		z >= v.MinZ && z <= v.MaxZ
}

var VentAreaComponent = NewComponent[VentArea]()
