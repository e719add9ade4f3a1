package component

import "github.com/milk9111/grapplerig/common"

// RopeLine is the rope polyline to draw this frame, empty when detached.
type RopeLine struct {
	Points []common.Vec3
}

var RopeLineComponent = NewComponent[RopeLine]()
