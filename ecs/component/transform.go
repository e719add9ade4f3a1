package component

import "github.com/milk9111/grapplerig/common"

// Transform is an entity's world placement. Y is up.
type Transform struct {
	Position common.Vec3
	Forward  common.Vec3
	Scale    common.Vec3
}

var TransformComponent = NewComponent[Transform]()
