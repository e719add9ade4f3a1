package component

import (
	"github.com/milk9111/grapplerig/movement"
	"github.com/milk9111/grapplerig/physics"
)

type PhysicsBody struct {
	Body *physics.Body
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()

type Movement struct {
	Controller *movement.Controller
}

var MovementComponent = NewComponent[Movement]()
