package grapple

import (
	"math"

	"github.com/milk9111/grapplerig/common"
)

// RopePoints samples a sagging rope from origin to anchor. The sag peaks at
// the midpoint at sag * rope length below the straight line.
func RopePoints(origin, anchor common.Vec3, segments int, sag float64) []common.Vec3 {
	if segments < 2 {
		segments = 2
	}
	length := origin.Dist(anchor)
	points := make([]common.Vec3, segments)
	for i := range points {
		t := float64(i) / float64(segments-1)
		p := origin.Lerp(anchor, t)
		p.Y -= math.Sin(t*math.Pi) * sag * length
		points[i] = p
	}
	return points
}

// Rope samples the current rope from origin, or returns nil when not
// attached.
func (s *Solver) Rope(origin common.Vec3) []common.Vec3 {
	if s.state != StateAttached {
		return nil
	}
	return RopePoints(origin, s.attachment.Anchor, s.params.RopeSegments, s.params.RopeSag)
}
