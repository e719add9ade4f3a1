package grapple

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/milk9111/grapplerig/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testParams() Params {
	p := DefaultParams()
	p.HookRange = 15
	p.MaxAngle = 60
	return p
}

func TestSelectTarget_Scenarios(t *testing.T) {
	origin := common.V3(0, 0, 0)
	forward := common.Forward

	tests := []struct {
		name       string
		candidates []Point
		wantID     string
		wantOK     bool
	}{
		{
			name:       "straight ahead in range",
			candidates: []Point{{ID: "a", Pos: common.V3(0, 0, 10)}},
			wantID:     "a",
			wantOK:     true,
		},
		{
			name:       "ninety degrees to the side",
			candidates: []Point{{ID: "a", Pos: common.V3(10, 0, 0)}},
			wantOK:     false,
		},
		{
			name:       "out of range",
			candidates: []Point{{ID: "a", Pos: common.V3(0, 0, 15.5)}},
			wantOK:     false,
		},
		{
			name:       "height is ignored",
			candidates: []Point{{ID: "a", Pos: common.V3(0, 100, 10)}},
			wantID:     "a",
			wantOK:     true,
		},
		{
			name:       "behind the player",
			candidates: []Point{{ID: "a", Pos: common.V3(0, 0, -5)}},
			wantOK:     false,
		},
		{
			name: "closest to sightline wins over nearer point",
			candidates: []Point{
				{ID: "near_offset", Pos: common.V3(3, 0, 4)},
				{ID: "far_centered", Pos: common.V3(0.5, 0, 12)},
			},
			wantID: "far_centered",
			wantOK: true,
		},
		{
			name: "first wins ties",
			candidates: []Point{
				{ID: "left", Pos: common.V3(-2, 0, 8)},
				{ID: "right", Pos: common.V3(2, 0, 8)},
			},
			wantID: "left",
			wantOK: true,
		},
		{
			name:   "no candidates",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SelectTarget(testParams(), origin, forward, tt.candidates)
			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantID, got.ID)
			}
		})
	}
}

func TestSelectTarget_WideConeStillRejectsBehind(t *testing.T) {
	p := testParams()
	p.MaxAngle = 180

	_, ok := SelectTarget(p, common.Vec3{}, common.Forward, []Point{{ID: "back", Pos: common.V3(1, 0, -3)}})
	assert.False(t, ok)
}

func TestSelectTarget_ForwardHeightIgnored(t *testing.T) {
	// looking down at 45 degrees still aims along +Z on the ground plane
	forward := common.V3(0, -1, 1)
	got, ok := SelectTarget(testParams(), common.Vec3{}, forward, []Point{{ID: "a", Pos: common.V3(0, 0, 5)}})
	require.True(t, ok)
	assert.Equal(t, "a", got.ID)
}

func TestSelectTarget_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	params := testParams()

	for round := 0; round < 200; round++ {
		playerPos := common.V3(rng.Float64()*20-10, rng.Float64()*4, rng.Float64()*20-10)
		yaw := rng.Float64() * 2 * math.Pi
		forward := common.V3(math.Sin(yaw), 0, math.Cos(yaw))

		candidates := make([]Point, 12)
		for i := range candidates {
			candidates[i] = Point{
				ID:  fmt.Sprintf("p%d", i),
				Pos: common.V3(rng.Float64()*40-20, rng.Float64()*10, rng.Float64()*40-20),
			}
		}

		got, ok := SelectTarget(params, playerPos, forward, candidates)

		// planar geometry worked out directly on X/Z
		bestIdx := -1
		best := math.MaxFloat64
		for i, c := range candidates {
			dx, dz := c.Pos.X-playerPos.X, c.Pos.Z-playerPos.Z
			dist := math.Hypot(dx, dz)
			if dist > params.HookRange {
				continue
			}
			along := dx*forward.X + dz*forward.Z
			angle := 0.0
			if dist > 0 {
				angle = math.Acos(math.Max(-1, math.Min(1, along/dist))) * 180 / math.Pi
			}
			if angle > params.MaxAngle || along < 0 {
				continue
			}
			perp := math.Abs(dx*forward.Z - dz*forward.X)
			if perp < best {
				best = perp
				bestIdx = i
			}
		}

		if bestIdx < 0 {
			require.False(t, ok, "round %d", round)
			continue
		}
		require.True(t, ok, "round %d", round)
		assert.Equal(t, candidates[bestIdx].ID, got.ID, "round %d", round)

		s, pass := Evaluate(params, playerPos, forward, got.Pos)
		require.True(t, pass)
		assert.LessOrEqual(t, s.Distance, params.HookRange)
		assert.LessOrEqual(t, s.Angle, params.MaxAngle)
	}
}

func TestEvaluate_CandidateOnPlayer(t *testing.T) {
	s, ok := Evaluate(testParams(), common.V3(1, 0, 1), common.Forward, common.V3(1, 5, 1))
	require.True(t, ok)
	assert.Zero(t, s.Angle)
	assert.Zero(t, s.Perpendicular)
}
