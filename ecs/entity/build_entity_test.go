package entity

import (
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/milk9111/grapplerig/common"
	"github.com/milk9111/grapplerig/ecs"
	"github.com/milk9111/grapplerig/ecs/component"
	"github.com/milk9111/grapplerig/physics"
	"github.com/milk9111/grapplerig/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(rig prefabs.RigSpec) *BuildContext {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return &BuildContext{
		Rig:     rig,
		Physics: physics.NewWorld(rig.Physics.Gravity, logger),
		Logger:  logger,
	}
}

func playerSpec() prefabs.EntityBuildSpec {
	return prefabs.EntityBuildSpec{
		Name: "player",
		Components: map[string]any{
			"player_tag":   map[string]any{},
			"transform":    map[string]any{"x": 1, "y": 2, "scale": 2},
			"physics_body": map[string]any{"mass": 1, "radius": 0.5},
			"movement":     map[string]any{"move_speed": 6, "jump_speed": 5},
			"input":        map[string]any{},
			"glasses":      map[string]any{},
			"rope_line":    map[string]any{},
			"skills":       map[string]any{},
		},
	}
}

func TestBuildEntity_Player(t *testing.T) {
	w := ecs.NewWorld()
	rig := prefabs.DefaultRigSpec()
	ctx := testContext(rig)

	e, err := BuildEntity(w, playerSpec(), ctx)
	require.NoError(t, err)

	p, ok := Player(w)
	require.True(t, ok)
	assert.Equal(t, e, p)

	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, common.V3(1, 2, 0), tr.Position)
	assert.Equal(t, common.V3(2, 2, 2), tr.Scale)

	skills, ok := PlayerSkills(w)
	require.True(t, ok)
	assert.Equal(t, len(rig.Skills.Roster), skills.Machine.Len())
	assert.NotNil(t, skills.Grapple)
	assert.NotNil(t, skills.SkyWalker)
	assert.NotNil(t, skills.SizeShifter)
	cur, ok := skills.Machine.Current()
	require.True(t, ok)
	assert.Equal(t, prefabs.SkillGrapple, cur.Name())

	glasses, ok := ecs.Get(w, e, component.GlassesComponent.Kind())
	require.True(t, ok)
	assert.False(t, glasses.Visible)
}

func TestBuildEntity_EquipOnStartNone(t *testing.T) {
	w := ecs.NewWorld()
	rig := prefabs.DefaultRigSpec()
	rig.Skills.EquipOnStart = -1

	_, err := BuildEntity(w, playerSpec(), testContext(rig))
	require.NoError(t, err)

	skills, _ := PlayerSkills(w)
	assert.False(t, skills.Machine.Equipped())
}

func TestBuildEntity_GrapplePointIDs(t *testing.T) {
	w := ecs.NewWorld()
	ctx := testContext(prefabs.DefaultRigSpec())

	named, err := BuildEntity(w, prefabs.EntityBuildSpec{Name: "crane", Components: map[string]any{
		"grapple_point": map[string]any{"id": "crane"},
		"transform":     map[string]any{"x": 3},
	}}, ctx)
	require.NoError(t, err)
	anon, err := BuildEntity(w, prefabs.EntityBuildSpec{Name: "anon", Components: map[string]any{
		"grapple_point": nil,
		"transform":     nil,
	}}, ctx)
	require.NoError(t, err)

	found, ok := GrapplePointByID(w, "crane")
	require.True(t, ok)
	assert.Equal(t, named, found)

	gp, ok := ecs.Get(w, anon, component.GrapplePointComponent.Kind())
	require.True(t, ok)
	_, err = uuid.Parse(gp.ID)
	assert.NoError(t, err, "anonymous points get a generated id")
}

func TestBuildEntity_Errors(t *testing.T) {
	tests := []struct {
		name string
		spec prefabs.EntityBuildSpec
		want string
	}{
		{"no components", prefabs.EntityBuildSpec{Name: "empty"}, "does not define components"},
		{"unknown component", prefabs.EntityBuildSpec{Name: "x", Components: map[string]any{
			"teleporter": nil, "transform": nil,
		}}, "teleporter"},
		{"point without transform", prefabs.EntityBuildSpec{Name: "x", Components: map[string]any{
			"grapple_point": map[string]any{"id": "a"},
		}}, "missing dependency"},
		{"inverted glass", prefabs.EntityBuildSpec{Name: "x", Components: map[string]any{
			"glass_panel": map[string]any{"min_x": 5, "max_x": 1},
		}}, "inverted"},
		{"inverted vent", prefabs.EntityBuildSpec{Name: "x", Components: map[string]any{
			"vent_area": map[string]any{"min_z": 1, "max_z": -1},
		}}, "inverted"},
		{"skills without body", prefabs.EntityBuildSpec{Name: "x", Components: map[string]any{
			"transform": nil, "skills": nil,
		}}, "physics_body"},
		{"still movement", prefabs.EntityBuildSpec{Name: "x", Components: map[string]any{
			"movement": map[string]any{"move_speed": 0},
		}}, "move_speed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ecs.NewWorld()
			_, err := BuildEntity(w, tt.spec, testContext(prefabs.DefaultRigSpec()))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
			assert.Empty(t, ecs.Entities(w), "partial entity torn down")
		})
	}
}

func TestBuildEntity_VentArea(t *testing.T) {
	w := ecs.NewWorld()
	spec := prefabs.EntityBuildSpec{Name: "vent", Components: map[string]any{
		"vent_area": map[string]any{"min_x": 1, "max_x": 2, "max_y": 1.5, "min_z": -1, "max_z": 1, "entrance": true},
	}}
	e, err := BuildEntity(w, spec, testContext(prefabs.DefaultRigSpec()))
	require.NoError(t, err)

	vent, ok := ecs.Get(w, e, component.VentAreaComponent.Kind())
	require.True(t, ok)
	assert.True(t, vent.Entrance)
	assert.True(t, vent.Contains(1.5, 1, 0))
	assert.False(t, vent.Contains(1.5, 2, 0))
}

func TestDestroy_DeactivatesSkills(t *testing.T) {
	w := ecs.NewWorld()
	ctx := testContext(prefabs.DefaultRigSpec())
	e, err := BuildEntity(w, playerSpec(), ctx)
	require.NoError(t, err)
	skills, _ := PlayerSkills(w)
	machine := skills.Machine

	Destroy(w, e, ctx)
	assert.False(t, ecs.IsAlive(w, e))
	assert.False(t, machine.Equipped())
}
