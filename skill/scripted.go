package skill

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// Script hooks, each called as hook(engine, state) except on_tick which
// also receives dt.
var scriptHooks = []struct {
	phase string
	fn    string
	args  string
}{
	{"activate", "on_activate", "__engine, __state"},
	{"deactivate", "on_deactivate", "__engine, __state"},
	{"main", "on_main", "__engine, __state"},
	{"secondary", "on_secondary", "__engine, __state"},
	{"tick", "on_tick", "__engine, __state, __dt"},
}

// ScriptedSkill runs its lifecycle hooks from a tengo script. Hooks the
// script does not define are skipped.
type ScriptedSkill struct {
	Base

	path     string
	compiled *tengo.Compiled
	state    *tengo.Map
	engine   *tengo.ImmutableMap
	hooks    map[string]bool

	mover Mover
	body  Body
}

// NewScriptedSkill compiles src. path is only used in errors and logs.
func NewScriptedSkill(base Base, path string, src []byte, mover Mover, body Body) (*ScriptedSkill, error) {
	s := &ScriptedSkill{
		Base:  base,
		path:  path,
		state: &tengo.Map{Value: map[string]tengo.Object{}},
		hooks: map[string]bool{},
		mover: mover,
		body:  body,
	}

	defined, err := definedHooks(src)
	if err != nil {
		return nil, fmt.Errorf("skill: script %s: %w", path, err)
	}

	var dispatch strings.Builder
	dispatch.WriteString("\n")
	first := true
	for _, h := range scriptHooks {
		if !defined[h.fn] {
			continue
		}
		s.hooks[h.phase] = true
		if !first {
			dispatch.WriteString(" else ")
		}
		fmt.Fprintf(&dispatch, "if __phase == %q {\n\t%s(%s)\n}", h.phase, h.fn, h.args)
		first = false
	}
	dispatch.WriteString("\n")

	script := tengo.NewScript(append(append([]byte(nil), src...), dispatch.String()...))
	_ = script.Add("__phase", "")
	_ = script.Add("__engine", map[string]any{})
	_ = script.Add("__state", map[string]any{})
	_ = script.Add("__dt", 0.0)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("skill: script %s: %w", path, err)
	}
	s.compiled = compiled
	s.engine = s.buildEngine()
	return s, nil
}

// definedHooks runs the bare script once and reports which hooks it declares.
func definedHooks(src []byte) (map[string]bool, error) {
	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	compiled, err := script.Run()
	if err != nil {
		return nil, err
	}
	out := map[string]bool{}
	for _, h := range scriptHooks {
		if !compiled.IsDefined(h.fn) {
			continue
		}
		if _, ok := compiled.Get(h.fn).Object().(*tengo.CompiledFunction); ok {
			out[h.fn] = true
		}
	}
	return out, nil
}

func (s *ScriptedSkill) Path() string { return s.path }

// State returns a snapshot of the script's persistent state map.
func (s *ScriptedSkill) State() map[string]any {
	out := make(map[string]any, len(s.state.Value))
	for k, v := range s.state.Value {
		out[k] = tengo.ToInterface(v)
	}
	return out
}

func (s *ScriptedSkill) Activate() {
	s.Base.Activate()
	s.run("activate", 0)
}

func (s *ScriptedSkill) Deactivate() {
	s.Base.Deactivate()
	s.run("deactivate", 0)
}

func (s *ScriptedSkill) MainAction() {
	if !s.active {
		return
	}
	s.run("main", 0)
}

func (s *ScriptedSkill) SecondaryAction() {
	if !s.active {
		return
	}
	s.run("secondary", 0)
}

func (s *ScriptedSkill) Tick(dt float64) {
	if !s.active {
		return
	}
	s.run("tick", dt)
}

func (s *ScriptedSkill) run(phase string, dt float64) {
	if !s.hooks[phase] {
		return
	}
	if err := s.runPhase(phase, dt); err != nil {
		s.logger.Error("script hook failed",
			slog.String("path", s.path),
			slog.String("phase", phase),
			slog.Any("err", err))
	}
}

func (s *ScriptedSkill) runPhase(phase string, dt float64) error {
	if err := s.compiled.Set("__phase", phase); err != nil {
		return err
	}
	if err := s.compiled.Set("__engine", s.engine); err != nil {
		return err
	}
	if err := s.compiled.Set("__state", s.state); err != nil {
		return err
	}
	if err := s.compiled.Set("__dt", dt); err != nil {
		return err
	}
	return s.compiled.Run()
}

func (s *ScriptedSkill) buildEngine() *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	values["set_speed_factor"] = &tengo.UserFunction{Name: "set_speed_factor", Value: func(args ...tengo.Object) (tengo.Object, error) {
		f, ok := scriptFloat(args)
		if !ok || s.mover == nil {
			return tengo.FalseValue, nil
		}
		s.mover.SetSpeedFactor(f)
		return tengo.TrueValue, nil
	}}

	values["set_jump_factor"] = &tengo.UserFunction{Name: "set_jump_factor", Value: func(args ...tengo.Object) (tengo.Object, error) {
		f, ok := scriptFloat(args)
		if !ok || s.mover == nil {
			return tengo.FalseValue, nil
		}
		s.mover.SetJumpFactor(f)
		return tengo.TrueValue, nil
	}}

	values["position"] = &tengo.UserFunction{Name: "position", Value: func(args ...tengo.Object) (tengo.Object, error) {
		var x, y, z float64
		if s.body != nil {
			p := s.body.Position()
			x, y, z = p.X, p.Y, p.Z
		}
		return &tengo.Array{Value: []tengo.Object{
			&tengo.Float{Value: x}, &tengo.Float{Value: y}, &tengo.Float{Value: z},
		}}, nil
	}}

	values["log"] = &tengo.UserFunction{Name: "log", Value: func(args ...tengo.Object) (tengo.Object, error) {
		parts := make([]string, 0, len(args))
		for _, a := range args {
			parts = append(parts, objectAsString(a))
		}
		s.logger.Info(strings.Join(parts, " "), slog.String("path", s.path))
		return tengo.UndefinedValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func scriptFloat(args []tengo.Object) (float64, bool) {
	if len(args) < 1 {
		return 0, false
	}
	return tengo.ToFloat64(args[0])
}

func objectAsString(obj tengo.Object) string {
	if obj == nil {
		return ""
	}
	if v, ok := obj.(*tengo.String); ok {
		return v.Value
	}
	return strings.Trim(obj.String(), "\"")
}
