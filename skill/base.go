package skill

import "log/slog"

// Appearance is the mesh/material pair a skill swaps onto its holder. Values
// are opaque asset references.
type Appearance struct {
	Mesh     string
	Material string
}

func (a Appearance) Complete() bool {
	return a.Mesh != "" && a.Material != ""
}

// AppearanceSink applies an Appearance to whatever renders the skill.
type AppearanceSink interface {
	ApplyAppearance(a Appearance)
}

type AppearanceSinkFunc func(a Appearance)

func (f AppearanceSinkFunc) ApplyAppearance(a Appearance) { f(a) }

// Base carries the state shared by every variant. Concrete variants embed it
// and override the hooks they need.
type Base struct {
	name       string
	appearance Appearance
	sink       AppearanceSink
	active     bool
	logger     *slog.Logger
}

func NewBase(name string, appearance Appearance, sink AppearanceSink, logger *slog.Logger) Base {
	if logger == nil {
		logger = slog.Default()
	}
	return Base{
		name:       name,
		appearance: appearance,
		sink:       sink,
		logger:     logger.With(slog.String("skill", name)),
	}
}

func (b *Base) Name() string { return b.name }

func (b *Base) Active() bool { return b.active }

func (b *Base) Appearance() Appearance { return b.appearance }

func (b *Base) Activate() {
	b.active = true
	b.ChangeAppearance()
	b.logger.Debug("skill activated")
}

func (b *Base) Deactivate() {
	b.active = false
	b.logger.Debug("skill deactivated")
}

// ChangeAppearance applies the appearance only when both mesh and material
// are set.
func (b *Base) ChangeAppearance() {
	if b.sink == nil || !b.appearance.Complete() {
		return
	}
	b.sink.ApplyAppearance(b.appearance)
}

func (b *Base) MainAction() {
	if !b.active {
		return
	}
	b.logger.Debug("main action")
}

func (b *Base) SecondaryAction() {
	if !b.active {
		return
	}
	b.logger.Debug("secondary action")
}
