package component

import "github.com/milk9111/grapplerig/skill"

// Skills holds the entity's skill slot machine and direct handles to the
// variants systems need to feed.
type Skills struct {
	Machine     *skill.SlotMachine
	Grapple     *skill.GrappleSkill
	SkyWalker   *skill.SkyWalker
	SizeShifter *skill.SizeShifter
}

var SkillsComponent = NewComponent[Skills]()
