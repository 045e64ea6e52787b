package skill

import (
	"fmt"

	"github.com/delaneyj/skillparty/gear"
	"github.com/delaneyj/skillparty/modifier"
)

const (
	skillsoftCategory = "Skillsofts"
	activesoftName    = "Activesoft"
)

// WireRating is the rating the character gets for this skill from hardware:
// active hardwires first, then skillsofts running through skillwires. It is
// memoized until modifiers or equipment change.
func (s *Skill) WireRating() (int, error) {
	return s.wire.GetErr(s.computeWireRating)
}

func (s *Skill) computeWireRating() (int, error) {
	mods := s.ch.Modifiers()

	hardwires := modifier.Filter(mods, func(m modifier.Modifier) bool {
		return m.Enabled && m.Kind == modifier.KindHardWire && m.Target == s.name
	})
	if len(hardwires) > 0 {
		best := hardwires[0].Value
		for _, m := range hardwires[1:] {
			best = max(best, m.Value)
		}
		return best, nil
	}

	skillwire := modifier.ValueOf(mods, modifier.KindSkillwire)
	if (skillwire <= 0 && s.kind != KindKnowledge) || !s.ch.SkillsoftAccess() {
		return 0, nil
	}

	hacked := s.name + ", " + s.opts.hackedLabel
	v, err := gear.FirstPositive(s.ch.Gear(), func(it *gear.Item) (int, bool) {
		if !it.Equipped || it.Category != skillsoftCategory {
			return 0, false
		}
		if it.Extra != s.name && it.Extra != hacked {
			return 0, false
		}
		if it.Name == activesoftName {
			return min(it.Rating, skillwire), true
		}
		return it.Rating, true
	})
	if err != nil {
		return 0, fmt.Errorf("wire rating for %s: %w", s.name, err)
	}
	return v, nil
}
