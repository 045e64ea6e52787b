package skill

import (
	"slices"

	"github.com/delaneyj/skillparty/gear"
	"github.com/delaneyj/skillparty/memo"
	"github.com/delaneyj/skillparty/modifier"
)

func (s *Skill) subscribe() {
	s.subs = append(s.subs,
		s.ch.Changes().Subscribe(s.onCharacterChanged),
		s.ch.ModifierEvents().Subscribe(s.onModifiersChanged),
		s.ch.EquipmentEvents().Subscribe(s.onEquipmentChanged),
		s.attr.Changes().Subscribe(s.onAttributeChanged),
	)
	if s.group != nil {
		s.subs = append(s.subs, s.group.Changes().Subscribe(s.onGroupChanged))
	}
}

// Close detaches the skill from its character. A closed skill still answers
// reads but announces nothing and rejects allocation changes.
func (s *Skill) Close() {
	if s.closed {
		return
	}
	s.closed = true
	for _, sub := range s.subs {
		sub.Close()
	}
	s.logger.Debug("skill closed", "subscriptions", len(s.subs))
	s.subs = nil
}

func (s *Skill) Closed() bool {
	return s.closed
}

func (s *Skill) changed(attr Attr) {
	if s.closed {
		return
	}
	s.notifier.Notify(attr)
}

func (s *Skill) changedAll(attrs ...Attr) {
	if s.closed {
		return
	}
	s.notifier.NotifyAll(attrs...)
}

// refresh records whether the skill can be raised without announcing it, for
// callers whose own announcement already reaches CanUpgradeCareer.
func (s *Skill) refresh() {
	s.couldRaise = s.CanUpgradeCareer()
}

func (s *Skill) checkUpgrade() {
	if now := s.CanUpgradeCareer(); now != s.couldRaise {
		s.couldRaise = now
		s.changed(AttrCanUpgradeCareer)
	}
}

func (s *Skill) allocationChanged(attr Attr) {
	s.caches.Invalidate(memo.TriggerAllocation)
	s.refresh()
	s.changed(attr)
}

func (s *Skill) onCharacterChanged(name string) {
	switch name {
	case CharacterKarma:
		s.checkUpgrade()
	case CharacterQualities:
		if s.inspirable() {
			s.changed(AttrDisplayPool)
		}
	}
}

func (s *Skill) onGroupChanged(name string) {
	switch name {
	case GroupBase:
		s.refresh()
		s.changed(AttrBase)
	case GroupKarma:
		s.refresh()
		s.changed(AttrKarma)
	default:
		return
	}
	if forced := s.KarmaSpecForced(); forced != s.wasForced {
		s.wasForced = forced
		s.changed(AttrKarmaSpecForced)
	}
}

func (s *Skill) onAttributeChanged(string) {
	s.changed(AttrAttributeModifiers)
	if enabled := s.Enabled(); enabled != s.wasEnabled {
		s.wasEnabled = enabled
		s.changed(AttrEnabled)
	}
}

func (s *Skill) onEquipmentChanged(gear.Change) {
	s.caches.Invalidate(memo.TriggerEquipment)
	s.changed(AttrWireRating)
}

// onModifiersChanged clears the modifier-driven slots before announcing
// anything, then announces the affected roots together so shared dependents
// are heard once per batch.
func (s *Skill) onModifiersChanged(batch []modifier.Modifier) {
	s.caches.Invalidate(memo.TriggerModifiers)

	var roots []Attr
	add := func(a Attr) {
		if !slices.Contains(roots, a) {
			roots = append(roots, a)
		}
	}
	for _, m := range batch {
		ours := m.Target == s.name
		switch {
		case m.Kind == modifier.KindWound, m.Kind == modifier.KindSkill && ours:
			add(AttrPoolModifiers)
		case m.Kind == modifier.KindSkillLevel && ours:
			add(AttrRating)
		case m.Kind == modifier.KindSkillBase && ours:
			add(AttrBase)
		case m.Kind == modifier.KindSkillKarma && ours:
			add(AttrKarma)
		case m.Kind == modifier.KindAttribute && m.Enabled && m.Target == s.attr.Abbrev():
			add(AttrAttributeModifiers)
		case m.Kind == modifier.KindHardWire && ours,
			m.Kind == modifier.KindSkillwire,
			m.Kind == modifier.KindSkillsoftAccess:
			add(AttrWireRating)
		}
		if m.Source.Equipment() {
			add(AttrAttributeModifiers)
			add(AttrWireRating)
		}
	}
	if len(roots) == 0 {
		return
	}
	s.refresh()
	s.changedAll(roots...)
}
