package skill

import (
	"fmt"

	"github.com/delaneyj/skillparty/modifier"
)

// FreeBase is the skill points granted by modifiers rather than spent.
func (s *Skill) FreeBase() int {
	return s.freeBase.Get(func() int {
		return modifier.ValueFor(s.ch.Modifiers(), modifier.KindSkillBase, s.name)
	})
}

// FreeKarma is the ranks granted by modifiers rather than bought.
func (s *Skill) FreeKarma() int {
	return s.freeKarma.Get(func() int {
		return modifier.ValueFor(s.ch.Modifiers(), modifier.KindSkillKarma, s.name)
	})
}

func (s *Skill) BaseAllocation() int  { return s.base }
func (s *Skill) KarmaAllocation() int { return s.karma }
func (s *Skill) BuyWithKarma() bool   { return s.buyWithKarma }

func (s *Skill) Base() int  { return s.base + s.FreeBase() }
func (s *Skill) Karma() int { return s.karma + s.FreeKarma() }

func (s *Skill) groupRating() int {
	if s.group == nil {
		return 0
	}
	return s.group.Rating()
}

// BaseUnlocked is false while the skill's group has ranks; the group's ranks
// stand in for the skill's own base points.
func (s *Skill) BaseUnlocked() bool {
	return s.groupRating() == 0
}

// KarmaSpecForced reports that a specialization can only be bought with
// karma, because the base is held by the group.
func (s *Skill) KarmaSpecForced() bool {
	return !s.BaseUnlocked()
}

// LearnedRating is the rating from allocated points alone.
func (s *Skill) LearnedRating() int {
	return min(max(s.Base()+s.Karma()+s.groupRating(), 0), s.opts.maxRating)
}

// RatingModifiers sums modifiers that add ranks.
func (s *Skill) RatingModifiers() int {
	return modifier.ValueFor(s.ch.Modifiers(), modifier.KindSkillLevel, s.name)
}

func (s *Skill) Rating() int {
	return s.LearnedRating() + s.RatingModifiers()
}

func (s *Skill) Leveled() bool {
	return s.Rating() > 0
}

func (s *Skill) RatingMaximum() int {
	return s.opts.maxRating
}

func (s *Skill) SetBase(v int) error {
	if s.closed {
		return ErrClosed
	}
	if v < 0 {
		return fmt.Errorf("%w: base %d", ErrNegativeAllocation, v)
	}
	if v == s.base {
		return nil
	}
	if !s.BaseUnlocked() {
		return ErrBaseLocked
	}
	s.base = v
	s.allocationChanged(AttrBase)
	return nil
}

func (s *Skill) SetKarma(v int) error {
	if s.closed {
		return ErrClosed
	}
	if v < 0 {
		return fmt.Errorf("%w: karma %d", ErrNegativeAllocation, v)
	}
	if v == s.karma {
		return nil
	}
	s.karma = v
	s.allocationChanged(AttrKarma)
	return nil
}

func (s *Skill) SetBuyWithKarma(v bool) {
	if v == s.buyWithKarma {
		return
	}
	s.buyWithKarma = v
	s.changed(AttrUpgradeKarmaCost)
}
