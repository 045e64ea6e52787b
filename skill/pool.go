package skill

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/delaneyj/skillparty/modifier"
)

const (
	specializationBonus = 2
	inspiredBonus       = 3
	defaultingPenalty   = 1

	artisan  = "Artisan"
	inspired = "Inspired"
)

// PoolModifiers sums the dice modifiers aimed at this skill.
func (s *Skill) PoolModifiers() int {
	return modifier.ValueFor(s.ch.Modifiers(), modifier.KindSkill, s.name)
}

// AttributeModifiers is the linked attribute's augmented value.
func (s *Skill) AttributeModifiers() int {
	return s.attr.TotalValue()
}

func (s *Skill) Pool() (int, error) {
	return s.PoolOtherAttribute(s.AttributeModifiers())
}

// PoolOtherAttribute is the pool rolled with attribute in place of the linked
// attribute, as for a cyberlimb with its own strength or agility.
func (s *Skill) PoolOtherAttribute(attribute int) (int, error) {
	rating, err := s.poolRating()
	if err != nil {
		return 0, err
	}
	pool := rating + s.RatingModifiers() + attribute + s.PoolModifiers() - s.ch.WoundModifier()
	if rating+s.RatingModifiers() <= 0 {
		if !s.canDefault {
			return 0, nil
		}
		pool -= defaultingPenalty
	}
	return max(pool, 0), nil
}

// poolRating picks the wired rating over the learned one when it is higher.
func (s *Skill) poolRating() (int, error) {
	wire, err := s.WireRating()
	if err != nil {
		return 0, err
	}
	learned := s.LearnedRating()
	if wire > learned {
		return wire, nil
	}
	return learned, nil
}

// DisplayPool renders the pool, followed by the pool with the specialization
// bonus when there is one.
func (s *Skill) DisplayPool() (string, error) {
	pool, err := s.Pool()
	if err != nil {
		return "", err
	}
	if s.Specialization() == "" || s.kind == KindExotic {
		return strconv.Itoa(pool), nil
	}
	bonus := specializationBonus
	if s.inspirable() && s.ch.HasQuality(inspired) {
		bonus = inspiredBonus
	}
	return fmt.Sprintf("%d (%d)", pool, pool+bonus), nil
}

// PoolToolTip explains how the pool adds up.
func (s *Skill) PoolToolTip() (string, error) {
	wire, err := s.WireRating()
	if err != nil {
		return "", err
	}
	learned := s.LearnedRating()
	untrained := max(wire, learned)+s.RatingModifiers() <= 0
	if untrained && !s.canDefault {
		return "You cannot default in this skill", nil
	}

	var sb strings.Builder
	if wire > learned {
		fmt.Fprintf(&sb, "Skillsoft (%d)", wire)
	} else {
		fmt.Fprintf(&sb, "Rating (%d", s.Rating())
		if mods := s.relevant(modifier.KindSkillLevel); len(mods) > 0 {
			fmt.Fprintf(&sb, " (Base (%d)", learned)
			for _, m := range mods {
				fmt.Fprintf(&sb, " + %s (%d)", modifierName(m), m.Value)
			}
			sb.WriteString(")")
		}
		sb.WriteString(")")
	}
	fmt.Fprintf(&sb, " + %s (%d)", s.attr.Abbrev(), s.AttributeModifiers())
	if untrained {
		fmt.Fprintf(&sb, " - Defaulting (%d)", defaultingPenalty)
	}
	for _, m := range s.relevant(modifier.KindSkill) {
		fmt.Fprintf(&sb, " + %s (%d)", modifierName(m), m.Value)
	}
	if wound := s.ch.WoundModifier(); wound != 0 {
		fmt.Fprintf(&sb, " - Wounds (%d)", wound)
	}
	return sb.String(), nil
}

// inspirable reports whether the Inspired quality raises this skill's
// specialization bonus.
func (s *Skill) inspirable() bool {
	return s.kind == KindActive && s.name == artisan
}

func (s *Skill) relevant(kind modifier.Kind) []modifier.Modifier {
	return modifier.Filter(s.ch.Modifiers(), func(m modifier.Modifier) bool {
		return m.Enabled && m.Kind == kind && m.Target == s.name
	})
}

func modifierName(m modifier.Modifier) string {
	if m.SourceName != "" {
		return m.SourceName
	}
	return m.Source.String()
}
