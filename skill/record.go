package skill

import (
	"github.com/delaneyj/skillparty/catalog"
	"github.com/google/uuid"
)

// Record is the persisted form of a skill: identity, allocations and
// specializations. Everything else is derived again after loading.
type Record struct {
	ID           string           `yaml:"guid,omitempty"`
	SkillID      string           `yaml:"suid,omitempty"`
	Name         string           `yaml:"name,omitempty"`
	Category     string           `yaml:"category,omitempty"`
	Kind         string           `yaml:"kind,omitempty"`
	Specific     string           `yaml:"specific,omitempty"`
	Base         int              `yaml:"base,omitempty"`
	Karma        int              `yaml:"karma,omitempty"`
	BuyWithKarma bool             `yaml:"buywithkarma,omitempty"`
	Specs        []Specialization `yaml:"specs,omitempty"`
}

func (s *Skill) Snapshot() Record {
	r := Record{
		ID:           s.id.String(),
		Name:         s.name,
		Category:     s.category,
		Kind:         s.kind.String(),
		Specific:     s.specific,
		Base:         s.base,
		Karma:        s.karma,
		BuyWithKarma: s.buyWithKarma,
		Specs:        s.Specializations(),
	}
	if s.skillID != uuid.Nil {
		r.SkillID = s.skillID.String()
	}
	return r
}

// Restore rebuilds a skill from rec. A record whose catalog id cannot be
// parsed or is missing from cat is reported as not found rather than as an
// error; a record without a catalog id is a user-defined knowledge skill.
func Restore(ch Character, cat *catalog.Catalog, rec Record, opts ...Option) (*Skill, bool, error) {
	var (
		s   *Skill
		err error
	)
	if rec.SkillID == "" {
		if rec.Name == "" {
			return nil, false, nil
		}
		s, err = NewKnowledge(ch, cat, rec.Name, rec.Category, opts...)
	} else {
		id, perr := uuid.Parse(rec.SkillID)
		if perr != nil {
			return nil, false, nil
		}
		if _, ok := cat.Skill(id); !ok {
			return nil, false, nil
		}
		s, err = FromCatalog(ch, cat, id, opts...)
	}
	if err != nil {
		return nil, false, err
	}

	if id, perr := uuid.Parse(rec.ID); perr == nil {
		s.id = id
	}
	if s.kind == KindExotic {
		s.specific = rec.Specific
	}
	s.base = max(rec.Base, 0)
	s.karma = max(rec.Karma, 0)
	s.buyWithKarma = rec.BuyWithKarma
	for _, sp := range rec.Specs {
		if sp.Name != "" {
			s.specs = append(s.specs, sp)
		}
	}
	s.refresh()
	return s, true, nil
}
