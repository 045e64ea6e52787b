package skill

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/delaneyj/skillparty/catalog"
	"github.com/delaneyj/skillparty/memo"
	"github.com/delaneyj/skillparty/notify"
	"github.com/google/uuid"
)

var (
	ErrUnknownSkill       = errors.New("unknown skill")
	ErrUnknownAttribute   = errors.New("unknown attribute")
	ErrUnknownGroup       = errors.New("unknown skill group")
	ErrNotKnowledge       = errors.New("category does not hold knowledge skills")
	ErrBaseLocked         = errors.New("skill base is locked by its group")
	ErrNegativeAllocation = errors.New("allocation cannot be negative")
	ErrClosed             = errors.New("skill is closed")
)

// Kind is the closed set of skill variants.
type Kind uint8

const (
	KindActive Kind = iota
	KindKnowledge
	KindExotic
)

func (k Kind) String() string {
	switch k {
	case KindKnowledge:
		return "knowledge"
	case KindExotic:
		return "exotic"
	default:
		return "active"
	}
}

// Skill is one skill on a character sheet. Everything it reports beyond its
// point allocations and specializations is derived on read, either directly
// or through its memo slots.
//
// A Skill is driven by its character's event streams and is not safe for
// concurrent use; callers that fan events out over goroutines must serialize
// delivery per skill.
type Skill struct {
	id         uuid.UUID
	skillID    uuid.UUID
	kind       Kind
	name       string
	translated string
	specific   string
	category   string
	groupName  string
	canDefault bool
	source     string
	page       string
	suggested  []string

	ch    Character
	attr  Attribute
	group Group

	base         int
	karma        int
	buyWithKarma bool
	specs        []Specialization

	opts     options
	logger   *slog.Logger
	notifier *notify.Notifier[Attr]

	caches    *memo.Set
	wire      *memo.Slot[int]
	freeBase  *memo.Slot[int]
	freeKarma *memo.Slot[int]

	subs       []notify.Subscription
	closed     bool
	wasEnabled bool
	couldRaise bool
	wasForced  bool
}

// FromCatalog builds the skill with the given catalog id. A definition that
// refers to an attribute or group the character does not have is an error.
func FromCatalog(ch Character, cat *catalog.Catalog, id uuid.UUID, opts ...Option) (*Skill, error) {
	def, ok := cat.Skill(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSkill, id)
	}
	return fromDefinition(ch, cat, def, opts)
}

// ByName is FromCatalog keyed by the skill's catalog name.
func ByName(ch Character, cat *catalog.Catalog, name string, opts ...Option) (*Skill, error) {
	def, ok := cat.SkillByName(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSkill, name)
	}
	return fromDefinition(ch, cat, def, opts)
}

// NewExotic builds an exotic skill for one specific weapon or vehicle.
func NewExotic(ch Character, cat *catalog.Catalog, id uuid.UUID, specific string, opts ...Option) (*Skill, error) {
	s, err := FromCatalog(ch, cat, id, opts...)
	if err != nil {
		return nil, err
	}
	if s.kind != KindExotic {
		s.Close()
		return nil, fmt.Errorf("%s is not an exotic skill", s.name)
	}
	s.specific = specific
	return s, nil
}

// NewKnowledge builds a user-defined knowledge skill. It has a fresh identity
// and no catalog id.
func NewKnowledge(ch Character, cat *catalog.Catalog, name, category string, opts ...Option) (*Skill, error) {
	kind, err := cat.KindOf(category)
	if err != nil {
		return nil, err
	}
	if kind != catalog.TypeKnowledge {
		return nil, fmt.Errorf("%w: %q", ErrNotKnowledge, category)
	}
	c, _ := cat.Category(category)
	return build(ch, catalog.Skill{
		Name:      name,
		Category:  category,
		Attribute: c.Attribute,
		Default:   true,
	}, KindKnowledge, opts)
}

func fromDefinition(ch Character, cat *catalog.Catalog, def catalog.Skill, opts []Option) (*Skill, error) {
	kind := KindExotic
	if !def.Exotic {
		t, err := cat.KindOf(def.Category)
		if err != nil {
			return nil, fmt.Errorf("skill %q: %w", def.Name, err)
		}
		kind = KindActive
		if t == catalog.TypeKnowledge {
			kind = KindKnowledge
		}
	}
	return build(ch, def, kind, opts)
}

func build(ch Character, def catalog.Skill, kind Kind, opts []Option) (*Skill, error) {
	attr, ok := ch.Attribute(def.Attribute)
	if !ok {
		return nil, fmt.Errorf("skill %q: %w %q", def.Name, ErrUnknownAttribute, def.Attribute)
	}
	var group Group
	if def.Group != "" {
		if group, ok = ch.Group(def.Group); !ok {
			return nil, fmt.Errorf("skill %q: %w %q", def.Name, ErrUnknownGroup, def.Group)
		}
	}

	o := newOptions(opts)
	s := &Skill{
		id:         uuid.New(),
		skillID:    def.ID,
		kind:       kind,
		name:       def.Name,
		translated: def.Translate,
		category:   def.Category,
		groupName:  def.Group,
		canDefault: def.Default,
		source:     def.Source,
		page:       def.Page,
		suggested:  append([]string(nil), def.Specs...),
		ch:         ch,
		attr:       attr,
		group:      group,
		opts:       o,
		logger:     o.logger.With("skill", def.Name),
		caches:     memo.NewSet(o.logger),
		wire:       memo.IntSlot("wire rating", memo.TriggerModifiers|memo.TriggerEquipment),
		freeBase:   memo.IntSlot("free base", memo.TriggerModifiers),
		freeKarma:  memo.IntSlot("free karma", memo.TriggerModifiers),
	}
	s.notifier = notify.NewNotifier(Dependencies, s.logger)
	memo.Add(s.caches, s.wire, s.freeBase, s.freeKarma)

	s.wasEnabled = s.Enabled()
	s.couldRaise = s.CanUpgradeCareer()
	s.wasForced = s.KarmaSpecForced()
	s.subscribe()
	return s, nil
}

func (s *Skill) ID() uuid.UUID { return s.id }

// SkillID is the catalog id, uuid.Nil for user-defined skills.
func (s *Skill) SkillID() uuid.UUID { return s.skillID }

func (s *Skill) Kind() Kind        { return s.kind }
func (s *Skill) Name() string      { return s.name }
func (s *Skill) Category() string  { return s.category }
func (s *Skill) GroupName() string { return s.groupName }
func (s *Skill) Source() string    { return s.source }
func (s *Skill) Page() string      { return s.page }
func (s *Skill) Specific() string  { return s.specific }

func (s *Skill) DisplayName() string {
	name := s.name
	if s.translated != "" {
		name = s.translated
	}
	if s.specific != "" {
		return fmt.Sprintf("%s (%s)", name, s.specific)
	}
	return name
}

func (s *Skill) KnowledgeSkill() bool { return s.kind == KindKnowledge }
func (s *Skill) ExoticSkill() bool    { return s.kind == KindExotic }

// AllowDelete is true for the variants a user adds by hand.
func (s *Skill) AllowDelete() bool { return s.kind != KindActive }

// Default reports whether the skill can be rolled untrained.
func (s *Skill) Default() bool { return s.canDefault }

func (s *Skill) AttributeAbbrev() string { return s.attr.Abbrev() }

// Enabled is false while the linked attribute is zero.
func (s *Skill) Enabled() bool { return s.attr.Value() != 0 }

func (s *Skill) SuggestedSpecializations() []string {
	return append([]string(nil), s.suggested...)
}

// Subscribe registers fn for every attribute change announced by this skill.
func (s *Skill) Subscribe(fn func(Attr)) notify.Subscription {
	return s.notifier.Subscribe(fn)
}
