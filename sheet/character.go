package sheet

import (
	"fmt"
	"log/slog"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/delaneyj/skillparty/gear"
	"github.com/delaneyj/skillparty/modifier"
	"github.com/delaneyj/skillparty/notify"
	"github.com/delaneyj/skillparty/skill"
	"github.com/google/uuid"
)

// Attribute is a character attribute with its natural value. TotalValue adds
// the character's attribute modifiers.
type Attribute struct {
	ch      *Character
	abbrev  string
	value   int
	changes notify.Feed[string]
}

func (a *Attribute) Abbrev() string { return a.abbrev }
func (a *Attribute) Value() int     { return a.value }

func (a *Attribute) TotalValue() int {
	return a.value + modifier.ValueFor(a.ch.mods, modifier.KindAttribute, a.abbrev)
}

func (a *Attribute) Changes() notify.Stream[string] { return &a.changes }

func (a *Attribute) SetValue(v int) {
	if v == a.value {
		return
	}
	a.value = v
	a.changes.Send("Value")
}

// Group is a skill group. Its ranks count toward every member skill.
type Group struct {
	name    string
	base    int
	karma   int
	changes notify.Feed[string]
}

func (g *Group) Name() string                   { return g.name }
func (g *Group) Base() int                      { return g.base }
func (g *Group) Karma() int                     { return g.karma }
func (g *Group) Rating() int                    { return g.base + g.karma }
func (g *Group) Changes() notify.Stream[string] { return &g.changes }

func (g *Group) SetBase(v int) {
	if v == g.base {
		return
	}
	g.base = v
	g.changes.Send(skill.GroupBase)
}

func (g *Group) SetKarma(v int) {
	if v == g.karma {
		return
	}
	g.karma = v
	g.changes.Send(skill.GroupKarma)
}

// Character is an in-memory character sheet. It owns attributes, groups,
// modifiers, gear and skills, and publishes the change streams its skills
// listen to.
type Character struct {
	Name string

	logger    *slog.Logger
	karma     int
	attrs     map[string]*Attribute
	attrOrder []string
	groups    map[string]*Group
	qualities mapset.Set[string]
	mods      []modifier.Modifier
	gear      []*gear.Item
	skills    []*skill.Skill

	changes   notify.Feed[string]
	modifiers notify.Feed[[]modifier.Modifier]
	equipment notify.Feed[gear.Change]
}

func New(name string, logger *slog.Logger) *Character {
	if logger == nil {
		logger = slog.Default()
	}
	return &Character{
		Name:      name,
		logger:    logger.With("character", name),
		attrs:     map[string]*Attribute{},
		groups:    map[string]*Group{},
		qualities: mapset.NewThreadUnsafeSet[string](),
	}
}

// AddAttribute declares an attribute, or updates its value if it exists.
func (c *Character) AddAttribute(abbrev string, value int) *Attribute {
	if a, ok := c.attrs[abbrev]; ok {
		a.SetValue(value)
		return a
	}
	a := &Attribute{ch: c, abbrev: abbrev, value: value}
	c.attrs[abbrev] = a
	c.attrOrder = append(c.attrOrder, abbrev)
	return a
}

func (c *Character) AddGroup(name string) *Group {
	if g, ok := c.groups[name]; ok {
		return g
	}
	g := &Group{name: name}
	c.groups[name] = g
	return g
}

func (c *Character) Attribute(abbrev string) (skill.Attribute, bool) {
	a, ok := c.attrs[abbrev]
	if !ok {
		return nil, false
	}
	return a, true
}

func (c *Character) Group(name string) (skill.Group, bool) {
	g, ok := c.groups[name]
	if !ok {
		return nil, false
	}
	return g, true
}

// Attributes lists attributes in declaration order.
func (c *Character) Attributes() []*Attribute {
	out := make([]*Attribute, 0, len(c.attrOrder))
	for _, abbrev := range c.attrOrder {
		out = append(out, c.attrs[abbrev])
	}
	return out
}

func (c *Character) Karma() int { return c.karma }

func (c *Character) SetKarma(v int) {
	if v == c.karma {
		return
	}
	c.karma = v
	c.changes.Send(skill.CharacterKarma)
}

func (c *Character) AddQuality(name string) {
	if c.qualities.Add(name) {
		c.changes.Send(skill.CharacterQualities)
	}
}

func (c *Character) RemoveQuality(name string) {
	if c.qualities.Contains(name) {
		c.qualities.Remove(name)
		c.changes.Send(skill.CharacterQualities)
	}
}

func (c *Character) HasQuality(name string) bool { return c.qualities.Contains(name) }

func (c *Character) SkillsoftAccess() bool {
	return modifier.Any(c.mods, func(m modifier.Modifier) bool {
		return m.Enabled && m.Kind == modifier.KindSkillsoftAccess
	})
}

func (c *Character) WoundModifier() int {
	return modifier.ValueOf(c.mods, modifier.KindWound)
}

func (c *Character) Modifiers() []modifier.Modifier { return c.mods }

// AddModifiers appends mods and publishes them as one batch.
func (c *Character) AddModifiers(mods ...modifier.Modifier) {
	if len(mods) == 0 {
		return
	}
	c.mods = append(c.mods, mods...)
	c.modifiers.Send(slices.Clone(mods))
}

// RemoveModifiers drops every modifier matching pred and publishes the
// removed ones as one batch.
func (c *Character) RemoveModifiers(pred func(modifier.Modifier) bool) int {
	removed := modifier.Filter(c.mods, pred)
	if len(removed) == 0 {
		return 0
	}
	c.mods = slices.DeleteFunc(c.mods, pred)
	c.modifiers.Send(removed)
	return len(removed)
}

func (c *Character) Gear() []*gear.Item { return c.gear }

// AddGear adds root items. Items that would make the tree contain itself are
// rejected.
func (c *Character) AddGear(items ...*gear.Item) error {
	next := append(slices.Clone(c.gear), items...)
	if err := gear.Validate(next); err != nil {
		return err
	}
	c.gear = next
	for _, it := range items {
		c.equipment.Send(gear.Change{Kind: gear.Added, ItemID: it.ID})
	}
	return nil
}

func (c *Character) RemoveGear(id string) bool {
	i := slices.IndexFunc(c.gear, func(it *gear.Item) bool { return it.ID == id })
	if i < 0 {
		return false
	}
	c.gear = slices.Delete(c.gear, i, i+1)
	c.equipment.Send(gear.Change{Kind: gear.Removed, ItemID: id})
	return true
}

// Item finds an item anywhere in the gear tree.
func (c *Character) Item(id string) (*gear.Item, bool) {
	var found *gear.Item
	gear.Walk(c.gear, func(it *gear.Item, _ int) {
		if found == nil && it.ID == id {
			found = it
		}
	})
	return found, found != nil
}

func (c *Character) SetEquipped(id string, equipped bool) error {
	it, ok := c.Item(id)
	if !ok {
		return fmt.Errorf("no item %q", id)
	}
	if it.Equipped == equipped {
		return nil
	}
	it.Equipped = equipped
	kind := gear.Unequipped
	if equipped {
		kind = gear.Equipped
	}
	c.equipment.Send(gear.Change{Kind: kind, ItemID: id})
	return nil
}

// UpdateItem applies fn to an item and announces it.
func (c *Character) UpdateItem(id string, fn func(*gear.Item)) error {
	it, ok := c.Item(id)
	if !ok {
		return fmt.Errorf("no item %q", id)
	}
	fn(it)
	c.equipment.Send(gear.Change{Kind: gear.Updated, ItemID: id})
	return nil
}

func (c *Character) Changes() notify.Stream[string]                     { return &c.changes }
func (c *Character) ModifierEvents() notify.Stream[[]modifier.Modifier] { return &c.modifiers }
func (c *Character) EquipmentEvents() notify.Stream[gear.Change]        { return &c.equipment }

func (c *Character) Skills() []*skill.Skill { return slices.Clone(c.skills) }

func (c *Character) AddSkill(s *skill.Skill) {
	c.skills = append(c.skills, s)
}

func (c *Character) Skill(name string) (*skill.Skill, bool) {
	i := slices.IndexFunc(c.skills, func(s *skill.Skill) bool { return s.Name() == name })
	if i < 0 {
		return nil, false
	}
	return c.skills[i], true
}

// RemoveSkill drops a skill and releases its subscriptions.
func (c *Character) RemoveSkill(id uuid.UUID) bool {
	i := slices.IndexFunc(c.skills, func(s *skill.Skill) bool { return s.ID() == id })
	if i < 0 {
		return false
	}
	s := c.skills[i]
	c.skills = slices.Delete(c.skills, i, i+1)
	s.Close()
	c.logger.Debug("skill removed", "skill", s.Name())
	return true
}

// Close releases every skill.
func (c *Character) Close() {
	for _, s := range c.skills {
		s.Close()
	}
	c.skills = nil
}
