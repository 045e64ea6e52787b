package skill

import (
	"github.com/delaneyj/skillparty/gear"
	"github.com/delaneyj/skillparty/modifier"
	"github.com/delaneyj/skillparty/notify"
)

// Attribute is the character attribute a skill rolls with.
type Attribute interface {
	Abbrev() string
	Value() int
	TotalValue() int
	Changes() notify.Stream[string]
}

// Group is a skill group whose ranks count toward each member skill.
type Group interface {
	Name() string
	Base() int
	Karma() int
	Rating() int
	Changes() notify.Stream[string]
}

// Character is everything a skill needs from the sheet that owns it. Skills
// only read through it; inventory, modifiers and attributes are managed
// elsewhere and announce their changes on the streams.
type Character interface {
	Karma() int
	SkillsoftAccess() bool
	WoundModifier() int
	HasQuality(name string) bool
	Attribute(abbrev string) (Attribute, bool)
	Group(name string) (Group, bool)
	Modifiers() []modifier.Modifier
	Gear() []*gear.Item

	Changes() notify.Stream[string]
	ModifierEvents() notify.Stream[[]modifier.Modifier]
	EquipmentEvents() notify.Stream[gear.Change]
}
