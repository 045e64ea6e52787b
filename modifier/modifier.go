package modifier

import "fmt"

// Kind is what a modifier improves.
type Kind uint8

const (
	KindNone Kind = iota
	KindSkill      // dice added to a skill's pool
	KindSkillLevel // ranks added to a skill's rating
	KindSkillBase  // free skill points granted at creation
	KindSkillKarma // free karma ranks
	KindAttribute  // linked attribute changes
	KindHardWire   // active hardwires set a skill's rating directly
	KindSkillwire  // skillwire capacity for skillsofts
	KindSkillsoftAccess
	KindWound
)

var kindNames = map[Kind]string{
	KindNone:            "none",
	KindSkill:           "skill",
	KindSkillLevel:      "skilllevel",
	KindSkillBase:       "skillbase",
	KindSkillKarma:      "skillkarma",
	KindAttribute:       "attribute",
	KindHardWire:        "hardwire",
	KindSkillwire:       "skillwire",
	KindSkillsoftAccess: "skillsoftaccess",
	KindWound:           "wound",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(b []byte) error {
	for kind, name := range kindNames {
		if name == string(b) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown modifier kind %q", b)
}

// Source is where a modifier comes from.
type Source uint8

const (
	SourceUnknown Source = iota
	SourceQuality
	SourcePower
	SourceCyberware
	SourceBioware
	SourceGear
	SourceCustom
)

var sourceNames = map[Source]string{
	SourceUnknown:   "unknown",
	SourceQuality:   "quality",
	SourcePower:     "power",
	SourceCyberware: "cyberware",
	SourceBioware:   "bioware",
	SourceGear:      "gear",
	SourceCustom:    "custom",
}

func (s Source) String() string {
	if n, ok := sourceNames[s]; ok {
		return n
	}
	return fmt.Sprintf("source(%d)", uint8(s))
}

func (s Source) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Source) UnmarshalText(b []byte) error {
	for src, name := range sourceNames {
		if name == string(b) {
			*s = src
			return nil
		}
	}
	return fmt.Errorf("unknown modifier source %q", b)
}

// Equipment reports whether the source is something worn or carried.
func (s Source) Equipment() bool {
	return s == SourceCyberware || s == SourceBioware || s == SourceGear
}

// Modifier is one active improvement on a character.
type Modifier struct {
	Kind        Kind   `yaml:"kind"`
	Target      string `yaml:"target,omitempty"`
	Source      Source `yaml:"source,omitempty"`
	SourceName  string `yaml:"source_name,omitempty"`
	Enabled     bool   `yaml:"enabled"`
	Value       int    `yaml:"value"`
	AddToRating bool   `yaml:"add_to_rating,omitempty"`
}

func (m Modifier) String() string {
	return fmt.Sprintf("%s(%s)%+d", m.Kind, m.Target, m.Value)
}

// ValueOf sums enabled modifiers of kind, whatever their target.
func ValueOf(mods []Modifier, kind Kind) int {
	total := 0
	for _, m := range mods {
		if m.Enabled && m.Kind == kind {
			total += m.Value
		}
	}
	return total
}

// ValueFor sums enabled modifiers of kind aimed at target.
func ValueFor(mods []Modifier, kind Kind, target string) int {
	total := 0
	for _, m := range mods {
		if m.Enabled && m.Kind == kind && m.Target == target {
			total += m.Value
		}
	}
	return total
}

// Filter keeps modifiers for which keep is true.
func Filter(mods []Modifier, keep func(Modifier) bool) []Modifier {
	var out []Modifier
	for _, m := range mods {
		if keep(m) {
			out = append(out, m)
		}
	}
	return out
}

// Any reports whether some modifier satisfies pred.
func Any(mods []Modifier, pred func(Modifier) bool) bool {
	for _, m := range mods {
		if pred(m) {
			return true
		}
	}
	return false
}

func Targets(kind Kind, target string) func(Modifier) bool {
	return func(m Modifier) bool {
		return m.Kind == kind && m.Target == target
	}
}
