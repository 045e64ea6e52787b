package sheet

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/delaneyj/skillparty/catalog"
	"github.com/delaneyj/skillparty/gear"
	"github.com/delaneyj/skillparty/modifier"
	"github.com/delaneyj/skillparty/skill"
	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"
)

type AttributeValue struct {
	Abbrev string `yaml:"abbrev"`
	Value  int    `yaml:"value"`
}

type GroupValue struct {
	Name  string `yaml:"name"`
	Base  int    `yaml:"base,omitempty"`
	Karma int    `yaml:"karma,omitempty"`
}

// File is the YAML layout of a saved character.
type File struct {
	Name       string              `yaml:"name"`
	Karma      int                 `yaml:"karma,omitempty"`
	Attributes []AttributeValue    `yaml:"attributes"`
	Groups     []GroupValue        `yaml:"groups,omitempty"`
	Qualities  []string            `yaml:"qualities,omitempty"`
	Modifiers  []modifier.Modifier `yaml:"modifiers,omitempty"`
	Gear       []*gear.Item        `yaml:"gear,omitempty"`
	Skills     []skill.Record      `yaml:"skills,omitempty"`
}

// Build creates the character described by f. Skills whose catalog entry is
// gone are dropped with a warning; every other problem is collected and
// returned together with the partly built character.
func Build(f File, cat *catalog.Catalog, logger *slog.Logger, opts ...skill.Option) (*Character, error) {
	c := New(f.Name, logger)
	c.karma = f.Karma
	for _, a := range f.Attributes {
		c.AddAttribute(a.Abbrev, a.Value)
	}
	for _, gv := range f.Groups {
		g := c.AddGroup(gv.Name)
		g.base, g.karma = max(gv.Base, 0), max(gv.Karma, 0)
	}
	for _, q := range f.Qualities {
		c.AddQuality(q)
	}
	c.mods = slices.Clone(f.Modifiers)

	var result *multierror.Error
	if err := gear.Validate(f.Gear); err != nil {
		result = multierror.Append(result, err)
	} else {
		c.gear = f.Gear
	}

	opts = append([]skill.Option{skill.WithLogger(c.logger)}, opts...)
	for i, rec := range f.Skills {
		s, ok, err := skill.Restore(c, cat, rec, opts...)
		switch {
		case err != nil:
			result = multierror.Append(result, fmt.Errorf("skill %d (%s): %w", i, rec.Name, err))
		case !ok:
			c.logger.Warn("skipping unknown skill", "suid", rec.SkillID, "name", rec.Name)
		default:
			c.AddSkill(s)
		}
	}
	return c, result.ErrorOrNil()
}

func Load(r io.Reader, cat *catalog.Catalog, logger *slog.Logger, opts ...skill.Option) (*Character, error) {
	var f File
	if err := yaml.NewDecoder(r).Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode sheet: %w", err)
	}
	return Build(f, cat, logger, opts...)
}

func LoadFile(path string, cat *catalog.Catalog, logger *slog.Logger, opts ...skill.Option) (*Character, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := Load(f, cat, logger, opts...)
	if err != nil {
		return c, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// File captures the character's persisted state.
func (c *Character) File() File {
	f := File{
		Name:      c.Name,
		Karma:     c.karma,
		Qualities: c.qualities.ToSlice(),
		Modifiers: slices.Clone(c.mods),
		Gear:      c.gear,
	}
	slices.Sort(f.Qualities)
	for _, a := range c.Attributes() {
		f.Attributes = append(f.Attributes, AttributeValue{Abbrev: a.abbrev, Value: a.value})
	}
	for _, g := range c.groups {
		f.Groups = append(f.Groups, GroupValue{Name: g.name, Base: g.base, Karma: g.karma})
	}
	slices.SortFunc(f.Groups, func(a, b GroupValue) int { return cmp.Compare(a.Name, b.Name) })
	for _, s := range c.skills {
		f.Skills = append(f.Skills, s.Snapshot())
	}
	return f
}

func (c *Character) Save(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c.File()); err != nil {
		return err
	}
	return enc.Close()
}
