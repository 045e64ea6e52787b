package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/cespare/xxhash/v2"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	lru "github.com/hashicorp/golang-lru/v2"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownCategory = errors.New("unknown skill category")
	ErrInvalid         = errors.New("invalid catalog")
)

type Type string

const (
	TypeActive    Type = "active"
	TypeKnowledge Type = "knowledge"
)

type Category struct {
	Name string `yaml:"name"`
	Type Type   `yaml:"type"`
	// Attribute linked to user-defined skills of this category.
	Attribute string `yaml:"attribute,omitempty"`
}

type Group struct {
	Name string `yaml:"name"`
}

// Skill is the static rule definition of a skill.
type Skill struct {
	ID        uuid.UUID `yaml:"id"`
	Name      string    `yaml:"name"`
	Translate string    `yaml:"translate,omitempty"`
	Attribute string    `yaml:"attribute"`
	Category  string    `yaml:"category"`
	Group     string    `yaml:"group,omitempty"`
	Default   bool      `yaml:"default"`
	Exotic    bool      `yaml:"exotic,omitempty"`
	Specs     []string  `yaml:"specs,omitempty"`
	Source    string    `yaml:"source,omitempty"`
	Page      string    `yaml:"page,omitempty"`
}

type Dataset struct {
	Categories []Category `yaml:"categories"`
	Groups     []Group    `yaml:"groups,omitempty"`
	Skills     []Skill    `yaml:"skills"`
}

const kindCacheSize = 256

// Catalog indexes a loaded dataset. Category kinds are cached for as long as
// the dataset is loaded; Reload drops the cache with the old dataset.
//
// A Catalog is not safe for concurrent Reload.
type Catalog struct {
	data       Dataset
	generation uint64
	byID       map[uuid.UUID]int
	byName     map[string]int
	categories map[string]Category
	groups     mapset.Set[string]

	kinds      *lru.Cache[string, Type]
	kindMisses int
}

func New(ds Dataset) (*Catalog, error) {
	kinds, err := lru.New[string, Type](kindCacheSize)
	if err != nil {
		return nil, err
	}
	c := &Catalog{kinds: kinds}
	if err := c.Reload(ds); err != nil {
		return nil, err
	}
	return c, nil
}

func Load(r io.Reader) (*Catalog, error) {
	var ds Dataset
	if err := yaml.NewDecoder(r).Decode(&ds); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return New(ds)
}

func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Reload swaps in a new dataset. On a validation error the old dataset stays.
func (c *Catalog) Reload(ds Dataset) error {
	if err := validate(ds); err != nil {
		return err
	}
	raw, err := yaml.Marshal(ds)
	if err != nil {
		return fmt.Errorf("fingerprint catalog: %w", err)
	}

	c.data = ds
	c.generation = xxhash.Sum64(raw)
	c.byID = make(map[uuid.UUID]int, len(ds.Skills))
	c.byName = make(map[string]int, len(ds.Skills))
	for i, s := range ds.Skills {
		c.byID[s.ID] = i
		c.byName[s.Name] = i
	}
	c.categories = make(map[string]Category, len(ds.Categories))
	for _, cat := range ds.Categories {
		c.categories[cat.Name] = cat
	}
	c.groups = mapset.NewThreadUnsafeSet[string]()
	for _, g := range ds.Groups {
		c.groups.Add(g.Name)
	}
	c.kinds.Purge()
	return nil
}

func validate(ds Dataset) error {
	var result *multierror.Error

	categories := mapset.NewThreadUnsafeSet[string]()
	for _, cat := range ds.Categories {
		if !categories.Add(cat.Name) {
			result = multierror.Append(result, fmt.Errorf("category %q declared twice", cat.Name))
		}
		switch cat.Type {
		case TypeActive:
		case TypeKnowledge:
			if cat.Attribute == "" {
				result = multierror.Append(result, fmt.Errorf("knowledge category %q has no attribute", cat.Name))
			}
		default:
			result = multierror.Append(result, fmt.Errorf("category %q has type %q", cat.Name, cat.Type))
		}
	}
	groups := mapset.NewThreadUnsafeSet[string]()
	for _, g := range ds.Groups {
		groups.Add(g.Name)
	}

	ids := mapset.NewThreadUnsafeSet[uuid.UUID]()
	names := mapset.NewThreadUnsafeSet[string]()
	for _, s := range ds.Skills {
		if s.ID == uuid.Nil {
			result = multierror.Append(result, fmt.Errorf("skill %q has no id", s.Name))
		} else if !ids.Add(s.ID) {
			result = multierror.Append(result, fmt.Errorf("skill id %s used twice", s.ID))
		}
		if s.Name == "" {
			result = multierror.Append(result, fmt.Errorf("skill %s has no name", s.ID))
		} else if !names.Add(s.Name) {
			result = multierror.Append(result, fmt.Errorf("skill %q declared twice", s.Name))
		}
		if !categories.Contains(s.Category) {
			result = multierror.Append(result, fmt.Errorf("skill %q: %w %q", s.Name, ErrUnknownCategory, s.Category))
		}
		if s.Group != "" && !groups.Contains(s.Group) {
			result = multierror.Append(result, fmt.Errorf("skill %q: unknown group %q", s.Name, s.Group))
		}
		if s.Attribute == "" {
			result = multierror.Append(result, fmt.Errorf("skill %q has no attribute", s.Name))
		}
	}

	if err := result.ErrorOrNil(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// Generation fingerprints the loaded dataset.
func (c *Catalog) Generation() uint64 {
	return c.generation
}

func (c *Catalog) Skill(id uuid.UUID) (Skill, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Skill{}, false
	}
	return c.data.Skills[i], true
}

func (c *Catalog) SkillByName(name string) (Skill, bool) {
	i, ok := c.byName[name]
	if !ok {
		return Skill{}, false
	}
	return c.data.Skills[i], true
}

func (c *Catalog) Skills() []Skill {
	return slices.Clone(c.data.Skills)
}

func (c *Catalog) Category(name string) (Category, bool) {
	cat, ok := c.categories[name]
	return cat, ok
}

func (c *Catalog) HasGroup(name string) bool {
	return c.groups.Contains(name)
}

// KindOf reports whether skills in category are active or knowledge skills.
func (c *Catalog) KindOf(category string) (Type, error) {
	if t, ok := c.kinds.Get(category); ok {
		return t, nil
	}
	c.kindMisses++
	cat, ok := c.categories[category]
	if !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownCategory, category)
	}
	c.kinds.Add(category, cat.Type)
	return cat.Type, nil
}

// KindMisses counts KindOf lookups that were not served from the cache.
func (c *Catalog) KindMisses() int {
	return c.kindMisses
}
