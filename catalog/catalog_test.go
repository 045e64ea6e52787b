package catalog_test

import (
	"strings"
	"testing"

	"github.com/delaneyj/skillparty/catalog"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pistolsID = "48763fa5-4b89-48c7-80ff-d0835a2f0ba7"

const sample = `
categories:
  - name: Combat Active
    type: active
  - name: Academic
    type: knowledge
    attribute: LOG
groups:
  - name: Firearms
skills:
  - id: 48763fa5-4b89-48c7-80ff-d0835a2f0ba7
    name: Pistols
    attribute: AGI
    category: Combat Active
    group: Firearms
    default: true
    specs: [Revolvers, Semi-Automatics]
    source: SR5
    page: "131"
  - id: 9e2d9c1a-0c4a-4bb1-9d1c-2b0d3f8c9f10
    name: Exotic Melee Weapon
    attribute: AGI
    category: Combat Active
    exotic: true
`

func load(t *testing.T) *catalog.Catalog {
	c, err := catalog.Load(strings.NewReader(sample))
	require.NoError(t, err)
	return c
}

func TestLoad(t *testing.T) {
	c := load(t)

	s, ok := c.Skill(uuid.MustParse(pistolsID))
	require.True(t, ok)
	assert.Equal(t, "Pistols", s.Name)
	assert.Equal(t, "Firearms", s.Group)
	assert.Equal(t, []string{"Revolvers", "Semi-Automatics"}, s.Specs)
	assert.True(t, c.HasGroup("Firearms"))

	_, ok = c.Skill(uuid.New())
	assert.False(t, ok)

	byName, ok := c.SkillByName("Exotic Melee Weapon")
	require.True(t, ok)
	assert.True(t, byName.Exotic)
	assert.Len(t, c.Skills(), 2)
}

func TestKindOfIsCachedPerGeneration(t *testing.T) {
	c := load(t)

	kind, err := c.KindOf("Academic")
	require.NoError(t, err)
	assert.Equal(t, catalog.TypeKnowledge, kind)
	kind, err = c.KindOf("Academic")
	require.NoError(t, err)
	assert.Equal(t, catalog.TypeKnowledge, kind)
	assert.Equal(t, 1, c.KindMisses())

	_, err = c.KindOf("Magic")
	assert.ErrorIs(t, err, catalog.ErrUnknownCategory)

	before := c.Generation()
	ds := catalog.Dataset{
		Categories: []catalog.Category{{Name: "Academic", Type: catalog.TypeActive}},
	}
	require.NoError(t, c.Reload(ds))
	assert.NotEqual(t, before, c.Generation())

	kind, err = c.KindOf("Academic")
	require.NoError(t, err)
	assert.Equal(t, catalog.TypeActive, kind, "reload must not serve the old kind")
}

func TestFailedReloadKeepsDataset(t *testing.T) {
	c := load(t)
	gen := c.Generation()

	err := c.Reload(catalog.Dataset{Categories: []catalog.Category{{Name: "X", Type: "weird"}}})
	assert.ErrorIs(t, err, catalog.ErrInvalid)
	assert.Equal(t, gen, c.Generation())
	_, ok := c.SkillByName("Pistols")
	assert.True(t, ok)
}

func TestValidationReportsEveryProblem(t *testing.T) {
	id := uuid.New()
	_, err := catalog.New(catalog.Dataset{
		Categories: []catalog.Category{
			{Name: "Street", Type: catalog.TypeKnowledge},
		},
		Skills: []catalog.Skill{
			{ID: id, Name: "Gangs", Category: "Street", Attribute: "INT"},
			{ID: id, Name: "Gangs", Category: "Nope", Group: "Ghost"},
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, catalog.ErrInvalid)
	assert.ErrorIs(t, err, catalog.ErrUnknownCategory)
	for _, want := range []string{
		`knowledge category "Street" has no attribute`,
		"used twice",
		`skill "Gangs" declared twice`,
		`unknown group "Ghost"`,
		`skill "Gangs" has no attribute`,
	} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestEmptyCatalog(t *testing.T) {
	c, err := catalog.Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, c.Skills())
}
