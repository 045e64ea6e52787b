package skill_test

import (
	"strings"
	"testing"

	"github.com/delaneyj/skillparty/catalog"
	"github.com/delaneyj/skillparty/sheet"
	"github.com/delaneyj/skillparty/skill"
	"github.com/stretchr/testify/require"
)

const rules = `
categories:
  - name: Combat Active
    type: active
  - name: Technical Active
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
  - id: 0f0c8e0e-6a0e-4f36-a1c5-2b8e4c1d7a01
    name: Automatics
    attribute: AGI
    category: Combat Active
    group: Firearms
  - id: 2d4f8a31-7c55-4b0e-9e62-51a0c3f9d402
    name: Hacking
    attribute: LOG
    category: Technical Active
    default: true
  - id: 6b1e2c44-0d9a-4e7b-8f13-94c5e2a1b603
    name: Artisan
    attribute: INT
    category: Technical Active
  - id: 9e2d9c1a-0c4a-4bb1-9d1c-2b0d3f8c9f10
    name: Exotic Ranged Weapon
    attribute: AGI
    category: Combat Active
    exotic: true
  - id: c3a9f7d2-5e1b-4c8a-b6d4-17e0f2a3c504
    name: Chemistry
    attribute: LOG
    category: Academic
    default: true
`

func rulesCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Load(strings.NewReader(rules))
	require.NoError(t, err)
	return cat
}

// runner is a character with the attributes and group every test skill needs.
func runner(t *testing.T) *sheet.Character {
	t.Helper()
	c := sheet.New("Ghost", nil)
	c.AddAttribute("AGI", 4)
	c.AddAttribute("LOG", 3)
	c.AddAttribute("INT", 4)
	c.AddGroup("Firearms")
	t.Cleanup(c.Close)
	return c
}

func newSkill(t *testing.T, c *sheet.Character, name string, opts ...skill.Option) *skill.Skill {
	t.Helper()
	s, err := skill.ByName(c, rulesCatalog(t), name, opts...)
	require.NoError(t, err)
	c.AddSkill(s)
	return s
}

// record collects every attribute a skill announces.
func record(s *skill.Skill) *[]skill.Attr {
	var got []skill.Attr
	s.Subscribe(func(a skill.Attr) { got = append(got, a) })
	return &got
}
