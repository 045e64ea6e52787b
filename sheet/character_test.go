package sheet_test

import (
	"testing"

	"github.com/delaneyj/skillparty/gear"
	"github.com/delaneyj/skillparty/modifier"
	"github.com/delaneyj/skillparty/sheet"
	"github.com/delaneyj/skillparty/skill"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModifierBatches(t *testing.T) {
	c := sheet.New("Ghost", nil)
	agi := c.AddAttribute("AGI", 3)

	var batches [][]string
	c.ModifierEvents().Subscribe(func(mods []modifier.Modifier) {
		var names []string
		for _, m := range mods {
			names = append(names, m.String())
		}
		batches = append(batches, names)
	})
	c.AddModifiers(
		modifier.Modifier{Kind: modifier.KindSkill, Target: "Pistols", Enabled: true, Value: 2},
		modifier.Modifier{Kind: modifier.KindAttribute, Target: "AGI", Enabled: true, Value: 1},
	)
	assert.Equal(t, 3, agi.Value())
	assert.Equal(t, 4, agi.TotalValue())

	isAGI := func(m modifier.Modifier) bool { return m.Target == "AGI" }
	assert.Equal(t, 1, c.RemoveModifiers(isAGI))
	assert.Zero(t, c.RemoveModifiers(isAGI))
	assert.Equal(t, 3, agi.TotalValue())

	assert.Equal(t, [][]string{
		{"skill(Pistols)+2", "attribute(AGI)+1"},
		{"attribute(AGI)+1"},
	}, batches)
}

func TestWoundsAndAccess(t *testing.T) {
	c := sheet.New("Ghost", nil)
	assert.False(t, c.SkillsoftAccess())

	c.AddModifiers(
		modifier.Modifier{Kind: modifier.KindWound, Enabled: true, Value: 1},
		modifier.Modifier{Kind: modifier.KindWound, Enabled: true, Value: 2},
		modifier.Modifier{Kind: modifier.KindSkillsoftAccess, Enabled: false, Value: 1},
	)
	assert.Equal(t, 3, c.WoundModifier())
	assert.False(t, c.SkillsoftAccess(), "disabled access does not count")
}

func TestEquipmentEvents(t *testing.T) {
	c := sheet.New("Ghost", nil)
	var changes []gear.Change
	c.EquipmentEvents().Subscribe(func(ch gear.Change) { changes = append(changes, ch) })

	require.NoError(t, c.AddGear(&gear.Item{
		ID:       "jacket",
		Name:     "Armor Jacket",
		Children: []*gear.Item{{ID: "pocket", Name: "Pocket"}},
	}))
	require.NoError(t, c.SetEquipped("pocket", true))
	require.NoError(t, c.SetEquipped("pocket", true))
	require.NoError(t, c.UpdateItem("pocket", func(it *gear.Item) { it.Rating = 2 }))
	assert.Error(t, c.SetEquipped("missing", true))
	assert.True(t, c.RemoveGear("jacket"))
	assert.False(t, c.RemoveGear("jacket"))

	assert.Equal(t, []gear.Change{
		{Kind: gear.Added, ItemID: "jacket"},
		{Kind: gear.Equipped, ItemID: "pocket"},
		{Kind: gear.Updated, ItemID: "pocket"},
		{Kind: gear.Removed, ItemID: "jacket"},
	}, changes)
}

func TestCharacterKarmaAndGroups(t *testing.T) {
	c := sheet.New("Ghost", nil)
	var names []string
	c.Changes().Subscribe(func(name string) { names = append(names, name) })
	c.SetKarma(5)
	c.SetKarma(5)
	assert.Equal(t, []string{skill.CharacterKarma}, names)

	g := c.AddGroup("Firearms")
	assert.Same(t, g, c.AddGroup("Firearms"))
	var groupNames []string
	g.Changes().Subscribe(func(name string) { groupNames = append(groupNames, name) })
	g.SetBase(2)
	g.SetKarma(1)
	assert.Equal(t, 3, g.Rating())
	assert.Equal(t, []string{skill.GroupBase, skill.GroupKarma}, groupNames)

	_, ok := c.Group("Close Combat")
	assert.False(t, ok)
	_, ok = c.Attribute("MAG")
	assert.False(t, ok)
}

func TestQualitiesPublishChanges(t *testing.T) {
	c := sheet.New("Ghost", nil)
	var names []string
	c.Changes().Subscribe(func(name string) { names = append(names, name) })

	c.AddQuality("Inspired")
	c.AddQuality("Inspired")
	c.RemoveQuality("Ambidextrous")
	c.RemoveQuality("Inspired")
	assert.Equal(t, []string{skill.CharacterQualities, skill.CharacterQualities}, names)
	assert.False(t, c.HasQuality("Inspired"))
}
