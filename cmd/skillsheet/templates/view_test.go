package templates_test

import (
	"testing"

	"github.com/delaneyj/skillparty/catalog"
	"github.com/delaneyj/skillparty/cmd/skillsheet/templates"
	"github.com/delaneyj/skillparty/sheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ghost(t *testing.T) *sheet.Character {
	t.Helper()
	cat, err := catalog.LoadFile("../testdata/catalog.yaml")
	require.NoError(t, err)
	c, err := sheet.LoadFile("../testdata/sheet.yaml", cat, nil)
	require.NoError(t, err)
	t.Cleanup(c.Close)
	return c
}

func TestSheetView(t *testing.T) {
	v, err := templates.NewSheetView(ghost(t))
	require.NoError(t, err)

	assert.Equal(t, "Ghost", v.Character)
	assert.Equal(t, "14", v.Karma)
	require.Len(t, v.Skills, 7)

	rows := map[string]templates.SkillRow{}
	for _, row := range v.Skills {
		rows[row.Name] = row
	}
	assert.Equal(t, "12 (14)", rows["Pistols"].DisplayPool)
	assert.Equal(t, 3, rows["Automatics"].Wire)
	assert.Equal(t, "9", rows["Automatics"].DisplayPool)
	assert.Equal(t, 3, rows["Chemistry"].Wire, "hacked knowsoft")
	assert.Equal(t, "Cooking", rows["Artisan"].Specialization)
	assert.Equal(t, "6 (9)", rows["Artisan"].DisplayPool)
	assert.Contains(t, rows, "Exotic Ranged Weapon (Bow)")
}

func TestReport(t *testing.T) {
	v, err := templates.NewSheetView(ghost(t))
	require.NoError(t, err)

	out := templates.Report(v)
	assert.Contains(t, out, "Ghost (14 karma)")
	assert.Contains(t, out, "- Pistols [AGI] rating 4, Revolvers: pool 12 (14)\n  Rating (4) + AGI (6) + Smartgun System (2)\n")
	assert.Contains(t, out, "- Automatics [AGI] rating 2, wired 3: pool 9\n  Skillsoft (3) + AGI (6)\n")
	assert.Contains(t, out, "Skill points spent: "+v.TotalSp)
}
