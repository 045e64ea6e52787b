package skill_test

import (
	"testing"

	"github.com/delaneyj/skillparty/gear"
	"github.com/delaneyj/skillparty/modifier"
	"github.com/delaneyj/skillparty/skill"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDependenciesFanOut(t *testing.T) {
	assert.Equal(t, []skill.Attr{
		skill.AttrBase,
		skill.AttrBaseUnlocked,
		skill.AttrRating,
		skill.AttrLeveled,
		skill.AttrSpecialization,
		skill.AttrUpgradeKarmaCost,
		skill.AttrPool,
		skill.AttrDisplayPool,
		skill.AttrCanUpgradeCareer,
		skill.AttrPoolToolTip,
	}, skill.Dependencies.Find(skill.AttrBase))

	assert.Equal(t, []skill.Attr{skill.AttrEnabled}, skill.Dependencies.Find(skill.AttrEnabled))
	for _, a := range skill.Dependencies.Keys() {
		assert.Contains(t, skill.Dependencies.Find(a), a)
		assert.Equal(t, skill.Dependencies.Find(a), skill.Dependencies.Find(a))
	}
}

func TestEachEventAnnouncesExactlyItsFanOut(t *testing.T) {
	c := runner(t)
	s := newSkill(t, c, "Pistols")
	skillwired(c, 3)
	require.NoError(t, c.AddGear(activesoft("Pistols", 5)))
	got := record(s)

	type step struct {
		name string
		do   func()
		want []skill.Attr
	}
	steps := []step{
		{"base", func() { require.NoError(t, s.SetBase(2)) }, skill.Dependencies.Find(skill.AttrBase)},
		{"same base", func() { require.NoError(t, s.SetBase(2)) }, nil},
		{"karma", func() { require.NoError(t, s.SetKarma(1)) }, skill.Dependencies.Find(skill.AttrKarma)},
		{"specialization", func() { s.SetSpecialization("Revolvers") }, skill.Dependencies.Find(skill.AttrSpecialization)},
		{"equipment", func() { require.NoError(t, c.SetEquipped("soft", false)) }, skill.Dependencies.Find(skill.AttrWireRating)},
		{
			"pool modifier",
			func() {
				c.AddModifiers(modifier.Modifier{Kind: modifier.KindSkill, Target: "Pistols", Enabled: true, Value: 2})
			},
			skill.Dependencies.Find(skill.AttrPoolModifiers),
		},
		{
			"someone else's modifier",
			func() {
				c.AddModifiers(modifier.Modifier{Kind: modifier.KindSkill, Target: "Hacking", Enabled: true, Value: 2})
			},
			nil,
		},
		{
			"attribute modifier",
			func() {
				c.AddModifiers(modifier.Modifier{Kind: modifier.KindAttribute, Target: "AGI", Enabled: true, Value: 1})
			},
			skill.Dependencies.Find(skill.AttrAttributeModifiers),
		},
		{"karma without transition", func() { c.SetKarma(1) }, nil},
		{"karma crossing the upgrade cost", func() { c.SetKarma(20) }, []skill.Attr{skill.AttrCanUpgradeCareer}},
	}
	for _, st := range steps {
		*got = nil
		st.do()
		assert.Equal(t, st.want, *got, st.name)
	}
}

func TestEquipmentModifierAnnouncesAttributeAndWire(t *testing.T) {
	c := runner(t)
	s := newSkill(t, c, "Pistols")
	got := record(s)

	c.AddModifiers(modifier.Modifier{Kind: modifier.KindAttribute, Target: "STR", Source: modifier.SourceCyberware, Enabled: true, Value: 2})
	want := skill.Dependencies.FindAll(skill.AttrAttributeModifiers, skill.AttrWireRating)
	assert.Equal(t, want, *got)
	assert.Equal(t, 1, count(*got, skill.AttrPool))
}

func TestModifierBatchAnnouncesEachAttributeOnce(t *testing.T) {
	c := runner(t)
	s := newSkill(t, c, "Pistols")
	got := record(s)

	c.AddModifiers(
		modifier.Modifier{Kind: modifier.KindSkill, Target: "Pistols", Enabled: true, Value: 2},
		modifier.Modifier{Kind: modifier.KindSkillLevel, Target: "Pistols", Enabled: true, Value: 1},
	)
	assert.Equal(t, skill.Dependencies.FindAll(skill.AttrPoolModifiers, skill.AttrRating), *got)
	for _, a := range []skill.Attr{skill.AttrPool, skill.AttrDisplayPool, skill.AttrPoolToolTip} {
		assert.Equal(t, 1, count(*got, a), a)
	}
}

func TestInspiredAnnouncesArtisanDisplayPool(t *testing.T) {
	c := runner(t)
	artisan := newSkill(t, c, "Artisan")
	pistols := newSkill(t, c, "Pistols")
	gotArtisan := record(artisan)
	gotPistols := record(pistols)

	c.AddQuality("Inspired")
	assert.Equal(t, skill.Dependencies.Find(skill.AttrDisplayPool), *gotArtisan)
	assert.Empty(t, *gotPistols)

	*gotArtisan = nil
	c.AddQuality("Inspired")
	assert.Empty(t, *gotArtisan)

	c.RemoveQuality("Inspired")
	assert.Equal(t, skill.Dependencies.Find(skill.AttrDisplayPool), *gotArtisan)
	assert.False(t, c.HasQuality("Inspired"))
}

func count(attrs []skill.Attr, a skill.Attr) int {
	n := 0
	for _, x := range attrs {
		if x == a {
			n++
		}
	}
	return n
}

func TestCachesAreClearedBeforeSubscribersHear(t *testing.T) {
	c := runner(t)
	s := newSkill(t, c, "Pistols")
	skillwired(c, 3)

	var seen []int
	s.Subscribe(func(a skill.Attr) {
		if a != skill.AttrWireRating {
			return
		}
		wire, err := s.WireRating()
		require.NoError(t, err)
		seen = append(seen, wire)
	})

	wire, err := s.WireRating()
	require.NoError(t, err)
	assert.Equal(t, 0, wire)

	require.NoError(t, c.AddGear(activesoft("Pistols", 5)))
	c.AddModifiers(modifier.Modifier{Kind: modifier.KindHardWire, Target: "Pistols", Enabled: true, Value: 6})
	require.NoError(t, c.UpdateItem("soft", func(it *gear.Item) { it.Rating = 1 }))
	c.RemoveModifiers(modifier.Targets(modifier.KindHardWire, "Pistols"))

	assert.Equal(t, []int{3, 6, 6, 1}, seen)
}

func TestCloseStopsEvents(t *testing.T) {
	c := runner(t)
	s := newSkill(t, c, "Pistols")
	got := record(s)

	s.Close()
	s.Close()
	assert.True(t, s.Closed())

	c.SetKarma(50)
	skillwired(c, 3)
	require.NoError(t, c.AddGear(activesoft("Pistols", 5)))
	s.SetSpecialization("Revolvers")
	assert.Empty(t, *got)

	assert.ErrorIs(t, s.SetBase(1), skill.ErrClosed)
	assert.ErrorIs(t, s.SetKarma(1), skill.ErrClosed)
}

func TestRemoveSkillCloses(t *testing.T) {
	c := runner(t)
	s := newSkill(t, c, "Pistols")

	assert.True(t, c.RemoveSkill(s.ID()))
	assert.False(t, c.RemoveSkill(s.ID()))
	assert.True(t, s.Closed())
	_, ok := c.Skill("Pistols")
	assert.False(t, ok)
}

func TestSubscribersMayReenter(t *testing.T) {
	c := runner(t)
	s := newSkill(t, c, "Hacking")

	var pools []int
	s.Subscribe(func(a skill.Attr) {
		if a != skill.AttrPool {
			return
		}
		pool, err := s.Pool()
		require.NoError(t, err)
		pools = append(pools, pool)
		if s.BaseAllocation() < 2 {
			require.NoError(t, s.SetBase(s.BaseAllocation()+1))
		}
	})

	require.NoError(t, s.SetBase(1))
	assert.Equal(t, 2, s.BaseAllocation())
	assert.Equal(t, []int{4, 5}, pools)
}
