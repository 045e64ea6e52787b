package skill

// CostTable prices skill advancement. Rules live outside this package; the
// skill only asks.
type CostTable interface {
	// UpgradeKarma is the karma to raise a skill to newRating.
	UpgradeKarma(kind Kind, newRating int) int
	// NewSkillKarma is the karma for a skill's first rank.
	NewSkillKarma(kind Kind) int
	SpecializationKarma(kind Kind) int
}

// Costs is a linear cost table.
type Costs struct {
	ActiveMultiplier    int
	KnowledgeMultiplier int
	NewActive           int
	NewKnowledge        int
	Specialization      int
}

var DefaultCosts = Costs{
	ActiveMultiplier:    2,
	KnowledgeMultiplier: 1,
	NewActive:           2,
	NewKnowledge:        1,
	Specialization:      7,
}

func (c Costs) UpgradeKarma(kind Kind, newRating int) int {
	if newRating <= 1 {
		return c.NewSkillKarma(kind)
	}
	if kind == KindKnowledge {
		return newRating * c.KnowledgeMultiplier
	}
	return newRating * c.ActiveMultiplier
}

func (c Costs) NewSkillKarma(kind Kind) int {
	if kind == KindKnowledge {
		return c.NewKnowledge
	}
	return c.NewActive
}

func (c Costs) SpecializationKarma(Kind) int {
	return c.Specialization
}

// UpgradeKarmaCost is the karma for the next learned rank, or -1 at the cap.
func (s *Skill) UpgradeKarmaCost() int {
	r := s.LearnedRating()
	if r >= s.opts.maxRating {
		return -1
	}
	return s.opts.costs.UpgradeKarma(s.kind, r+1)
}

func (s *Skill) SpecializationKarmaCost() int {
	return s.opts.costs.SpecializationKarma(s.kind)
}

// CanUpgradeCareer reports whether the character can afford the next rank.
func (s *Skill) CanUpgradeCareer() bool {
	cost := s.UpgradeKarmaCost()
	return cost >= 0 && s.ch.Karma() >= cost && s.opts.maxRating > s.LearnedRating()
}

// CurrentSpCost is the skill points spent on this skill at creation.
func (s *Skill) CurrentSpCost() int {
	cost := s.base
	if !s.buyWithKarma && s.base > 0 {
		cost += s.purchasedCount()
	}
	return cost
}

// CurrentKarmaCost is the karma spent on ranks bought above base and group
// ranks, plus specializations not paid with skill points.
func (s *Skill) CurrentKarmaCost() int {
	learned := s.LearnedRating()
	lower := min(s.Base()+s.groupRating(), learned)
	upper := min(lower+s.karma, learned)

	cost := 0
	for r := lower + 1; r <= upper; r++ {
		cost += s.opts.costs.UpgradeKarma(s.kind, r)
	}
	if s.buyWithKarma || s.base == 0 {
		cost += s.purchasedCount() * s.SpecializationKarmaCost()
	}
	return cost
}

func TotalCostSp(skills []*Skill) int {
	total := 0
	for _, s := range skills {
		total += s.CurrentSpCost()
	}
	return total
}

func TotalCostKarma(skills []*Skill) int {
	total := 0
	for _, s := range skills {
		total += s.CurrentKarmaCost()
	}
	return total
}
