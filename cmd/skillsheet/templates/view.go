package templates

import (
	"github.com/delaneyj/skillparty/sheet"
	"github.com/delaneyj/skillparty/skill"
	"github.com/dustin/go-humanize"
)

type SkillRow struct {
	Name           string
	Attribute      string
	Rating         int
	Wire           int
	Specialization string
	DisplayPool    string
	ToolTip        string
	UpgradeCost    int
}

// SheetView is a character flattened for display.
type SheetView struct {
	Character  string
	Karma      string
	Skills     []SkillRow
	TotalSp    string
	TotalKarma string
}

func NewSheetView(c *sheet.Character) (SheetView, error) {
	skills := c.Skills()
	v := SheetView{
		Character:  c.Name,
		Karma:      humanize.Comma(int64(c.Karma())),
		TotalSp:    humanize.Comma(int64(skill.TotalCostSp(skills))),
		TotalKarma: humanize.Comma(int64(skill.TotalCostKarma(skills))),
	}
	for _, s := range skills {
		row, err := NewSkillRow(s)
		if err != nil {
			return SheetView{}, err
		}
		v.Skills = append(v.Skills, row)
	}
	return v, nil
}

func NewSkillRow(s *skill.Skill) (SkillRow, error) {
	wire, err := s.WireRating()
	if err != nil {
		return SkillRow{}, err
	}
	display, err := s.DisplayPool()
	if err != nil {
		return SkillRow{}, err
	}
	tip, err := s.PoolToolTip()
	if err != nil {
		return SkillRow{}, err
	}
	return SkillRow{
		Name:           s.DisplayName(),
		Attribute:      s.AttributeAbbrev(),
		Rating:         s.Rating(),
		Wire:           wire,
		Specialization: s.Specialization(),
		DisplayPool:    display,
		ToolTip:        tip,
		UpgradeCost:    s.UpgradeKarmaCost(),
	}, nil
}
