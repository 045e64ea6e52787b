package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/delaneyj/skillparty/catalog"
	"github.com/delaneyj/skillparty/gear"
	"github.com/delaneyj/skillparty/modifier"
	"github.com/delaneyj/skillparty/sheet"
	"github.com/delaneyj/skillparty/skill"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v3"
)

const (
	skillsKey  = "skills"
	itersKey   = "iters"
	depthKey   = "depth"
	profileKey = "profile"
)

func main() {
	cmd := &cli.Command{
		Name:  "skillbench",
		Usage: "Measure change propagation across a character's skills",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  skillsKey,
				Usage: "Largest number of skills on the benchmark character",
				Value: 1_000,
			},
			&cli.IntFlag{
				Name:  itersKey,
				Usage: "Samples per benchmark",
				Value: 100,
			},
			&cli.IntFlag{
				Name:  depthKey,
				Usage: "Nesting depth of the gear holding the skillsoft",
				Value: 8,
			},
			&cli.StringFlag{
				Name:  profileKey,
				Usage: "Write a CPU profile here",
			},
		},
		Action: bench,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func bench(ctx context.Context, cmd *cli.Command) error {
	if path := cmd.String(profileKey); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return err
		}
		defer pprof.StopCPUProfile()
	}

	iters := int(cmd.Int(itersKey))
	depth := int(cmd.Int(depthKey))
	var sizes []int
	for n := 1; n <= int(cmd.Int(skillsKey)); n *= 10 {
		sizes = append(sizes, n)
	}

	log.Printf("warming up")
	if _, err := run(10, 10, depth); err != nil {
		return err
	}

	tbl := table.NewWriter()
	tbl.SetTitle("Skill change propagation")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "skills", "notifications", "avg", "min", "p75", "p99", "max"})
	for _, n := range sizes {
		results, err := run(n, iters, depth)
		if err != nil {
			return err
		}
		for _, r := range results {
			calc := r.tach.Calc()
			tbl.AppendRow(table.Row{
				r.name,
				humanize.Comma(int64(n)),
				humanize.Comma(r.notifications),
				calc.Time.Avg,
				calc.Time.Min,
				calc.Time.P75,
				calc.Time.P99,
				calc.Time.Max,
			})
		}
		tbl.AppendSeparator()
	}
	tbl.Render()
	return nil
}

type result struct {
	name          string
	tach          *tachymeter.Tachymeter
	notifications int64
}

// fixture builds a character with n skills, each subscribed to by a reader
// that recomputes the pool on every announcement. The first skill's
// skillsoft sits depth items down the gear tree.
func fixture(n, depth int) (*sheet.Character, []*skill.Skill, *int64, error) {
	ds := catalog.Dataset{
		Categories: []catalog.Category{{Name: "Combat Active", Type: catalog.TypeActive}},
	}
	for i := 0; i < n; i++ {
		ds.Skills = append(ds.Skills, catalog.Skill{
			ID:        uuid.New(),
			Name:      fmt.Sprintf("Skill %04d", i),
			Attribute: "AGI",
			Category:  "Combat Active",
			Default:   true,
		})
	}
	cat, err := catalog.New(ds)
	if err != nil {
		return nil, nil, nil, err
	}

	c := sheet.New("Bench", nil)
	c.AddAttribute("AGI", 4)
	c.AddModifiers(
		modifier.Modifier{Kind: modifier.KindSkillwire, Enabled: true, Value: 6},
		modifier.Modifier{Kind: modifier.KindSkillsoftAccess, Enabled: true, Value: 1},
	)
	root := &gear.Item{ID: "root", Name: "Rig", Equipped: true}
	last := root
	for i := 0; i < depth; i++ {
		child := &gear.Item{ID: fmt.Sprintf("slot %d", i), Name: "Slot", Equipped: true}
		last.Children = append(last.Children, child)
		last = child
	}
	last.Children = append(last.Children, &gear.Item{
		ID:       "soft",
		Name:     "Activesoft",
		Category: "Skillsofts",
		Extra:    ds.Skills[0].Name,
		Equipped: true,
		Rating:   4,
	})
	if err := c.AddGear(root); err != nil {
		return nil, nil, nil, err
	}

	notifications := new(int64)
	skills := make([]*skill.Skill, 0, n)
	for _, def := range ds.Skills {
		s, err := skill.FromCatalog(c, cat, def.ID)
		if err != nil {
			return nil, nil, nil, err
		}
		s.Subscribe(func(a skill.Attr) {
			*notifications++
			if a == skill.AttrPool {
				s.Pool()
			}
		})
		c.AddSkill(s)
		skills = append(skills, s)
	}
	return c, skills, notifications, nil
}

func run(n, iters, depth int) ([]result, error) {
	c, skills, notifications, err := fixture(n, depth)
	if err != nil {
		return nil, err
	}
	defer c.Close()

	measure := func(name string, step func(i int) error) (result, error) {
		r := result{name: name, tach: tachymeter.New(&tachymeter.Config{Size: iters})}
		*notifications = 0
		for i := 0; i < iters; i++ {
			start := time.Now()
			if err := step(i); err != nil {
				return r, err
			}
			r.tach.AddTime(time.Since(start))
		}
		r.notifications = *notifications
		return r, nil
	}

	var results []result
	steps := []struct {
		name string
		step func(i int) error
	}{
		{"base edit", func(i int) error { return skills[0].SetBase(i % 6) }},
		{"equipment toggle", func(i int) error { return c.SetEquipped("soft", i%2 == 1) }},
		{"modifier batch", func(i int) error {
			if i%2 == 0 {
				c.AddModifiers(modifier.Modifier{Kind: modifier.KindWound, Enabled: true, Value: 1})
			} else {
				c.RemoveModifiers(modifier.Targets(modifier.KindWound, ""))
			}
			return nil
		}},
		{"cached wire read", func(int) error {
			_, err := skills[0].WireRating()
			return err
		}},
	}
	for _, st := range steps {
		r, err := measure(st.name, st.step)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, nil
}
