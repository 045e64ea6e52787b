package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/delaneyj/skillparty/catalog"
	"github.com/delaneyj/skillparty/cmd/skillsheet/templates"
	"github.com/delaneyj/skillparty/sheet"
	"github.com/delaneyj/skillparty/skill"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"
)

const (
	catalogKey     = "catalog"
	sheetKey       = "sheet"
	maxRatingKey   = "max-rating"
	hackedLabelKey = "hacked-label"
)

func main() {
	cmd := &cli.Command{
		Name:  "skillsheet",
		Usage: "Inspect derived skill values of a character sheet",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  catalogKey,
				Usage: "Skill catalog YAML",
				Value: "cmd/skillsheet/testdata/catalog.yaml",
			},
			&cli.StringFlag{
				Name:  sheetKey,
				Usage: "Character sheet YAML",
				Value: "cmd/skillsheet/testdata/sheet.yaml",
			},
			&cli.IntFlag{
				Name:  maxRatingKey,
				Usage: "Highest learned rating a skill can reach",
				Value: skill.DefaultRatingMaximum,
			},
			&cli.StringFlag{
				Name:  hackedLabelKey,
				Usage: "Suffix marking a cracked skillsoft",
				Value: skill.DefaultHackedLabel,
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "show",
				Usage:  "Print every skill as a table",
				Action: show,
			},
			{
				Name:   "report",
				Usage:  "Print a plain text report",
				Action: report,
			},
			{
				Name:      "trace",
				Usage:     "Print what an attribute change announces",
				ArgsUsage: "<attribute>",
				Action:    trace,
			},
			{
				Name:   "format",
				Usage:  "Load the sheet and write it back out normalized",
				Action: format,
			},
		},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func load(cmd *cli.Command) (*sheet.Character, error) {
	start := time.Now()
	cat, err := catalog.LoadFile(cmd.String(catalogKey))
	if err != nil {
		return nil, err
	}
	c, err := sheet.LoadFile(cmd.String(sheetKey), cat, nil,
		skill.WithRatingMaximum(int(cmd.Int(maxRatingKey))),
		skill.WithHackedLabel(cmd.String(hackedLabelKey)),
	)
	if err != nil {
		return nil, err
	}
	log.Printf("Loaded %s with %d skills in %v", c.Name, len(c.Skills()), time.Since(start))
	return c, nil
}

func show(ctx context.Context, cmd *cli.Command) error {
	c, err := load(cmd)
	if err != nil {
		return err
	}
	defer c.Close()

	v, err := templates.NewSheetView(c)
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"skill", "attr", "rating", "wire", "specialization", "pool", "upgrade"})
	for _, row := range v.Skills {
		upgrade := "max"
		if row.UpgradeCost >= 0 {
			upgrade = strconv.Itoa(row.UpgradeCost)
		}
		table.Append([]string{
			row.Name,
			row.Attribute,
			strconv.Itoa(row.Rating),
			strconv.Itoa(row.Wire),
			row.Specialization,
			row.DisplayPool,
			upgrade,
		})
	}
	table.SetFooter([]string{"", "", "", "", "sp " + v.TotalSp, "karma " + v.TotalKarma, v.Karma})
	table.Render()
	return nil
}

func report(ctx context.Context, cmd *cli.Command) error {
	c, err := load(cmd)
	if err != nil {
		return err
	}
	defer c.Close()

	v, err := templates.NewSheetView(c)
	if err != nil {
		return err
	}
	templates.WriteReport(os.Stdout, v)
	return nil
}

func trace(ctx context.Context, cmd *cli.Command) error {
	name := cmd.Args().First()
	if name == "" {
		return fmt.Errorf("trace needs an attribute, one of %v", skill.Dependencies.Keys())
	}
	attr := skill.Attr(name)
	if !skill.Dependencies.Contains(attr) {
		log.Printf("%s is not in the dependency graph, it only announces itself", name)
	}
	fmt.Printf("%s announces: %v\n", attr, skill.Dependencies.Find(attr))
	fmt.Printf("%s is built on: %v\n", attr, skill.Dependencies.Dependencies(attr))
	return nil
}

func format(ctx context.Context, cmd *cli.Command) error {
	c, err := load(cmd)
	if err != nil {
		return err
	}
	defer c.Close()
	return c.Save(os.Stdout)
}
