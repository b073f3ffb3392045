package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"github.com/HerbHall/distrofinder/internal/catalog"
	pkgcatalog "github.com/HerbHall/distrofinder/pkg/catalog"
)

func runMatch(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("match", flag.ContinueOnError)
	fs.SetOutput(stdout)
	choices := make(map[pkgcatalog.Axis]*string, len(pkgcatalog.Axes))
	for _, axis := range pkgcatalog.Axes {
		choices[axis] = fs.String(string(axis), pkgcatalog.AnyOption, fmt.Sprintf("%s option ID, or 'any'", axis))
	}
	src := addSourceFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cat, locales, err := loadSources(*src.catalogPath, *src.localePath)
	if err != nil {
		return err
	}

	answer := pkgcatalog.Answer{
		Processor:  *choices[pkgcatalog.AxisProcessor],
		Memory:     *choices[pkgcatalog.AxisMemory],
		Experience: *choices[pkgcatalog.AxisExperience],
		Objective:  *choices[pkgcatalog.AxisObjective],
		Graphics:   *choices[pkgcatalog.AxisGraphics],
	}
	if err := cat.Vocabulary().ValidateAnswer(answer); err != nil {
		return err
	}

	rec := catalog.NewEngine(cat, nil).Recommend(answer)
	loc := locales.Normalize(*src.lang)

	if *src.json {
		return json.NewEncoder(stdout).Encode(rec)
	}
	fmt.Fprintln(stdout, locales.Text("results_title", loc))
	if rec.Fallback {
		fmt.Fprintln(stdout, locales.Text("no_results", loc))
	}
	return printDistros(stdout, locales, loc, rec.Distros)
}
