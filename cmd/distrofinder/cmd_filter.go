package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/HerbHall/distrofinder/internal/catalog"
	pkgcatalog "github.com/HerbHall/distrofinder/pkg/catalog"
	"github.com/HerbHall/distrofinder/pkg/locale"
)

const cliSuggestions = 3

// sourceFlags are the flags shared by every command that reads the catalog.
type sourceFlags struct {
	catalogPath *string
	localePath  *string
	lang        *string
	json        *bool
}

func addSourceFlags(fs *flag.FlagSet) sourceFlags {
	return sourceFlags{
		catalogPath: fs.String("catalog", "", "path to a catalog YAML file (default: embedded catalog)"),
		localePath:  fs.String("messages", "", "path to a message table YAML file (default: embedded messages)"),
		lang:        fs.String("lang", "", "output locale (default: the message table's default)"),
		json:        fs.Bool("json", false, "print JSON instead of a table"),
	}
}

func runFilter(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("filter", flag.ContinueOnError)
	fs.SetOutput(stdout)
	text := fs.String("q", "", "free-text search over name and subtitle")
	category := fs.String("category", pkgcatalog.CategoryAll, "category tag, or 'all'")
	src := addSourceFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cat, locales, err := loadSources(*src.catalogPath, *src.localePath)
	if err != nil {
		return err
	}
	if err := cat.Vocabulary().ValidateCategory(*category); err != nil {
		return err
	}

	engine := catalog.NewEngine(cat, nil)
	q := pkgcatalog.Query{Text: *text, Category: *category}
	distros := engine.Filter(q)
	loc := locales.Normalize(*src.lang)

	if *src.json {
		return json.NewEncoder(stdout).Encode(distros)
	}
	if len(distros) == 0 {
		fmt.Fprintln(stdout, locales.Text("no_results", loc))
		if q.Text != "" {
			printSuggestions(stdout, locales, loc, engine.Suggest(q, cliSuggestions))
		}
		return nil
	}
	return printDistros(stdout, locales, loc, distros)
}

func printDistros(w io.Writer, locales *locale.Resolver, loc string, distros []pkgcatalog.Distro) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tSUBTITLE")
	for _, d := range distros {
		text := locales.ResolveText(d, loc)
		fmt.Fprintf(tw, "%s\t%s\t%s\n", d.ID, d.Name, text.Subtitle)
	}
	return tw.Flush()
}

func printSuggestions(w io.Writer, locales *locale.Resolver, loc string, distros []pkgcatalog.Distro) {
	if len(distros) == 0 {
		return
	}
	fmt.Fprintln(w, locales.Text("did_you_mean", loc))
	for _, d := range distros {
		fmt.Fprintf(w, "  %s (%s)\n", d.Name, d.ID)
	}
}
