package main

import (
	"flag"
	"fmt"
	"io"
)

// runValidate loads a catalog and message table and reports whether they
// are consistent. With no flags it checks the embedded copies.
func runValidate(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	fs.SetOutput(stdout)
	catalogPath := fs.String("catalog", "", "path to a catalog YAML file (default: embedded catalog)")
	localePath := fs.String("messages", "", "path to a message table YAML file (default: embedded messages)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cat, locales, err := loadSources(*catalogPath, *localePath)
	if err != nil {
		return err
	}
	vocab := cat.Vocabulary()
	fmt.Fprintf(stdout, "catalog v%d: %d distros, %d categories, default %q\n",
		vocab.Version(), cat.Len(), len(vocab.Categories()), cat.Default().ID)
	fmt.Fprintf(stdout, "messages: locales %v, default %q\n", locales.Supported(), locales.Default())
	fmt.Fprintln(stdout, "OK")
	return nil
}
