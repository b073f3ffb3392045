// Command distrofinder serves and queries the Linux distribution catalog.
//
//	@title			DistroFinder API
//	@version		dev
//	@description	Read-only catalog of Linux distributions with a browse filter and a hardware questionnaire.
//	@license.name	MIT
//	@BasePath		/api/v1
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/HerbHall/distrofinder/internal/version"
)

const usage = `usage: distrofinder <command> [flags]

commands:
  serve      run the HTTP API
  filter     browse the catalog by text and category
  match      recommend distros from questionnaire answers
  validate   check a catalog and message table
  version    print build information
`

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "distrofinder: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		// Bare invocation keeps the server-first behavior.
		return runServe(nil, stderr)
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "serve":
		return runServe(rest, stderr)
	case "filter":
		return runFilter(rest, stdout)
	case "match":
		return runMatch(rest, stdout)
	case "validate":
		return runValidate(rest, stdout)
	case "version", "-version", "--version":
		fmt.Fprintln(stdout, version.Info())
		return nil
	case "help", "-h", "-help", "--help":
		fmt.Fprint(stdout, usage)
		return nil
	}
	fmt.Fprint(stderr, usage)
	return fmt.Errorf("unknown command %q", cmd)
}
