package main

import (
	"fmt"

	"github.com/HerbHall/distrofinder/pkg/catalog"
	"github.com/HerbHall/distrofinder/pkg/locale"
)

// loadSources loads the catalog and message table, from files when the
// paths are set and from the embedded copies otherwise, and checks that the
// messages only describe distros the catalog holds.
func loadSources(catalogPath, localePath string) (*catalog.Catalog, *locale.Resolver, error) {
	var (
		cat *catalog.Catalog
		err error
	)
	if catalogPath != "" {
		cat, err = catalog.LoadFile(catalogPath)
	} else {
		cat, err = catalog.Embedded()
	}
	if err != nil {
		return nil, nil, fmt.Errorf("load catalog: %w", err)
	}

	var res *locale.Resolver
	if localePath != "" {
		res, err = locale.LoadFile(localePath)
	} else {
		res, err = locale.Embedded()
	}
	if err != nil {
		return nil, nil, fmt.Errorf("load messages: %w", err)
	}

	if err := res.Check(cat.IDs()); err != nil {
		return nil, nil, fmt.Errorf("messages do not fit catalog: %w", err)
	}
	return cat, res, nil
}
