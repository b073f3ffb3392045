// Package catalog implements the retrieval paths over the distro catalog:
// the browse filter, the questionnaire match and name suggestions. The
// functions here are pure; Engine and Handler wrap them for hosting.
package catalog

import (
	"strings"

	"golang.org/x/text/cases"

	pkgcatalog "github.com/HerbHall/distrofinder/pkg/catalog"
)

// Filter returns the distros matching both the text and the category
// predicate, in input order.
//
// Text matches when it is a case-insensitive substring of the record's Name
// or Subtitle (the default-locale fields, whatever locale the caller renders
// in). Only empty text matches everything; whitespace in the text is
// matched literally. The category predicate holds when the
// category is empty or [pkgcatalog.CategoryAll], or when the record carries
// the tag exactly.
func Filter(distros []pkgcatalog.Distro, q pkgcatalog.Query) []pkgcatalog.Distro {
	// A Caser keeps internal state and must not be shared across goroutines.
	fold := cases.Fold()
	needle := fold.String(q.Text)

	result := make([]pkgcatalog.Distro, 0, len(distros))
	for i := range distros {
		d := &distros[i]
		if !inCategory(d, q.Category) {
			continue
		}
		if needle != "" &&
			!strings.Contains(fold.String(d.Name), needle) &&
			!strings.Contains(fold.String(d.Subtitle), needle) {
			continue
		}
		result = append(result, *d)
	}
	return result
}

func inCategory(d *pkgcatalog.Distro, category string) bool {
	if category == "" || category == pkgcatalog.CategoryAll {
		return true
	}
	return d.HasCategory(category)
}
