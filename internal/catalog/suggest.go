package catalog

import (
	"strings"

	"github.com/sahilm/fuzzy"

	pkgcatalog "github.com/HerbHall/distrofinder/pkg/catalog"
)

// Suggest returns up to limit distros whose name fuzzily matches text, best
// match first. It backs the "did you mean" hint shown when Filter finds
// nothing and never changes Filter's result. limit <= 0 means no limit.
func Suggest(distros []pkgcatalog.Distro, text string, limit int) []pkgcatalog.Distro {
	text = strings.TrimSpace(text)
	if text == "" {
		return []pkgcatalog.Distro{}
	}

	matches := fuzzy.FindFrom(text, nameSource(distros))
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}

	result := make([]pkgcatalog.Distro, len(matches))
	for i, m := range matches {
		result[i] = distros[m.Index]
	}
	return result
}

// nameSource implements fuzzy.Source over distro names.
type nameSource []pkgcatalog.Distro

func (s nameSource) String(i int) string { return s[i].Name }
func (s nameSource) Len() int            { return len(s) }
