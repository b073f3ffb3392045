package catalog

import (
	pkgcatalog "github.com/HerbHall/distrofinder/pkg/catalog"
)

// Recommendation is the outcome of a questionnaire match.
type Recommendation struct {
	Distros []pkgcatalog.Distro `json:"distros"`
	// Fallback is true when no record satisfied every axis and Distros holds
	// only the catalog's default record.
	Fallback bool `json:"fallback"`
}

// Recommend narrows the catalog by each questionnaire axis the answer sets
// away from "any". Ordinal axes (processor, memory, graphics) keep records
// whose minimum tier the user's tier meets; set axes (experience, objective)
// keep records listing the user's option. Option IDs the vocabulary does not
// declare do not narrow.
//
// The result is never empty for a non-empty catalog: when nothing survives,
// the catalog's default record is returned alone with Fallback set.
func Recommend(cat *pkgcatalog.Catalog, answer pkgcatalog.Answer) Recommendation {
	vocab := cat.Vocabulary()
	distros := cat.Distros()

	active := make([]pkgcatalog.Axis, 0, len(pkgcatalog.Axes))
	for _, axis := range pkgcatalog.Axes {
		choice := answer.Value(axis)
		if pkgcatalog.IsAny(choice) {
			continue
		}
		if _, ok := vocab.Option(axis, choice); !ok {
			continue
		}
		active = append(active, axis)
	}

	result := distros[:0]
	for i := range distros {
		if matches(vocab, &distros[i], answer, active) {
			result = append(result, distros[i])
		}
	}

	if len(result) == 0 {
		return Recommendation{
			Distros:  []pkgcatalog.Distro{cat.Default()},
			Fallback: true,
		}
	}
	return Recommendation{Distros: result}
}

func matches(vocab *pkgcatalog.Vocabulary, d *pkgcatalog.Distro, answer pkgcatalog.Answer, axes []pkgcatalog.Axis) bool {
	for _, axis := range axes {
		if !vocab.Satisfies(axis, answer.Value(axis), d.Attribute(axis)) {
			return false
		}
	}
	return true
}
