package catalog

import (
	pkgcatalog "github.com/HerbHall/distrofinder/pkg/catalog"
)

// Engine binds the retrieval functions to one loaded catalog and records
// query metrics. It holds no mutable state of its own and is safe for
// concurrent use.
type Engine struct {
	cat     *pkgcatalog.Catalog
	metrics *Metrics
}

// NewEngine creates an engine backed by the given catalog. metrics may be nil.
func NewEngine(cat *pkgcatalog.Catalog, metrics *Metrics) *Engine {
	return &Engine{cat: cat, metrics: metrics}
}

// Catalog returns the catalog the engine serves.
func (e *Engine) Catalog() *pkgcatalog.Catalog { return e.cat }

// Filter runs the browse filter over the whole catalog.
func (e *Engine) Filter(q pkgcatalog.Query) []pkgcatalog.Distro {
	result := Filter(e.cat.Distros(), q)
	e.metrics.observe(kindFilter, len(result))
	return result
}

// Recommend runs the questionnaire match.
func (e *Engine) Recommend(answer pkgcatalog.Answer) Recommendation {
	rec := Recommend(e.cat, answer)
	e.metrics.observe(kindMatch, len(rec.Distros))
	if rec.Fallback {
		e.metrics.fallback()
	}
	return rec
}

// Suggest returns fuzzy name suggestions from the records in the requested
// category.
func (e *Engine) Suggest(q pkgcatalog.Query, limit int) []pkgcatalog.Distro {
	pool := Filter(e.cat.Distros(), pkgcatalog.Query{Category: q.Category})
	result := Suggest(pool, q.Text, limit)
	e.metrics.observe(kindSuggest, len(result))
	return result
}
