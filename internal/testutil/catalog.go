package testutil

import (
	"testing"

	"github.com/HerbHall/distrofinder/pkg/catalog"
)

// Vocabulary returns a small fixed vocabulary for tests.
//
//	categories: Beginner-friendly, Gaming, Server, Old PC
//	processor:  old-32bit(1) basic-64bit(2) modern-64bit(4) on x86, arm64(1) on arm
//	memory:     1gb(1) 2gb(2) 4gb(3) 8gb(4)
//	graphics:   integrated(1) dedicated(2)
//	experience: beginner intermediate advanced
//	objective:  general development gaming hacking
func Vocabulary(t testing.TB) *catalog.Vocabulary {
	t.Helper()
	v, err := catalog.NewVocabulary(1,
		[]string{"Beginner-friendly", "Gaming", "Server", "Old PC"},
		map[catalog.Axis][]catalog.Option{
			catalog.AxisProcessor: {
				{ID: catalog.AnyOption},
				{ID: "old-32bit", Rank: 1, Family: "x86"},
				{ID: "basic-64bit", Rank: 2, Family: "x86"},
				{ID: "modern-64bit", Rank: 4, Family: "x86"},
				{ID: "arm64", Rank: 1, Family: "arm"},
			},
			catalog.AxisMemory: {
				{ID: catalog.AnyOption},
				{ID: "1gb", Rank: 1},
				{ID: "2gb", Rank: 2},
				{ID: "4gb", Rank: 3},
				{ID: "8gb", Rank: 4},
			},
			catalog.AxisGraphics: {
				{ID: catalog.AnyOption},
				{ID: "integrated", Rank: 1},
				{ID: "dedicated", Rank: 2},
			},
			catalog.AxisExperience: {
				{ID: catalog.AnyOption}, {ID: "beginner"}, {ID: "intermediate"}, {ID: "advanced"},
			},
			catalog.AxisObjective: {
				{ID: catalog.AnyOption}, {ID: "general"}, {ID: "development"}, {ID: "gaming"}, {ID: "hacking"},
			},
		})
	if err != nil {
		t.Fatalf("testutil.Vocabulary: %v", err)
	}
	return v
}

// NewCatalog builds a Catalog over [Vocabulary] from the given records, in
// order. The first record is the fallback default.
func NewCatalog(t testing.TB, distros ...catalog.Distro) *catalog.Catalog {
	t.Helper()
	return NewCatalogWithDefault(t, "", distros...)
}

// NewCatalogWithDefault is like NewCatalog with an explicit fallback ID.
func NewCatalogWithDefault(t testing.TB, defaultID string, distros ...catalog.Distro) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New(Vocabulary(t), distros, defaultID)
	if err != nil {
		t.Fatalf("testutil.NewCatalog: %v", err)
	}
	return cat
}
