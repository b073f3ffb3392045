package testutil

import (
	"github.com/google/uuid"

	"github.com/HerbHall/distrofinder/pkg/catalog"
)

// NewDistro returns a Distro with sensible defaults, suitable for test
// fixtures. The defaults satisfy the vocabulary from [Vocabulary]: a
// beginner-friendly general-purpose distro needing a basic 64-bit CPU,
// 2 GB of memory and integrated graphics.
func NewDistro(opts ...func(*catalog.Distro)) catalog.Distro {
	d := catalog.Distro{
		ID:          uuid.New().String(),
		Name:        "Test Distro",
		Subtitle:    "a distro for tests",
		Description: "Fixture record used by unit tests.",
		Logo:        "https://example.com/logo.svg",
		Categories:  []string{"Beginner-friendly"},
		Requirements: catalog.Requirements{
			Processor: catalog.TierRefs{"basic-64bit"},
			Memory:    catalog.TierRefs{"2gb"},
			Graphics:  catalog.TierRefs{"integrated"},
		},
		Experience: []string{"beginner"},
		Objectives: []string{"general"},
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

// WithID sets the distro ID.
func WithID(id string) func(*catalog.Distro) {
	return func(d *catalog.Distro) { d.ID = id }
}

// WithName sets the display name.
func WithName(name string) func(*catalog.Distro) {
	return func(d *catalog.Distro) { d.Name = name }
}

// WithSubtitle sets the default-locale subtitle.
func WithSubtitle(s string) func(*catalog.Distro) {
	return func(d *catalog.Distro) { d.Subtitle = s }
}

// WithCategories replaces the category tags.
func WithCategories(tags ...string) func(*catalog.Distro) {
	return func(d *catalog.Distro) { d.Categories = tags }
}

// WithProcessor replaces the minimum processor tiers.
func WithProcessor(tiers ...string) func(*catalog.Distro) {
	return func(d *catalog.Distro) { d.Requirements.Processor = tiers }
}

// WithMemory replaces the minimum memory tiers.
func WithMemory(tiers ...string) func(*catalog.Distro) {
	return func(d *catalog.Distro) { d.Requirements.Memory = tiers }
}

// WithGraphics replaces the minimum graphics tiers.
func WithGraphics(tiers ...string) func(*catalog.Distro) {
	return func(d *catalog.Distro) { d.Requirements.Graphics = tiers }
}

// WithExperience replaces the suitable experience levels.
func WithExperience(levels ...string) func(*catalog.Distro) {
	return func(d *catalog.Distro) { d.Experience = levels }
}

// WithObjectives replaces the suitable objectives.
func WithObjectives(objectives ...string) func(*catalog.Distro) {
	return func(d *catalog.Distro) { d.Objectives = objectives }
}
