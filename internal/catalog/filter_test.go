package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/HerbHall/distrofinder/internal/testutil"
	pkgcatalog "github.com/HerbHall/distrofinder/pkg/catalog"
)

func browseFixture() []pkgcatalog.Distro {
	return []pkgcatalog.Distro{
		testutil.NewDistro(testutil.WithID("ubuntu"), testutil.WithName("Ubuntu"),
			testutil.WithSubtitle("The popular one"), testutil.WithCategories("Beginner-friendly")),
		testutil.NewDistro(testutil.WithID("fedora"), testutil.WithName("Fedora"),
			testutil.WithSubtitle("Sponsored by Red Hat"), testutil.WithCategories("Server")),
		testutil.NewDistro(testutil.WithID("kubuntu"), testutil.WithName("Kubuntu"),
			testutil.WithSubtitle("KDE flavour"), testutil.WithCategories("Beginner-friendly", "Gaming")),
		testutil.NewDistro(testutil.WithID("antix"), testutil.WithName("antiX"),
			testutil.WithSubtitle("Runs on Ubuntu-era laptops"), testutil.WithCategories("Old PC")),
	}
}

func TestFilter_AllAndEmptyTextReturnsCatalogInOrder(t *testing.T) {
	distros := browseFixture()

	for _, category := range []string{pkgcatalog.CategoryAll, ""} {
		got := Filter(distros, pkgcatalog.Query{Category: category})
		assert.Equal(t, distros, got, "category %q", category)
	}
}

func TestFilter_CategoryScenario(t *testing.T) {
	distros := []pkgcatalog.Distro{
		testutil.NewDistro(testutil.WithID("a"), testutil.WithCategories("Gaming")),
		testutil.NewDistro(testutil.WithID("b"), testutil.WithCategories("Server")),
	}

	got := Filter(distros, pkgcatalog.Query{Category: "Gaming"})
	assert.Equal(t, []string{"a"}, pkgcatalog.IDs(got))
}

func TestFilter_CategoryMembershipIsExact(t *testing.T) {
	distros := browseFixture()

	for _, c := range []string{"Beginner-friendly", "Gaming", "Server", "Old PC", "Racing", "gaming", "Gam"} {
		got := Filter(distros, pkgcatalog.Query{Category: c})
		gotIDs := map[string]bool{}
		for _, d := range got {
			gotIDs[d.ID] = true
		}
		for i := range distros {
			want := distros[i].HasCategory(c)
			assert.Equal(t, want, gotIDs[distros[i].ID], "distro %s category %q", distros[i].ID, c)
		}
	}
}

func TestFilter_Text(t *testing.T) {
	distros := browseFixture()

	tests := []struct {
		name string
		q    pkgcatalog.Query
		want []string
	}{
		{"lower prefix", pkgcatalog.Query{Text: "ubu"}, []string{"ubuntu", "kubuntu", "antix"}},
		{"upper case", pkgcatalog.Query{Text: "UBU"}, []string{"ubuntu", "kubuntu", "antix"}},
		{"subtitle match", pkgcatalog.Query{Text: "red hat"}, []string{"fedora"}},
		{"trailing space is literal", pkgcatalog.Query{Text: "fedora "}, []string{}},
		{"leading space", pkgcatalog.Query{Text: " flavour"}, []string{"kubuntu"}},
		{"text and category", pkgcatalog.Query{Text: "ubu", Category: "Gaming"}, []string{"kubuntu"}},
		{"no match", pkgcatalog.Query{Text: "plan9"}, []string{}},
		{"description is not searched", pkgcatalog.Query{Text: "fixture"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(distros, tt.q)
			assert.Equal(t, tt.want, pkgcatalog.IDs(got))
		})
	}
}

func TestFilter_WhitespaceIsMatchedLiterally(t *testing.T) {
	distros := []pkgcatalog.Distro{
		testutil.NewDistro(testutil.WithID("mint"), testutil.WithName("Linux Mint"),
			testutil.WithSubtitle("Popular")),
		testutil.NewDistro(testutil.WithID("arch"), testutil.WithName("Arch"),
			testutil.WithSubtitle("Rolling")),
	}

	tests := []struct {
		name string
		text string
		want []string
	}{
		{"single space", " ", []string{"mint"}},
		{"only spaces", "   ", []string{}},
		{"trailing space", "ch ", []string{}},
		{"space inside name", "x m", []string{"mint"}},
		{"empty", "", []string{"mint", "arch"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(distros, pkgcatalog.Query{Text: tt.text})
			assert.Equal(t, tt.want, pkgcatalog.IDs(got))
		})
	}
}

func TestFilter_UnicodeFolding(t *testing.T) {
	distros := []pkgcatalog.Distro{
		testutil.NewDistro(testutil.WithID("big-linux"), testutil.WithName("BigLinux"),
			testutil.WithSubtitle("Distro brasileira com foco no usuário")),
	}

	assert.Len(t, Filter(distros, pkgcatalog.Query{Text: "USUÁRIO"}), 1)
	assert.Len(t, Filter(distros, pkgcatalog.Query{Text: "BRASILEIRA"}), 1)
}

func TestFilter_Idempotent(t *testing.T) {
	distros := browseFixture()
	q := pkgcatalog.Query{Text: "u", Category: "Beginner-friendly"}

	first := Filter(distros, q)
	second := Filter(distros, q)
	assert.Equal(t, first, second)
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	distros := browseFixture()
	before := pkgcatalog.IDs(distros)

	_ = Filter(distros, pkgcatalog.Query{Category: "Server"})
	assert.Equal(t, before, pkgcatalog.IDs(distros))
}
