package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/HerbHall/distrofinder/internal/server"
	"github.com/HerbHall/distrofinder/internal/testutil"
	pkgcatalog "github.com/HerbHall/distrofinder/pkg/catalog"
	"github.com/HerbHall/distrofinder/pkg/locale"
)

const handlerMessages = `
default_locale: pt
locales: [pt, en, es]
messages:
  pt:
    category.all: Todas as distros
    category.Beginner-friendly: Para iniciantes
    axis.memory: Memória
    axis.memory.any: Memória
  en:
    category.all: All distros
    axis.memory: Memory
    axis.memory.8gb: 8 GB+
    distro.mint.subtitle: Familiar for Windows users
`

func newTestHandler(t *testing.T) *http.ServeMux {
	t.Helper()
	locales, err := locale.Parse([]byte(handlerMessages))
	if err != nil {
		t.Fatalf("locale.Parse: %v", err)
	}
	cat := testutil.NewCatalogWithDefault(t, "mint",
		testutil.NewDistro(testutil.WithID("ubuntu"), testutil.WithName("Ubuntu"),
			testutil.WithSubtitle("a distro mais popular"), testutil.WithCategories("Beginner-friendly", "Gaming"),
			testutil.WithObjectives("general", "development")),
		testutil.NewDistro(testutil.WithID("mint"), testutil.WithName("Linux Mint"),
			testutil.WithSubtitle("familiar para quem vem do Windows"), testutil.WithCategories("Beginner-friendly")),
		testutil.NewDistro(testutil.WithID("debian"), testutil.WithName("Debian"),
			testutil.WithSubtitle("a base universal"), testutil.WithCategories("Server"),
			testutil.WithProcessor("old-32bit", "arm64"), testutil.WithMemory("1gb"),
			testutil.WithExperience("intermediate", "advanced"), testutil.WithObjectives("development")),
	)
	h := NewHandler(NewEngine(cat, nil), locales, testutil.Logger())
	mux := http.NewServeMux()
	h.RegisterRoutes(mux)
	return mux
}

func doGet(t *testing.T, mux *http.ServeMux, target string, header http.Header) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return v
}

func viewIDs(views []DistroView) []string {
	ids := make([]string, len(views))
	for i := range views {
		ids[i] = views[i].ID
	}
	return ids
}

func TestHandleListDistros(t *testing.T) {
	mux := newTestHandler(t)

	tests := []struct {
		name   string
		target string
		want   []string
	}{
		{"everything", "/api/v1/catalog/distros", []string{"ubuntu", "mint", "debian"}},
		{"explicit all", "/api/v1/catalog/distros?category=all", []string{"ubuntu", "mint", "debian"}},
		{"category", "/api/v1/catalog/distros?category=Gaming", []string{"ubuntu"}},
		{"text", "/api/v1/catalog/distros?q=UBU", []string{"ubuntu"}},
		{"text in subtitle", "/api/v1/catalog/distros?q=windows", []string{"mint"}},
		{"text and category", "/api/v1/catalog/distros?q=a&category=Server", []string{"debian"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doGet(t, mux, tt.target, nil)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusOK, rec.Body.String())
			}
			resp := decode[DistroListResponse](t, rec)
			got := viewIDs(resp.Distros)
			if len(got) != len(tt.want) {
				t.Fatalf("ids = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ids = %v, want %v", got, tt.want)
					break
				}
			}
			if resp.Count != len(tt.want) {
				t.Errorf("count = %d, want %d", resp.Count, len(tt.want))
			}
		})
	}
}

func TestHandleListDistros_Suggestions(t *testing.T) {
	mux := newTestHandler(t)

	rec := doGet(t, mux, "/api/v1/catalog/distros?q=dbn", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	resp := decode[DistroListResponse](t, rec)
	if resp.Count != 0 {
		t.Errorf("count = %d, want 0", resp.Count)
	}
	if resp.Distros == nil {
		t.Error("distros should be an empty array, not null")
	}
	if len(resp.Suggestions) != 1 || resp.Suggestions[0].ID != "debian" {
		t.Errorf("suggestions = %+v, want [debian]", resp.Suggestions)
	}
}

func TestHandleListDistros_WhitespaceQuery(t *testing.T) {
	mux := newTestHandler(t)

	tests := []struct {
		name            string
		target          string
		wantSuggestions []string
	}{
		{"only spaces", "/api/v1/catalog/distros?q=%20%20%20", nil},
		{"trailing space", "/api/v1/catalog/distros?q=debian%20", []string{"debian"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doGet(t, mux, tt.target, nil)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
			}
			resp := decode[DistroListResponse](t, rec)
			if resp.Count != 0 {
				t.Errorf("count = %d, want 0 (ids %v)", resp.Count, viewIDs(resp.Distros))
			}
			if len(resp.Suggestions) != len(tt.wantSuggestions) {
				t.Fatalf("suggestions = %+v, want %v", resp.Suggestions, tt.wantSuggestions)
			}
			for i, id := range tt.wantSuggestions {
				if resp.Suggestions[i].ID != id {
					t.Errorf("suggestions[%d] = %q, want %q", i, resp.Suggestions[i].ID, id)
				}
			}
		})
	}
}

func TestHandleListDistros_UnknownCategory(t *testing.T) {
	mux := newTestHandler(t)

	rec := doGet(t, mux, "/api/v1/catalog/distros?category=Racing", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("content-type = %q, want application/problem+json", ct)
	}
	p := decode[server.Problem](t, rec)
	if p.Type != server.ProblemTypeBadRequest {
		t.Errorf("type = %q, want %q", p.Type, server.ProblemTypeBadRequest)
	}
}

func TestHandleListDistros_Localized(t *testing.T) {
	mux := newTestHandler(t)

	tests := []struct {
		name     string
		target   string
		header   http.Header
		locale   string
		subtitle string
		label    string
	}{
		{"default", "/api/v1/catalog/distros?q=mint", nil, "pt", "familiar para quem vem do Windows", "Para iniciantes"},
		{"lang param", "/api/v1/catalog/distros?q=mint&lang=en", nil, "en", "Familiar for Windows users", "Beginner-friendly"},
		{"accept-language", "/api/v1/catalog/distros?q=mint", http.Header{"Accept-Language": {"en-GB,en;q=0.8"}}, "en", "Familiar for Windows users", "Beginner-friendly"},
		{"lang wins over header", "/api/v1/catalog/distros?q=mint&lang=pt", http.Header{"Accept-Language": {"en"}}, "pt", "familiar para quem vem do Windows", "Para iniciantes"},
		{"unsupported lang", "/api/v1/catalog/distros?q=mint&lang=fr", nil, "pt", "familiar para quem vem do Windows", "Para iniciantes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doGet(t, mux, tt.target, tt.header)
			resp := decode[DistroListResponse](t, rec)
			if resp.Locale != tt.locale {
				t.Errorf("locale = %q, want %q", resp.Locale, tt.locale)
			}
			if got := rec.Header().Get("Content-Language"); got != tt.locale {
				t.Errorf("Content-Language = %q, want %q", got, tt.locale)
			}
			if len(resp.Distros) != 1 {
				t.Fatalf("distros = %d, want 1", len(resp.Distros))
			}
			d := resp.Distros[0]
			if d.Subtitle != tt.subtitle {
				t.Errorf("subtitle = %q, want %q", d.Subtitle, tt.subtitle)
			}
			if len(d.Categories) != 1 || d.Categories[0].Label != tt.label {
				t.Errorf("categories = %+v, want label %q", d.Categories, tt.label)
			}
		})
	}
}

func TestHandleGetDistro(t *testing.T) {
	mux := newTestHandler(t)

	rec := doGet(t, mux, "/api/v1/catalog/distros/debian", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	d := decode[DistroView](t, rec)
	if d.ID != "debian" || d.Name != "Debian" {
		t.Errorf("got %s/%s, want debian/Debian", d.ID, d.Name)
	}
	if len(d.Requirements.Processor) != 2 {
		t.Errorf("processor = %v, want two tiers", d.Requirements.Processor)
	}

	rec = doGet(t, mux, "/api/v1/catalog/distros/plan9", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	p := decode[server.Problem](t, rec)
	if p.Instance != "/api/v1/catalog/distros/plan9" {
		t.Errorf("instance = %q, want request path", p.Instance)
	}
}

func TestHandleMatch(t *testing.T) {
	mux := newTestHandler(t)

	tests := []struct {
		name     string
		target   string
		want     []string
		fallback bool
	}{
		{"no answers", "/api/v1/catalog/match", []string{"ubuntu", "mint", "debian"}, false},
		{"all any", "/api/v1/catalog/match?processor=any&memory=any&experience=any&objective=any&graphics=any", []string{"ubuntu", "mint", "debian"}, false},
		{"arm", "/api/v1/catalog/match?processor=arm64", []string{"debian"}, false},
		{"objective", "/api/v1/catalog/match?objective=development", []string{"ubuntu", "debian"}, false},
		{"memory", "/api/v1/catalog/match?memory=1gb", []string{"debian"}, false},
		{"fallback", "/api/v1/catalog/match?processor=arm64&experience=beginner", []string{"mint"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doGet(t, mux, tt.target, nil)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusOK, rec.Body.String())
			}
			resp := decode[MatchResponse](t, rec)
			got := viewIDs(resp.Distros)
			if len(got) != len(tt.want) {
				t.Fatalf("ids = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ids = %v, want %v", got, tt.want)
					break
				}
			}
			if resp.Fallback != tt.fallback {
				t.Errorf("fallback = %v, want %v", resp.Fallback, tt.fallback)
			}
		})
	}
}

func TestHandleMatch_UnknownOption(t *testing.T) {
	mux := newTestHandler(t)

	rec := doGet(t, mux, "/api/v1/catalog/match?memory=64gb", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestHandleCategories(t *testing.T) {
	mux := newTestHandler(t)

	rec := doGet(t, mux, "/api/v1/catalog/categories?lang=en", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	resp := decode[CategoriesResponse](t, rec)
	if len(resp.Categories) == 0 || resp.Categories[0].Tag != pkgcatalog.CategoryAll {
		t.Fatalf("categories = %+v, want %q first", resp.Categories, pkgcatalog.CategoryAll)
	}
	if resp.Categories[0].Label != "All distros" {
		t.Errorf("all label = %q, want %q", resp.Categories[0].Label, "All distros")
	}
	if resp.Version != 1 {
		t.Errorf("version = %d, want 1", resp.Version)
	}
	// Four declared tags plus the sentinel.
	if len(resp.Categories) != 5 {
		t.Errorf("categories = %d, want 5", len(resp.Categories))
	}
}

func TestHandleQuestionnaire(t *testing.T) {
	mux := newTestHandler(t)

	rec := doGet(t, mux, "/api/v1/catalog/questionnaire?lang=en", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	resp := decode[QuestionnaireResponse](t, rec)
	if len(resp.Axes) != len(pkgcatalog.Axes) {
		t.Fatalf("axes = %d, want %d", len(resp.Axes), len(pkgcatalog.Axes))
	}

	memory := resp.Axes[1]
	if memory.ID != pkgcatalog.AxisMemory || memory.Label != "Memory" || !memory.Ordinal {
		t.Errorf("memory axis = %+v", memory)
	}
	if memory.Options[0].ID != pkgcatalog.AnyOption {
		t.Errorf("first option = %q, want %q", memory.Options[0].ID, pkgcatalog.AnyOption)
	}
	last := memory.Options[len(memory.Options)-1]
	if last.ID != "8gb" || last.Label != "8 GB+" {
		t.Errorf("last option = %+v, want 8gb labelled 8 GB+", last)
	}
	// Unlabelled options fall back to their ID.
	if got := memory.Options[1].Label; got != "1gb" {
		t.Errorf("1gb label = %q, want raw id", got)
	}
	if resp.Axes[2].Ordinal {
		t.Error("experience axis should not be ordinal")
	}
}
