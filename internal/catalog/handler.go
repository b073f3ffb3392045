package catalog

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/HerbHall/distrofinder/internal/server"
	pkgcatalog "github.com/HerbHall/distrofinder/pkg/catalog"
	"github.com/HerbHall/distrofinder/pkg/locale"
)

// maxSuggestions caps the "did you mean" list on an empty browse result.
const maxSuggestions = 3

// CategoryLabel is a category tag with its display label.
type CategoryLabel struct {
	Tag   string `json:"tag"`
	Label string `json:"label"`
}

// DistroView is a distro record with its text resolved for one locale.
type DistroView struct {
	ID           string                  `json:"id"`
	Name         string                  `json:"name"`
	Subtitle     string                  `json:"subtitle"`
	Description  string                  `json:"description"`
	Logo         string                  `json:"logo"`
	Categories   []CategoryLabel         `json:"categories"`
	Requirements pkgcatalog.Requirements `json:"requirements"`
	Experience   []string                `json:"experience"`
	Objectives   []string                `json:"objectives"`
}

// SuggestionView is a compact distro reference.
type SuggestionView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DistroListResponse is the response for GET /api/v1/catalog/distros.
type DistroListResponse struct {
	Locale      string           `json:"locale"`
	Query       pkgcatalog.Query `json:"query"`
	Count       int              `json:"count"`
	Distros     []DistroView     `json:"distros"`
	Suggestions []SuggestionView `json:"suggestions,omitempty"`
}

// MatchResponse is the response for GET /api/v1/catalog/match.
type MatchResponse struct {
	Locale   string            `json:"locale"`
	Answer   pkgcatalog.Answer `json:"answer"`
	Fallback bool              `json:"fallback"`
	Count    int               `json:"count"`
	Distros  []DistroView      `json:"distros"`
}

// CategoriesResponse is the response for GET /api/v1/catalog/categories.
type CategoriesResponse struct {
	Locale     string          `json:"locale"`
	Version    int             `json:"version"`
	Categories []CategoryLabel `json:"categories"`
}

// OptionView is one selectable questionnaire option.
type OptionView struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// AxisView is one questionnaire axis with its options, sentinel first.
type AxisView struct {
	ID      pkgcatalog.Axis `json:"id"`
	Label   string          `json:"label"`
	Ordinal bool            `json:"ordinal"`
	Options []OptionView    `json:"options"`
}

// QuestionnaireResponse is the response for GET /api/v1/catalog/questionnaire.
type QuestionnaireResponse struct {
	Locale  string     `json:"locale"`
	Version int        `json:"version"`
	Axes    []AxisView `json:"axes"`
}

// Handler serves the catalog API.
type Handler struct {
	engine  *Engine
	locales *locale.Resolver
	logger  *zap.Logger
}

// NewHandler creates a new catalog API handler.
func NewHandler(engine *Engine, locales *locale.Resolver, logger *zap.Logger) *Handler {
	return &Handler{engine: engine, locales: locales, logger: logger}
}

// RegisterRoutes implements server.RouteRegistrar.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/catalog/distros", h.handleListDistros)
	mux.HandleFunc("GET /api/v1/catalog/distros/{id}", h.handleGetDistro)
	mux.HandleFunc("GET /api/v1/catalog/match", h.handleMatch)
	mux.HandleFunc("GET /api/v1/catalog/categories", h.handleCategories)
	mux.HandleFunc("GET /api/v1/catalog/questionnaire", h.handleQuestionnaire)
}

// handleListDistros filters the catalog by text and category.
//
//	@Summary		Browse distros
//	@Description	Returns distros whose name or subtitle contains q (case-insensitive) and that carry the given category, in catalog order. When nothing matches and q is set, fuzzy name suggestions are included.
//	@Tags			catalog
//	@Produce		json
//	@Param			q query string false "Free-text search"
//	@Param			category query string false "Category tag, or 'all'" default(all)
//	@Param			lang query string false "Locale (pt, en, es); defaults to Accept-Language negotiation"
//	@Success		200 {object} DistroListResponse
//	@Failure		400 {object} server.Problem
//	@Router			/catalog/distros [get]
func (h *Handler) handleListDistros(w http.ResponseWriter, r *http.Request) {
	q := pkgcatalog.Query{
		Text:     r.URL.Query().Get("q"),
		Category: r.URL.Query().Get("category"),
	}
	if q.Category == "" {
		q.Category = pkgcatalog.CategoryAll
	}
	if err := h.engine.Catalog().Vocabulary().ValidateCategory(q.Category); err != nil {
		server.BadRequest(w, err.Error(), r.URL.Path)
		return
	}

	loc := h.requestLocale(w, r)
	distros := h.engine.Filter(q)

	resp := DistroListResponse{
		Locale:  loc,
		Query:   q,
		Count:   len(distros),
		Distros: h.views(distros, loc),
	}
	if len(distros) == 0 && q.Text != "" {
		for _, d := range h.engine.Suggest(q, maxSuggestions) {
			resp.Suggestions = append(resp.Suggestions, SuggestionView{ID: d.ID, Name: d.Name})
		}
	}

	h.logger.Debug("filtered catalog",
		zap.String("text", q.Text),
		zap.String("category", q.Category),
		zap.Int("count", resp.Count),
	)
	writeJSON(w, http.StatusOK, resp)
}

// handleGetDistro returns one distro.
//
//	@Summary		Get a distro
//	@Description	Returns one distro record with text resolved for the requested locale.
//	@Tags			catalog
//	@Produce		json
//	@Param			id path string true "Distro ID"
//	@Param			lang query string false "Locale (pt, en, es)"
//	@Success		200 {object} DistroView
//	@Failure		404 {object} server.Problem
//	@Router			/catalog/distros/{id} [get]
func (h *Handler) handleGetDistro(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	d, ok := h.engine.Catalog().Get(id)
	if !ok {
		server.NotFound(w, "distro "+id+" not found", r.URL.Path)
		return
	}
	loc := h.requestLocale(w, r)
	writeJSON(w, http.StatusOK, h.view(d, loc))
}

// handleMatch runs the questionnaire.
//
//	@Summary		Match distros to a questionnaire
//	@Description	Narrows the catalog by every axis not set to 'any'. Never returns an empty list: when nothing matches, the catalog default is returned with fallback=true.
//	@Tags			catalog
//	@Produce		json
//	@Param			processor query string false "Processor tier option ID" default(any)
//	@Param			memory query string false "Memory tier option ID" default(any)
//	@Param			experience query string false "Experience option ID" default(any)
//	@Param			objective query string false "Objective option ID" default(any)
//	@Param			graphics query string false "Graphics tier option ID" default(any)
//	@Param			lang query string false "Locale (pt, en, es)"
//	@Success		200 {object} MatchResponse
//	@Failure		400 {object} server.Problem
//	@Router			/catalog/match [get]
func (h *Handler) handleMatch(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	answer := pkgcatalog.Answer{
		Processor:  params.Get(string(pkgcatalog.AxisProcessor)),
		Memory:     params.Get(string(pkgcatalog.AxisMemory)),
		Experience: params.Get(string(pkgcatalog.AxisExperience)),
		Objective:  params.Get(string(pkgcatalog.AxisObjective)),
		Graphics:   params.Get(string(pkgcatalog.AxisGraphics)),
	}
	if err := h.engine.Catalog().Vocabulary().ValidateAnswer(answer); err != nil {
		server.BadRequest(w, err.Error(), r.URL.Path)
		return
	}

	loc := h.requestLocale(w, r)
	rec := h.engine.Recommend(answer)
	if rec.Fallback {
		h.logger.Debug("questionnaire fell back to default",
			zap.String("default", rec.Distros[0].ID),
		)
	}

	writeJSON(w, http.StatusOK, MatchResponse{
		Locale:   loc,
		Answer:   answer,
		Fallback: rec.Fallback,
		Count:    len(rec.Distros),
		Distros:  h.views(rec.Distros, loc),
	})
}

// handleCategories lists the category vocabulary.
//
//	@Summary		List categories
//	@Description	Returns the 'all' sentinel followed by every category tag, with labels for the requested locale.
//	@Tags			catalog
//	@Produce		json
//	@Param			lang query string false "Locale (pt, en, es)"
//	@Success		200 {object} CategoriesResponse
//	@Router			/catalog/categories [get]
func (h *Handler) handleCategories(w http.ResponseWriter, r *http.Request) {
	loc := h.requestLocale(w, r)
	vocab := h.engine.Catalog().Vocabulary()

	tags := append([]string{pkgcatalog.CategoryAll}, vocab.Categories()...)
	writeJSON(w, http.StatusOK, CategoriesResponse{
		Locale:     loc,
		Version:    vocab.Version(),
		Categories: h.labels(tags, loc),
	})
}

// handleQuestionnaire describes the questionnaire axes.
//
//	@Summary		Describe the questionnaire
//	@Description	Returns every axis with its options in display order, the 'any' sentinel first.
//	@Tags			catalog
//	@Produce		json
//	@Param			lang query string false "Locale (pt, en, es)"
//	@Success		200 {object} QuestionnaireResponse
//	@Router			/catalog/questionnaire [get]
func (h *Handler) handleQuestionnaire(w http.ResponseWriter, r *http.Request) {
	loc := h.requestLocale(w, r)
	vocab := h.engine.Catalog().Vocabulary()

	axes := make([]AxisView, 0, len(pkgcatalog.Axes))
	for _, axis := range pkgcatalog.Axes {
		opts := vocab.Options(axis)
		views := make([]OptionView, len(opts))
		for i, opt := range opts {
			views[i] = OptionView{ID: opt.ID, Label: h.locales.OptionLabel(axis, opt.ID, loc)}
		}
		axes = append(axes, AxisView{
			ID:      axis,
			Label:   h.locales.AxisLabel(axis, loc),
			Ordinal: axis.Ordinal(),
			Options: views,
		})
	}

	writeJSON(w, http.StatusOK, QuestionnaireResponse{
		Locale:  loc,
		Version: vocab.Version(),
		Axes:    axes,
	})
}

// requestLocale picks the response locale: the lang parameter when given,
// otherwise Accept-Language negotiation.
func (h *Handler) requestLocale(w http.ResponseWriter, r *http.Request) string {
	var loc string
	if lang := r.URL.Query().Get("lang"); lang != "" {
		loc = h.locales.Normalize(lang)
	} else {
		loc = h.locales.Negotiate(r.Header.Get("Accept-Language"))
	}
	w.Header().Set("Content-Language", loc)
	return loc
}

func (h *Handler) view(d pkgcatalog.Distro, loc string) DistroView {
	text := h.locales.ResolveText(d, loc)
	return DistroView{
		ID:           d.ID,
		Name:         d.Name,
		Subtitle:     text.Subtitle,
		Description:  text.Description,
		Logo:         d.Logo,
		Categories:   h.labels(d.Categories, loc),
		Requirements: d.Requirements,
		Experience:   nonNil(d.Experience),
		Objectives:   nonNil(d.Objectives),
	}
}

func (h *Handler) views(distros []pkgcatalog.Distro, loc string) []DistroView {
	out := make([]DistroView, len(distros))
	for i := range distros {
		out[i] = h.view(distros[i], loc)
	}
	return out
}

func (h *Handler) labels(tags []string, loc string) []CategoryLabel {
	out := make([]CategoryLabel, len(tags))
	for i, tag := range tags {
		out[i] = CategoryLabel{Tag: tag, Label: h.locales.LabelFor(tag, loc)}
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// -- helpers --

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
