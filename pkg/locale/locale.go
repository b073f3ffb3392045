// Package locale resolves display text for catalog records, category tags,
// questionnaire options and UI chrome from a single (locale, key) table.
// Every lookup degrades to a documented fallback; none of them fail.
package locale

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/HerbHall/distrofinder/pkg/catalog"
)

//go:embed messages.yaml
var messagesRawData []byte

// Sentinel errors returned while loading a message table.
var (
	ErrUnsupportedLocale = errors.New("unsupported locale")
	ErrUnknownDistro     = errors.New("translation for unknown distro")
	ErrInvalidKey        = errors.New("invalid message key")
)

// Key prefixes and distro fields.
const (
	prefixDistro   = "distro."
	prefixCategory = "category."
	prefixAxis     = "axis."
	prefixUI       = "ui."

	fieldSubtitle    = "subtitle"
	fieldDescription = "description"
)

// Text is the localized, displayable text of one distro.
type Text struct {
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
}

type messagesFile struct {
	DefaultLocale string                       `yaml:"default_locale"`
	Locales       []string                     `yaml:"locales"`
	Messages      map[string]map[string]string `yaml:"messages"`
}

// Resolver answers text lookups against an immutable message table.
// It is safe for concurrent use.
type Resolver struct {
	defaultLocale string
	locales       []string
	messages      map[string]map[string]string
	matcher       language.Matcher
}

// New builds a Resolver. defaultLocale must be one of locales, and every
// locale in messages must be supported.
func New(defaultLocale string, locales []string, messages map[string]map[string]string) (*Resolver, error) {
	var errs []error

	if len(locales) == 0 {
		errs = append(errs, fmt.Errorf("%w: no locales declared", ErrUnsupportedLocale))
	}
	seen := make(map[string]struct{}, len(locales))
	for _, loc := range locales {
		if _, err := language.Parse(loc); err != nil {
			errs = append(errs, fmt.Errorf("%w: %q: %v", ErrUnsupportedLocale, loc, err))
		}
		if _, dup := seen[loc]; dup {
			errs = append(errs, fmt.Errorf("%w: %q declared twice", ErrUnsupportedLocale, loc))
		}
		seen[loc] = struct{}{}
	}
	if _, ok := seen[defaultLocale]; !ok {
		errs = append(errs, fmt.Errorf("%w: default locale %q is not declared", ErrUnsupportedLocale, defaultLocale))
	}

	r := &Resolver{
		defaultLocale: defaultLocale,
		locales:       slices.Clone(locales),
		messages:      make(map[string]map[string]string, len(messages)),
	}
	for loc, table := range messages {
		if _, ok := seen[loc]; !ok {
			errs = append(errs, fmt.Errorf("%w: messages for %q", ErrUnsupportedLocale, loc))
			continue
		}
		cp := make(map[string]string, len(table))
		for key, value := range table {
			if err := checkKey(key); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", loc, err))
				continue
			}
			cp[key] = value
		}
		r.messages[loc] = cp
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	// The matcher prefers its first tag when nothing matches, so the
	// default locale goes first.
	ordered := append([]string{defaultLocale}, slices.DeleteFunc(slices.Clone(locales), func(l string) bool {
		return l == defaultLocale
	})...)
	r.locales = ordered
	tags := make([]language.Tag, len(ordered))
	for i, loc := range ordered {
		tags[i] = language.Make(loc)
	}
	r.matcher = language.NewMatcher(tags)
	return r, nil
}

func checkKey(key string) error {
	switch {
	case strings.HasPrefix(key, prefixDistro):
		id, field, ok := splitDistroKey(key)
		if !ok || id == "" || (field != fieldSubtitle && field != fieldDescription) {
			return fmt.Errorf("%w: %q", ErrInvalidKey, key)
		}
	case strings.HasPrefix(key, prefixCategory),
		strings.HasPrefix(key, prefixAxis),
		strings.HasPrefix(key, prefixUI):
		if strings.HasSuffix(key, ".") {
			return fmt.Errorf("%w: %q", ErrInvalidKey, key)
		}
	default:
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}

// splitDistroKey splits "distro.<id>.<field>". IDs are slugs and never
// contain dots.
func splitDistroKey(key string) (id, field string, ok bool) {
	rest := strings.TrimPrefix(key, prefixDistro)
	i := strings.LastIndexByte(rest, '.')
	if i < 0 {
		return "", "", false
	}
	return rest[:i], rest[i+1:], true
}

// Parse decodes and validates a message table document.
func Parse(data []byte) (*Resolver, error) {
	var f messagesFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("locale: %w: empty document", ErrUnsupportedLocale)
		}
		return nil, fmt.Errorf("locale: parse yaml: %w", err)
	}
	r, err := New(f.DefaultLocale, f.Locales, f.Messages)
	if err != nil {
		return nil, fmt.Errorf("locale: %w", err)
	}
	return r, nil
}

// LoadFile reads and parses a message table from disk.
func LoadFile(path string) (*Resolver, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("locale: read %q: %w", path, err)
	}
	return Parse(data)
}

var embedded struct {
	once sync.Once
	r    *Resolver
	err  error
}

// Embedded returns the message table compiled into the binary.
func Embedded() (*Resolver, error) {
	embedded.once.Do(func() {
		embedded.r, embedded.err = Parse(messagesRawData)
	})
	return embedded.r, embedded.err
}

// Check reports translations keyed to distro IDs not present in ids.
func (r *Resolver) Check(ids []string) error {
	known := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		known[id] = struct{}{}
	}

	var errs []error
	for _, loc := range r.locales {
		keys := make([]string, 0, len(r.messages[loc]))
		for key := range r.messages[loc] {
			keys = append(keys, key)
		}
		slices.Sort(keys)
		for _, key := range keys {
			if !strings.HasPrefix(key, prefixDistro) {
				continue
			}
			id, _, _ := splitDistroKey(key)
			if _, ok := known[id]; !ok {
				errs = append(errs, fmt.Errorf("%w: %s %q", ErrUnknownDistro, loc, key))
			}
		}
	}
	return errors.Join(errs...)
}

// Default returns the designated default locale.
func (r *Resolver) Default() string { return r.defaultLocale }

// Supported returns the supported locales, default first.
func (r *Resolver) Supported() []string { return slices.Clone(r.locales) }

// IsSupported reports whether loc is exactly one of the supported codes.
func (r *Resolver) IsSupported(loc string) bool {
	return slices.Contains(r.locales, loc)
}

// Normalize maps a requested locale onto a supported one. Region subtags are
// dropped ("pt-BR" becomes "pt"); anything else unsupported becomes the
// default locale.
func (r *Resolver) Normalize(loc string) string {
	loc = strings.ToLower(strings.TrimSpace(loc))
	if r.IsSupported(loc) {
		return loc
	}
	if tag, err := language.Parse(loc); err == nil {
		if base, conf := tag.Base(); conf != language.No && r.IsSupported(base.String()) {
			return base.String()
		}
	}
	return r.defaultLocale
}

// Negotiate picks the best supported locale for an Accept-Language header.
func (r *Resolver) Negotiate(acceptLanguage string) string {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return r.defaultLocale
	}
	_, index, conf := r.matcher.Match(tags...)
	if conf == language.No {
		return r.defaultLocale
	}
	return r.locales[index]
}

func (r *Resolver) lookup(loc, key string) (string, bool) {
	s, ok := r.messages[loc][key]
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// ResolveText returns a distro's subtitle and description in loc. Each field
// independently uses the locale's override when present and non-empty, and
// the record's own default-locale text otherwise.
func (r *Resolver) ResolveText(d catalog.Distro, loc string) Text {
	loc = r.Normalize(loc)
	t := Text{Subtitle: d.Subtitle, Description: d.Description}
	if s, ok := r.lookup(loc, prefixDistro+d.ID+"."+fieldSubtitle); ok {
		t.Subtitle = s
	}
	if s, ok := r.lookup(loc, prefixDistro+d.ID+"."+fieldDescription); ok {
		t.Description = s
	}
	return t
}

// LabelFor returns the display label of a category tag in loc, or the raw
// tag when that locale has no label for it.
func (r *Resolver) LabelFor(tag, loc string) string {
	if s, ok := r.lookup(r.Normalize(loc), prefixCategory+tag); ok {
		return s
	}
	return tag
}

// AxisLabel returns the heading of a questionnaire axis, or the axis name.
func (r *Resolver) AxisLabel(axis catalog.Axis, loc string) string {
	if s, ok := r.lookup(r.Normalize(loc), prefixAxis+string(axis)); ok {
		return s
	}
	return string(axis)
}

// OptionLabel returns the display label of one axis option, or its ID.
func (r *Resolver) OptionLabel(axis catalog.Axis, id, loc string) string {
	if s, ok := r.lookup(r.Normalize(loc), prefixAxis+string(axis)+"."+id); ok {
		return s
	}
	return id
}

// Text returns a UI string by name ("search_button" for "ui.search_button").
// Missing strings fall back to the default locale, then to the name itself.
func (r *Resolver) Text(name, loc string) string {
	key := prefixUI + name
	if s, ok := r.lookup(r.Normalize(loc), key); ok {
		return s
	}
	if s, ok := r.lookup(r.defaultLocale, key); ok {
		return s
	}
	return name
}
