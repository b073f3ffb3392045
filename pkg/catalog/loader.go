package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogRawData []byte

// catalogFile is the top-level structure of a catalog YAML document.
type catalogFile struct {
	Version    int            `yaml:"version"`
	Default    string         `yaml:"default"`
	Vocabulary vocabularyFile `yaml:"vocabulary"`
	Distros    []Distro       `yaml:"distros"`
}

type vocabularyFile struct {
	Categories []string          `yaml:"categories"`
	Axes       map[Axis][]Option `yaml:"axes"`
}

// Catalog is the read-only, ordered collection of distro records for a
// session. It is never modified after construction; accessors return copies.
type Catalog struct {
	distros   []Distro
	index     map[string]int
	vocab     *Vocabulary
	defaultID string
}

// New builds a Catalog from already-decoded records. Record order is kept
// as given. defaultID names the fallback recommendation; empty selects the
// first record.
func New(vocab *Vocabulary, distros []Distro, defaultID string) (*Catalog, error) {
	if vocab == nil {
		return nil, fmt.Errorf("%w: nil vocabulary", ErrInvalidVocabulary)
	}
	if len(distros) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		distros: make([]Distro, 0, len(distros)),
		index:   make(map[string]int, len(distros)),
		vocab:   vocab,
	}

	var errs []error
	for i := range distros {
		d := distros[i].clone()
		errs = append(errs, checkDistro(&d, vocab)...)
		if d.ID != "" {
			if _, dup := c.index[d.ID]; dup {
				errs = append(errs, fmt.Errorf("%w: %q", ErrDuplicateID, d.ID))
				continue
			}
			c.index[d.ID] = len(c.distros)
		}
		c.distros = append(c.distros, d)
	}

	c.defaultID = defaultID
	if c.defaultID == "" {
		c.defaultID = c.distros[0].ID
	} else if _, ok := c.index[c.defaultID]; !ok {
		errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownDefault, c.defaultID))
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return c, nil
}

// Parse decodes and validates a catalog YAML document. Unknown fields are
// rejected so typos surface at load time instead of as silently empty data.
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyCatalog
		}
		return nil, fmt.Errorf("catalog: parse yaml: %w", err)
	}

	vocab, err := NewVocabulary(f.Version, f.Vocabulary.Categories, f.Vocabulary.Axes)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}

	cat, err := New(vocab, f.Distros, f.Default)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	return cat, nil
}

// LoadFile reads and parses a catalog document from disk.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %q: %w", path, err)
	}
	return Parse(data)
}

var embedded struct {
	once sync.Once
	cat  *Catalog
	err  error
}

// Embedded returns the catalog compiled into the binary. The document is
// parsed on first access and shared afterwards.
func Embedded() (*Catalog, error) {
	embedded.once.Do(func() {
		embedded.cat, embedded.err = Parse(catalogRawData)
	})
	return embedded.cat, embedded.err
}

// Len returns the number of distros.
func (c *Catalog) Len() int { return len(c.distros) }

// Distros returns a copy of all records in catalog order.
func (c *Catalog) Distros() []Distro {
	cp := make([]Distro, len(c.distros))
	for i := range c.distros {
		cp[i] = c.distros[i].clone()
	}
	return cp
}

// Get returns the record with the given ID.
func (c *Catalog) Get(id string) (Distro, bool) {
	i, ok := c.index[id]
	if !ok {
		return Distro{}, false
	}
	return c.distros[i].clone(), true
}

// Default returns the fallback recommendation: the record named by the
// document's "default" key, or the first record.
func (c *Catalog) Default() Distro {
	return c.distros[c.index[c.defaultID]].clone()
}

// Vocabulary returns the catalog's category and questionnaire vocabulary.
func (c *Catalog) Vocabulary() *Vocabulary { return c.vocab }

// IDs returns every distro ID in catalog order.
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.distros))
	for i := range c.distros {
		ids[i] = c.distros[i].ID
	}
	return ids
}

// IDs returns the identifiers of distros, preserving order.
func IDs(distros []Distro) []string {
	ids := make([]string, len(distros))
	for i := range distros {
		ids[i] = distros[i].ID
	}
	return ids
}
