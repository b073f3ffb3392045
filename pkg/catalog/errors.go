package catalog

import "errors"

// Sentinel errors returned while loading a catalog. Load failures are
// joined, so callers should test with errors.Is.
var (
	ErrEmptyCatalog      = errors.New("catalog has no distros")
	ErrDuplicateID       = errors.New("duplicate distro id")
	ErrInvalidRecord     = errors.New("invalid distro record")
	ErrUnknownCategory   = errors.New("unknown category")
	ErrUnknownOption     = errors.New("unknown questionnaire option")
	ErrInvalidVocabulary = errors.New("invalid vocabulary")
	ErrUnknownDefault    = errors.New("default distro not in catalog")
)
