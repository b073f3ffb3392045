package catalog

import (
	"errors"
	"fmt"
)

// Vocabulary is the fixed, versioned set of category tags and questionnaire
// options shared by the catalog data and its callers. Compatibility
// thresholds for ordinal axes live here as data (rank and family per option)
// rather than in the engine.
type Vocabulary struct {
	version    int
	categories []string
	axes       map[Axis][]Option

	categoryIndex map[string]struct{}
	optionIndex   map[Axis]map[string]Option
}

// NewVocabulary builds and checks a vocabulary. Every axis in [Axes] must be
// present and must start with the [AnyOption] sentinel.
func NewVocabulary(version int, categories []string, axes map[Axis][]Option) (*Vocabulary, error) {
	v := &Vocabulary{
		version:       version,
		categories:    cloneStrings(categories),
		axes:          make(map[Axis][]Option, len(axes)),
		categoryIndex: make(map[string]struct{}, len(categories)),
		optionIndex:   make(map[Axis]map[string]Option, len(axes)),
	}

	var errs []error
	for _, tag := range categories {
		switch {
		case tag == "":
			errs = append(errs, fmt.Errorf("%w: empty category tag", ErrInvalidVocabulary))
		case tag == CategoryAll:
			errs = append(errs, fmt.Errorf("%w: category %q is reserved", ErrInvalidVocabulary, CategoryAll))
		default:
			if _, dup := v.categoryIndex[tag]; dup {
				errs = append(errs, fmt.Errorf("%w: duplicate category %q", ErrInvalidVocabulary, tag))
			}
			v.categoryIndex[tag] = struct{}{}
		}
	}

	for axis := range axes {
		if !knownAxis(axis) {
			errs = append(errs, fmt.Errorf("%w: unknown axis %q", ErrInvalidVocabulary, axis))
		}
	}

	for _, axis := range Axes {
		opts, ok := axes[axis]
		if !ok || len(opts) == 0 {
			errs = append(errs, fmt.Errorf("%w: axis %q has no options", ErrInvalidVocabulary, axis))
			continue
		}
		if opts[0].ID != AnyOption {
			errs = append(errs, fmt.Errorf("%w: axis %q must start with %q, got %q",
				ErrInvalidVocabulary, axis, AnyOption, opts[0].ID))
		}

		index := make(map[string]Option, len(opts))
		for i, opt := range opts {
			if opt.ID == "" {
				errs = append(errs, fmt.Errorf("%w: axis %q option %d has no id", ErrInvalidVocabulary, axis, i))
				continue
			}
			if _, dup := index[opt.ID]; dup {
				errs = append(errs, fmt.Errorf("%w: axis %q duplicate option %q", ErrInvalidVocabulary, axis, opt.ID))
			}
			if i > 0 && opt.ID == AnyOption {
				errs = append(errs, fmt.Errorf("%w: axis %q repeats %q", ErrInvalidVocabulary, axis, AnyOption))
			}
			if axis.Ordinal() && i > 0 && opt.Rank <= 0 {
				errs = append(errs, fmt.Errorf("%w: axis %q option %q needs a positive rank",
					ErrInvalidVocabulary, axis, opt.ID))
			}
			index[opt.ID] = opt
		}
		v.axes[axis] = append([]Option(nil), opts...)
		v.optionIndex[axis] = index
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return v, nil
}

func knownAxis(axis Axis) bool {
	for _, a := range Axes {
		if a == axis {
			return true
		}
	}
	return false
}

// Version returns the vocabulary version. Callers built against another
// version must not assume option IDs line up.
func (v *Vocabulary) Version() int { return v.version }

// Categories returns the category tags in declaration order, without
// the [CategoryAll] sentinel.
func (v *Vocabulary) Categories() []string { return cloneStrings(v.categories) }

// HasCategory reports whether tag is a declared category.
func (v *Vocabulary) HasCategory(tag string) bool {
	_, ok := v.categoryIndex[tag]
	return ok
}

// Options returns the options for an axis in declaration order, sentinel first.
func (v *Vocabulary) Options(axis Axis) []Option {
	return append([]Option(nil), v.axes[axis]...)
}

// Option looks up an option by ID.
func (v *Vocabulary) Option(axis Axis, id string) (Option, bool) {
	opt, ok := v.optionIndex[axis][id]
	return opt, ok
}

// Satisfies reports whether a user's choice on an axis is compatible with a
// distro's attribute list for that axis.
//
// Ordinal axes: compatible when any listed minimum shares the user's family
// and has a rank no higher than the user's. Set axes: compatible when the
// user's choice is listed. Unknown IDs never satisfy.
func (v *Vocabulary) Satisfies(axis Axis, choice string, attribute []string) bool {
	if !axis.Ordinal() {
		for _, id := range attribute {
			if id == choice {
				return true
			}
		}
		return false
	}

	user, ok := v.Option(axis, choice)
	if !ok {
		return false
	}
	for _, id := range attribute {
		minimum, ok := v.Option(axis, id)
		if !ok || minimum.ID == AnyOption {
			continue
		}
		if minimum.Family == user.Family && minimum.Rank <= user.Rank {
			return true
		}
	}
	return false
}

// ValidateCategory rejects tags that are neither declared nor the sentinel.
func (v *Vocabulary) ValidateCategory(tag string) error {
	if tag == "" || tag == CategoryAll || v.HasCategory(tag) {
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownCategory, tag)
}

// ValidateAnswer rejects answers carrying option IDs the vocabulary does not
// declare. The engine tolerates such answers; this is for input boundaries.
func (v *Vocabulary) ValidateAnswer(a Answer) error {
	var errs []error
	for _, axis := range Axes {
		choice := a.Value(axis)
		if IsAny(choice) {
			continue
		}
		if _, ok := v.Option(axis, choice); !ok {
			errs = append(errs, fmt.Errorf("%w: %s %q", ErrUnknownOption, axis, choice))
		}
	}
	return errors.Join(errs...)
}
