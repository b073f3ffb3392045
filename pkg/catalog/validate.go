package catalog

import (
	"errors"
	"fmt"
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// recordValidator returns the shared validator, registering the "slug" tag
// on first use. validator.Validate caches struct metadata and is safe for
// concurrent use.
func recordValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		_ = validate.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
			return slugPattern.MatchString(fl.Field().String())
		})
	})
	return validate
}

// checkDistro validates one record's fields and its references into the
// vocabulary. All problems are reported, not just the first.
func checkDistro(d *Distro, vocab *Vocabulary) []error {
	var errs []error
	label := d.ID
	if label == "" {
		label = d.Name
	}

	if err := recordValidator().Struct(d); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				errs = append(errs, fmt.Errorf("%w: distro %q: field %s failed %q",
					ErrInvalidRecord, label, fe.Namespace(), fe.Tag()))
			}
		} else {
			errs = append(errs, fmt.Errorf("%w: distro %q: %v", ErrInvalidRecord, label, err))
		}
	}

	for _, tag := range d.Categories {
		if !vocab.HasCategory(tag) {
			errs = append(errs, fmt.Errorf("%w: distro %q: %q", ErrUnknownCategory, label, tag))
		}
	}

	for _, axis := range Axes {
		for _, id := range d.Attribute(axis) {
			opt, ok := vocab.Option(axis, id)
			if !ok {
				errs = append(errs, fmt.Errorf("%w: distro %q: %s %q", ErrUnknownOption, label, axis, id))
				continue
			}
			if opt.ID == AnyOption {
				errs = append(errs, fmt.Errorf("%w: distro %q: %s cannot list %q",
					ErrUnknownOption, label, axis, AnyOption))
			}
		}
	}
	return errs
}
