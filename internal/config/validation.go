package config

import (
	"errors"
	"path/filepath"
	"strings"

	ferrors "git.home.luguber.info/inful/hidldoc/internal/foundation/errors"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	errAbsoluteRoot = errors.New("must start with /")
	errBareFileName = errors.New("must be a file name without directories")
)

// Validate checks a configuration with defaults applied.
func Validate(cfg *Config) error {
	err := validation.ValidateStruct(cfg,
		validation.Field(&cfg.Output),
		validation.Field(&cfg.TOC),
		validation.Field(&cfg.Index),
	)
	if err != nil {
		return ferrors.ValidationError("invalid configuration").
			WithCause(err).
			Build()
	}
	return nil
}

// Validate implements validation.Validatable.
func (o OutputConfig) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.Directory, validation.Required),
	)
}

// Validate implements validation.Validatable.
func (t TOCConfig) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Root, validation.Required, validation.By(absoluteRoot)),
		validation.Field(&t.File, validation.Required, validation.By(bareFileName)),
	)
}

// Validate implements validation.Validatable.
func (i IndexConfig) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Title, validation.Required),
	)
}

func absoluteRoot(value any) error {
	s, _ := value.(string)
	if !strings.HasPrefix(s, "/") {
		return errAbsoluteRoot
	}
	return nil
}

func bareFileName(value any) error {
	s, _ := value.(string)
	if s != filepath.Base(s) || s == "." || s == ".." {
		return errBareFileName
	}
	return nil
}
