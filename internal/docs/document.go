package docs

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	derrors "git.home.luguber.info/inful/hidldoc/internal/docs/errors"
	"git.home.luguber.info/inful/hidldoc/internal/foundation/normalization"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

// Kind distinguishes interface documents, which carry a description, from
// every other parsed file (types files and the like).
type Kind string

const (
	KindInterface Kind = "interface"
	KindOther     Kind = "other"
)

var kindNormalizer = normalization.NewNormalizer(map[string]Kind{
	"interface": KindInterface,
	"other":     KindOther,
	"types":     KindOther,
}, KindOther)

// ParseKind maps manifest spellings onto a Kind; anything unknown is KindOther.
func ParseKind(raw string) Kind {
	return kindNormalizer.Normalize(raw)
}

// Version is a package version such as 1.0. It is a 32-bit float like the
// versions printed by the parser, so 1.10 and 1.1 are the same version.
type Version float32

// ParseVersion parses a dotted package version.
func ParseVersion(raw string) (Version, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 32)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %q", derrors.ErrInvalidVersion, raw)
	}
	return Version(f), nil
}

// String always prints a fractional part: 1 renders as "1.0".
func (v Version) String() string {
	s := strconv.FormatFloat(float64(v), 'f', -1, 32)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// UnmarshalYAML accepts both `version: 1.0` and `version: "1.0"`.
func (v *Version) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: line %d: expected a scalar", derrors.ErrInvalidVersion, node.Line)
	}
	parsed, err := ParseVersion(node.Value)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// Document is a parsed documentation source as handed over by the parser stage.
type Document struct {
	Name           string  `yaml:"name"`
	PackageName    string  `yaml:"package"`
	PackageVersion Version `yaml:"version"`
	Kind           Kind    `yaml:"kind"`
	Description    string  `yaml:"description,omitempty"`
}

// FullName is "<package>.<name>".
func (d Document) FullName() string {
	return d.PackageName + "." + d.Name
}

// SummaryProvider returns the summary capability for the document's kind.
func (d Document) SummaryProvider() SummaryProvider {
	if d.Kind == KindInterface {
		return Described{Description: d.Description}
	}
	return Undescribed{}
}

// Validate checks the fields the index needs.
func (d Document) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Name, validation.Required),
		validation.Field(&d.PackageName, validation.Required),
	)
}
