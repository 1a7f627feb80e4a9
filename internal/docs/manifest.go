package docs

import (
	"fmt"

	derrors "git.home.luguber.info/inful/hidldoc/internal/docs/errors"
	ferrors "git.home.luguber.info/inful/hidldoc/internal/foundation/errors"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Manifest is the hand-off file written by the parser stage: one descriptor
// per parsed documentation source, in parse order.
//
//	documents:
//	  - name: INfc
//	    package: android.hardware.nfc
//	    version: 1.0
//	    kind: interface
//	    description: Controls the NFC chip.
type Manifest struct {
	Documents []Document `yaml:"documents"`
}

// LoadManifest reads and validates a manifest file.
func LoadManifest(fs afero.Fs, path string) (*Manifest, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, ferrors.DocsError("read document manifest").
			WithCause(fmt.Errorf("%w: %w", derrors.ErrManifestRead, err)).
			WithContext("path", path).
			Build()
	}
	m, err := ParseManifest(data)
	if err != nil {
		return nil, ferrors.DocsError("load document manifest").
			WithCause(err).
			WithContext("path", path).
			Build()
	}
	return m, nil
}

// ParseManifest decodes manifest YAML, normalizes kinds and validates every
// descriptor. Order is preserved.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %w", derrors.ErrManifestParse, err)
	}
	for i := range m.Documents {
		doc := &m.Documents[i]
		doc.Kind = ParseKind(string(doc.Kind))
		if err := doc.Validate(); err != nil {
			return nil, fmt.Errorf("%w: documents[%d]: %w", derrors.ErrInvalidDocument, i, err)
		}
	}
	return &m, nil
}
