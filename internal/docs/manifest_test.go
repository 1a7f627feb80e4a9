package docs

import (
	"testing"

	derrors "git.home.luguber.info/inful/hidldoc/internal/docs/errors"
	ferrors "git.home.luguber.info/inful/hidldoc/internal/foundation/errors"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleManifest = `documents:
  - name: INfc
    package: android.hardware.nfc
    version: 1.1
    kind: interface
    description: Controls the NFC chip. Details follow.
  - name: types
    package: android.hardware.nfc
    version: "1.0"
    kind: Types
  - name: INfc
    package: android.hardware.nfc
    version: 1.0
    kind: INTERFACE
`

func TestParseManifest(t *testing.T) {
	m, err := ParseManifest([]byte(sampleManifest))
	require.NoError(t, err)
	require.Len(t, m.Documents, 3)

	assert.Equal(t, Document{
		Name:           "INfc",
		PackageName:    "android.hardware.nfc",
		PackageVersion: 1.1,
		Kind:           KindInterface,
		Description:    "Controls the NFC chip. Details follow.",
	}, m.Documents[0])
	assert.Equal(t, KindOther, m.Documents[1].Kind)
	assert.Equal(t, Version(1.0), m.Documents[1].PackageVersion)
	assert.Equal(t, KindInterface, m.Documents[2].Kind)
}

func TestParseManifest_Errors(t *testing.T) {
	_, err := ParseManifest([]byte("documents: [\n"))
	require.ErrorIs(t, err, derrors.ErrManifestParse)

	_, err = ParseManifest([]byte("documents:\n  - name: INfc\n    version: 1.0\n"))
	require.ErrorIs(t, err, derrors.ErrInvalidDocument)
	assert.Contains(t, err.Error(), "documents[0]")

	_, err = ParseManifest([]byte("documents:\n  - name: INfc\n    package: a.b\n    version: x\n"))
	require.ErrorIs(t, err, derrors.ErrInvalidVersion)

	_, err = ParseManifest([]byte("documents:\n  - name: INfc\n    package: a.b\n    version: NaN\n"))
	require.ErrorIs(t, err, derrors.ErrInvalidVersion)
}

func TestLoadManifest(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/work/documents.yaml", []byte(sampleManifest), 0o644))

	m, err := LoadManifest(fs, "/work/documents.yaml")
	require.NoError(t, err)
	assert.Len(t, m.Documents, 3)

	_, err = LoadManifest(fs, "/work/missing.yaml")
	require.ErrorIs(t, err, derrors.ErrManifestRead)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryDocs))
	classified, ok := ferrors.AsClassified(err)
	require.True(t, ok)
	path, _ := classified.Context().GetString("path")
	assert.Equal(t, "/work/missing.yaml", path)
}
