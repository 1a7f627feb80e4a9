package docs

import (
	"path/filepath"
	"strings"
)

// PathResolver maps a document to the absolute location of its generated page.
type PathResolver func(doc Document, outputRoot string) string

// ResolveOutputPath places a document at
// <outputRoot>/<package with dots as directories>/<version>/<name>.html.
func ResolveOutputPath(doc Document, outputRoot string) string {
	pkgDir := filepath.FromSlash(strings.ReplaceAll(doc.PackageName, ".", "/"))
	return filepath.Join(outputRoot, pkgDir, doc.PackageVersion.String(), doc.Name+".html")
}
