package index

import (
	"fmt"
	"strings"
)

// DefaultTOCRoot is the site path the table of contents links below.
const DefaultTOCRoot = "/reference/hidl"

// RenderTOC renders package groups as the _book.yaml table of contents:
// an "Index" entry pointing at root, then one section per package with a
// "<base name> @<version>" leaf per entry.
func RenderTOC(groups []PackageGroup, root string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Generated by hidl-doc\ntoc:\n- title: Index\n  path: %s\n", root)
	for _, g := range groups {
		fmt.Fprintf(&sb, "- title: %s\n  section:\n", g.Name)
		for _, e := range g.Entries {
			fmt.Fprintf(&sb, "  - title: %s @%s\n", e.BaseName, e.PackageVersion)
			fmt.Fprintf(&sb, "    path: %s\n", TOCPath(root, e.RelativePath))
		}
	}
	return sb.String()
}

// TOCPath joins the TOC root and an entry path with exactly one slash.
func TOCPath(root, relativePath string) string {
	return strings.TrimSuffix(root, "/") + "/" + strings.TrimPrefix(relativePath, "/")
}
