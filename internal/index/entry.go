package index

import (
	"log/slog"
	"path/filepath"
	"slices"

	"git.home.luguber.info/inful/hidldoc/internal/docs"
	"git.home.luguber.info/inful/hidldoc/internal/logfields"
)

// Entry is the index metadata of one documented type.
type Entry struct {
	FullName       string // <package>.<base name>
	BaseName       string
	PackageName    string
	PackageVersion docs.Version
	Summary        string // plain text, possibly empty
	RelativePath   string // slash-separated, relative to the output root
}

// Collector accumulates entries for one run. It is not safe for concurrent
// use; the host pipeline appends documents one at a time.
type Collector struct {
	outputRoot string
	entries    []Entry
}

// NewCollector returns an empty collector for documents written below outputRoot.
func NewCollector(outputRoot string) *Collector {
	return &Collector{outputRoot: outputRoot}
}

// OutputRoot returns the directory entry paths are relative to.
func (c *Collector) OutputRoot() string { return c.outputRoot }

// Append derives an entry from doc and appends it. Duplicates are kept.
// A nil extract or resolve falls back to docs.ExtractSummary and
// docs.ResolveOutputPath.
func (c *Collector) Append(doc docs.Document, extract docs.SummaryExtractor, resolve docs.PathResolver) {
	if resolve == nil {
		resolve = docs.ResolveOutputPath
	}
	out := resolve(doc, c.outputRoot)
	rel, err := filepath.Rel(c.outputRoot, out)
	if err != nil {
		slog.Warn("Document output is not below the output root; linking absolute path",
			logfields.Document(doc.FullName()), logfields.Path(out), logfields.Error(err))
		rel = out
	}
	c.entries = append(c.entries, Entry{
		FullName:       doc.FullName(),
		BaseName:       doc.Name,
		PackageName:    doc.PackageName,
		PackageVersion: doc.PackageVersion,
		Summary:        doc.SummaryProvider().Summary(extract),
		RelativePath:   filepath.ToSlash(rel),
	})
}

// AppendAll appends every document in order with the default extractor and resolver.
func (c *Collector) AppendAll(documents []docs.Document) {
	for _, d := range documents {
		c.Append(d, nil, nil)
	}
}

// Len returns the number of collected entries.
func (c *Collector) Len() int { return len(c.entries) }

// Entries returns a copy of the entries in their current order.
func (c *Collector) Entries() []Entry { return slices.Clone(c.entries) }

// Sort orders the collected entries in place with Sort.
func (c *Collector) Sort() { Sort(c.entries) }
