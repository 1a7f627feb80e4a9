package index

import (
	"maps"
	"slices"
)

// PackageGroup is the run of entries that share a package.
type PackageGroup struct {
	Name    string
	Entries []Entry
}

// GroupByPackage buckets entries by package name and returns the groups
// sorted by name. Within a group, entries keep their order in entries.
func GroupByPackage(entries []Entry) []PackageGroup {
	buckets := make(map[string][]Entry)
	for _, e := range entries {
		buckets[e.PackageName] = append(buckets[e.PackageName], e)
	}
	groups := make([]PackageGroup, 0, len(buckets))
	for _, name := range slices.Sorted(maps.Keys(buckets)) {
		groups = append(groups, PackageGroup{Name: name, Entries: buckets[name]})
	}
	return groups
}
