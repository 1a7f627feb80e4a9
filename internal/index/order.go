package index

import (
	"cmp"
	"slices"
)

// Compare orders entries by full name (byte order, case-sensitive) and, for
// equal names, by package version descending so the newest version comes first.
func Compare(a, b Entry) int {
	if c := cmp.Compare(a.FullName, b.FullName); c != 0 {
		return c
	}
	return cmp.Compare(b.PackageVersion, a.PackageVersion)
}

// Sort sorts entries in place by Compare. Entries that compare equal keep
// their input order.
func Sort(entries []Entry) {
	slices.SortStableFunc(entries, Compare)
}
