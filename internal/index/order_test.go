package index

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func e(full string, v float32, tag string) Entry {
	return Entry{FullName: full, PackageVersion: docsVersion(v), Summary: tag}
}

func names(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, en := range entries {
		out[i] = en.FullName + "@" + en.PackageVersion.String() + "#" + en.Summary
	}
	return out
}

func TestSort_VersionTieBreakNewestFirst(t *testing.T) {
	entries := []Entry{e("x.Y", 1.0, ""), e("x.Y", 1.1, "")}
	Sort(entries)
	assert.Equal(t, []string{"x.Y@1.1#", "x.Y@1.0#"}, names(entries))
}

func TestSort_NameBeforeVersion(t *testing.T) {
	entries := []Entry{e("a.C", 1.0, ""), e("a.B", 2.0, "")}
	Sort(entries)
	assert.Equal(t, []string{"a.B@2.0#", "a.C@1.0#"}, names(entries))
}

func TestSort_CaseSensitiveByteOrder(t *testing.T) {
	entries := []Entry{e("a.b", 1, ""), e("a.B", 1, ""), e("a.Z", 1, ""), e("a.a", 1, "")}
	Sort(entries)
	assert.Equal(t, []string{"a.B@1.0#", "a.Z@1.0#", "a.a@1.0#", "a.b@1.0#"}, names(entries))
}

func TestSort_StableForEqualKeys(t *testing.T) {
	entries := []Entry{
		e("p.I", 1.0, "first"),
		e("p.A", 1.0, ""),
		e("p.I", 1.0, "second"),
		e("p.I", 2.0, ""),
		e("p.I", 1.0, "third"),
	}
	Sort(entries)
	assert.Equal(t, []string{
		"p.A@1.0#",
		"p.I@2.0#",
		"p.I@1.0#first",
		"p.I@1.0#second",
		"p.I@1.0#third",
	}, names(entries))
}

func TestSort_Idempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	pool := []string{"a.B", "a.C", "b.A", "B.a", "a.B"}
	entries := make([]Entry, 0, 50)
	for i := range 50 {
		entries = append(entries, e(pool[rng.Intn(len(pool))], float32(rng.Intn(3))+0.5, string(rune('a'+i%26))))
	}

	Sort(entries)
	once := slices.Clone(entries)
	Sort(entries)
	assert.Equal(t, once, entries)
	assert.True(t, slices.IsSortedFunc(entries, Compare))
}

func TestCompare(t *testing.T) {
	assert.Equal(t, 0, Compare(e("a.B", 1, "x"), e("a.B", 1, "y")))
	assert.Negative(t, Compare(e("a.B", 2, ""), e("a.B", 1, "")))
	assert.Positive(t, Compare(e("a.C", 9, ""), e("a.B", 1, "")))
}
