package index

import "git.home.luguber.info/inful/hidldoc/internal/docs"

func docsVersion(v float32) docs.Version { return docs.Version(v) }

func entry(pkg, base string, v float32, rel string) Entry {
	return Entry{
		FullName:       pkg + "." + base,
		BaseName:       base,
		PackageName:    pkg,
		PackageVersion: docs.Version(v),
		RelativePath:   rel,
	}
}
