// Package index builds the documentation index of a hidl-doc run: an HTML
// table of every documented type and a YAML table of contents grouped by
// package.
//
// A run creates one Collector, appends every parsed document to it, and hands
// it to a Writer. The Writer sorts the entries once (full name ascending,
// newest version first, stable otherwise), writes index.html and then
// _book.yaml. In lint mode both outputs are rendered but nothing is written.
package index
