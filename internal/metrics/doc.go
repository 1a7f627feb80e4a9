// Package metrics records index generation metrics.
//
// Components receive a Recorder and default to NoopRecorder, so nothing in
// the index path checks for nil:
//
//	w := index.NewWriter(index.Options{Recorder: metrics.NoopRecorder{}})
//
// The CLI swaps in a PrometheusRecorder when a textfile destination is
// configured and exports the registry with WriteTextfile once the run
// finishes; index generation is a batch job, so metrics go to the node
// exporter textfile collector rather than an HTTP endpoint.
package metrics
