// Package metrics records navinject run metrics.
//
// Components receive a Recorder through dependency injection and default to
// NoopRecorder, so no call site needs a nil check:
//
//	injector := inject.NewInjector(cfg).WithRecorder(metrics.NoopRecorder{})
//
// PrometheusRecorder collects the same events on a private registry. A batch
// tool has nothing to scrape, so the registry is dumped in the text
// exposition format with WriteTextfile, for the node exporter's textfile
// collector or a CI artifact.
package metrics
