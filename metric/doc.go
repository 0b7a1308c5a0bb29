// Package metric defines the Prometheus instruments the extraction engine
// records into. Instruments are created unregistered so tests and embedders
// can choose their own registry.
package metric
