// Package pipeline orchestrates extraction runs: configuration validation,
// the optional pre-extraction reasoning hook, and parallel per-language
// extraction over a shared store snapshot.
package pipeline
