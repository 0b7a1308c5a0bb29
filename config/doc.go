// Package config loads and validates extraction settings from JSON or YAML
// files. Zero-valued fields fall back to the defaults in Default, so partial
// files stay valid as new settings are added.
package config
