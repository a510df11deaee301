// Package config defines the kamodoctl settings file format and loading.
//
// Settings are read once at startup from a JSON file (default
// kamodoctl.json). Every field is optional; missing fields fall back to
// the documented defaults, and unknown fields are ignored. An absent or
// empty file yields the full default configuration. The configuration is
// immutable for the duration of a run.
package config
