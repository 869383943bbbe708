// Package settings exposes the immutable settings record that drives the
// client application: API base URL, version, environment flags, offline-mode
// parameters, default language, feature flags, and per-operation API
// timeouts. The record is resolved once per process from layered sources
// (CLI overrides > YAML file > environment variables > defaults), derives its
// API base URL from the runtime host name, and is served as defensive copies
// for the remainder of the process lifetime.
package settings
