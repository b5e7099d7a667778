// Package settings persists user customizations as a single versioned JSON
// document on local disk.
//
// The document holds per-container overrides plus the global sort, UI, disk
// and favorites preferences. Missing fields are filled with defaults once at
// the load boundary; writes are atomic (temp file + rename) and serialized
// with a mutex, so concurrent requests see last-write-wins semantics without
// corruption.
package settings
