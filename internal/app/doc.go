// Package app contains the use-case layer between the HTTP handlers and the
// adapters: service listings, settings updates, container control and stats
// assembly for the dashboard pages.
package app
