// Package source provides pull-mode metric sources for the dashboard: a
// seeded synthetic generator and a sampler for the local machine.
package source
