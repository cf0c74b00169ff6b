// Package state holds the search state shared by the search controller and
// the UI.
//
// # Overview
//
// The Store owns one Snapshot describing the result area:
//
//	Idle ──Begin──▶ Loading ──Complete(photos)──▶ Loaded
//	                   │
//	                   └──Complete(empty|failed)──▶ Error
//
//	Loaded|Error ──Begin──▶ Loading
//
// Searches are never cancelled once issued, so two may be in flight at the
// same time. Begin hands out a monotonically increasing token and Complete
// only applies the outcome whose token is the most recently issued one.
// A slow, superseded request therefore cannot overwrite newer results.
//
// # Concurrency Model
//
// The search goroutine writes through Begin/Complete and the UI reads through
// Snapshot. A sync.RWMutex guards the snapshot and Snapshot returns copies,
// so callers may keep and mutate what they receive.
//
// # Detail Lookup
//
// Find resolves a detail route id against the last fetched results. It does
// not fetch anything: opening a detail route with no results in memory
// always misses.
package state
