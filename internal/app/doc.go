// Package app is the composition root for shutter.
//
// Run loads the TOML config (with PEXELS_API_KEY and SHUTTER_API_URL
// overrides), opens the log file, reads the column preference, and wires
// the pieces together:
//
//	config.Load ─> logging.OpenFile ─> pexels.NewClient
//	                                        │
//	prefs.Open ──────────────────> search.New (debounce + state.Store)
//	                                        │
//	                                     ui.Run (blocks)
//
// Only boot errors are returned: a missing API key, an unreadable config or
// log file. Search failures surface in the UI as the Error phase and are
// logged; the program keeps running.
//
// The controller is closed when the UI exits so no debounced search fires
// after teardown.
package app
