// Package config loads shutter's boot-time configuration.
//
// # Overview
//
// shutter needs two opaque values to talk to the photo API (the search
// endpoint and the static API key) plus a few local paths. They come from a
// TOML file, with environment variables taking precedence for the two API
// values so keys can be injected without touching disk.
//
// # Resolution Order
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/shutter/config.toml (default)
//  3. If the file doesn't exist, start from defaults
//  4. Apply PEXELS_API_KEY and SHUTTER_API_URL when set
//  5. Empty fields fall back to defaults; paths are ~-expanded
//
// # File Format
//
//	api_url      = "https://api.pexels.com/v1/search"
//	api_key      = "..."
//	download_dir = "~/Pictures/shutter"
//	log_file     = "~/.local/state/shutter/shutter.log"
//	log_level    = "info"
//
// # Errors
//
// A missing file is not an error. An unreadable or malformed file is, and
// Load wraps it with "open config", "read config" or "parse config". Validate
// reports a missing API key, which the app treats as fatal at startup.
package config
