package state

import (
	"strconv"
	"strings"

	"github.com/five82/shutter/internal/pexels"
)

// Find resolves a detail route id against the in-memory result set by
// string comparison. It never fetches; an empty result set always misses.
func Find(id string, records []pexels.Photo) (pexels.Photo, bool) {
	id = strings.TrimSpace(id)
	for _, p := range records {
		if strconv.FormatInt(p.ID, 10) == id {
			return p, true
		}
	}
	return pexels.Photo{}, false
}
