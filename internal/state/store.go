package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/shutter/internal/pexels"
)

// Phase is the result area's presentation state.
type Phase int

const (
	// PhaseIdle means no search has been triggered yet.
	PhaseIdle Phase = iota
	// PhaseLoading means the latest issued search has not completed.
	PhaseLoading
	// PhaseError covers both failed and empty searches.
	PhaseError
	// PhaseLoaded means Results holds the latest non-empty result set.
	PhaseLoaded
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseError:
		return "error"
	case PhaseLoaded:
		return "loaded"
	default:
		return "idle"
	}
}

// Snapshot represents the latest search state available to the UI.
type Snapshot struct {
	Query       string // query of the latest issued search
	PageSize    int    // per_page of the latest issued search
	Phase       Phase
	Results     []pexels.Photo
	Message     string // user-facing error or empty-result message
	LastError   error  // diagnostic cause of the last failure
	LastUpdated time.Time
}

// Store coordinates search lifecycle updates. Each Begin issues a token;
// only the completion carrying the most recently issued token is applied.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
	issued   uint64
}

// Begin records a new search and moves to PhaseLoading. Previous results are
// kept for detail lookups until the search completes.
func (s *Store) Begin(query string, pageSize int) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.issued++
	s.snapshot.Query = query
	s.snapshot.PageSize = pageSize
	s.snapshot.Phase = PhaseLoading
	s.snapshot.Message = ""
	s.snapshot.LastError = nil
	s.snapshot.LastUpdated = time.Now()
	return s.issued
}

// Complete applies the outcome of the search identified by token. It
// returns false and changes nothing when a newer search has been issued.
func (s *Store) Complete(token uint64, res pexels.Result) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token == 0 || token != s.issued || s.snapshot.Phase != PhaseLoading {
		return false
	}

	s.snapshot.LastUpdated = time.Now()
	if res.Kind == pexels.KindPhotos && len(res.Photos) > 0 {
		s.snapshot.Phase = PhaseLoaded
		s.snapshot.Results = clonePhotos(res.Photos)
		s.snapshot.Message = ""
		s.snapshot.LastError = nil
		return true
	}

	s.snapshot.Phase = PhaseError
	s.snapshot.Results = nil
	s.snapshot.Message = res.Message
	if s.snapshot.Message == "" {
		s.snapshot.Message = pexels.GenericErrorMessage
	}
	s.snapshot.LastError = res.Err
	return true
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Results = clonePhotos(s.snapshot.Results)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func clonePhotos(photos []pexels.Photo) []pexels.Photo {
	if len(photos) == 0 {
		return nil
	}
	dup := make([]pexels.Photo, len(photos))
	copy(dup, photos)
	return dup
}
