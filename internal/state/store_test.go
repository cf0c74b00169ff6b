package state

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/five82/shutter/internal/pexels"
)

func photos(ids ...int64) []pexels.Photo {
	out := make([]pexels.Photo, len(ids))
	for i, id := range ids {
		out[i] = pexels.Photo{ID: id}
	}
	return out
}

func ids(ps []pexels.Photo) []int64 {
	out := make([]int64, len(ps))
	for i, p := range ps {
		out[i] = p.ID
	}
	return out
}

func TestStore_StartsIdle(t *testing.T) {
	var s Store
	snap := s.Snapshot()
	require.Equal(t, PhaseIdle, snap.Phase)
	require.Nil(t, snap.Results)
	require.Empty(t, snap.Message)
}

func TestStore_BeginMovesToLoading(t *testing.T) {
	var s Store
	before := time.Now()
	tok := s.Begin("cat", 4)

	snap := s.Snapshot()
	require.Equal(t, uint64(1), tok)
	require.Equal(t, PhaseLoading, snap.Phase)
	require.Equal(t, "cat", snap.Query)
	require.Equal(t, 4, snap.PageSize)
	require.False(t, snap.LastUpdated.Before(before))
}

func TestStore_CompleteWithPhotosLoadsInOrder(t *testing.T) {
	var s Store
	tok := s.Begin("cat", 3)

	require.True(t, s.Complete(tok, pexels.Result{Kind: pexels.KindPhotos, Photos: photos(9, 4, 7)}))
	snap := s.Snapshot()
	require.Equal(t, PhaseLoaded, snap.Phase)
	require.Equal(t, []int64{9, 4, 7}, ids(snap.Results))

	// Returned snapshot should be independent of the stored one.
	snap.Results[0].ID = 999
	require.Equal(t, int64(9), s.Snapshot().Results[0].ID)
}

func TestStore_CompleteEmptyIsErrorWithMessage(t *testing.T) {
	var s Store
	tok := s.Begin("cat", 3)
	s.Complete(tok, pexels.Result{Kind: pexels.KindPhotos, Photos: photos(1)})

	tok = s.Begin("zzqx", 3)
	s.Complete(tok, pexels.Result{Kind: pexels.KindEmpty, Message: pexels.NoPhotosMessage("zzqx")})

	snap := s.Snapshot()
	require.Equal(t, PhaseError, snap.Phase)
	require.Equal(t, `No photos found for "zzqx".`, snap.Message)
	require.Nil(t, snap.Results)
}

func TestStore_CompleteFailureClonesError(t *testing.T) {
	var s Store
	tok := s.Begin("cat", 3)
	origErr := errors.New("boom")
	s.Complete(tok, pexels.Result{Kind: pexels.KindFailed, Message: pexels.GenericErrorMessage, Err: origErr})

	snap := s.Snapshot()
	require.Equal(t, PhaseError, snap.Phase)
	require.Equal(t, pexels.GenericErrorMessage, snap.Message)
	require.EqualError(t, snap.LastError, "boom")
	require.NotSame(t, origErr, snap.LastError)
}

func TestStore_StaleCompletionIsDiscarded(t *testing.T) {
	var s Store
	first := s.Begin("cat", 3)
	second := s.Begin("dog", 3)

	// The newer search finishes first, then the older one arrives late.
	require.True(t, s.Complete(second, pexels.Result{Kind: pexels.KindPhotos, Photos: photos(2, 22)}))
	require.False(t, s.Complete(first, pexels.Result{Kind: pexels.KindPhotos, Photos: photos(1, 11)}))

	snap := s.Snapshot()
	require.Equal(t, "dog", snap.Query)
	require.Equal(t, []int64{2, 22}, ids(snap.Results))
}

func TestStore_EarlyStaleCompletionKeepsLoading(t *testing.T) {
	var s Store
	first := s.Begin("cat", 3)
	second := s.Begin("dog", 3)

	require.False(t, s.Complete(first, pexels.Result{Kind: pexels.KindEmpty, Message: "x"}))
	require.Equal(t, PhaseLoading, s.Snapshot().Phase, "latest search is still in flight")

	s.Complete(second, pexels.Result{Kind: pexels.KindPhotos, Photos: photos(5)})
	require.Equal(t, PhaseLoaded, s.Snapshot().Phase)
}

func TestStore_DuplicateCompletionIgnored(t *testing.T) {
	var s Store
	tok := s.Begin("cat", 3)
	s.Complete(tok, pexels.Result{Kind: pexels.KindPhotos, Photos: photos(1)})
	require.False(t, s.Complete(tok, pexels.Result{Kind: pexels.KindEmpty, Message: "x"}))
	require.False(t, s.Complete(0, pexels.Result{Kind: pexels.KindEmpty}))
}

func TestPhaseString(t *testing.T) {
	cases := map[Phase]string{PhaseIdle: "idle", PhaseLoading: "loading", PhaseError: "error", PhaseLoaded: "loaded"}
	for p, want := range cases {
		require.Equal(t, want, p.String())
	}
}
