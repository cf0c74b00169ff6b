package pexels

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(t *testing.T, endpoint string) *Client {
	t.Helper()
	c, err := NewClient(endpoint, "secret-key", WithLogger(quietLogger()))
	require.NoError(t, err)
	return c
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestParseEndpoint_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseEndpoint("")
	require.NoError(t, err)
	require.Equal(t, DefaultEndpoint, u.String())

	u, err = parseEndpoint("api.example.com/v1/search?x=1#frag")
	require.NoError(t, err)
	require.Equal(t, "https", u.Scheme)
	require.Equal(t, "/v1/search", u.Path)
	require.Empty(t, u.RawQuery)
	require.Empty(t, u.Fragment)
}

func TestSearch_EncodesQueryAndAuthorization(t *testing.T) {
	t.Parallel()

	var gotQuery url.Values
	var gotAuth, gotUserAgent, gotPath string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		gotAuth = r.Header.Get("Authorization")
		gotUserAgent = r.Header.Get("User-Agent")
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(SearchResponse{Photos: []Photo{
			{ID: 3, Photographer: "C"},
			{ID: 1, Photographer: "A"},
			{ID: 2, Photographer: "B"},
		}})
	}))
	t.Cleanup(server.Close)

	c := newTestClient(t, server.URL+"/v1/search")
	res := c.Search(context.Background(), "red fox", 4)

	require.Equal(t, KindPhotos, res.Kind, "err=%v", res.Err)
	require.Equal(t, "/v1/search", gotPath)
	require.Equal(t, "red fox", gotQuery.Get("query"))
	require.Equal(t, "4", gotQuery.Get("per_page"))
	require.Equal(t, "secret-key", gotAuth)
	require.Regexp(t, `^shutter/`, gotUserAgent)

	var ids []int64
	for _, p := range res.Photos {
		ids = append(ids, p.ID)
	}
	require.Equal(t, []int64{3, 1, 2}, ids)
}

func TestSearch_DecodesPhotoFields(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"photos":[{"id":42,"width":4000,"height":3000,
			"photographer":"Ann","photographer_url":"https://www.pexels.com/@ann",
			"alt":"A fox","src":{"medium":"https://img/m.jpg","original":"https://img/o.jpg"}}]}`))
	}))
	t.Cleanup(server.Close)

	res := newTestClient(t, server.URL).Search(context.Background(), "fox", 2)
	require.Equal(t, KindPhotos, res.Kind)
	require.Len(t, res.Photos, 1)

	require.Equal(t, Photo{
		ID: 42, Width: 4000, Height: 3000,
		Photographer: "Ann", PhotographerURL: "https://www.pexels.com/@ann",
		Alt: "A fox",
		Src: PhotoSrc{Medium: "https://img/m.jpg", Original: "https://img/o.jpg"},
	}, res.Photos[0])
}

func TestSearch_EmptyResultUsesQueryMessage(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"photos":[]}`))
	}))
	t.Cleanup(server.Close)

	res := newTestClient(t, server.URL).Search(context.Background(), "zzqx", 3)
	require.Equal(t, KindEmpty, res.Kind)
	require.Equal(t, `No photos found for "zzqx".`, res.Message)
	require.Empty(t, res.Photos)
}

func TestSearch_FailuresUseGenericMessage(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("query") {
		case "badjson":
			_, _ = w.Write([]byte("{not-json"))
		default:
			http.Error(w, "nope", http.StatusUnauthorized)
		}
	}))
	t.Cleanup(server.Close)

	c := newTestClient(t, server.URL)

	res := c.Search(context.Background(), "badjson", 3)
	require.Equal(t, KindFailed, res.Kind)
	require.Equal(t, GenericErrorMessage, res.Message)
	require.ErrorContains(t, res.Err, "decode response")

	res = c.Search(context.Background(), "denied", 3)
	require.Equal(t, KindFailed, res.Kind)
	require.ErrorContains(t, res.Err, "returned status 401")
}

func TestSearch_TransportFailure(t *testing.T) {
	c := newTestClient(t, "http://127.0.0.1:1/v1/search")
	res := c.Search(context.Background(), "cat", 3)
	require.Equal(t, KindFailed, res.Kind)
	require.Equal(t, GenericErrorMessage, res.Message)
	require.ErrorContains(t, res.Err, "execute request")
}

func TestSearch_EmptyQueryFailsWithoutRequest(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	t.Cleanup(server.Close)

	res := newTestClient(t, server.URL).Search(context.Background(), "   ", 3)
	require.Equal(t, KindFailed, res.Kind)
	require.Zero(t, calls)
}

func TestFetchImage_DecodesPNG(t *testing.T) {
	t.Parallel()

	body := pngBytes(t, 4, 2)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(body)
	}))
	t.Cleanup(server.Close)

	got, err := newTestClient(t, server.URL).FetchImage(context.Background(), server.URL+"/m.png")
	require.NoError(t, err)
	require.Equal(t, 4, got.Bounds().Dx())
	require.Equal(t, 2, got.Bounds().Dy())
}

func TestAssetRequestsOmitAPIKey(t *testing.T) {
	t.Parallel()

	body := pngBytes(t, 2, 2)
	var mu sync.Mutex
	var seen []string
	assets := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		seen = append(seen, r.Header.Get("Authorization"))
		mu.Unlock()
		_, _ = w.Write(body)
	}))
	t.Cleanup(assets.Close)

	c := newTestClient(t, "https://api.example.com/v1/search")

	_, err := c.FetchImage(context.Background(), assets.URL+"/m.png")
	require.NoError(t, err)

	photo := Photo{ID: 9, Src: PhotoSrc{Original: assets.URL + "/o.png"}}
	_, err = c.Download(context.Background(), photo, t.TempDir())
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, []string{"", ""}, seen)
}

func TestDownload_WritesPhotoFile(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("jpeg-bytes"))
	}))
	t.Cleanup(server.Close)

	dir := filepath.Join(t.TempDir(), "downloads")
	photo := Photo{ID: 7, Src: PhotoSrc{Original: server.URL + "/o.jpg"}}

	path, err := newTestClient(t, server.URL).Download(context.Background(), photo, dir)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "photo_7.jpg"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "jpeg-bytes", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o644), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "only the photo should remain")
}

func TestDownload_MissingOriginalFails(t *testing.T) {
	c := newTestClient(t, "")
	_, err := c.Download(context.Background(), Photo{ID: 1}, t.TempDir())
	require.Error(t, err)
}
