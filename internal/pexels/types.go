package pexels

import (
	"fmt"
	"strconv"
	"strings"
)

// SearchResponse mirrors the payload returned by the search endpoint.
type SearchResponse struct {
	TotalResults int     `json:"total_results"`
	Page         int     `json:"page"`
	PerPage      int     `json:"per_page"`
	Photos       []Photo `json:"photos"`
}

// Photo is one search result. Identity is ID.
type Photo struct {
	ID              int64    `json:"id"`
	Width           int      `json:"width"`
	Height          int      `json:"height"`
	Photographer    string   `json:"photographer"`
	PhotographerURL string   `json:"photographer_url,omitempty"`
	Alt             string   `json:"alt"`
	Src             PhotoSrc `json:"src"`
}

// PhotoSrc holds the image URLs for a photo.
type PhotoSrc struct {
	Medium   string `json:"medium"`
	Original string `json:"original"`
}

// IDString returns the route form of the photo id.
func (p Photo) IDString() string {
	return strconv.FormatInt(p.ID, 10)
}

// PhotographerLabel returns the photographer name or "Unknown".
func (p Photo) PhotographerLabel() string {
	if name := strings.TrimSpace(p.Photographer); name != "" {
		return name
	}
	return "Unknown"
}

// Resolution formats the photo dimensions as "W x H".
func (p Photo) Resolution() string {
	return fmt.Sprintf("%d x %d", p.Width, p.Height)
}

// DownloadName is the file name used when saving the original asset.
func (p Photo) DownloadName() string {
	return fmt.Sprintf("photo_%d.jpg", p.ID)
}

// Kind classifies a search outcome.
type Kind int

const (
	// KindFailed covers transport, status and decode failures.
	KindFailed Kind = iota
	// KindEmpty is a successful search with zero matches.
	KindEmpty
	// KindPhotos is a successful search with at least one match.
	KindPhotos
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindPhotos:
		return "photos"
	default:
		return "failed"
	}
}

// Result is the shaped outcome of one search call.
type Result struct {
	Kind    Kind
	Photos  []Photo
	Message string // user-facing; empty for KindPhotos
	Err     error  // diagnostic cause for KindFailed
}

// GenericErrorMessage is shown for any transport or decode failure.
const GenericErrorMessage = "An error occurred while fetching photos. Please try again."

// NoPhotosMessage returns the message shown when a query matched nothing.
func NoPhotosMessage(query string) string {
	return `No photos found for "` + query + `".`
}
