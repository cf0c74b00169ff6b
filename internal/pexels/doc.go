// Package pexels provides an HTTP client for the Pexels photo search API.
//
// # Overview
//
// The client issues one GET per search against a fixed endpoint with the
// query and per_page parameters and the static API key in the Authorization
// header. Responses are shaped into a Result:
//
//   - KindPhotos: at least one match, in the order the API returned them
//   - KindEmpty: zero matches, with a query-specific message
//   - KindFailed: transport, status or decode failure, with a generic message
//
// Failures are logged through slog for diagnostics and never retried. The
// underlying http.Client carries no timeout; the request context is the only
// cancellation path.
//
// # Files
//
//   - client.go: Searcher interface, Client, Search and FetchImage
//   - download.go: saving an original asset to disk
//   - types.go: Photo, SearchResponse and Result
//
// # Usage
//
//	client, err := pexels.NewClient(pexels.DefaultEndpoint, apiKey)
//	if err != nil {
//		return err
//	}
//	res := client.Search(ctx, "mountains", 3)
//	switch res.Kind {
//	case pexels.KindPhotos:
//		render(res.Photos)
//	default:
//		show(res.Message)
//	}
package pexels
