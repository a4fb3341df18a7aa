// Package lastfm provides a read-only client for the Last.fm API 2.0.
//
// # Overview
//
// This package implements a small Go client for the public, unauthenticated
// side of the Last.fm API, focusing on user library data such as top
// artists. It provides context support, structured API errors, and JSON
// responses delivered as dynamic documents so callers can validate the
// shape themselves.
//
// # Installation
//
//	go get github.com/jfmyers9/topfm/pkg/lastfm
//
// # Quick Start
//
// Create a client with your API key:
//
//	import "github.com/jfmyers9/topfm/pkg/lastfm"
//
//	client, err := lastfm.NewClient(lastfm.Config{
//	    APIKey: "your-api-key",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Fetching Top Artists
//
// Read methods require no session or signature, only the API key:
//
//	doc, err := client.User().TopArtists(ctx, lastfm.TopArtistsParams{
//	    User:   "someuser",
//	    Period: "7day",
//	    Limit:  5,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// The returned document is the decoded JSON response. Note that the API
// represents counts as JSON strings, not numbers.
//
// # Error Handling
//
// Failures reported by the service carry the Last.fm error code:
//
//	doc, err := client.User().TopArtists(ctx, params)
//	if err != nil {
//	    var lastfmErr *lastfm.Error
//	    if errors.As(err, &lastfmErr) {
//	        if lastfmErr.Code == lastfm.ErrCodeInvalidAPIKey {
//	            // Bad credentials
//	        }
//	    }
//	}
//
// The client never retries on its own; retry policy belongs to the caller.
//
// # Context Support
//
// All API methods accept a context.Context for cancellation and timeouts:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
//	defer cancel()
//
//	doc, err := client.User().TopArtists(ctx, params)
//
// # Configuration
//
// The client can be configured with custom HTTP clients, base URLs (for
// testing), and optional loggers:
//
//	client, err := lastfm.NewClient(lastfm.Config{
//	    APIKey:     "your-api-key",
//	    HTTPClient: &http.Client{Timeout: 30 * time.Second},
//	    Logger:     myLogger, // Implements lastfm.Logger interface
//	})
//
// # API Coverage
//
// Currently implemented:
//   - User library (user.gettopartists)
//
// # Last.fm API Documentation
//
// For more information about the Last.fm API:
// https://www.last.fm/api
package lastfm
