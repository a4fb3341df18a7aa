package lastfm

import (
	"context"
	"fmt"
)

// UserService provides read access to user library data.
type UserService struct {
	client *Client
}

// TopArtists fetches a user's most played artists over a period.
//
// The result is the decoded JSON document, shaped as:
//
//	{"topartists": {"artist": [{"name": ..., "playcount": ..., ...}, ...], "@attr": {...}}}
//
// where name and playcount are JSON strings (the API represents counts
// as text). The document is returned untouched; callers own shape
// validation.
//
// Requires no authentication beyond the API key.
//
// Example:
//
//	doc, err := client.User().TopArtists(ctx, lastfm.TopArtistsParams{
//	    User:   "someuser",
//	    Period: "7day",
//	    Limit:  5,
//	})
//	if err != nil {
//	    log.Printf("Failed to fetch top artists: %v", err)
//	}
func (s *UserService) TopArtists(ctx context.Context, p TopArtistsParams) (interface{}, error) {
	if p.User == "" {
		return nil, fmt.Errorf("lastfm: user is required")
	}

	params := map[string]string{
		"user": p.User,
	}

	// Add optional parameters
	if p.Period != "" {
		params["period"] = p.Period
	}
	if p.Limit > 0 {
		params["limit"] = fmt.Sprintf("%d", p.Limit)
	}

	return s.client.call(ctx, "user.gettopartists", params)
}
