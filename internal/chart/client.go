package chart

import (
	"context"
	"fmt"

	"github.com/jfmyers9/topfm/pkg/lastfm"
)

// Client wraps the Last.fm API client for top artist queries
type Client struct {
	client *lastfm.Client
}

// New creates a new top artists client
func New(apiKey string) *Client {
	return NewWithLogger(apiKey, nil)
}

// NewWithLogger creates a new top artists client that logs API traffic
// through logger
func NewWithLogger(apiKey string, logger lastfm.Logger) *Client {
	client, err := lastfm.NewClient(lastfm.Config{
		APIKey: apiKey,
		Logger: logger,
	})
	if err != nil {
		// This should never happen since we validate the inputs
		panic(fmt.Sprintf("failed to create lastfm client: %v", err))
	}
	return &Client{
		client: client,
	}
}

// TopArtists fetches the top artists document for cfg
func (c *Client) TopArtists(ctx context.Context, cfg Config) (any, error) {
	doc, err := c.client.User().TopArtists(ctx, lastfm.TopArtistsParams{
		User:   cfg.Username,
		Period: cfg.Period,
		Limit:  cfg.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch top artists: %w", err)
	}

	return doc, nil
}
