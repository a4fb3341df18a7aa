// Package chart turns Last.fm top artist data into a shareable
// announcement string.
package chart

import (
	"fmt"
	"strings"
)

// Config holds the four parameters of a top artists query. Built once
// per run, never mutated.
type Config struct {
	APIKey   string // Last.fm API key, passed through as a query parameter
	Username string // account being queried
	Limit    int    // number of artists requested, >= 1
	Period   string // lookback window, one of the six accepted values
}

// periodLabel maps a period to the label spliced into the header after
// "past". Labels carry their own leading space; overall has none.
func periodLabel(period string) (string, error) {
	switch period {
	case "overall":
		return "", nil
	case "7day":
		return " week", nil
	case "1month":
		return " month", nil
	case "3month":
		return " 3 months", nil
	case "6month":
		return " 6 months", nil
	case "12month":
		return " year", nil
	default:
		return "", &InvalidPeriodError{Period: period}
	}
}

// ending returns the separator trailing the entry at position i. All
// but the last two positions get a comma, the second to last gets
// ", &", the last gets nothing. Positions count against limit, not
// against the number of entries present.
func ending(i, limit int) string {
	switch {
	case i <= limit-3:
		return ","
	case i == limit-2:
		return ", &"
	default:
		return ""
	}
}

// Summary renders the announcement string for a top artists response.
//
// doc is the decoded JSON document as delivered by the API. It must
// hold an array at topartists.artist whose entries carry name and
// playcount as JSON strings; a numeric playcount is rejected, not
// coerced. The period is validated before the document is inspected,
// so an invalid period fails even with a nil document.
//
// Separator positions are computed from cfg.Limit rather than from the
// number of artists in the document: when the service returns fewer
// artists than requested, the ", &" conjunction lands before the wrong
// entry or not at all. Kept as is for output compatibility.
func Summary(cfg Config, doc any) (string, error) {
	label, err := periodLabel(cfg.Period)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "♫ My Top %d played artists in the past%s via #LastFM ♫:\n", cfg.Limit, label)

	artists, err := artistList(doc)
	if err != nil {
		return "", err
	}

	for i, entry := range artists {
		// A non-object entry fails the name lookup below.
		obj, _ := entry.(map[string]any)

		name, ok := obj["name"].(string)
		if !ok {
			return "", ErrArtistNotFound
		}

		playcount, ok := obj["playcount"].(string)
		if !ok {
			return "", ErrPlaycountNotFound
		}

		fmt.Fprintf(&b, " %s (%s)%s", name, playcount, ending(i, cfg.Limit))
	}

	b.WriteString(".")

	return b.String(), nil
}

// artistList pulls the artist array out of the response document.
func artistList(doc any) ([]any, error) {
	obj, ok := doc.(map[string]any)
	if !ok {
		return nil, ErrMalformedResponse
	}

	top, ok := obj["topartists"].(map[string]any)
	if !ok {
		return nil, ErrMalformedResponse
	}

	artists, ok := top["artist"].([]any)
	if !ok {
		return nil, ErrMalformedResponse
	}

	return artists, nil
}
