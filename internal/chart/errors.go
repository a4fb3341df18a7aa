package chart

import (
	"errors"
	"fmt"
)

// Failures raised while validating the response document. The message
// strings are part of the tool's output contract and are kept verbatim
// even where Go convention would lowercase them.
var (
	// ErrMalformedResponse is returned when the response document does
	// not hold an array at topartists.artist.
	ErrMalformedResponse = errors.New("Error parsing JSON.")

	// ErrArtistNotFound is returned when an artist entry has no name,
	// or the name is not a JSON string.
	ErrArtistNotFound = errors.New("Artist not found.")

	// ErrPlaycountNotFound is returned when an artist entry has no
	// playcount, or the playcount is not a JSON string.
	ErrPlaycountNotFound = errors.New("Playcount not found.")
)

// InvalidPeriodError is returned when a period is outside the set the
// API accepts.
type InvalidPeriodError struct {
	Period string
}

// Error returns the error message, naming the offending value and the
// accepted set.
func (e *InvalidPeriodError) Error() string {
	return fmt.Sprintf(`Period %s not allowed. Only allow "overall", "7day", "1month", "3month", "6month", or "12month".`, e.Period)
}
