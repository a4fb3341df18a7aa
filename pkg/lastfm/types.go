package lastfm

// TopArtistsParams holds the parameters for a user.gettopartists query.
type TopArtistsParams struct {
	User   string // Required: Last.fm username to query
	Period string // Optional: lookback window (overall, 7day, 1month, 3month, 6month, 12month)
	Limit  int    // Optional: number of artists per page (the API defaults to 50)
}
