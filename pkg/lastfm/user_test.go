package lastfm

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

const topArtistsFixture = `{
	"topartists": {
		"artist": [
			{
				"name": "Boards of Canada",
				"playcount": "482",
				"mbid": "69158f97-4c07-4c4e-baf8-4e4ab1ed666e",
				"url": "https://www.last.fm/music/Boards+of+Canada",
				"streamable": "0",
				"@attr": {"rank": "1"}
			},
			{
				"name": "Autechre",
				"playcount": "311",
				"mbid": "410c9baf-5469-44f6-9852-826524b80c61",
				"url": "https://www.last.fm/music/Autechre",
				"streamable": "0",
				"@attr": {"rank": "2"}
			}
		],
		"@attr": {
			"user": "someuser",
			"totalPages": "324",
			"page": "1",
			"perPage": "2",
			"total": "647"
		}
	}
}`

// TestUserService_TopArtists tests the TopArtists method.
func TestUserService_TopArtists(t *testing.T) {
	tests := []struct {
		name        string
		response    string
		statusCode  int
		params      TopArtistsParams
		wantErr     bool
		errContains string
	}{
		{
			name:       "success",
			response:   topArtistsFixture,
			statusCode: http.StatusOK,
			params: TopArtistsParams{
				User:   "someuser",
				Period: "7day",
				Limit:  2,
			},
			wantErr: false,
		},
		{
			name:       "success without optional params",
			response:   topArtistsFixture,
			statusCode: http.StatusOK,
			params: TopArtistsParams{
				User: "someuser",
			},
			wantErr: false,
		},
		{
			name:       "api error - invalid api key",
			response:   `{"error": 10, "message": "Invalid API key - You must be granted a valid key by last.fm"}`,
			statusCode: http.StatusForbidden,
			params: TopArtistsParams{
				User:   "someuser",
				Period: "7day",
				Limit:  5,
			},
			wantErr:     true,
			errContains: "error 10",
		},
		{
			name:       "api error - invalid parameters",
			response:   `{"error": 6, "message": "User not found"}`,
			statusCode: http.StatusBadRequest,
			params: TopArtistsParams{
				User:   "nosuchuser",
				Period: "7day",
				Limit:  5,
			},
			wantErr:     true,
			errContains: "error 6",
		},
		{
			name:       "invalid JSON body",
			response:   `<html>not json</html>`,
			statusCode: http.StatusOK,
			params: TopArtistsParams{
				User: "someuser",
			},
			wantErr:     true,
			errContains: "failed to parse JSON response",
		},
		{
			name:       "server error",
			response:   `<html>bad gateway</html>`,
			statusCode: http.StatusBadGateway,
			params: TopArtistsParams{
				User: "someuser",
			},
			wantErr:     true,
			errContains: "unexpected status code: 502",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				// Verify request method
				if r.Method != http.MethodGet {
					t.Errorf("expected GET request, got %s", r.Method)
				}

				q := r.URL.Query()

				// Verify required parameters
				if method := q.Get("method"); method != "user.gettopartists" {
					t.Errorf("expected method user.gettopartists, got %s", method)
				}
				if key := q.Get("api_key"); key != "test-api-key" {
					t.Errorf("expected api_key test-api-key, got %s", key)
				}
				if format := q.Get("format"); format != "json" {
					t.Errorf("expected format json, got %s", format)
				}
				if user := q.Get("user"); user != tt.params.User {
					t.Errorf("expected user %s, got %s", tt.params.User, user)
				}

				// Verify optional parameters if provided
				if tt.params.Period != "" {
					if period := q.Get("period"); period != tt.params.Period {
						t.Errorf("expected period %s, got %s", tt.params.Period, period)
					}
				}
				if tt.params.Limit > 0 {
					if limit := q.Get("limit"); limit != fmt.Sprintf("%d", tt.params.Limit) {
						t.Errorf("expected limit %d, got %s", tt.params.Limit, limit)
					}
				}

				w.WriteHeader(tt.statusCode)
				if _, err := w.Write([]byte(tt.response)); err != nil {
					t.Fatalf("failed to write response body: %v", err)
				}
			}))
			defer server.Close()

			client, err := NewClient(Config{
				APIKey:  "test-api-key",
				BaseURL: server.URL,
			})
			if err != nil {
				t.Fatalf("failed to create client: %v", err)
			}

			ctx := context.Background()
			doc, err := client.User().TopArtists(ctx, tt.params)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("expected error to contain %q, got %v", tt.errContains, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			// The document is returned as decoded, shape untouched.
			obj, ok := doc.(map[string]interface{})
			if !ok {
				t.Fatalf("expected document to be an object, got %T", doc)
			}
			if _, ok := obj["topartists"]; !ok {
				t.Error("expected document to contain topartists")
			}
		})
	}
}

// TestUserService_TopArtists_APIErrorCode tests that API errors are
// matchable by code with errors.Is.
func TestUserService_TopArtists_APIErrorCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		if _, err := w.Write([]byte(`{"error": 10, "message": "Invalid API key"}`)); err != nil {
			t.Fatalf("failed to write response body: %v", err)
		}
	}))
	defer server.Close()

	client, err := NewClient(Config{
		APIKey:  "bogus",
		BaseURL: server.URL,
	})
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	_, err = client.User().TopArtists(context.Background(), TopArtistsParams{User: "someuser"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	if !errors.Is(err, &Error{Code: ErrCodeInvalidAPIKey}) {
		t.Errorf("expected error to match code %d, got %v", ErrCodeInvalidAPIKey, err)
	}

	var lastfmErr *Error
	if !errors.As(err, &lastfmErr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if lastfmErr.Message != "Invalid API key" {
		t.Errorf("expected message from envelope, got %q", lastfmErr.Message)
	}
}

// TestUserService_TopArtists_MissingUser tests that the user parameter is required.
func TestUserService_TopArtists_MissingUser(t *testing.T) {
	client, err := NewClient(Config{
		APIKey: "test-api-key",
	})
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	_, err = client.User().TopArtists(context.Background(), TopArtistsParams{})
	if err == nil {
		t.Fatal("expected error for missing user, got nil")
	}
	if !strings.Contains(err.Error(), "user is required") {
		t.Errorf("expected error to contain 'user is required', got %v", err)
	}
}

// TestUserService_TopArtists_ContextCancellation tests context cancellation.
func TestUserService_TopArtists_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Simulate slow server
		time.Sleep(100 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(topArtistsFixture)); err != nil {
			t.Fatalf("failed to write response body: %v", err)
		}
	}))
	defer server.Close()

	client, err := NewClient(Config{
		APIKey:  "test-api-key",
		BaseURL: server.URL,
	})
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err = client.User().TopArtists(ctx, TopArtistsParams{User: "someuser"})
	if err == nil {
		t.Error("expected error for cancelled context, got nil")
	}
	if !strings.Contains(err.Error(), "context") {
		t.Errorf("expected context error, got %v", err)
	}
}

// ExampleUserService_TopArtists demonstrates fetching a user's top artists.
func ExampleUserService_TopArtists() {
	client, err := NewClient(Config{
		APIKey: "your-api-key",
	})
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	doc, err := client.User().TopArtists(ctx, TopArtistsParams{
		User:   "someuser",
		Period: "7day",
		Limit:  5,
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("fetched document: %T\n", doc)
}
