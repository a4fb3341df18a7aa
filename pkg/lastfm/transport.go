package lastfm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

const (
	// maxResponseBytes caps how much of a response body is read.
	maxResponseBytes = 512 * 1024

	userAgent = "topfm/1.0"
)

// requestURL builds the full request URL for an API method.
//
// Every request carries the method name, the API key, and format=json;
// params holds the method-specific fields. Values are URL-encoded.
func (c *Client) requestURL(method string, params map[string]string) string {
	query := url.Values{}
	for k, v := range params {
		query.Set(k, v)
	}
	query.Set("method", method)
	query.Set("api_key", c.apiKey)
	query.Set("format", "json")

	return c.baseURL + "?" + query.Encode()
}

// call makes a GET request to the Last.fm API.
//
// It handles:
// - Request construction with proper headers
// - Response parsing into a dynamic JSON document
// - Mapping the API error envelope to *Error
// - Context cancellation
func (c *Client) call(ctx context.Context, method string, params map[string]string) (interface{}, error) {
	c.logDebugf("lastfm: calling %s", method)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.requestURL(method, params), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request failed: %w", err)
	}

	// Read response body
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	_ = resp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	// Parse JSON response. Failures reported by the API usually arrive
	// with a non-200 status and an error envelope in the body, so the
	// body is decoded before the status code is judged.
	var doc interface{}
	if err := json.Unmarshal(body, &doc); err != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		}
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	// Check for API errors
	if apiErr := decodeError(doc); apiErr != nil {
		return nil, apiErr
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	// Success
	c.logDebugf("lastfm: %s succeeded", method)
	return doc, nil
}

// decodeError extracts the API error envelope from a decoded document.
//
// Error responses are shaped {"error": code, "message": text}. Returns
// nil if the document is not an error envelope.
func decodeError(doc interface{}) *Error {
	obj, ok := doc.(map[string]interface{})
	if !ok {
		return nil
	}

	code, ok := obj["error"].(float64)
	if !ok {
		return nil
	}

	msg, _ := obj["message"].(string)
	return &Error{
		Code:    int(code),
		Message: msg,
	}
}
