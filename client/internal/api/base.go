package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/lexdesk/lexdesk/client/internal/types"
)

// newRequest builds a JSON API request. token may be empty for the
// unauthenticated auth endpoints; a nil payload means no body.
func newRequest(ctx context.Context, method, url, token string, payload any) (*http.Request, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewBuffer(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	// Correlates client and server logs for one call.
	req.Header.Set("X-Request-Id", uuid.NewString())
	return req, nil
}

// decode normalizes a completed API response. The body is read and parsed as
// JSON first even on failure so the server's message field survives; non-2xx
// statuses become *types.APIError with a fixed fallback message when the
// field is absent. A nil v discards the payload.
func decode(resp *http.Response, v any) error {
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var failure struct {
			Message string `json:"message"`
		}
		_ = json.Unmarshal(body, &failure)
		msg := failure.Message
		if msg == "" {
			msg = types.DefaultErrorMessage
		}
		return &types.APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	if v == nil {
		return nil
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// do sends the request and normalizes the response into v.
func do(httpClient *http.Client, req *http.Request, v any) error {
	resp, err := httpClient.Do(req)
	if err != nil {
		return err
	}
	return decode(resp, v)
}
