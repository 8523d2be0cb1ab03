package submit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// TransmissionError reports a failed submission attempt: either the
// transport failed outright or the endpoint answered with a non-2xx
// status. Both collapse into this one kind; the caller may retry manually
// but the client never does.
type TransmissionError struct {
	StatusCode int // 0 when the failure was transport-level
	Err        error
}

func (e *TransmissionError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("submission rejected: HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("submission failed: %v", e.Err)
}

func (e *TransmissionError) Unwrap() error { return e.Err }

// Client posts submission payloads to the collection endpoint.
type Client struct {
	endpoint string
	hc       *http.Client
}

// NewClient creates a Client for the given endpoint URL. The default
// http.Client is used as-is: no timeout is configured beyond the
// transport's own defaults, and a single attempt is made per Send.
func NewClient(endpoint string) *Client {
	return &Client{
		endpoint: endpoint,
		hc:       &http.Client{},
	}
}

// Send issues exactly one POST with the payload as JSON. Any 2xx status
// is success; the response body is parsed as JSON on a best-effort basis
// and an unparseable body is treated as an empty object, never a failure.
func (c *Client) Send(ctx context.Context, p Payload) (map[string]any, error) {
	body, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, &TransmissionError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &TransmissionError{StatusCode: resp.StatusCode}
	}

	result := map[string]any{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		result = map[string]any{}
	}
	return result, nil
}
