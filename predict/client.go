// Package predict talks to the delay prediction service.
package predict

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"nyiyui.ca/flight-delay/form"
)

// Client sends prediction requests to a single endpoint.
type Client struct {
	endpoint string
	hc       *http.Client
}

// NewClient returns a client posting to endpoint. A nil hc means http.DefaultClient.
func NewClient(endpoint string, hc *http.Client) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{endpoint: endpoint, hc: hc}
}

func (c *Client) Endpoint() string {
	return c.endpoint
}

// Predict sends exactly one request. It does not retry.
func (c *Client) Predict(ctx context.Context, p form.Payload) (*Result, error) {
	body, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshal: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &ServerError{
			StatusCode:  resp.StatusCode,
			ContentType: resp.Header.Get("Content-Type"),
			Body:        data,
		}
	}
	return ParseResult(data)
}

// ServerError is a non-2xx response. Body holds whatever the service sent back.
type ServerError struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("predict: status %d: %s", e.StatusCode, e.Display())
}

// Display renders the error body for a person: JSON strings are unquoted, other JSON
// is indented, plain text is trimmed. An empty body falls back to the status code.
func (e *ServerError) Display() string {
	trimmed := bytes.TrimSpace(e.Body)
	if len(trimmed) == 0 {
		return fmt.Sprintf("request failed with status code %d", e.StatusCode)
	}
	if json.Valid(trimmed) {
		var s string
		if err := json.Unmarshal(trimmed, &s); err == nil {
			return s
		}
		var buf bytes.Buffer
		if err := json.Indent(&buf, trimmed, "", "  "); err == nil {
			return buf.String()
		}
	}
	return string(trimmed)
}

// TransportError means no usable response was received.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Describe returns the text shown to the user for err: the structured server body
// when there is one, otherwise the error's own message.
func Describe(err error) string {
	if err == nil {
		return ""
	}
	var se *ServerError
	if errors.As(err, &se) {
		return se.Display()
	}
	return strings.TrimSpace(err.Error())
}
