package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/drukschool/bulletin/core"
)

// Client is a thin wrapper over the bulletin REST API. It keeps the session
// cookie jar so every call carries the server-issued credentials, decodes
// JSON bodies and turns non-2xx responses into *APIError values.
type Client struct {
	baseURL string
	http    *http.Client
	log     core.Logger
}

func NewClient(baseURL string, log core.Logger) *Client {
	jar, _ := cookiejar.New(nil) // never fails with nil options
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Jar:     jar,
			Timeout: core.Conf.GetDuration("httpTimeout"),
		},
		log: log,
	}
}

// APIError is a non-2xx response. Message holds the server's structured
// {error} body verbatim when one could be parsed.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed (HTTP %d)", e.StatusCode)
}

// UserMessage maps any gateway failure onto a user-facing message:
// a structured server error is surfaced verbatim, anything else
// (transport failure, unparseable body) falls back to the generic text.
func UserMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out interface{}) error {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return errors.Wrap(err, "gateway: encode request")
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return errors.Wrap(err, "gateway: build request")
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	reqID := uuid.NewString()
	c.log.Debug(fmt.Sprintf("gateway: %s %s", method, path), "request_id", reqID)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error(fmt.Sprintf("gateway: %s %s failed", method, path), err, "request_id", reqID)
		return errors.Wrapf(err, "gateway: %s %s", method, path)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrapf(err, "gateway: %s %s: read response", method, path)
	}

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		if out != nil {
			if err := json.Unmarshal(data, out); err != nil {
				return errors.Wrapf(err, "gateway: %s %s: decode response", method, path)
			}
		}
		return nil
	}

	apiErr := &APIError{StatusCode: resp.StatusCode}
	var e struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(data, &e); err == nil {
		apiErr.Message = e.Error
	}
	c.log.Warn(fmt.Sprintf("gateway: %s %s -> %d", method, path, resp.StatusCode), "request_id", reqID)
	return apiErr
}
