// Package api is the REST adapter behind the repository ports. One shared
// base URL, no auth, no retries: a failed call surfaces a typed error and
// the user retries by hand.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"

	"moneytrack/internal/log"
)

// Client talks to the finance service. Safe for concurrent use.
type Client struct {
	baseURL  string
	per      int
	httpc    *http.Client
	logger   *log.Logger
	validate *validator.Validate
}

// NewClient builds a client for baseURL. A nil httpc falls back to
// http.DefaultClient; per is the page size sent on paginated fetches
// (30 when <= 0).
func NewClient(baseURL string, httpc *http.Client, per int, logger *log.Logger) *Client {
	if httpc == nil {
		httpc = http.DefaultClient
	}
	if per <= 0 {
		per = 30
	}
	if logger == nil {
		logger = log.Discard()
	}
	return &Client{
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		per:      per,
		httpc:    httpc,
		logger:   logger,
		validate: validator.New(),
	}
}

type request struct {
	method string
	path   string
	query  url.Values
	// body is JSON-encoded when set; raw wins when both are set.
	body any
	raw  *rawBody
}

type rawBody struct {
	contentType string
	data        []byte
}

func get(path string, query url.Values) request {
	return request{method: http.MethodGet, path: path, query: query}
}

func post(path string, body any) request {
	return request{method: http.MethodPost, path: path, body: body}
}

func put(path string, body any) request {
	return request{method: http.MethodPut, path: path, body: body}
}

func del(path string) request {
	return request{method: http.MethodDelete, path: path}
}

// dataResponse is the service's envelope: every payload sits under "data".
type dataResponse[T any] struct {
	Data T `json:"data"`
}

// abortResponse is the structured rejection shape for non-200 statuses.
type abortResponse struct {
	Error  bool   `json:"error"`
	Reason string `json:"reason"`
}

// do performs req and decodes the enveloped payload into T.
func do[T any](ctx context.Context, c *Client, req request) (T, error) {
	var zero T

	u, err := url.Parse(c.baseURL + "/" + strings.TrimPrefix(req.path, "/"))
	if err != nil {
		return zero, badURL(err)
	}
	if len(req.query) > 0 {
		u.RawQuery = req.query.Encode()
	}

	var body io.Reader
	contentType := ""
	switch {
	case req.raw != nil:
		body = bytes.NewReader(req.raw.data)
		contentType = req.raw.contentType
	case req.body != nil:
		encoded, err := json.Marshal(req.body)
		if err != nil {
			return zero, badURL(err)
		}
		body = bytes.NewReader(encoded)
		contentType = "application/json"
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, u.String(), body)
	if err != nil {
		return zero, badURL(err)
	}
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}

	c.logger.Debug("request", "method", req.method, "path", u.Path, "query", u.RawQuery)

	resp, err := c.httpc.Do(httpReq)
	if err != nil {
		return zero, transport(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return zero, transport(err)
	}

	if resp.StatusCode != http.StatusOK {
		var abort abortResponse
		if err := json.Unmarshal(raw, &abort); err == nil && abort.Reason != "" {
			return zero, custom(abort.Reason)
		}
		return zero, requestFailed(resp.StatusCode)
	}

	var envelope dataResponse[T]
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return zero, decoding(err)
	}
	return envelope.Data, nil
}

// validateBody runs client-side validation before a request is built.
func (c *Client) validateBody(body any) error {
	if err := c.validate.Struct(body); err != nil {
		return badRequest(err)
	}
	return nil
}
