package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/diegorighi/yukam-front/internal/common"
	"github.com/google/uuid"
)

// restClient is the request helper shared by the service clients.
type restClient struct {
	baseURL string
	http    *http.Client
}

func newRESTClient(baseURL string, timeout time.Duration) restClient {
	return restClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// do sends one request. body, when non-nil, is sent as JSON; out, when
// non-nil, receives the decoded JSON response.
func (c restClient) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return mapTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return mapStatus(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

func mapTransportError(err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrUnavailable, err)
}

// mapStatus turns a non-2xx response into a *StatusError, reading the
// "message" field of a Spring-style error body when there is one.
func mapStatus(resp *http.Response) error {
	var kind error
	switch resp.StatusCode {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		kind = ErrBadRequest
	case http.StatusUnauthorized, http.StatusForbidden:
		kind = ErrUnauthorized
	case http.StatusNotFound:
		kind = ErrNotFound
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		kind = ErrUnavailable
	default:
		kind = ErrUpstream
	}

	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if json.Unmarshal(raw, &payload) == nil {
		if payload.Message == "" {
			payload.Message = payload.Error
		}
	} else {
		payload.Message = strings.TrimSpace(string(raw))
	}

	return &StatusError{Code: resp.StatusCode, Message: payload.Message, kind: kind}
}

func checkPublicID(publicID string) error {
	if _, err := uuid.Parse(publicID); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidPublicID, publicID)
	}
	return nil
}
