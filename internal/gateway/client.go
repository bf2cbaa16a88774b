package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// Client is the HTTP implementation of Gateway.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a Client from cfg. onUnauthorized, when non-nil, fires
// on every 401 the platform returns; the caller owns what logout means.
func NewClient(cfg Config, onUnauthorized func()) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Client{
		baseURL: cfg.baseURL(),
		http: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: newAuthTransport(http.DefaultTransport, cfg.Token, onUnauthorized),
		},
	}, nil
}

func (c *Client) StartSession(ctx context.Context, req StartSessionRequest) (*SessionSnapshot, error) {
	var out SessionSnapshot
	if err := c.do(ctx, http.MethodPost, "/v1/sessions", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetSession(ctx context.Context, sessionID string) (*SessionSnapshot, error) {
	var out SessionSnapshot
	if err := c.do(ctx, http.MethodGet, sessionPath(sessionID), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) PauseSession(ctx context.Context, sessionID string, req MutateSessionRequest) (*MutateSessionResponse, error) {
	return c.mutateSession(ctx, sessionID, "pause", req)
}

func (c *Client) ResumeSession(ctx context.Context, sessionID string, req MutateSessionRequest) (*MutateSessionResponse, error) {
	return c.mutateSession(ctx, sessionID, "resume", req)
}

func (c *Client) EndSession(ctx context.Context, sessionID string, req MutateSessionRequest) (*MutateSessionResponse, error) {
	return c.mutateSession(ctx, sessionID, "end", req)
}

func (c *Client) mutateSession(ctx context.Context, sessionID, action string, req MutateSessionRequest) (*MutateSessionResponse, error) {
	var out MutateSessionResponse
	if err := c.do(ctx, http.MethodPost, sessionPath(sessionID)+"/"+action, nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) NextQuestion(ctx context.Context, sessionID string) (*Question, error) {
	// A null question in the envelope means the plan is exhausted.
	var out struct {
		Question *Question `json:"question"`
	}
	if err := c.do(ctx, http.MethodGet, sessionPath(sessionID)+"/next-question", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Question, nil
}

func (c *Client) SubmitAnswer(ctx context.Context, req SubmitAnswerRequest, idempotencyKey string) (*AnswerResult, error) {
	h := http.Header{}
	h.Set("Idempotency-Key", idempotencyKey)

	var out AnswerResult
	if err := c.do(ctx, http.MethodPost, sessionPath(req.SessionID)+"/answers", h, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ReviewAvailability(ctx context.Context, sessionID string) (*ReviewAvailability, error) {
	var out ReviewAvailability
	if err := c.do(ctx, http.MethodGet, sessionPath(sessionID)+"/review-availability", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) StartReview(ctx context.Context, req StartReviewRequest) (*ReviewSnapshot, error) {
	var out ReviewSnapshot
	if err := c.do(ctx, http.MethodPost, "/v1/reviews", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) NextReviewQuestion(ctx context.Context, reviewID string) (*Question, error) {
	var out struct {
		Question *Question `json:"question"`
	}
	if err := c.do(ctx, http.MethodGet, reviewPath(reviewID)+"/next-question", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Question, nil
}

func (c *Client) SubmitReviewAnswer(ctx context.Context, reviewID string, req ReviewAnswerRequest, idempotencyKey string) (*ReviewAnswerResult, error) {
	h := http.Header{}
	h.Set("Idempotency-Key", idempotencyKey)

	var out ReviewAnswerResult
	if err := c.do(ctx, http.MethodPost, reviewPath(reviewID)+"/answers", h, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SkipReview(ctx context.Context, reviewID string) error {
	return c.do(ctx, http.MethodPost, reviewPath(reviewID)+"/skip", nil, nil, nil)
}

func (c *Client) ReviewSummary(ctx context.Context, reviewID string) (*ReviewSummary, error) {
	var out ReviewSummary
	if err := c.do(ctx, http.MethodGet, reviewPath(reviewID)+"/summary", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ReadingStats(ctx context.Context) (*ReadingStats, error) {
	var out ReadingStats
	if err := c.do(ctx, http.MethodGet, "/v1/stats/reading", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// do executes one JSON round trip. A nil out discards the response body.
// Non-2xx statuses come back as *Error; so do transport failures.
func (c *Client) do(ctx context.Context, method, path string, header http.Header, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	for k, vals := range header {
		for _, v := range vals {
			req.Header.Add(k, v)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return transportError(method+" "+path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return normalizeError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return transportError("decode "+method+" "+path, err)
	}
	return nil
}

func sessionPath(id string) string {
	return "/v1/sessions/" + url.PathEscape(id)
}

func reviewPath(id string) string {
	return "/v1/reviews/" + url.PathEscape(id)
}
