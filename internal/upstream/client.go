package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/preston-bernstein/league-admin/internal/domain/teams"
)

// Config controls how the client reaches the league API.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client talks to the league API's team endpoints over HTTP.
type Client struct {
	baseURL    string
	httpClient httpDoer
}

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
	}
}

// ListTeams fetches the full team collection.
func (c *Client) ListTeams(ctx context.Context, token string) ([]teams.Record, error) {
	var payload listResponse
	if err := c.do(ctx, OpList, http.MethodGet, teamPath, token, nil, &payload); err != nil {
		return nil, err
	}
	if payload.Data == nil {
		return []teams.Record{}, nil
	}
	return payload.Data, nil
}

// CreateTeam creates a team with the given name and returns the stored record.
func (c *Client) CreateTeam(ctx context.Context, token, name string) (Created, error) {
	var payload createResponse
	if err := c.do(ctx, OpCreate, http.MethodPost, teamPath+"/", token, createRequest{Name: name}, &payload); err != nil {
		return Created{}, err
	}
	if payload.Data == nil {
		return Created{}, fmt.Errorf("upstream %s: %w", OpCreate, ErrMissingRecord)
	}
	return Created{Team: *payload.Data, Message: payload.Message}, nil
}

// DeleteTeam deletes a team by id and returns the API's message.
func (c *Client) DeleteTeam(ctx context.Context, token string, id int64) (string, error) {
	var payload messageResponse
	path := teamPath + "/" + strconv.FormatInt(id, 10)
	if err := c.do(ctx, OpDelete, http.MethodDelete, path, token, nil, &payload); err != nil {
		return "", err
	}
	return payload.Message, nil
}

func (c *Client) do(ctx context.Context, op, method, path, token string, body any, out any) error {
	req, err := c.buildRequest(ctx, method, path, token, body)
	if err != nil {
		return fmt.Errorf("upstream %s: build request: %w", op, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("upstream %s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &APIError{Operation: op, StatusCode: resp.StatusCode, Message: errorMessage(raw)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && err != io.EOF {
		return fmt.Errorf("upstream %s: decode response: %w", op, err)
	}
	return nil
}

func (c *Client) buildRequest(ctx context.Context, method, path, token string, body any) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

// errorMessage prefers the API's {"message": ...} field and falls back to the raw body.
func errorMessage(raw []byte) string {
	var payload messageResponse
	if err := json.Unmarshal(raw, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return strings.TrimSpace(string(raw))
}
