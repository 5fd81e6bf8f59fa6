package runpod

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"
)

const (
	DefaultTimeout = 30 * time.Second
	DefaultTopK    = 3

	userAgent = "boardgame-chatbot/1.0"

	// Backend chat_type values for rule endpoints.
	ChatTypeGPT        = "gpt"
	ChatTypeFinetuning = "finetuning"
)

// Backend is the remote AI service the chatbot forwards to.
type Backend interface {
	Health(ctx context.Context) (map[string]any, error)
	Recommend(ctx context.Context, query, sessionID string, topK int) (*Result, error)
	ExplainRules(ctx context.Context, gameName, question, chatType, sessionID string) (*Result, error)
	RuleSummary(ctx context.Context, gameName, chatType, sessionID string) (*Result, error)
	CloseSession(ctx context.Context, sessionID string) (bool, error)
	ListGames(ctx context.Context) ([]string, error)
}

// Result is a decoded backend envelope for the text-producing endpoints.
// Success is false when the backend answered 2xx with a non-success status.
type Result struct {
	Success   bool
	Text      string
	SessionID string
	Message   string
}

// Err returns a SoftFailureError for an unsuccessful result.
func (r *Result) Err() error {
	if r.Success {
		return nil
	}
	return &SoftFailureError{Message: r.Message}
}

type envelope struct {
	Status  string          `json:"status"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

type resultData struct {
	Recommendation string `json:"recommendation"`
	Answer         string `json:"answer"`
	Summary        string `json:"summary"`
	SessionID      string `json:"session_id"`
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	timeout    time.Duration
}

// NewClient builds a Client with a pooled transport shared by every call.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		httpClient: &http.Client{
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		timeout: timeout,
	}
}

func (c *Client) BaseURL() string { return c.baseURL }

func (c *Client) Health(ctx context.Context) (map[string]any, error) {
	var out map[string]any
	if err := c.send(ctx, http.MethodGet, "/health", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Recommend(ctx context.Context, query, sessionID string, topK int) (*Result, error) {
	if topK <= 0 {
		topK = DefaultTopK
	}
	body := map[string]any{
		"query":      query,
		"session_id": sessionID,
		"top_k":      topK,
	}
	return c.result(ctx, "/recommend", body, func(d resultData) string { return d.Recommendation })
}

func (c *Client) ExplainRules(ctx context.Context, gameName, question, chatType, sessionID string) (*Result, error) {
	body := map[string]any{
		"game_name":  gameName,
		"question":   question,
		"chat_type":  chatType,
		"session_id": sessionID,
	}
	return c.result(ctx, "/explain-rules", body, func(d resultData) string { return d.Answer })
}

func (c *Client) RuleSummary(ctx context.Context, gameName, chatType, sessionID string) (*Result, error) {
	body := map[string]any{
		"game_name":  gameName,
		"chat_type":  chatType,
		"session_id": sessionID,
	}
	return c.result(ctx, "/rule-summary", body, func(d resultData) string { return d.Summary })
}

// CloseSession reports true when the backend answered success:true or status "success".
func (c *Client) CloseSession(ctx context.Context, sessionID string) (bool, error) {
	var out struct {
		Success bool   `json:"success"`
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	body := map[string]any{"session_id": sessionID}
	if err := c.send(ctx, http.MethodPost, "/session/close", body, &out); err != nil {
		return false, err
	}
	if out.Success || out.Status == "success" {
		return true, nil
	}
	return false, &SoftFailureError{Message: out.Message}
}

func (c *Client) ListGames(ctx context.Context) ([]string, error) {
	var env envelope
	if err := c.send(ctx, http.MethodGet, "/games", nil, &env); err != nil {
		return nil, err
	}
	if env.Status != "success" {
		return nil, &SoftFailureError{Message: env.Message}
	}
	var data struct {
		Games []string `json:"games"`
	}
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &data); err != nil {
			return nil, fmt.Errorf("runpod: decode /games data: %w", err)
		}
	}
	return data.Games, nil
}

func (c *Client) result(ctx context.Context, endpoint string, body any, text func(resultData) string) (*Result, error) {
	var env envelope
	if err := c.send(ctx, http.MethodPost, endpoint, body, &env); err != nil {
		return nil, err
	}
	if env.Status != "success" {
		slog.Warn("Runpod reported failure", "endpoint", endpoint, "status", env.Status, "message", env.Message)
		return &Result{Success: false, Message: env.Message}, nil
	}

	var data resultData
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &data); err != nil {
			return nil, fmt.Errorf("runpod: decode %s data: %w", endpoint, err)
		}
	}
	return &Result{
		Success:   true,
		Text:      text(data),
		SessionID: data.SessionID,
		Message:   env.Message,
	}, nil
}

// send performs one request through the sync bridge and decodes the JSON body into out.
func (c *Client) send(ctx context.Context, method, endpoint string, body, out any) error {
	_, err := blocking(ctx, c.timeout, func(ctx context.Context) (struct{}, error) {
		var reader io.Reader
		if body != nil {
			payload, err := json.Marshal(body)
			if err != nil {
				return struct{}{}, fmt.Errorf("runpod: marshal %s request: %w", endpoint, err)
			}
			reader = bytes.NewReader(payload)
		}

		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
		if err != nil {
			return struct{}{}, fmt.Errorf("runpod: build %s request: %w", endpoint, err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("User-Agent", userAgent)
		if c.apiKey != "" {
			req.Header.Set("Authorization", "Bearer "+c.apiKey)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return struct{}{}, classify(endpoint, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
			return struct{}{}, &HTTPError{
				Endpoint:   endpoint,
				StatusCode: resp.StatusCode,
				Body:       strings.TrimSpace(string(snippet)),
			}
		}

		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return struct{}{}, classify(endpoint, ctxErr)
			}
			return struct{}{}, fmt.Errorf("runpod: decode %s response: %w", endpoint, err)
		}
		return struct{}{}, nil
	})
	if err != nil {
		slog.Error("Runpod request failed", "method", method, "url", c.baseURL+endpoint, "error", err)
	}
	return err
}

func classify(endpoint string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &TimeoutError{Endpoint: endpoint, Err: err}
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &TimeoutError{Endpoint: endpoint, Err: err}
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("runpod: %s: %w", endpoint, err)
	}
	return &UnreachableError{Endpoint: endpoint, Err: err}
}
