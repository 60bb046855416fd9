package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/Fuzzy/internal/fuzzy"
	"github.com/MikeSquared-Agency/Fuzzy/internal/store"
)

// Evaluation is the evaluate endpoint's response.
type Evaluation struct {
	Variable   string           `json:"variable"`
	Evaluation fuzzy.Evaluation `json:"evaluation"`
	Dominant   []string         `json:"dominant"`
	CrispValue float64          `json:"crisp_value"`
}

type Client interface {
	Evaluate(ctx context.Context, variable string, x float64) (*Evaluation, error)
	Decide(ctx context.Context, health, enemies float64) (*store.DecisionRecord, error)
	GetDecision(ctx context.Context, id uuid.UUID) (*store.DecisionRecord, error)
	Stats(ctx context.Context) (*store.DecisionStats, error)
}

// HTTPClient talks to a running fuzzyd.
type HTTPClient struct {
	baseURL    string
	clientID   string
	token      string
	httpClient *http.Client
}

func NewHTTPClient(baseURL, clientID, token string) *HTTPClient {
	return &HTTPClient{
		baseURL:    baseURL,
		clientID:   clientID,
		token:      token,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *HTTPClient) doReq(ctx context.Context, method, path string, in interface{}) ([]byte, error) {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Client-ID", c.clientID)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("fuzzyd %s %s: %d %s", method, path, resp.StatusCode, bytes.TrimSpace(data))
	}
	return data, nil
}

func (c *HTTPClient) Evaluate(ctx context.Context, variable string, x float64) (*Evaluation, error) {
	data, err := c.doReq(ctx, "POST", "/api/v1/evaluate", map[string]interface{}{
		"variable": variable,
		"input":    x,
	})
	if err != nil {
		return nil, err
	}
	var e Evaluation
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (c *HTTPClient) Decide(ctx context.Context, health, enemies float64) (*store.DecisionRecord, error) {
	data, err := c.doReq(ctx, "POST", "/api/v1/decisions", map[string]float64{
		"health":  health,
		"enemies": enemies,
	})
	if err != nil {
		return nil, err
	}
	var rec store.DecisionRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (c *HTTPClient) GetDecision(ctx context.Context, id uuid.UUID) (*store.DecisionRecord, error) {
	data, err := c.doReq(ctx, "GET", "/api/v1/decisions/"+id.String(), nil)
	if err != nil {
		return nil, err
	}
	var rec store.DecisionRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Stats requires the client to carry the admin token.
func (c *HTTPClient) Stats(ctx context.Context) (*store.DecisionStats, error) {
	data, err := c.doReq(ctx, "GET", "/api/v1/stats", nil)
	if err != nil {
		return nil, err
	}
	var stats store.DecisionStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
