package zeroshot

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

const (
	defaultAPIURL             = "https://api-inference.huggingface.co"
	defaultModel              = "MoritzLaurer/deberta-v3-large-zeroshot-v2.0"
	defaultHypothesisTemplate = "The customer request is about {}."

	cacheSize = 512
)

// ErrNoLabels is returned when the model responds without any ranked labels.
var ErrNoLabels = errors.New("zeroshot: model returned no labels")

// Client is a zero-shot classification client for the HuggingFace
// Inference API. It is immutable after construction and safe for
// concurrent use; create one per process and share it.
type Client struct {
	apiKey             string
	apiURL             string
	model              string
	hypothesisTemplate string
	httpClient         *http.Client
	cache              *lru.Cache[string, Result]
}

// NewClient creates a new zero-shot classification client.
func NewClient(apiKey string) *Client {
	cache, _ := lru.New[string, Result](cacheSize)
	return &Client{
		apiKey:             apiKey,
		apiURL:             defaultAPIURL,
		model:              defaultModel,
		hypothesisTemplate: defaultHypothesisTemplate,
		httpClient:         &http.Client{},
		cache:              cache,
	}
}

// SetAPIURL overrides the inference endpoint. Intended for tests.
func (c *Client) SetAPIURL(url string) {
	c.apiURL = url
}

// SetModel overrides the default model id.
func (c *Client) SetModel(model string) {
	c.model = model
}

// Model returns the model id being used.
func (c *Client) Model() string {
	return c.model
}

// Classify runs zero-shot classification over the candidate labels and
// returns them ranked by score, highest first. Identical requests are
// served from an in-memory LRU cache.
func (c *Client) Classify(ctx context.Context, req ClassifyRequest) (Result, error) {
	key := c.cacheKey(req)
	if cached, ok := c.cache.Get(key); ok {
		return cached, nil
	}

	body, err := json.Marshal(apiRequest{
		Inputs: req.Text,
		Parameters: apiParameters{
			CandidateLabels:    req.CandidateLabels,
			HypothesisTemplate: c.hypothesisTemplate,
			MultiLabel:         req.MultiLabel,
		},
		Options: apiOptions{WaitForModel: true},
	})
	if err != nil {
		return Result{}, fmt.Errorf("zeroshot: failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s", c.apiURL, c.model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return Result{}, fmt.Errorf("zeroshot: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return Result{}, fmt.Errorf("zeroshot: failed to call inference API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return Result{}, fmt.Errorf("zeroshot: inference API error %d: %s", resp.StatusCode, string(raw))
	}

	var decoded apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return Result{}, fmt.Errorf("zeroshot: failed to decode response: %w", err)
	}

	result, err := toResult(decoded)
	if err != nil {
		return Result{}, err
	}

	c.cache.Add(key, result)
	return result, nil
}

// toResult validates the decoded body. Labels and scores must pair up and
// scores must be non-increasing (the API ranks highest first).
func toResult(decoded apiResponse) (Result, error) {
	if len(decoded.Labels) == 0 {
		return Result{}, ErrNoLabels
	}
	if len(decoded.Labels) != len(decoded.Scores) {
		return Result{}, fmt.Errorf("zeroshot: got %d labels but %d scores", len(decoded.Labels), len(decoded.Scores))
	}
	for i := 1; i < len(decoded.Scores); i++ {
		if decoded.Scores[i] > decoded.Scores[i-1] {
			return Result{}, fmt.Errorf("zeroshot: scores are not ranked at position %d", i)
		}
	}
	return Result{Labels: decoded.Labels, Scores: decoded.Scores}, nil
}

func (c *Client) cacheKey(req ClassifyRequest) string {
	var b strings.Builder
	b.WriteString(c.model)
	b.WriteString("\x00")
	b.WriteString(req.Text)
	for _, label := range req.CandidateLabels {
		b.WriteString("\x00")
		b.WriteString(label)
	}
	if req.MultiLabel {
		b.WriteString("\x00multi")
	}
	return b.String()
}
