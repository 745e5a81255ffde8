package gemini

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"
)

// Config holds the Gemini client settings.
type Config struct {
	APIKey          string
	Model           string
	Timeout         time.Duration
	MaxOutputTokens int32
}

// DefaultConfig returns sensible defaults for product search.
func DefaultConfig(apiKey string) Config {
	return Config{
		APIKey:          apiKey,
		Model:           "gemini-2.5-flash",
		Timeout:         30 * time.Second,
		MaxOutputTokens: 8192,
	}
}

// Client asks Gemini for real product recommendations. It is a thin boundary
// adapter: text in, unstructured text out. Parsing and fallback live in the
// search service, which treats every error here as recoverable.
type Client struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	maxTok  int32
}

// NewClient creates a Gemini-backed product searcher.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = DefaultConfig("").Model
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultConfig("").Timeout
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &Client{
		client:  client,
		model:   model,
		timeout: timeout,
		maxTok:  cfg.MaxOutputTokens,
	}, nil
}

const promptTemplate = `You are a product research assistant. For the shopping query %q, list the 10 best real products available today.

Respond with ONLY a JSON array of exactly 10 objects, no prose and no markdown, each object with these fields:
  "name" (string), "brand" (string), "price" (number, USD),
  "rating" (number, 0-5), "reviewCount" (integer),
  "summary" (string, 1-2 sentences),
  "pros" (array of 3-5 short strings), "cons" (array of 2-4 short strings),
  "keyFeatures" (array of 4-6 short strings)`

// SearchProducts sends the fixed prompt and returns the raw response text.
// A single attempt with a bounded token budget; no retries.
func (c *Client) SearchProducts(ctx context.Context, query string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	cfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0.4),
	}
	if c.maxTok > 0 {
		cfg.MaxOutputTokens = c.maxTok
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model,
		genai.Text(fmt.Sprintf(promptTemplate, query)), cfg)
	if err != nil {
		return "", fmt.Errorf("gemini generate failed: %w", err)
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("gemini returned an empty response")
	}
	return text, nil
}
