// Package ai is the single point of contact with the external
// text-generation endpoint. Every operation builds a deterministic prompt,
// issues one request, and either returns trimmed response text or a typed
// AIUnavailableError the caller must replace with an offline fallback.
package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"flowpay/flowpay/internal/logging"
)

// Client abstracts the generative-language call so the gateway logic can be
// tested without network access.
type Client interface {
	// Generate issues one text-generation request and returns the raw
	// response text.
	Generate(ctx context.Context, prompt string) (string, error)
}

// GenerationParams carry the fixed generation settings sent with every call.
type GenerationParams struct {
	Model       string
	Temperature float32
	TopK        int32
	TopP        float32
	MaxTokens   int32
}

// GeminiClient implements Client against the Google Gemini API.
type GeminiClient struct {
	apiKey string
	params GenerationParams
	logger logging.Logger

	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiClient creates a client which lazily dials the API on first use.
// An empty API key is reported as an error at call time, not construction.
func NewGeminiClient(apiKey string, params GenerationParams, logger logging.Logger) *GeminiClient {
	if logger == nil {
		logger = logging.GetLogger()
	}
	if params.Model == "" {
		params.Model = "gemini-2.0-flash"
	}
	return &GeminiClient{
		apiKey: apiKey,
		params: params,
		logger: logger,
	}
}

func (c *GeminiClient) ensureModel(ctx context.Context) error {
	if c.model != nil {
		return nil
	}
	if c.apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(c.apiKey))
	if err != nil {
		return fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(c.params.Model)
	model.SetTemperature(c.params.Temperature)
	model.SetTopK(c.params.TopK)
	model.SetTopP(c.params.TopP)
	model.SetMaxOutputTokens(c.params.MaxTokens)

	c.client = client
	c.model = model
	return nil
}

// Generate issues a single GenerateContent call and extracts the first
// candidate's text.
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	if err := c.ensureModel(ctx); err != nil {
		return "", err
	}

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil ||
		len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from Gemini API")
	}

	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", fmt.Errorf("unexpected response part from Gemini API")
	}

	c.logger.WithField(logging.FieldOperation, "generate").Debug("Gemini response received")
	return strings.TrimSpace(string(text)), nil
}
