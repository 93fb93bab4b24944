package generator

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/genai"
	"portfolio-backend/internal/review"
)

// GeminiClient calls the Gemini API directly. A genai client is built per
// request so the credential is read at request time like the other provider.
type GeminiClient struct {
	baseURL    string
	opts       Options
	httpClient *http.Client
}

// NewGeminiClient targets baseURL, or the public Gemini endpoint when empty.
func NewGeminiClient(baseURL string, opts Options) *GeminiClient {
	return &GeminiClient{
		baseURL:    baseURL,
		opts:       opts,
		httpClient: &http.Client{Timeout: opts.Timeout},
	}
}

func (c *GeminiClient) Generate(ctx context.Context, fields review.Fields) (string, error) {
	var apiKey string
	if c.opts.APIKey != nil {
		apiKey = c.opts.APIKey()
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPClient:  c.httpClient,
		HTTPOptions: genai.HTTPOptions{BaseURL: c.baseURL},
	})
	if err != nil {
		return "", fmt.Errorf("failed to create GenAI client: %w", err)
	}

	resp, err := client.Models.GenerateContent(ctx, c.opts.Model,
		[]*genai.Content{genai.NewContentFromText(UserPrompt(fields), genai.RoleUser)},
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(SystemPrompt, genai.RoleUser),
			Temperature:       genai.Ptr(c.opts.Temperature),
			MaxOutputTokens:   int32(c.opts.MaxTokens),
		},
	)
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			return "", &UpstreamError{StatusCode: apiErr.Code, Body: apiErr.Message}
		}
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	return finish(resp.Text())
}
