package generator

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"
	"portfolio-backend/internal/review"
)

// ChatClient talks to an OpenAI-compatible chat-completions endpoint.
type ChatClient struct {
	url  string
	opts Options
	http *resty.Client
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float32       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func NewChatClient(url string, opts Options) *ChatClient {
	client := resty.New()
	if opts.Timeout > 0 {
		client.SetTimeout(opts.Timeout)
	}
	return &ChatClient{
		url:  url,
		opts: opts,
		http: client,
	}
}

func (c *ChatClient) Generate(ctx context.Context, fields review.Fields) (string, error) {
	body := chatRequest{
		Model: c.opts.Model,
		Messages: []chatMessage{
			{Role: "system", Content: SystemPrompt},
			{Role: "user", Content: UserPrompt(fields)},
		},
		Temperature: c.opts.Temperature,
		MaxTokens:   c.opts.MaxTokens,
	}

	req := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body)
	if c.opts.APIKey != nil {
		req.SetAuthToken(c.opts.APIKey())
	}

	resp, err := req.Post(c.url)
	if err != nil {
		return "", fmt.Errorf("failed to execute request: %w", err)
	}

	if !resp.IsSuccess() {
		return "", &UpstreamError{StatusCode: resp.StatusCode(), Body: resp.String()}
	}

	var result chatResponse
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w, body: %s", err, resp.String())
	}

	if len(result.Choices) == 0 {
		return "", ErrEmptyReply
	}
	return finish(result.Choices[0].Message.Content)
}
