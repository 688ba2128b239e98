package llm

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// ChatClient captures the subset of the go-openai client used here, so tests
// can substitute a scripted fake.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAIClient implements Client via an OpenAI-compatible chat-completions
// endpoint.
type OpenAIClient struct {
	chat ChatClient
}

// NewOpenAIClient builds a client from an API key and optional base URL
// (empty = api.openai.com).
func NewOpenAIClient(apiKey, baseURL string) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, errors.New("llm: api key is required")
	}
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAIClient{chat: openai.NewClientWithConfig(cfg)}, nil
}

// NewOpenAIClientFromChat wraps an existing chat client (used by tests).
func NewOpenAIClientFromChat(chat ChatClient) *OpenAIClient {
	return &OpenAIClient{chat: chat}
}

// Complete issues one chat-completion call and maps transport failures into
// the llm error taxonomy.
func (c *OpenAIClient) Complete(ctx context.Context, req *Request) (*Response, error) {
	if len(req.Messages) == 0 {
		return nil, &Error{Category: CategoryBadResponse, Err: errors.New("messages are required")}
	}

	messages := make([]openai.ChatCompletionMessage, len(req.Messages))
	for i, msg := range req.Messages {
		messages[i] = openai.ChatCompletionMessage{
			Role:    msg.Role,
			Content: msg.Content,
		}
	}

	request := openai.ChatCompletionRequest{
		Model:       req.Model,
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.JSONOnly {
		request.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := c.chat.CreateChatCompletion(ctx, request)
	if err != nil {
		return nil, classifyError(err)
	}
	if len(resp.Choices) == 0 {
		return nil, &Error{Category: CategoryBadResponse, Err: errors.New("response has no choices")}
	}

	return &Response{
		Content: resp.Choices[0].Message.Content,
		Usage: Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
		},
	}, nil
}

// Close is a no-op; the underlying HTTP client needs no teardown.
func (c *OpenAIClient) Close() error { return nil }

// retryAfterPattern matches the delay hint OpenAI-compatible servers embed in
// 429 messages, e.g. "Please try again in 1.2s" or "retry after 2 seconds".
var retryAfterPattern = regexp.MustCompile(`(?:try again|retry after)(?: in)? ([0-9.]+) ?s`)

// classifyError maps go-openai errors onto the llm error taxonomy.
func classifyError(err error) *Error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return &Error{Category: CategoryTimeout, Err: err}
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.HTTPStatusCode == 429:
			return &Error{
				Category:   CategoryRateLimited,
				RetryAfter: parseRetryAfter(apiErr.Message),
				Err:        err,
			}
		case apiErr.HTTPStatusCode == 401 || apiErr.HTTPStatusCode == 403:
			return &Error{Category: CategoryAuth, Err: err}
		case apiErr.HTTPStatusCode >= 500:
			return &Error{Category: CategoryTransport, Err: err}
		default:
			return &Error{Category: CategoryBadResponse, Err: err}
		}
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		if reqErr.HTTPStatusCode == 429 {
			return &Error{Category: CategoryRateLimited, Err: err}
		}
		return &Error{Category: CategoryTransport, Err: err}
	}

	// Connection-level failure (DNS, refused, reset).
	return &Error{Category: CategoryTransport, Err: fmt.Errorf("llm transport: %w", err)}
}

// parseRetryAfter extracts the retry hint from a 429 message body.
func parseRetryAfter(message string) time.Duration {
	m := retryAfterPattern.FindStringSubmatch(message)
	if len(m) != 2 {
		return 0
	}
	secs, err := strconv.ParseFloat(m[1], 64)
	if err != nil || secs <= 0 {
		return 0
	}
	return time.Duration(secs * float64(time.Second))
}
