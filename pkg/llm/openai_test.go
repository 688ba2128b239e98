package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedChat struct {
	responses []openai.ChatCompletionResponse
	errs      []error
	calls     int
	lastReq   openai.ChatCompletionRequest
}

func (s *scriptedChat) CreateChatCompletion(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	s.lastReq = req
	i := s.calls
	s.calls++
	if i < len(s.errs) && s.errs[i] != nil {
		return openai.ChatCompletionResponse{}, s.errs[i]
	}
	if i < len(s.responses) {
		return s.responses[i], nil
	}
	return openai.ChatCompletionResponse{}, errors.New("script exhausted")
}

func textResponse(content string, prompt, completion int) openai.ChatCompletionResponse {
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: content}},
		},
		Usage: openai.Usage{PromptTokens: prompt, CompletionTokens: completion},
	}
}

func TestCompleteMapsRequestAndUsage(t *testing.T) {
	chat := &scriptedChat{responses: []openai.ChatCompletionResponse{textResponse(`{"ok":true}`, 120, 15)}}
	client := NewOpenAIClientFromChat(chat)

	resp, err := client.Complete(context.Background(), &Request{
		Model:       "gpt-4o-mini",
		Messages:    []Message{{Role: RoleSystem, Content: "sys"}, {Role: RoleUser, Content: "hi"}},
		Temperature: 0.2,
		MaxTokens:   512,
		JSONOnly:    true,
	})
	require.NoError(t, err)

	assert.Equal(t, `{"ok":true}`, resp.Content)
	assert.Equal(t, 120, resp.Usage.PromptTokens)
	assert.Equal(t, 15, resp.Usage.CompletionTokens)

	assert.Equal(t, "gpt-4o-mini", chat.lastReq.Model)
	require.NotNil(t, chat.lastReq.ResponseFormat)
	assert.Equal(t, openai.ChatCompletionResponseFormatTypeJSONObject, chat.lastReq.ResponseFormat.Type)
	require.Len(t, chat.lastReq.Messages, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, chat.lastReq.Messages[0].Role)
}

func TestCompleteRequiresMessages(t *testing.T) {
	client := NewOpenAIClientFromChat(&scriptedChat{})
	_, err := client.Complete(context.Background(), &Request{Model: "m"})

	var le *Error
	require.ErrorAs(t, err, &le)
	assert.Equal(t, CategoryBadResponse, le.Category)
	assert.False(t, Retryable(err))
}

func TestClassifyRateLimitWithHint(t *testing.T) {
	apiErr := &openai.APIError{
		HTTPStatusCode: 429,
		Message:        "Rate limit reached. Please try again in 1.5s.",
	}
	chat := &scriptedChat{errs: []error{apiErr}}
	client := NewOpenAIClientFromChat(chat)

	_, err := client.Complete(context.Background(), &Request{
		Model:    "m",
		Messages: []Message{{Role: RoleUser, Content: "x"}},
	})

	var le *Error
	require.ErrorAs(t, err, &le)
	assert.Equal(t, CategoryRateLimited, le.Category)
	assert.True(t, Retryable(err))

	hint, ok := RetryAfterHint(err)
	require.True(t, ok)
	assert.Equal(t, 1500*time.Millisecond, hint)
}

func TestClassifyAuthNotRetryable(t *testing.T) {
	chat := &scriptedChat{errs: []error{&openai.APIError{HTTPStatusCode: 401, Message: "bad key"}}}
	client := NewOpenAIClientFromChat(chat)

	_, err := client.Complete(context.Background(), &Request{
		Model:    "m",
		Messages: []Message{{Role: RoleUser, Content: "x"}},
	})

	var le *Error
	require.ErrorAs(t, err, &le)
	assert.Equal(t, CategoryAuth, le.Category)
	assert.False(t, Retryable(err))
}

func TestClassifyServerErrorRetryable(t *testing.T) {
	chat := &scriptedChat{errs: []error{&openai.APIError{HTTPStatusCode: 503, Message: "overloaded"}}}
	client := NewOpenAIClientFromChat(chat)

	_, err := client.Complete(context.Background(), &Request{
		Model:    "m",
		Messages: []Message{{Role: RoleUser, Content: "x"}},
	})
	assert.True(t, Retryable(err))
}

func TestClassifyEmptyChoices(t *testing.T) {
	chat := &scriptedChat{responses: []openai.ChatCompletionResponse{{}}}
	client := NewOpenAIClientFromChat(chat)

	_, err := client.Complete(context.Background(), &Request{
		Model:    "m",
		Messages: []Message{{Role: RoleUser, Content: "x"}},
	})

	var le *Error
	require.ErrorAs(t, err, &le)
	assert.Equal(t, CategoryBadResponse, le.Category)
}

func TestParseRetryAfterVariants(t *testing.T) {
	assert.Equal(t, 2*time.Second, parseRetryAfter("please retry after 2 s"))
	assert.Equal(t, time.Duration(0), parseRetryAfter("rate limit reached"))
	assert.Equal(t, 250*time.Millisecond, parseRetryAfter("try again in 0.25s"))
}
