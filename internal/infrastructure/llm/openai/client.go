// Package openai provides a Generator implementation using OpenAI-compatible
// chat completion endpoints.
package openai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/wjcesaretti/altergeist/internal/infrastructure/config"
)

// Apology is returned when the model produces no usable text.
const Apology = "I apologize, but I am unable to generate a response at this time. " +
	"This may be due to the complexity of the question or limitations in my current state."

const defaultModel = "gpt-4o-mini"

// Instruction markers some instruction-tuned models echo back.
var markers = []string{"<s>", "</s>", "[INST]", "[/INST]"}

// Client implements the Generator interface using OpenAI.
type Client struct {
	client      *openai.Client
	model       string
	temperature float32
	maxTokens   int
	topP        float32
}

// NewClient creates a new OpenAI generation client. A base URL points the
// client at any OpenAI-compatible endpoint.
func NewClient(cfg config.LLMConfig) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("API key is required")
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}

	model := defaultModel
	if cfg.Model != "" {
		model = cfg.Model
	}

	return &Client{
		client:      openai.NewClientWithConfig(clientCfg),
		model:       model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		topP:        cfg.TopP,
	}, nil
}

// Generate sends prompt as a single user message and returns the cleaned
// completion. An empty completion yields Apology.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
		TopP:        c.topP,
	})
	if err != nil {
		return "", fmt.Errorf("calling OpenAI: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("no response from OpenAI")
	}

	return cleanResponse(resp.Choices[0].Message.Content, prompt), nil
}

// cleanResponse removes an echoed prompt and instruction markers.
func cleanResponse(content, prompt string) string {
	content = strings.TrimSpace(content)

	for _, echo := range []string{"<s>[INST] " + prompt + " [/INST]", prompt} {
		if prompt != "" && strings.HasPrefix(content, echo) {
			content = content[len(echo):]
			break
		}
	}

	for _, m := range markers {
		content = strings.ReplaceAll(content, m, "")
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return Apology
	}
	return content
}
