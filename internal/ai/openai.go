package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/adrianlim83/person-finder/pkg/config"
	"github.com/go-resty/resty/v2"
)

// OpenAIBioProvider calls an OpenAI-compatible chat completions endpoint.
type OpenAIBioProvider struct {
	client    *resty.Client
	model     string
	maxTokens int
	temp      float64
}

func NewOpenAIBioProvider(cfg config.AIConfig) *OpenAIBioProvider {
	client := resty.New().
		SetBaseURL(cfg.OpenAIBaseURL).
		SetAuthToken(cfg.OpenAIAPIKey).
		SetHeader("Content-Type", "application/json").
		SetTimeout(time.Duration(cfg.OpenAITimeoutSec) * time.Second)

	return &OpenAIBioProvider{
		client:    client,
		model:     cfg.OpenAIModel,
		maxTokens: cfg.OpenAIMaxTokens,
		temp:      cfg.OpenAITemp,
	}
}

// chatRequest / chatResponse structs for JSON binding

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
	TopP        float64       `json:"top_p"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// GenerateBio submits the bio prompt to the configured endpoint and returns
// the completion text. Failures propagate to the caller; there is no
// fallback to the mock provider.
func (p *OpenAIBioProvider) GenerateBio(ctx context.Context, jobTitle string, hobbies []string) (string, error) {
	prompt := fmt.Sprintf(
		"Write a quirky one-sentence bio for someone who is a %s and enjoys %s.",
		jobTitle,
		strings.Join(hobbies, ", "),
	)

	reqBody := chatRequest{
		Model:       p.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		MaxTokens:   p.maxTokens,
		Temperature: p.temp,
		TopP:        1.0,
	}

	resp, err := p.client.R().
		SetContext(ctx).
		SetBody(&reqBody).
		Post("/v1/chat/completions")
	if err != nil {
		return "", fmt.Errorf("chat completion request: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("chat completion status %d: %s", resp.StatusCode(), resp.String())
	}

	var cr chatResponse
	if err := json.Unmarshal(resp.Body(), &cr); err != nil {
		return "", fmt.Errorf("decode chat completion response: %w", err)
	}
	if len(cr.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}

	return strings.TrimSpace(cr.Choices[0].Message.Content), nil
}
