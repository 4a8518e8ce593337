// Package assist provides LLM-backed writing suggestions for CV content.
package assist

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/adaeze/cv-studio/internal/types"
)

// DefaultModel is used when ASSIST_MODEL is unset.
const DefaultModel = "gemini-1.5-flash"

// Client is an abstraction over suggestion providers.
type Client interface {
	// SuggestSummary drafts a professional summary from the CV's facts.
	SuggestSummary(ctx context.Context, cv types.CV) (string, error)
	// SuggestBullets drafts achievement bullet points for one role.
	SuggestBullets(ctx context.Context, exp types.WorkExperience) ([]string, error)
	// Close releases any resources held by the client.
	Close() error
}

// GeminiClient implements Client using Google Gemini.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient creates a suggestion client. The model can be overridden
// with ASSIST_MODEL.
func NewGeminiClient(ctx context.Context, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := os.Getenv("ASSIST_MODEL")
	if model == "" {
		model = DefaultModel
	}

	return &GeminiClient{client: client, model: model}, nil
}

// SuggestSummary drafts a professional summary from the CV's facts.
func (c *GeminiClient) SuggestSummary(ctx context.Context, cv types.CV) (string, error) {
	text, err := c.generate(ctx, SummaryPrompt(cv), "")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// SuggestBullets drafts achievement bullet points for one role.
func (c *GeminiClient) SuggestBullets(ctx context.Context, exp types.WorkExperience) ([]string, error) {
	text, err := c.generate(ctx, BulletsPrompt(exp), "application/json")
	if err != nil {
		return nil, err
	}

	var bullets []string
	if err := json.Unmarshal([]byte(CleanJSONBlock(text)), &bullets); err != nil {
		return nil, fmt.Errorf("failed to parse bullet suggestions: %w", err)
	}
	return bullets, nil
}

// Close releases resources held by the client.
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

func (c *GeminiClient) generate(ctx context.Context, prompt, mimeType string) (string, error) {
	model := c.client.GenerativeModel(c.model)
	model.SetTemperature(0.4)
	if mimeType != "" {
		model.ResponseMIMEType = mimeType
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	return extractTextFromResponse(resp)
}

func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}

	return strings.Join(parts, ""), nil
}

// CleanJSONBlock removes markdown code block wrappers from JSON responses.
// Models often wrap JSON in ```json ... ``` blocks even when instructed not
// to.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return strings.TrimSpace(text)
	}

	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		if idx := strings.Index(text, "\n"); idx >= 0 {
			firstLine := text[:idx]
			if len(firstLine) < 20 && !strings.Contains(firstLine, " ") && !strings.Contains(firstLine, "{") {
				text = text[idx+1:]
			}
		}
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return strings.TrimSpace(text)
	}

	return text
}
