package gemini

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/cpTheAideveloper/geminimultilingual/internal/apperrors"
)

// Generation parameters are fixed at construction. The model is configured
// once and never mutated afterwards, so a single Client is safe to share
// across concurrent requests.
const (
	temperature float32 = 0.2
	topP        float32 = 0.95
)

// Client handles communication with the Gemini API.
type Client struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewClient creates a new Gemini client for modelName.
func NewClient(ctx context.Context, apiKey string, modelName string) (*Client, error) {
	// Note: We avoid using option.WithHTTPClient because it interferes with
	// the genai library's internal header injection for API keys, causing
	// 403 errors.
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	model := client.GenerativeModel(modelName)
	model.ResponseMIMEType = "application/json"
	model.SetTemperature(temperature)
	model.SetTopP(topP)

	return &Client{
		client: client,
		model:  model,
	}, nil
}

// Close closes the underlying genai client.
func (c *Client) Close() error {
	return c.client.Close()
}

// SetSystemInstruction sets the system prompt for the model. Call it once
// before serving traffic; the model configuration is read-only afterwards.
func (c *Client) SetSystemInstruction(prompt string) {
	c.model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(prompt)},
	}
}

// Translator interface for mocking and dependency injection.
type Translator interface {
	Translate(ctx context.Context, prompt string) (*Result, error)
	SetSystemInstruction(prompt string)
}

// Ensure Client implements Translator
var _ Translator = (*Client)(nil)

// Translate sends one user prompt to Gemini and parses the reply as a flat
// JSON object of language code to translated text. One request, one
// response: no retries, no streaming. The call carries no client-imposed
// deadline; it runs as long as the caller's context and the default
// transport allow.
func (c *Client) Translate(ctx context.Context, prompt string) (*Result, error) {
	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, classifyGeminiError(err)
	}

	text, err := extractResponseText(resp)
	if err != nil {
		return nil, apperrors.Validation(err)
	}

	translations := make(map[string]string)
	if err := json.Unmarshal([]byte(text), &translations); err != nil {
		// Raw model text is deliberately omitted from the error.
		return nil, apperrors.Validation(fmt.Errorf("failed to unmarshal response: %w", err))
	}

	result := &Result{Translations: translations}
	if resp.UsageMetadata != nil {
		result.Usage = UsageMetadata{
			PromptTokenCount:     int(resp.UsageMetadata.PromptTokenCount),
			CandidatesTokenCount: int(resp.UsageMetadata.CandidatesTokenCount),
			TotalTokenCount:      int(resp.UsageMetadata.TotalTokenCount),
		}
	}

	return result, nil
}

func extractResponseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", fmt.Errorf("no response received from Gemini")
	}
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates returned from Gemini")
	}
	for _, candidate := range resp.Candidates {
		if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
			continue
		}
		var combined string
		for _, part := range candidate.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				combined += string(text)
			}
		}
		if combined != "" {
			return combined, nil
		}
	}
	return "", fmt.Errorf("no text parts found in Gemini response")
}
