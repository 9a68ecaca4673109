package generativeAI

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/genai"
)

const DefaultModel = "gemini-3-flash-preview"

// ErrMissingAPIKey is returned by every call made through a client that was
// built without a credential.
var ErrMissingAPIKey = errors.New("gemini API key is not configured")

type AIClient struct {
	client *genai.Client
	model  string
	logger *slog.Logger
}

// NewAIClient builds a Gemini API client. An empty apiKey does not fail
// startup: the client is returned unconfigured and reports ErrMissingAPIKey
// on use.
func NewAIClient(ctx context.Context, apiKey, model string, logger *slog.Logger) (*AIClient, error) {
	if model == "" {
		model = DefaultModel
	}
	ai := &AIClient{model: model, logger: logger}
	if apiKey == "" {
		logger.WarnContext(ctx, "GEMINI_API_KEY is not set, model calls will fail", slog.String("model", model))
		return ai, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	ai.client = client
	return ai, nil
}

func (ai *AIClient) Model() string {
	return ai.model
}

// GenerateResponse sends a single prompt and returns the raw model response,
// including candidates and grounding metadata.
func (ai *AIClient) GenerateResponse(ctx context.Context, prompt string, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	ctx, span := otel.Tracer("GenerativeAI").Start(ctx, "GenerateResponse", trace.WithAttributes(
		attribute.Int("prompt.length", len(prompt)),
		attribute.String("model", ai.model),
	))
	defer span.End()

	if ai.client == nil {
		span.RecordError(ErrMissingAPIKey)
		span.SetStatus(codes.Error, "Client not configured")
		return nil, ErrMissingAPIKey
	}

	response, err := ai.client.Models.GenerateContent(ctx, ai.model, genai.Text(prompt), config)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to generate content")
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	span.SetStatus(codes.Ok, "Response generated successfully")
	return response, nil
}
