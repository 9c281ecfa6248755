package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"google.golang.org/genai"
)

const (
	DefaultTextModel  = "gemini-2.0-flash"
	DefaultImageModel = "gemini-2.0-flash-exp"
)

var ErrEmptyResponse = errors.New("model returned an empty response")

// contentGenerator is the subset of *genai.Models used here.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type Config struct {
	APIKey     string
	TextModel  string
	ImageModel string
}

// Client implements the moderation, summarization and badge capabilities on
// top of the Gemini API.
type Client struct {
	models     contentGenerator
	textModel  string
	imageModel string
	logger     *slog.Logger
}

func NewClient(ctx context.Context, cfg Config, logger *slog.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return newClient(gc.Models, cfg, logger), nil
}

func newClient(models contentGenerator, cfg Config, logger *slog.Logger) *Client {
	if cfg.TextModel == "" {
		cfg.TextModel = DefaultTextModel
	}
	if cfg.ImageModel == "" {
		cfg.ImageModel = DefaultImageModel
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		models:     models,
		textModel:  cfg.TextModel,
		imageModel: cfg.ImageModel,
		logger:     logger,
	}
}
