package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const summaryPrompt = `You are an AI assistant specializing in summarizing online discussions.

Please provide a concise summary of the following election discussion thread, limiting the summary to no more than %d words.

Discussion Thread:
%s`

var summarySchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"summary": {Type: genai.TypeString, Description: "A concise summary of the election discussion thread."},
	},
	Required: []string{"summary"},
}

func (c *Client) Summarize(ctx context.Context, thread string, wordLimit int) (string, error) {
	resp, err := c.models.GenerateContent(ctx, c.textModel, genai.Text(fmt.Sprintf(summaryPrompt, wordLimit, thread)), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   summarySchema,
	})
	if err != nil {
		return "", fmt.Errorf("summary request failed: %w", err)
	}

	raw := responseText(resp)
	if raw == "" {
		return "", ErrEmptyResponse
	}

	var out struct {
		Summary string `json:"summary"`
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return "", fmt.Errorf("failed to decode summary: %w", err)
	}

	summary := strings.TrimSpace(out.Summary)
	if summary == "" {
		return "", ErrEmptyResponse
	}
	return summary, nil
}
