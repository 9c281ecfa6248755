package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/vncsmyrnk/wevote/internal/core/domain"
	"google.golang.org/genai"
)

const moderationPrompt = `You are an AI moderator for an anonymous discussion forum related to elections.

Your task is to review the provided forum post and determine if it violates the community guidelines.
Specifically, you should flag posts that contain hate speech, misinformation, or spam.

Provide a brief explanation for your decision.

Forum Post: %s`

var moderationSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"isFlagged": {Type: genai.TypeBoolean, Description: "Whether the post should be flagged for review."},
		"reason":    {Type: genai.TypeString, Description: "The reason for flagging the post, if applicable."},
	},
	Required: []string{"isFlagged", "reason"},
}

var moderationSafety = []*genai.SafetySetting{
	{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockThresholdBlockOnlyHigh},
	{Category: genai.HarmCategoryDangerousContent, Threshold: genai.HarmBlockThresholdBlockNone},
	{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockThresholdBlockMediumAndAbove},
}

type moderationOutput struct {
	IsFlagged bool   `json:"isFlagged"`
	Reason    string `json:"reason"`
}

func (c *Client) Moderate(ctx context.Context, text string) (domain.ModerationVerdict, error) {
	resp, err := c.models.GenerateContent(ctx, c.textModel, genai.Text(fmt.Sprintf(moderationPrompt, text)), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   moderationSchema,
		SafetySettings:   moderationSafety,
	})
	if err != nil {
		return domain.ModerationVerdict{}, fmt.Errorf("moderation request failed: %w", err)
	}

	raw := responseText(resp)
	if raw == "" {
		return domain.ModerationVerdict{}, ErrEmptyResponse
	}

	var out moderationOutput
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return domain.ModerationVerdict{}, fmt.Errorf("failed to decode moderation verdict: %w", err)
	}

	c.logger.Debug("post moderated", "flagged", out.IsFlagged)
	return domain.ModerationVerdict{
		Flagged: out.IsFlagged,
		Reason:  strings.TrimSpace(out.Reason),
	}, nil
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	return strings.TrimSpace(resp.Text())
}
