package gemini

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/vncsmyrnk/wevote/internal/core/ports"
	"google.golang.org/genai"
)

const badgeStyle = "The image should evoke a sense of civic duty, achievement, and participation. " +
	"Focus on symbols like a stylized checkmark, a voting box icon, celebratory graphics, or abstract designs related to community or decision-making. " +
	"Avoid rendering complex text directly in the image unless it's very simple like 'Voted' or a checkmark symbol. " +
	"The style should be modern and positive."

func badgePrompt(req ports.BadgeRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate a symbolic digital badge or sticker image appropriate for someone who has just participated in the election titled %q.\n", req.ElectionTitle)
	if req.UserName != "" {
		fmt.Fprintf(&b, "The user's name is %s, you can subtly incorporate this if it fits the design well, but it's not mandatory.\n", req.UserName)
	}
	b.WriteString(badgeStyle)
	return b.String()
}

// GenerateBadge asks the image model for a badge. An empty ImageURL means the
// model answered without an image.
func (c *Client) GenerateBadge(ctx context.Context, req ports.BadgeRequest) (ports.GeneratedBadge, error) {
	resp, err := c.models.GenerateContent(ctx, c.imageModel, genai.Text(badgePrompt(req)), &genai.GenerateContentConfig{
		ResponseModalities: []string{"TEXT", "IMAGE"},
	})
	if err != nil {
		return ports.GeneratedBadge{}, fmt.Errorf("badge request failed: %w", err)
	}

	var badge ports.GeneratedBadge
	var text []string
	if resp != nil && len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		for _, part := range resp.Candidates[0].Content.Parts {
			if part == nil {
				continue
			}
			if part.InlineData != nil && len(part.InlineData.Data) > 0 && badge.ImageURL == "" {
				badge.ImageURL = dataURI(part.InlineData.MIMEType, part.InlineData.Data)
			}
			if t := strings.TrimSpace(part.Text); t != "" {
				text = append(text, t)
			}
		}
	}
	badge.Message = strings.Join(text, " ")

	if badge.ImageURL == "" {
		c.logger.Warn("badge generation returned no image", "election", req.ElectionTitle)
	}
	return badge, nil
}

func dataURI(mimeType string, data []byte) string {
	if mimeType == "" {
		mimeType = "image/png"
	}
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}
