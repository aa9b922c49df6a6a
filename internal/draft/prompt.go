package draft

import (
	"fmt"
	"strings"

	"github.com/draftpost/api/internal/model"
)

// Prompt is the instruction pair sent to a completion provider.
type Prompt struct {
	System string
	User   string
}

const systemPrompt = "You are an expert LinkedIn content strategist and copywriter. " +
	"Write posts that fit LinkedIn best practices: tight lines, white-space, strong hook, concrete takeaways, specific CTA. " +
	"Never include markdown code fences, keep text plain. Avoid hashtags mid-body. Keep emojis tasteful."

// BuildPrompt renders every request field, in fixed order, into the user message.
func BuildPrompt(req model.GenerationRequest) Prompt {
	lines := []string{
		fmt.Sprintf("Topic: %s", req.Topic),
		fmt.Sprintf("Tone: %s", req.Tone),
		fmt.Sprintf("Audience: %s", req.Audience),
		fmt.Sprintf("Goal: %s", req.Goal),
		fmt.Sprintf("Length: %s", req.Length),
		fmt.Sprintf("Hook: %s", req.Hook),
		fmt.Sprintf("CTA: %s", req.CTA),
		fmt.Sprintf("Include emojis: %t", req.Emojis),
		fmt.Sprintf("Include hashtags (at end): %t", req.Hashtags),
		fmt.Sprintf("Variants: %d", req.Variants),
	}

	return Prompt{
		System: systemPrompt,
		User:   strings.Join(lines, "\n"),
	}
}
