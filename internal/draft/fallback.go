package draft

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/draftpost/api/internal/model"
)

const (
	truncationMarker = "…"
	fillerLine       = "Worth saving?"
	fillerEmoji      = " 🔖"
)

// LengthRange is the inclusive character budget for a draft before hashtags.
type LengthRange struct {
	Min int
	Max int
}

var lengthRanges = map[model.Length]LengthRange{
	model.LengthShort:  {Min: 80, Max: 140},
	model.LengthMedium: {Min: 150, Max: 250},
	model.LengthLong:   {Min: 240, Max: 380},
}

var toneGlosses = map[model.Tone]string{
	model.ToneProfessional:      "Clear, concise, direct, and credible. Avoid hype.",
	model.ToneConversational:    "Friendly, relatable, and casual. Use simple sentences.",
	model.ToneThoughtLeadership: "Insightful and authoritative. Share frameworks and unique perspectives.",
	model.ToneStorytelling:      "Narrative-driven. Use a beginning-middle-end arc with a lesson learned.",
}

const genericGloss = "Be clear and useful."

type decoration struct {
	prefix  string
	bullets [3]string
}

var (
	plainDecoration = decoration{bullets: [3]string{"-", "-", "-"}}
	emojiDecoration = decoration{prefix: "🚀 ", bullets: [3]string{"✅", "💡", "📌"}}
)

// RangeFor returns the character budget for a length, Medium when unknown.
func RangeFor(length model.Length) LengthRange {
	if r, ok := lengthRanges[length]; ok {
		return r
	}
	return lengthRanges[model.LengthMedium]
}

// Synthesize composes req.Variants drafts from fixed templates. Every
// variant of one request is identical.
func Synthesize(req model.GenerationRequest) []string {
	n := req.Variants
	if n < model.MinVariants {
		n = model.MinVariants
	}

	text := fitLength(composeBody(req), RangeFor(req.Length), req.Emojis)
	if req.Hashtags {
		text = AppendHashtags(text, req.Topic)
	}

	variants := make([]string, 0, n)
	for i := 0; i < n; i++ {
		variants = append(variants, text)
	}
	return variants
}

// HookLine returns the opening line for a hook style.
func HookLine(hook model.Hook, topic string) string {
	switch hook {
	case model.HookData:
		return fmt.Sprintf("Data point that surprised me about %s:", topic)
	case model.HookQuestion:
		return fmt.Sprintf("What if we approached %s differently?", topic)
	case model.HookContrarian:
		return fmt.Sprintf("Unpopular take: most advice on %s is backwards.", topic)
	case model.HookStory:
		return fmt.Sprintf("A quick story about %s:", topic)
	default:
		return topic + ":"
	}
}

// ToneGloss returns the short style description used in the first body line.
func ToneGloss(tone model.Tone) string {
	if g, ok := toneGlosses[tone]; ok {
		return g
	}
	return genericGloss
}

func composeBody(req model.GenerationRequest) string {
	deco := plainDecoration
	if req.Emojis {
		deco = emojiDecoration
	}

	points := [3]string{
		fmt.Sprintf("For %s. %s", req.Audience, ToneGloss(req.Tone)),
		"Three takeaways you can apply today:",
		fmt.Sprintf("Aligned to the goal: %s.", req.Goal),
	}

	lines := []string{deco.prefix + HookLine(req.Hook, req.Topic), ""}
	for i, p := range points {
		lines = append(lines, deco.bullets[i]+" "+p)
	}
	if req.CTA != "" {
		lines = append(lines, "", "Call to action: "+req.CTA)
	}
	return strings.Join(lines, "\n")
}

// fitLength cuts text longer than the budget to exactly Max characters, or
// pads text shorter than Min once with the filler block.
func fitLength(text string, r LengthRange, emojis bool) string {
	n := utf8.RuneCountInString(text)
	switch {
	case n > r.Max:
		return string([]rune(text)[:r.Max-1]) + truncationMarker
	case n < r.Min:
		return text + Filler(emojis)
	default:
		return text
	}
}

// Filler returns the block appended to drafts shorter than their budget.
func Filler(emojis bool) string {
	if emojis {
		return "\n\n" + fillerLine + fillerEmoji
	}
	return "\n\n" + fillerLine
}
