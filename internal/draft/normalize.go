// Package draft turns raw post parameters into normalized requests and
// composes post drafts from them without calling any external model.
package draft

import (
	"errors"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/draftpost/api/internal/model"
)

// ErrInvalidTopic is returned when topic is missing, empty or not a string.
var ErrInvalidTopic = errors.New("invalid topic")

// Allowed holds the enumerated values accepted per enum field.
type Allowed struct {
	Tones   []model.Tone
	Lengths []model.Length
	Hooks   []model.Hook
}

// DefaultAllowed returns every tone, length and hook the synthesizer knows.
func DefaultAllowed() Allowed {
	return Allowed{
		Tones:   model.ValidTones,
		Lengths: model.ValidLengths,
		Hooks:   model.ValidHooks,
	}
}

// Normalize coerces an untrusted request into a GenerationRequest. Long
// strings are cut, unknown enum values fall back to their defaults and the
// variant count is clamped. Only a bad topic is an error.
func Normalize(raw model.RawGenerationRequest, allowed Allowed) (model.GenerationRequest, error) {
	topic, ok := raw.Topic.(string)
	if !ok || topic == "" {
		return model.GenerationRequest{}, ErrInvalidTopic
	}

	return model.GenerationRequest{
		Topic:    truncate(topic, model.MaxTopicLen),
		Tone:     pickEnum(canonicalTone(raw.Tone), allowed.Tones, model.DefaultTone),
		Audience: truncate(coerceString(raw.Audience), model.MaxAudienceLen),
		Goal:     truncate(coerceString(raw.Goal), model.MaxGoalLen),
		Length:   pickEnum(raw.Length, allowed.Lengths, model.DefaultLength),
		Emojis:   truthy(raw.Emojis),
		Hashtags: truthy(raw.Hashtags),
		Hook:     pickEnum(raw.Hook, allowed.Hooks, model.DefaultHook),
		CTA:      truncate(coerceString(raw.CTA), model.MaxCTALen),
		Variants: ClampVariants(coerceNumber(raw.Variants)),
	}, nil
}

// ClampVariants floors n and clamps it into the supported variant range.
// Zero and NaN count as "not given".
func ClampVariants(n float64) int {
	if math.IsNaN(n) || n == 0 {
		return model.DefaultVariants
	}
	if n < model.MinVariants {
		return model.MinVariants
	}
	if n > model.MaxVariants {
		return model.MaxVariants
	}
	return int(math.Floor(n))
}

// canonicalTone rewrites a known tone alias to its wire value.
func canonicalTone(v any) any {
	if s, ok := v.(string); ok {
		if tone, ok := model.ToneAliases[s]; ok {
			return string(tone)
		}
	}
	return v
}

func pickEnum[T ~string](v any, allowed []T, def T) T {
	s, ok := v.(string)
	if !ok {
		return def
	}
	if slices.Contains(allowed, T(s)) {
		return T(s)
	}
	return def
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}

// coerceString mirrors String(x || '') for scalar JSON values. Arrays and
// objects yield "" rather than their JS string forms, and numbers use Go's
// shortest decimal formatting, so 1e21 prints as 1000000000000000000000.
func coerceString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case bool:
		if x {
			return "true"
		}
		return ""
	case float64:
		if x == 0 || math.IsNaN(x) {
			return ""
		}
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int:
		if x == 0 {
			return ""
		}
		return strconv.Itoa(x)
	default:
		return ""
	}
}

func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case float64:
		return x != 0 && !math.IsNaN(x)
	case int:
		return x != 0
	default:
		return true
	}
}

func coerceNumber(v any) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case int:
		return float64(x)
	case bool:
		if x {
			return 1
		}
		return 0
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return math.NaN()
		}
		return f
	default:
		return math.NaN()
	}
}
