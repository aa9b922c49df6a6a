package draft

import (
	"encoding/json"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/draftpost/api/internal/model"
)

func decodeRaw(t *testing.T, body string) model.RawGenerationRequest {
	t.Helper()
	var raw model.RawGenerationRequest
	require.NoError(t, json.Unmarshal([]byte(body), &raw))
	return raw
}

func TestNormalize_Defaults(t *testing.T) {
	req, err := Normalize(decodeRaw(t, `{"topic":"pricing strategy"}`), DefaultAllowed())
	require.NoError(t, err)

	assert.Equal(t, model.GenerationRequest{
		Topic:    "pricing strategy",
		Tone:     model.ToneProfessional,
		Length:   model.LengthMedium,
		Hook:     model.HookQuestion,
		Variants: 1,
	}, req)
}

func TestNormalize_KeepsAllowedValues(t *testing.T) {
	body := `{
		"topic": "hiring",
		"tone": "Thought leadership",
		"audience": "CTOs",
		"goal": "start a debate",
		"length": "Long",
		"emojis": true,
		"hashtags": true,
		"hook": "Contrarian",
		"cta": "Share your take",
		"variants": 2
	}`
	req, err := Normalize(decodeRaw(t, body), DefaultAllowed())
	require.NoError(t, err)

	assert.Equal(t, model.ToneThoughtLeadership, req.Tone)
	assert.Equal(t, "CTOs", req.Audience)
	assert.Equal(t, "start a debate", req.Goal)
	assert.Equal(t, model.LengthLong, req.Length)
	assert.True(t, req.Emojis)
	assert.True(t, req.Hashtags)
	assert.Equal(t, model.HookContrarian, req.Hook)
	assert.Equal(t, "Share your take", req.CTA)
	assert.Equal(t, 2, req.Variants)
}

func TestNormalize_InvalidTopic(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing", `{"tone":"Professional"}`},
		{"empty", `{"topic":""}`},
		{"number", `{"topic":42}`},
		{"bool", `{"topic":true}`},
		{"array", `{"topic":["a"]}`},
		{"null", `{"topic":null}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalize(decodeRaw(t, tt.body), DefaultAllowed())
			assert.ErrorIs(t, err, ErrInvalidTopic)
		})
	}
}

func TestNormalize_UnknownEnumsFallBack(t *testing.T) {
	body := `{"topic":"x","tone":"Sarcastic","length":"Huge","hook":7}`
	req, err := Normalize(decodeRaw(t, body), DefaultAllowed())
	require.NoError(t, err)

	assert.Equal(t, model.ToneProfessional, req.Tone)
	assert.Equal(t, model.LengthMedium, req.Length)
	assert.Equal(t, model.HookQuestion, req.Hook)
}

func TestNormalize_ToneAlias(t *testing.T) {
	req, err := Normalize(decodeRaw(t, `{"topic":"x","tone":"ThoughtLeadership"}`), DefaultAllowed())
	require.NoError(t, err)
	assert.Equal(t, model.ToneThoughtLeadership, req.Tone)

	allowed := DefaultAllowed()
	allowed.Tones = []model.Tone{model.ToneProfessional}
	req, err = Normalize(decodeRaw(t, `{"topic":"x","tone":"ThoughtLeadership"}`), allowed)
	require.NoError(t, err)
	assert.Equal(t, model.ToneProfessional, req.Tone)
}

func TestNormalize_RespectsAllowedSet(t *testing.T) {
	allowed := DefaultAllowed()
	allowed.Tones = []model.Tone{model.ToneProfessional}

	req, err := Normalize(decodeRaw(t, `{"topic":"x","tone":"Storytelling"}`), allowed)
	require.NoError(t, err)
	assert.Equal(t, model.ToneProfessional, req.Tone)
}

func TestNormalize_Variants(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{`5`, 3},
		{`3`, 3},
		{`2`, 2},
		{`0`, 1},
		{`-4`, 1},
		{`2.7`, 2},
		{`"2"`, 2},
		{`"lots"`, 1},
		{`""`, 1},
		{`null`, 1},
		{`true`, 1},
		{`[3]`, 1},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			req, err := Normalize(decodeRaw(t, `{"topic":"x","variants":`+tt.raw+`}`), DefaultAllowed())
			require.NoError(t, err)
			assert.Equal(t, tt.want, req.Variants)
		})
	}
}

func TestNormalize_TruncatesLongStrings(t *testing.T) {
	long := strings.Repeat("é", 400)
	raw := model.RawGenerationRequest{
		Topic:    long,
		Audience: long,
		Goal:     long,
		CTA:      long,
	}
	req, err := Normalize(raw, DefaultAllowed())
	require.NoError(t, err)

	assert.Equal(t, 300, utf8.RuneCountInString(req.Topic))
	assert.Equal(t, 300, utf8.RuneCountInString(req.Audience))
	assert.Equal(t, 300, utf8.RuneCountInString(req.Goal))
	assert.Equal(t, 280, utf8.RuneCountInString(req.CTA))
	assert.True(t, utf8.ValidString(req.Topic))
}

func TestNormalize_CoercesScalars(t *testing.T) {
	body := `{"topic":"x","audience":12.5,"goal":false,"cta":0,"emojis":"yes","hashtags":0}`
	req, err := Normalize(decodeRaw(t, body), DefaultAllowed())
	require.NoError(t, err)

	assert.Equal(t, "12.5", req.Audience)
	assert.Equal(t, "", req.Goal)
	assert.Equal(t, "", req.CTA)
	assert.True(t, req.Emojis)
	assert.False(t, req.Hashtags)
}

func TestNormalize_NonScalarsAndLargeNumbers(t *testing.T) {
	body := `{"topic":"x","audience":[1,2],"goal":{"a":1},"cta":1e21}`
	req, err := Normalize(decodeRaw(t, body), DefaultAllowed())
	require.NoError(t, err)

	assert.Equal(t, "", req.Audience)
	assert.Equal(t, "", req.Goal)
	assert.Equal(t, "1000000000000000000000", req.CTA)
}
