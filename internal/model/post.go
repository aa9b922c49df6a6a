package model

// RawGenerationRequest is the request body before normalization. Fields are
// left untyped so that any JSON value decodes and can be coerced afterwards.
type RawGenerationRequest struct {
	Topic    any `json:"topic"`
	Tone     any `json:"tone"`
	Audience any `json:"audience"`
	Goal     any `json:"goal"`
	Length   any `json:"length"`
	Emojis   any `json:"emojis"`
	Hashtags any `json:"hashtags"`
	Hook     any `json:"hook"`
	CTA      any `json:"cta"`
	Variants any `json:"variants"`
}

// GenerationRequest is a normalized request for post drafts
type GenerationRequest struct {
	Topic    string `json:"topic" validate:"required,max=300"`
	Tone     Tone   `json:"tone" validate:"required,oneof=Professional Conversational 'Thought leadership' Storytelling"`
	Audience string `json:"audience" validate:"max=300"`
	Goal     string `json:"goal" validate:"max=300"`
	Length   Length `json:"length" validate:"required,oneof=Short Medium Long"`
	Emojis   bool   `json:"emojis"`
	Hashtags bool   `json:"hashtags"`
	Hook     Hook   `json:"hook" validate:"required,oneof=Data Question Contrarian Story"`
	CTA      string `json:"cta" validate:"max=280"`
	Variants int    `json:"variants" validate:"min=1,max=3"`
}

// GenerateResponse represents the response for draft generation
type GenerateResponse struct {
	Variants []string     `json:"variants" yaml:"variants"`
	Meta     GenerateMeta `json:"meta" yaml:"meta"`
}

// GenerateMeta echoes the normalized request fields the client renders
type GenerateMeta struct {
	Topic    string `json:"topic" yaml:"topic"`
	Tone     Tone   `json:"tone" yaml:"tone"`
	Audience string `json:"audience" yaml:"audience"`
	Goal     string `json:"goal" yaml:"goal"`
}

// NewGenerateResponse builds the response envelope for a normalized request
func NewGenerateResponse(req GenerationRequest, variants []string) *GenerateResponse {
	return &GenerateResponse{
		Variants: variants,
		Meta: GenerateMeta{
			Topic:    req.Topic,
			Tone:     req.Tone,
			Audience: req.Audience,
			Goal:     req.Goal,
		},
	}
}
