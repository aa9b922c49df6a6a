package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/draftpost/api/internal/draft"
	"github.com/draftpost/api/internal/metrics"
	"github.com/draftpost/api/internal/model"
)

var (
	ErrProviderNotConfigured = errors.New("completion provider not configured")
	ErrEmptyCompletion       = errors.New("completion provider returned no usable drafts")
)

// Completer defines the interface for an external completion provider
type Completer interface {
	ChatCompletions(ctx context.Context, system, user string, n int) ([]string, error)
	IsConfigured() bool
}

// PostService generates post drafts, preferring the completion provider and
// falling back to the template generator on any provider failure
type PostService struct {
	completer Completer
	timeout   time.Duration
}

// NewPostService creates a post service. completer may be nil; timeout bounds
// each provider call when positive.
func NewPostService(completer Completer, timeout time.Duration) *PostService {
	return &PostService{
		completer: completer,
		timeout:   timeout,
	}
}

// Generate returns drafts for a normalized request. It never fails: provider
// errors are logged and answered by the template generator.
func (s *PostService) Generate(ctx context.Context, req model.GenerationRequest) *model.GenerateResponse {
	variants, err := s.complete(ctx, req)
	if err == nil {
		metrics.Record(metrics.StrategyProvider, len(variants))
		return model.NewGenerateResponse(req, variants)
	}

	if !errors.Is(err, ErrProviderNotConfigured) {
		metrics.ProviderFailures.Inc()
		log.Printf("Warning: completion provider failed, using fallback: %v", err)
	}

	variants = draft.Synthesize(req)
	metrics.Record(metrics.StrategyFallback, len(variants))
	return model.NewGenerateResponse(req, variants)
}

// ProviderConfigured reports whether requests will try the provider first
func (s *PostService) ProviderConfigured() bool {
	return s.completer != nil && s.completer.IsConfigured()
}

func (s *PostService) complete(ctx context.Context, req model.GenerationRequest) ([]string, error) {
	if !s.ProviderConfigured() {
		return nil, ErrProviderNotConfigured
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	prompt := draft.BuildPrompt(req)

	start := time.Now()
	outputs, err := s.completer.ChatCompletions(ctx, prompt.System, prompt.User, req.Variants)
	metrics.ProviderLatency.Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, fmt.Errorf("AI generation failed: %w", err)
	}

	if len(outputs) > req.Variants {
		outputs = outputs[:req.Variants]
	}

	variants := make([]string, 0, len(outputs))
	for _, out := range outputs {
		text := draft.PlainText(out)
		if text == "" {
			continue
		}
		// Hashtags are placed locally so they always land in the same spot
		if req.Hashtags {
			text = draft.AppendHashtags(text, req.Topic)
		}
		variants = append(variants, text)
	}

	if len(variants) == 0 {
		return nil, ErrEmptyCompletion
	}
	return variants, nil
}
