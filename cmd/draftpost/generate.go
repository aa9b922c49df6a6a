package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/draftpost/api/internal/client"
	"github.com/draftpost/api/internal/config"
	"github.com/draftpost/api/internal/draft"
	"github.com/draftpost/api/internal/model"
	"github.com/draftpost/api/internal/service"
)

type generateOptions struct {
	topic    string
	tone     string
	audience string
	goal     string
	length   string
	hook     string
	cta      string
	emojis   bool
	hashtags bool
	variants int
	output   string
	offline  bool
}

func newGenerateCmd() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate post drafts for a topic",
		Long: `Generate normalizes the flags exactly like the HTTP API does (long text is
cut, unknown enum values fall back to defaults, variants is clamped to 1-3)
and prints the drafts.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.topic, "topic", "", "post topic (required)")
	f.StringVar(&opts.tone, "tone", string(model.DefaultTone), "Professional, Conversational, \"Thought leadership\" or Storytelling")
	f.StringVar(&opts.audience, "audience", "", "who the post is for")
	f.StringVar(&opts.goal, "goal", "", "what the post should achieve")
	f.StringVar(&opts.length, "length", string(model.DefaultLength), "Short, Medium or Long")
	f.StringVar(&opts.hook, "hook", string(model.DefaultHook), "Data, Question, Contrarian or Story")
	f.StringVar(&opts.cta, "cta", "", "call to action line")
	f.BoolVar(&opts.emojis, "emojis", false, "decorate with emojis")
	f.BoolVar(&opts.hashtags, "hashtags", false, "append hashtags")
	f.IntVar(&opts.variants, "variants", model.DefaultVariants, "number of drafts (1-3)")
	f.StringVarP(&opts.output, "output", "o", "text", "output format: text, json or yaml")
	f.BoolVar(&opts.offline, "offline", false, "never call the completion provider")
	_ = cmd.MarkFlagRequired("topic")

	return cmd
}

func runGenerate(cmd *cobra.Command, opts *generateOptions) error {
	raw := model.RawGenerationRequest{
		Topic:    opts.topic,
		Tone:     opts.tone,
		Audience: opts.audience,
		Goal:     opts.goal,
		Length:   opts.length,
		Emojis:   opts.emojis,
		Hashtags: opts.hashtags,
		Hook:     opts.hook,
		CTA:      opts.cta,
		Variants: opts.variants,
	}

	req, err := draft.Normalize(raw, draft.DefaultAllowed())
	if err != nil {
		return fmt.Errorf("--topic: %w", err)
	}
	if err := validator.New().Struct(&req); err != nil {
		return fmt.Errorf("normalized request failed validation: %w", err)
	}

	var postService *service.PostService
	if opts.offline {
		postService = service.NewPostService(nil, 0)
	} else {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		postService = service.NewPostService(client.NewOpenAIClient(&cfg.OpenAI), time.Duration(cfg.OpenAI.Timeout)*time.Second)
	}

	resp := postService.Generate(cmd.Context(), req)
	return writeResponse(cmd.OutOrStdout(), resp, opts.output)
}

func writeResponse(w io.Writer, resp *model.GenerateResponse, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(resp)
	case "text", "":
		for i, v := range resp.Variants {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "--- Variant %d ---\n%s\n", i+1, v)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want text, json or yaml)", format)
	}
}
