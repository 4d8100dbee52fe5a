package llm

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	log "github.com/carousell/ct-go/pkg/logger/log_context"
	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"
	"github.com/firebase/genkit/go/plugins/googlegenai"

	"github.com/nguyentranbao-ct/ott-backoffice/internal/config"
)

// Service is the text-completion collaborator: auto-rating for new titles
// and the support chatbot. Both degrade to local fallbacks when the model is
// unreachable; a failure here is never surfaced to the end user.
type Service interface {
	RateTitle(ctx context.Context, title, genre string, year int) float64
	ChatReply(ctx context.Context, message string) string
}

type genkitService struct {
	genkit *genkit.Genkit
	model  string
}

func NewService(cfg *config.Config) Service {
	ctx := context.Background()
	googleAI := &googlegenai.GoogleAI{
		APIKey: cfg.LLM.GoogleAIAPIKey,
	}
	g := genkit.Init(ctx, genkit.WithPlugins(googleAI))

	return &genkitService{
		genkit: g,
		model:  cfg.LLM.Model,
	}
}

func (s *genkitService) RateTitle(ctx context.Context, title, genre string, year int) float64 {
	prompt := fmt.Sprintf(
		"Rate the streaming title %q (%s, %d) on a scale of 1 to 10 based on its likely audience appeal. Reply with a single number only.",
		title, genre, year)

	resp, err := genkit.Generate(ctx, s.genkit,
		ai.WithPrompt(prompt),
		ai.WithModelName(s.model),
	)
	if err != nil {
		log.Warnw(ctx, "rating generation failed, using fallback", "title", title, "error", err)
		return FallbackRating(title)
	}

	rating, err := parseRating(resp.Text())
	if err != nil {
		log.Warnw(ctx, "unparseable rating, using fallback", "title", title, "text", resp.Text())
		return FallbackRating(title)
	}
	return rating
}

func (s *genkitService) ChatReply(ctx context.Context, message string) string {
	prompt := fmt.Sprintf(
		"You are a support assistant for an OTT distribution platform. Clients ask about channels, payouts, distribution apps and account status. Answer briefly and helpfully.\n\nClient: %s",
		message)

	resp, err := genkit.Generate(ctx, s.genkit,
		ai.WithPrompt(prompt),
		ai.WithModelName(s.model),
	)
	if err != nil {
		log.Warnw(ctx, "chat generation failed, using fallback", "error", err)
		return FallbackReply(message)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return FallbackReply(message)
	}
	return text
}

func parseRating(text string) (float64, error) {
	fields := strings.Fields(strings.TrimSpace(text))
	if len(fields) == 0 {
		return 0, fmt.Errorf("empty response")
	}
	rating, err := strconv.ParseFloat(strings.Trim(fields[0], "."), 64)
	if err != nil {
		return 0, fmt.Errorf("parse rating: %w", err)
	}
	if rating < 1 || rating > 10 {
		return 0, fmt.Errorf("rating %v out of range", rating)
	}
	return rating, nil
}
