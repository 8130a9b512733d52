package flavor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/osse101/FichasBot_Go/internal/logger"
	"github.com/osse101/FichasBot_Go/internal/metrics"
	"github.com/osse101/FichasBot_Go/internal/utils"
)

// Completer is the slice of the completion client the generator calls
type Completer interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Config holds flavor generator settings. An empty APIKey disables the
// remote completion.
type Config struct {
	APIKey         string
	BaseURL        string
	Model          string
	Timeout        time.Duration
	Locale         string
	CurrencySymbol string
}

// Generator produces short result lines. It tries the remote completion
// first and falls back to local templates on any failure.
type Generator struct {
	client  Completer
	model   string
	timeout time.Duration
	format  *AmountFormatter
	rng     func(int) int
}

// NewGenerator builds a generator from cfg. rng may be nil.
func NewGenerator(cfg Config, rng func(int) int) *Generator {
	var client Completer
	if cfg.APIKey != "" {
		oc := openai.DefaultConfig(cfg.APIKey)
		if cfg.BaseURL != "" {
			oc.BaseURL = cfg.BaseURL
		}
		client = openai.NewClientWithConfig(oc)
	}
	return NewGeneratorWithClient(cfg, client, rng)
}

// NewGeneratorWithClient builds a generator around an existing client. A nil
// client always uses the fallback templates.
func NewGeneratorWithClient(cfg Config, client Completer, rng func(int) int) *Generator {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if rng == nil {
		rng = utils.SecureIntn
	}
	return &Generator{
		client:  client,
		model:   cfg.Model,
		timeout: cfg.Timeout,
		format:  NewAmountFormatter(cfg.Locale, cfg.CurrencySymbol),
		rng:     rng,
	}
}

// Generate returns a line describing a result. It never fails.
func (g *Generator) Generate(ctx context.Context, category string, amount int64, won bool, extra ...string) string {
	if text, ok := g.remote(ctx, category, amount, won, extra); ok {
		metrics.FlavorTexts.WithLabelValues(metrics.SourceRemote).Inc()
		return text
	}
	metrics.FlavorTexts.WithLabelValues(metrics.SourceFallback).Inc()
	return g.Fallback(category, amount, won)
}

// Fallback picks uniformly from the local templates for {category, won}.
// Unknown categories use the default table.
func (g *Generator) Fallback(category string, amount int64, won bool) string {
	templates, ok := fallbackTemplates[templateKey{category, won}]
	if !ok {
		templates = fallbackTemplates[templateKey{CategoryDefault, won}]
	}
	return fmt.Sprintf(templates[g.rng(len(templates))], g.format.Format(amount))
}

func (g *Generator) remote(ctx context.Context, category string, amount int64, won bool, extra []string) (string, bool) {
	log := logger.FromContext(ctx)

	if g.client == nil {
		log.Debug(LogMsgRemoteDisabled)
		return "", false
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     g.model,
		MaxTokens: DefaultMaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: g.prompt(category, amount, won, extra)},
		},
	})
	if err != nil {
		log.Warn(LogMsgRemoteFailed, "category", category, "error", err)
		return "", false
	}
	if len(resp.Choices) == 0 {
		log.Warn(LogMsgRemoteEmpty, "category", category)
		return "", false
	}
	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		log.Warn(LogMsgRemoteEmpty, "category", category)
		return "", false
	}
	return text, true
}

func (g *Generator) prompt(category string, amount int64, won bool, extra []string) string {
	outcome := outcomeLost
	if won {
		outcome = outcomeWon
	}
	p := fmt.Sprintf(promptFmt, category, outcome, g.format.Format(amount))
	if details := strings.TrimSpace(strings.Join(extra, ", ")); details != "" {
		p += fmt.Sprintf(promptExtra, details)
	}
	return p
}
