package generator

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"mapforge/internal/llm"
	"mapforge/internal/parse"
	"mapforge/internal/prompt"
	"mapforge/internal/schema"
)

// Defaults for the repair loop.
const (
	DefaultMaxAttempts    = 3
	DefaultAttemptTimeout = 60 * time.Second

	defaultMaxOutputTokens = 8192
)

// state tags the orchestrator's position in the repair loop.
type state int

const (
	stateIdle state = iota
	stateRequesting
	stateParsing
	stateValidating
	stateRepairing
	stateSuccess
	stateFailed
)

// Generator orchestrates bounded repair-retry generation calls. A
// Generator is safe for concurrent use: every call owns its own attempt
// counter, prompt context, and conversation history.
type Generator struct {
	client      llm.Client
	prompts     *prompt.Builder
	validator   Validator
	maxAttempts int
	timeout     time.Duration
	maxTokens   int
	logger      *zap.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithMaxAttempts bounds the total number of completion exchanges per
// call, including the first.
func WithMaxAttempts(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.maxAttempts = n
		}
	}
}

// WithAttemptTimeout bounds the latency of a single exchange.
func WithAttemptTimeout(d time.Duration) Option {
	return func(g *Generator) {
		if d > 0 {
			g.timeout = d
		}
	}
}

// WithLogger attaches a logger. Without it the Generator is silent.
func WithLogger(l *zap.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// New creates a Generator over the given completion client.
func New(client llm.Client, opts ...Option) *Generator {
	g := &Generator{
		client:      client,
		prompts:     prompt.NewBuilder(),
		maxAttempts: DefaultMaxAttempts,
		timeout:     DefaultAttemptTimeout,
		maxTokens:   defaultMaxOutputTokens,
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate runs one generation call to completion. It never returns an
// error for model misbehavior: parse failures, validation failures, and
// transport failures all consume repair attempts, and exhaustion resolves
// to the deterministic fallback result. The only errors returned are an
// AuthError for an empty or rejected credential (checked before any
// exchange) and a fail-fast complaint about non-positive dimensions.
func (g *Generator) Generate(ctx context.Context, req Request) (*Result, error) {
	if strings.TrimSpace(req.Credential) == "" {
		return nil, &llm.AuthError{Reason: "credential is empty"}
	}
	if req.Width <= 0 || req.Height <= 0 {
		return nil, errors.New("width and height must be positive")
	}

	id := uuid.NewString()
	log := g.logger.With(
		zap.String("generation_id", id),
		zap.Int("width", req.Width),
		zap.Int("height", req.Height),
	)
	log.Info("starting generation", zap.String("description", req.Description))

	initial := g.prompts.BuildInitial(promptRequest(req))

	var (
		st        = stateIdle
		attempt   int
		userMsg   string
		repairMsg string
		history   []llm.Message
		last      attemptState
	)

	for {
		switch st {
		case stateIdle:
			g.report(req, "interpreting description...")
			userMsg = initial.User
			st = stateRequesting

		case stateRequesting:
			attempt++
			g.report(req, "contacting model...")
			last = attemptState{index: attempt, userPrompt: userMsg}

			raw, err := g.exchange(ctx, initial.System, history, userMsg, req.Credential)
			if err != nil {
				var authErr *llm.AuthError
				if errors.As(err, &authErr) {
					log.Error("credential rejected", zap.Error(err))
					return nil, err
				}
				log.Warn("completion exchange failed", zap.Int("attempt", attempt), zap.Error(err))
				if attempt >= g.maxAttempts {
					st = stateFailed
				} else {
					// No violations to embed; resend the same prompt.
					repairMsg = userMsg
					st = stateRepairing
				}
				continue
			}
			last.raw = raw
			st = stateParsing

		case stateParsing:
			g.report(req, "reading model response...")
			payload, err := parse.Extract(last.raw)
			if err != nil {
				log.Warn("response payload unreadable", zap.Int("attempt", attempt), zap.Error(err))
				if attempt >= g.maxAttempts {
					st = stateFailed
					continue
				}
				var perr *parse.ParseError
				reason := err.Error()
				if errors.As(err, &perr) {
					reason = perr.Reason
				}
				history = append(history,
					llm.Message{Role: llm.RoleUser, Content: userMsg},
					llm.Message{Role: llm.RoleAssistant, Content: last.raw},
				)
				repairMsg = g.prompts.BuildFormatRepair(promptRequest(req), reason)
				st = stateRepairing
				continue
			}
			last.payload = payload
			st = stateValidating

		case stateValidating:
			g.report(req, "validating response...")
			violations := g.validator.Check(last.payload, req)
			if len(violations) == 0 {
				st = stateSuccess
				continue
			}
			last.violations = violations
			log.Info("grid rejected",
				zap.Int("attempt", attempt),
				zap.Int("violations", len(violations)))
			if attempt >= g.maxAttempts {
				st = stateFailed
				continue
			}
			history = append(history,
				llm.Message{Role: llm.RoleUser, Content: userMsg},
				llm.Message{Role: llm.RoleAssistant, Content: last.raw},
			)
			repairMsg = g.prompts.BuildRepair(promptRequest(req), violations)
			st = stateRepairing

		case stateRepairing:
			g.report(req, "retrying with corrections...")
			userMsg = repairMsg
			st = stateRequesting

		case stateSuccess:
			g.report(req, "map ready")
			log.Info("generation succeeded", zap.Int("attempts", attempt))
			return &Result{
				Grid: schema.GridFromCells(last.payload.Cells),
				Metadata: Metadata{
					Interpretation: last.payload.Interpretation,
					Archetype:      last.payload.Archetype,
					Features:       last.payload.Features,
				},
				GenerationID: id,
				Attempts:     attempt,
			}, nil

		case stateFailed:
			g.report(req, "generation failed, returning fallback map")
			log.Warn("generation exhausted, returning fallback", zap.Int("attempts", attempt))
			return &Result{
				Grid: FallbackGrid(req.Width, req.Height),
				Metadata: Metadata{
					Interpretation: failureInterpretation(attempt),
					Features:       []string{},
				},
				GenerationID: id,
				Attempts:     attempt,
				Fallback:     true,
			}, nil
		}
	}
}

// exchange performs exactly one completion call, with the per-attempt
// timeout applied. A request already sent is not actively aborted on
// cancellation; the timeout context gives the transport a best-effort
// cancellation signal and any late result is discarded.
func (g *Generator) exchange(ctx context.Context, system string, history []llm.Message, userMsg, credential string) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	messages := make([]llm.Message, 0, len(history)+1)
	messages = append(messages, history...)
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: userMsg})

	return g.client.Complete(callCtx, llm.Request{
		System:     system,
		Messages:   messages,
		Credential: credential,
		MaxTokens:  g.maxTokens,
	})
}

func (g *Generator) report(req Request, status string) {
	if req.OnProgress != nil {
		req.OnProgress(status)
	}
}
