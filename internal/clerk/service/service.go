// Package service runs one clerk conversation turn end to end: persona, user
// context, prompt, model call, directives and the cleaned reply.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	civic "tpb/internal/civic/models"
	"tpb/internal/clerk/directive"
	"tpb/internal/clerk/executor"
	"tpb/internal/clerk/metrics"
	"tpb/internal/clerk/model"
	"tpb/internal/clerk/models"
	"tpb/internal/clerk/prompt"
	dErrors "tpb/pkg/domain-errors"
	"tpb/pkg/platform/sentinel"
	"tpb/pkg/requestcontext"
)

var tracer = otel.Tracer("tpb/clerk/service")

// Config tunes the model call.
type Config struct {
	DefaultModel string
	MaxTokens    int
}

func DefaultConfig() *Config {
	return &Config{
		DefaultModel: "claude-sonnet-4-5",
		MaxTokens:    1024,
	}
}

// ChatRequest is one user turn. Clerk names the persona; empty means the
// default.
type ChatRequest struct {
	Message string        `json:"message"`
	History []models.Turn `json:"history"`
	Clerk   string        `json:"clerk"`
}

// ChatResponse carries the sanitized reply and every directive result.
type ChatResponse struct {
	Response string            `json:"response"`
	Clerk    string            `json:"clerk"`
	Actions  []executor.Result `json:"actions"`
	Usage    *model.Usage      `json:"usage,omitempty"`
}

type Service struct {
	personas  PersonaStore
	users     UserFinder
	assembler ContextAssembler
	lookup    ContextLookup
	invoker   model.Invoker
	executor  DirectiveExecutor
	metrics   *metrics.Metrics
	logger    *slog.Logger
	config    *Config
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithConfig(cfg *Config) Option {
	return func(s *Service) {
		s.config = cfg
	}
}

// WithContextLookup enables message-scoped facts in the prompt.
func WithContextLookup(lookup ContextLookup) Option {
	return func(s *Service) {
		s.lookup = lookup
	}
}

func New(
	personas PersonaStore,
	users UserFinder,
	assembler ContextAssembler,
	invoker model.Invoker,
	exec DirectiveExecutor,
	opts ...Option,
) (*Service, error) {
	if personas == nil {
		return nil, fmt.Errorf("persona store is required")
	}
	if users == nil {
		return nil, fmt.Errorf("user finder is required")
	}
	if assembler == nil {
		return nil, fmt.Errorf("context assembler is required")
	}
	if invoker == nil {
		return nil, fmt.Errorf("model invoker is required")
	}
	if exec == nil {
		return nil, fmt.Errorf("directive executor is required")
	}

	svc := &Service{
		personas:  personas,
		users:     users,
		assembler: assembler,
		invoker:   invoker,
		executor:  exec,
		logger:    slog.Default(),
		config:    DefaultConfig(),
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

// Chat answers one message for the user in ctx, or an anonymous visitor.
// A failed model call aborts before any directive runs.
func (s *Service) Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	ctx, span := tracer.Start(ctx, "clerk.chat")
	defer span.End()

	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "No message provided")
	}
	for _, turn := range req.History {
		if err := turn.Validate(); err != nil {
			return nil, err
		}
	}

	persona, err := s.persona(ctx, req.Clerk)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "persona")
		return nil, err
	}
	span.SetAttributes(attribute.String("clerk.key", persona.Key))

	user := s.currentUser(ctx)

	userCtx := s.assembler.Assemble(ctx, user)
	var lookups string
	if s.lookup != nil {
		lookups = s.lookup.Lookup(ctx, message)
	}
	p := prompt.Compose(prompt.Input{
		Persona:     persona,
		ContextText: userCtx.Text,
		Lookups:     lookups,
		History:     req.History,
		Message:     message,
	})

	reply, err := s.invoke(ctx, model.Request{
		Model:     persona.ModelOr(s.config.DefaultModel),
		System:    p.System,
		MaxTokens: s.config.MaxTokens,
		Messages:  p.Messages,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "model call failed")
		return nil, err
	}

	results := s.executor.Execute(ctx, persona, user, directive.Parse(reply.Text))

	s.recordInteraction(ctx, persona)
	s.metrics.IncrementChat(persona.Key)
	if reply.Usage != nil {
		s.metrics.AddTokens(reply.Usage.InputTokens, reply.Usage.OutputTokens)
	}

	return &ChatResponse{
		Response: directive.Sanitize(reply.Text),
		Clerk:    persona.Name,
		Actions:  results,
		Usage:    reply.Usage,
	}, nil
}

// persona loads the requested persona, falling back to the default one.
func (s *Service) persona(ctx context.Context, key string) (*models.Persona, error) {
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "" {
		key = models.DefaultPersonaKey
	}
	p, err := s.personas.FindByKey(ctx, key)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, sentinel.ErrNotFound) {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load clerk")
	}
	if key != models.DefaultPersonaKey {
		p, err = s.personas.FindByKey(ctx, models.DefaultPersonaKey)
		if err == nil {
			return p, nil
		}
		if !errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load clerk")
		}
	}
	return nil, dErrors.New(dErrors.CodeNotFound, "No AI clerk available")
}

// currentUser returns nil for anonymous visitors and for users that cannot be
// loaded.
func (s *Service) currentUser(ctx context.Context) *civic.User {
	userID := requestcontext.UserID(ctx)
	if userID.IsZero() {
		return nil
	}
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, sentinel.ErrNotFound) {
			s.logger.WarnContext(ctx, "failed to load user, continuing anonymously",
				"user_id", userID,
				"error", err,
				"request_id", requestcontext.RequestID(ctx),
			)
		}
		return nil
	}
	return user
}

func (s *Service) invoke(ctx context.Context, req model.Request) (*model.Reply, error) {
	ctx, span := tracer.Start(ctx, "clerk.model",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("model.id", req.Model),
			attribute.Int("model.max_tokens", req.MaxTokens),
		),
	)
	defer span.End()

	start := time.Now()
	reply, err := s.invoker.Invoke(ctx, req)
	switch {
	case err == nil:
		s.metrics.ObserveModelLatency("ok", time.Since(start))
	case dErrors.HasCode(err, dErrors.CodeTimeout):
		s.metrics.ObserveModelLatency("timeout", time.Since(start))
	default:
		s.metrics.ObserveModelLatency("error", time.Since(start))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, dErrors.MessageOf(err))
		s.logger.ErrorContext(ctx, "model call failed",
			"model", req.Model,
			"error", err,
			"request_id", requestcontext.RequestID(ctx),
		)
		if !dErrors.HasCode(err, dErrors.CodeUpstream) && !dErrors.HasCode(err, dErrors.CodeTimeout) {
			err = dErrors.Wrap(err, dErrors.CodeUpstream, "API call failed")
		}
		return nil, err
	}
	return reply, nil
}

func (s *Service) recordInteraction(ctx context.Context, persona *models.Persona) {
	if err := s.personas.RecordInteraction(ctx, persona.ID, requestcontext.Now(ctx)); err != nil {
		s.logger.WarnContext(ctx, "failed to record clerk interaction",
			"clerk", persona.Key,
			"error", err,
			"request_id", requestcontext.RequestID(ctx),
		)
	}
}
