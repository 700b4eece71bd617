// Package executor applies validated clerk directives to the civic stores.
//
// Each directive gets its own deadline. A failure is recorded in that
// directive's Result and never stops the ones after it.
package executor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"tpb/internal/civic/events"
	civic "tpb/internal/civic/models"
	"tpb/internal/clerk/directive"
	"tpb/internal/clerk/metrics"
	"tpb/internal/clerk/models"
	id "tpb/pkg/domain"
	"tpb/pkg/platform/sentinel"
	"tpb/pkg/requestcontext"
)

const defaultStoreTimeout = 5 * time.Second

const (
	msgUserNotIdentified = "User not identified"
	msgNoContent         = "No content provided"
	msgTownNotFound      = "Town not found"
	msgStoreFailed       = "Could not complete the action"
	msgTimedOut          = "The action timed out"
)

var tracer = otel.Tracer("tpb/clerk/executor")

type ThoughtStore interface {
	Create(ctx context.Context, t *civic.Thought) (id.ThoughtID, error)
}

type TownFinder interface {
	FindTown(ctx context.Context, townName, state string) (*civic.Town, error)
}

type UserTownUpdater interface {
	UpdateTown(ctx context.Context, userID id.UserID, townID id.TownID, stateID id.StateID) error
}

// Emitter receives an event for every state change.
type Emitter interface {
	Emit(ctx context.Context, e events.Event) error
}

// Executor runs directives for one persona and user at a time. It holds no
// per-request state.
type Executor struct {
	thoughts     ThoughtStore
	towns        TownFinder
	users        UserTownUpdater
	emitter      Emitter
	metrics      *metrics.Metrics
	logger       *slog.Logger
	storeTimeout time.Duration
}

type Option func(*Executor)

func WithLogger(logger *slog.Logger) Option {
	return func(e *Executor) {
		e.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(e *Executor) {
		e.metrics = m
	}
}

// WithEmitter publishes civic events for successful state changes.
func WithEmitter(emitter Emitter) Option {
	return func(e *Executor) {
		e.emitter = emitter
	}
}

// WithStoreTimeout bounds each directive's store work.
func WithStoreTimeout(d time.Duration) Option {
	return func(e *Executor) {
		if d > 0 {
			e.storeTimeout = d
		}
	}
}

func New(thoughts ThoughtStore, towns TownFinder, users UserTownUpdater, opts ...Option) (*Executor, error) {
	if thoughts == nil || towns == nil || users == nil {
		return nil, errors.New("thought, town and user stores are required")
	}
	e := &Executor{
		thoughts:     thoughts,
		towns:        towns,
		users:        users,
		logger:       slog.Default(),
		storeTimeout: defaultStoreTimeout,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Execute runs directives in order and returns one Result per directive of a
// known type. Unknown types are dropped. user may be nil.
func (e *Executor) Execute(ctx context.Context, persona *models.Persona, user *civic.User, directives []directive.Directive) []Result {
	results := make([]Result, 0, len(directives))
	for _, d := range directives {
		if !d.Type.Known() {
			e.logger.DebugContext(ctx, "ignoring unknown directive",
				"type", string(d.Type),
				"request_id", requestcontext.RequestID(ctx),
			)
			continue
		}
		var res Result
		if !persona.Allows(d.Type) {
			res = notDone(d.Type, StatusRejected, fmt.Sprintf("Clerk '%s' doesn't have capability for %s", persona.Name, d.Type))
		} else {
			res = e.run(ctx, persona, user, d)
		}
		e.metrics.IncrementDirective(string(d.Type), string(res.Status))
		results = append(results, res)
	}
	return results
}

func (e *Executor) run(ctx context.Context, persona *models.Persona, user *civic.User, d directive.Directive) Result {
	ctx, span := tracer.Start(ctx, "clerk.directive")
	defer span.End()
	span.SetAttributes(attribute.String("directive.type", string(d.Type)))

	ctx, cancel := context.WithTimeout(ctx, e.storeTimeout)
	defer cancel()

	var res Result
	switch d.Type {
	case directive.TypeAddThought:
		res = e.addThought(ctx, persona, user, d)
	case directive.TypeSetTown:
		res = e.setTown(ctx, persona, user, d)
	case directive.TypeLookupTown:
		res = e.lookupTown(ctx, d)
	}

	span.SetAttributes(attribute.String("directive.status", string(res.Status)))
	if res.Status == StatusFailed {
		span.SetStatus(codes.Error, res.Error)
	}
	return res
}

func (e *Executor) addThought(ctx context.Context, persona *models.Persona, user *civic.User, d directive.Directive) Result {
	if !identified(user) {
		return notDone(d.Type, StatusSkipped, msgUserNotIdentified)
	}
	cmd, err := directive.Validate(d)
	if err != nil {
		return notDone(d.Type, StatusSkipped, msgNoContent)
	}
	add := cmd.(directive.AddThought)

	thought, err := civic.NewThought(user.ID, add.Content, add.Jurisdiction, requestcontext.Now(ctx))
	if err != nil {
		return notDone(d.Type, StatusSkipped, msgNoContent)
	}
	thought.TownID = user.TownID
	thought.StateID = user.StateID

	thoughtID, err := e.thoughts.Create(ctx, thought)
	if err != nil {
		return e.storeFailure(ctx, d.Type, "create thought", err)
	}

	e.emit(ctx, events.Event{
		Type:     events.EventThoughtCreated,
		UserID:   user.ID,
		ClerkKey: persona.Key,
		Attributes: map[string]string{
			"thought_id":   thoughtID.String(),
			"jurisdiction": thought.Jurisdiction,
		},
	})

	res := succeeded(d.Type, "Thought submitted successfully!")
	res.ThoughtID = &thoughtID
	return res
}

// identified reports whether effects can be attributed to user.
func identified(user *civic.User) bool {
	return user != nil && !user.ID.IsZero()
}

func (e *Executor) setTown(ctx context.Context, persona *models.Persona, user *civic.User, d directive.Directive) Result {
	cmd, err := directive.Validate(d)
	if err != nil {
		return notDone(d.Type, StatusFailed, err.Error())
	}
	set := cmd.(directive.SetTown)

	town, err := e.towns.FindTown(ctx, set.Town, set.State)
	if errors.Is(err, sentinel.ErrNotFound) {
		return notDone(d.Type, StatusFailed, fmt.Sprintf("Town '%s' in '%s' not found", set.Town, set.State))
	}
	if err != nil {
		return e.storeFailure(ctx, d.Type, "find town", err)
	}
	if !identified(user) {
		return notDone(d.Type, StatusSkipped, msgUserNotIdentified)
	}

	if err := e.users.UpdateTown(ctx, user.ID, town.ID, town.StateID); err != nil {
		return e.storeFailure(ctx, d.Type, "update user town", err)
	}

	e.emit(ctx, events.Event{
		Type:     events.EventUserTownChanged,
		UserID:   user.ID,
		ClerkKey: persona.Key,
		Attributes: map[string]string{
			"town_id":  town.ID.String(),
			"state_id": town.StateID.String(),
		},
	})

	res := succeeded(d.Type, "Town set to "+town.DisplayName())
	townID := town.ID
	res.TownID = &townID
	res.TownName = town.Name
	res.State = town.StateAbbreviation
	return res
}

func (e *Executor) lookupTown(ctx context.Context, d directive.Directive) Result {
	cmd, err := directive.Validate(d)
	if err != nil {
		return notDone(d.Type, StatusFailed, err.Error())
	}
	lookup := cmd.(directive.LookupTown)

	town, err := e.towns.FindTown(ctx, lookup.Town, lookup.State)
	if errors.Is(err, sentinel.ErrNotFound) {
		return notDone(d.Type, StatusFailed, msgTownNotFound)
	}
	if err != nil {
		return e.storeFailure(ctx, d.Type, "find town", err)
	}

	res := succeeded(d.Type, "")
	res.Town = &TownInfo{
		TownID:      town.ID,
		Name:        town.DisplayName(),
		USCongress:  town.CongressionalDistrict,
		StateSenate: town.StateSenateDistrict,
		StateHouse:  town.StateHouseDistrict,
	}
	return res
}

func (e *Executor) storeFailure(ctx context.Context, action directive.Type, op string, err error) Result {
	e.logger.ErrorContext(ctx, "directive store operation failed",
		"type", string(action),
		"op", op,
		"error", err,
		"request_id", requestcontext.RequestID(ctx),
	)
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, sentinel.ErrTimeout) {
		return notDone(action, StatusFailed, msgTimedOut)
	}
	return notDone(action, StatusFailed, msgStoreFailed)
}

// emit publishes best-effort. The directive already succeeded.
func (e *Executor) emit(ctx context.Context, ev events.Event) {
	if e.emitter == nil {
		return
	}
	ev.RequestID = requestcontext.RequestID(ctx)
	if err := e.emitter.Emit(context.WithoutCancel(ctx), ev); err != nil {
		e.logger.WarnContext(ctx, "failed to publish civic event",
			"type", string(ev.Type),
			"error", err,
			"request_id", ev.RequestID,
		)
	}
}
