package service

import (
	"context"
	"time"

	civic "tpb/internal/civic/models"
	"tpb/internal/clerk/directive"
	"tpb/internal/clerk/executor"
	"tpb/internal/clerk/models"
	"tpb/internal/clerk/usercontext"
	id "tpb/pkg/domain"
)

type PersonaStore interface {
	FindByKey(ctx context.Context, key string) (*models.Persona, error)
	RecordInteraction(ctx context.Context, clerkID id.ClerkID, at time.Time) error
}

type UserFinder interface {
	FindByID(ctx context.Context, userID id.UserID) (*civic.User, error)
}

type ContextAssembler interface {
	Assemble(ctx context.Context, user *civic.User) usercontext.Context
}

// ContextLookup renders facts the message itself asks about.
type ContextLookup interface {
	Lookup(ctx context.Context, message string) string
}

type DirectiveExecutor interface {
	Execute(ctx context.Context, persona *models.Persona, user *civic.User, directives []directive.Directive) []executor.Result
}
