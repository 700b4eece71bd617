// Package persona stores clerk personas and their usage counters.
package persona

import (
	"context"
	"time"

	"tpb/internal/clerk/models"
	id "tpb/pkg/domain"
)

// Store is the persona catalog contract shared by every backend.
type Store interface {
	FindByKey(ctx context.Context, key string) (*models.Persona, error)
	Save(ctx context.Context, p *models.Persona) error
	RecordInteraction(ctx context.Context, clerkID id.ClerkID, at time.Time) error
}
