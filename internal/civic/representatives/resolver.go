// Package representatives finds the elected officials who serve a town.
package representatives

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"tpb/internal/civic/models"
	id "tpb/pkg/domain"
	dErrors "tpb/pkg/domain-errors"
)

const defaultTimeout = 5 * time.Second

// OfficialStore is the read side of the officials table.
type OfficialStore interface {
	FindCurrentByDivisions(ctx context.Context, addrs []models.DivisionAddress) ([]models.Official, error)
	FindCurrentStatewide(ctx context.Context, stateCode string, titles []string) ([]models.Official, error)
}

// Resolver combines district and statewide officials for a town.
type Resolver struct {
	officials OfficialStore
	timeout   time.Duration
	logger    *slog.Logger
}

type Option func(*Resolver)

func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// WithTimeout bounds both lookups together.
func WithTimeout(d time.Duration) Option {
	return func(r *Resolver) {
		if d > 0 {
			r.timeout = d
		}
	}
}

func New(officials OfficialStore, opts ...Option) (*Resolver, error) {
	if officials == nil {
		return nil, errors.New("official store is required")
	}
	r := &Resolver{officials: officials, timeout: defaultTimeout}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Resolve returns the town's district officials followed by its state's
// statewide officials, each official at most once. A nil town has no
// representatives.
func (r *Resolver) Resolve(ctx context.Context, town *models.Town) ([]models.Official, error) {
	if town == nil {
		return []models.Official{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)

	var district, statewide []models.Official

	if addrs := town.DistrictAddresses(); len(addrs) > 0 {
		g.Go(func() error {
			found, err := r.officials.FindCurrentByDivisions(ctx, addrs)
			if err != nil {
				return err
			}
			district = found
			return nil
		})
	}

	if town.StateAbbreviation != "" {
		g.Go(func() error {
			found, err := r.officials.FindCurrentStatewide(ctx, town.StateAbbreviation, models.StatewideTitles)
			if err != nil {
				return err
			}
			statewide = found
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		if r.logger != nil {
			r.logger.WarnContext(ctx, "representative lookup failed",
				"town_id", town.ID,
				"error", err,
			)
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to resolve representatives")
	}

	return merge(district, statewide), nil
}

func merge(groups ...[]models.Official) []models.Official {
	seen := make(map[id.OfficialID]struct{})
	out := make([]models.Official, 0)
	for _, group := range groups {
		for _, o := range group {
			if _, dup := seen[o.ID]; dup {
				continue
			}
			seen[o.ID] = struct{}{}
			out = append(out, o)
		}
	}
	return out
}
