// Package usercontext describes the current user's civic identity to the
// clerk model.
package usercontext

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"tpb/internal/civic/models"
	id "tpb/pkg/domain"
	"tpb/pkg/requestcontext"
)

const anonymousText = "## User Context\nUser is not logged in - Anonymous visitor."

// TownFinder loads the user's current town.
type TownFinder interface {
	FindTownByID(ctx context.Context, townID id.TownID) (*models.Town, error)
}

// Resolver returns the officials serving a town.
type Resolver interface {
	Resolve(ctx context.Context, town *models.Town) ([]models.Official, error)
}

// UserSnapshot is the user part of the structured context.
type UserSnapshot struct {
	Name          string    `json:"name"`
	UserID        id.UserID `json:"user_id"`
	EmailVerified bool      `json:"email_verified"`
}

// LocationSnapshot is present only when the user has a town.
type LocationSnapshot struct {
	Town     string    `json:"town"`
	TownID   id.TownID `json:"town_id"`
	State    string    `json:"state"`
	Congress string    `json:"congress"`
	Senate   string    `json:"senate"`
	House    string    `json:"house"`
}

// Snapshot is the structured form of the context. Absent parts are omitted.
type Snapshot struct {
	User            *UserSnapshot     `json:"user,omitempty"`
	Location        *LocationSnapshot `json:"location,omitempty"`
	Representatives []models.Official `json:"representatives,omitempty"`
}

// Context is what the prompt composer receives.
type Context struct {
	Text     string   `json:"text"`
	Snapshot Snapshot `json:"data"`
	HasReps  bool     `json:"has_reps"`
}

// Assembler builds a Context. Lookup failures are logged and the affected
// sections left out.
type Assembler struct {
	towns    TownFinder
	resolver Resolver
	logger   *slog.Logger
}

type Option func(*Assembler)

func WithLogger(logger *slog.Logger) Option {
	return func(a *Assembler) {
		a.logger = logger
	}
}

func New(towns TownFinder, resolver Resolver, opts ...Option) (*Assembler, error) {
	if towns == nil {
		return nil, errors.New("town finder is required")
	}
	if resolver == nil {
		return nil, errors.New("representative resolver is required")
	}
	a := &Assembler{towns: towns, resolver: resolver}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Assemble describes user; a nil user is an anonymous visitor.
func (a *Assembler) Assemble(ctx context.Context, user *models.User) Context {
	if user == nil {
		return Context{Text: anonymousText}
	}

	lines := []string{
		"## User Context",
		"- Name: " + user.DisplayName(),
		"- User ID: " + user.ID.String(),
		"- Email Verified: " + yesNo(user.EmailVerified),
	}
	out := Context{
		Snapshot: Snapshot{User: &UserSnapshot{
			Name:          user.DisplayName(),
			UserID:        user.ID,
			EmailVerified: user.EmailVerified,
		}},
	}

	if !user.HasTown() {
		out.Text = strings.Join(lines, "\n")
		return out
	}

	town, err := a.towns.FindTownByID(ctx, *user.TownID)
	if err != nil {
		a.warn(ctx, "town lookup failed", user, err)
		out.Text = strings.Join(lines, "\n")
		return out
	}

	lines = append(lines,
		"- Location: "+town.DisplayName(),
		"- US Congress District: "+town.CongressionalDistrict,
		"- State Senate District: "+town.StateSenateDistrict,
		"- State House District: "+town.StateHouseDistrict,
	)
	out.Snapshot.Location = &LocationSnapshot{
		Town:     town.Name,
		TownID:   town.ID,
		State:    town.StateAbbreviation,
		Congress: town.CongressionalDistrict,
		Senate:   town.StateSenateDistrict,
		House:    town.StateHouseDistrict,
	}

	reps, err := a.resolver.Resolve(ctx, town)
	if err != nil {
		a.warn(ctx, "representative resolution failed", user, err)
		reps = nil
	}
	if len(reps) > 0 {
		lines = append(lines, "", "## Your Elected Representatives")
		for _, rep := range reps {
			lines = append(lines, representativeLine(rep))
		}
		out.Snapshot.Representatives = reps
		out.HasReps = true
	}

	out.Text = strings.Join(lines, "\n")
	return out
}

func representativeLine(o models.Official) string {
	var b strings.Builder
	b.WriteString("- " + o.FullName + " (" + o.Title + ", " + o.Party + ")")
	if o.Email != "" {
		b.WriteString(" | Email: " + o.Email)
	}
	if o.Phone != "" {
		b.WriteString(" | Phone: " + o.Phone)
	}
	return b.String()
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func (a *Assembler) warn(ctx context.Context, msg string, user *models.User, err error) {
	if a.logger == nil {
		return
	}
	a.logger.WarnContext(ctx, msg,
		"request_id", requestcontext.RequestID(ctx),
		"user_id", user.ID,
		"error", err,
	)
}
