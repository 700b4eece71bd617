// Package lookup adds facts to the prompt that the user's message asks about:
// a "<Town>, <State>" mention and the words "thought" or "issue".
package lookup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	civic "tpb/internal/civic/models"
	"tpb/pkg/platform/sentinel"
	"tpb/pkg/requestcontext"
)

const recentThoughtLimit = 3

var townMention = regexp.MustCompile(`(?i)\b(\w+)[,\s]+(ct|conn|connecticut|ri|rhode island)\b`)

var stateAliases = map[string]string{
	"CONNECTICUT":  "CT",
	"CONN":         "CT",
	"RHODE ISLAND": "RI",
}

type TownFinder interface {
	FindTown(ctx context.Context, townName, state string) (*civic.Town, error)
}

type ThoughtLister interface {
	ListRecent(ctx context.Context, limit int) ([]civic.Thought, error)
}

// Lookup scans a message and renders matching facts. Store failures drop the
// affected section.
type Lookup struct {
	towns    TownFinder
	thoughts ThoughtLister
	logger   *slog.Logger
}

type Option func(*Lookup)

func WithLogger(logger *slog.Logger) Option {
	return func(l *Lookup) {
		l.logger = logger
	}
}

func New(towns TownFinder, thoughts ThoughtLister, opts ...Option) (*Lookup, error) {
	if towns == nil || thoughts == nil {
		return nil, errors.New("town finder and thought lister are required")
	}
	l := &Lookup{towns: towns, thoughts: thoughts, logger: slog.Default()}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// Lookup returns newline-joined context lines, or "" when the message
// mentions nothing it knows about.
func (l *Lookup) Lookup(ctx context.Context, message string) string {
	var lines []string
	lines = append(lines, l.townLines(ctx, message)...)

	lower := strings.ToLower(message)
	if strings.Contains(lower, "thought") || strings.Contains(lower, "issue") {
		lines = append(lines, l.thoughtLines(ctx)...)
	}
	return strings.Join(lines, "\n")
}

// ParseTownMention extracts the first "<Town>, <ST>" mention. The town is
// title-cased and the state reduced to its abbreviation.
func ParseTownMention(message string) (town, state string, ok bool) {
	m := townMention.FindStringSubmatch(message)
	if m == nil {
		return "", "", false
	}
	town = titleCase(m[1])
	state = strings.ToUpper(m[2])
	if abbr, found := stateAliases[state]; found {
		state = abbr
	}
	return town, state, true
}

func (l *Lookup) townLines(ctx context.Context, message string) []string {
	name, state, ok := ParseTownMention(message)
	if !ok {
		return nil
	}
	town, err := l.towns.FindTown(ctx, name, state)
	if err != nil {
		if !errors.Is(err, sentinel.ErrNotFound) {
			l.logger.WarnContext(ctx, "town lookup failed",
				"error", err,
				"request_id", requestcontext.RequestID(ctx),
			)
		}
		return nil
	}
	return []string{
		fmt.Sprintf("Town found: %s (town_id: %d)", town.DisplayName(), town.ID),
		"  - US Congress District: " + town.CongressionalDistrict,
		"  - State Senate District: " + town.StateSenateDistrict,
		"  - State House District: " + town.StateHouseDistrict,
	}
}

func (l *Lookup) thoughtLines(ctx context.Context) []string {
	thoughts, err := l.thoughts.ListRecent(ctx, recentThoughtLimit)
	if err != nil {
		l.logger.WarnContext(ctx, "recent thoughts lookup failed",
			"error", err,
			"request_id", requestcontext.RequestID(ctx),
		)
		return nil
	}
	if len(thoughts) == 0 {
		return nil
	}
	lines := make([]string, 0, len(thoughts)+1)
	lines = append(lines, "Recent thoughts in TPB:")
	for _, t := range thoughts {
		lines = append(lines, fmt.Sprintf("  - \"%s\" (%d upvotes, %s)", t.Content, t.Upvotes, t.Jurisdiction))
	}
	return lines
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
