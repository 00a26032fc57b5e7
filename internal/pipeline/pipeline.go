// Package pipeline walks the unique values of a CSV column through the
// Knowledge Graph and collects operator-approved replacements.
package pipeline

import (
	"context"
	"errors"
	"sort"
	"time"

	"go.uber.org/zap"

	"kgrefine/internal/nouns"
)

// Google rate-limits entity searches at roughly 1000 req/s (undocumented).
// After 500 consecutive lookups the pipeline pauses for a minute.
const (
	defaultCooldownLimit = 500
	defaultCooldownDelay = time.Minute
)

// ErrAborted signals that the operator cancelled the whole run at a
// confirmation prompt.
var ErrAborted = errors.New("aborted by user")

// Lookup asks an external service for the canonical form of a value.
// *gkg.Client satisfies it.
type Lookup interface {
	Suggest(ctx context.Context, query string) (string, error)
}

// Confirmer asks the operator whether to accept one replacement.
// Position is 1-based; total counts every unique value of the run.
// Returning ErrAborted stops the run.
type Confirmer interface {
	Confirm(position, total int, original, suggestion string) (bool, error)
}

// Result carries what a run accomplished. A run that stops early (abort,
// lookup failure) still returns everything processed up to that point;
// the in-flight value is in neither Processed nor Replacements.
type Result struct {
	// Processed lists every value that completed the loop, including
	// ignored values and values whose suggestion was rejected.
	Processed []string
	// Replacements maps original values to accepted suggestions.
	Replacements map[string]string
	// Offered counts how many suggestions reached a prompt.
	Offered int
}

// Pipeline wires the lookup service, the noun comparer, and the
// confirmation prompt together. The zero value of the tuning fields gets
// the production defaults.
type Pipeline struct {
	Lookup  Lookup
	Nouns   nouns.Comparer
	Confirm Confirmer
	Log     *zap.Logger

	// CooldownLimit is how many consecutive lookups run before pausing.
	CooldownLimit int
	// CooldownDelay is how long the pause lasts.
	CooldownDelay time.Duration
	// Sleep overrides time.Sleep, for tests.
	Sleep func(time.Duration)
}

// Process walks the given unique values in sorted order, skips empty and
// ignored ones, asks the lookup service for the rest, and prompts for
// every suggestion that is more than a singular/plural variant of its
// value. Failures end the run early; partial results are always
// returned, never an error.
func (p *Pipeline) Process(ctx context.Context, values []string, ignore map[string]bool) Result {
	log := p.Log
	if log == nil {
		log = zap.NewNop()
	}
	comparer := p.Nouns
	if comparer == nil {
		comparer = nouns.NewComparer()
	}
	limit := p.CooldownLimit
	if limit <= 0 {
		limit = defaultCooldownLimit
	}
	delay := p.CooldownDelay
	if delay <= 0 {
		delay = defaultCooldownDelay
	}
	sleep := p.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	sorted := make([]string, len(values))
	copy(sorted, values)
	sort.Strings(sorted)

	result := Result{
		Processed:    make([]string, 0, len(sorted)),
		Replacements: make(map[string]string),
	}
	consecutive := 0

	for i, value := range sorted {
		if value == "" {
			continue
		}
		if ignore[value] {
			result.Processed = append(result.Processed, value)
			continue
		}
		if consecutive == limit {
			log.Info("hit request cooldown, sleeping",
				zap.Int("lookups", consecutive),
				zap.Duration("delay", delay))
			sleep(delay)
			log.Info("request cooldown over, continuing")
			consecutive = 0
		}
		consecutive++

		suggestion, err := p.Lookup.Suggest(ctx, value)
		if err != nil {
			log.Error("lookup failed, stopping run",
				zap.String("value", value),
				zap.Error(err))
			break
		}

		if suggestion != "" && !comparer.Equal(suggestion, value) {
			result.Offered++
			// Human interaction throttles the request rate; start the
			// cooldown count over.
			consecutive = 0
			accepted, err := p.Confirm.Confirm(i+1, len(sorted), value, suggestion)
			if err != nil {
				if errors.Is(err, ErrAborted) {
					log.Info("run aborted at prompt", zap.String("value", value))
				} else {
					log.Error("confirmation prompt failed, stopping run",
						zap.String("value", value),
						zap.Error(err))
				}
				break
			}
			if accepted {
				result.Replacements[value] = suggestion
			}
		}
		result.Processed = append(result.Processed, value)
	}

	log.Info("offered suggestions", zap.Int("count", result.Offered))
	log.Info("collected replacement pairs", zap.Int("count", len(result.Replacements)))
	return result
}
