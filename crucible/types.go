package crucible

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors returned by FindCheapestPath and FindMany.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed.
	ErrNilGrid = errors.New("crucible: grid is nil")

	// ErrNilGoal indicates that no goal predicate was supplied.
	ErrNilGoal = errors.New("crucible: goal predicate is nil")

	// ErrStartOutOfBounds indicates the start coordinate lies outside the grid.
	ErrStartOutOfBounds = errors.New("crucible: start position outside grid")

	// ErrBadPolicy indicates movement limits that cannot be searched.
	ErrBadPolicy = errors.New("crucible: invalid movement policy")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("crucible: invalid option supplied")

	// ErrNoPathFound indicates the frontier emptied before any state
	// satisfied the goal. Retrying cannot change the outcome.
	ErrNoPathFound = errors.New("crucible: no path found")

	// ErrBudgetExceeded indicates the WithMaxExpansions limit was reached
	// before the goal was popped.
	ErrBudgetExceeded = errors.New("crucible: expansion budget exceeded")
)

// Option configures a search via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation when the
// search starts.
type Option func(*Options)

// Options holds the movement policy, limits and hooks for one search.
type Options struct {
	// Ctx allows cancellation and deadlines. Checked on every pop.
	Ctx context.Context

	// Policy is the movement rule set.
	Policy Policy

	// MaxExpansions, if > 0, aborts with ErrBudgetExceeded after that many
	// states have been expanded. Zero means no limit.
	MaxExpansions int

	// OnExpand is called when a state is popped and about to be expanded,
	// with its cumulative cost.
	OnExpand func(s State, cost int64)

	// OnPush is called whenever a state is relaxed and pushed onto the frontier.
	OnPush func(s State, cost int64)

	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - DefaultPolicy() (MaxRun 3, MinRun 0)
//   - no expansion limit
//   - no-op hooks
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		Policy:        DefaultPolicy(),
		MaxExpansions: 0,
		OnExpand:      func(State, int64) {},
		OnPush:        func(State, int64) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithPolicy replaces the whole movement policy. The policy is validated when
// the search starts, not here.
func WithPolicy(p Policy) Option {
	return func(o *Options) {
		o.Policy = p
	}
}

// WithMaxRun sets Policy.MaxRun.
func WithMaxRun(n int) Option {
	return func(o *Options) {
		o.Policy.MaxRun = n
	}
}

// WithMinRun sets Policy.MinRun.
func WithMinRun(n int) Option {
	return func(o *Options) {
		o.Policy.MinRun = n
	}
}

// WithMaxExpansions bounds the number of expanded states.
//
//	n > 0:  limit to n expansions
//	n == 0: explicit no limit
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithOnExpand registers a callback run before each state is expanded.
func WithOnExpand(fn func(s State, cost int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnPush registers a callback run each time a state is pushed.
func WithOnPush(fn func(s State, cost int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPush = fn
		}
	}
}
