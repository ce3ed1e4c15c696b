package temporal

import (
	"strconv"
	"strings"
	"time"

	"timebanner/internal/core/normalize"
	perr "timebanner/internal/platform/errors"
)

// Intent tells the rendering side which display style a resolved instant wants
type Intent int

// Display intents
const (
	IntentRelative Intent = iota
	IntentAbsolute
	IntentClock
)

func (i Intent) String() string {
	switch i {
	case IntentRelative:
		return "relative"
	case IntentClock:
		return "clock"
	default:
		return "absolute"
	}
}

// ResolvedInstant is the outcome of resolving one expression. Built per
// request, consumed immediately, never shared
type ResolvedInstant struct {
	UTC           time.Time
	OffsetSeconds int
	Intent        Intent
}

// Config carries the per-resolution options
type Config struct {
	Order  DateOrder
	Strict bool
}

// Resolver classifies raw expressions and dispatches to the right parser.
// Stateless beyond the read-only abbreviation table, safe for concurrent use
type Resolver struct {
	table *AbbrevTable
	cfg   Config
	now   func() time.Time
	norm  *normalize.Normalizer
}

// Option customizes a Resolver
type Option func(*Resolver)

// WithClock swaps the wall clock, used by tests for deterministic instants
func WithClock(now func() time.Time) Option {
	return func(r *Resolver) { r.now = now }
}

// NewResolver builds a resolver over the given abbreviation table and
// default configuration
func NewResolver(tbl *AbbrevTable, cfg Config, opts ...Option) *Resolver {
	r := &Resolver{
		table: tbl,
		cfg:   cfg,
		now:   time.Now,
		norm:  normalize.New(),
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Resolve resolves raw under the resolver's default configuration
func (r *Resolver) Resolve(raw string) (ResolvedInstant, error) {
	return r.ResolveWith(raw, r.cfg)
}

// ResolveWith resolves raw with per-request configuration overrides.
// Dispatch order: signed input is relative (integer seconds first, then the
// duration grammar), a bare integer is epoch seconds, everything else is an
// absolute date-time expression
func (r *Resolver) ResolveWith(raw string, cfg Config) (ResolvedInstant, error) {
	s := r.norm.Normalize(raw)
	if s == "" {
		return ResolvedInstant{}, perr.Parsef("empty time expression")
	}

	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return ResolvedInstant{
				UTC:    r.now().UTC().Add(time.Duration(n) * time.Second),
				Intent: IntentRelative,
			}, nil
		}
		d, err := ParseDuration(s)
		if err != nil {
			return ResolvedInstant{}, perr.Wrapf(err, perr.ErrorCodeParse, "cannot resolve %q as a relative expression", raw)
		}
		return ResolvedInstant{
			UTC:    r.now().UTC().Add(d),
			Intent: IntentRelative,
		}, nil
	}

	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		utc := time.Unix(n, 0).UTC()
		if y := utc.Year(); y < 0 || y > 9999 {
			return ResolvedInstant{}, perr.Parsef("epoch %q is out of the representable year range", s)
		}
		return ResolvedInstant{UTC: utc, Intent: IntentAbsolute}, nil
	}

	fields, err := ParseAbsolute(s, cfg.Order, cfg.Strict, r.table)
	if err != nil {
		return ResolvedInstant{}, err
	}
	return ResolvedInstant{
		UTC:           fields.Instant(),
		OffsetSeconds: fields.OffsetSeconds,
		Intent:        IntentAbsolute,
	}, nil
}

// Clock resolves unconditionally to the current instant, used for
// decorative requests such as the favicon
func (r *Resolver) Clock() ResolvedInstant {
	return ResolvedInstant{UTC: r.now().UTC(), Intent: IntentClock}
}
