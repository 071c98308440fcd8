package badge

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/smartcontractkit/analyzer-badges/pkg/logger"
)

// AnalyzerResultProvider fetches the result of an analysis run. It returns an error wrapping
// [ErrPendingAnalysis] while the analysis is still in progress.
type AnalyzerResultProvider interface {
	GetAnalyzerResult(ctx context.Context) (AnalyzerResult, error)
}

// Client requests rendered badges. It either returns a complete badge or an error.
type Client interface {
	RequestBadge(ctx context.Context, props ClientProperties) (Badge, error)
}

// Transaction is a statistics transaction. Rollback after Commit is a no-op.
type Transaction interface {
	Commit() error
	Rollback() error
}

// StatisticsService records badge statistics.
type StatisticsService interface {
	// BeginTransaction starts a transaction. Operations called with the returned context take
	// part in it.
	BeginTransaction(ctx context.Context) (context.Context, Transaction, error)

	// AddRequestEntry records one successfully requested badge.
	AddRequestEntry(ctx context.Context) error
}

// ErrorHandler receives the failure of a badge build before the fallback badge is requested.
type ErrorHandler func(err *BuildError)

type buildConfig struct {
	onError ErrorHandler
}

// BuildOption configures a single [Builder.BuildBadge] call.
type BuildOption func(*buildConfig)

// WithErrorHandler registers fn to be called exactly once when the build falls back.
func WithErrorHandler(fn ErrorHandler) BuildOption {
	return func(c *buildConfig) {
		c.onError = fn
	}
}

// Builder builds badges from analyzer results.
type Builder struct {
	client Client
	stats  StatisticsService
	lggr   logger.Logger
}

// NewBuilder returns a Builder requesting badges from client and counting requests in stats.
func NewBuilder(client Client, stats StatisticsService, lggr logger.Logger) *Builder {
	return &Builder{
		client: client,
		stats:  stats,
		lggr:   lggr.Named("BadgeBuilder"),
	}
}

// BuildBadge builds the badge for the analyzer result returned by provider.
//
// Failures never reach the caller: they are reported to the error handler and replaced by a
// pending or inaccessible fallback badge. The returned error is only set when requesting the
// fallback badge fails too.
func (b *Builder) BuildBadge(
	ctx context.Context, props BuilderProperties, provider AnalyzerResultProvider, opts ...BuildOption,
) (Badge, error) {
	cfg := &buildConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	badge, err := b.build(ctx, props, provider)
	if err == nil {
		return badge, nil
	}

	buildErr := NewBuildError(err)
	if buildErr.Kind == KindPending {
		b.lggr.Warnw("Analysis pending. Serving pending badge", "label", props.Label, "error", err)
	} else {
		b.lggr.Errorw("Failed to build badge. Serving fallback badge",
			"label", props.Label, "kind", buildErr.Kind.String(), "error", err)
	}
	if cfg.onError != nil {
		cfg.onError(buildErr)
	}

	badge, err = b.client.RequestBadge(ctx, fallbackClientProperties(props, buildErr.Kind))
	if err != nil {
		return Badge{}, fmt.Errorf("failed to request %s fallback badge: %w", buildErr.Kind, err)
	}

	return badge, nil
}

// build runs the primary path inside a statistics transaction. The transaction is committed only
// when every step succeeded and rolled back otherwise.
func (b *Builder) build(ctx context.Context, props BuilderProperties, provider AnalyzerResultProvider) (badge Badge, err error) {
	txCtx, tx, err := b.stats.BeginTransaction(ctx)
	if err != nil {
		return Badge{}, fmt.Errorf("failed to begin statistics transaction: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			b.lggr.Errorw("Recovered panic while building badge", "panic", r, "stack", string(debug.Stack()))
			badge = Badge{}
			err = errors.Join(panicError(r), tx.Rollback())
		} else if err != nil {
			err = errors.Join(err, tx.Rollback())
		} else if err = tx.Commit(); err != nil {
			badge = Badge{}
			err = fmt.Errorf("failed to commit statistics transaction: %w", err)
		}
	}()

	result, err := provider.GetAnalyzerResult(txCtx)
	if err != nil {
		return Badge{}, fmt.Errorf("failed to get analyzer result: %w", err)
	}

	clientProps := ResolveClientProperties(props, result)
	b.lggr.Debugw("Resolved badge properties",
		"label", clientProps.Label, "status", clientProps.Status, "color", clientProps.Color)

	badge, err = b.client.RequestBadge(txCtx, clientProps)
	if err != nil {
		return Badge{}, fmt.Errorf("failed to request badge: %w", err)
	}

	if err = b.stats.AddRequestEntry(txCtx); err != nil {
		return Badge{}, fmt.Errorf("failed to add request entry: %w", err)
	}

	return badge, nil
}

// panicError converts a recovered panic value into an error.
func panicError(r any) error {
	if err, ok := r.(error); ok {
		return fmt.Errorf("panic while building badge: %w", err)
	}

	return fmt.Errorf("panic while building badge: %v", r)
}
