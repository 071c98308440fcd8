/*
Package badge decides which status badge summarizes an analysis run and requests it from a
rendering service.

# Decision

The badge color and status text follow a fixed severity precedence: error, warning, info,
success. Info findings only count when [BuilderProperties.CountInfos] is set. With
[BuilderProperties.AggregateValues] the counted severities are summed into a single number and
the aggregate status template is used.

# Building

[Builder.BuildBadge] runs inside a statistics transaction: it fetches the analyzer result,
resolves the [ClientProperties], requests the badge and records one request entry before
committing. Any failure rolls the transaction back, is handed to the handler registered with
[WithErrorHandler] and is replaced by a fallback badge:

  - a pending badge when the provider returned [ErrPendingAnalysis]
  - an inaccessible badge otherwise

Usage:

	builder := badge.NewBuilder(renderer, stats, lggr)
	b, err := builder.BuildBadge(ctx, props, provider,
		badge.WithErrorHandler(func(err *badge.BuildError) {
			metrics.Inc(err.Kind.String())
		}),
	)
*/
package badge
