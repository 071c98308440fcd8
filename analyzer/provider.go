// Package analyzer provides analyzer result providers for the badge builder.
package analyzer

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/smartcontractkit/analyzer-badges/badge"
)

var (
	_ badge.AnalyzerResultProvider = ProviderFunc(nil)
	_ badge.AnalyzerResultProvider = &ReportFile{}
)

// ProviderFunc adapts a function to a badge.AnalyzerResultProvider.
type ProviderFunc func(ctx context.Context) (badge.AnalyzerResult, error)

// GetAnalyzerResult calls f.
func (f ProviderFunc) GetAnalyzerResult(ctx context.Context) (badge.AnalyzerResult, error) {
	return f(ctx)
}

// Static returns a provider which always returns result.
func Static(result badge.AnalyzerResult) badge.AnalyzerResultProvider {
	return ProviderFunc(func(context.Context) (badge.AnalyzerResult, error) {
		return result, nil
	})
}

// ReportFile reads the analyzer result from a report file on every call.
type ReportFile struct {
	Path string

	// PendingWhenMissing treats a missing report as an analysis that has not produced output yet.
	PendingWhenMissing bool
}

// GetAnalyzerResult reads and evaluates the report file.
func (p *ReportFile) GetAnalyzerResult(ctx context.Context) (badge.AnalyzerResult, error) {
	if err := ctx.Err(); err != nil {
		return badge.AnalyzerResult{}, err
	}

	data, err := os.ReadFile(p.Path)
	if err != nil {
		if p.PendingWhenMissing && errors.Is(err, fs.ErrNotExist) {
			return badge.AnalyzerResult{}, fmt.Errorf("report %s not written yet: %w", p.Path, badge.ErrPendingAnalysis)
		}

		return badge.AnalyzerResult{}, fmt.Errorf("failed to read report: %w", err)
	}

	report, err := ParseReport(data)
	if err != nil {
		return badge.AnalyzerResult{}, fmt.Errorf("report %s: %w", p.Path, err)
	}

	return report.Result()
}
