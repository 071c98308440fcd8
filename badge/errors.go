package badge

import (
	"errors"
)

// ErrPendingAnalysis is returned by an [AnalyzerResultProvider] while the analysis has not finished
// yet. It is an expected, transient state and yields the pending fallback badge.
var ErrPendingAnalysis = errors.New("analysis pending")

// FailureKind classifies a failed badge build.
type FailureKind int

const (
	// KindInaccessible covers every failure other than a pending analysis: provider, statistics
	// store or renderer errors.
	KindInaccessible FailureKind = iota
	// KindPending means the analysis result is not available yet.
	KindPending
)

func (k FailureKind) String() string {
	switch k {
	case KindPending:
		return "pending"
	case KindInaccessible:
		return "inaccessible"
	default:
		return "unknown"
	}
}

// BuildError is handed to the error handler of a build whenever the primary path fails.
type BuildError struct {
	Kind FailureKind
	Err  error
}

// NewBuildError classifies err. Errors wrapping [ErrPendingAnalysis] are [KindPending].
func NewBuildError(err error) *BuildError {
	kind := KindInaccessible
	if errors.Is(err, ErrPendingAnalysis) {
		kind = KindPending
	}

	return &BuildError{Kind: kind, Err: err}
}

func (e *BuildError) Error() string {
	return "badge build failed (" + e.Kind.String() + "): " + e.Err.Error()
}

func (e *BuildError) Unwrap() error {
	return e.Err
}
