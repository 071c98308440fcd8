package analyzer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"github.com/smartcontractkit/analyzer-badges/badge"
)

// ErrUnsupportedSchema is returned for reports whose schema version is not supported.
var ErrUnsupportedSchema = errors.New("unsupported report schema version")

// supportedSchema is the range of report schema versions this package understands.
var supportedSchema = mustConstraint(">= 1.0.0, < 2.0.0")

func mustConstraint(c string) *semver.Constraints {
	constraint, err := semver.NewConstraint(c)
	if err != nil {
		panic(err)
	}

	return constraint
}

// Status is the lifecycle state of the analysis that produced a report.
type Status string

const (
	StatusQueued    Status = "queued"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Severity of a single finding.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
	// SeverityNote is counted as info.
	SeverityNote Severity = "note"
)

// Summary holds precomputed finding counts.
type Summary struct {
	Errors   int `yaml:"errors" json:"errors"`
	Warnings int `yaml:"warnings" json:"warnings"`
	Infos    int `yaml:"infos" json:"infos"`
}

// Finding is a single analyzer finding.
type Finding struct {
	Rule     string   `yaml:"rule" json:"rule"`
	Severity Severity `yaml:"severity" json:"severity"`
	Message  string   `yaml:"message" json:"message"`
	File     string   `yaml:"file,omitempty" json:"file,omitempty"`
	Line     int      `yaml:"line,omitempty" json:"line,omitempty"`
}

// Report is the machine readable output of an analysis run. JSON reports are accepted as well
// since JSON is valid YAML.
type Report struct {
	SchemaVersion string    `yaml:"schema_version" json:"schema_version"`
	Status        Status    `yaml:"status" json:"status"`
	Summary       *Summary  `yaml:"summary,omitempty" json:"summary,omitempty"`
	Findings      []Finding `yaml:"findings,omitempty" json:"findings,omitempty"`
}

// ParseReport decodes and validates a report.
func ParseReport(data []byte) (Report, error) {
	var report Report
	if err := yaml.Unmarshal(data, &report); err != nil {
		return Report{}, fmt.Errorf("failed to decode report: %w", err)
	}

	version, err := semver.NewVersion(report.SchemaVersion)
	if err != nil {
		return Report{}, fmt.Errorf("%w: %q", ErrUnsupportedSchema, report.SchemaVersion)
	}
	if !supportedSchema.Check(version) {
		return Report{}, fmt.Errorf("%w: %s", ErrUnsupportedSchema, version)
	}

	return report, nil
}

// Result converts the report into an analyzer result.
//
// Queued and running reports return badge.ErrPendingAnalysis. Counts are taken from the summary
// when present and from the findings otherwise.
func (r Report) Result() (badge.AnalyzerResult, error) {
	switch r.Status {
	case StatusQueued, StatusRunning:
		return badge.AnalyzerResult{}, fmt.Errorf("analysis %s: %w", r.Status, badge.ErrPendingAnalysis)
	case StatusFailed:
		return badge.AnalyzerResult{}, errors.New("analysis failed")
	case StatusCompleted:
	default:
		return badge.AnalyzerResult{}, fmt.Errorf("unknown analysis status %q", r.Status)
	}

	if r.Summary != nil {
		s := *r.Summary
		if s.Errors < 0 || s.Warnings < 0 || s.Infos < 0 {
			return badge.AnalyzerResult{}, fmt.Errorf("negative finding count in summary: %+v", s)
		}

		return badge.AnalyzerResult{
			NumberOfErrors:   s.Errors,
			NumberOfWarnings: s.Warnings,
			NumberOfInfos:    s.Infos,
		}, nil
	}

	var result badge.AnalyzerResult
	for i, f := range r.Findings {
		switch Severity(strings.ToLower(string(f.Severity))) {
		case SeverityError:
			result.NumberOfErrors++
		case SeverityWarning:
			result.NumberOfWarnings++
		case SeverityInfo, SeverityNote:
			result.NumberOfInfos++
		default:
			return badge.AnalyzerResult{}, fmt.Errorf("finding %d (%s): unknown severity %q", i, f.Rule, f.Severity)
		}
	}

	return result, nil
}
