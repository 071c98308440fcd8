package badge

import (
	"fmt"
	"strings"
)

// DetermineColor picks the color of the highest severity with findings, in the order
// error, warning, info, success. Infos only count when CountInfos is set.
func DetermineColor(props BuilderProperties, result AnalyzerResult) Color {
	switch {
	case result.NumberOfErrors > 0:
		return props.ColorError
	case result.NumberOfWarnings > 0:
		return props.ColorWarning
	case result.NumberOfInfos > 0 && props.CountInfos:
		return props.ColorInfo
	default:
		return props.ColorSuccess
	}
}

// DetermineTemplate picks the status template using the same precedence as [DetermineColor].
// With AggregateValues the aggregate template replaces the severity template; the success
// template is never replaced.
func DetermineTemplate(props BuilderProperties, result AnalyzerResult) string {
	pick := func(severityTemplate string) string {
		if props.AggregateValues {
			return props.StatusTemplateAggregate
		}

		return severityTemplate
	}

	switch {
	case result.NumberOfErrors > 0:
		return pick(props.StatusTemplateError)
	case result.NumberOfWarnings > 0:
		return pick(props.StatusTemplateWarning)
	case result.NumberOfInfos > 0 && props.CountInfos:
		return pick(props.StatusTemplateInfo)
	default:
		return props.StatusTemplateSuccess
	}
}

// DetermineViolations returns the number interpolated into the status template.
//
// Without AggregateValues only the highest severity with findings is counted. With it, every
// counted severity is summed. Infos are only added while the running total is still zero or
// when aggregating, so errors and infos never combine unless aggregating.
func DetermineViolations(props BuilderProperties, result AnalyzerResult) int {
	violations := result.NumberOfErrors

	if violations == 0 || props.AggregateValues {
		violations += result.NumberOfWarnings
	}

	if props.CountInfos && (violations == 0 || props.AggregateValues) {
		violations += result.NumberOfInfos
	}

	return violations
}

// FormatStatus interpolates violations into template. A zero count, or a template without a
// verb, returns the template verbatim.
func FormatStatus(template string, violations int) string {
	if violations <= 0 || !strings.Contains(template, "%") {
		return template
	}

	return fmt.Sprintf(template, violations)
}

// ResolveClientProperties derives the renderer request for a finished analysis.
func ResolveClientProperties(props BuilderProperties, result AnalyzerResult) ClientProperties {
	template := DetermineTemplate(props, result)
	violations := DetermineViolations(props, result)

	return ClientProperties{
		Label:  props.Label,
		Status: FormatStatus(template, violations),
		Color:  DetermineColor(props, result),
		Style:  props.Style,
		Format: props.Format,
	}
}

// fallbackClientProperties derives the renderer request served when the primary path failed.
func fallbackClientProperties(props BuilderProperties, kind FailureKind) ClientProperties {
	status := props.StatusTemplateInaccessible
	if kind == KindPending {
		status = props.StatusTemplatePending
	}

	return ClientProperties{
		Label:  props.Label,
		Status: status,
		Color:  props.ColorInaccessible,
		Style:  props.Style,
		Format: props.Format,
	}
}
