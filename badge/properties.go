package badge

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Color is a badge color understood by the rendering service. Either a named color such as
// "brightgreen" or a hex value without the leading '#'.
type Color string

// Named colors supported by shields compatible renderers.
const (
	ColorBrightGreen Color = "brightgreen"
	ColorGreen       Color = "green"
	ColorYellowGreen Color = "yellowgreen"
	ColorYellow      Color = "yellow"
	ColorOrange      Color = "orange"
	ColorRed         Color = "red"
	ColorBlue        Color = "blue"
	ColorLightGrey   Color = "lightgrey"
)

// Style is the visual style of a badge.
type Style string

const (
	StyleFlat        Style = "flat"
	StyleFlatSquare  Style = "flat-square"
	StylePlastic     Style = "plastic"
	StyleForTheBadge Style = "for-the-badge"
	StyleSocial      Style = "social"
)

var validStyles = []Style{StyleFlat, StyleFlatSquare, StylePlastic, StyleForTheBadge, StyleSocial}

// Format is the output format requested from the rendering service.
type Format string

const (
	FormatSVG  Format = "svg"
	FormatPNG  Format = "png"
	FormatJSON Format = "json"
)

var validFormats = []Format{FormatSVG, FormatPNG, FormatJSON}

// BuilderProperties holds the caller supplied presentation preferences for a single badge build.
//
// The error, warning, info and aggregate status templates are fmt templates taking a single
// integer, e.g. "%d warnings". The success, pending and inaccessible templates are used verbatim
// and must not contain verbs.
type BuilderProperties struct {
	Label  string
	Style  Style
	Format Format

	ColorError        Color
	ColorWarning      Color
	ColorInfo         Color
	ColorSuccess      Color
	ColorInaccessible Color

	StatusTemplateError        string
	StatusTemplateWarning      string
	StatusTemplateInfo         string
	StatusTemplateSuccess      string
	StatusTemplateAggregate    string
	StatusTemplatePending      string
	StatusTemplateInaccessible string

	// AggregateValues sums every counted severity into one number instead of reporting only the
	// highest severity with findings.
	AggregateValues bool

	// CountInfos makes info findings participate in color and status decisions.
	CountInfos bool
}

// DefaultBuilderProperties returns the preset properties used when no configuration overrides them.
func DefaultBuilderProperties() BuilderProperties {
	return BuilderProperties{
		Label:                      "analyzer",
		Style:                      StyleFlat,
		Format:                     FormatSVG,
		ColorError:                 ColorRed,
		ColorWarning:               ColorYellow,
		ColorInfo:                  ColorBlue,
		ColorSuccess:               ColorBrightGreen,
		ColorInaccessible:          ColorLightGrey,
		StatusTemplateError:        "%d errors",
		StatusTemplateWarning:      "%d warnings",
		StatusTemplateInfo:         "%d infos",
		StatusTemplateSuccess:      "passing",
		StatusTemplateAggregate:    "%d violations",
		StatusTemplatePending:      "pending",
		StatusTemplateInaccessible: "inaccessible",
		AggregateValues:            false,
		CountInfos:                 false,
	}
}

// Validate checks that the properties can produce a renderable badge.
func (p BuilderProperties) Validate() error {
	var errs []error

	if strings.TrimSpace(p.Label) == "" {
		errs = append(errs, errors.New("label is required"))
	}
	if !slices.Contains(validStyles, p.Style) {
		errs = append(errs, fmt.Errorf("unknown style %q", p.Style))
	}
	if !slices.Contains(validFormats, p.Format) {
		errs = append(errs, fmt.Errorf("unknown format %q", p.Format))
	}

	colors := map[string]Color{
		"error":        p.ColorError,
		"warning":      p.ColorWarning,
		"info":         p.ColorInfo,
		"success":      p.ColorSuccess,
		"inaccessible": p.ColorInaccessible,
	}
	for _, name := range []string{"error", "warning", "info", "success", "inaccessible"} {
		if colors[name] == "" {
			errs = append(errs, fmt.Errorf("%s color is required", name))
		}
	}

	counted := []struct{ name, template string }{
		{"error", p.StatusTemplateError},
		{"warning", p.StatusTemplateWarning},
		{"info", p.StatusTemplateInfo},
		{"aggregate", p.StatusTemplateAggregate},
	}
	for _, t := range counted {
		if err := validateCountedTemplate(t.name, t.template); err != nil {
			errs = append(errs, err)
		}
	}

	fixed := []struct{ name, template string }{
		{"success", p.StatusTemplateSuccess},
		{"pending", p.StatusTemplatePending},
		{"inaccessible", p.StatusTemplateInaccessible},
	}
	for _, t := range fixed {
		if err := validateFixedTemplate(t.name, t.template); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// AnalyzerResult holds the finding counts of a finished analysis run.
type AnalyzerResult struct {
	NumberOfErrors   int
	NumberOfWarnings int
	NumberOfInfos    int
}

// ClientProperties is the fully resolved request sent to the rendering [Client].
type ClientProperties struct {
	Label  string
	Status string
	Color  Color
	Style  Style
	Format Format
}

// Badge is the rendered badge as returned by the [Client]. The builder passes it through unchanged.
type Badge struct {
	ContentType string
	Data        []byte
}
