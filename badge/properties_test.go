package badge

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuilderProperties_Validate(t *testing.T) {
	t.Parallel()

	require.NoError(t, DefaultBuilderProperties().Validate())

	props := DefaultBuilderProperties()
	props.Label = "  "
	props.Style = "wavy"
	props.Format = "gif"
	props.ColorInfo = ""

	err := props.Validate()
	require.ErrorContains(t, err, "label is required")
	require.ErrorContains(t, err, `unknown style "wavy"`)
	require.ErrorContains(t, err, `unknown format "gif"`)
	require.ErrorContains(t, err, "info color is required")
	require.NotContains(t, err.Error(), "error color is required")
}

func TestBuilderProperties_Validate_StatusTemplates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		modify  func(p *BuilderProperties)
		wantErr string
	}{
		{
			name:   "width and escaped percent",
			modify: func(p *BuilderProperties) { p.StatusTemplateWarning = "%3d warnings (100%% checked)" },
		},
		{
			name:    "string verb",
			modify:  func(p *BuilderProperties) { p.StatusTemplateWarning = "%s warnings" },
			wantErr: `warning status template "%s warnings" must contain exactly one %d verb`,
		},
		{
			name:    "placeholder without verb",
			modify:  func(p *BuilderProperties) { p.StatusTemplateWarning = "{0} warnings" },
			wantErr: `warning status template "{0} warnings" must contain exactly one %d verb`,
		},
		{
			name:    "two verbs",
			modify:  func(p *BuilderProperties) { p.StatusTemplateAggregate = "%d of %d" },
			wantErr: `aggregate status template "%d of %d" must contain exactly one %d verb`,
		},
		{
			name:    "incomplete verb",
			modify:  func(p *BuilderProperties) { p.StatusTemplateError = "%d errors 5%" },
			wantErr: `error status template "%d errors 5%" ends with an incomplete verb`,
		},
		{
			name:    "empty counted template",
			modify:  func(p *BuilderProperties) { p.StatusTemplateInfo = "" },
			wantErr: `info status template "" must contain exactly one %d verb`,
		},
		{
			name:    "verb in success template",
			modify:  func(p *BuilderProperties) { p.StatusTemplateSuccess = "%d passing" },
			wantErr: `success status template "%d passing" must not contain formatting verbs`,
		},
		{
			name:    "verb in pending template",
			modify:  func(p *BuilderProperties) { p.StatusTemplatePending = "pending %v" },
			wantErr: `pending status template "pending %v" must not contain formatting verbs`,
		},
		{
			name:    "empty inaccessible template",
			modify:  func(p *BuilderProperties) { p.StatusTemplateInaccessible = " " },
			wantErr: "inaccessible status template is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			props := DefaultBuilderProperties()
			tt.modify(&props)

			err := props.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}
