package badge

import (
	"errors"
	"fmt"
	"strings"
)

// templateVerbs returns the verbs of a fmt template in order. "%%" is a literal percent sign and
// is not a verb.
func templateVerbs(template string) ([]byte, error) {
	var verbs []byte
	for i := 0; i < len(template); i++ {
		if template[i] != '%' {
			continue
		}
		i++
		if i < len(template) && template[i] == '%' {
			continue
		}
		for i < len(template) && strings.IndexByte("+-# 0", template[i]) >= 0 {
			i++
		}
		for i < len(template) && template[i] >= '0' && template[i] <= '9' {
			i++
		}
		if i < len(template) && template[i] == '.' {
			i++
			for i < len(template) && template[i] >= '0' && template[i] <= '9' {
				i++
			}
		}
		if i >= len(template) {
			return nil, errors.New("ends with an incomplete verb")
		}
		verbs = append(verbs, template[i])
	}

	return verbs, nil
}

// validateCountedTemplate checks a template that is formatted with the violation count.
func validateCountedTemplate(name, template string) error {
	verbs, err := templateVerbs(template)
	if err != nil {
		return fmt.Errorf("%s status template %q %w", name, template, err)
	}
	if len(verbs) != 1 || verbs[0] != 'd' {
		return fmt.Errorf("%s status template %q must contain exactly one %%d verb", name, template)
	}

	return nil
}

// validateFixedTemplate checks a template that is always used verbatim.
func validateFixedTemplate(name, template string) error {
	if strings.TrimSpace(template) == "" {
		return fmt.Errorf("%s status template is required", name)
	}
	verbs, err := templateVerbs(template)
	if err != nil || len(verbs) > 0 {
		return fmt.Errorf("%s status template %q must not contain formatting verbs", name, template)
	}

	return nil
}
