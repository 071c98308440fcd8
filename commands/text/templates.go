// Package text formats help text for the badges CLI.
package text

import (
	"strings"
)

// Indentation is the indentation applied to examples.
const Indentation = `  `

// LongDesc trims a long description and removes the indentation shared by all of its lines, so
// descriptions can be written as indented raw strings next to the command definition.
func LongDesc(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}

	return strings.Join(dedent(lines(s)), "\n")
}

// Examples trims each example line and indents it by [Indentation].
func Examples(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}

	ls := lines(s)
	for i, l := range ls {
		ls[i] = Indentation + strings.TrimSpace(l)
	}

	return strings.Join(ls, "\n")
}

// lines splits s into lines, dropping leading and trailing blank lines.
func lines(s string) []string {
	ls := strings.Split(s, "\n")
	for len(ls) > 0 && strings.TrimSpace(ls[0]) == "" {
		ls = ls[1:]
	}
	for len(ls) > 0 && strings.TrimSpace(ls[len(ls)-1]) == "" {
		ls = ls[:len(ls)-1]
	}

	return ls
}

func dedent(ls []string) []string {
	prefix := -1
	for _, l := range ls {
		if strings.TrimSpace(l) == "" {
			continue
		}
		n := len(l) - len(strings.TrimLeft(l, " \t"))
		if prefix < 0 || n < prefix {
			prefix = n
		}
	}

	out := make([]string, len(ls))
	for i, l := range ls {
		if strings.TrimSpace(l) == "" {
			continue
		}
		out[i] = strings.TrimRight(l[prefix:], " \t")
	}

	return out
}
