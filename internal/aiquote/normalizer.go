// Package aiquote turns free-text freight inquiries into resolved quotes.
//
// The pipeline is Normalize -> Extract -> resolve -> Format. Normalize and
// Extract are pure functions over their inputs; the reference data and the
// alias table are read-only snapshots, so concurrent callers share nothing
// mutable.
package aiquote

import (
	"strings"

	"github.com/harborline/seaquote/internal/config"
)

// Normalize lower-cases and trims text, then appends the canonical forms
// of every alias the text mentions so downstream matching only has to know
// canonical names and codes. Canonicals already present in the text are not
// appended again, which makes the function idempotent.
func Normalize(text string, aliases config.AliasTable) string {
	normalized := strings.ToLower(strings.TrimSpace(text))
	if normalized == "" {
		return normalized
	}

	var appended []string
	for _, alias := range aliases.Aliases() {
		if !strings.Contains(normalized, alias) {
			continue
		}
		for _, canonical := range aliases.Canonicals(alias) {
			canonical = strings.ToLower(canonical)
			if strings.Contains(normalized, canonical) || contains(appended, canonical) {
				continue
			}
			appended = append(appended, canonical)
		}
	}

	if len(appended) == 0 {
		return normalized
	}
	return normalized + " " + strings.Join(appended, " ")
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
