package cleaner

import (
	"strings"
	"unicode"

	"github.com/sfbackup/cleancsvs/internal/models"
)

// auditFields are system-stamp columns dropped regardless of content.
var auditFields = map[string]bool{
	"CreatedDate":      true,
	"CreatedById":      true,
	"LastModifiedDate": true,
	"LastModifiedById": true,
	"SystemModstamp":   true,
}

// IsAuditField reports whether header names an audit column. The match is
// exact and case-sensitive.
func IsAuditField(header string) bool {
	return auditFields[header]
}

// MatchNoisePattern returns the rule that marks name as an irrelevant
// export, or "" if none applies. Checks are case-sensitive.
func MatchNoisePattern(name string) string {
	switch {
	case strings.Contains(name, "History"):
		return models.RuleHistory
	case strings.Contains(name, "Summary"):
		return models.RuleSummary
	case strings.HasPrefix(name, "TenantSecurity"):
		return models.RuleTenantSecurity
	default:
		return ""
	}
}

// isBlank reports whether cell holds only whitespace. The ASCII separator
// controls 0x1c-0x1f count as whitespace.
func isBlank(cell string) bool {
	return strings.TrimFunc(cell, isSpace) == ""
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}
