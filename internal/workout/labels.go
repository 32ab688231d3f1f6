package workout

import (
	"strings"
	"unicode"
)

// normalizeLabel lowercases a UI label and drops decorations, so that
// "Interval ⚡", "interval" and "INTERVAL" all compare equal. Dashes and
// underscores count as spaces ("rate-pyramid" == "rate pyramid").
func normalizeLabel(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(unicode.ToLower(r))
		case r == ' ' || r == '-' || r == '_' || r == '\t':
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
