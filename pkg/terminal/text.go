package terminal

import "strings"

// Ellipsis is appended to truncated strings.
const Ellipsis = "..."

// TruncateWithEllipsis truncates s to maxWidth bytes, adding "..." if truncated.
func TruncateWithEllipsis(s string, maxWidth int) string {
	if len(s) <= maxWidth {
		return s
	}

	if maxWidth <= len(Ellipsis) {
		return strings.Repeat(".", max(maxWidth, 0))
	}

	return s[:maxWidth-len(Ellipsis)] + Ellipsis
}
