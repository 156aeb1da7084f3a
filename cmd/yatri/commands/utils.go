// ABOUTME: Shared utility functions for CLI commands
// ABOUTME: Output formatting helpers used by ask and health
package commands

// truncate shortens a string to maxLen, adding "..." if truncated
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// statusMark renders a probe result for table output
func statusMark(ok bool) string {
	if ok {
		return "✓ up"
	}
	return "✗ down"
}
