package update

import (
	"strconv"
	"strings"
)

func intString(v int) string {
	return strconv.Itoa(v)
}

// truncate shortens list cells the way the panels expect, keeping runes
// intact.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(strings.TrimSpace(s))
	if len(runes) <= width {
		return string(runes)
	}
	return string(runes[:width-1]) + "…"
}
