package utils

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const titleDisplayLimit = 50

var viewPrinter = message.NewPrinter(language.English)

// TruncateTitle caps a video title for display, marking the cut.
func TruncateTitle(title string) string {
	runes := []rune(title)
	if len(runes) <= titleDisplayLimit {
		return title
	}
	return string(runes[:titleDisplayLimit]) + "..."
}

// FormatDuration renders seconds as m:ss, or "Unknown" when the
// extractor reported none.
func FormatDuration(seconds int) string {
	if seconds <= 0 {
		return "Unknown"
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// FormatViews renders a view count with thousands grouping, or "Unknown"
// when the extractor reported none.
func FormatViews(views int64) string {
	if views <= 0 {
		return "Unknown"
	}
	return viewPrinter.Sprintf("%d", views)
}
