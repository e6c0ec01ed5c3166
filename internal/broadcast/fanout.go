package broadcast

import (
	"log/slog"
	"time"
)

// DefaultPause spaces out sends so the transport's rate limiter stays happy.
const DefaultPause = 100 * time.Millisecond

type Report struct {
	Sent   int
	Failed int
}

// Fanout delivers to every recipient in order, pausing between sends.
// A failing recipient is counted and skipped, never aborting the rest.
func Fanout(recipients []string, pause time.Duration, send func(chatID string) error) Report {
	var report Report
	for i, chatID := range recipients {
		if err := send(chatID); err != nil {
			slog.Error("broadcast delivery failed", "chatId", chatID, "error", err)
			report.Failed++
		} else {
			report.Sent++
		}
		if pause > 0 && i < len(recipients)-1 {
			time.Sleep(pause)
		}
	}
	return report
}
