package handlers

import (
	"log/slog"
	"os"

	"github.com/studydimension/ytdl-bot/internal/session"
)

// Finalize releases everything an invocation holds: the user's download
// slot, the scratch directory, and the typing ticker. The chain's tail
// handlers do this on the normal path already, Finalize runs deferred
// under the platform recover so a panicking handler cannot strand them.
// Safe to call after the tail handlers have run.
func (m *Context) Finalize(sessions *session.Manager) {
	if m.holdsDownloadSlot {
		sessions.Release(m.userId)
		m.holdsDownloadSlot = false
	}
	if m.scratchDir != "" {
		if err := os.RemoveAll(m.scratchDir); err != nil {
			slog.Error("removing scratch dir", "dir", m.scratchDir, "error", err)
		}
		m.scratchDir = ""
	}
	if m.doneTyping != nil {
		close(m.doneTyping)
		m.doneTyping = nil
	}
}
