package handlers

import (
	"log/slog"
	"os"
)

// DeleteScratchHandler removes the invocation's scratch directory after
// the media response has been sent (or has failed). Runs on every path
// through the chain that allocated one.
type DeleteScratchHandler struct {
	next ContextHandler
}

func (h *DeleteScratchHandler) Execute(m *Context) {
	if m.scratchDir != "" {
		if err := os.RemoveAll(m.scratchDir); err != nil {
			slog.Error("removing scratch dir", "dir", m.scratchDir, "error", err)
		}
		m.scratchDir = ""
		m.audioPath = ""
		m.videoPath = ""
		m.thumbnailPath = ""
	}

	h.next.Execute(m)
}

func (h *DeleteScratchHandler) SetNext(next ContextHandler) {
	h.next = next
}
