package handlers

import (
	"log/slog"

	"github.com/studydimension/ytdl-bot/internal/session"
	"github.com/studydimension/ytdl-bot/pkg/utils"
)

type EndOfChainHandler struct {
	Sessions *session.Manager
	TmpDir   string
}

func (h *EndOfChainHandler) Execute(m *Context) {
	slog.Debug("Entering EndOfChainHandler")
	if m.holdsDownloadSlot {
		h.Sessions.Release(m.userId)
		m.holdsDownloadSlot = false
	}
	if m.doneTyping != nil {
		slog.Debug("Closing doneTyping channel")
		close(m.doneTyping)
		m.doneTyping = nil
		utils.CleanupTmpDir(h.TmpDir)
	}
}

func (h *EndOfChainHandler) SetNext(handler ContextHandler) {
	panic("cannot set next handler on ChainEnd")
}
