package handlers

import (
	"log/slog"

	"github.com/studydimension/ytdl-bot/internal/repository"
)

// ChatRegistryHandler records every private conversation so the
// broadcast engine can enumerate them later.
type ChatRegistryHandler struct {
	next ContextHandler
	Repo *repository.Store
}

func (h *ChatRegistryHandler) Execute(m *Context) {
	slog.Debug("Entering ChatRegistryHandler")
	if m.isPrivate && m.chatId != "" {
		if err := h.Repo.RememberChat(m.chatId, m.Service.String()); err != nil {
			slog.Error("recording private chat", "chatId", m.chatId, "error", err)
		}
	}
	h.next.Execute(m)
}

func (h *ChatRegistryHandler) SetNext(next ContextHandler) {
	h.next = next
}
