package handlers

import (
	"log/slog"

	"github.com/studydimension/ytdl-bot/internal/broadcast"
	"github.com/studydimension/ytdl-bot/internal/repository"
)

// BroadcastHandler fans an owner's message out to every private chat the
// bot has seen. Gated on ownership before any enumeration happens.
type BroadcastHandler struct {
	next ContextHandler
	Repo *repository.Store
}

func (h *BroadcastHandler) Execute(m *Context) {
	slog.Debug("Entering BroadcastHandler")
	if m.action == Broadcast {
		h.broadcast(m)
	}
	h.next.Execute(m)
}

func (h *BroadcastHandler) SetNext(next ContextHandler) {
	h.next = next
}

func (h *BroadcastHandler) broadcast(m *Context) {
	if !h.Repo.IsOwner(m.userId) {
		m.textResponse = accessDeniedText
		return
	}
	if m.parsedText == "" {
		m.textResponse = broadcastUsageText
		return
	}

	m.sendStatus("📡 Broadcasting message...")

	recipients, err := h.Repo.PrivateChats(m.Service.String())
	if err != nil {
		slog.Error("listing broadcast recipients", "error", err)
		m.editStatus(broadcastFailedText(err))
		return
	}

	body := broadcastPrefix + m.parsedText
	report := broadcast.Fanout(recipients, broadcast.DefaultPause, func(chatID string) error {
		return m.sendTo(chatID, body)
	})

	slog.Info("broadcast finished", "sent", report.Sent, "failed", report.Failed)
	m.editStatus(broadcastReportText(report.Sent, report.Failed))
}
