package handlers

import (
	"log/slog"

	"github.com/studydimension/ytdl-bot/internal/repository"
)

// StartHandler answers /start. The very first user to ever start the bot
// becomes its owner, everyone after gets the regular welcome.
type StartHandler struct {
	next ContextHandler
	Repo *repository.Store
}

func (h *StartHandler) Execute(m *Context) {
	slog.Debug("Entering StartHandler")
	if m.action == Start {
		isNewOwner, err := h.Repo.EnsureOwner(m.userId)
		switch {
		case err != nil:
			slog.Error("registering owner", "userId", m.userId, "error", err)
			m.textResponse = welcomeText
		case isNewOwner:
			slog.Info("owner registered", "userId", m.userId)
			m.textResponse = ownerWelcomeText
		default:
			m.textResponse = welcomeText
		}
	}
	h.next.Execute(m)
}

func (h *StartHandler) SetNext(next ContextHandler) {
	h.next = next
}
