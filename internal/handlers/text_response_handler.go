package handlers

import (
	"log/slog"
)

type TextResponseHandler struct {
	next ContextHandler
}

func (r *TextResponseHandler) Execute(m *Context) {
	slog.Debug("Entering TextResponseHandler")
	if m.textResponse != "" {
		switch m.Service {
		case Telegram:
			if err := m.TelebotContext.Send(m.textResponse); err != nil {
				slog.Error("sending text response", "error", err)
			}
		case Discord:
			if _, err := m.DiscordSession.ChannelMessageSend(m.chatId, m.textResponse); err != nil {
				slog.Error("sending text response", "error", err)
			}
		}
	}

	r.next.Execute(m)
}

func (r *TextResponseHandler) SetNext(next ContextHandler) {
	r.next = next
}
