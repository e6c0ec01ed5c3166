package handlers

import "log/slog"

type HelpHandler struct {
	next ContextHandler
}

func (h *HelpHandler) Execute(m *Context) {
	slog.Debug("Entering HelpHandler")
	if m.action == Help {
		m.textResponse = helpText
	}
	h.next.Execute(m)
}

func (h *HelpHandler) SetNext(next ContextHandler) {
	h.next = next
}
