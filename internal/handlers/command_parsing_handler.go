package handlers

import (
	"fmt"
	"log/slog"
	"strings"
)

// CommandParsingHandler routes each private text message to exactly one
// action. Command tokens are reserved, everything else is treated as a
// candidate link for the resolver.
type CommandParsingHandler struct {
	next ContextHandler
}

func (mp *CommandParsingHandler) Execute(m *Context) {
	slog.Debug("rawText: " + m.rawText)

	if m.isPrivate && strings.TrimSpace(m.rawText) != "" {
		m.action, m.parsedText = classify(m.rawText)
	}

	if m.action != "" && m.action != ResolveLink {
		slog.Info(fmt.Sprintf("Command '%s' received", m.action))
	}

	mp.next.Execute(m)
}

func (mp *CommandParsingHandler) SetNext(next ContextHandler) {
	mp.next = next
}

func classify(rawText string) (Action, string) {
	text := strings.TrimSpace(rawText)
	if token, hasPrefix := strings.CutPrefix(text, "/"); hasPrefix {
		command, args, _ := strings.Cut(token, " ")
		switch Action(command) {
		case Start:
			return Start, ""
		case Broadcast:
			return Broadcast, strings.TrimSpace(args)
		case DownloadAudio:
			return DownloadAudio, ""
		case DownloadVideo:
			return DownloadVideo, ""
		case Help:
			return Help, ""
		}
	}
	// Unknown commands fall through here too and then fail the
	// link validation with the usual guidance.
	return ResolveLink, text
}
