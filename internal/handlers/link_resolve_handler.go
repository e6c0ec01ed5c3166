package handlers

import (
	"context"
	"log/slog"
	"time"

	"github.com/studydimension/ytdl-bot/internal/session"
	"github.com/studydimension/ytdl-bot/pkg/ytdlp"
)

const resolveTimeout = 2 * time.Minute

// LinkResolveHandler validates a submitted link, fetches its metadata
// without downloading any media, and parks the result as the user's
// session until a format choice arrives.
type LinkResolveHandler struct {
	next     ContextHandler
	Sessions *session.Manager
}

func (h *LinkResolveHandler) Execute(m *Context) {
	slog.Debug("Entering LinkResolveHandler")
	if m.action == ResolveLink {
		m.url = m.parsedText
		if !ytdlp.IsSupportedURL(m.url) {
			m.textResponse = invalidLinkText
			h.next.Execute(m)
			return
		}

		m.sendStatus("🔍 Processing YouTube link...")

		ctx, cancel := context.WithTimeout(context.Background(), resolveTimeout)
		defer cancel()

		meta, err := ytdlp.Resolve(ctx, m.url)
		if err != nil {
			slog.Error("resolving link", "url", m.url, "error", err)
			m.editStatus(resolveFailedText(err))
			h.next.Execute(m)
			return
		}

		h.Sessions.Put(m.userId, session.Session{URL: m.url, Metadata: *meta})
		m.editStatus(videoFoundText(meta))
	}
	h.next.Execute(m)
}

func (h *LinkResolveHandler) SetNext(next ContextHandler) {
	h.next = next
}
