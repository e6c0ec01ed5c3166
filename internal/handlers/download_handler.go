package handlers

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/studydimension/ytdl-bot/internal/session"
	"github.com/studydimension/ytdl-bot/pkg/utils"
	"github.com/studydimension/ytdl-bot/pkg/ytdlp"
)

const downloadTimeout = 10 * time.Minute

// DownloadHandler runs the download pipeline for /mp3 and /mp4: session
// check, scratch dir, extraction, output location and size ceiling. The
// produced file is handed to the media response handler; the scratch
// dir is torn down by the delete-scratch handler at the end of the chain.
type DownloadHandler struct {
	next     ContextHandler
	Sessions *session.Manager
	TmpDir   string
}

func (h *DownloadHandler) Execute(m *Context) {
	slog.Debug("Entering DownloadHandler")
	if m.action == DownloadAudio || m.action == DownloadVideo {
		h.download(m)
	}
	h.next.Execute(m)
}

func (h *DownloadHandler) SetNext(next ContextHandler) {
	h.next = next
}

func (h *DownloadHandler) download(m *Context) {
	sess, ok := h.Sessions.Get(m.userId)
	if !ok {
		m.textResponse = noActiveSessionText
		return
	}
	if !h.Sessions.TryAcquire(m.userId) {
		m.textResponse = downloadBusyText
		return
	}
	m.holdsDownloadSlot = true
	m.session = sess

	if m.action == DownloadAudio {
		m.sendStatus("🎵 Downloading audio...")
	} else {
		m.sendStatus("🎬 Downloading video...")
	}

	scratch := filepath.Join(h.TmpDir, uuid.New().String())
	if err := os.MkdirAll(scratch, 0755); err != nil {
		slog.Error("creating scratch dir", "error", err)
		m.editStatus(downloadFailedText(err))
		return
	}
	m.scratchDir = scratch

	m.editStatus("📥 Downloading... Please wait")

	ctx, cancel := context.WithTimeout(context.Background(), downloadTimeout)
	defer cancel()

	switch m.action {
	case DownloadAudio:
		path, err := ytdlp.DownloadAudio(ctx, sess.URL, scratch, m.userId)
		if err != nil {
			m.editStatus(audioErrorText(err))
			return
		}
		m.audioPath = path
		// Cover art is nice to have, a miss is not an error
		if thumb, err := utils.FetchThumbnail(sess.Metadata.Thumbnail, scratch); err == nil {
			m.thumbnailPath = thumb
		}
	case DownloadVideo:
		path, err := ytdlp.DownloadVideo(ctx, sess.URL, scratch, m.userId)
		if err != nil {
			m.editStatus(videoErrorText(err))
			return
		}
		m.videoPath = path
	}
}

func audioErrorText(err error) string {
	if errors.Is(err, ytdlp.ErrOutputNotFound) {
		return audioNotFoundText
	}
	return downloadFailedText(err)
}

func videoErrorText(err error) string {
	switch {
	case errors.Is(err, ytdlp.ErrFileTooLarge):
		return fileTooLargeText
	case errors.Is(err, ytdlp.ErrOutputNotFound):
		return videoNotFoundText
	default:
		return downloadFailedText(err)
	}
}
