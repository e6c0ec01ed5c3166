package handlers

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/bwmarrin/discordgo"
	tele "gopkg.in/telebot.v4"

	"github.com/studydimension/ytdl-bot/internal/session"
	"github.com/studydimension/ytdl-bot/pkg/utils"
)

const botPerformer = "YouTube Downloader Bot"

// MediaResponseHandler uploads the downloaded file as an audio or video
// attachment. Only a successful delivery consumes the session, a failed
// one leaves it in place so the user can retry the same link.
type MediaResponseHandler struct {
	next     ContextHandler
	Sessions *session.Manager
}

func (r *MediaResponseHandler) Execute(m *Context) {
	slog.Debug("Entering MediaResponseHandler")

	switch {
	case m.audioPath != "":
		m.editStatus("📤 Uploading audio...")
		r.sendAudio(m)
	case m.videoPath != "":
		m.editStatus("📤 Uploading video...")
		r.sendVideo(m)
	}

	if m.sendMediaSucceeded {
		r.Sessions.Remove(m.userId)
		m.deleteStatus()
	}

	r.next.Execute(m)
}

func (r *MediaResponseHandler) SetNext(next ContextHandler) {
	r.next = next
}

func (r *MediaResponseHandler) sendAudio(m *Context) {
	caption := mediaCaption("🎵", m.session.Metadata.Title, m.session.URL)

	switch m.Service {
	case Telegram:
		audio := &tele.Audio{
			File:      tele.FromDisk(m.audioPath),
			Title:     m.session.Metadata.Title,
			Performer: botPerformer,
			Caption:   caption,
		}
		if m.thumbnailPath != "" {
			audio.Thumbnail = &tele.Photo{File: tele.FromDisk(m.thumbnailPath)}
		}
		chatId := tele.ChatID(utils.S2I(m.chatId))
		if _, err := m.Telebot.Send(chatId, audio); err != nil {
			slog.Error("sending audio", "error", err)
			m.editStatus(deliveryFailedText(err))
			return
		}
		m.sendMediaSucceeded = true
	case Discord:
		name, contentType := audioAttachment(m.audioPath)
		if err := r.sendDiscordFile(m, m.audioPath, name, contentType, caption); err != nil {
			m.editStatus(deliveryFailedText(err))
			return
		}
		m.sendMediaSucceeded = true
	}
}

func (r *MediaResponseHandler) sendVideo(m *Context) {
	caption := mediaCaption("🎬", m.session.Metadata.Title, m.session.URL)

	switch m.Service {
	case Telegram:
		video := &tele.Video{
			File:      tele.FromDisk(m.videoPath),
			Caption:   caption,
			Streaming: true,
		}
		chatId := tele.ChatID(utils.S2I(m.chatId))
		if _, err := m.Telebot.Send(chatId, video); err != nil {
			slog.Error("sending video", "error", err)
			m.editStatus(deliveryFailedText(err))
			return
		}
		m.sendMediaSucceeded = true
	case Discord:
		if err := r.sendDiscordFile(m, m.videoPath, "video.mp4", "video/mp4", caption); err != nil {
			m.editStatus(deliveryFailedText(err))
			return
		}
		m.sendMediaSucceeded = true
	}
}

// The encoder may have fallen back to a container other than mp3, so
// the attachment name and type follow whatever file was located.
func audioAttachment(path string) (name, contentType string) {
	switch filepath.Ext(path) {
	case ".m4a":
		return "audio.m4a", "audio/mp4"
	case ".webm":
		return "audio.webm", "audio/webm"
	default:
		return "audio.mp3", "audio/mpeg"
	}
}

func (r *MediaResponseHandler) sendDiscordFile(m *Context, path, name, contentType, caption string) error {
	file, err := os.Open(path)
	if err != nil {
		slog.Error("opening media file", "path", path, "error", err)
		return err
	}
	defer file.Close()

	message := &discordgo.MessageSend{
		Content: caption,
		Files: []*discordgo.File{
			{
				Name:        name,
				ContentType: contentType,
				Reader:      file,
			},
		},
	}

	if _, err := m.DiscordSession.ChannelMessageSendComplex(m.chatId, message); err != nil {
		slog.Error("sending media file", "error", err)
		return err
	}
	return nil
}
