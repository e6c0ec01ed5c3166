package handlers

import (
	"log/slog"

	tele "gopkg.in/telebot.v4"

	"github.com/studydimension/ytdl-bot/pkg/utils"
)

func (m *Context) SendTyping() {
	var err error

	switch m.Service {
	case Telegram:
		action := tele.Typing
		if m.action == DownloadVideo {
			action = tele.UploadingVideo
		}
		if m.action == DownloadAudio {
			action = tele.UploadingAudio
		}
		err = m.TelebotContext.Notify(action)
	case Discord:
		err = m.DiscordSession.ChannelTyping(m.chatId)
	}

	if err != nil {
		slog.Error(err.Error())
	}
}

// sendStatus posts the transient status message whose text the pipeline
// keeps editing until the terminal result.
func (m *Context) sendStatus(text string) {
	switch m.Service {
	case Telegram:
		msg, err := m.Telebot.Send(tele.ChatID(utils.S2I(m.chatId)), text)
		if err != nil {
			slog.Error("sending status message", "error", err)
			return
		}
		m.statusTele = msg
	case Discord:
		msg, err := m.DiscordSession.ChannelMessageSend(m.chatId, text)
		if err != nil {
			slog.Error("sending status message", "error", err)
			return
		}
		m.statusDiscordID = msg.ID
	}
}

func (m *Context) editStatus(text string) {
	switch m.Service {
	case Telegram:
		if m.statusTele == nil {
			m.sendStatus(text)
			return
		}
		if _, err := m.Telebot.Edit(m.statusTele, text); err != nil {
			slog.Error("editing status message", "error", err)
		}
	case Discord:
		if m.statusDiscordID == "" {
			m.sendStatus(text)
			return
		}
		if _, err := m.DiscordSession.ChannelMessageEdit(m.chatId, m.statusDiscordID, text); err != nil {
			slog.Error("editing status message", "error", err)
		}
	}
}

func (m *Context) deleteStatus() {
	switch m.Service {
	case Telegram:
		if m.statusTele != nil {
			if err := m.Telebot.Delete(m.statusTele); err != nil {
				slog.Error("deleting status message", "error", err)
			}
			m.statusTele = nil
		}
	case Discord:
		if m.statusDiscordID != "" {
			if err := m.DiscordSession.ChannelMessageDelete(m.chatId, m.statusDiscordID); err != nil {
				slog.Error("deleting status message", "error", err)
			}
			m.statusDiscordID = ""
		}
	}
}

// sendTo delivers plain text to an arbitrary chat, used by broadcast.
func (m *Context) sendTo(chatID, text string) error {
	switch m.Service {
	case Telegram:
		_, err := m.Telebot.Send(tele.ChatID(utils.S2I(chatID)), text)
		return err
	case Discord:
		_, err := m.DiscordSession.ChannelMessageSend(chatID, text)
		return err
	}
	return nil
}
