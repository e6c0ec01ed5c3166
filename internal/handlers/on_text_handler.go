package handlers

import (
	"log/slog"
	"strconv"
	"strings"

	tele "gopkg.in/telebot.v4"
)

type OnTextHandler struct {
	next ContextHandler
}

func (mp *OnTextHandler) Execute(m *Context) {
	slog.Debug("Entering OnTextHandler")
	switch m.Service {
	case Telegram:
		c := m.TelebotContext
		message := c.Message()
		if message != nil {
			m.rawText = strings.Replace(message.Text, "@"+m.Telebot.Me.Username, "", 1)
			m.id = strconv.Itoa(message.ID)
			m.chatId = strconv.FormatInt(c.Chat().ID, 10)
			m.isPrivate = c.Chat().Type == tele.ChatPrivate
			if c.Sender() != nil {
				m.userId = strconv.FormatInt(c.Sender().ID, 10)
			}
		}
	case Discord:
		message := m.DiscordMessage
		if message != nil {
			m.rawText = message.Content
			m.id = message.ID
			m.chatId = message.ChannelID
			// A message without a guild arrived over a DM channel
			m.isPrivate = message.GuildID == ""
			if message.Author != nil {
				m.userId = message.Author.ID
			}
		}
	}
	mp.next.Execute(m)
}

func (mp *OnTextHandler) SetNext(next ContextHandler) {
	mp.next = next
}
