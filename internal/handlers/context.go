package handlers

import (
	dg "github.com/bwmarrin/discordgo"
	tele "gopkg.in/telebot.v4"

	"github.com/studydimension/ytdl-bot/internal/session"
)

type Service int

const (
	Telegram Service = iota + 1
	Discord
)

// String doubles as the platform key in the chat registry.
func (s Service) String() string {
	switch s {
	case Telegram:
		return "telegram"
	case Discord:
		return "discord"
	default:
		return "unknown"
	}
}

type ContextHandler interface {
	Execute(*Context)
	SetNext(ContextHandler)
}

type Action string
type ActionDescription string

const (
	Start         Action = "start"
	Broadcast     Action = "broadcast"
	DownloadAudio Action = "mp3"
	DownloadVideo Action = "mp4"
	Help          Action = "help"
	// ResolveLink is synthetic: any non-command private text lands here.
	ResolveLink Action = "link"
)

var ActionMap = map[Action]ActionDescription{
	Start:         "Start the bot",
	Help:          "Show help",
	DownloadAudio: "Download selected link as audio",
	DownloadVideo: "Download selected link as video",
	Broadcast:     "Owner: message all users",
}

type Context struct {
	Service Service

	// The original message without any parsing
	// (except on Telegram events, the possible "@<botname>" is removed)
	rawText string
	// Arguments following the command token, if any
	parsedText string
	id         string // Some services use string, some int64. They're strings at our context.
	chatId     string
	userId     string
	isPrivate  bool
	action     Action
	url        string

	// Download pipeline state
	session       session.Session
	scratchDir    string
	audioPath     string
	videoPath     string
	thumbnailPath string
	// Set once the download slot for userId is held, released at end of chain
	holdsDownloadSlot bool

	sendMediaSucceeded bool
	textResponse       string

	doneTyping chan struct{}

	// Transient status message, edited in place as the pipeline advances
	statusTele      *tele.Message
	statusDiscordID string

	TelebotContext tele.Context
	Telebot        *tele.Bot

	DiscordSession *dg.Session
	DiscordMessage *dg.MessageCreate
}
