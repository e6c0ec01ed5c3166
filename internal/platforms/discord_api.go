package platforms

import (
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/studydimension/ytdl-bot/internal/chain"
	"github.com/studydimension/ytdl-bot/internal/config"
	"github.com/studydimension/ytdl-bot/internal/handlers"
)

func wrapDiscoHandler(chain *chain.HandlerChain) func(s *discordgo.Session, m *discordgo.MessageCreate) {
	return func(s *discordgo.Session, m *discordgo.MessageCreate) {
		// Ignore all messages created by the bot itself
		if m.Author.ID == s.State.User.ID {
			return
		}

		defer recoverChain()
		chain.Process(&handlers.Context{
			DiscordSession: s,
			DiscordMessage: m,
			Service:        handlers.Discord,
		})
	}
}

func RunDiscordBot(cfg config.Config, chain *chain.HandlerChain) {
	dg, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		slog.Error("Error creating Discord session", "error", err)
		return
	}

	dg.AddHandler(wrapDiscoHandler(chain))

	// The downloader only talks over DMs, guild intents stay off
	dg.Identify.Intents = discordgo.IntentsDirectMessages

	err = dg.Open()
	if err != nil {
		slog.Error("Error opening Discord connection", "error", err)
		return
	}
}
