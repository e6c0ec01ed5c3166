package platforms

import (
	"time"

	tele "gopkg.in/telebot.v4"

	"github.com/studydimension/ytdl-bot/internal/chain"
	"github.com/studydimension/ytdl-bot/internal/config"
	"github.com/studydimension/ytdl-bot/internal/handlers"
)

func wrapTeleHandler(bot *tele.Bot, chain *chain.HandlerChain) func(c tele.Context) error {
	return func(c tele.Context) error {
		defer recoverChain()
		chain.Process(&handlers.Context{TelebotContext: c, Telebot: bot, Service: handlers.Telegram})
		return nil
	}
}

func TelebotCompatibleVisibleCommands() []tele.Command {
	commands := make([]tele.Command, 0, len(handlers.ActionMap))
	for action, description := range handlers.ActionMap {
		commands = append(commands, tele.Command{
			Text:        string(action),
			Description: string(description),
		})
	}
	return commands
}

func RunTelegramBot(cfg config.Config, chain *chain.HandlerChain) {
	bot := getTelegramBot(cfg)

	bot.SetCommands(TelebotCompatibleVisibleCommands())

	bot.Handle(tele.OnText, wrapTeleHandler(bot, chain))

	go bot.Start()
}

func getTelegramBot(cfg config.Config) *tele.Bot {
	pref := tele.Settings{
		Token: cfg.BotToken,
		Poller: &tele.LongPoller{
			Timeout:        10 * time.Second,
			AllowedUpdates: []string{"message"},
		},
	}

	b, err := tele.NewBot(pref)
	if err != nil {
		panic(err)
	}

	return b
}
