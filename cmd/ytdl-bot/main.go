package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/studydimension/ytdl-bot/internal/chain"
	"github.com/studydimension/ytdl-bot/internal/config"
	"github.com/studydimension/ytdl-bot/internal/platforms"
	"github.com/studydimension/ytdl-bot/internal/repository"
	"github.com/studydimension/ytdl-bot/internal/session"
)

func main() {
	godotenv.Load()

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}
	platforms.EnsureBotCanStart(cfg)

	store, err := repository.Open(cfg.DatabaseFile)
	if err != nil {
		log.Fatalf("Opening database: %v", err)
	}
	defer store.Close()

	sessions := session.NewManager(session.DefaultTTL)
	sessions.StartJanitor(time.Minute)
	defer sessions.Close()

	c := chain.NewChainOfResponsibility(chain.Deps{
		Repo:     store,
		Sessions: sessions,
		TmpDir:   cfg.YtdlpTmpDir,
	})

	if len(os.Args) == 1 {
		log.Fatalf("Usage: ytdl-bot <telegram/discord>")
	}
	switch os.Args[1] {
	case "telegram":
		platforms.RunTelegramBot(cfg, c)
	case "discord":
		platforms.RunDiscordBot(cfg, c)
	default:
		log.Fatalf("Usage: ytdl-bot <telegram/discord>")
	}

	platforms.RunKeepAlive(cfg.KeepAliveAddr)
}
