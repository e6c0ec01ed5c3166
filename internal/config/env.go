package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Placeholder defaults mirror the values the hosting template ships with.
// Starting the bot with any of them still in place is a configuration
// error, not a runnable state.
const (
	placeholderAPIID    = "123456"
	placeholderAPIHash  = "your_api_hash"
	placeholderBotToken = "your_bot_token"
)

type Config struct {
	APIID         string `env:"API_ID" env-default:"123456"`
	APIHash       string `env:"API_HASH" env-default:"your_api_hash"`
	BotToken      string `env:"BOT_TOKEN" env-default:"your_bot_token"`
	DiscordToken  string `env:"DISCORD_TOKEN"`
	YtdlpTmpDir   string `env:"YTDLP_TMP_DIR" env-default:"/tmp/ytdl-bot"`
	DatabaseFile  string `env:"DATABASE_FILE" env-default:"/tmp/ytdl-bot.db"`
	KeepAliveAddr string `env:"KEEP_ALIVE_ADDR" env-default:":8080"`
}

func FromEnv() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("reading environment: %w", err)
	}
	return cfg, nil
}

// Validate rejects placeholder credentials so a misconfigured deployment
// fails at startup instead of limping along with dead tokens.
func (c Config) Validate() error {
	if c.APIID == placeholderAPIID {
		return fmt.Errorf("API_ID is still the placeholder value")
	}
	if c.APIHash == placeholderAPIHash {
		return fmt.Errorf("API_HASH is still the placeholder value")
	}
	if c.BotToken == placeholderBotToken {
		return fmt.Errorf("BOT_TOKEN is still the placeholder value")
	}
	return nil
}
