package platforms

import (
	"log/slog"

	"github.com/studydimension/ytdl-bot/internal/config"
	"github.com/studydimension/ytdl-bot/pkg/utils"
)

func EnsureBotCanStart(cfg config.Config) {
	if err := cfg.Validate(); err != nil {
		panic("refusing to start with placeholder credentials: " + err.Error())
	}
	utils.EnsureTmpDirExists(cfg.YtdlpTmpDir)
}

// recoverChain keeps one message's failure from taking out the process
// or any other in-flight message.
func recoverChain() {
	if r := recover(); r != nil {
		slog.Error("message handling panicked", "panic", r)
	}
}
