package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func realCredentials(t *testing.T) {
	t.Helper()
	t.Setenv("API_ID", "987654")
	t.Setenv("API_HASH", "0123456789abcdef")
	t.Setenv("BOT_TOKEN", "110201543:AAHdqTcvCH1vGWJxfSeofSAs0K5PALDsaw")
}

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/ytdl-bot", cfg.YtdlpTmpDir)
	assert.Equal(t, "/tmp/ytdl-bot.db", cfg.DatabaseFile)
	assert.Equal(t, ":8080", cfg.KeepAliveAddr)
}

func TestValidateRejectsPlaceholders(t *testing.T) {
	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Error(t, cfg.Validate(), "placeholder credentials must not pass validation")
}

func TestValidateRejectsSinglePlaceholder(t *testing.T) {
	realCredentials(t)
	t.Setenv("BOT_TOKEN", "your_bot_token")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.ErrorContains(t, cfg.Validate(), "BOT_TOKEN")
}

func TestValidateAcceptsRealCredentials(t *testing.T) {
	realCredentials(t)

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.NoError(t, cfg.Validate())
}
