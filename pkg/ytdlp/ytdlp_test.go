package ytdlp

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsSupportedURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want bool
	}{
		{name: "full watch link", url: "https://www.youtube.com/watch?v=abc123", want: true},
		{name: "short link", url: "https://youtu.be/abc123", want: true},
		{name: "no scheme", url: "youtube.com/watch?v=abc123", want: true},
		{name: "other site", url: "https://vimeo.com/12345", want: false},
		{name: "plain text", url: "hello there", want: false},
		{name: "empty", url: "", want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsSupportedURL(tc.url))
		})
	}
}

func TestMetadataUnmarshal(t *testing.T) {
	raw := `{
		"title": "Sample Video",
		"duration": 125.0,
		"view_count": 10000,
		"webpage_url": "https://www.youtube.com/watch?v=abc123",
		"thumbnail": "https://i.ytimg.com/vi/abc123/hq720.jpg",
		"uploader": "ignored",
		"formats": []
	}`

	var meta Metadata
	require.NoError(t, json.Unmarshal([]byte(raw), &meta))
	assert.Equal(t, "Sample Video", meta.Title)
	assert.Equal(t, 125, meta.DurationSeconds())
	assert.Equal(t, int64(10000), meta.ViewCount)
	assert.Equal(t, "https://www.youtube.com/watch?v=abc123", meta.WebpageURL)
}

func TestLocateAudioPrefersMp3(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "audio_42")

	require.NoError(t, os.WriteFile(base+".webm", []byte("w"), 0o644))
	require.NoError(t, os.WriteFile(base+".mp3", []byte("m"), 0o644))

	got, err := locateAudio(base)
	require.NoError(t, err)
	assert.Equal(t, base+".mp3", got)
}

func TestLocateAudioFallsBack(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "audio_42")

	require.NoError(t, os.WriteFile(base+".m4a", []byte("a"), 0o644))

	got, err := locateAudio(base)
	require.NoError(t, err)
	assert.Equal(t, base+".m4a", got)
}

func TestLocateAudioMissing(t *testing.T) {
	base := filepath.Join(t.TempDir(), "audio_42")

	_, err := locateAudio(base)
	assert.ErrorIs(t, err, ErrOutputNotFound)
}

func TestCheckVideoSize(t *testing.T) {
	dir := t.TempDir()

	sparse := func(name string, size int64) string {
		path := filepath.Join(dir, name)
		f, err := os.Create(path)
		require.NoError(t, err)
		require.NoError(t, f.Truncate(size))
		require.NoError(t, f.Close())
		return path
	}

	t.Run("under limit passes", func(t *testing.T) {
		assert.NoError(t, checkVideoSize(sparse("small.mp4", 10*1024*1024)))
	})

	t.Run("exactly at limit passes", func(t *testing.T) {
		assert.NoError(t, checkVideoSize(sparse("exact.mp4", MaxVideoBytes)))
	})

	t.Run("over limit is rejected", func(t *testing.T) {
		err := checkVideoSize(sparse("big.mp4", MaxVideoBytes+1))
		assert.ErrorIs(t, err, ErrFileTooLarge)
	})

	t.Run("missing file", func(t *testing.T) {
		err := checkVideoSize(filepath.Join(dir, "nope.mp4"))
		assert.ErrorIs(t, err, ErrOutputNotFound)
	})
}

func TestFirstLine(t *testing.T) {
	assert.Equal(t, "ERROR: video unavailable", firstLine("ERROR: video unavailable\nmore context\n"))
	assert.Equal(t, "unknown error", firstLine("  \n"))
}
