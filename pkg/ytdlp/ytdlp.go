package ytdlp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// MaxVideoBytes is the upload ceiling for video delivery. The format
// selector already asks yt-dlp for a stream under this size, the final
// stat is a hard stop in case it picked something bigger anyway.
const MaxVideoBytes = 50 * 1024 * 1024

var (
	ErrInvalidLink      = errors.New("not a recognized youtube link")
	ErrExtractionFailed = errors.New("extraction failed")
	ErrOutputNotFound   = errors.New("no output file produced")
	ErrFileTooLarge     = errors.New("file exceeds upload limit")
)

// Metadata is the subset of yt-dlp's info dict the bot actually consumes.
// WebpageURL is the canonical link yt-dlp resolved, good enough to
// re-invoke the extractor for the actual download later.
type Metadata struct {
	Title      string  `json:"title"`
	Duration   float64 `json:"duration"`
	ViewCount  int64   `json:"view_count"`
	WebpageURL string  `json:"webpage_url"`
	Thumbnail  string  `json:"thumbnail"`
}

func (m Metadata) DurationSeconds() int {
	return int(m.Duration)
}

// IsSupportedURL reports whether the text looks like a link to the
// supported site family. Checked before spawning any subprocess.
func IsSupportedURL(url string) bool {
	return strings.Contains(url, "youtube.com") || strings.Contains(url, "youtu.be")
}

// Resolve fetches metadata for a link without downloading any media.
func Resolve(ctx context.Context, url string) (*Metadata, error) {
	if !IsSupportedURL(url) {
		return nil, ErrInvalidLink
	}

	cmd := exec.CommandContext(ctx, "yt-dlp", "-J", "--no-warnings", "--skip-download", url)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		slog.Error("yt-dlp metadata fetch failed", "url", url, "stderr", strings.TrimSpace(stderr.String()))
		return nil, fmt.Errorf("%w: %s", ErrExtractionFailed, firstLine(stderr.String()))
	}

	var meta Metadata
	if err := json.Unmarshal(stdout.Bytes(), &meta); err != nil {
		return nil, fmt.Errorf("%w: unreadable metadata: %v", ErrExtractionFailed, err)
	}
	if meta.WebpageURL == "" {
		meta.WebpageURL = url
	}
	return &meta, nil
}

// DownloadAudio extracts the best audio stream and transcodes it to mp3
// at 192k. The encoder does not always honor the mp3 extension, so the
// produced file is located by probing the acceptable containers.
func DownloadAudio(ctx context.Context, url, dir, userID string) (string, error) {
	base := filepath.Join(dir, "audio_"+userID)
	args := []string{
		"-f", "bestaudio/best",
		"-x",
		"--audio-format", "mp3",
		"--audio-quality", "192K",
		"--no-warnings",
		"-o", base + ".%(ext)s",
		url,
	}
	if err := run(ctx, args); err != nil {
		return "", err
	}
	return locateAudio(base)
}

// DownloadVideo fetches the best stream at most 720p tall and under the
// size ceiling, falling back to a size-only constraint, and enforces the
// ceiling again on the resulting file.
func DownloadVideo(ctx context.Context, url, dir, userID string) (string, error) {
	path := filepath.Join(dir, fmt.Sprintf("video_%s.mp4", userID))
	args := []string{
		"-f", "best[height<=720][filesize<50M]/best[filesize<50M]",
		"--no-warnings",
		"-o", path,
		url,
	}
	if err := run(ctx, args); err != nil {
		return "", err
	}
	if err := checkVideoSize(path); err != nil {
		return "", err
	}
	return path, nil
}

func checkVideoSize(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return ErrOutputNotFound
	}
	if info.Size() > MaxVideoBytes {
		return ErrFileTooLarge
	}
	return nil
}

func run(ctx context.Context, args []string) error {
	cmd := exec.CommandContext(ctx, "yt-dlp", args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		slog.Error("yt-dlp download failed", "stderr", strings.TrimSpace(stderr.String()))
		return fmt.Errorf("%w: %s", ErrExtractionFailed, firstLine(stderr.String()))
	}
	return nil
}

// audioExtensions is ordered by preference, the transcode target first.
var audioExtensions = []string{"mp3", "m4a", "webm"}

func locateAudio(base string) (string, error) {
	for _, ext := range audioExtensions {
		candidate := base + "." + ext
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", ErrOutputNotFound
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	if s == "" {
		s = "unknown error"
	}
	return s
}
