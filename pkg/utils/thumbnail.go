package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-resty/resty/v2"
)

// FetchThumbnail downloads a video thumbnail into dir so it can be
// attached as audio cover art. Best effort, callers treat failure as
// "no thumbnail".
func FetchThumbnail(url, dir string) (string, error) {
	if url == "" {
		return "", fmt.Errorf("no thumbnail url")
	}

	client := resty.New().SetTimeout(15 * time.Second)
	resp, err := client.R().Get(url)
	if err != nil {
		return "", fmt.Errorf("fetching thumbnail: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("fetching thumbnail: status %s", resp.Status())
	}

	path := filepath.Join(dir, "thumbnail.jpg")
	if err := os.WriteFile(path, resp.Body(), 0644); err != nil {
		return "", fmt.Errorf("writing thumbnail: %w", err)
	}
	return path, nil
}
