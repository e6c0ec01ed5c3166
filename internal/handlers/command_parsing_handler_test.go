package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		action Action
		args   string
	}{
		{name: "start", text: "/start", action: Start},
		{name: "help", text: "/help", action: Help},
		{name: "mp3", text: "/mp3", action: DownloadAudio},
		{name: "mp4", text: "/mp4", action: DownloadVideo},
		{name: "broadcast with body", text: "/broadcast Hello everyone", action: Broadcast, args: "Hello everyone"},
		{name: "broadcast without body", text: "/broadcast", action: Broadcast, args: ""},
		{name: "broadcast trims args", text: "/broadcast   Hello  ", action: Broadcast, args: "Hello"},
		{name: "link", text: "https://youtu.be/abc123", action: ResolveLink, args: "https://youtu.be/abc123"},
		{name: "link with whitespace", text: "  https://youtu.be/abc123  ", action: ResolveLink, args: "https://youtu.be/abc123"},
		{name: "plain text", text: "hello", action: ResolveLink, args: "hello"},
		{name: "unknown command falls to link path", text: "/dance", action: ResolveLink, args: "/dance"},
		{name: "command token never mistaken for link", text: "/mp3 https://youtu.be/abc", action: DownloadAudio},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, args := classify(tc.text)
			assert.Equal(t, tc.action, action)
			assert.Equal(t, tc.args, args)
		})
	}
}
