package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{name: "short stays whole", title: "Sample Video", want: "Sample Video"},
		{name: "exactly fifty stays whole", title: strings.Repeat("a", 50), want: strings.Repeat("a", 50)},
		{name: "long gets ellipsis", title: strings.Repeat("a", 60), want: strings.Repeat("a", 50) + "..."},
		{name: "empty", title: "", want: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, TruncateTitle(tc.title))
		})
	}
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "2:05", FormatDuration(125))
	assert.Equal(t, "0:59", FormatDuration(59))
	assert.Equal(t, "61:40", FormatDuration(3700))
	assert.Equal(t, "Unknown", FormatDuration(0))
	assert.Equal(t, "Unknown", FormatDuration(-3))
}

func TestFormatViews(t *testing.T) {
	assert.Equal(t, "10,000", FormatViews(10000))
	assert.Equal(t, "1,234,567", FormatViews(1234567))
	assert.Equal(t, "999", FormatViews(999))
	assert.Equal(t, "Unknown", FormatViews(0))
}
