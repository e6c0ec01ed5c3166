package broadcast

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFanoutCountsSuccessesAndFailures(t *testing.T) {
	recipients := []string{"1", "2", "3"}

	report := Fanout(recipients, 0, func(chatID string) error {
		if chatID == "2" {
			return errors.New("blocked by user")
		}
		return nil
	})

	assert.Equal(t, 2, report.Sent)
	assert.Equal(t, 1, report.Failed)
}

func TestFanoutContinuesPastFailures(t *testing.T) {
	var attempted []string

	report := Fanout([]string{"1", "2", "3", "4"}, 0, func(chatID string) error {
		attempted = append(attempted, chatID)
		return errors.New("nope")
	})

	assert.Equal(t, []string{"1", "2", "3", "4"}, attempted, "every recipient is attempted")
	assert.Equal(t, 0, report.Sent)
	assert.Equal(t, 4, report.Failed)
}

func TestFanoutEmpty(t *testing.T) {
	report := Fanout(nil, 0, func(string) error {
		t.Fatal("send must not be called")
		return nil
	})

	assert.Zero(t, report.Sent)
	assert.Zero(t, report.Failed)
}
