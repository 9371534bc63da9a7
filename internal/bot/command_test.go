package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		text string
		want Command
	}{
		{"/start", CommandStart},
		{"/start@swaga_bot", CommandStart},
		{"/help", CommandHelp},
		{"/start now", CommandStart},
		{"/frobnicate", CommandUnknown},
		{"start", CommandNone},
		{"1", CommandNone},
		{"hello /start", CommandNone},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseCommand(tt.text), "text %q", tt.text)
	}
}
