package bot

import "context"

// Update is the inbound event delivered by the chat transport.
type Update struct {
	UpdateID int64
	ChatID   int64
	UserID   int64
	Username string
	Text     string
}

// Sender is the outbound capability of the chat transport.
type Sender interface {
	SendText(ctx context.Context, chatID int64, text string) error
	SendTextWithOptions(ctx context.Context, chatID int64, text string, options []string) error
}
