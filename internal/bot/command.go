package bot

import "strings"

// Command is the closed set of slash commands the bot understands.
type Command int

const (
	// CommandNone means the text is not a command at all.
	CommandNone Command = iota
	CommandStart
	CommandHelp
	CommandUnknown
)

// ParseCommand classifies inbound text. Anything starting with "/" is a
// command; unknown commands are reported so the dispatcher can answer with
// exactly one "Command not found!" message.
func ParseCommand(text string) Command {
	if !strings.HasPrefix(text, "/") {
		return CommandNone
	}
	// Strip a bot mention suffix ("/start@swaga_bot").
	cmd := strings.Fields(text)[0]
	if i := strings.IndexByte(cmd, '@'); i > 0 {
		cmd = cmd[:i]
	}
	switch cmd {
	case "/start":
		return CommandStart
	case "/help":
		return CommandHelp
	default:
		return CommandUnknown
	}
}
