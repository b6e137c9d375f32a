package matchers

import (
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// IsCommand matches "/name" and "/name@botname" with optional arguments.
func IsCommand(name string) bot.MatchFunc {
	return func(update *models.Update) bool {
		if update.Message == nil {
			return false
		}

		fields := strings.Fields(update.Message.Text)
		if len(fields) == 0 {
			return false
		}

		command, _, _ := strings.Cut(fields[0], "@")
		return command == "/"+name
	}
}

// IsContent matches plain text, captions and voice messages that are not commands.
func IsContent(update *models.Update) bool {
	if update.Message == nil {
		return false
	}
	if update.Message.Voice != nil {
		return true
	}

	text := strings.TrimSpace(update.Message.Text)
	if strings.HasPrefix(text, "/") {
		return false
	}

	return text != "" || strings.TrimSpace(update.Message.Caption) != ""
}
