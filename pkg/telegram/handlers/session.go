package handlers

import (
	"fmt"

	"github.com/go-telegram/bot/models"
)

// SessionID identifies the conversation of a chat topic.
func SessionID(chatID int64, topicID int) string {
	return fmt.Sprintf("tg:%d:%d", chatID, topicID)
}

func messageSessionID(msg *models.Message) string {
	return SessionID(msg.Chat.ID, msg.MessageThreadID)
}
