package matchers

import (
	"testing"

	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
)

func message(text string) *models.Update {
	return &models.Update{Message: &models.Message{Text: text}}
}

func TestIsCommand(t *testing.T) {
	lang := IsCommand("lang")

	assert.True(t, lang(message("/lang")))
	assert.True(t, lang(message("/lang@assistant_bot")))
	assert.True(t, lang(message("/lang en")))
	assert.False(t, lang(message("/language")))
	assert.False(t, lang(message("lang")))
	assert.False(t, lang(message("")))
	assert.False(t, lang(&models.Update{}))
}

func TestIsContent(t *testing.T) {
	assert.True(t, IsContent(message("Ciao")))
	assert.True(t, IsContent(&models.Update{Message: &models.Message{Caption: "guarda"}}))
	assert.True(t, IsContent(&models.Update{Message: &models.Message{Voice: &models.Voice{FileID: "v"}}}))
	assert.False(t, IsContent(message("/clear")))
	assert.False(t, IsContent(message("   ")))
	assert.False(t, IsContent(&models.Update{CallbackQuery: &models.CallbackQuery{}}))
}
