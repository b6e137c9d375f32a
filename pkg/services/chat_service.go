package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dskvich/chatai-assistant/pkg/domain"
)

type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, req domain.ChatRequest) (string, error)
}

type Translator interface {
	Translate(ctx context.Context, text, target string) (string, error)
}

type chatService struct {
	completer  ChatCompleter
	translator Translator
	opts       domain.Options
}

func NewChatService(completer ChatCompleter, translator Translator, opts domain.Options) *chatService {
	return &chatService{
		completer:  completer,
		translator: translator,
		opts:       opts,
	}
}

// Reply sends message with the conversation as context and returns the
// updated conversation together with the reply in the requested language.
// On failure the returned conversation follows the AppendFailedTurns policy.
func (c *chatService) Reply(ctx context.Context, conv domain.Conversation, message, language string) (domain.Conversation, string, error) {
	withUser, ok := conv.Append(domain.Turn{Role: domain.RoleUser, Content: message})
	if !ok {
		return conv, "", domain.ErrEmptyInput
	}

	failed := func(err error) (domain.Conversation, string, error) {
		if c.opts.AppendFailedTurns {
			return withUser, "", err
		}
		return conv, "", err
	}

	req := c.buildRequest(withUser)

	slog.InfoContext(ctx, "Calling AI for chat completion", "model", req.Model, "messagesCount", len(req.Messages))

	reply, err := c.complete(ctx, req)
	if err != nil {
		return failed(fmt.Errorf("creating chat completion: %w", err))
	}

	if language != "" && language != c.opts.NativeLanguage {
		translated, err := c.translate(ctx, reply, language)
		if err != nil {
			return failed(fmt.Errorf("translating reply to %s: %w", language, err))
		}
		reply = translated
	}

	withAssistant, ok := withUser.Append(domain.Turn{Role: domain.RoleAssistant, Content: reply})
	if !ok {
		return failed(domain.MalformedError("chat", fmt.Errorf("empty reply")))
	}

	return withAssistant, reply, nil
}

func (c *chatService) buildRequest(conv domain.Conversation) domain.ChatRequest {
	messages := make([]domain.Turn, 0, conv.Len()+1)
	if c.opts.SystemPrompt != "" {
		messages = append(messages, domain.Turn{Role: domain.RoleSystem, Content: c.opts.SystemPrompt})
	}
	messages = append(messages, conv.Turns()...)

	return domain.ChatRequest{
		Model:       c.opts.Model,
		Messages:    messages,
		Temperature: c.opts.Temperature,
		MaxTokens:   c.opts.MaxTokens,
	}
}

func (c *chatService) complete(ctx context.Context, req domain.ChatRequest) (string, error) {
	if c.opts.ChatTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.opts.ChatTimeout)
		defer cancel()
	}
	return c.completer.CreateChatCompletion(ctx, req)
}

func (c *chatService) translate(ctx context.Context, text, language string) (string, error) {
	if c.opts.TranslationTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.opts.TranslationTimeout)
		defer cancel()
	}
	return c.translator.Translate(ctx, text, language)
}
