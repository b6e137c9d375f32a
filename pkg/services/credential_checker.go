package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dskvich/chatai-assistant/pkg/domain"
	"github.com/dskvich/chatai-assistant/pkg/logger"
)

type TokenChecker interface {
	CheckToken(ctx context.Context) (int, []byte, error)
}

type credentialChecker struct {
	chat  TokenChecker
	image TokenChecker
}

func NewCredentialChecker(chat, image TokenChecker) *credentialChecker {
	return &credentialChecker{
		chat:  chat,
		image: image,
	}
}

// Check reports one line per credential, image token first.
func (c *credentialChecker) Check(ctx context.Context) []string {
	return []string{
		c.CheckImageToken(ctx),
		c.CheckChatToken(ctx),
	}
}

func (c *credentialChecker) CheckImageToken(ctx context.Context) string {
	return c.check(ctx, c.image, "HF_TOKEN", "invalid or missing Inference API permission")
}

func (c *credentialChecker) CheckChatToken(ctx context.Context) string {
	return c.check(ctx, c.chat, "GROQ_API_KEY", "invalid or missing permissions")
}

func (c *credentialChecker) check(ctx context.Context, checker TokenChecker, name, unauthorized string) string {
	status, body, err := checker.CheckToken(ctx)
	if err != nil {
		slog.WarnContext(ctx, "Credential check failed", "credential", name, logger.Err(err))
		return fmt.Sprintf("⚠️ %s check failed: %v", name, err)
	}

	slog.InfoContext(ctx, "Credential checked", "credential", name, "status", status)

	switch status {
	case http.StatusOK:
		return fmt.Sprintf("✅ %s valid!", name)
	case http.StatusUnauthorized:
		return fmt.Sprintf("❌ %s %s!", name, unauthorized)
	default:
		return fmt.Sprintf("⚠️ %s error: %d - %s", name, status, domain.Truncate(string(body), 150))
	}
}
