package auth

import (
	"log/slog"
	"slices"
)

type authenticator struct {
	authorizedUserIDs []int64
}

// NewAuthenticator allows only the listed Telegram users.
func NewAuthenticator(authorizedUserIDs []int64) *authenticator {
	slog.Info("Telegram authorized user IDs", "userIDs", authorizedUserIDs)
	if len(authorizedUserIDs) == 0 {
		slog.Warn("No Telegram user is authorized, every update will be rejected")
	}

	return &authenticator{
		authorizedUserIDs: authorizedUserIDs,
	}
}

func (a *authenticator) IsAuthorized(userID int64) bool {
	return slices.Contains(a.authorizedUserIDs, userID)
}
