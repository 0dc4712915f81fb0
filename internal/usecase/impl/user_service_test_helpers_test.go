package impl

import (
	"io"
	"log/slog"

	"account/internal/domain/entity"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func strPtr(s string) *string {
	return &s
}

func storedUser(id string) *entity.User {
	return &entity.User{
		ID:           id,
		Name:         "John Doe",
		Email:        "john@example.com",
		PasswordHash: "hashed_password",
	}
}
