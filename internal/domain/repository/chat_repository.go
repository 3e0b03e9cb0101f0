package repository

import (
	"context"

	"github.com/yourusername/aroma-ai-bot/internal/domain/entity"
)

// ChatRepository suhbat tarixini saqlash uchun interface
type ChatRepository interface {
	// SaveMessage xabarni saqlash
	SaveMessage(ctx context.Context, message entity.Message) error

	// GetHistory foydalanuvchi chat tarixini olish
	GetHistory(ctx context.Context, userID int64, limit int) ([]entity.Message, error)

	// ClearHistory foydalanuvchi tarixini tozalash
	ClearHistory(ctx context.Context, userID int64) error

	// ClearAll barcha chat tarixlarini tozalash
	ClearAll(ctx context.Context) error
}
