package repository

import (
	"context"

	"github.com/yourusername/aroma-ai-bot/internal/domain/entity"
)

// AIRepository AI bilan ishlash uchun interface
type AIRepository interface {
	// GenerateResponse katalog konteksti va suhbat tarixi bilan javob yaratish.
	// catalogContext - ContextRenderer tayyorlagan chegaralangan matn bloki.
	GenerateResponse(ctx context.Context, userID int64, message string, catalogContext string, history []entity.Message) (string, error)

	// Close client resurslarini bo'shatish
	Close() error
}
