package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/yourusername/aroma-ai-bot/internal/domain/constants"
	"github.com/yourusername/aroma-ai-bot/internal/domain/entity"
	"github.com/yourusername/aroma-ai-bot/internal/domain/repository"
)

// ChatUseCase chat bilan bog'liq business logic
type ChatUseCase interface {
	ProcessMessage(ctx context.Context, userID int64, username, text string) (string, error)
	ClearHistory(ctx context.Context, userID int64) error
	GetHistory(ctx context.Context, userID int64, limit int) ([]entity.Message, error)
}

type chatUseCase struct {
	aiRepo     repository.AIRepository
	chatRepo   repository.ChatRepository
	catalog    *CatalogUseCase
	renderOpts RenderOptions
}

// NewChatUseCase yangi ChatUseCase yaratish
func NewChatUseCase(
	aiRepo repository.AIRepository,
	chatRepo repository.ChatRepository,
	catalog *CatalogUseCase,
	renderOpts RenderOptions,
) ChatUseCase {
	return &chatUseCase{
		aiRepo:     aiRepo,
		chatRepo:   chatRepo,
		catalog:    catalog,
		renderOpts: renderOpts,
	}
}

// ProcessMessage foydalanuvchi xabarini qayta ishlash: savoldan mos
// mahsulotlarni topish, ulardan kontekst yig'ish va AI javobini olish.
// Katalog snapshot olinmasa chat to'xtamaydi - AI bo'sh kontekst bilan
// javob beradi.
func (u *chatUseCase) ProcessMessage(ctx context.Context, userID int64, username, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("bo'sh xabar")
	}

	catalog, matched := u.findProducts(ctx, text)
	catalogContext := RenderCatalogContext(catalog, matched, u.renderOpts)

	history, err := u.chatRepo.GetHistory(ctx, userID, constants.DefaultMaxHistoryMessages)
	if err != nil {
		log.Printf("⚠️ Chat tarixi olinmadi (user %d): %v", userID, err)
		history = nil
	}

	response, err := u.aiRepo.GenerateResponse(ctx, userID, text, catalogContext, history)
	if err != nil {
		return "", fmt.Errorf("AI javob bermadi: %w", err)
	}

	message := entity.Message{
		ID:        uuid.NewString(),
		UserID:    userID,
		Username:  username,
		Text:      text,
		Response:  response,
		Timestamp: time.Now(),
	}
	if err := u.chatRepo.SaveMessage(ctx, message); err != nil {
		log.Printf("⚠️ Xabar saqlanmadi (user %d): %v", userID, err)
	}

	return response, nil
}

// findProducts savoldan mahsulotlarni topish. Avval to'liq matn bilan
// qidiriladi, topilmasa alohida so'zlar bilan (qisqa bog'lovchi so'zlar
// tashlab yuboriladi).
func (u *chatUseCase) findProducts(ctx context.Context, text string) (*entity.Catalog, []entity.ProductVariant) {
	catalog, matched, err := u.catalog.Search(ctx, text, constants.DefaultSearchLimit)
	if err != nil {
		log.Printf("⚠️ Katalog snapshot olinmadi: %v", err)
		return nil, nil
	}
	if len(matched) > 0 {
		return catalog, matched
	}

	seen := make(map[int]bool)
	for _, word := range strings.Fields(text) {
		// "aventus?" dagi tinish belgilari qidiruvni buzmasligi kerak
		word = strings.TrimFunc(word, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if len([]rune(word)) < 3 {
			continue
		}
		for _, v := range catalog.Search(word, constants.DefaultSearchLimit) {
			if seen[v.RawRowIndex] {
				continue
			}
			seen[v.RawRowIndex] = true
			matched = append(matched, v)
			if len(matched) >= constants.DefaultSearchLimit {
				return catalog, matched
			}
		}
	}
	return catalog, matched
}

// ClearHistory foydalanuvchi chat tarixini tozalash
func (u *chatUseCase) ClearHistory(ctx context.Context, userID int64) error {
	return u.chatRepo.ClearHistory(ctx, userID)
}

// GetHistory foydalanuvchi chat tarixini olish
func (u *chatUseCase) GetHistory(ctx context.Context, userID int64, limit int) ([]entity.Message, error) {
	return u.chatRepo.GetHistory(ctx, userID, limit)
}
