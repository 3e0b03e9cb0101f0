package repository

import (
	"context"

	"github.com/yourusername/aroma-ai-bot/internal/domain/entity"
)

// NoteRepository tashqi nota-lookup xizmati. Topilmagan mahsulot uchun
// (nil, nil) qaytadi; transport/dekodlash xatolari error sifatida
// qaytadi va chaqiruvchi ularni yumshoq degradatsiya qiladi (qator
// enrichmentsiz davom etadi).
type NoteRepository interface {
	Lookup(ctx context.Context, productName string) (*entity.NoteInfo, error)
}
