package repository

import (
	"context"

	"github.com/yourusername/aroma-ai-bot/internal/domain/entity"
)

// CatalogRepository aktiv katalog snapshotini saqlaydi. Replace - yagona
// hujjatlashtirilgan swap nuqtasi: o'quvchilar har doim to'liq eski yoki
// to'liq yangi katalogni ko'radi, qisman qurilganini emas.
type CatalogRepository interface {
	// Replace aktiv katalogni butunlay almashtirish
	Replace(ctx context.Context, catalog *entity.Catalog) error

	// Snapshot hozirgi aktiv katalogni olish
	Snapshot(ctx context.Context) (*entity.Catalog, error)
}
