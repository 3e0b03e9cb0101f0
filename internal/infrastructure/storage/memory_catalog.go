package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/yourusername/aroma-ai-bot/internal/domain/entity"
	"github.com/yourusername/aroma-ai-bot/internal/domain/repository"
)

// memoryCatalogRepository aktiv katalog snapshotini xotirada saqlaydi.
// Bu yagona swap nuqtasi: Replace yangi katalogga pointer ni mutex
// ostida almashtiradi, o'quvchilar Snapshot orqali olingan katalogda
// locksiz ishlaydi - katalog o'zi immutable.
type memoryCatalogRepository struct {
	mu      sync.RWMutex
	catalog *entity.Catalog
}

// NewMemoryCatalogRepository in-memory catalog repository yaratish
func NewMemoryCatalogRepository() repository.CatalogRepository {
	return &memoryCatalogRepository{}
}

// Replace aktiv katalogni butunlay almashtirish
func (m *memoryCatalogRepository) Replace(ctx context.Context, catalog *entity.Catalog) error {
	if catalog == nil {
		return fmt.Errorf("catalog is nil")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.catalog = catalog
	return nil
}

// Snapshot hozirgi aktiv katalogni olish
func (m *memoryCatalogRepository) Snapshot(ctx context.Context) (*entity.Catalog, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.catalog == nil {
		return nil, fmt.Errorf("catalog not found")
	}

	return m.catalog, nil
}
