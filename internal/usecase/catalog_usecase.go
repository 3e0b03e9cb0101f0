package usecase

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/yourusername/aroma-ai-bot/internal/domain/constants"
	"github.com/yourusername/aroma-ai-bot/internal/domain/entity"
	"github.com/yourusername/aroma-ai-bot/internal/domain/repository"
	"github.com/yourusername/aroma-ai-bot/internal/infrastructure/parser"
	"github.com/yourusername/aroma-ai-bot/internal/infrastructure/sheets"
)

// SheetSource jadval qatorlarini yetkazib beruvchi manba
type SheetSource interface {
	FetchRows(ctx context.Context) ([]string, []sheets.RawRow, error)
}

// ReloadReport bitta reload siklining hisoboti
type ReloadReport struct {
	CatalogID        string
	TotalRows        int
	Loaded           int
	Discarded        int
	FieldIssues      int
	EnrichmentMisses int
	Duration         time.Duration
}

// CatalogUseCase katalogni yuklash va qidirish business logic.
// Reload yagona yozuvchi: bir vaqtda faqat bitta reload ishlaydi,
// o'quvchilar esa eski snapshot bilan davom etadi.
type CatalogUseCase struct {
	source     SheetSource
	mapping    parser.ColumnMapping
	normalizer *parser.RowNormalizer
	repo       repository.CatalogRepository

	reloadMu sync.Mutex
}

// NewCatalogUseCase yangi catalog use case yaratish
func NewCatalogUseCase(
	source SheetSource,
	mapping parser.ColumnMapping,
	normalizer *parser.RowNormalizer,
	repo repository.CatalogRepository,
) *CatalogUseCase {
	return &CatalogUseCase{
		source:     source,
		mapping:    mapping,
		normalizer: normalizer,
		repo:       repo,
	}
}

// Reload jadvalni qayta yuklash. Yangi katalog to'liq qurilgandan
// keyingina bitta almashtirish bilan o'rnatiladi; qurish xato bilan
// tugasa eski katalog o'z joyida qoladi.
func (uc *CatalogUseCase) Reload(ctx context.Context) (*ReloadReport, error) {
	uc.reloadMu.Lock()
	defer uc.reloadMu.Unlock()

	start := time.Now()
	log.Printf("🔄 Katalog reload boshlandi")

	header, rows, err := uc.source.FetchRows(ctx)
	if err != nil {
		log.Printf("❌ Jadval yuklanmadi: %v", err)
		return nil, fmt.Errorf("katalog yuklanmadi: %w", err)
	}

	mismatches, err := uc.mapping.Validate(header)
	for _, m := range mismatches {
		log.Printf("⚠️ Ustun mapping: %s", m)
	}
	if err != nil {
		log.Printf("❌ Ustun mapping validatsiyasi: %v", err)
		return nil, fmt.Errorf("ustun mapping mos kelmadi: %w", err)
	}

	report := &ReloadReport{TotalRows: len(rows)}
	variants := make([]entity.ProductVariant, 0, len(rows))

	// Butun normalize+enrichment bosqichi uchun umumiy timeout: bitta
	// sekin tashqi xizmat reloadni cheksiz cho'zmasligi kerak
	rowCtx, cancel := context.WithTimeout(ctx, constants.EnrichPassTimeout*time.Second)
	defer cancel()

	for _, row := range rows {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		result := uc.normalizer.Normalize(rowCtx, row)
		if result.Discarded {
			report.Discarded++
			continue
		}

		for _, issue := range result.Issues {
			switch issue.Kind {
			case parser.IssueEnrichmentUnavailable:
				report.EnrichmentMisses++
			default:
				report.FieldIssues++
				log.Printf("⚠️ Qator %d, ustun %s: %q o'qilmadi", row.Index, issue.Column, issue.Raw)
			}
		}

		variants = append(variants, *result.Variant)
	}

	catalog := entity.NewCatalog(uuid.NewString(), variants)
	if err := uc.repo.Replace(ctx, catalog); err != nil {
		return nil, fmt.Errorf("katalog almashtirilmadi: %w", err)
	}

	report.CatalogID = catalog.ID
	report.Loaded = len(variants)
	report.Duration = time.Since(start)

	log.Printf("✅ Katalog %s yuklandi: %d/%d qator, %d discarded, %d field issue, %d enrichment miss (%v)",
		report.CatalogID, report.Loaded, report.TotalRows, report.Discarded,
		report.FieldIssues, report.EnrichmentMisses, report.Duration.Round(time.Millisecond))

	return report, nil
}

// Snapshot joriy katalogni olish
func (uc *CatalogUseCase) Snapshot(ctx context.Context) (*entity.Catalog, error) {
	return uc.repo.Snapshot(ctx)
}

// Search joriy katalog ustida qidirish
func (uc *CatalogUseCase) Search(ctx context.Context, query string, limit int) (*entity.Catalog, []entity.ProductVariant, error) {
	catalog, err := uc.repo.Snapshot(ctx)
	if err != nil {
		return nil, nil, err
	}
	return catalog, catalog.Search(query, limit), nil
}

// TopByPopularity joriy katalogning mashhurlik reytingi
func (uc *CatalogUseCase) TopByPopularity(ctx context.Context, metric PopularityMetric) ([]entity.RankedEntry, error) {
	catalog, err := uc.repo.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return RankByMetric(catalog, metric), nil
}
