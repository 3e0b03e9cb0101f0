package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/yourusername/aroma-ai-bot/internal/domain/entity"
	"github.com/yourusername/aroma-ai-bot/internal/infrastructure/parser"
	"github.com/yourusername/aroma-ai-bot/internal/infrastructure/sheets"
)

type stubSheetSource struct {
	header []string
	rows   []sheets.RawRow
	err    error
}

func (s *stubSheetSource) FetchRows(_ context.Context) ([]string, []sheets.RawRow, error) {
	return s.header, s.rows, s.err
}

type stubCatalogRepo struct {
	catalog *entity.Catalog
}

func (r *stubCatalogRepo) Replace(_ context.Context, catalog *entity.Catalog) error {
	r.catalog = catalog
	return nil
}

func (r *stubCatalogRepo) Snapshot(_ context.Context) (*entity.Catalog, error) {
	if r.catalog == nil {
		return nil, fmt.Errorf("catalog not found")
	}
	return r.catalog, nil
}

func validHeader() []string {
	header := make([]string, 25)
	header[5] = "Бренд"
	header[6] = "Аромат"
	header[7] = "Пол"
	header[8] = "Фабрика"
	header[9] = "Качество"
	header[11] = "30 GR"
	header[12] = "50 GR"
	header[13] = "500 GR"
	header[14] = "1 KG"
	header[15] = "Страна"
	header[23] = "TOP LAST"
	header[24] = "TOP ALL"
	return header
}

func sheetRow(index int, brand, aroma, quality, price30, topLast string) sheets.RawRow {
	cells := make([]string, 25)
	cells[5] = brand
	cells[6] = aroma
	cells[9] = quality
	cells[11] = price30
	cells[23] = topLast
	return sheets.RawRow{Index: index, Cells: cells}
}

func newTestCatalogUseCase(source SheetSource, repo *stubCatalogRepo) *CatalogUseCase {
	mapping := parser.DefaultColumnMapping()
	normalizer := parser.NewRowNormalizer(mapping, nil, 0)
	return NewCatalogUseCase(source, mapping, normalizer, repo)
}

func TestReloadBuildsCatalog(t *testing.T) {
	source := &stubSheetSource{
		header: validHeader(),
		rows: []sheets.RawRow{
			sheetRow(0, "Tom Ford", "Tobacco Vanille", "6", "1 200₽", "7.5"),
			sheetRow(1, "", "Ghost Aroma", "5", "900", "1.0"),   // brand yo'q - discarded
			sheetRow(2, "Creed", "Aventus", "5", "abc", "3.0"), // narx o'qilmaydi
		},
	}
	repo := &stubCatalogRepo{}
	uc := newTestCatalogUseCase(source, repo)

	report, err := uc.Reload(context.Background())
	if err != nil {
		t.Fatalf("Reload() error: %v", err)
	}

	if report.TotalRows != 3 {
		t.Errorf("TotalRows = %d, want 3", report.TotalRows)
	}
	if report.Loaded != 2 {
		t.Errorf("Loaded = %d, want 2", report.Loaded)
	}
	if report.Discarded != 1 {
		t.Errorf("Discarded = %d, want 1", report.Discarded)
	}
	if report.FieldIssues != 1 {
		t.Errorf("FieldIssues = %d, want 1", report.FieldIssues)
	}
	if report.CatalogID == "" {
		t.Error("CatalogID is empty")
	}

	catalog, err := uc.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot() error: %v", err)
	}
	if len(catalog.Variants) != 2 {
		t.Fatalf("catalog len = %d, want 2", len(catalog.Variants))
	}
	if catalog.Variants[0].Quality != entity.QualityTop {
		t.Errorf("quality = %q, want %q", catalog.Variants[0].Quality, entity.QualityTop)
	}
	if catalog.Variants[0].PriceTiers[entity.Bracket0To49] == nil ||
		*catalog.Variants[0].PriceTiers[entity.Bracket0To49] != 1200 {
		t.Errorf("price not parsed: %v", catalog.Variants[0].PriceTiers[entity.Bracket0To49])
	}
	// O'qilmagan narx null bo'ladi, qator saqlanadi
	if catalog.Variants[1].PriceTiers[entity.Bracket0To49] != nil {
		t.Errorf("unparseable price should be nil, got %v", *catalog.Variants[1].PriceTiers[entity.Bracket0To49])
	}
}

// Brend yoki aromat ustuni mos kelmasa reload to'xtaydi va eski katalog qoladi
func TestReloadAbortsOnHeaderMismatch(t *testing.T) {
	old := entity.NewCatalog("old", []entity.ProductVariant{{Brand: "Old", AromaName: "Aroma"}})
	repo := &stubCatalogRepo{catalog: old}

	badHeader := validHeader()
	badHeader[6] = "Нечто другое"
	source := &stubSheetSource{
		header: badHeader,
		rows:   []sheets.RawRow{sheetRow(0, "Tom Ford", "Tobacco Vanille", "6", "1200", "7.5")},
	}
	uc := newTestCatalogUseCase(source, repo)

	if _, err := uc.Reload(context.Background()); err == nil {
		t.Fatal("Reload() should fail on aroma header mismatch")
	}

	catalog, err := repo.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("old catalog lost: %v", err)
	}
	if catalog.ID != "old" {
		t.Errorf("catalog id = %q, want old", catalog.ID)
	}
}

func TestReloadFetchErrorKeepsOldCatalog(t *testing.T) {
	old := entity.NewCatalog("old", nil)
	repo := &stubCatalogRepo{catalog: old}
	source := &stubSheetSource{err: fmt.Errorf("network down")}
	uc := newTestCatalogUseCase(source, repo)

	if _, err := uc.Reload(context.Background()); err == nil {
		t.Fatal("Reload() should propagate fetch error")
	}
	if repo.catalog != old {
		t.Error("failed reload must not replace the catalog")
	}
}

func TestSearchUsesSnapshot(t *testing.T) {
	source := &stubSheetSource{
		header: validHeader(),
		rows: []sheets.RawRow{
			sheetRow(0, "Tom Ford", "Tobacco Vanille", "6", "1200", "7.5"),
			sheetRow(1, "Creed", "Aventus", "5", "900", "3.0"),
		},
	}
	repo := &stubCatalogRepo{}
	uc := newTestCatalogUseCase(source, repo)

	if _, err := uc.Reload(context.Background()); err != nil {
		t.Fatalf("Reload() error: %v", err)
	}

	_, matched, err := uc.Search(context.Background(), "aventus", 0)
	if err != nil {
		t.Fatalf("Search() error: %v", err)
	}
	if len(matched) != 1 || matched[0].Brand != "Creed" {
		t.Fatalf("search result = %+v, want single Creed row", matched)
	}
}
