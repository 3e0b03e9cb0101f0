package usecase

import (
	"testing"

	"github.com/yourusername/aroma-ai-bot/internal/domain/entity"
)

func rankingCatalog() *entity.Catalog {
	variants := []entity.ProductVariant{
		{AromaName: "A", RawRowIndex: 0, PopularityLast: fp(2.5), PopularityAll: fp(1.0)},
		{AromaName: "B", RawRowIndex: 1, PopularityLast: nil, PopularityAll: fp(3.0)},
		{AromaName: "C", RawRowIndex: 2, PopularityLast: fp(7.0), PopularityAll: nil},
		{AromaName: "D", RawRowIndex: 3, PopularityLast: fp(2.5), PopularityAll: fp(2.0)},
	}
	return entity.NewCatalog("rank-test", variants)
}

func TestRankByMetricDescendingNullsLast(t *testing.T) {
	entries := RankByMetric(rankingCatalog(), MetricPopularityLast)
	if len(entries) != 4 {
		t.Fatalf("entries len = %d, want 4", len(entries))
	}

	wantRows := []int{2, 0, 3, 1} // 7.0, 2.5, 2.5, null
	for i, want := range wantRows {
		if entries[i].Variant.RawRowIndex != want {
			t.Errorf("position %d: row = %d, want %d", i, entries[i].Variant.RawRowIndex, want)
		}
		if entries[i].Rank != i+1 {
			t.Errorf("position %d: rank = %d, want %d", i, entries[i].Rank, i+1)
		}
	}
}

// Teng qiymatlar umumiy raqam olmaydi: asl tartibda birinchi kelgan oldinda
func TestRankByMetricStableTies(t *testing.T) {
	entries := RankByMetric(rankingCatalog(), MetricPopularityLast)

	// 2.5 ikki marta: row 0 row 3 dan oldin
	if entries[1].Variant.RawRowIndex != 0 || entries[2].Variant.RawRowIndex != 3 {
		t.Errorf("tie order = [%d %d], want [0 3]",
			entries[1].Variant.RawRowIndex, entries[2].Variant.RawRowIndex)
	}
	if entries[1].Rank == entries[2].Rank {
		t.Errorf("tied variants share rank %d", entries[1].Rank)
	}
}

func TestRankByMetricIdempotent(t *testing.T) {
	catalog := rankingCatalog()
	first := RankByMetric(catalog, MetricPopularityAll)
	second := RankByMetric(catalog, MetricPopularityAll)

	if len(first) != len(second) {
		t.Fatalf("lens differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Variant.RawRowIndex != second[i].Variant.RawRowIndex || first[i].Rank != second[i].Rank {
			t.Errorf("position %d differs between runs", i)
		}
	}
	// Asl katalog tartibi o'zgarmagan
	for i, v := range catalog.Variants {
		if v.RawRowIndex != i {
			t.Errorf("catalog order mutated at %d", i)
		}
	}
}

func TestRankOf(t *testing.T) {
	entries := RankByMetric(rankingCatalog(), MetricPopularityLast)

	if got := RankOf(entries, 2); got != 1 {
		t.Errorf("RankOf(2) = %d, want 1", got)
	}
	if got := RankOf(entries, 99); got != 0 {
		t.Errorf("RankOf(absent) = %d, want 0", got)
	}
}

func TestRankByMetricEmptyCatalog(t *testing.T) {
	if entries := RankByMetric(nil, MetricPopularityLast); entries != nil {
		t.Errorf("nil catalog: entries = %v, want nil", entries)
	}
	if entries := RankByMetric(entity.NewCatalog("empty", nil), MetricPopularityLast); entries != nil {
		t.Errorf("empty catalog: entries = %v, want nil", entries)
	}
}
