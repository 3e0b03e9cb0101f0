package usecase

import (
	"sort"

	"github.com/yourusername/aroma-ai-bot/internal/domain/entity"
)

// PopularityMetric reyting uchun metrika tanlovi
type PopularityMetric int

const (
	// MetricPopularityLast so'nggi oyna bo'yicha mashhurlik
	MetricPopularityLast PopularityMetric = iota

	// MetricPopularityAll butun davr bo'yicha mashhurlik
	MetricPopularityAll
)

func metricValue(v entity.ProductVariant, metric PopularityMetric) *float64 {
	if metric == MetricPopularityAll {
		return v.PopularityAll
	}
	return v.PopularityLast
}

// RankByMetric barqaror, deterministik reyting. Metrika qiymati bo'yicha
// kamayish tartibida; qiymati yo'q variantlar oxirida asl qator tartibida.
// Teng qiymatlar umumiy raqam olmaydi: har bir pozitsiya o'z raqamini
// oladi, asl tartibda birinchi kelgan oldinda turadi. Natija har doim
// yangi hisoblanadi - Catalog chaqiruvlar orasida almashgan bo'lishi mumkin.
func RankByMetric(catalog *entity.Catalog, metric PopularityMetric) []entity.RankedEntry {
	if catalog == nil || len(catalog.Variants) == 0 {
		return nil
	}

	entries := make([]entity.RankedEntry, 0, len(catalog.Variants))
	for _, v := range catalog.Variants {
		entry := entity.RankedEntry{Variant: v}
		if value := metricValue(v, metric); value != nil {
			entry.Value = *value
		}
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		vi := metricValue(entries[i].Variant, metric)
		vj := metricValue(entries[j].Variant, metric)
		if vi == nil {
			return false
		}
		if vj == nil {
			return true
		}
		return *vi > *vj
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

// RankOf variantning reytingdagi pozitsiyasini topish (RawRowIndex orqali).
// Topilmasa 0.
func RankOf(entries []entity.RankedEntry, rawRowIndex int) int {
	for _, e := range entries {
		if e.Variant.RawRowIndex == rawRowIndex {
			return e.Rank
		}
	}
	return 0
}
