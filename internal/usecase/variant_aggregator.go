package usecase

import (
	"github.com/yourusername/aroma-ai-bot/internal/domain/entity"
)

// AggregateVariants bitta aromatning (fabrika, sifat) variantlari bo'yicha
// mashhurlik ulushlarini hisoblash. Faqat >= 2 a'zoli guruhlar uchun
// ishlaydi; guruh mashhurlik yig'indisi 0 bo'lsa bo'sh ro'yxat qaytadi
// (nolga bo'lish yo'q). Yagona eng mashhur a'zo IsTopVariant bilan
// belgilanadi - teng qiymatlarda asl tartibda birinchi kelgani.
func AggregateVariants(catalog *entity.Catalog, aromaName string) []entity.VariantShare {
	if catalog == nil {
		return nil
	}

	group := catalog.GroupByKey(entity.NormalizeAromaKey(aromaName))
	if len(group) < 2 {
		return nil
	}

	sum := 0.0
	for _, v := range group {
		if v.PopularityLast != nil {
			sum += *v.PopularityLast
		}
	}
	if sum <= 0 {
		return nil
	}

	topIdx := 0
	topValue := -1.0
	for i, v := range group {
		value := 0.0
		if v.PopularityLast != nil {
			value = *v.PopularityLast
		}
		if value > topValue {
			topValue = value
			topIdx = i
		}
	}

	shares := make([]entity.VariantShare, 0, len(group))
	for i, v := range group {
		value := 0.0
		if v.PopularityLast != nil {
			value = *v.PopularityLast
		}
		shares = append(shares, entity.VariantShare{
			Factory:      v.Factory,
			Quality:      v.Quality,
			SharePercent: value / sum * 100,
			IsTopVariant: i == topIdx,
		})
	}
	return shares
}
