package usecase

import (
	"math"
	"testing"

	"github.com/yourusername/aroma-ai-bot/internal/domain/entity"
)

func aggregationCatalog() *entity.Catalog {
	variants := []entity.ProductVariant{
		{AromaName: "Tobacco Vanille", NormalizedKey: "tobaccovanille", Factory: "Seluz", Quality: entity.QualityTop, RawRowIndex: 0, PopularityLast: fp(40)},
		{AromaName: "Tobacco Vanille", NormalizedKey: "tobaccovanille", Factory: "Luzi", Quality: entity.QualityQ1, RawRowIndex: 1, PopularityLast: fp(10)},
		{AromaName: "Tobacco Vanille", NormalizedKey: "tobaccovanille", Factory: "Givaudan", Quality: entity.QualityQ2, RawRowIndex: 2, PopularityLast: nil},
		{AromaName: "Aventus", NormalizedKey: "aventus", Factory: "Seluz", Quality: entity.QualityTop, RawRowIndex: 3, PopularityLast: fp(99)},
	}
	return entity.NewCatalog("agg-test", variants)
}

func TestAggregateVariantsShares(t *testing.T) {
	shares := AggregateVariants(aggregationCatalog(), "Tobacco Vanille")
	if len(shares) != 3 {
		t.Fatalf("shares len = %d, want 3", len(shares))
	}

	wantShares := []float64{80, 20, 0}
	for i, want := range wantShares {
		if math.Abs(shares[i].SharePercent-want) > 1e-9 {
			t.Errorf("share[%d] = %v, want %v", i, shares[i].SharePercent, want)
		}
	}

	if !shares[0].IsTopVariant {
		t.Error("Seluz share should be top variant")
	}
	if shares[1].IsTopVariant || shares[2].IsTopVariant {
		t.Error("only one share may be top variant")
	}
}

// Yagona variantli aromat uchun agregatsiya yo'q
func TestAggregateVariantsSingleMember(t *testing.T) {
	if shares := AggregateVariants(aggregationCatalog(), "Aventus"); shares != nil {
		t.Errorf("single-member group: shares = %v, want nil", shares)
	}
}

// Mashhurlik yig'indisi nol - bo'sh natija, nolga bo'lish yo'q
func TestAggregateVariantsZeroSum(t *testing.T) {
	variants := []entity.ProductVariant{
		{NormalizedKey: "ghost", Factory: "A", RawRowIndex: 0},
		{NormalizedKey: "ghost", Factory: "B", RawRowIndex: 1, PopularityLast: fp(0)},
	}
	catalog := entity.NewCatalog("zero-sum", variants)

	if shares := AggregateVariants(catalog, "ghost"); shares != nil {
		t.Errorf("zero-sum group: shares = %v, want nil", shares)
	}
}

// Teng eng katta qiymatlarda birinchi kelgani top bo'ladi
func TestAggregateVariantsTieFirstWins(t *testing.T) {
	variants := []entity.ProductVariant{
		{NormalizedKey: "tie", Factory: "First", RawRowIndex: 0, PopularityLast: fp(25)},
		{NormalizedKey: "tie", Factory: "Second", RawRowIndex: 1, PopularityLast: fp(25)},
	}
	catalog := entity.NewCatalog("tie-test", variants)

	shares := AggregateVariants(catalog, "tie")
	if len(shares) != 2 {
		t.Fatalf("shares len = %d, want 2", len(shares))
	}
	if !shares[0].IsTopVariant {
		t.Error("first occurrence should win the tie")
	}
	if shares[1].IsTopVariant {
		t.Error("second occurrence must not be top variant")
	}
}

func TestAggregateVariantsUnknownAroma(t *testing.T) {
	if shares := AggregateVariants(aggregationCatalog(), "Chanel No 5"); shares != nil {
		t.Errorf("unknown aroma: shares = %v, want nil", shares)
	}
}
