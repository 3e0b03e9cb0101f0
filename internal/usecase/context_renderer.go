package usecase

import (
	"fmt"
	"strings"

	"github.com/yourusername/aroma-ai-bot/internal/domain/constants"
	"github.com/yourusername/aroma-ai-bot/internal/domain/entity"
)

// RenderOptions katalog kontekstini render qilish sozlamalari
type RenderOptions struct {
	// MaxEntries kontekstga kiradigan max mahsulotlar (0 - default)
	MaxEntries int

	// CharacterBudget natija matnining qattiq chegarasi (0 - default)
	CharacterBudget int

	// IncludeLeaderboard mashhurlik top ro'yxatini qo'shish
	IncludeLeaderboard bool

	// LeaderboardSize top ro'yxatdagi pozitsiyalar (0 - default)
	LeaderboardSize int
}

func (o RenderOptions) withDefaults() RenderOptions {
	if o.MaxEntries <= 0 {
		o.MaxEntries = constants.DefaultMaxEntries
	}
	if o.CharacterBudget <= 0 {
		o.CharacterBudget = constants.DefaultCharacterBudget
	}
	if o.LeaderboardSize <= 0 {
		o.LeaderboardSize = constants.DefaultLeaderboardSize
	}
	return o
}

const (
	notSpecifiedPlaceholder     = "Not specified"
	priceUnavailablePlaceholder = "price unavailable"
	nothingFoundPlaceholder     = "nothing found"
	truncationMarker            = "\n[...truncated]"
)

// countryFlags davlat nomi -> bayroq belgisi. Jadval ruscha nomlar
// ishlatadi, lekin inglizchalari ham qabul qilinadi.
var countryFlags = map[string]string{
	"франция":    "🇫🇷",
	"france":     "🇫🇷",
	"оаэ":        "🇦🇪",
	"uae":        "🇦🇪",
	"швейцария":  "🇨🇭",
	"switzerland": "🇨🇭",
	"турция":     "🇹🇷",
	"turkey":     "🇹🇷",
	"германия":   "🇩🇪",
	"germany":    "🇩🇪",
	"италия":     "🇮🇹",
	"italy":      "🇮🇹",
	"испания":    "🇪🇸",
	"spain":      "🇪🇸",
	"великобритания": "🇬🇧",
	"uk":         "🇬🇧",
	"сша":        "🇺🇸",
	"usa":        "🇺🇸",
	"россия":     "🇷🇺",
	"russia":     "🇷🇺",
	"индия":      "🇮🇳",
	"india":      "🇮🇳",
}

func flagForCountry(country string) string {
	if flag, ok := countryFlags[strings.ToLower(strings.TrimSpace(country))]; ok {
		return flag
	}
	return "🌍"
}

func orNotSpecified(value string) string {
	if strings.TrimSpace(value) == "" {
		return notSpecifiedPlaceholder
	}
	return value
}

// RenderCatalogContext topilgan mahsulotlardan AI uchun chegaralangan
// matn bloki yig'ish. Entry soni MaxEntries bilan, umumiy uzunlik
// CharacterBudget bilan cheklanadi. Truncation haqidagi xabar hech
// qachon indamay tushib qolmaydi; har bir ixtiyoriy maydonning o'z
// placeholderi bor, render hech qachon xato ko'tarmaydi.
func RenderCatalogContext(catalog *entity.Catalog, matched []entity.ProductVariant, opts RenderOptions) string {
	opts = opts.withDefaults()

	var b strings.Builder
	b.WriteString("=== FRAGRANCE CATALOG ===\n")
	if catalog != nil {
		fmt.Fprintf(&b, "Total products: %d\n", len(catalog.Variants))
	}

	var rankedLast, rankedAll []entity.RankedEntry
	if catalog != nil {
		rankedLast = RankByMetric(catalog, MetricPopularityLast)
		rankedAll = RankByMetric(catalog, MetricPopularityAll)
	}

	if len(matched) == 0 {
		b.WriteString("\nSearch result: " + nothingFoundPlaceholder + "\n")
	} else {
		shown := matched
		if len(shown) > opts.MaxEntries {
			shown = shown[:opts.MaxEntries]
			fmt.Fprintf(&b, "\nShowing the first %d of %d matches.\n", len(shown), len(matched))
		}

		b.WriteString("\nMATCHED PRODUCTS:\n")
		for _, v := range shown {
			renderEntry(&b, catalog, v, rankedLast, rankedAll)
		}
	}

	if opts.IncludeLeaderboard && len(rankedLast) > 0 {
		renderLeaderboard(&b, rankedLast, opts.LeaderboardSize)
	}

	b.WriteString("\n⭐ Quality scale: TOP > Q1 > Q2\n")

	return enforceBudget(b.String(), opts.CharacterBudget)
}

// renderEntry bitta mahsulot bloki. Maydon tartibi qat'iy: sarlavha,
// notalar, brend/davlat, mashhurlik, variant ulushlari, narxlar.
func renderEntry(b *strings.Builder, catalog *entity.Catalog, v entity.ProductVariant, rankedLast, rankedAll []entity.RankedEntry) {
	title := v.DisplayName()
	if v.SourceLink != "" {
		title += " (" + v.SourceLink + ")"
	}
	fmt.Fprintf(b, "\n🏷️ %s\n", title)

	fmt.Fprintf(b, "🍃 Top notes: %s\n", orNotSpecified(v.Notes.Top))
	fmt.Fprintf(b, "   Mid notes: %s\n", orNotSpecified(v.Notes.Mid))
	fmt.Fprintf(b, "   Base notes: %s\n", orNotSpecified(v.Notes.Base))

	fmt.Fprintf(b, "%s Brand: %s | Country: %s\n", flagForCountry(v.Country), v.Brand, orNotSpecified(v.Country))

	if v.Factory != "" || v.Quality != "" {
		fmt.Fprintf(b, "🏭 Factory: %s | ⭐ Quality: %s\n", orNotSpecified(v.Factory), orNotSpecified(string(v.Quality)))
	}

	if v.PopularityLast != nil {
		fmt.Fprintf(b, "📈 Popularity (recent): %.2f%% (rank %d)\n", *v.PopularityLast, RankOf(rankedLast, v.RawRowIndex))
	}
	if v.PopularityAll != nil {
		fmt.Fprintf(b, "📊 Popularity (all-time): %.2f%% (rank %d)\n", *v.PopularityAll, RankOf(rankedAll, v.RawRowIndex))
	}

	if shares := AggregateVariants(catalog, v.AromaName); len(shares) > 0 {
		parts := make([]string, 0, len(shares))
		for _, s := range shares {
			part := fmt.Sprintf("%s %s — %.0f%%", orNotSpecified(s.Factory), orNotSpecified(string(s.Quality)), s.SharePercent)
			if s.IsTopVariant {
				part += " (top)"
			}
			parts = append(parts, part)
		}
		fmt.Fprintf(b, "🔀 Variant shares: %s\n", strings.Join(parts, ", "))
	}

	b.WriteString("💰 Prices:\n")
	for bracket := entity.PriceBracket(0); bracket < entity.BracketCount; bracket++ {
		price := v.PriceTiers[bracket]
		if price == nil {
			fmt.Fprintf(b, "• %s: %s\n", bracket.VolumeRange(), priceUnavailablePlaceholder)
			continue
		}
		fmt.Fprintf(b, "• %s: %.2f₽/g\n", bracket.VolumeRange(), *price)
	}
}

func renderLeaderboard(b *strings.Builder, rankedLast []entity.RankedEntry, size int) {
	fmt.Fprintf(b, "\n🔥 TOP %d BY RECENT POPULARITY:\n", size)
	count := 0
	for _, e := range rankedLast {
		if e.Variant.PopularityLast == nil {
			break
		}
		count++
		fmt.Fprintf(b, "%d. %s — %.2f%%", e.Rank, e.Variant.DisplayName(), e.Value)
		if e.Variant.Factory != "" {
			fmt.Fprintf(b, " (%s", e.Variant.Factory)
			if e.Variant.Quality != "" {
				fmt.Fprintf(b, ", %s", e.Variant.Quality)
			}
			b.WriteString(")")
		}
		b.WriteString("\n")
		if count >= size {
			break
		}
	}
}

// enforceBudget qattiq chegara: matn budjetdan oshsa chegarada kesiladi
// va belgilangan marker qo'shiladi. Bu entry-count limitidan alohida
// oxirgi himoya - bitta entryning nota/narx ro'yxati o'zi uzun bo'lishi mumkin.
func enforceBudget(text string, budget int) string {
	runes := []rune(text)
	if len(runes) <= budget {
		return text
	}

	marker := []rune(truncationMarker)
	cut := budget - len(marker)
	if cut < 0 {
		cut = 0
		marker = marker[:budget]
	}
	return string(runes[:cut]) + string(marker)
}
