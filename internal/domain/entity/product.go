package entity

import (
	"regexp"
	"strings"
	"time"
)

// QualityTier mahsulot sifat darajasi (TOP > Q1 > Q2)
type QualityTier string

const (
	QualityTop QualityTier = "TOP"
	QualityQ1  QualityTier = "Q1"
	QualityQ2  QualityTier = "Q2"
)

// PriceBracket hajm bo'yicha narx diapazoni
type PriceBracket int

const (
	Bracket0To49 PriceBracket = iota
	Bracket50To499
	Bracket500To999
	Bracket1000Plus

	// BracketCount PriceTiers massivining uzunligi
	BracketCount = 4
)

// BracketForVolume so'ralgan hajmni diapazonga aylantirish.
// Chegaralar inklyuziv: 49 -> B0_49, 50 -> B50_499, 999 -> B500_999, 1000 -> B1000_PLUS.
func BracketForVolume(volume float64) PriceBracket {
	switch {
	case volume <= 49:
		return Bracket0To49
	case volume <= 499:
		return Bracket50To499
	case volume <= 999:
		return Bracket500To999
	default:
		return Bracket1000Plus
	}
}

// Label diapazonning jadvaldagi ustun nomi
func (b PriceBracket) Label() string {
	switch b {
	case Bracket0To49:
		return "30 GR"
	case Bracket50To499:
		return "50 GR"
	case Bracket500To999:
		return "500 GR"
	case Bracket1000Plus:
		return "1 KG"
	default:
		return ""
	}
}

// VolumeRange diapazonning inson o'qiydigan chegarasi
func (b PriceBracket) VolumeRange() string {
	switch b {
	case Bracket0To49:
		return "up to 49"
	case Bracket50To499:
		return "50-499"
	case Bracket500To999:
		return "500-999"
	case Bracket1000Plus:
		return "1000+"
	default:
		return ""
	}
}

// Notes aromat notalari
type Notes struct {
	Top  string `json:"top"`
	Mid  string `json:"mid"`
	Base string `json:"base"`
}

// ProductVariant jadvalning bitta qatoridan olingan typed mahsulot.
// Bitta aromat bir nechta (fabrika, sifat) variantlarda keladi - har biri
// alohida narxlanadi va reyting oladi.
type ProductVariant struct {
	Brand         string      `json:"brand"`
	AromaName     string      `json:"aroma_name"`
	NormalizedKey string      `json:"normalized_key"`
	Gender        string      `json:"gender,omitempty"`
	Factory       string      `json:"factory,omitempty"`
	Quality       QualityTier `json:"quality,omitempty"`

	// PriceTiers diapazon tartibida: 30 GR / 50 GR / 500 GR / 1 KG.
	// nil - jadvalda narx yo'q.
	PriceTiers [BracketCount]*float64 `json:"price_tiers"`

	// Popularity foizlarda (0-100), nil - ma'lumot yo'q.
	PopularityLast *float64 `json:"popularity_last,omitempty"`
	PopularityAll  *float64 `json:"popularity_all,omitempty"`

	Country    string `json:"country,omitempty"`
	Notes      Notes  `json:"notes"`
	SourceLink string `json:"source_link,omitempty"`

	// RawRowIndex jadvaldagi asl pozitsiya, barcha tie-breaklar uchun
	// barqaror kalit sifatida ishlatiladi.
	RawRowIndex int `json:"raw_row_index"`
}

// DisplayName brend + aromat
func (v ProductVariant) DisplayName() string {
	return strings.TrimSpace(v.Brand + " " + v.AromaName)
}

var aromaKeyStripRe = regexp.MustCompile(`[\s\-'’ʼ]+`)

// NormalizeAromaKey aromat nomini kanonik kalitga aylantirish:
// kichik harflar, bo'shliq/defis/apostroflar olib tashlanadi.
// Exact-match qidiruv va variant guruhlash shu kalit orqali ishlaydi.
func NormalizeAromaKey(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return aromaKeyStripRe.ReplaceAllString(name, "")
}

// Catalog immutable mahsulotlar to'plami. Reload paytida yangi Catalog
// chetda quriladi va bitta swap nuqtasida almashtiriladi; eski snapshot
// ga ega bo'lgan o'quvchilar uni xavfsiz ishlatishda davom etadi.
type Catalog struct {
	ID       string           `json:"id"`
	Variants []ProductVariant `json:"variants"`
	LoadedAt time.Time        `json:"loaded_at"`
}

// NewCatalog variantlardan katalog qurish (asl qator tartibi saqlanadi)
func NewCatalog(id string, variants []ProductVariant) *Catalog {
	return &Catalog{
		ID:       id,
		Variants: variants,
		LoadedAt: time.Now(),
	}
}

// Search nom bo'yicha qidiruv. Avval normalized kalit bo'yicha EXACT
// moslik; topilmasa substring fallback brend+aromat bo'yicha ("ajmal"
// brend qatorlarini ham topishi kerak). Natijalar asl qator tartibida,
// limit qayta sortlamasdan kesadi. limit <= 0 - cheklovsiz.
func (c *Catalog) Search(query string, limit int) []ProductVariant {
	key := NormalizeAromaKey(query)
	if key == "" {
		return nil
	}

	var exact []ProductVariant
	for _, v := range c.Variants {
		if v.NormalizedKey == key {
			exact = append(exact, v)
		}
	}
	results := exact
	if len(results) == 0 {
		for _, v := range c.Variants {
			if strings.Contains(NormalizeAromaKey(v.DisplayName()), key) {
				results = append(results, v)
			}
		}
	}

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}

// GroupByKey normalized kalit bo'yicha barcha variantlar (asl tartibda)
func (c *Catalog) GroupByKey(key string) []ProductVariant {
	var group []ProductVariant
	for _, v := range c.Variants {
		if v.NormalizedKey == key {
			group = append(group, v)
		}
	}
	return group
}

// PriceQuote narx hisobining natijasi
type PriceQuote struct {
	Bracket      PriceBracket `json:"bracket"`
	PricePerUnit float64      `json:"price_per_unit"`
	TotalPrice   float64      `json:"total_price"`
}

// RankedEntry reyting pozitsiyasi. Har doim yangi hisoblanadi, hech
// qachon keshlashmaydi - Catalog chaqiruvlar orasida almashgan bo'lishi mumkin.
type RankedEntry struct {
	Variant ProductVariant `json:"variant"`
	Rank    int            `json:"rank"`
	Value   float64        `json:"value"`
}

// VariantShare bitta aromat ichidagi variantning mashhurlik ulushi
type VariantShare struct {
	Factory      string      `json:"factory"`
	Quality      QualityTier `json:"quality"`
	SharePercent float64     `json:"share_percent"`
	IsTopVariant bool        `json:"is_top_variant"`
}

// NoteInfo tashqi nota-lookup xizmatining javobi
type NoteInfo struct {
	TopNotes  string `json:"top_notes,omitempty"`
	MidNotes  string `json:"mid_notes,omitempty"`
	BaseNotes string `json:"base_notes,omitempty"`
	Country   string `json:"country,omitempty"`
	Link      string `json:"link,omitempty"`
}
