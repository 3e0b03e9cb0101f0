package parser

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/yourusername/aroma-ai-bot/internal/domain/entity"
	"github.com/yourusername/aroma-ai-bot/internal/domain/repository"
	"github.com/yourusername/aroma-ai-bot/internal/infrastructure/sheets"
)

// IssueKind degradatsiya turining typed belgisi
type IssueKind string

const (
	// IssueFieldUnparseable cell o'qilmadi - maydon null bo'ldi, qator saqlandi
	IssueFieldUnparseable IssueKind = "field_unparseable"

	// IssueEnrichmentUnavailable nota-lookup ishlamadi - bo'sh maydonlar bo'sh qoldi
	IssueEnrichmentUnavailable IssueKind = "enrichment_unavailable"
)

// FieldIssue bitta maydon darajasidagi degradatsiya
type FieldIssue struct {
	Column string
	Kind   IssueKind
	Raw    string
}

// Result bitta qatorni normalizatsiya qilish natijasi.
// Discarded - brand yoki aroma bo'sh (qator katalogga kirmaydi).
// Issues - qator saqlangan, lekin ayrim maydonlar degradatsiya qilingan.
type Result struct {
	Variant   *entity.ProductVariant
	Discarded bool
	Issues    []FieldIssue
}

// RowNormalizer raw qatorni typed ProductVariant ga aylantiradi.
// Hech qachon katalog holatini o'zgartirmaydi va hech qachon panic qilmaydi:
// yomon cellar typed issue bilan null ga aylanadi.
type RowNormalizer struct {
	mapping       ColumnMapping
	notes         repository.NoteRepository
	enrichTimeout time.Duration
}

// NewRowNormalizer yangi normalizer yaratish. notes nil bo'lishi mumkin -
// bu holda enrichment bosqichi o'tkazib yuboriladi.
func NewRowNormalizer(mapping ColumnMapping, notes repository.NoteRepository, enrichTimeout time.Duration) *RowNormalizer {
	return &RowNormalizer{
		mapping:       mapping,
		notes:         notes,
		enrichTimeout: enrichTimeout,
	}
}

// Normalize bitta qatorni qayta ishlash
func (n *RowNormalizer) Normalize(ctx context.Context, row sheets.RawRow) Result {
	brand := cleanCell(cellAt(row.Cells, n.mapping.Brand))
	aroma := cleanCell(cellAt(row.Cells, n.mapping.Aroma))
	if brand == "" || aroma == "" {
		return Result{Discarded: true}
	}

	variant := &entity.ProductVariant{
		Brand:         brand,
		AromaName:     aroma,
		NormalizedKey: entity.NormalizeAromaKey(aroma),
		Gender:        cleanCell(cellAt(row.Cells, n.mapping.Gender)),
		Factory:       cleanCell(cellAt(row.Cells, n.mapping.Factory)),
		Country:       cleanCell(cellAt(row.Cells, n.mapping.Country)),
		RawRowIndex:   row.Index,
	}
	variant.Notes = entity.Notes{
		Top:  cleanCell(cellAt(row.Cells, n.mapping.NotesTop)),
		Mid:  cleanCell(cellAt(row.Cells, n.mapping.NotesMid)),
		Base: cleanCell(cellAt(row.Cells, n.mapping.NotesBase)),
	}

	var issues []FieldIssue

	variant.Quality = parseQuality(cellAt(row.Cells, n.mapping.Quality))

	priceColumns := []struct {
		label string
		col   int
		slot  entity.PriceBracket
	}{
		{"30 GR", n.mapping.Price30, entity.Bracket0To49},
		{"50 GR", n.mapping.Price50, entity.Bracket50To499},
		{"500 GR", n.mapping.Price500, entity.Bracket500To999},
		{"1 KG", n.mapping.Price1KG, entity.Bracket1000Plus},
	}
	for _, pc := range priceColumns {
		raw := cellAt(row.Cells, pc.col)
		price, ok := parsePriceCell(raw)
		if !ok {
			issues = append(issues, FieldIssue{Column: pc.label, Kind: IssueFieldUnparseable, Raw: raw})
			continue
		}
		variant.PriceTiers[pc.slot] = price
	}

	variant.PopularityLast, issues = n.parsePopularityCell(row.Cells, n.mapping.PopularityLast, "TOP LAST", issues)
	variant.PopularityAll, issues = n.parsePopularityCell(row.Cells, n.mapping.PopularityAll, "TOP ALL", issues)

	variant.SourceLink = resolveLink(row.Hyperlink, cellAt(row.Cells, n.mapping.Link))

	issues = n.enrich(ctx, variant, issues)

	return Result{Variant: variant, Issues: issues}
}

// enrich bo'sh nota/davlat maydonlarini tashqi lookup bilan to'ldirish.
// Jadvaldagi qiymatlar har doim ustun: faqat hali ham bo'sh maydonlar
// to'ldiriladi. Lookup xatosi qatorni to'xtatmaydi.
func (n *RowNormalizer) enrich(ctx context.Context, v *entity.ProductVariant, issues []FieldIssue) []FieldIssue {
	if n.notes == nil {
		return issues
	}
	// Lookup to'ldiriladigan maydonlardan birortasi bo'sh bo'lsa kerak:
	// faqat top nota bor qator ham mid/base uchun boyitiladi
	needsLookup := v.Notes.Top == "" || v.Notes.Mid == "" || v.Notes.Base == "" ||
		v.Country == "" || v.SourceLink == ""
	if !needsLookup {
		return issues
	}

	lookupCtx := ctx
	if n.enrichTimeout > 0 {
		var cancel context.CancelFunc
		lookupCtx, cancel = context.WithTimeout(ctx, n.enrichTimeout)
		defer cancel()
	}

	info, err := n.notes.Lookup(lookupCtx, v.DisplayName())
	if err != nil || info == nil {
		return append(issues, FieldIssue{Column: "notes", Kind: IssueEnrichmentUnavailable})
	}

	if v.Notes.Top == "" {
		v.Notes.Top = info.TopNotes
	}
	if v.Notes.Mid == "" {
		v.Notes.Mid = info.MidNotes
	}
	if v.Notes.Base == "" {
		v.Notes.Base = info.BaseNotes
	}
	if v.Country == "" {
		v.Country = info.Country
	}
	if v.SourceLink == "" && isHTTPLink(info.Link) {
		v.SourceLink = strings.TrimSpace(info.Link)
	}
	return issues
}

func (n *RowNormalizer) parsePopularityCell(cells []string, col int, label string, issues []FieldIssue) (*float64, []FieldIssue) {
	raw := cellAt(cells, col)
	value, ok := parsePopularity(raw)
	if !ok {
		return nil, append(issues, FieldIssue{Column: label, Kind: IssueFieldUnparseable, Raw: raw})
	}
	return value, issues
}

func cellAt(cells []string, idx int) string {
	if idx < 0 || idx >= len(cells) {
		return ""
	}
	return cells[idx]
}

func cleanCell(raw string) string {
	raw = strings.TrimSpace(raw)
	if isNaNLike(raw) {
		return ""
	}
	return raw
}

func isNaNLike(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "nan", "none", "null", "-", "n/a":
		return true
	default:
		return false
	}
}

// parsePriceCell narx cellni o'qish. Valyuta belgilari va bo'shliqlar
// olib tashlanadi, "nan" ga o'xshash matn null. (nil, true) - narx yo'q,
// (nil, false) - matn bor lekin o'qilmadi.
func parsePriceCell(raw string) (*float64, bool) {
	if isNaNLike(raw) {
		return nil, true
	}

	clean := strings.NewReplacer("₽", "", "$", "", " ", "", " ", "").Replace(raw)
	clean = strings.TrimSpace(clean)
	if clean == "" {
		return nil, true
	}
	clean = strings.ReplaceAll(clean, ",", ".")

	value, err := strconv.ParseFloat(clean, 64)
	if err != nil || value < 0 {
		return nil, false
	}
	return &value, true
}

// parsePopularity mashhurlik cellni o'qish. Tarixiy revisiyalarda qiymat
// ba'zan 0-1 fraksiya, ba'zan 0-100 foiz bo'lgan; kanonik shkala foiz,
// shuning uchun <= 1.0 qiymatlar 100 ga ko'paytiriladi.
func parsePopularity(raw string) (*float64, bool) {
	if isNaNLike(raw) {
		return nil, true
	}

	clean := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(raw), "%"))
	clean = strings.ReplaceAll(clean, ",", ".")

	value, err := strconv.ParseFloat(clean, 64)
	if err != nil || value < 0 {
		return nil, false
	}
	if value <= 1.0 {
		value *= 100
	}
	return &value, true
}

// resolveLink havola ustuvorligi: (1) cellga biriktirilgan structured
// hyperlink, (2) oddiy matn havola ustuni, (3) yo'q. http bilan
// boshlanmagan qiymatlar yo'q deb hisoblanadi.
func resolveLink(hyperlink, plainCell string) string {
	if isHTTPLink(hyperlink) {
		return strings.TrimSpace(hyperlink)
	}
	if isHTTPLink(plainCell) {
		return strings.TrimSpace(plainCell)
	}
	return ""
}

func isHTTPLink(raw string) bool {
	raw = strings.TrimSpace(raw)
	return strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://")
}

// parseQuality sifat kodini daraja nomiga aylantirish. Raqamli kodlar:
// 6 -> TOP, 5 -> Q1, 4 -> Q2. Matnli TOP/Q1/Q2 ham qabul qilinadi.
// Notanish kodlar rad etilmaydi - verbatim saqlanadi.
func parseQuality(raw string) entity.QualityTier {
	clean := strings.TrimSpace(raw)
	if isNaNLike(clean) {
		return ""
	}

	switch strings.ToUpper(clean) {
	case "TOP":
		return entity.QualityTop
	case "Q1":
		return entity.QualityQ1
	case "Q2":
		return entity.QualityQ2
	}

	// Excel raqamlarni "6" yoki "6.0" ko'rinishida beradi
	if num, err := strconv.ParseFloat(strings.ReplaceAll(clean, ",", "."), 64); err == nil {
		switch int(num) {
		case 6:
			return entity.QualityTop
		case 5:
			return entity.QualityQ1
		case 4:
			return entity.QualityQ2
		}
	}

	return entity.QualityTier(clean)
}
