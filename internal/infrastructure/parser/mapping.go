package parser

import (
	"fmt"
	"strings"
)

// ColumnMapping ustun pozitsiyasi -> semantik maydon. Qattiq kodlangan
// offset emas: konfiguratsiya, yuklashda sarlavha yorliqlariga qarshi
// tekshiriladi. Barcha indekslar 0-based; -1 - ustun mavjud emas.
type ColumnMapping struct {
	Gender  int
	Brand   int
	Aroma   int
	Factory int
	Quality int

	// Hyperlink - structured hyperlink biriktirilgan ustun (jadvalda
	// bu B ustuni, Aroma ustunidan alohida)
	Hyperlink int

	// Narx ustunlari diapazon tartibida: 30 GR / 50 GR / 500 GR / 1 KG
	Price30  int
	Price50  int
	Price500 int
	Price1KG int

	Country   int
	NotesTop  int
	NotesMid  int
	NotesBase int
	Link      int

	PopularityLast int
	PopularityAll  int
}

// DefaultColumnMapping hozirgi jadval revisiyasiga mos defaultlar
func DefaultColumnMapping() ColumnMapping {
	return ColumnMapping{
		Hyperlink:      1,
		Brand:          5,
		Aroma:          6,
		Gender:         7,
		Factory:        8,
		Quality:        9,
		Price30:        11,
		Price50:        12,
		Price500:       13,
		Price1KG:       14,
		Country:        15,
		NotesTop:       16,
		NotesMid:       17,
		NotesBase:      18,
		Link:           19,
		PopularityLast: 23,
		PopularityAll:  24,
	}
}

// expectedHeaders validatsiya uchun kutilgan ustun yorliqlari
var expectedHeaders = map[string]string{
	"gender":          "Пол",
	"brand":           "Бренд",
	"aroma":           "Аромат",
	"factory":         "Фабрика",
	"quality":         "Качество",
	"price_30":        "30 GR",
	"price_50":        "50 GR",
	"price_500":       "500 GR",
	"price_1kg":       "1 KG",
	"country":         "Страна",
	"popularity_last": "TOP LAST",
	"popularity_all":  "TOP ALL",
}

// ApplyOverrides env orqali kelgan ustun almashtirishlarini qo'llash
func (m ColumnMapping) ApplyOverrides(overrides map[string]int) ColumnMapping {
	for field, col := range overrides {
		switch field {
		case "gender":
			m.Gender = col
		case "brand":
			m.Brand = col
		case "aroma":
			m.Aroma = col
		case "hyperlink":
			m.Hyperlink = col
		case "factory":
			m.Factory = col
		case "quality":
			m.Quality = col
		case "price_30":
			m.Price30 = col
		case "price_50":
			m.Price50 = col
		case "price_500":
			m.Price500 = col
		case "price_1kg":
			m.Price1KG = col
		case "country":
			m.Country = col
		case "notes_top":
			m.NotesTop = col
		case "notes_mid":
			m.NotesMid = col
		case "notes_base":
			m.NotesBase = col
		case "link":
			m.Link = col
		case "popularity_last":
			m.PopularityLast = col
		case "popularity_all":
			m.PopularityAll = col
		}
	}
	return m
}

func (m ColumnMapping) fieldColumn(field string) int {
	switch field {
	case "gender":
		return m.Gender
	case "brand":
		return m.Brand
	case "aroma":
		return m.Aroma
	case "factory":
		return m.Factory
	case "quality":
		return m.Quality
	case "price_30":
		return m.Price30
	case "price_50":
		return m.Price50
	case "price_500":
		return m.Price500
	case "price_1kg":
		return m.Price1KG
	case "country":
		return m.Country
	case "popularity_last":
		return m.PopularityLast
	case "popularity_all":
		return m.PopularityAll
	default:
		return -1
	}
}

// Validate mappingni sarlavha yorliqlariga qarshi tekshirish.
// Mos kelmagan yorliqlar ro'yxati qaytadi (log uchun); brand yoki aroma
// yorlig'i mos kelmasa error - bu holda heuristik davom etish xavfli.
func (m ColumnMapping) Validate(header []string) ([]string, error) {
	var mismatches []string
	for field, want := range expectedHeaders {
		col := m.fieldColumn(field)
		if col < 0 || col >= len(header) {
			mismatches = append(mismatches, fmt.Sprintf("%s: ustun %d sarlavhada yo'q", field, col))
			continue
		}
		got := strings.TrimSpace(header[col])
		if !strings.EqualFold(got, want) {
			mismatches = append(mismatches, fmt.Sprintf("%s: ustun %d yorlig'i %q, kutilgan %q", field, col, got, want))
		}
	}

	for _, field := range []string{"brand", "aroma"} {
		col := m.fieldColumn(field)
		if col < 0 || col >= len(header) {
			return mismatches, fmt.Errorf("%s ustuni (%d) sarlavhada topilmadi", field, col)
		}
		got := strings.TrimSpace(header[col])
		if !strings.EqualFold(got, expectedHeaders[field]) {
			return mismatches, fmt.Errorf("%s ustuni (%d) yorlig'i mos kelmadi: %q", field, col, got)
		}
	}

	return mismatches, nil
}
