package parser

import "testing"

func validationHeader() []string {
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

func TestValidateCleanHeader(t *testing.T) {
	mismatches, err := DefaultColumnMapping().Validate(validationHeader())
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if len(mismatches) != 0 {
		t.Errorf("unexpected mismatches: %v", mismatches)
	}
}

// Ikkinchi darajali ustun yorlig'i mos kelmasa - faqat ogohlantirish
func TestValidateSecondaryMismatchIsWarning(t *testing.T) {
	header := validationHeader()
	header[15] = "Country"

	mismatches, err := DefaultColumnMapping().Validate(header)
	if err != nil {
		t.Fatalf("secondary mismatch must not be fatal: %v", err)
	}
	if len(mismatches) != 1 {
		t.Errorf("mismatches = %v, want one entry", mismatches)
	}
}

func TestValidateBrandMismatchIsFatal(t *testing.T) {
	header := validationHeader()
	header[5] = "Цена"

	if _, err := DefaultColumnMapping().Validate(header); err == nil {
		t.Fatal("brand header mismatch must be fatal")
	}
}

func TestValidateShortHeaderIsFatal(t *testing.T) {
	if _, err := DefaultColumnMapping().Validate(make([]string, 3)); err == nil {
		t.Fatal("header without brand/aroma columns must be fatal")
	}
}

func TestApplyOverrides(t *testing.T) {
	m := DefaultColumnMapping().ApplyOverrides(map[string]int{
		"brand":          1,
		"hyperlink":      3,
		"popularity_all": 30,
	})
	if m.Brand != 1 {
		t.Errorf("Brand = %d, want 1", m.Brand)
	}
	if m.Hyperlink != 3 {
		t.Errorf("Hyperlink = %d, want 3", m.Hyperlink)
	}
	if m.PopularityAll != 30 {
		t.Errorf("PopularityAll = %d, want 30", m.PopularityAll)
	}
	// Boshqa ustunlar o'zgarmaydi
	if m.Aroma != 6 {
		t.Errorf("Aroma = %d, want 6", m.Aroma)
	}
}

// Structured hyperlinklar B ustunida turadi, aromat ustunida emas
func TestDefaultHyperlinkColumn(t *testing.T) {
	if got := DefaultColumnMapping().Hyperlink; got != 1 {
		t.Errorf("Hyperlink = %d, want 1", got)
	}
}
