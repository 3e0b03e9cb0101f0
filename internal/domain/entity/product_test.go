package entity

import "testing"

func fp(v float64) *float64 { return &v }

func TestNormalizeAromaKey(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Tobacco Vanille", "tobaccovanille"},
		{"  TOBACCO   VANILLE  ", "tobaccovanille"},
		{"Ля Вуаль-Нуар", "лявуальнуар"},
		{"D'or", "dor"},
		{"aqua di gio", "aquadigio"},
	}
	for _, c := range cases {
		if got := NormalizeAromaKey(c.in); got != c.want {
			t.Errorf("NormalizeAromaKey(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestBracketForVolume(t *testing.T) {
	cases := []struct {
		volume float64
		want   PriceBracket
	}{
		{1, Bracket0To49},
		{49, Bracket0To49},
		{50, Bracket50To499},
		{300, Bracket50To499},
		{499, Bracket50To499},
		{500, Bracket500To999},
		{999, Bracket500To999},
		{1000, Bracket1000Plus},
		{5000, Bracket1000Plus},
	}
	for _, c := range cases {
		if got := BracketForVolume(c.volume); got != c.want {
			t.Errorf("BracketForVolume(%v) = %v, want %v", c.volume, got, c.want)
		}
	}
}

func testCatalog() *Catalog {
	variants := []ProductVariant{
		{Brand: "Tom Ford", AromaName: "Tobacco Vanille", NormalizedKey: "tobaccovanille", Factory: "Seluz", RawRowIndex: 0},
		{Brand: "Ajmal", AromaName: "Amber Wood", NormalizedKey: "amberwood", Factory: "Givaudan", RawRowIndex: 1},
		{Brand: "Ajmal", AromaName: "Aristocrat", NormalizedKey: "aristocrat", Factory: "Seluz", RawRowIndex: 2},
		{Brand: "Tom Ford", AromaName: "Tobacco Vanille", NormalizedKey: "tobaccovanille", Factory: "Luzi", RawRowIndex: 3},
	}
	return NewCatalog("test", variants)
}

func TestSearchExactKeyFirst(t *testing.T) {
	catalog := testCatalog()

	got := catalog.Search("Tobacco Vanille", 0)
	if len(got) != 2 {
		t.Fatalf("exact search len = %d, want 2", len(got))
	}
	// Qator tartibi saqlanadi
	if got[0].RawRowIndex != 0 || got[1].RawRowIndex != 3 {
		t.Errorf("exact search order = [%d %d], want [0 3]", got[0].RawRowIndex, got[1].RawRowIndex)
	}
}

func TestSearchSubstringFallback(t *testing.T) {
	catalog := testCatalog()

	got := catalog.Search("ajmal", 0)
	if len(got) != 2 {
		t.Fatalf("substring search len = %d, want 2", len(got))
	}
	if got[0].RawRowIndex != 1 || got[1].RawRowIndex != 2 {
		t.Errorf("substring search order = [%d %d], want [1 2]", got[0].RawRowIndex, got[1].RawRowIndex)
	}
}

func TestSearchLimit(t *testing.T) {
	catalog := testCatalog()

	got := catalog.Search("ajmal", 1)
	if len(got) != 1 {
		t.Fatalf("limited search len = %d, want 1", len(got))
	}
	if got[0].RawRowIndex != 1 {
		t.Errorf("limited search row = %d, want 1", got[0].RawRowIndex)
	}
}

// Brend + aromat birga yozilganda ham substring fallback topishi kerak
func TestSearchBrandAndAromaTogether(t *testing.T) {
	catalog := testCatalog()

	got := catalog.Search("Ajmal Amber Wood", 0)
	if len(got) != 1 {
		t.Fatalf("display-name search len = %d, want 1", len(got))
	}
	if got[0].RawRowIndex != 1 {
		t.Errorf("display-name search row = %d, want 1", got[0].RawRowIndex)
	}
}

func TestSearchNothingFound(t *testing.T) {
	catalog := testCatalog()

	if got := catalog.Search("chanel", 0); len(got) != 0 {
		t.Errorf("search for absent aroma returned %d results", len(got))
	}
}

func TestGroupByKey(t *testing.T) {
	catalog := testCatalog()

	group := catalog.GroupByKey("tobaccovanille")
	if len(group) != 2 {
		t.Fatalf("group len = %d, want 2", len(group))
	}
	if group[0].Factory != "Seluz" || group[1].Factory != "Luzi" {
		t.Errorf("group order = [%s %s], want [Seluz Luzi]", group[0].Factory, group[1].Factory)
	}
}
