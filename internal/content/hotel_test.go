package content

import (
	"strings"
	"testing"

	"pansiyon_cms/internal/domain"
)

func TestNormalizeHotelFact_LegacyStringShape(t *testing.T) {
	f := NormalizeHotelFact("  Free breakfast ")
	if f.Text != "Free breakfast" || f.Icon != DefaultIcon {
		t.Fatalf("legacy fact: %+v", f)
	}

	f = NormalizeHotelFact(map[string]any{"text": "Sea view", "icon": "fa fa-water"})
	if f.Text != "Sea view" || f.Icon != "fa fa-water" {
		t.Fatalf("current fact: %+v", f)
	}

	f = NormalizeHotelFact(42.0)
	if f.Text != "" {
		t.Fatalf("unknown shape must be empty: %+v", f)
	}
}

func TestNormalizeHotelGallery_DropsBadURLs(t *testing.T) {
	got := NormalizeHotelLocaleContent(domain.LocaleEN, map[string]any{
		"name":      "Pansiyon Lavanta",
		"heroTitle": "Hero",
		"gallery": []any{
			map[string]any{"url": "undefined", "category": "rooms"},
			map[string]any{"url": "null"},
			map[string]any{"url": ""},
			map[string]any{"url": "/images/hotels/terrace.jpg", "category": "facilities"},
		},
	}, nil)

	if len(got.Gallery) != 1 {
		t.Fatalf("bad URLs must be dropped: %+v", got.Gallery)
	}
	if got.Gallery[0].Category != domain.GalleryCategoryFacilities {
		t.Fatalf("category: %q", got.Gallery[0].Category)
	}
	if got.Gallery[0].ID == "" {
		t.Fatalf("missing id must be generated")
	}
}

func TestNormalizeHotelGallery_SortOrderStable(t *testing.T) {
	got := NormalizeHotelLocaleContent(domain.LocaleEN, map[string]any{
		"gallery": []any{
			map[string]any{"id": "c", "url": "/c.jpg", "sortOrder": float64(3)},
			map[string]any{"id": "a", "url": "/a.jpg", "sortOrder": float64(1)},
			map[string]any{"id": "b", "url": "/b.jpg"}, // positional default 3, after a
			map[string]any{"id": "d", "url": "/d.jpg", "sortOrder": float64(2)},
		},
	}, nil)

	order := make([]string, len(got.Gallery))
	for i, g := range got.Gallery {
		order[i] = g.ID
	}
	want := []string{"a", "d", "c", "b"}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("sort order: got %v want %v", order, want)
		}
	}
}

func TestNormalizeHotelGallery_UnknownCategoryBecomesOther(t *testing.T) {
	got := NormalizeHotelLocaleContent(domain.LocaleEN, map[string]any{
		"gallery": []any{
			map[string]any{"url": "/x.jpg", "category": "penthouse"},
		},
	}, nil)
	if got.Gallery[0].Category != domain.GalleryCategoryOther {
		t.Fatalf("category: %q", got.Gallery[0].Category)
	}
}

func TestNormalizeGalleryMeta_LegacyUpgrade(t *testing.T) {
	meta := NormalizeGalleryMeta(map[string]any{
		"section":  "Kitchen",
		"features": []any{"Oven", "Dishwasher"},
	})
	if len(meta.Sections) != 1 {
		t.Fatalf("legacy shape must upgrade: %+v", meta)
	}
	if meta.Sections[0].Title != "Kitchen" || len(meta.Sections[0].Features) != 2 {
		t.Fatalf("upgrade lost data: %+v", meta.Sections[0])
	}

	// Current shape wins over leftover legacy keys.
	meta = NormalizeGalleryMeta(map[string]any{
		"section": "Old",
		"sections": []any{
			map[string]any{"title": "Bathroom", "features": []any{"Rain shower"}},
		},
	})
	if len(meta.Sections) != 1 || meta.Sections[0].Title != "Bathroom" {
		t.Fatalf("sections must win: %+v", meta)
	}
}

func TestNormalizeGalleryMetaMap_DropsEmptyEntries(t *testing.T) {
	out := NormalizeGalleryMetaMap(map[string]any{
		"img-1": map[string]any{"sections": []any{map[string]any{"title": "Balcony"}}},
		"img-2": map[string]any{},
		"  ":    map[string]any{"section": "X"},
	})
	if len(out) != 1 {
		t.Fatalf("expected one surviving entry: %+v", out)
	}
	if _, ok := out["img-1"]; !ok {
		t.Fatalf("img-1 missing: %+v", out)
	}
}

func TestValidateHotelLocaleContent(t *testing.T) {
	c := DefaultHotelLocaleContent(domain.LocaleEN)
	c.Name = "Pansiyon Lavanta"
	c.HeroTitle = "Hero"
	if msg := ValidateHotelLocaleContent(c); msg != "" {
		t.Fatalf("valid content rejected: %q", msg)
	}

	c.Name = ""
	if msg := ValidateHotelLocaleContent(c); msg != "Hotel name is required." {
		t.Fatalf("got %q", msg)
	}

	c.Name = "Back"
	c.Gallery = []domain.HotelGalleryImage{{ID: "x", URL: "javascript:alert(1)"}}
	msg := ValidateHotelLocaleContent(c)
	if !strings.Contains(msg, "Gallery image 1") {
		t.Fatalf("got %q", msg)
	}
}
