package content

import (
	"reflect"
	"strings"
	"testing"

	"pansiyon_cms/internal/domain"
)

func TestNormalizeHomeContent_NilInputYieldsFallback(t *testing.T) {
	fb := DefaultHomeContent(domain.LocaleEN)
	got := NormalizeHomeContent(nil, fb)
	if !reflect.DeepEqual(got, fb) {
		t.Fatalf("nil input must reproduce the fallback\n got: %+v\nwant: %+v", got, fb)
	}
}

func TestNormalizeHomeContent_Idempotent(t *testing.T) {
	fb := DefaultHomeContent(domain.LocaleEN)
	raw := map[string]any{
		"hero": map[string]any{
			"titleMain": "  Pansiyon Lavanta  ",
			"slides":    []any{map[string]any{"image": "/images/hero/a.jpg"}},
		},
		"offers": map[string]any{
			"cards": []any{map[string]any{"title": "Spring", "text": "Save", "image": "/images/o.jpg"}},
		},
	}
	once := NormalizeHomeContent(raw, fb)
	twice := NormalizeHomeContent(nil, once)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("normalization must be idempotent\n once: %+v\ntwice: %+v", once, twice)
	}
}

func TestNormalizeSections_UnknownKeysDropped(t *testing.T) {
	fb := DefaultHomeContent(domain.LocaleEN)
	got := NormalizeHomeContent(map[string]any{
		"sections": map[string]any{
			"hero":    map[string]any{"enabled": false, "order": 3},
			"sidebar": map[string]any{"enabled": true, "order": 0},
		},
	}, fb)

	if len(got.Sections) != len(domain.HomeSectionKeys) {
		t.Fatalf("sections must stay the fixed key set: %v", got.Sections)
	}
	if _, ok := got.Sections["sidebar"]; ok {
		t.Fatalf("unknown section key must be dropped")
	}
	if got.Sections["hero"].Enabled || got.Sections["hero"].Order != 3 {
		t.Fatalf("hero override lost: %+v", got.Sections["hero"])
	}
	// Untouched keys come from the fallback.
	if got.Sections["faq"] != fb.Sections["faq"] {
		t.Fatalf("faq should come from fallback: %+v", got.Sections["faq"])
	}
}

func TestNormalizeHero_SlideRules(t *testing.T) {
	fb := DefaultHomeContent(domain.LocaleEN)

	slides := make([]any, 0, maxHeroSlides+3)
	slides = append(slides,
		map[string]any{"image": "", "position": "top"},
		map[string]any{"image": "/images/hero/1.jpg"},
	)
	for i := 0; i < maxHeroSlides+1; i++ {
		slides = append(slides, map[string]any{"image": "/images/hero/more.jpg", "position": "left bottom"})
	}

	got := NormalizeHomeContent(map[string]any{
		"hero": map[string]any{"slides": slides},
	}, fb)

	if len(got.Hero.Slides) != maxHeroSlides {
		t.Fatalf("slides must cap at %d, got %d", maxHeroSlides, len(got.Hero.Slides))
	}
	if got.Hero.Slides[0].Image != "/images/hero/1.jpg" {
		t.Fatalf("blank-image slide must be dropped: %+v", got.Hero.Slides[0])
	}
	if got.Hero.Slides[0].Position != "center" {
		t.Fatalf("missing position defaults to center: %q", got.Hero.Slides[0].Position)
	}

	// All slides filtered out falls back.
	got = NormalizeHomeContent(map[string]any{
		"hero": map[string]any{"slides": []any{map[string]any{"image": ""}}},
	}, fb)
	if !reflect.DeepEqual(got.Hero.Slides, fb.Hero.Slides) {
		t.Fatalf("empty result must use fallback slides: %+v", got.Hero.Slides)
	}
}

func TestNormalizeRooms_BlankIconGetsDefault(t *testing.T) {
	got := NormalizeHomeContent(map[string]any{
		"rooms": map[string]any{
			"cards": []any{
				map[string]any{"title": "Suite", "image": "/i.jpg", "description": "Nice"},
			},
		},
	}, DefaultHomeContent(domain.LocaleEN))

	if got.Rooms.Cards[0].Icon != DefaultIcon {
		t.Fatalf("blank icon must default, got %q", got.Rooms.Cards[0].Icon)
	}
}

func TestNormalizeFacilities_StatsFilterCapFallback(t *testing.T) {
	fb := DefaultHomeContent(domain.LocaleEN)

	// Four surviving stats are capped to the three render slots, keeping
	// the admin's first three.
	got := NormalizeHomeContent(map[string]any{
		"facilities": map[string]any{
			"stats": []any{
				map[string]any{"label": "Guests", "suffix": "+"},
				map[string]any{"label": "Rooms"},
				map[string]any{"label": "Years"},
				map[string]any{"label": "Extra"},
			},
		},
	}, fb)
	if len(got.Facilities.Stats) != 3 || got.Facilities.Stats[0].Label != "Guests" || got.Facilities.Stats[2].Label != "Years" {
		t.Fatalf("oversized stats must slice to 3: %+v", got.Facilities.Stats)
	}

	// Two surviving stats stay two; the validator reports the count.
	got = NormalizeHomeContent(map[string]any{
		"facilities": map[string]any{
			"stats": []any{
				map[string]any{"label": "Guests"},
				map[string]any{"label": "Rooms"},
				map[string]any{"label": "", "suffix": ""},
			},
		},
	}, fb)
	if len(got.Facilities.Stats) != 2 {
		t.Fatalf("short stats list must survive for validation: %+v", got.Facilities.Stats)
	}

	// Nothing survives filtering; keep the fallback trio.
	got = NormalizeHomeContent(map[string]any{
		"facilities": map[string]any{
			"stats": []any{map[string]any{"label": "", "suffix": ""}},
		},
	}, fb)
	if !reflect.DeepEqual(got.Facilities.Stats, fb.Facilities.Stats) {
		t.Fatalf("empty stats must fall back: %+v", got.Facilities.Stats)
	}
}

func TestValidateHomeContent_FacilitiesStatCount(t *testing.T) {
	doc := DefaultHomeContent(domain.LocaleEN)
	doc.Facilities.Stats = doc.Facilities.Stats[:2]
	if msg := ValidateHomeContent(doc); msg != "Facilities stats must have exactly 3 entries." {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestNormalizeFacilities_CounterZeroFallsThrough(t *testing.T) {
	fb := DefaultHomeContent(domain.LocaleEN)
	got := NormalizeHomeContent(map[string]any{
		"facilities": map[string]any{"guestCount": float64(0)},
	}, fb)
	if got.Facilities.GuestCount != fb.Facilities.GuestCount {
		t.Fatalf("zero counter must fall through to fallback, got %v", got.Facilities.GuestCount)
	}
}

func TestNormalizeGallery_CategoryCoercionAndDedup(t *testing.T) {
	fb := DefaultHomeContent(domain.LocaleEN)
	got := NormalizeHomeContent(map[string]any{
		"gallery": map[string]any{
			"categories": []any{
				map[string]any{"key": "Rooms & Suites", "label": "Rooms"},
				map[string]any{"key": "", "label": "Garden View"},
				map[string]any{"key": "rooms--suites", "label": "Duplicate"},
			},
			"items": []any{
				map[string]any{"image": "/g/1.jpg", "category": "rooms--suites"},
				map[string]any{"image": "/g/2.jpg", "category": "deleted-category"},
				map[string]any{"image": ""},
			},
		},
	}, fb)

	if len(got.Gallery.Categories) != 2 {
		t.Fatalf("expected dedup to 2 categories: %+v", got.Gallery.Categories)
	}
	if got.Gallery.Categories[0].Key != "rooms--suites" {
		t.Fatalf("key sanitization: %q", got.Gallery.Categories[0].Key)
	}
	if got.Gallery.Categories[1].Key != "garden-view" {
		t.Fatalf("key derived from label: %q", got.Gallery.Categories[1].Key)
	}

	if len(got.Gallery.Items) != 2 {
		t.Fatalf("blank image must be dropped: %+v", got.Gallery.Items)
	}
	// Orphaned items land in the first category.
	if got.Gallery.Items[1].Category != "rooms--suites" {
		t.Fatalf("orphan item must move to first category, got %q", got.Gallery.Items[1].Category)
	}
}

func TestNormalizeGallery_PerCategoryCap(t *testing.T) {
	items := make([]any, 0, maxGalleryPerCat+2)
	for i := 0; i < maxGalleryPerCat+2; i++ {
		items = append(items, map[string]any{"image": "/g/x.jpg", "category": "rooms"})
	}
	got := NormalizeHomeContent(map[string]any{
		"gallery": map[string]any{
			"categories": []any{map[string]any{"key": "rooms", "label": "Rooms"}},
			"items":      items,
		},
	}, DefaultHomeContent(domain.LocaleEN))

	if len(got.Gallery.Items) != maxGalleryPerCat {
		t.Fatalf("per-category cap is %d, got %d", maxGalleryPerCat, len(got.Gallery.Items))
	}
}

func TestNormalizeOffers_IDAssignment(t *testing.T) {
	got := NormalizeHomeContent(map[string]any{
		"offers": map[string]any{
			"cards": []any{
				map[string]any{"title": "Spring", "text": "Save", "image": "/o/1.jpg"},
				map[string]any{"id": "winter-special", "title": "Winter", "text": "Warm", "image": "/o/2.jpg"},
			},
		},
	}, DefaultHomeContent(domain.LocaleEN))

	if got.Offers.Cards[0].ID != "offer-1" {
		t.Fatalf("missing id gets positional default, got %q", got.Offers.Cards[0].ID)
	}
	if got.Offers.Cards[1].ID != "winter-special" {
		t.Fatalf("explicit id must be kept, got %q", got.Offers.Cards[1].ID)
	}
}

func TestValidateHomeContent_DefaultsAreValid(t *testing.T) {
	for _, l := range domain.Locales() {
		if msg := ValidateHomeContent(DefaultHomeContent(l)); msg != "" {
			t.Fatalf("default %s invalid: %s", l, msg)
		}
	}
}

func TestValidateHomeContent_FirstErrorWins(t *testing.T) {
	c := DefaultHomeContent(domain.LocaleEN)
	c.Hero.TitleMain = ""
	c.Rooms.Title = ""
	c.FAQ.Title = ""

	if msg := ValidateHomeContent(c); msg != "Hero title is required." {
		t.Fatalf("hero must be reported first, got %q", msg)
	}

	c.Hero.TitleMain = "Back"
	if msg := ValidateHomeContent(c); msg != "Rooms title is required." {
		t.Fatalf("rooms next, got %q", msg)
	}
}

func TestValidateHomeContent_DuplicateOfferID(t *testing.T) {
	c := DefaultHomeContent(domain.LocaleEN)
	c.Offers.Cards = []domain.OfferCard{
		{ID: "offer-1", Title: "A", Text: "a", Image: "/a.jpg"},
		{ID: "offer-1", Title: "B", Text: "b", Image: "/b.jpg"},
	}
	msg := ValidateHomeContent(c)
	if !strings.Contains(msg, `"offer-1" is duplicated`) {
		t.Fatalf("expected duplicate id message, got %q", msg)
	}
}

func TestValidateHomeContent_DuplicateGalleryKey(t *testing.T) {
	c := DefaultHomeContent(domain.LocaleEN)
	c.Gallery.Categories = []domain.GalleryCategory{
		{Key: "rooms", Label: "Rooms"},
		{Key: "rooms", Label: "Also Rooms"},
	}
	c.Gallery.Items = []domain.GalleryItem{{Image: "/g.jpg", Category: "rooms"}}
	msg := ValidateHomeContent(c)
	if !strings.Contains(msg, `"rooms" is duplicated`) {
		t.Fatalf("expected duplicate key message, got %q", msg)
	}
}

func TestValidateHomeContent_VideoHostAllowList(t *testing.T) {
	c := DefaultHomeContent(domain.LocaleEN)
	c.VideoCTA.VideoURL = "https://example.com/video.mp4"
	if msg := ValidateHomeContent(c); msg != "Video URL must be a valid YouTube or Vimeo link." {
		t.Fatalf("got %q", msg)
	}

	c.VideoCTA.VideoURL = "https://vimeo.com/12345"
	if msg := ValidateHomeContent(c); msg != "" {
		t.Fatalf("vimeo must pass, got %q", msg)
	}
}

func TestValidateHomeContent_LinkRules(t *testing.T) {
	c := DefaultHomeContent(domain.LocaleEN)
	c.Hero.PrimaryCTA.Href = "javascript:alert(1)"
	msg := ValidateHomeContent(c)
	if !strings.Contains(msg, "Hero primary button link") {
		t.Fatalf("got %q", msg)
	}
}
