package content

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"pansiyon_cms/internal/domain"
)

// NormalizeHotelLocaleContent shapes one locale's hotel content. A nil
// fallback uses the locale's compiled-in default.
func NormalizeHotelLocaleContent(locale domain.ContentLocale, raw map[string]any, fallback *domain.HotelLocaleContent) domain.HotelLocaleContent {
	var fb domain.HotelLocaleContent
	if fallback != nil {
		fb = *fallback
	} else {
		fb = DefaultHotelLocaleContent(locale)
	}

	out := domain.HotelLocaleContent{
		Name:             textField(raw, "name", fb.Name),
		Location:         textField(raw, "location", fb.Location),
		ShortDescription: textField(raw, "shortDescription", fb.ShortDescription),
		HeroTitle:        textField(raw, "heroTitle", fb.HeroTitle),
		HeroSubtitle:     textField(raw, "heroSubtitle", fb.HeroSubtitle),
		Description:      stringList(raw, "description", fb.Description, 40),
		AmenitiesTitle:   textField(raw, "amenitiesTitle", fb.AmenitiesTitle),
		Highlights:       innerStrings(raw, "highlights", fb.Highlights, 40),
		GalleryMeta:      NormalizeGalleryMetaMap(child(raw, "galleryMeta")),
	}

	if items, ok := listField(raw, "facts"); ok {
		facts := make([]domain.HotelFact, 0, len(items))
		for _, it := range items {
			f := NormalizeHotelFact(it)
			if f.Text == "" {
				continue
			}
			facts = append(facts, f)
		}
		out.Facts = facts
	} else {
		out.Facts = copyList(fb.Facts)
	}

	if items, ok := listField(raw, "gallery"); ok {
		out.Gallery = normalizeHotelGallery(items)
	} else {
		out.Gallery = copyList(fb.Gallery)
	}

	if len(out.GalleryMeta) == 0 && fb.GalleryMeta != nil {
		out.GalleryMeta = fb.GalleryMeta
	}
	return out
}

// NormalizeHotelFact accepts either the current {text, icon} shape or a
// legacy bare string.
func NormalizeHotelFact(raw any) domain.HotelFact {
	switch t := raw.(type) {
	case string:
		return domain.HotelFact{Text: strings.TrimSpace(t), Icon: DefaultIcon}
	case map[string]any:
		f := domain.HotelFact{
			Text: textField(t, "text", ""),
			Icon: textField(t, "icon", ""),
		}
		if f.Icon == "" {
			f.Icon = DefaultIcon
		}
		return f
	}
	return domain.HotelFact{}
}

func parseGalleryCategory(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case domain.GalleryCategoryRooms:
		return domain.GalleryCategoryRooms
	case domain.GalleryCategoryDining:
		return domain.GalleryCategoryDining
	case domain.GalleryCategoryFacilities:
		return domain.GalleryCategoryFacilities
	}
	return domain.GalleryCategoryOther
}

// droppableURL reports URLs that must never reach storage: blanks, plus the
// stringified "undefined"/"null" a past upload bug leaked into documents.
func droppableURL(s string) bool {
	switch s {
	case "", "undefined", "null":
		return true
	}
	return false
}

func normalizeHotelGallery(items []any) []domain.HotelGalleryImage {
	out := make([]domain.HotelGalleryImage, 0, len(items))
	for i, it := range items {
		im := asMap(it)
		g := domain.HotelGalleryImage{
			ID:           textField(im, "id", ""),
			URL:          textField(im, "url", ""),
			ThumbnailURL: textField(im, "thumbnailUrl", ""),
			Category:     parseGalleryCategory(textField(im, "category", "")),
			Alt:          textField(im, "alt", ""),
			SortOrder:    intField(im, "sortOrder", i+1),
		}
		if droppableURL(g.URL) {
			continue
		}
		if g.ID == "" {
			g.ID = uuid.NewString()
		}
		out = append(out, g)
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].SortOrder < out[b].SortOrder })
	return out
}

// NormalizeGalleryMeta accepts either the current {sections: [...]} shape or
// the legacy single-section {section, features} shape and upgrades the
// latter. The upgrade happens once: the normalized document only ever
// carries sections.
func NormalizeGalleryMeta(raw map[string]any) domain.GalleryMeta {
	var meta domain.GalleryMeta
	if items, ok := listField(raw, "sections"); ok {
		for _, it := range items {
			im := asMap(it)
			s := domain.GalleryMetaSection{
				Title:    textField(im, "title", ""),
				Features: innerStrings(im, "features", nil, 20),
			}
			if s.Title == "" && len(s.Features) == 0 {
				continue
			}
			meta.Sections = append(meta.Sections, s)
		}
	}
	if len(meta.Sections) == 0 {
		legacyTitle := textField(raw, "section", "")
		legacyFeatures := innerStrings(raw, "features", nil, 20)
		if legacyTitle != "" || len(legacyFeatures) > 0 {
			meta.Sections = []domain.GalleryMetaSection{{Title: legacyTitle, Features: legacyFeatures}}
		}
	}
	return meta
}

func NormalizeGalleryMetaMap(raw map[string]any) map[string]domain.GalleryMeta {
	if len(raw) == 0 {
		return map[string]domain.GalleryMeta{}
	}
	out := make(map[string]domain.GalleryMeta, len(raw))
	for id, v := range raw {
		if strings.TrimSpace(id) == "" {
			continue
		}
		meta := NormalizeGalleryMeta(asMap(v))
		if len(meta.Sections) == 0 {
			continue
		}
		out[id] = meta
	}
	return out
}

func ValidateHotelLocaleContent(c domain.HotelLocaleContent) string {
	return firstError(
		requireText(c.Name, "Hotel name"),
		requireText(c.HeroTitle, "Hotel hero title"),
		func() string {
			for i, g := range c.Gallery {
				if !IsValidLink(g.URL) {
					return fmt.Sprintf("Gallery image %d: URL must start with / or http(s)://", i+1)
				}
			}
			return ""
		},
	)
}
