package content

import (
	"fmt"

	"pansiyon_cms/internal/domain"
)

const (
	maxLayoutOptions    = 8
	maxOptionHighlights = 10
	maxAmenityCards     = 24
	maxCardHighlights   = 10
	maxOverviewItems    = 40
)

func NormalizeAmenitiesContent(raw map[string]any, fb domain.AmenitiesContent) domain.AmenitiesContent {
	body := child(raw, "content")
	data := child(raw, "data")

	out := domain.AmenitiesContent{
		Hero: normalizePageHero(child(raw, "hero"), fb.Hero),
		Content: domain.AmenitiesBody{
			LayoutTitle:    textField(body, "layoutTitle", fb.Content.LayoutTitle),
			AmenitiesLabel: textField(body, "amenitiesLabel", fb.Content.AmenitiesLabel),
			ToggleLabel:    textField(body, "toggleLabel", fb.Content.ToggleLabel),
			ViewLabel:      textField(body, "viewLabel", fb.Content.ViewLabel),
		},
		Data: domain.AmenitiesData{
			OverviewItems: stringList(data, "overviewItems", fb.Data.OverviewItems, maxOverviewItems),
		},
	}

	if items, ok := listField(body, "layoutOptions"); ok {
		opts := make([]domain.AmenityOption, 0, len(items))
		for _, it := range items {
			im := asMap(it)
			o := domain.AmenityOption{
				Title:       textField(im, "title", ""),
				Icon:        textField(im, "icon", ""),
				Description: textField(im, "description", ""),
				Highlights:  innerStrings(im, "highlights", nil, maxOptionHighlights),
			}
			if o.Title == "" && o.Description == "" {
				continue
			}
			if o.Icon == "" {
				o.Icon = DefaultIcon
			}
			opts = append(opts, o)
		}
		out.Content.LayoutOptions = boundList(opts, fb.Content.LayoutOptions, maxLayoutOptions)
	} else {
		out.Content.LayoutOptions = copyList(fb.Content.LayoutOptions)
	}

	if items, ok := listField(data, "cards"); ok {
		cards := make([]domain.AmenityCard, 0, len(items))
		for _, it := range items {
			im := asMap(it)
			c := domain.AmenityCard{
				Title:       textField(im, "title", ""),
				Icon:        textField(im, "icon", ""),
				Image:       textField(im, "image", ""),
				Description: textField(im, "description", ""),
				Highlights:  innerStrings(im, "highlights", nil, maxCardHighlights),
			}
			if c.Title == "" && c.Image == "" && c.Description == "" {
				continue
			}
			if c.Icon == "" {
				c.Icon = DefaultIcon
			}
			cards = append(cards, c)
		}
		out.Data.Cards = boundList(cards, fb.Data.Cards, maxAmenityCards)
	} else {
		out.Data.Cards = copyList(fb.Data.Cards)
	}

	return out
}

func ValidateAmenitiesContent(c domain.AmenitiesContent) string {
	checks := validatePageHero(c.Hero, "Amenities")
	checks = append(checks,
		requireText(c.Content.LayoutTitle, "Amenities layout title"),
		requireListBounds(len(c.Content.LayoutOptions), "Amenities layout options", maxLayoutOptions),
		func() string {
			for i, o := range c.Content.LayoutOptions {
				if o.Title == "" || o.Description == "" {
					return fmt.Sprintf("Layout option %d: title and description are required", i+1)
				}
			}
			return ""
		},
		requireText(c.Content.AmenitiesLabel, "Amenities label"),
		requireText(c.Content.ToggleLabel, "Amenities toggle label"),
		requireText(c.Content.ViewLabel, "Amenities view label"),
		requireListBounds(len(c.Data.Cards), "Amenity cards", maxAmenityCards),
		func() string {
			for i, card := range c.Data.Cards {
				if card.Title == "" || card.Description == "" {
					return fmt.Sprintf("Amenity card %d: title and description are required", i+1)
				}
			}
			return ""
		},
		requireListBounds(len(c.Data.OverviewItems), "Amenities overview items", maxOverviewItems),
	)
	return firstError(checks...)
}
