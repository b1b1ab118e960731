package content

import (
	"fmt"
	"regexp"
	"strings"

	"pansiyon_cms/internal/domain"
)

const (
	maxHeroSlides        = 8
	maxBookingPartners   = 8
	maxRoomCards         = 8
	maxRoomHighlights    = 6
	maxTestimonialSlides = 8
	facilityStatCount    = 3
	maxGalleryCategories = 8
	maxGalleryItems      = 24
	maxGalleryPerCat     = 8
	maxOfferCards        = 4
	maxFAQItems          = 20
)

// Literal defaults for the facility counters, used when both input and
// fallback resolve to zero.
const (
	defaultGuestCount = 1200
	defaultRoomCount  = 24
	defaultYearCount  = 15
)

// NormalizeHomeContent shapes an arbitrary admin submission into a fully
// populated Home document, filling gaps from fallback. It is total: any
// input, including nil, yields a valid-shaped document.
func NormalizeHomeContent(raw map[string]any, fb domain.HomeContent) domain.HomeContent {
	return domain.HomeContent{
		Sections:     normalizeSections(child(raw, "sections"), fb.Sections),
		Hero:         normalizeHomeHero(child(raw, "hero"), fb.Hero),
		Rooms:        normalizeHomeRooms(child(raw, "rooms"), fb.Rooms),
		Testimonials: normalizeTestimonials(child(raw, "testimonials"), fb.Testimonials),
		Facilities:   normalizeFacilities(child(raw, "facilities"), fb.Facilities),
		Gallery:      normalizeHomeGallery(child(raw, "gallery"), fb.Gallery),
		Offers:       normalizeOffers(child(raw, "offers"), fb.Offers),
		FAQ:          normalizeFAQ(child(raw, "faq"), fb.FAQ),
		VideoCTA:     normalizeVideoCTA(child(raw, "videoCta"), fb.VideoCTA),
	}
}

// normalizeSections keeps only the fixed section keys; unknown keys are
// dropped, missing ones come from the fallback (or enabled-in-order).
func normalizeSections(m map[string]any, fb map[string]domain.SectionSetting) map[string]domain.SectionSetting {
	out := make(map[string]domain.SectionSetting, len(domain.HomeSectionKeys))
	for i, key := range domain.HomeSectionKeys {
		f, ok := fb[key]
		if !ok {
			f = domain.SectionSetting{Enabled: true, Order: i}
		}
		s := child(m, key)
		out[key] = domain.SectionSetting{
			Enabled: boolField(s, "enabled", f.Enabled),
			Order:   intField(s, "order", f.Order),
		}
	}
	return out
}

func normalizeCTA(m map[string]any, fb domain.CTA) domain.CTA {
	return domain.CTA{
		Text: textField(m, "text", fb.Text),
		Href: textField(m, "href", fb.Href),
	}
}

func normalizeHomeHero(m map[string]any, fb domain.HomeHero) domain.HomeHero {
	h := domain.HomeHero{
		TitleTop:            textField(m, "titleTop", fb.TitleTop),
		TitleMain:           textField(m, "titleMain", fb.TitleMain),
		Subtitle:            textField(m, "subtitle", fb.Subtitle),
		PrimaryCTA:          normalizeCTA(child(m, "primaryCta"), fb.PrimaryCTA),
		SecondaryCTA:        normalizeCTA(child(m, "secondaryCta"), fb.SecondaryCTA),
		ShowPartners:        boolField(m, "showPartners", fb.ShowPartners),
		ShowPartnerLogos:    boolField(m, "showPartnerLogos", fb.ShowPartnerLogos),
		PartnersTitle:       textField(m, "partnersTitle", fb.PartnersTitle),
		PartnersDescription: textField(m, "partnersDescription", fb.PartnersDescription),
	}

	if items, ok := listField(m, "slides"); ok {
		slides := make([]domain.HeroSlide, 0, len(items))
		for _, it := range items {
			im := asMap(it)
			s := domain.HeroSlide{
				Image:    textField(im, "image", ""),
				Position: textField(im, "position", ""),
			}
			if s.Image == "" {
				continue
			}
			if s.Position == "" {
				s.Position = "center"
			}
			slides = append(slides, s)
		}
		h.Slides = boundList(slides, fb.Slides, maxHeroSlides)
	} else {
		h.Slides = copyList(fb.Slides)
	}

	if items, ok := listField(m, "partners"); ok {
		partners := make([]domain.BookingPartner, 0, len(items))
		for _, it := range items {
			im := asMap(it)
			p := domain.BookingPartner{
				Name:        textField(im, "name", ""),
				Logo:        textField(im, "logo", ""),
				URL:         textField(im, "url", ""),
				Description: textField(im, "description", ""),
			}
			if p.Name == "" && p.Logo == "" && p.URL == "" {
				continue
			}
			partners = append(partners, p)
		}
		h.Partners = boundList(partners, fb.Partners, maxBookingPartners)
	} else {
		h.Partners = copyList(fb.Partners)
	}

	return h
}

func normalizeRoomCard(im map[string]any) domain.RoomCard {
	c := domain.RoomCard{
		Title:       textField(im, "title", ""),
		Icon:        textField(im, "icon", ""),
		Image:       textField(im, "image", ""),
		Description: textField(im, "description", ""),
		Highlights:  innerStrings(im, "highlights", nil, maxRoomHighlights),
	}
	if c.Icon == "" {
		c.Icon = DefaultIcon
	}
	return c
}

func normalizeHomeRooms(m map[string]any, fb domain.HomeRooms) domain.HomeRooms {
	r := domain.HomeRooms{
		Title:       textField(m, "title", fb.Title),
		Subtitle:    textField(m, "subtitle", fb.Subtitle),
		Description: textField(m, "description", fb.Description),
		CTA:         normalizeCTA(child(m, "cta"), fb.CTA),
		AllRoomsCTA: normalizeCTA(child(m, "allRoomsCta"), fb.AllRoomsCTA),
	}

	if items, ok := listField(m, "cards"); ok {
		cards := make([]domain.RoomCard, 0, len(items))
		for _, it := range items {
			c := normalizeRoomCard(asMap(it))
			if c.Title == "" && c.Image == "" && c.Description == "" {
				continue
			}
			cards = append(cards, c)
		}
		r.Cards = boundList(cards, fb.Cards, maxRoomCards)
	} else {
		r.Cards = copyList(fb.Cards)
	}
	return r
}

func normalizeTestimonials(m map[string]any, fb domain.HomeTestimonials) domain.HomeTestimonials {
	t := domain.HomeTestimonials{
		Background: textField(m, "background", fb.Background),
		Badge:      textField(m, "badge", fb.Badge),
		Title:      textField(m, "title", fb.Title),
		Subtitle:   textField(m, "subtitle", fb.Subtitle),
	}
	if items, ok := listField(m, "slides"); ok {
		slides := make([]domain.TestimonialSlide, 0, len(items))
		for _, it := range items {
			im := asMap(it)
			s := domain.TestimonialSlide{
				Badge: textField(im, "badge", ""),
				Text:  textField(im, "text", ""),
			}
			if s.Text == "" {
				continue
			}
			slides = append(slides, s)
		}
		t.Slides = boundList(slides, fb.Slides, maxTestimonialSlides)
	} else {
		t.Slides = copyList(fb.Slides)
	}
	return t
}

func normalizeFacilities(m map[string]any, fb domain.HomeFacilities) domain.HomeFacilities {
	f := domain.HomeFacilities{
		Title:          textField(m, "title", fb.Title),
		Subtitle:       textField(m, "subtitle", fb.Subtitle),
		Description:    textField(m, "description", fb.Description),
		GuestCount:     numField(m, "guestCount", fb.GuestCount, defaultGuestCount),
		RoomCount:      numField(m, "roomCount", fb.RoomCount, defaultRoomCount),
		YearCount:      numField(m, "yearCount", fb.YearCount, defaultYearCount),
		ImagePrimary:   textField(m, "imagePrimary", fb.ImagePrimary),
		ImageSecondary: textField(m, "imageSecondary", fb.ImageSecondary),
	}

	// The stats strip renders three slots; the validator reports any other
	// count, so a short submission is kept for it to reject.
	if items, ok := listField(m, "stats"); ok {
		stats := make([]domain.FacilityStat, 0, len(items))
		for _, it := range items {
			im := asMap(it)
			s := domain.FacilityStat{
				Label:  textField(im, "label", ""),
				Suffix: textField(im, "suffix", ""),
			}
			if s.Label == "" && s.Suffix == "" {
				continue
			}
			stats = append(stats, s)
		}
		f.Stats = boundList(stats, fb.Stats, facilityStatCount)
	} else {
		f.Stats = copyList(fb.Stats)
	}
	return f
}

var categoryKeyStrip = regexp.MustCompile(`[^a-z0-9-]+`)

// sanitizeCategoryKey turns a label-ish string into a stable category key.
func sanitizeCategoryKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "-")
	s = categoryKeyStrip.ReplaceAllString(s, "")
	return strings.Trim(s, "-")
}

func normalizeHomeGallery(m map[string]any, fb domain.HomeGallery) domain.HomeGallery {
	g := domain.HomeGallery{
		Title:    textField(m, "title", fb.Title),
		Subtitle: textField(m, "subtitle", fb.Subtitle),
	}

	if items, ok := listField(m, "categories"); ok {
		seen := make(map[string]struct{}, len(items))
		cats := make([]domain.GalleryCategory, 0, len(items))
		for _, it := range items {
			im := asMap(it)
			c := domain.GalleryCategory{
				Key:   sanitizeCategoryKey(textField(im, "key", "")),
				Label: textField(im, "label", ""),
			}
			if c.Key == "" {
				c.Key = sanitizeCategoryKey(c.Label)
			}
			if c.Key == "" || c.Label == "" {
				continue
			}
			if _, dup := seen[c.Key]; dup {
				continue
			}
			seen[c.Key] = struct{}{}
			cats = append(cats, c)
		}
		g.Categories = boundList(cats, fb.Categories, maxGalleryCategories)
	} else {
		g.Categories = copyList(fb.Categories)
	}

	keys := make(map[string]struct{}, len(g.Categories))
	for _, c := range g.Categories {
		keys[c.Key] = struct{}{}
	}
	defaultCategory := ""
	if len(g.Categories) > 0 {
		defaultCategory = g.Categories[0].Key
	}

	if items, ok := listField(m, "items"); ok {
		perCat := make(map[string]int, len(keys))
		out := make([]domain.GalleryItem, 0, len(items))
		for _, it := range items {
			im := asMap(it)
			gi := domain.GalleryItem{
				Image:    textField(im, "image", ""),
				Category: sanitizeCategoryKey(textField(im, "category", "")),
				Alt:      textField(im, "alt", ""),
			}
			if gi.Image == "" {
				continue
			}
			// Items keep their category only while it matches a current
			// category key; anything else lands in the first category.
			if _, ok := keys[gi.Category]; !ok {
				gi.Category = defaultCategory
			}
			if len(out) >= maxGalleryItems || perCat[gi.Category] >= maxGalleryPerCat {
				continue
			}
			perCat[gi.Category]++
			out = append(out, gi)
		}
		g.Items = boundList(out, fb.Items, maxGalleryItems)
	} else {
		g.Items = copyList(fb.Items)
	}
	return g
}

func normalizeOffers(m map[string]any, fb domain.HomeOffers) domain.HomeOffers {
	o := domain.HomeOffers{
		Title:    textField(m, "title", fb.Title),
		Subtitle: textField(m, "subtitle", fb.Subtitle),
	}
	if items, ok := listField(m, "cards"); ok {
		cards := make([]domain.OfferCard, 0, len(items))
		for i, it := range items {
			im := asMap(it)
			c := domain.OfferCard{
				ID:    textField(im, "id", ""),
				Badge: textField(im, "badge", ""),
				Title: textField(im, "title", ""),
				Text:  textField(im, "text", ""),
				Image: textField(im, "image", ""),
			}
			if c.ID == "" {
				c.ID = fmt.Sprintf("offer-%d", i+1)
			}
			if c.Title == "" && c.Text == "" && c.Image == "" {
				continue
			}
			cards = append(cards, c)
		}
		o.Cards = boundList(cards, fb.Cards, maxOfferCards)
	} else {
		o.Cards = copyList(fb.Cards)
	}
	return o
}

func normalizeFAQ(m map[string]any, fb domain.HomeFAQ) domain.HomeFAQ {
	f := domain.HomeFAQ{
		Title:    textField(m, "title", fb.Title),
		Subtitle: textField(m, "subtitle", fb.Subtitle),
	}
	if items, ok := listField(m, "items"); ok {
		out := make([]domain.FAQItem, 0, len(items))
		for _, it := range items {
			im := asMap(it)
			q := domain.FAQItem{
				Title: textField(im, "title", ""),
				Body:  textField(im, "body", ""),
			}
			if q.Title == "" && q.Body == "" {
				continue
			}
			out = append(out, q)
		}
		f.Items = boundList(out, fb.Items, maxFAQItems)
	} else {
		f.Items = copyList(fb.Items)
	}
	return f
}

// normalizeVideoCTA does no host checking; the allow-list is enforced by the
// validator only.
func normalizeVideoCTA(m map[string]any, fb domain.HomeVideoCTA) domain.HomeVideoCTA {
	return domain.HomeVideoCTA{
		Title:    textField(m, "title", fb.Title),
		Text:     textField(m, "text", fb.Text),
		VideoURL: textField(m, "videoUrl", fb.VideoURL),
	}
}

// ValidateHomeContent returns the first violated rule's message, or "".
func ValidateHomeContent(c domain.HomeContent) string {
	return firstError(
		// hero
		requireText(c.Hero.TitleMain, "Hero title"),
		requireText(c.Hero.Subtitle, "Hero subtitle"),
		requireText(c.Hero.PrimaryCTA.Text, "Hero primary button text"),
		requireLink(c.Hero.PrimaryCTA.Href, "Hero primary button link"),
		requireText(c.Hero.SecondaryCTA.Text, "Hero secondary button text"),
		requireLink(c.Hero.SecondaryCTA.Href, "Hero secondary button link"),
		requireListBounds(len(c.Hero.Slides), "Hero slides", maxHeroSlides),
		func() string {
			for i, s := range c.Hero.Slides {
				if s.Image == "" {
					return fmt.Sprintf("Hero slide %d: image is required", i+1)
				}
				if !IsValidBackgroundPosition(s.Position) {
					return fmt.Sprintf("Hero slide %d: position must be a valid background position", i+1)
				}
			}
			return ""
		},
		requireText(c.Hero.PartnersTitle, "Partners title"),
		requireListBounds(len(c.Hero.Partners), "Booking partners", maxBookingPartners),
		func() string {
			for i, p := range c.Hero.Partners {
				if p.Name == "" || p.Logo == "" {
					return fmt.Sprintf("Booking partner %d: name and logo are required", i+1)
				}
				if p.URL != "" && !IsValidLink(p.URL) {
					return fmt.Sprintf("Booking partner %d: link must start with / or http(s)://", i+1)
				}
			}
			return ""
		},
		// rooms
		requireText(c.Rooms.Title, "Rooms title"),
		requireText(c.Rooms.Subtitle, "Rooms subtitle"),
		requireText(c.Rooms.CTA.Text, "Rooms button text"),
		requireLink(c.Rooms.CTA.Href, "Rooms button link"),
		requireLink(c.Rooms.AllRoomsCTA.Href, "Rooms overview link"),
		requireListBounds(len(c.Rooms.Cards), "Room cards", maxRoomCards),
		func() string {
			for i, card := range c.Rooms.Cards {
				if card.Title == "" || card.Image == "" || card.Description == "" {
					return fmt.Sprintf("Room card %d: title, image and description are required", i+1)
				}
			}
			return ""
		},
		// testimonials
		requireText(c.Testimonials.Background, "Testimonials background image"),
		requireText(c.Testimonials.Title, "Testimonials title"),
		requireListBounds(len(c.Testimonials.Slides), "Testimonial slides", maxTestimonialSlides),
		func() string {
			for i, s := range c.Testimonials.Slides {
				if s.Text == "" {
					return fmt.Sprintf("Testimonial slide %d: text is required", i+1)
				}
			}
			return ""
		},
		// facilities
		requireText(c.Facilities.Title, "Facilities title"),
		func() string {
			if len(c.Facilities.Stats) != facilityStatCount {
				return fmt.Sprintf("Facilities stats must have exactly %d entries.", facilityStatCount)
			}
			for i, s := range c.Facilities.Stats {
				if s.Label == "" {
					return fmt.Sprintf("Facilities stat %d: label is required", i+1)
				}
			}
			return ""
		},
		requireText(c.Facilities.ImagePrimary, "Facilities primary image"),
		requireText(c.Facilities.ImageSecondary, "Facilities secondary image"),
		// gallery
		requireText(c.Gallery.Title, "Gallery title"),
		requireListBounds(len(c.Gallery.Categories), "Gallery categories", maxGalleryCategories),
		func() string {
			seen := make(map[string]struct{}, len(c.Gallery.Categories))
			for i, cat := range c.Gallery.Categories {
				if cat.Key == "" || cat.Label == "" {
					return fmt.Sprintf("Gallery category %d: key and label are required", i+1)
				}
				if _, dup := seen[cat.Key]; dup {
					return fmt.Sprintf("Gallery category key %q is duplicated.", cat.Key)
				}
				seen[cat.Key] = struct{}{}
			}
			return ""
		},
		requireListBounds(len(c.Gallery.Items), "Gallery images", maxGalleryItems),
		func() string {
			keys := make(map[string]struct{}, len(c.Gallery.Categories))
			for _, cat := range c.Gallery.Categories {
				keys[cat.Key] = struct{}{}
			}
			for i, it := range c.Gallery.Items {
				if it.Image == "" {
					return fmt.Sprintf("Gallery image %d: image is required", i+1)
				}
				if _, ok := keys[it.Category]; !ok {
					return fmt.Sprintf("Gallery image %d: category %q is not defined", i+1, it.Category)
				}
			}
			return ""
		},
		// offers
		requireText(c.Offers.Title, "Offers title"),
		requireListBounds(len(c.Offers.Cards), "Offer cards", maxOfferCards),
		func() string {
			seen := make(map[string]struct{}, len(c.Offers.Cards))
			for i, card := range c.Offers.Cards {
				if card.Title == "" || card.Text == "" || card.Image == "" {
					return fmt.Sprintf("Offer card %d: title, text and image are required", i+1)
				}
				if _, dup := seen[card.ID]; dup {
					return fmt.Sprintf("Offer card id %q is duplicated.", card.ID)
				}
				seen[card.ID] = struct{}{}
			}
			return ""
		},
		// faq
		requireText(c.FAQ.Title, "FAQ title"),
		requireListBounds(len(c.FAQ.Items), "FAQ entries", maxFAQItems),
		func() string {
			for i, q := range c.FAQ.Items {
				if q.Title == "" || q.Body == "" {
					return fmt.Sprintf("FAQ entry %d: title and body are required", i+1)
				}
			}
			return ""
		},
		// video CTA
		requireText(c.VideoCTA.Title, "Video section title"),
		func() string {
			if !IsAllowedVideoURL(c.VideoCTA.VideoURL) {
				return "Video URL must be a valid YouTube or Vimeo link."
			}
			return ""
		},
	)
}
