package content

import (
	"fmt"

	"pansiyon_cms/internal/domain"
)

const (
	maxServiceStats      = 6
	maxServiceHighlights = 12
	maxSupportList       = 20
)

func normalizePageHero(m map[string]any, fb domain.PageHero) domain.PageHero {
	return domain.PageHero{
		Subtitle:   textField(m, "subtitle", fb.Subtitle),
		Title:      textField(m, "title", fb.Title),
		Breadcrumb: textField(m, "breadcrumb", fb.Breadcrumb),
		Background: textField(m, "background", fb.Background),
	}
}

func NormalizeServicesContent(raw map[string]any, fb domain.ServicesContent) domain.ServicesContent {
	body := child(raw, "content")
	out := domain.ServicesContent{
		Hero: normalizePageHero(child(raw, "hero"), fb.Hero),
		Content: domain.ServicesBody{
			Intro:        textField(body, "intro", fb.Content.Intro),
			CTAPrimary:   textField(body, "ctaPrimary", fb.Content.CTAPrimary),
			CTASecondary: textField(body, "ctaSecondary", fb.Content.CTASecondary),
			StatsImage:   textField(body, "statsImage", fb.Content.StatsImage),
			Essentials:   textField(body, "essentials", fb.Content.Essentials),
			Support:      textField(body, "support", fb.Content.Support),
			CTAStart:     textField(body, "ctaStart", fb.Content.CTAStart),
			SupportList:  stringList(body, "supportList", fb.Content.SupportList, maxSupportList),
		},
	}

	if items, ok := listField(body, "stats"); ok {
		stats := make([]domain.ServiceStat, 0, len(items))
		for _, it := range items {
			im := asMap(it)
			s := domain.ServiceStat{
				Label: textField(im, "label", ""),
				Value: textField(im, "value", ""),
				Note:  textField(im, "note", ""),
			}
			if s.Label == "" && s.Value == "" {
				continue
			}
			stats = append(stats, s)
		}
		out.Content.Stats = boundList(stats, fb.Content.Stats, maxServiceStats)
	} else {
		out.Content.Stats = copyList(fb.Content.Stats)
	}

	if items, ok := listField(body, "highlights"); ok {
		hl := make([]domain.ServiceHighlight, 0, len(items))
		for _, it := range items {
			im := asMap(it)
			h := domain.ServiceHighlight{
				Icon:        textField(im, "icon", ""),
				Title:       textField(im, "title", ""),
				Description: textField(im, "description", ""),
			}
			if h.Title == "" && h.Description == "" {
				continue
			}
			if h.Icon == "" {
				h.Icon = DefaultIcon
			}
			hl = append(hl, h)
		}
		out.Content.Highlights = boundList(hl, fb.Content.Highlights, maxServiceHighlights)
	} else {
		out.Content.Highlights = copyList(fb.Content.Highlights)
	}

	return out
}

func validatePageHero(h domain.PageHero, section string) []check {
	return []check{
		requireText(h.Title, section+" hero title"),
		requireText(h.Subtitle, section+" hero subtitle"),
		requireText(h.Breadcrumb, section+" breadcrumb"),
		requireText(h.Background, section+" background image"),
	}
}

func ValidateServicesContent(c domain.ServicesContent) string {
	checks := validatePageHero(c.Hero, "Services")
	checks = append(checks,
		requireText(c.Content.Intro, "Services intro"),
		requireText(c.Content.CTAPrimary, "Services primary button text"),
		requireText(c.Content.CTASecondary, "Services secondary button text"),
		requireListBounds(len(c.Content.Stats), "Services stats", maxServiceStats),
		func() string {
			for i, s := range c.Content.Stats {
				if s.Label == "" || s.Value == "" {
					return fmt.Sprintf("Services stat %d: label and value are required", i+1)
				}
			}
			return ""
		},
		requireText(c.Content.StatsImage, "Services stats image"),
		requireText(c.Content.Essentials, "Services essentials text"),
		requireListBounds(len(c.Content.Highlights), "Services highlights", maxServiceHighlights),
		func() string {
			for i, h := range c.Content.Highlights {
				if h.Title == "" || h.Description == "" {
					return fmt.Sprintf("Services highlight %d: title and description are required", i+1)
				}
			}
			return ""
		},
		requireText(c.Content.Support, "Services support text"),
		requireText(c.Content.CTAStart, "Services start button text"),
		requireListBounds(len(c.Content.SupportList), "Services support list", maxSupportList),
	)
	return firstError(checks...)
}
