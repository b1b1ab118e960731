package content

import (
	"fmt"

	"pansiyon_cms/internal/domain"
)

const (
	maxContactItems = 12
	maxSocialLinks  = 12
)

func NormalizeContactContent(raw map[string]any, fb domain.ContactContent) domain.ContactContent {
	details := child(raw, "details")
	form := child(raw, "form")

	out := domain.ContactContent{
		Hero: normalizePageHero(child(raw, "hero"), fb.Hero),
		Details: domain.ContactDetails{
			Title: textField(details, "title", fb.Details.Title),
		},
		Form: domain.ContactForm{
			Action:             textField(form, "action", fb.Form.Action),
			NameLabel:          textField(form, "nameLabel", fb.Form.NameLabel),
			NamePlaceholder:    textField(form, "namePlaceholder", fb.Form.NamePlaceholder),
			EmailLabel:         textField(form, "emailLabel", fb.Form.EmailLabel),
			EmailPlaceholder:   textField(form, "emailPlaceholder", fb.Form.EmailPlaceholder),
			PhoneLabel:         textField(form, "phoneLabel", fb.Form.PhoneLabel),
			PhonePlaceholder:   textField(form, "phonePlaceholder", fb.Form.PhonePlaceholder),
			MessageLabel:       textField(form, "messageLabel", fb.Form.MessageLabel),
			MessagePlaceholder: textField(form, "messagePlaceholder", fb.Form.MessagePlaceholder),
			SubmitLabel:        textField(form, "submitLabel", fb.Form.SubmitLabel),
			SuccessMessage:     textField(form, "successMessage", fb.Form.SuccessMessage),
			ErrorMessage:       textField(form, "errorMessage", fb.Form.ErrorMessage),
		},
	}

	if items, ok := listField(details, "items"); ok {
		out.Details.Items = make([]domain.ContactItem, 0, len(items))
		for _, it := range items {
			im := asMap(it)
			ci := domain.ContactItem{
				Icon:  textField(im, "icon", ""),
				Title: textField(im, "title", ""),
				Value: textField(im, "value", ""),
			}
			if ci.Title == "" && ci.Value == "" {
				continue
			}
			if ci.Icon == "" {
				ci.Icon = DefaultIcon
			}
			out.Details.Items = append(out.Details.Items, ci)
		}
		out.Details.Items = boundList(out.Details.Items, fb.Details.Items, maxContactItems)
	} else {
		out.Details.Items = copyList(fb.Details.Items)
	}

	if items, ok := listField(details, "socials"); ok {
		out.Details.Socials = make([]domain.SocialLink, 0, len(items))
		for _, it := range items {
			im := asMap(it)
			sl := domain.SocialLink{
				Icon:  textField(im, "icon", ""),
				Label: textField(im, "label", ""),
				URL:   textField(im, "url", ""),
			}
			if sl.Label == "" && sl.URL == "" {
				continue
			}
			if sl.Icon == "" {
				sl.Icon = DefaultIcon
			}
			out.Details.Socials = append(out.Details.Socials, sl)
		}
		out.Details.Socials = boundList(out.Details.Socials, fb.Details.Socials, maxSocialLinks)
	} else {
		out.Details.Socials = copyList(fb.Details.Socials)
	}

	return out
}

func ValidateContactContent(c domain.ContactContent) string {
	checks := validatePageHero(c.Hero, "Contact")
	checks = append(checks,
		requireText(c.Details.Title, "Contact details title"),
		requireListBounds(len(c.Details.Items), "Contact items", maxContactItems),
		func() string {
			for i, it := range c.Details.Items {
				if it.Title == "" || it.Value == "" {
					return fmt.Sprintf("Contact item %d: title and value are required", i+1)
				}
			}
			return ""
		},
		requireListBounds(len(c.Details.Socials), "Social links", maxSocialLinks),
		func() string {
			for i, s := range c.Details.Socials {
				if s.Label == "" {
					return fmt.Sprintf("Social link %d: label is required", i+1)
				}
				if !IsValidLink(s.URL) {
					return fmt.Sprintf("Social link %d: link must start with / or http(s)://", i+1)
				}
			}
			return ""
		},
		requireLink(c.Form.Action, "Contact form action"),
		requireText(c.Form.NameLabel, "Contact form name label"),
		requireText(c.Form.EmailLabel, "Contact form email label"),
		requireText(c.Form.PhoneLabel, "Contact form phone label"),
		requireText(c.Form.MessageLabel, "Contact form message label"),
		requireText(c.Form.SubmitLabel, "Contact form submit label"),
		requireText(c.Form.SuccessMessage, "Contact form success message"),
		requireText(c.Form.ErrorMessage, "Contact form error message"),
	)
	return firstError(checks...)
}
