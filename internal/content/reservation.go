package content

import (
	"fmt"

	"pansiyon_cms/internal/domain"
)

const (
	maxFormOptions     = 20
	maxLongStayBullets = 20
	maxHelpContacts    = 10
	maxHelpHours       = 10
	maxWhyBullets      = 20
	maxStayPurposes    = 15
)

func NormalizeReservationContent(raw map[string]any, fb domain.ReservationContent) domain.ReservationContent {
	form := child(raw, "form")
	longStay := child(raw, "longStay")
	help := child(raw, "help")
	why := child(raw, "why")
	inquiry := child(raw, "inquiry")
	shortStay := child(raw, "shortStay")

	out := domain.ReservationContent{
		Hero:  normalizePageHero(child(raw, "hero"), fb.Hero),
		Crumb: textField(raw, "crumb", fb.Crumb),
		ShortStay: domain.ReservationShortStay{
			Title: textField(shortStay, "title", fb.ShortStay.Title),
			Text:  textField(shortStay, "text", fb.ShortStay.Text),
			CTA:   normalizeCTA(child(shortStay, "cta"), fb.ShortStay.CTA),
		},
		Form: domain.ReservationForm{
			Action:          textField(form, "action", fb.Form.Action),
			NameLabel:       textField(form, "nameLabel", fb.Form.NameLabel),
			EmailLabel:      textField(form, "emailLabel", fb.Form.EmailLabel),
			PhoneLabel:      textField(form, "phoneLabel", fb.Form.PhoneLabel),
			CheckInLabel:    textField(form, "checkInLabel", fb.Form.CheckInLabel),
			CheckOutLabel:   textField(form, "checkOutLabel", fb.Form.CheckOutLabel),
			GuestsLabel:     textField(form, "guestsLabel", fb.Form.GuestsLabel),
			RoomTypeLabel:   textField(form, "roomTypeLabel", fb.Form.RoomTypeLabel),
			DurationLabel:   textField(form, "durationLabel", fb.Form.DurationLabel),
			SubmitLabel:     textField(form, "submitLabel", fb.Form.SubmitLabel),
			GuestOptions:    stringList(form, "guestOptions", fb.Form.GuestOptions, maxFormOptions),
			RoomTypeOptions: stringList(form, "roomTypeOptions", fb.Form.RoomTypeOptions, maxFormOptions),
			DurationOptions: stringList(form, "durationOptions", fb.Form.DurationOptions, maxFormOptions),
		},
		LongStay: domain.ReservationLongStay{
			Title:        textField(longStay, "title", fb.LongStay.Title),
			Text:         textField(longStay, "text", fb.LongStay.Text),
			Bullets:      stringList(longStay, "bullets", fb.LongStay.Bullets, maxLongStayBullets),
			PrimaryCTA:   normalizeCTA(child(longStay, "primaryCta"), fb.LongStay.PrimaryCTA),
			SecondaryCTA: normalizeCTA(child(longStay, "secondaryCta"), fb.LongStay.SecondaryCTA),
		},
		Help: domain.ReservationHelp{
			Title: textField(help, "title", fb.Help.Title),
			Text:  textField(help, "text", fb.Help.Text),
			Hours: stringList(help, "hours", fb.Help.Hours, maxHelpHours),
		},
		Why: domain.ReservationWhy{
			Title:   textField(why, "title", fb.Why.Title),
			Bullets: stringList(why, "bullets", fb.Why.Bullets, maxWhyBullets),
		},
		Inquiry: domain.ReservationInquiry{
			Action:             textField(inquiry, "action", fb.Inquiry.Action),
			Title:              textField(inquiry, "title", fb.Inquiry.Title),
			Subtitle:           textField(inquiry, "subtitle", fb.Inquiry.Subtitle),
			FirstNameLabel:     textField(inquiry, "firstNameLabel", fb.Inquiry.FirstNameLabel),
			LastNameLabel:      textField(inquiry, "lastNameLabel", fb.Inquiry.LastNameLabel),
			EmailLabel:         textField(inquiry, "emailLabel", fb.Inquiry.EmailLabel),
			PhoneLabel:         textField(inquiry, "phoneLabel", fb.Inquiry.PhoneLabel),
			NationalityLabel:   textField(inquiry, "nationalityLabel", fb.Inquiry.NationalityLabel),
			GenderLabel:        textField(inquiry, "genderLabel", fb.Inquiry.GenderLabel),
			OccupationLabel:    textField(inquiry, "occupationLabel", fb.Inquiry.OccupationLabel),
			InstitutionLabel:   textField(inquiry, "institutionLabel", fb.Inquiry.InstitutionLabel),
			CheckInLabel:       textField(inquiry, "checkInLabel", fb.Inquiry.CheckInLabel),
			DurationLabel:      textField(inquiry, "durationLabel", fb.Inquiry.DurationLabel),
			RoomTypeLabel:      textField(inquiry, "roomTypeLabel", fb.Inquiry.RoomTypeLabel),
			PurposeLabel:       textField(inquiry, "purposeLabel", fb.Inquiry.PurposeLabel),
			MessageLabel:       textField(inquiry, "messageLabel", fb.Inquiry.MessageLabel),
			MessagePlaceholder: textField(inquiry, "messagePlaceholder", fb.Inquiry.MessagePlaceholder),
			ConsentText:        textField(inquiry, "consentText", fb.Inquiry.ConsentText),
			SubmitLabel:        textField(inquiry, "submitLabel", fb.Inquiry.SubmitLabel),
			SuccessMessage:     textField(inquiry, "successMessage", fb.Inquiry.SuccessMessage),
			ErrorMessage:       textField(inquiry, "errorMessage", fb.Inquiry.ErrorMessage),
			GenderOptions:      stringList(inquiry, "genderOptions", fb.Inquiry.GenderOptions, maxFormOptions),
			DurationOptions:    stringList(inquiry, "durationOptions", fb.Inquiry.DurationOptions, maxFormOptions),
		},
	}

	if items, ok := listField(help, "contacts"); ok {
		contacts := make([]domain.HelpContact, 0, len(items))
		for _, it := range items {
			im := asMap(it)
			hc := domain.HelpContact{
				Icon:  textField(im, "icon", ""),
				Value: textField(im, "value", ""),
			}
			if hc.Value == "" {
				continue
			}
			if hc.Icon == "" {
				hc.Icon = DefaultIcon
			}
			contacts = append(contacts, hc)
		}
		out.Help.Contacts = boundList(contacts, fb.Help.Contacts, maxHelpContacts)
	} else {
		out.Help.Contacts = copyList(fb.Help.Contacts)
	}

	if items, ok := listField(inquiry, "stayPurposes"); ok {
		purposes := make([]domain.StayPurpose, 0, len(items))
		for _, it := range items {
			im := asMap(it)
			p := domain.StayPurpose{
				Value: textField(im, "value", ""),
				Label: textField(im, "label", ""),
			}
			if p.Value == "" && p.Label == "" {
				continue
			}
			if p.Value == "" {
				p.Value = sanitizeCategoryKey(p.Label)
			}
			purposes = append(purposes, p)
		}
		out.Inquiry.StayPurposes = boundList(purposes, fb.Inquiry.StayPurposes, maxStayPurposes)
	} else {
		out.Inquiry.StayPurposes = copyList(fb.Inquiry.StayPurposes)
	}

	return out
}

func ValidateReservationContent(c domain.ReservationContent) string {
	checks := validatePageHero(c.Hero, "Reservation")
	checks = append(checks,
		requireText(c.Crumb, "Reservation breadcrumb label"),
		requireText(c.ShortStay.Title, "Short stay title"),
		requireText(c.ShortStay.Text, "Short stay text"),
		requireText(c.ShortStay.CTA.Text, "Short stay button text"),
		requireLink(c.ShortStay.CTA.Href, "Short stay button link"),
		requireLink(c.Form.Action, "Reservation form action"),
		requireText(c.Form.NameLabel, "Reservation form name label"),
		requireText(c.Form.CheckInLabel, "Reservation form check-in label"),
		requireText(c.Form.CheckOutLabel, "Reservation form check-out label"),
		requireText(c.Form.SubmitLabel, "Reservation form submit label"),
		requireListBounds(len(c.Form.GuestOptions), "Guest options", maxFormOptions),
		requireListBounds(len(c.Form.RoomTypeOptions), "Room type options", maxFormOptions),
		requireListBounds(len(c.Form.DurationOptions), "Duration options", maxFormOptions),
		requireText(c.LongStay.Title, "Long stay title"),
		requireText(c.LongStay.Text, "Long stay text"),
		requireListBounds(len(c.LongStay.Bullets), "Long stay bullets", maxLongStayBullets),
		requireText(c.LongStay.PrimaryCTA.Text, "Long stay primary button text"),
		requireLink(c.LongStay.PrimaryCTA.Href, "Long stay primary button link"),
		requireText(c.LongStay.SecondaryCTA.Text, "Long stay secondary button text"),
		requireLink(c.LongStay.SecondaryCTA.Href, "Long stay secondary button link"),
		requireText(c.Help.Title, "Help title"),
		requireListBounds(len(c.Help.Contacts), "Help contacts", maxHelpContacts),
		func() string {
			for i, hc := range c.Help.Contacts {
				if hc.Value == "" {
					return fmt.Sprintf("Help contact %d: value is required", i+1)
				}
			}
			return ""
		},
		requireListBounds(len(c.Help.Hours), "Help hours", maxHelpHours),
		requireText(c.Why.Title, "Why title"),
		requireListBounds(len(c.Why.Bullets), "Why bullets", maxWhyBullets),
		requireLink(c.Inquiry.Action, "Inquiry form action"),
		requireText(c.Inquiry.Title, "Inquiry title"),
		requireText(c.Inquiry.SubmitLabel, "Inquiry submit label"),
		requireListBounds(len(c.Inquiry.StayPurposes), "Stay purposes", maxStayPurposes),
		func() string {
			for i, p := range c.Inquiry.StayPurposes {
				if p.Value == "" || p.Label == "" {
					return fmt.Sprintf("Stay purpose %d: value and label are required", i+1)
				}
			}
			return ""
		},
		requireListBounds(len(c.Inquiry.GenderOptions), "Inquiry gender options", maxFormOptions),
		requireListBounds(len(c.Inquiry.DurationOptions), "Inquiry duration options", maxFormOptions),
	)
	return firstError(checks...)
}
