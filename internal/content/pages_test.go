package content

import (
	"reflect"
	"strings"
	"testing"

	"pansiyon_cms/internal/domain"
)

func TestPageDefaults_AreValid(t *testing.T) {
	for _, l := range domain.Locales() {
		if msg := ValidateServicesContent(DefaultServicesContent(l)); msg != "" {
			t.Fatalf("services default %s invalid: %s", l, msg)
		}
		if msg := ValidateAmenitiesContent(DefaultAmenitiesContent(l)); msg != "" {
			t.Fatalf("amenities default %s invalid: %s", l, msg)
		}
		if msg := ValidateContactContent(DefaultContactContent(l)); msg != "" {
			t.Fatalf("contact default %s invalid: %s", l, msg)
		}
		if msg := ValidateReservationContent(DefaultReservationContent(l)); msg != "" {
			t.Fatalf("reservation default %s invalid: %s", l, msg)
		}
	}
}

func TestNormalizePages_NilReproducesFallback(t *testing.T) {
	sv := DefaultServicesContent(domain.LocaleDE)
	if got := NormalizeServicesContent(nil, sv); !reflect.DeepEqual(got, sv) {
		t.Fatalf("services: %+v", got)
	}
	am := DefaultAmenitiesContent(domain.LocaleDE)
	if got := NormalizeAmenitiesContent(nil, am); !reflect.DeepEqual(got, am) {
		t.Fatalf("amenities: %+v", got)
	}
	ct := DefaultContactContent(domain.LocaleDE)
	if got := NormalizeContactContent(nil, ct); !reflect.DeepEqual(got, ct) {
		t.Fatalf("contact: %+v", got)
	}
	rs := DefaultReservationContent(domain.LocaleDE)
	if got := NormalizeReservationContent(nil, rs); !reflect.DeepEqual(got, rs) {
		t.Fatalf("reservation: %+v", got)
	}
}

func TestValidateServices_HeroComesFirst(t *testing.T) {
	c := DefaultServicesContent(domain.LocaleEN)
	c.Hero.Title = ""
	c.Content.Intro = ""
	if msg := ValidateServicesContent(c); msg != "Services hero title is required." {
		t.Fatalf("got %q", msg)
	}
}

func TestValidateContact_SocialLinkRules(t *testing.T) {
	c := DefaultContactContent(domain.LocaleEN)
	c.Details.Socials = []domain.SocialLink{{Icon: "fa fa-x", Label: "X", URL: "javascript:alert(1)"}}
	msg := ValidateContactContent(c)
	if !strings.Contains(msg, "Social link 1") {
		t.Fatalf("got %q", msg)
	}
}

func TestNormalizeContact_FormActionFallback(t *testing.T) {
	fb := DefaultContactContent(domain.LocaleEN)
	got := NormalizeContactContent(map[string]any{
		"form": map[string]any{"nameLabel": "Your name"},
	}, fb)
	if got.Form.Action != fb.Form.Action {
		t.Fatalf("form action should come from fallback, got %q", got.Form.Action)
	}
	if got.Form.NameLabel != "Your name" {
		t.Fatalf("override lost: %q", got.Form.NameLabel)
	}
}

func TestNormalizeReservation_StayPurposeValueDerived(t *testing.T) {
	got := NormalizeReservationContent(map[string]any{
		"inquiry": map[string]any{
			"stayPurposes": []any{
				map[string]any{"label": "Work Placement"},
				map[string]any{"value": "study", "label": "Study"},
			},
		},
	}, DefaultReservationContent(domain.LocaleEN))

	if got.Inquiry.StayPurposes[0].Value != "work-placement" {
		t.Fatalf("value must derive from label, got %q", got.Inquiry.StayPurposes[0].Value)
	}
	if got.Inquiry.StayPurposes[1].Value != "study" {
		t.Fatalf("explicit value kept, got %q", got.Inquiry.StayPurposes[1].Value)
	}
}

func TestValidateReservation_OrderWithinForm(t *testing.T) {
	c := DefaultReservationContent(domain.LocaleEN)
	c.Form.NameLabel = ""
	c.Form.SubmitLabel = ""
	if msg := ValidateReservationContent(c); msg != "Reservation form name label is required." {
		t.Fatalf("got %q", msg)
	}
}

func TestValidateAmenities_CardRules(t *testing.T) {
	c := DefaultAmenitiesContent(domain.LocaleEN)
	c.Data.Cards = []domain.AmenityCard{{Title: "Sauna", Description: ""}}
	msg := ValidateAmenitiesContent(c)
	if !strings.Contains(msg, "Amenity card 1") {
		t.Fatalf("got %q", msg)
	}
}
