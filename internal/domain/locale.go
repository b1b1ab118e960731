package domain

import "fmt"

// ContentLocale is the unit of per-language content scoping.
type ContentLocale string

const (
	LocaleEN ContentLocale = "en"
	LocaleDE ContentLocale = "de"
	LocaleTR ContentLocale = "tr"
)

// DefaultLocale is authoritative for Home section visibility/order and
// room-card media across all locales.
const DefaultLocale = LocaleEN

func Locales() []ContentLocale {
	return []ContentLocale{LocaleEN, LocaleDE, LocaleTR}
}

func ParseLocale(s string) (ContentLocale, error) {
	switch ContentLocale(s) {
	case LocaleEN, LocaleDE, LocaleTR:
		return ContentLocale(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownLocale, s)
}

// Page content keys. Combined with a locale they form the storage lookup key.
const (
	KeyHome        = "page.home"
	KeyServices    = "page.services"
	KeyAmenities   = "page.amenities"
	KeyContact     = "page.contact"
	KeyReservation = "page.reservation"
)

func ContentKeys() []string {
	return []string{KeyHome, KeyServices, KeyAmenities, KeyContact, KeyReservation}
}

func KnownContentKey(key string) bool {
	switch key {
	case KeyHome, KeyServices, KeyAmenities, KeyContact, KeyReservation:
		return true
	}
	return false
}
