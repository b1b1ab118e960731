package content

import (
	"encoding/json"
	"sync"

	"pansiyon_cms/internal/domain"
)

// The default store keeps one compiled-in document per content type and
// locale. Building a default is a pure function of the locale, so the cache
// is populated idempotently; callers always receive a deep copy.

var (
	defaultsMu    sync.RWMutex
	defaultsCache = map[string][]byte{}
)

func cachedDefault[T any](key string, locale domain.ContentLocale, build func(domain.ContentLocale) T) T {
	ck := key + ":" + string(locale)

	defaultsMu.RLock()
	raw, ok := defaultsCache[ck]
	defaultsMu.RUnlock()

	if !ok {
		b, err := json.Marshal(build(locale))
		if err != nil {
			// defaults are compiled-in values; a marshal failure is a
			// programming defect
			panic("content: marshal default for " + ck + ": " + err.Error())
		}
		defaultsMu.Lock()
		defaultsCache[ck] = b
		defaultsMu.Unlock()
		raw = b
	}

	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		panic("content: unmarshal default for " + ck + ": " + err.Error())
	}
	return out
}

// localize picks the string for the locale; en is the base.
func localize(l domain.ContentLocale, en, de, tr string) string {
	switch l {
	case domain.LocaleDE:
		return de
	case domain.LocaleTR:
		return tr
	}
	return en
}

func DefaultHomeContent(l domain.ContentLocale) domain.HomeContent {
	return cachedDefault(domain.KeyHome, l, buildHomeDefault)
}

func DefaultServicesContent(l domain.ContentLocale) domain.ServicesContent {
	return cachedDefault(domain.KeyServices, l, buildServicesDefault)
}

func DefaultAmenitiesContent(l domain.ContentLocale) domain.AmenitiesContent {
	return cachedDefault(domain.KeyAmenities, l, buildAmenitiesDefault)
}

func DefaultContactContent(l domain.ContentLocale) domain.ContactContent {
	return cachedDefault(domain.KeyContact, l, buildContactDefault)
}

func DefaultReservationContent(l domain.ContentLocale) domain.ReservationContent {
	return cachedDefault(domain.KeyReservation, l, buildReservationDefault)
}

func DefaultHotelLocaleContent(l domain.ContentLocale) domain.HotelLocaleContent {
	return cachedDefault("hotel.locale", l, buildHotelLocaleDefault)
}
