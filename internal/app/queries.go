package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"pansiyon_cms/internal/adapters/observability"
	"pansiyon_cms/internal/content"
	"pansiyon_cms/internal/domain"
)

const (
	seedActor = "system"
	healActor = "system:heal"
)

type QueryService struct {
	repo     domain.ContentRepository
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewQueryService(r domain.ContentRepository, c domain.Cache, ttl time.Duration) *QueryService {
	return &QueryService{repo: r, cache: c, cacheTTL: ttl}
}

func contentCacheKey(key string, locale domain.ContentLocale) string {
	return fmt.Sprintf("content:%s:%s", key, locale)
}

func hotelCacheKey(slug string, locale domain.ContentLocale) string {
	return fmt.Sprintf("hotel:%s:%s", slug, locale)
}

// GetContent serves the normalized document for (key, locale), seeding the
// compiled-in default on first read. Non-English Home reads get the en
// document's sections and room-card media overlaid, and legacy documents are
// healed in place before serving.
func (s *QueryService) GetContent(ctx context.Context, key string, locale domain.ContentLocale) (any, error) {
	if _, ok := pipelines[key]; !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownContentKey, key)
	}

	ck := contentCacheKey(key, locale)
	var cached json.RawMessage
	if ok, _ := s.cache.Get(ctx, ck, &cached); ok {
		return cached, nil
	}

	doc, err := s.loadDocument(ctx, key, locale)
	if err != nil {
		return nil, err
	}

	if key == domain.KeyHome && locale != domain.DefaultLocale {
		home := doc.(domain.HomeContent)
		if healed, changed := healHomeDocument(locale, home); changed {
			home = healed
			observability.ObserveHeal(key, string(locale))
			// write-back is best effort; the healed value is served either way
			if perr := s.persist(ctx, key, locale, home, healActor); perr != nil {
				log.Warn().Err(perr).Str("key", key).Str("locale", string(locale)).Msg("heal write-back failed")
			}
		}
		enDoc, err := s.loadDocument(ctx, key, domain.DefaultLocale)
		if err != nil {
			return nil, err
		}
		doc = content.MergeSharedHomeContent(home, enDoc.(domain.HomeContent))
	}

	_ = s.cache.Set(ctx, ck, doc, int(s.cacheTTL.Seconds()))
	return doc, nil
}

// loadDocument returns the stored document reshaped through the normalizer,
// or seeds and returns the localized default when nothing is stored yet.
// The stored row is the normalizer's input, not its fallback, so per-item
// fixups (offer ids, gallery URL purges) apply to legacy rows on read.
func (s *QueryService) loadDocument(ctx context.Context, key string, locale domain.ContentLocale) (any, error) {
	p := pipelines[key]

	rec, err := s.repo.GetContent(ctx, key, locale)
	if errors.Is(err, domain.ErrNotFound) {
		doc := p.defaultDoc(locale)
		if perr := s.persist(ctx, key, locale, doc, seedActor); perr != nil {
			return nil, perr
		}
		return doc, nil
	}
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if derr := json.Unmarshal(rec.Doc, &raw); derr != nil {
		// a corrupted row should degrade to defaults, not take the page down
		log.Error().Err(derr).Str("key", key).Str("locale", string(locale)).Msg("stored document undecodable, serving default")
		return p.defaultDoc(locale), nil
	}
	return p.normalize(raw, p.defaultDoc(locale)), nil
}

func (s *QueryService) persist(ctx context.Context, key string, locale domain.ContentLocale, doc any, actor string) error {
	b, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return s.repo.UpsertContent(ctx, domain.ContentRecord{
		Key:       key,
		Locale:    locale,
		Doc:       b,
		UpdatedBy: actor,
	})
}

// healHomeDocument applies the one-time legacy fixups for non-English Home
// documents: a hero still carrying the English default copy is replaced with
// the locale's own default hero, and an empty room-card list is backfilled
// with the locale's placeholder cards.
func healHomeDocument(locale domain.ContentLocale, home domain.HomeContent) (domain.HomeContent, bool) {
	changed := false

	enHero := content.DefaultHomeContent(domain.DefaultLocale).Hero
	if home.Hero.TitleTop == enHero.TitleTop &&
		home.Hero.TitleMain == enHero.TitleMain &&
		home.Hero.Subtitle == enHero.Subtitle {
		home.Hero = content.DefaultHomeContent(locale).Hero
		changed = true
	}

	if len(home.Rooms.Cards) == 0 {
		home.Rooms.Cards = content.PlaceholderRoomCards(locale)
		changed = true
	}

	return home, changed
}

// HotelView is the read model for one hotel in one locale.
type HotelView struct {
	Slug          string                    `json:"slug"`
	Active        bool                      `json:"active"`
	Available     bool                      `json:"available"`
	Order         int                       `json:"order"`
	CoverImageURL string                    `json:"coverImageUrl"`
	Locale        domain.ContentLocale      `json:"locale"`
	Content       domain.HotelLocaleContent `json:"content"`
}

func (s *QueryService) GetHotel(ctx context.Context, slug string, locale domain.ContentLocale) (HotelView, error) {
	ck := hotelCacheKey(slug, locale)
	var cached HotelView
	if ok, _ := s.cache.Get(ctx, ck, &cached); ok {
		return cached, nil
	}

	h, err := s.repo.GetHotel(ctx, slug)
	if err != nil {
		return HotelView{}, err
	}

	lc, ok := h.Locales[locale]
	var doc domain.HotelLocaleContent
	if ok {
		raw, merr := docAsMap(lc)
		if merr != nil {
			return HotelView{}, merr
		}
		doc = content.NormalizeHotelLocaleContent(locale, raw, &lc)
	} else {
		doc = content.DefaultHotelLocaleContent(locale)
	}

	view := HotelView{
		Slug:          h.Slug,
		Active:        h.Active,
		Available:     h.Available,
		Order:         h.Order,
		CoverImageURL: h.CoverImageURL,
		Locale:        locale,
		Content:       doc,
	}
	_ = s.cache.Set(ctx, ck, view, int(s.cacheTTL.Seconds()))
	return view, nil
}

func (s *QueryService) ListHotels(ctx context.Context) ([]domain.Hotel, error) {
	return s.repo.ListHotels(ctx)
}
