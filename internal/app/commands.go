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

// EditorService handles authoring writes. Every save runs the submitted
// document through normalize then validate, so the store only ever holds
// render-ready documents.
type EditorService struct {
	repo  domain.ContentRepository
	cache domain.Cache
}

func NewEditorService(r domain.ContentRepository, c domain.Cache) *EditorService {
	return &EditorService{repo: r, cache: c}
}

// SaveContent normalizes and validates the submitted document for
// (key, locale) and stores it. The fallback for normalization is the
// currently stored document when one exists, otherwise the locale default.
func (s *EditorService) SaveContent(ctx context.Context, key string, locale domain.ContentLocale, raw map[string]any, actor string) error {
	p, ok := pipelines[key]
	if !ok {
		return fmt.Errorf("%w: %q", domain.ErrUnknownContentKey, key)
	}

	fallback := p.defaultDoc(locale)
	if rec, err := s.repo.GetContent(ctx, key, locale); err == nil {
		if stored, derr := p.decode(rec.Doc); derr == nil {
			fallback = stored
		}
	} else if !errors.Is(err, domain.ErrNotFound) {
		return err
	}

	doc := p.normalize(raw, fallback)
	if msg := p.validate(doc); msg != "" {
		observability.ObserveValidationRejection(key, string(locale))
		return &domain.ValidationError{Message: msg}
	}

	b, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	if err := s.repo.UpsertContent(ctx, domain.ContentRecord{
		Key:       key,
		Locale:    locale,
		Doc:       b,
		UpdatedBy: actor,
	}); err != nil {
		return err
	}

	s.invalidateContent(ctx, key, locale)
	log.Info().Str("key", key).Str("locale", string(locale)).Str("actor", actor).Msg("content saved")
	return nil
}

// invalidateContent drops the cached reads made stale by a save. Saving the
// English Home document invalidates every locale, since non-English Home
// reads overlay the English sections and room-card media.
func (s *EditorService) invalidateContent(ctx context.Context, key string, locale domain.ContentLocale) {
	if key == domain.KeyHome && locale == domain.DefaultLocale {
		for _, l := range domain.Locales() {
			_ = s.cache.Del(ctx, contentCacheKey(key, l))
		}
		return
	}
	_ = s.cache.Del(ctx, contentCacheKey(key, locale))
}

// SaveHotelLocale upserts one locale's content for a hotel, creating the
// hotel record on first save.
func (s *EditorService) SaveHotelLocale(ctx context.Context, slug string, locale domain.ContentLocale, raw map[string]any, actor string) error {
	h, err := s.repo.GetHotel(ctx, slug)
	if errors.Is(err, domain.ErrNotFound) {
		h = domain.Hotel{
			Slug:      slug,
			Active:    true,
			Available: true,
			Locales:   map[domain.ContentLocale]domain.HotelLocaleContent{},
			CreatedAt: time.Now().UTC(),
		}
	} else if err != nil {
		return err
	}
	if h.Locales == nil {
		h.Locales = map[domain.ContentLocale]domain.HotelLocaleContent{}
	}

	var fallback *domain.HotelLocaleContent
	if existing, ok := h.Locales[locale]; ok {
		fallback = &existing
	}
	doc := content.NormalizeHotelLocaleContent(locale, raw, fallback)
	if msg := content.ValidateHotelLocaleContent(doc); msg != "" {
		observability.ObserveValidationRejection("hotel:"+slug, string(locale))
		return &domain.ValidationError{Message: msg}
	}

	h.Locales[locale] = doc
	h.UpdatedAt = time.Now().UTC()
	if err := s.repo.UpsertHotel(ctx, h); err != nil {
		return err
	}

	_ = s.cache.Del(ctx, hotelCacheKey(slug, locale))
	log.Info().Str("slug", slug).Str("locale", string(locale)).Str("actor", actor).Msg("hotel locale saved")
	return nil
}

// RenormalizeContent re-runs the stored document for (key, locale) through
// the current normalizer and writes it back when the output differs. It
// returns true when a rewrite happened. Rows that were never seeded are
// skipped.
func (s *EditorService) RenormalizeContent(ctx context.Context, key string, locale domain.ContentLocale) (bool, error) {
	p, ok := pipelines[key]
	if !ok {
		return false, fmt.Errorf("%w: %q", domain.ErrUnknownContentKey, key)
	}

	rec, err := s.repo.GetContent(ctx, key, locale)
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	var raw map[string]any
	if derr := json.Unmarshal(rec.Doc, &raw); derr != nil {
		return false, derr
	}
	doc := p.normalize(raw, p.defaultDoc(locale))
	if key == domain.KeyHome && locale != domain.DefaultLocale {
		if healed, changed := healHomeDocument(locale, doc.(domain.HomeContent)); changed {
			doc = healed
		}
	}

	b, err := json.Marshal(doc)
	if err != nil {
		return false, err
	}
	if string(b) == string(rec.Doc) {
		return false, nil
	}

	if err := s.repo.UpsertContent(ctx, domain.ContentRecord{
		Key:       key,
		Locale:    locale,
		Doc:       b,
		UpdatedBy: healActor,
	}); err != nil {
		return false, err
	}
	s.invalidateContent(ctx, key, locale)
	observability.ObserveHeal(key, string(locale))
	return true, nil
}

// RenormalizeHotel re-runs every stored locale of one hotel through the
// current normalizer, writing the hotel back when anything changed.
func (s *EditorService) RenormalizeHotel(ctx context.Context, slug string) (bool, error) {
	h, err := s.repo.GetHotel(ctx, slug)
	if err != nil {
		return false, err
	}

	changed := false
	for locale, lc := range h.Locales {
		lc := lc
		raw, err := docAsMap(lc)
		if err != nil {
			return false, err
		}
		next := content.NormalizeHotelLocaleContent(locale, raw, &lc)
		was, err := json.Marshal(lc)
		if err != nil {
			return false, err
		}
		now, err := json.Marshal(next)
		if err != nil {
			return false, err
		}
		if string(was) != string(now) {
			h.Locales[locale] = next
			changed = true
		}
	}
	if !changed {
		return false, nil
	}

	h.UpdatedAt = time.Now().UTC()
	if err := s.repo.UpsertHotel(ctx, h); err != nil {
		return false, err
	}
	for _, locale := range domain.Locales() {
		_ = s.cache.Del(ctx, hotelCacheKey(slug, locale))
	}
	observability.ObserveHeal("hotel:"+slug, "all")
	return true, nil
}
