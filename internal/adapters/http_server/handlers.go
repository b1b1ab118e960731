package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"pansiyon_cms/internal/app"
	"pansiyon_cms/internal/domain"
)

type Handlers struct {
	Q *app.QueryService
	E *app.EditorService
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/v1/content/{key}", h.getContent)
	s.mux.Put("/v1/content/{key}", h.putContent)
	s.mux.Get("/v1/hotels", h.listHotels)
	s.mux.Get("/v1/hotels/{slug}", h.getHotel)
	s.mux.Put("/v1/hotels/{slug}/locales/{locale}", h.putHotelLocale)
}

// selectLocale resolves the response locale from the ?locale query param,
// then Accept-Language, then the site default.
func selectLocale(r *http.Request) (domain.ContentLocale, error) {
	if q := r.URL.Query().Get("locale"); q != "" {
		return domain.ParseLocale(q)
	}
	al := strings.ToLower(r.Header.Get("Accept-Language"))
	if strings.HasPrefix(al, "de") {
		return domain.LocaleDE, nil
	}
	if strings.HasPrefix(al, "tr") {
		return domain.LocaleTR, nil
	}
	return domain.DefaultLocale, nil
}

func actorFrom(r *http.Request) string {
	if a := r.Header.Get("X-Editor"); a != "" {
		return a
	}
	return "editor"
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		// Log but don't fail the whole response; return empty ETag and best-effort body.
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

func writeJSON(w http.ResponseWriter, r *http.Request, locale domain.ContentLocale, v any) {
	etag, body := calcETagAndBody(v)
	// If client already has this version, short-circuit.
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag) // include ETag on 304
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	if locale != "" {
		w.Header().Set("Content-Language", string(locale))
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write response body")
	}
}

func (h *Handlers) getContent(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	locale, err := selectLocale(r)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid locale", err.Error())
		return
	}

	doc, err := h.Q.GetContent(r.Context(), key, locale)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownContentKey) {
			writeProblem(w, http.StatusNotFound, "Not Found", "unknown content key")
			return
		}
		log.Error().Err(err).Str("key", key).Msg("get content failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
		return
	}
	writeJSON(w, r, locale, doc)
}

type putContentBody struct {
	Locale  string         `json:"locale"`
	Content map[string]any `json:"content"`
}

func (h *Handlers) putContent(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	var body putContentBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid body", "body must be JSON with locale and content")
		return
	}
	locale, err := domain.ParseLocale(body.Locale)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid locale", err.Error())
		return
	}
	if body.Content == nil {
		writeProblem(w, http.StatusBadRequest, "Invalid body", "content is required")
		return
	}

	err = h.E.SaveContent(r.Context(), key, locale, body.Content, actorFrom(r))
	var verr *domain.ValidationError
	switch {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case errors.As(err, &verr):
		writeProblem(w, http.StatusBadRequest, "Validation failed", verr.Message)
	case errors.Is(err, domain.ErrUnknownContentKey):
		writeProblem(w, http.StatusNotFound, "Not Found", "unknown content key")
	default:
		log.Error().Err(err).Str("key", key).Msg("save content failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
	}
}

func (h *Handlers) listHotels(w http.ResponseWriter, r *http.Request) {
	hotels, err := h.Q.ListHotels(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("list hotels failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
		return
	}
	writeJSON(w, r, "", hotels)
}

func (h *Handlers) getHotel(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	locale, err := selectLocale(r)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid locale", err.Error())
		return
	}

	view, err := h.Q.GetHotel(r.Context(), slug, locale)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeProblem(w, http.StatusNotFound, "Not Found", "hotel not found")
			return
		}
		log.Error().Err(err).Str("slug", slug).Msg("get hotel failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
		return
	}
	writeJSON(w, r, locale, view)
}

func (h *Handlers) putHotelLocale(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	locale, err := domain.ParseLocale(chi.URLParam(r, "locale"))
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid locale", err.Error())
		return
	}

	var raw map[string]any
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid body", "body must be a JSON object")
		return
	}

	err = h.E.SaveHotelLocale(r.Context(), slug, locale, raw, actorFrom(r))
	var verr *domain.ValidationError
	switch {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case errors.As(err, &verr):
		writeProblem(w, http.StatusBadRequest, "Validation failed", verr.Message)
	default:
		log.Error().Err(err).Str("slug", slug).Msg("save hotel locale failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
	}
}
