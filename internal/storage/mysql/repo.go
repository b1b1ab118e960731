package mysql

import (
	"context"
	"database/sql"
	"encoding/json"

	"pansiyon_cms/internal/domain"
)

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func (r *Repo) UpsertContent(ctx context.Context, rec domain.ContentRecord) error {
	_, err := r.db.ExecContext(ctx, upsertContentSQL,
		rec.Key,
		string(rec.Locale),
		string(rec.Doc),
		rec.UpdatedBy,
	)
	return err
}

func (r *Repo) GetContent(ctx context.Context, key string, locale domain.ContentLocale) (domain.ContentRecord, error) {
	row := r.db.QueryRowContext(ctx, getContentSQL, key, string(locale))

	var rec domain.ContentRecord
	var loc string
	var doc []byte
	var updatedBy sql.NullString

	if err := row.Scan(
		&rec.Key,
		&loc,
		&doc,
		&rec.CreatedAt,
		&rec.UpdatedAt,
		&updatedBy,
	); err != nil {
		if err == sql.ErrNoRows {
			return domain.ContentRecord{}, domain.ErrNotFound
		}
		return domain.ContentRecord{}, err
	}

	rec.Locale = domain.ContentLocale(loc)
	rec.Doc = append(json.RawMessage(nil), doc...)
	if updatedBy.Valid {
		rec.UpdatedBy = updatedBy.String
	}
	return rec, nil
}

func (r *Repo) UpsertHotel(ctx context.Context, h domain.Hotel) error {
	locales, err := json.Marshal(h.Locales)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, upsertHotelSQL,
		h.Slug,
		h.Active,
		h.Available,
		h.Order,
		h.CoverImageURL,
		string(locales),
	)
	return err
}

func (r *Repo) GetHotel(ctx context.Context, slug string) (domain.Hotel, error) {
	row := r.db.QueryRowContext(ctx, getHotelSQL, slug)
	h, err := scanHotel(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Hotel{}, domain.ErrNotFound
	}
	return h, err
}

func (r *Repo) ListHotels(ctx context.Context) ([]domain.Hotel, error) {
	rows, err := r.db.QueryContext(ctx, listHotelsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Hotel
	for rows.Next() {
		h, err := scanHotel(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanHotel(scan func(...any) error) (domain.Hotel, error) {
	var h domain.Hotel
	var cover sql.NullString
	var localesJSON []byte

	if err := scan(
		&h.Slug,
		&h.Active,
		&h.Available,
		&h.Order,
		&cover,
		&localesJSON,
		&h.CreatedAt,
		&h.UpdatedAt,
	); err != nil {
		return domain.Hotel{}, err
	}

	if cover.Valid {
		h.CoverImageURL = cover.String
	}
	h.Locales = map[domain.ContentLocale]domain.HotelLocaleContent{}
	if len(localesJSON) > 0 {
		// tolerate bad rows, an empty locale map just falls back to defaults
		_ = json.Unmarshal(localesJSON, &h.Locales)
	}
	return h, nil
}
