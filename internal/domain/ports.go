package domain

import (
	"context"
	"encoding/json"
	"time"
)

// ContentRecord is one persisted document per (content key, locale) pair.
// Doc holds the normalized JSON value; writes replace it wholesale.
type ContentRecord struct {
	Key       string          `json:"key"`
	Locale    ContentLocale   `json:"locale"`
	Doc       json.RawMessage `json:"doc"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
	UpdatedBy string          `json:"updatedBy"`
}

type ContentRepository interface {
	// Write paths
	UpsertContent(ctx context.Context, rec ContentRecord) error
	UpsertHotel(ctx context.Context, h Hotel) error

	// Read paths
	GetContent(ctx context.Context, key string, locale ContentLocale) (ContentRecord, error)
	GetHotel(ctx context.Context, slug string) (Hotel, error)
	ListHotels(ctx context.Context) ([]Hotel, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
