package mysql

const upsertContentSQL = `
INSERT INTO content_documents
  (content_key, locale, doc, updated_by)
VALUES
  (?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  doc        = VALUES(doc),
  updated_by = VALUES(updated_by),
  updated_at = CURRENT_TIMESTAMP
`

const upsertHotelSQL = `
INSERT INTO hotels
  (slug, active, available, sort_order, cover_image_url, locales)
VALUES
  (?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  active          = VALUES(active),
  available       = VALUES(available),
  sort_order      = VALUES(sort_order),
  cover_image_url = VALUES(cover_image_url),
  locales         = VALUES(locales),
  updated_at      = CURRENT_TIMESTAMP
`

// -----------------------------------------------------------------------------
// READ QUERIES
// -----------------------------------------------------------------------------

const getContentSQL = `
SELECT
  content_key,
  locale,
  doc,
  created_at,
  updated_at,
  updated_by
FROM content_documents
WHERE content_key = ? AND locale = ?
`

const getHotelSQL = `
SELECT
  slug,
  active,
  available,
  sort_order,
  cover_image_url,
  locales,
  created_at,
  updated_at
FROM hotels
WHERE slug = ?
`

const listHotelsSQL = `
SELECT
  slug,
  active,
  available,
  sort_order,
  cover_image_url,
  locales,
  created_at,
  updated_at
FROM hotels
ORDER BY sort_order, slug
`
