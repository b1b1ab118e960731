package domain

import "time"

// Hotel gallery image categories. Unknown input values parse to
// GalleryCategoryOther.
const (
	GalleryCategoryRooms      = "rooms"
	GalleryCategoryDining     = "dining"
	GalleryCategoryFacilities = "facilities"
	GalleryCategoryOther      = "other"
)

type HotelFact struct {
	Text string `json:"text"`
	Icon string `json:"icon"`
}

type HotelGalleryImage struct {
	ID           string `json:"id"`
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnailUrl"`
	Category     string `json:"category"`
	Alt          string `json:"alt"`
	SortOrder    int    `json:"sortOrder"`
}

type GalleryMetaSection struct {
	Title    string   `json:"title"`
	Features []string `json:"features"`
}

// GalleryMeta describes one gallery image. Legacy documents stored a single
// {section, features} pair; normalization upgrades that to Sections.
type GalleryMeta struct {
	Sections []GalleryMetaSection `json:"sections"`
}

type HotelLocaleContent struct {
	Name             string                 `json:"name"`
	Location         string                 `json:"location"`
	ShortDescription string                 `json:"shortDescription"`
	Facts            []HotelFact            `json:"facts"`
	HeroTitle        string                 `json:"heroTitle"`
	HeroSubtitle     string                 `json:"heroSubtitle"`
	Description      []string               `json:"description"`
	AmenitiesTitle   string                 `json:"amenitiesTitle"`
	Highlights       []string               `json:"highlights"`
	Gallery          []HotelGalleryImage    `json:"gallery"`
	GalleryMeta      map[string]GalleryMeta `json:"galleryMeta"`
}

// Hotel is one record per hotel with the per-locale content embedded.
type Hotel struct {
	Slug          string                               `json:"slug"`
	Active        bool                                 `json:"active"`
	Available     bool                                 `json:"available"`
	Order         int                                  `json:"order"`
	CoverImageURL string                               `json:"coverImageUrl"`
	Locales       map[ContentLocale]HotelLocaleContent `json:"locales"`
	CreatedAt     time.Time                            `json:"createdAt"`
	UpdatedAt     time.Time                            `json:"updatedAt"`
}
