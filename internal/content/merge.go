package content

import "pansiyon_cms/internal/domain"

// MergeRoomCardsWithSharedMedia overlays the en cards' icon and image onto
// the localized cards by position. Copy stays localized; media is shared.
// Cards beyond the shared list keep their own media, then the default icon.
// This is a read-time overlay, never written back to the localized document.
func MergeRoomCardsWithSharedMedia(cards, shared []domain.RoomCard) []domain.RoomCard {
	out := make([]domain.RoomCard, len(cards))
	for i, c := range cards {
		if i < len(shared) {
			if shared[i].Icon != "" {
				c.Icon = shared[i].Icon
			}
			if shared[i].Image != "" {
				c.Image = shared[i].Image
			}
		}
		if c.Icon == "" {
			c.Icon = DefaultIcon
		}
		out[i] = c
	}
	return out
}

// MergeSharedHomeContent applies the en document's locale-independent parts
// to a non-English document: the sections map wholesale, and room-card media
// positionally. The write path still stores each locale's own sections; only
// reads are overridden.
func MergeSharedHomeContent(doc, en domain.HomeContent) domain.HomeContent {
	sections := make(map[string]domain.SectionSetting, len(en.Sections))
	for k, v := range en.Sections {
		sections[k] = v
	}
	doc.Sections = sections
	doc.Rooms.Cards = MergeRoomCardsWithSharedMedia(doc.Rooms.Cards, en.Rooms.Cards)
	return doc
}
