package content

import "pansiyon_cms/internal/domain"

// Stock imagery reused by the generated room-card placeholders.
var roomStockImages = []string{
	"/images/rooms/standard.webp",
	"/images/rooms/twin.webp",
	"/images/rooms/studio.webp",
	"/images/rooms/family.webp",
}

// PlaceholderRoomCards generates the per-locale room-card defaults: three
// translated placeholder cards over the same stock images.
func PlaceholderRoomCards(l domain.ContentLocale) []domain.RoomCard {
	return []domain.RoomCard{
		{
			Title: localize(l, "Standard Room", "Standardzimmer", "Standart Oda"),
			Icon:  "fa fa-bed",
			Image: roomStockImages[0],
			Description: localize(l,
				"A bright single room with a work desk and garden view.",
				"Ein helles Einzelzimmer mit Schreibtisch und Gartenblick.",
				"Çalışma masası ve bahçe manzaralı aydınlık tek kişilik oda."),
			Highlights: []string{
				localize(l, "Free Wi-Fi", "Kostenloses WLAN", "Ücretsiz Wi-Fi"),
				localize(l, "Daily cleaning", "Tägliche Reinigung", "Günlük temizlik"),
			},
		},
		{
			Title: localize(l, "Twin Room", "Zweibettzimmer", "İki Yataklı Oda"),
			Icon:  "fa fa-bed",
			Image: roomStockImages[1],
			Description: localize(l,
				"Two comfortable beds, ideal for friends sharing a stay.",
				"Zwei bequeme Betten, ideal für Freunde, die sich ein Zimmer teilen.",
				"Konaklamayı paylaşan arkadaşlar için ideal, iki rahat yatak."),
			Highlights: []string{
				localize(l, "Free Wi-Fi", "Kostenloses WLAN", "Ücretsiz Wi-Fi"),
				localize(l, "Shared balcony", "Gemeinsamer Balkon", "Ortak balkon"),
			},
		},
		{
			Title: localize(l, "Studio", "Studio", "Stüdyo"),
			Icon:  "fa fa-home",
			Image: roomStockImages[2],
			Description: localize(l,
				"A self-contained studio with kitchenette for longer stays.",
				"Ein eigenständiges Studio mit Küchenzeile für längere Aufenthalte.",
				"Uzun konaklamalar için mini mutfaklı bağımsız stüdyo."),
			Highlights: []string{
				localize(l, "Kitchenette", "Küchenzeile", "Mini mutfak"),
				localize(l, "Weekly rates", "Wochenpreise", "Haftalık fiyatlar"),
			},
		},
	}
}

func buildHomeDefault(l domain.ContentLocale) domain.HomeContent {
	sections := make(map[string]domain.SectionSetting, len(domain.HomeSectionKeys))
	for i, key := range domain.HomeSectionKeys {
		sections[key] = domain.SectionSetting{Enabled: true, Order: i}
	}

	return domain.HomeContent{
		Sections: sections,
		Hero: domain.HomeHero{
			TitleTop:  localize(l, "Welcome to", "Willkommen im", "Hoş geldiniz"),
			TitleMain: "Pansiyon Lavanta",
			Subtitle: localize(l,
				"A family-run guest house by the harbour, open all year.",
				"Ein familiengeführtes Gästehaus am Hafen, ganzjährig geöffnet.",
				"Limanın yanında, yıl boyu açık aile işletmesi bir pansiyon."),
			PrimaryCTA: domain.CTA{
				Text: localize(l, "Book a room", "Zimmer buchen", "Oda ayırt"),
				Href: "/reservation",
			},
			SecondaryCTA: domain.CTA{
				Text: localize(l, "Our rooms", "Unsere Zimmer", "Odalarımız"),
				Href: "/rooms",
			},
			Slides: []domain.HeroSlide{
				{Image: "/images/hero/harbour.webp", Position: "center"},
				{Image: "/images/hero/terrace.webp", Position: "center bottom"},
				{Image: "/images/hero/garden.webp", Position: "center"},
			},
			ShowPartners:     true,
			ShowPartnerLogos: true,
			PartnersTitle:    localize(l, "Also find us on", "Sie finden uns auch auf", "Bizi ayrıca şurada bulabilirsiniz"),
			PartnersDescription: localize(l,
				"Book directly for the best rates, or through our partners.",
				"Buchen Sie direkt für die besten Preise oder über unsere Partner.",
				"En iyi fiyatlar için doğrudan ya da iş ortaklarımız üzerinden rezervasyon yapın."),
			Partners: []domain.BookingPartner{
				{
					Name:        "Booking.com",
					Logo:        "/images/partners/booking.svg",
					URL:         "https://www.booking.com",
					Description: localize(l, "Guest rating 9.2", "Gästebewertung 9,2", "Misafir puanı 9,2"),
				},
				{
					Name:        "Airbnb",
					Logo:        "/images/partners/airbnb.svg",
					URL:         "https://www.airbnb.com",
					Description: localize(l, "Superhost since 2019", "Superhost seit 2019", "2019'dan beri Superhost"),
				},
			},
		},
		Rooms: domain.HomeRooms{
			Title:    localize(l, "Rooms & Rates", "Zimmer & Preise", "Odalar ve Fiyatlar"),
			Subtitle: localize(l, "Simple, clean and quiet", "Einfach, sauber und ruhig", "Sade, temiz ve sessiz"),
			Description: localize(l,
				"Every room has its own character; all share the same sea breeze.",
				"Jedes Zimmer hat seinen eigenen Charakter; alle teilen dieselbe Meeresbrise.",
				"Her odanın kendine özgü bir karakteri var; hepsi aynı deniz esintisini paylaşıyor."),
			CTA: domain.CTA{
				Text: localize(l, "Check availability", "Verfügbarkeit prüfen", "Müsaitlik kontrol et"),
				Href: "/reservation",
			},
			AllRoomsCTA: domain.CTA{
				Text: localize(l, "See all rooms", "Alle Zimmer ansehen", "Tüm odaları gör"),
				Href: "/rooms",
			},
			Cards: PlaceholderRoomCards(l),
		},
		Testimonials: domain.HomeTestimonials{
			Background: "/images/testimonials/terrace-evening.webp",
			Badge:      localize(l, "Guest voices", "Gästestimmen", "Misafir yorumları"),
			Title:      localize(l, "What our guests say", "Was unsere Gäste sagen", "Misafirlerimiz ne diyor"),
			Subtitle: localize(l,
				"Most of our guests come back; some never really leave.",
				"Die meisten unserer Gäste kommen wieder; manche gehen nie richtig.",
				"Misafirlerimizin çoğu geri geliyor; bazıları hiç ayrılmıyor."),
			Slides: []domain.TestimonialSlide{
				{Badge: "Booking.com", Text: localize(l,
					"Quiet, spotless and the breakfast is worth the trip alone.",
					"Ruhig, blitzsauber und das Frühstück allein ist die Reise wert.",
					"Sessiz, tertemiz; kahvaltı tek başına yolculuğa değer.")},
				{Badge: "Airbnb", Text: localize(l,
					"Felt like staying with family. We extended twice.",
					"Wie bei der Familie. Wir haben zweimal verlängert.",
					"Aile yanında kalmak gibiydi. İki kez uzattık.")},
			},
		},
		Facilities: domain.HomeFacilities{
			Title:    localize(l, "House & Facilities", "Haus & Ausstattung", "Ev ve Olanaklar"),
			Subtitle: localize(l, "Everything within reach", "Alles in Reichweite", "Her şey elinizin altında"),
			Description: localize(l,
				"Shared kitchen, reading room, laundry and a shaded garden terrace.",
				"Gemeinschaftsküche, Lesezimmer, Wäscherei und eine schattige Gartenterrasse.",
				"Ortak mutfak, okuma odası, çamaşırhane ve gölgeli bahçe terası."),
			Stats: []domain.FacilityStat{
				{Label: localize(l, "Happy guests", "Zufriedene Gäste", "Mutlu misafir"), Suffix: "+"},
				{Label: localize(l, "Rooms", "Zimmer", "Oda"), Suffix: ""},
				{Label: localize(l, "Years open", "Jahre geöffnet", "Yıllık deneyim"), Suffix: "+"},
			},
			GuestCount:     defaultGuestCount,
			RoomCount:      defaultRoomCount,
			YearCount:      defaultYearCount,
			ImagePrimary:   "/images/facilities/kitchen.webp",
			ImageSecondary: "/images/facilities/terrace.webp",
		},
		Gallery: domain.HomeGallery{
			Title:    localize(l, "Gallery", "Galerie", "Galeri"),
			Subtitle: localize(l, "A look around the house", "Ein Blick durchs Haus", "Eve bir bakış"),
			Categories: []domain.GalleryCategory{
				{Key: "rooms", Label: localize(l, "Rooms", "Zimmer", "Odalar")},
				{Key: "dining", Label: localize(l, "Dining", "Essen", "Yemek")},
				{Key: "garden", Label: localize(l, "Garden", "Garten", "Bahçe")},
			},
			Items: []domain.GalleryItem{
				{Image: "/images/gallery/room-standard.webp", Category: "rooms", Alt: localize(l, "Standard room", "Standardzimmer", "Standart oda")},
				{Image: "/images/gallery/breakfast.webp", Category: "dining", Alt: localize(l, "Breakfast table", "Frühstückstisch", "Kahvaltı masası")},
				{Image: "/images/gallery/garden-path.webp", Category: "garden", Alt: localize(l, "Garden path", "Gartenweg", "Bahçe yolu")},
			},
		},
		Offers: domain.HomeOffers{
			Title:    localize(l, "Current Offers", "Aktuelle Angebote", "Güncel Fırsatlar"),
			Subtitle: localize(l, "Stay longer, pay less", "Länger bleiben, weniger zahlen", "Daha uzun kalın, daha az ödeyin"),
			Cards: []domain.OfferCard{
				{
					ID:    "offer-weekly",
					Badge: "-15%",
					Title: localize(l, "Weekly stay", "Wochenaufenthalt", "Haftalık konaklama"),
					Text: localize(l,
						"Seven nights or more, breakfast included.",
						"Ab sieben Nächten, Frühstück inklusive.",
						"Yedi gece ve üzeri, kahvaltı dahil."),
					Image: "/images/offers/weekly.webp",
				},
				{
					ID:    "offer-winter",
					Badge: "-25%",
					Title: localize(l, "Winter season", "Wintersaison", "Kış sezonu"),
					Text: localize(l,
						"November to March, monthly rates for long stays.",
						"November bis März, Monatspreise für Langzeitgäste.",
						"Kasım'dan Mart'a, uzun konaklamalar için aylık fiyatlar."),
					Image: "/images/offers/winter.webp",
				},
			},
		},
		FAQ: domain.HomeFAQ{
			Title:    localize(l, "Frequently Asked Questions", "Häufige Fragen", "Sık Sorulan Sorular"),
			Subtitle: localize(l, "Before you ask", "Bevor Sie fragen", "Sormadan önce"),
			Items: []domain.FAQItem{
				{
					Title: localize(l, "When can I check in?", "Wann kann ich einchecken?", "Giriş saatleri nedir?"),
					Body: localize(l,
						"Check-in is from 14:00; late arrivals by arrangement.",
						"Check-in ab 14:00 Uhr; spätere Ankunft nach Absprache.",
						"Giriş 14:00'ten itibaren; geç varışlar için bizimle görüşün."),
				},
				{
					Title: localize(l, "Is breakfast included?", "Ist Frühstück inklusive?", "Kahvaltı dahil mi?"),
					Body: localize(l,
						"Yes, breakfast is served daily between 08:00 and 10:30.",
						"Ja, Frühstück gibt es täglich zwischen 08:00 und 10:30 Uhr.",
						"Evet, kahvaltı her gün 08:00 ile 10:30 arasında servis edilir."),
				},
				{
					Title: localize(l, "Do you allow pets?", "Sind Haustiere erlaubt?", "Evcil hayvan kabul ediyor musunuz?"),
					Body: localize(l,
						"Small, quiet pets are welcome in the garden rooms.",
						"Kleine, ruhige Haustiere sind in den Gartenzimmern willkommen.",
						"Küçük ve sakin evcil hayvanlar bahçe odalarında misafir edilir."),
				},
			},
		},
		VideoCTA: domain.HomeVideoCTA{
			Title: localize(l, "See the house in motion", "Das Haus in Bewegung", "Evi hareket halinde görün"),
			Text: localize(l,
				"A two-minute walk through the rooms, garden and harbour front.",
				"Ein zweiminütiger Rundgang durch Zimmer, Garten und Hafenfront.",
				"Odalar, bahçe ve liman boyunca iki dakikalık bir tur."),
			VideoURL: "https://www.youtube.com/watch?v=pansiyon-tour",
		},
	}
}
