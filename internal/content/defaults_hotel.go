package content

import "pansiyon_cms/internal/domain"

func buildHotelLocaleDefault(l domain.ContentLocale) domain.HotelLocaleContent {
	return domain.HotelLocaleContent{
		Name:     "Pansiyon Lavanta",
		Location: localize(l, "Ayvalık, Aegean coast", "Ayvalık, Ägäisküste", "Ayvalık, Ege kıyısı"),
		ShortDescription: localize(l,
			"A quiet, family-run guest house two streets from the harbour.",
			"Ein ruhiges, familiengeführtes Gästehaus zwei Straßen vom Hafen.",
			"Limana iki sokak mesafede, sessiz, aile işletmesi bir pansiyon."),
		Facts: []domain.HotelFact{
			{Text: localize(l, "Free Wi-Fi", "Kostenloses WLAN", "Ücretsiz Wi-Fi"), Icon: "fa fa-wifi"},
			{Text: localize(l, "Breakfast included", "Frühstück inklusive", "Kahvaltı dahil"), Icon: "fa fa-coffee"},
			{Text: localize(l, "5 min to the beach", "5 Min. zum Strand", "Plaja 5 dakika"), Icon: "fa fa-map-marker"},
		},
		HeroTitle: localize(l, "Your room by the harbour", "Ihr Zimmer am Hafen", "Limanın yanındaki odanız"),
		HeroSubtitle: localize(l,
			"Open all year, with rooms for a night or a season.",
			"Ganzjährig geöffnet, mit Zimmern für eine Nacht oder eine Saison.",
			"Yıl boyu açık; bir gecelik ya da bir sezonluk odalar."),
		Description: []string{
			localize(l,
				"The house has been in the family for three generations.",
				"Das Haus ist seit drei Generationen in Familienbesitz.",
				"Ev üç kuşaktır ailemizde."),
			localize(l,
				"Breakfast is served in the garden whenever the weather allows.",
				"Das Frühstück wird bei gutem Wetter im Garten serviert.",
				"Hava elverdiğinde kahvaltı bahçede servis edilir."),
		},
		AmenitiesTitle: localize(l, "What the house offers", "Was das Haus bietet", "Evin sundukları"),
		Highlights: []string{
			localize(l, "Garden terrace", "Gartenterrasse", "Bahçe terası"),
			localize(l, "Shared kitchen", "Gemeinschaftsküche", "Ortak mutfak"),
			localize(l, "Bicycle shed", "Fahrradschuppen", "Bisiklet barakası"),
		},
		Gallery:     []domain.HotelGalleryImage{},
		GalleryMeta: map[string]domain.GalleryMeta{},
	}
}
