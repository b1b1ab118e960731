package content

import "pansiyon_cms/internal/domain"

func buildServicesDefault(l domain.ContentLocale) domain.ServicesContent {
	return domain.ServicesContent{
		Hero: domain.PageHero{
			Subtitle:   localize(l, "What we offer", "Was wir bieten", "Neler sunuyoruz"),
			Title:      localize(l, "Services", "Leistungen", "Hizmetler"),
			Breadcrumb: localize(l, "Home / Services", "Start / Leistungen", "Ana sayfa / Hizmetler"),
			Background: "/images/heroes/services.webp",
		},
		Content: domain.ServicesBody{
			Intro: localize(l,
				"From airport pickup to weekly laundry, the small things are taken care of.",
				"Vom Flughafentransfer bis zur wöchentlichen Wäsche, die kleinen Dinge sind erledigt.",
				"Havalimanı transferinden haftalık çamaşıra, küçük şeyler bizden."),
			CTAPrimary:   localize(l, "Ask about a service", "Nach einer Leistung fragen", "Bir hizmet hakkında sorun"),
			CTASecondary: localize(l, "See the rooms", "Zimmer ansehen", "Odaları görün"),
			Stats: []domain.ServiceStat{
				{Label: localize(l, "Airport transfers", "Flughafentransfers", "Havalimanı transferi"), Value: "24/7", Note: localize(l, "on request", "auf Anfrage", "talep üzerine")},
				{Label: localize(l, "Laundry days", "Waschtage", "Çamaşır günleri"), Value: "3", Note: localize(l, "per week", "pro Woche", "haftada")},
				{Label: localize(l, "Bike rentals", "Fahrradverleih", "Bisiklet kiralama"), Value: "12", Note: localize(l, "bikes available", "Räder verfügbar", "bisiklet mevcut")},
			},
			StatsImage: "/images/services/desk.webp",
			Essentials: localize(l,
				"Fresh linen, towels and drinking water are included in every stay.",
				"Frische Bettwäsche, Handtücher und Trinkwasser sind bei jedem Aufenthalt inklusive.",
				"Temiz nevresim, havlu ve içme suyu her konaklamaya dahildir."),
			Highlights: []domain.ServiceHighlight{
				{
					Icon:  "fa fa-plane",
					Title: localize(l, "Airport pickup", "Flughafenabholung", "Havalimanı karşılama"),
					Description: localize(l,
						"We meet you at arrivals, day or night.",
						"Wir holen Sie am Ankunftsterminal ab, Tag und Nacht.",
						"Gece gündüz, sizi gelen yolcu kapısında karşılarız."),
				},
				{
					Icon:  "fa fa-cutlery",
					Title: localize(l, "Home cooking", "Hausmannskost", "Ev yemeği"),
					Description: localize(l,
						"Dinner on the terrace three evenings a week.",
						"Abendessen auf der Terrasse an drei Abenden pro Woche.",
						"Haftada üç akşam terasta akşam yemeği."),
				},
				{
					Icon:  "fa fa-bicycle",
					Title: localize(l, "Bikes & maps", "Räder & Karten", "Bisiklet ve haritalar"),
					Description: localize(l,
						"Free city bikes and walking maps at reception.",
						"Kostenlose Stadträder und Wanderkarten an der Rezeption.",
						"Resepsiyonda ücretsiz şehir bisikletleri ve yürüyüş haritaları."),
				},
			},
			Support: localize(l,
				"Need something we have not thought of? Ask at the front desk.",
				"Brauchen Sie etwas, woran wir nicht gedacht haben? Fragen Sie an der Rezeption.",
				"Aklımıza gelmeyen bir şey mi lazım? Resepsiyona sorun."),
			CTAStart: localize(l, "Plan your stay", "Aufenthalt planen", "Konaklamanızı planlayın"),
			SupportList: []string{
				localize(l, "Luggage storage", "Gepäckaufbewahrung", "Bagaj saklama"),
				localize(l, "Early breakfast", "Frühes Frühstück", "Erken kahvaltı"),
				localize(l, "Ferry tickets", "Fährtickets", "Feribot biletleri"),
			},
		},
	}
}

func buildAmenitiesDefault(l domain.ContentLocale) domain.AmenitiesContent {
	return domain.AmenitiesContent{
		Hero: domain.PageHero{
			Subtitle:   localize(l, "Around the house", "Rund ums Haus", "Evin çevresinde"),
			Title:      localize(l, "Amenities", "Ausstattung", "Olanaklar"),
			Breadcrumb: localize(l, "Home / Amenities", "Start / Ausstattung", "Ana sayfa / Olanaklar"),
			Background: "/images/heroes/amenities.webp",
		},
		Content: domain.AmenitiesBody{
			LayoutTitle: localize(l, "Choose how you stay", "Wählen Sie, wie Sie wohnen", "Nasıl konaklayacağınızı seçin"),
			LayoutOptions: []domain.AmenityOption{
				{
					Title: localize(l, "Garden wing", "Gartenflügel", "Bahçe kanadı"),
					Icon:  "fa fa-tree",
					Description: localize(l,
						"Ground-floor rooms opening onto the garden.",
						"Zimmer im Erdgeschoss mit Zugang zum Garten.",
						"Bahçeye açılan zemin kat odaları."),
					Highlights: []string{
						localize(l, "Pet friendly", "Haustierfreundlich", "Evcil hayvan dostu"),
						localize(l, "Step-free access", "Stufenloser Zugang", "Basamaksız erişim"),
					},
				},
				{
					Title: localize(l, "Harbour wing", "Hafenflügel", "Liman kanadı"),
					Icon:  "fa fa-anchor",
					Description: localize(l,
						"Upper rooms with a view over the fishing harbour.",
						"Obere Zimmer mit Blick auf den Fischereihafen.",
						"Balıkçı limanına bakan üst kat odaları."),
					Highlights: []string{
						localize(l, "Sea view", "Meerblick", "Deniz manzarası"),
						localize(l, "Private balconies", "Eigene Balkone", "Özel balkonlar"),
					},
				},
			},
			AmenitiesLabel: localize(l, "All amenities", "Alle Annehmlichkeiten", "Tüm olanaklar"),
			ToggleLabel:    localize(l, "Show list", "Liste anzeigen", "Listeyi göster"),
			ViewLabel:      localize(l, "View details", "Details ansehen", "Detayları gör"),
		},
		Data: domain.AmenitiesData{
			Cards: []domain.AmenityCard{
				{
					Title: localize(l, "Shared kitchen", "Gemeinschaftsküche", "Ortak mutfak"),
					Icon:  "fa fa-cutlery",
					Image: "/images/amenities/kitchen.webp",
					Description: localize(l,
						"Fully equipped, open around the clock.",
						"Voll ausgestattet, rund um die Uhr geöffnet.",
						"Tam donanımlı, günün her saati açık."),
					Highlights: []string{
						localize(l, "Two ovens", "Zwei Backöfen", "İki fırın"),
						localize(l, "Labelled guest shelves", "Beschriftete Gästeregale", "Etiketli misafir rafları"),
					},
				},
				{
					Title: localize(l, "Reading room", "Lesezimmer", "Okuma odası"),
					Icon:  "fa fa-book",
					Image: "/images/amenities/reading-room.webp",
					Description: localize(l,
						"Quiet corner with a lending library in three languages.",
						"Ruhige Ecke mit Leihbibliothek in drei Sprachen.",
						"Üç dilde ödünç kitaplığı olan sessiz köşe."),
					Highlights: []string{
						localize(l, "No phones", "Keine Telefone", "Telefonsuz"),
						localize(l, "Board games", "Brettspiele", "Kutu oyunları"),
					},
				},
				{
					Title: localize(l, "Laundry", "Wäscherei", "Çamaşırhane"),
					Icon:  "fa fa-refresh",
					Image: "/images/amenities/laundry.webp",
					Description: localize(l,
						"Washers, dryers and a sunny drying line.",
						"Waschmaschinen, Trockner und eine sonnige Wäscheleine.",
						"Çamaşır ve kurutma makineleri, güneşli bir kurutma ipi."),
					Highlights: []string{
						localize(l, "Tokens at reception", "Marken an der Rezeption", "Jetonlar resepsiyonda"),
					},
				},
			},
			OverviewItems: []string{
				localize(l, "Free Wi-Fi throughout", "Kostenloses WLAN im ganzen Haus", "Her yerde ücretsiz Wi-Fi"),
				localize(l, "Luggage room", "Gepäckraum", "Bagaj odası"),
				localize(l, "Garden terrace", "Gartenterrasse", "Bahçe terası"),
				localize(l, "Bicycle shed", "Fahrradschuppen", "Bisiklet barakası"),
				localize(l, "Tea and coffee corner", "Tee- und Kaffee-Ecke", "Çay ve kahve köşesi"),
			},
		},
	}
}

func buildContactDefault(l domain.ContentLocale) domain.ContactContent {
	return domain.ContactContent{
		Hero: domain.PageHero{
			Subtitle:   localize(l, "We answer quickly", "Wir antworten schnell", "Hızlı yanıt veririz"),
			Title:      localize(l, "Contact", "Kontakt", "İletişim"),
			Breadcrumb: localize(l, "Home / Contact", "Start / Kontakt", "Ana sayfa / İletişim"),
			Background: "/images/heroes/contact.webp",
		},
		Details: domain.ContactDetails{
			Title: localize(l, "Find us", "So erreichen Sie uns", "Bize ulaşın"),
			Items: []domain.ContactItem{
				{Icon: "fa fa-map-marker", Title: localize(l, "Address", "Adresse", "Adres"), Value: "Liman Caddesi 14, Ayvalık"},
				{Icon: "fa fa-phone", Title: localize(l, "Phone", "Telefon", "Telefon"), Value: "+90 266 312 44 55"},
				{Icon: "fa fa-envelope", Title: localize(l, "Email", "E-Mail", "E-posta"), Value: "stay@pansiyonlavanta.example"},
			},
			Socials: []domain.SocialLink{
				{Icon: "fa fa-instagram", Label: "Instagram", URL: "https://instagram.com/pansiyonlavanta"},
				{Icon: "fa fa-facebook", Label: "Facebook", URL: "https://facebook.com/pansiyonlavanta"},
			},
		},
		Form: domain.ContactForm{
			Action:             "/api/contact",
			NameLabel:          localize(l, "Your name", "Ihr Name", "Adınız"),
			NamePlaceholder:    localize(l, "Full name", "Vollständiger Name", "Ad soyad"),
			EmailLabel:         localize(l, "Email", "E-Mail", "E-posta"),
			EmailPlaceholder:   "name@example.com",
			PhoneLabel:         localize(l, "Phone", "Telefon", "Telefon"),
			PhonePlaceholder:   "+90",
			MessageLabel:       localize(l, "Message", "Nachricht", "Mesaj"),
			MessagePlaceholder: localize(l, "How can we help?", "Wie können wir helfen?", "Nasıl yardımcı olabiliriz?"),
			SubmitLabel:        localize(l, "Send message", "Nachricht senden", "Mesaj gönder"),
			SuccessMessage: localize(l,
				"Thank you, we usually reply within a day.",
				"Danke, wir antworten in der Regel innerhalb eines Tages.",
				"Teşekkürler, genellikle bir gün içinde yanıt veririz."),
			ErrorMessage: localize(l,
				"Something went wrong, please try again or call us.",
				"Etwas ist schiefgelaufen, bitte erneut versuchen oder anrufen.",
				"Bir şeyler ters gitti, lütfen tekrar deneyin ya da bizi arayın."),
		},
	}
}

func buildReservationDefault(l domain.ContentLocale) domain.ReservationContent {
	return domain.ReservationContent{
		Hero: domain.PageHero{
			Subtitle:   localize(l, "Plan your stay", "Aufenthalt planen", "Konaklamanızı planlayın"),
			Title:      localize(l, "Reservation", "Reservierung", "Rezervasyon"),
			Breadcrumb: localize(l, "Home / Reservation", "Start / Reservierung", "Ana sayfa / Rezervasyon"),
			Background: "/images/heroes/reservation.webp",
		},
		Crumb: localize(l, "Reservation", "Reservierung", "Rezervasyon"),
		ShortStay: domain.ReservationShortStay{
			Title: localize(l, "Short stays", "Kurzaufenthalte", "Kısa konaklama"),
			Text: localize(l,
				"A night or a week, pick your dates and we confirm within hours.",
				"Eine Nacht oder eine Woche, wählen Sie Ihre Daten und wir bestätigen innerhalb weniger Stunden.",
				"Bir gece ya da bir hafta, tarihlerinizi seçin, birkaç saat içinde onaylayalım."),
			CTA: domain.CTA{
				Text: localize(l, "Check dates", "Termine prüfen", "Tarihleri kontrol et"),
				Href: "/reservation#form",
			},
		},
		Form: domain.ReservationForm{
			Action:        "/api/reservation",
			NameLabel:     localize(l, "Name", "Name", "Ad"),
			EmailLabel:    localize(l, "Email", "E-Mail", "E-posta"),
			PhoneLabel:    localize(l, "Phone", "Telefon", "Telefon"),
			CheckInLabel:  localize(l, "Check-in", "Anreise", "Giriş"),
			CheckOutLabel: localize(l, "Check-out", "Abreise", "Çıkış"),
			GuestsLabel:   localize(l, "Guests", "Gäste", "Misafir sayısı"),
			RoomTypeLabel: localize(l, "Room type", "Zimmertyp", "Oda tipi"),
			DurationLabel: localize(l, "Duration", "Dauer", "Süre"),
			SubmitLabel:   localize(l, "Request booking", "Buchung anfragen", "Rezervasyon iste"),
			GuestOptions:  []string{"1", "2", "3", "4"},
			RoomTypeOptions: []string{
				localize(l, "Standard", "Standard", "Standart"),
				localize(l, "Twin", "Zweibett", "İki yataklı"),
				localize(l, "Studio", "Studio", "Stüdyo"),
			},
			DurationOptions: []string{
				localize(l, "1-3 nights", "1-3 Nächte", "1-3 gece"),
				localize(l, "4-7 nights", "4-7 Nächte", "4-7 gece"),
				localize(l, "More than a week", "Mehr als eine Woche", "Bir haftadan uzun"),
			},
		},
		LongStay: domain.ReservationLongStay{
			Title: localize(l, "Staying longer?", "Bleiben Sie länger?", "Daha uzun mu kalacaksınız?"),
			Text: localize(l,
				"Monthly rates for students, remote workers and winter guests.",
				"Monatspreise für Studierende, Remote-Arbeitende und Wintergäste.",
				"Öğrenciler, uzaktan çalışanlar ve kış misafirleri için aylık fiyatlar."),
			Bullets: []string{
				localize(l, "Discounted monthly rates", "Vergünstigte Monatspreise", "İndirimli aylık fiyatlar"),
				localize(l, "Weekly cleaning included", "Wöchentliche Reinigung inklusive", "Haftalık temizlik dahil"),
				localize(l, "Desk and fast Wi-Fi", "Schreibtisch und schnelles WLAN", "Çalışma masası ve hızlı Wi-Fi"),
			},
			PrimaryCTA: domain.CTA{
				Text: localize(l, "Ask for a quote", "Angebot anfragen", "Teklif isteyin"),
				Href: "/reservation#inquiry",
			},
			SecondaryCTA: domain.CTA{
				Text: localize(l, "Read house rules", "Hausordnung lesen", "Ev kurallarını okuyun"),
				Href: "/house-rules",
			},
		},
		Help: domain.ReservationHelp{
			Title: localize(l, "Need help booking?", "Hilfe bei der Buchung?", "Rezervasyonda yardım mı lazım?"),
			Text: localize(l,
				"Call or write, a person answers, not a machine.",
				"Rufen Sie an oder schreiben Sie, es antwortet ein Mensch, keine Maschine.",
				"Arayın ya da yazın; makine değil, bir insan yanıtlar."),
			Contacts: []domain.HelpContact{
				{Icon: "fa fa-phone", Value: "+90 266 312 44 55"},
				{Icon: "fa fa-whatsapp", Value: "+90 532 601 22 33"},
				{Icon: "fa fa-envelope", Value: "stay@pansiyonlavanta.example"},
			},
			Hours: []string{
				localize(l, "Weekdays 08:00-22:00", "Werktags 08:00-22:00", "Hafta içi 08:00-22:00"),
				localize(l, "Weekends 09:00-20:00", "Wochenende 09:00-20:00", "Hafta sonu 09:00-20:00"),
			},
		},
		Why: domain.ReservationWhy{
			Title: localize(l, "Why book direct", "Warum direkt buchen", "Neden doğrudan rezervasyon"),
			Bullets: []string{
				localize(l, "Best rate, always", "Immer der beste Preis", "Her zaman en iyi fiyat"),
				localize(l, "Free cancellation until 48h before", "Kostenlose Stornierung bis 48h vorher", "48 saat öncesine kadar ücretsiz iptal"),
				localize(l, "Room preference honoured", "Zimmerwunsch wird berücksichtigt", "Oda tercihiniz dikkate alınır"),
			},
		},
		Inquiry: domain.ReservationInquiry{
			Action:           "/api/reservation/inquiry",
			Title:            localize(l, "Long stay inquiry", "Langzeitanfrage", "Uzun konaklama talebi"),
			Subtitle:         localize(l, "Tell us about your plans", "Erzählen Sie uns von Ihren Plänen", "Planlarınızı bize anlatın"),
			FirstNameLabel:   localize(l, "First name", "Vorname", "Ad"),
			LastNameLabel:    localize(l, "Last name", "Nachname", "Soyad"),
			EmailLabel:       localize(l, "Email", "E-Mail", "E-posta"),
			PhoneLabel:       localize(l, "Phone", "Telefon", "Telefon"),
			NationalityLabel: localize(l, "Nationality", "Nationalität", "Uyruk"),
			GenderLabel:      localize(l, "Gender", "Geschlecht", "Cinsiyet"),
			OccupationLabel:  localize(l, "Occupation", "Beruf", "Meslek"),
			InstitutionLabel: localize(l, "School or employer", "Schule oder Arbeitgeber", "Okul veya işveren"),
			CheckInLabel:     localize(l, "Planned check-in", "Geplante Anreise", "Planlanan giriş"),
			DurationLabel:    localize(l, "Planned duration", "Geplante Dauer", "Planlanan süre"),
			RoomTypeLabel:    localize(l, "Preferred room", "Bevorzugtes Zimmer", "Tercih edilen oda"),
			PurposeLabel:     localize(l, "Purpose of stay", "Zweck des Aufenthalts", "Konaklama amacı"),
			MessageLabel:     localize(l, "Anything else?", "Sonst noch etwas?", "Eklemek istediğiniz?"),
			MessagePlaceholder: localize(l,
				"Allergies, arrival time, special requests...",
				"Allergien, Ankunftszeit, besondere Wünsche...",
				"Alerjiler, varış saati, özel istekler..."),
			ConsentText: localize(l,
				"We only use your details to answer this inquiry.",
				"Wir verwenden Ihre Daten nur zur Beantwortung dieser Anfrage.",
				"Bilgilerinizi yalnızca bu talebi yanıtlamak için kullanırız."),
			SubmitLabel: localize(l, "Send inquiry", "Anfrage senden", "Talep gönder"),
			SuccessMessage: localize(l,
				"Thank you, we will reply with a quote shortly.",
				"Danke, wir melden uns in Kürze mit einem Angebot.",
				"Teşekkürler, kısa süre içinde bir teklifle döneceğiz."),
			ErrorMessage: localize(l,
				"The inquiry could not be sent, please try again.",
				"Die Anfrage konnte nicht gesendet werden, bitte erneut versuchen.",
				"Talep gönderilemedi, lütfen tekrar deneyin."),
			StayPurposes: []domain.StayPurpose{
				{Value: "study", Label: localize(l, "Study", "Studium", "Eğitim")},
				{Value: "work", Label: localize(l, "Work", "Arbeit", "İş")},
				{Value: "season", Label: localize(l, "Season stay", "Saisonaufenthalt", "Sezonluk konaklama")},
				{Value: "other", Label: localize(l, "Other", "Sonstiges", "Diğer")},
			},
			GenderOptions: []string{
				localize(l, "Female", "Weiblich", "Kadın"),
				localize(l, "Male", "Männlich", "Erkek"),
				localize(l, "Prefer not to say", "Keine Angabe", "Belirtmek istemiyorum"),
			},
			DurationOptions: []string{
				localize(l, "1-3 months", "1-3 Monate", "1-3 ay"),
				localize(l, "3-6 months", "3-6 Monate", "3-6 ay"),
				localize(l, "6+ months", "6+ Monate", "6+ ay"),
			},
		},
	}
}
