package domain

// PageHero is the header block shared by the secondary pages.
type PageHero struct {
	Subtitle   string `json:"subtitle"`
	Title      string `json:"title"`
	Breadcrumb string `json:"breadcrumb"`
	Background string `json:"background"`
}

// ---- Services ----

type ServiceStat struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Note  string `json:"note"`
}

type ServiceHighlight struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type ServicesBody struct {
	Intro        string             `json:"intro"`
	CTAPrimary   string             `json:"ctaPrimary"`
	CTASecondary string             `json:"ctaSecondary"`
	Stats        []ServiceStat      `json:"stats"`
	StatsImage   string             `json:"statsImage"`
	Essentials   string             `json:"essentials"`
	Highlights   []ServiceHighlight `json:"highlights"`
	Support      string             `json:"support"`
	CTAStart     string             `json:"ctaStart"`
	SupportList  []string           `json:"supportList"`
}

type ServicesContent struct {
	Hero    PageHero     `json:"hero"`
	Content ServicesBody `json:"content"`
}

// ---- Amenities ----

type AmenityOption struct {
	Title       string   `json:"title"`
	Icon        string   `json:"icon"`
	Description string   `json:"description"`
	Highlights  []string `json:"highlights"`
}

type AmenitiesBody struct {
	LayoutTitle    string          `json:"layoutTitle"`
	LayoutOptions  []AmenityOption `json:"layoutOptions"`
	AmenitiesLabel string          `json:"amenitiesLabel"`
	ToggleLabel    string          `json:"toggleLabel"`
	ViewLabel      string          `json:"viewLabel"`
}

type AmenityCard struct {
	Title       string   `json:"title"`
	Icon        string   `json:"icon"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
	Highlights  []string `json:"highlights"`
}

type AmenitiesData struct {
	Cards         []AmenityCard `json:"cards"`
	OverviewItems []string      `json:"overviewItems"`
}

type AmenitiesContent struct {
	Hero    PageHero      `json:"hero"`
	Content AmenitiesBody `json:"content"`
	Data    AmenitiesData `json:"data"`
}

// ---- Contact ----

type ContactItem struct {
	Icon  string `json:"icon"`
	Title string `json:"title"`
	Value string `json:"value"`
}

type SocialLink struct {
	Icon  string `json:"icon"`
	Label string `json:"label"`
	URL   string `json:"url"`
}

type ContactDetails struct {
	Title   string        `json:"title"`
	Items   []ContactItem `json:"items"`
	Socials []SocialLink  `json:"socials"`
}

type ContactForm struct {
	Action             string `json:"action"`
	NameLabel          string `json:"nameLabel"`
	NamePlaceholder    string `json:"namePlaceholder"`
	EmailLabel         string `json:"emailLabel"`
	EmailPlaceholder   string `json:"emailPlaceholder"`
	PhoneLabel         string `json:"phoneLabel"`
	PhonePlaceholder   string `json:"phonePlaceholder"`
	MessageLabel       string `json:"messageLabel"`
	MessagePlaceholder string `json:"messagePlaceholder"`
	SubmitLabel        string `json:"submitLabel"`
	SuccessMessage     string `json:"successMessage"`
	ErrorMessage       string `json:"errorMessage"`
}

type ContactContent struct {
	Hero    PageHero       `json:"hero"`
	Details ContactDetails `json:"details"`
	Form    ContactForm    `json:"form"`
}

// ---- Reservation ----

type ReservationShortStay struct {
	Title string `json:"title"`
	Text  string `json:"text"`
	CTA   CTA    `json:"cta"`
}

type ReservationForm struct {
	Action          string   `json:"action"`
	NameLabel       string   `json:"nameLabel"`
	EmailLabel      string   `json:"emailLabel"`
	PhoneLabel      string   `json:"phoneLabel"`
	CheckInLabel    string   `json:"checkInLabel"`
	CheckOutLabel   string   `json:"checkOutLabel"`
	GuestsLabel     string   `json:"guestsLabel"`
	RoomTypeLabel   string   `json:"roomTypeLabel"`
	DurationLabel   string   `json:"durationLabel"`
	SubmitLabel     string   `json:"submitLabel"`
	GuestOptions    []string `json:"guestOptions"`
	RoomTypeOptions []string `json:"roomTypeOptions"`
	DurationOptions []string `json:"durationOptions"`
}

type ReservationLongStay struct {
	Title        string   `json:"title"`
	Text         string   `json:"text"`
	Bullets      []string `json:"bullets"`
	PrimaryCTA   CTA      `json:"primaryCta"`
	SecondaryCTA CTA      `json:"secondaryCta"`
}

type HelpContact struct {
	Icon  string `json:"icon"`
	Value string `json:"value"`
}

type ReservationHelp struct {
	Title    string        `json:"title"`
	Text     string        `json:"text"`
	Contacts []HelpContact `json:"contacts"`
	Hours    []string      `json:"hours"`
}

type ReservationWhy struct {
	Title   string   `json:"title"`
	Bullets []string `json:"bullets"`
}

type StayPurpose struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type ReservationInquiry struct {
	Action             string        `json:"action"`
	Title              string        `json:"title"`
	Subtitle           string        `json:"subtitle"`
	FirstNameLabel     string        `json:"firstNameLabel"`
	LastNameLabel      string        `json:"lastNameLabel"`
	EmailLabel         string        `json:"emailLabel"`
	PhoneLabel         string        `json:"phoneLabel"`
	NationalityLabel   string        `json:"nationalityLabel"`
	GenderLabel        string        `json:"genderLabel"`
	OccupationLabel    string        `json:"occupationLabel"`
	InstitutionLabel   string        `json:"institutionLabel"`
	CheckInLabel       string        `json:"checkInLabel"`
	DurationLabel      string        `json:"durationLabel"`
	RoomTypeLabel      string        `json:"roomTypeLabel"`
	PurposeLabel       string        `json:"purposeLabel"`
	MessageLabel       string        `json:"messageLabel"`
	MessagePlaceholder string        `json:"messagePlaceholder"`
	ConsentText        string        `json:"consentText"`
	SubmitLabel        string        `json:"submitLabel"`
	SuccessMessage     string        `json:"successMessage"`
	ErrorMessage       string        `json:"errorMessage"`
	StayPurposes       []StayPurpose `json:"stayPurposes"`
	GenderOptions      []string      `json:"genderOptions"`
	DurationOptions    []string      `json:"durationOptions"`
}

type ReservationContent struct {
	Hero      PageHero             `json:"hero"`
	Crumb     string               `json:"crumb"`
	ShortStay ReservationShortStay `json:"shortStay"`
	Form      ReservationForm      `json:"form"`
	LongStay  ReservationLongStay  `json:"longStay"`
	Help      ReservationHelp      `json:"help"`
	Why       ReservationWhy       `json:"why"`
	Inquiry   ReservationInquiry   `json:"inquiry"`
}
