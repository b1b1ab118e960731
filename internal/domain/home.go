package domain

// SectionSetting controls visibility and ordering of one Home page section.
// These settings are locale-independent: the read path substitutes the en
// document's sections for every other locale.
type SectionSetting struct {
	Enabled bool `json:"enabled"`
	Order   int  `json:"order"`
}

// HomeSectionKeys is the fixed set of Home sections. Unknown keys submitted
// by the admin are dropped during normalization.
var HomeSectionKeys = []string{
	"hero", "rooms", "testimonials", "facilities", "gallery", "offers", "faq", "videoCta",
}

type CTA struct {
	Text string `json:"text"`
	Href string `json:"href"`
}

type HeroSlide struct {
	Image    string `json:"image"`
	Position string `json:"position"`
}

type BookingPartner struct {
	Name        string `json:"name"`
	Logo        string `json:"logo"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

type HomeHero struct {
	TitleTop            string           `json:"titleTop"`
	TitleMain           string           `json:"titleMain"`
	Subtitle            string           `json:"subtitle"`
	PrimaryCTA          CTA              `json:"primaryCta"`
	SecondaryCTA        CTA              `json:"secondaryCta"`
	Slides              []HeroSlide      `json:"slides"`
	ShowPartners        bool             `json:"showPartners"`
	ShowPartnerLogos    bool             `json:"showPartnerLogos"`
	PartnersTitle       string           `json:"partnersTitle"`
	PartnersDescription string           `json:"partnersDescription"`
	Partners            []BookingPartner `json:"partners"`
}

// RoomCard copy is translated per locale; Icon and Image are shared across
// locales and sourced from the en document at read time.
type RoomCard struct {
	Title       string   `json:"title"`
	Icon        string   `json:"icon"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
	Highlights  []string `json:"highlights"`
}

type HomeRooms struct {
	Title       string     `json:"title"`
	Subtitle    string     `json:"subtitle"`
	Description string     `json:"description"`
	CTA         CTA        `json:"cta"`
	AllRoomsCTA CTA        `json:"allRoomsCta"`
	Cards       []RoomCard `json:"cards"`
}

type TestimonialSlide struct {
	Badge string `json:"badge"`
	Text  string `json:"text"`
}

type HomeTestimonials struct {
	Background string             `json:"background"`
	Badge      string             `json:"badge"`
	Title      string             `json:"title"`
	Subtitle   string             `json:"subtitle"`
	Slides     []TestimonialSlide `json:"slides"`
}

type FacilityStat struct {
	Label  string `json:"label"`
	Suffix string `json:"suffix"`
}

type HomeFacilities struct {
	Title          string         `json:"title"`
	Subtitle       string         `json:"subtitle"`
	Description    string         `json:"description"`
	Stats          []FacilityStat `json:"stats"` // always exactly 3
	GuestCount     float64        `json:"guestCount"`
	RoomCount      float64        `json:"roomCount"`
	YearCount      float64        `json:"yearCount"`
	ImagePrimary   string         `json:"imagePrimary"`
	ImageSecondary string         `json:"imageSecondary"`
}

type GalleryCategory struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

type GalleryItem struct {
	Image    string `json:"image"`
	Category string `json:"category"`
	Alt      string `json:"alt"`
}

type HomeGallery struct {
	Title      string            `json:"title"`
	Subtitle   string            `json:"subtitle"`
	Categories []GalleryCategory `json:"categories"`
	Items      []GalleryItem     `json:"items"`
}

type OfferCard struct {
	ID    string `json:"id"`
	Badge string `json:"badge"`
	Title string `json:"title"`
	Text  string `json:"text"`
	Image string `json:"image"`
}

type HomeOffers struct {
	Title    string      `json:"title"`
	Subtitle string      `json:"subtitle"`
	Cards    []OfferCard `json:"cards"`
}

type FAQItem struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type HomeFAQ struct {
	Title    string    `json:"title"`
	Subtitle string    `json:"subtitle"`
	Items    []FAQItem `json:"items"`
}

type HomeVideoCTA struct {
	Title    string `json:"title"`
	Text     string `json:"text"`
	VideoURL string `json:"videoUrl"`
}

type HomeContent struct {
	Sections     map[string]SectionSetting `json:"sections"`
	Hero         HomeHero                  `json:"hero"`
	Rooms        HomeRooms                 `json:"rooms"`
	Testimonials HomeTestimonials          `json:"testimonials"`
	Facilities   HomeFacilities            `json:"facilities"`
	Gallery      HomeGallery               `json:"gallery"`
	Offers       HomeOffers                `json:"offers"`
	FAQ          HomeFAQ                   `json:"faq"`
	VideoCTA     HomeVideoCTA              `json:"videoCta"`
}
