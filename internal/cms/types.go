package cms

// Document kind discriminants (`_type` in the content store). They double as
// cache invalidation tags for the revalidation webhook.
const (
	KindHero         = "hero"
	KindAbout        = "about"
	KindService      = "service"
	KindTestimonial  = "testimonial"
	KindPost         = "post"
	KindContact      = "contact"
	KindSiteSettings = "siteSettings"
	KindLegalPage    = "legalPage"
	KindNewsletter   = "newsletter"
)

// ImageRef is an opaque asset pointer. It is resolved to a concrete URL only
// through the AssetResolver, never stored as a URL.
type ImageRef struct {
	Asset struct {
		Ref string `json:"_ref"`
	} `json:"asset"`
	Alt string `json:"alt,omitempty"`
}

// Empty reports whether the reference has no backing asset.
func (r *ImageRef) Empty() bool {
	return r == nil || r.Asset.Ref == ""
}

// SeoOverride carries per-document metadata fields that supersede page-level
// defaults when present. Fields are overridden independently, never as a block.
type SeoOverride struct {
	Title        string    `json:"title,omitempty"`
	Description  string    `json:"description,omitempty"`
	CanonicalURL string    `json:"canonicalUrl,omitempty"`
	NoIndex      bool      `json:"noIndex,omitempty"`
	OGImage      *ImageRef `json:"ogImage,omitempty"`
}

// CTA 表示带链接的按钮或公告文案。
type CTA struct {
	Text string `json:"text,omitempty"`
	Link string `json:"link,omitempty"`
}

// Hero is the home page hero section document.
type Hero struct {
	Announcement    *CTA       `json:"announcement,omitempty"`
	Heading         string     `json:"heading,omitempty"`
	Subheading      string     `json:"subheading,omitempty"`
	PrimaryButton   *CTA       `json:"primaryButton,omitempty"`
	SecondaryButton *CTA       `json:"secondaryButton,omitempty"`
	AppScreenImages []ImageRef `json:"appScreenImages,omitempty"`
}

// AboutFeature is one highlighted capability on the about section.
type AboutFeature struct {
	Title       string    `json:"title,omitempty"`
	Description string    `json:"description,omitempty"`
	Icon        *ImageRef `json:"icon,omitempty"`
}

// About is the home page about section document.
type About struct {
	Heading     string         `json:"heading,omitempty"`
	Description string         `json:"description,omitempty"`
	Features    []AboutFeature `json:"features,omitempty"`
	Image       *ImageRef      `json:"image,omitempty"`
}

// Service is a routable service offering document.
type Service struct {
	Title            string       `json:"title"`
	Slug             string       `json:"slug"`
	ShortDescription string       `json:"shortDescription,omitempty"`
	Content          string       `json:"content,omitempty"`
	MainImage        *ImageRef    `json:"mainImage,omitempty"`
	Seo              *SeoOverride `json:"seo,omitempty"`
	UpdatedAt        string       `json:"_updatedAt,omitempty"`
}

// Testimonial is a customer quote shown on the home page.
type Testimonial struct {
	Name        string    `json:"name"`
	Role        string    `json:"role,omitempty"`
	Company     string    `json:"company,omitempty"`
	Testimonial string    `json:"testimonial,omitempty"`
	Rating      int       `json:"rating,omitempty"`
	Avatar      *ImageRef `json:"avatar,omitempty"`
}

// Post is a routable blog post document.
type Post struct {
	Slug         string       `json:"slug"`
	Title        string       `json:"title"`
	Excerpt      string       `json:"excerpt,omitempty"`
	Content      string       `json:"content,omitempty"`
	Date         string       `json:"date,omitempty"`
	ReadTime     string       `json:"readTime,omitempty"`
	Category     string       `json:"category,omitempty"`
	Image        *ImageRef    `json:"image,omitempty"`
	AuthorName   string       `json:"authorName,omitempty"`
	AuthorRole   string       `json:"authorRole,omitempty"`
	AuthorAvatar *ImageRef    `json:"authorAvatar,omitempty"`
	Seo          *SeoOverride `json:"seo,omitempty"`
	UpdatedAt    string       `json:"_updatedAt,omitempty"`
}

// ContactInfo is the contact-details singleton document.
type ContactInfo struct {
	Title        string   `json:"title,omitempty"`
	Email        string   `json:"email,omitempty"`
	PhoneNumbers []string `json:"phoneNumbers,omitempty"`
	Address      string   `json:"address,omitempty"`
	LocationLink string   `json:"locationLink,omitempty"`
}

// SiteStats 是站点设置中对外展示的计数块。
type SiteStats struct {
	ClientsCount    string `json:"clientsCount,omitempty"`
	ClientsLabel    string `json:"clientsLabel,omitempty"`
	ExperienceCount string `json:"experienceCount,omitempty"`
	ExperienceLabel string `json:"experienceLabel,omitempty"`
	SupportCount    string `json:"supportCount,omitempty"`
	SupportLabel    string `json:"supportLabel,omitempty"`
}

// SocialLink is one entry of the site settings social link list.
type SocialLink struct {
	Platform string    `json:"platform,omitempty"`
	URL      string    `json:"url,omitempty"`
	Icon     *ImageRef `json:"icon,omitempty"`
}

// SiteSettings is the sitewide settings singleton document.
type SiteSettings struct {
	Title       string       `json:"title,omitempty"`
	CompanyName string       `json:"companyName,omitempty"`
	Logo        *ImageRef    `json:"logo,omitempty"`
	LogoLight   *ImageRef    `json:"logoLight,omitempty"`
	SocialLinks []SocialLink `json:"socialLinks,omitempty"`
	Stats       *SiteStats   `json:"stats,omitempty"`
	Seo         *SeoOverride `json:"seo,omitempty"`
}

// LegalPage is a routable legal document (privacy policy, terms, ...).
type LegalPage struct {
	Title       string       `json:"title"`
	Slug        string       `json:"slug"`
	LastUpdated string       `json:"lastUpdated,omitempty"`
	Content     string       `json:"content,omitempty"`
	Seo         *SeoOverride `json:"seo,omitempty"`
	UpdatedAt   string       `json:"_updatedAt,omitempty"`
}

// GeoPoint is an optional subscriber location captured on newsletter signup.
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// NewsletterSubscriber is the one document kind this application writes to the
// content store. The store holds it indefinitely; the application never keeps
// its own copy.
type NewsletterSubscriber struct {
	ID            string    `json:"_id,omitempty"`
	Type          string    `json:"_type"`
	Email         string    `json:"email"`
	Status        string    `json:"status"`
	DeviceDetails string    `json:"deviceDetails,omitempty"`
	Location      *GeoPoint `json:"location,omitempty"`
	SubscribedAt  string    `json:"subscribedAt"`
}

// SlugEntry is the minimal projection used by sitemap and listing link queries.
type SlugEntry struct {
	Slug      string `json:"slug"`
	Title     string `json:"title,omitempty"`
	UpdatedAt string `json:"_updatedAt,omitempty"`
}
