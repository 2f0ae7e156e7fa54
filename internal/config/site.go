package config

// Site 描述站点对外的固定身份信息，用于元数据与结构化数据生成。
type Site struct {
	Name        string
	BaseURL     string
	Description string
	OGImage     string

	Email   string
	Phone   string
	Address string

	// WhatsAppNumber is the international number (digits only) used for the
	// prefilled deep-link contact channel.
	WhatsAppNumber string

	FoundedYear int

	Twitter   string
	Instagram string
	Facebook  string
	LinkedIn  string

	// Keywords is the default keyword set pages fall back to when a resolver
	// supplies none of its own.
	Keywords []string
}

// DefaultSite returns the site identity, anchored to the configured base URL.
func DefaultSite(cfg AppConfig) Site {
	return Site{
		Name:        "Company Name",
		BaseURL:     cfg.SiteBaseURL,
		Description: "Your company description goes here. This is a boilerplate for building modern websites.",
		OGImage:     cfg.SiteBaseURL + "/og-image.png",

		Email:   "companyemail@gmail.com",
		Phone:   "+91 01234 56789",
		Address: "Company Address, City, Country",

		WhatsAppNumber: "919876543210",

		FoundedYear: 2024,

		Twitter:   "https://twitter.com/company",
		Instagram: "https://instagram.com/company",
		Facebook:  "https://facebook.com/company",
		LinkedIn:  "https://linkedin.com/company",

		Keywords: []string{
			"business consulting",
			"marketing solutions",
			"logistics services",
			"business growth",
			"startup consulting",
			"SME solutions",
			"corporate consulting",
			"global business solutions",
			"business strategy",
			"digital marketing",
			"supply chain management",
			"business transformation",
		},
	}
}

// URL joins a path onto the site base URL.
func (s Site) URL(path string) string {
	if path == "" || path == "/" {
		return s.BaseURL
	}
	return s.BaseURL + path
}
