package seo

import (
	"strconv"

	"github.com/WelcomeWebWorks/Boiler-Plate/internal/config"
)

// JSON-LD generators. Pure functions returning plain nested objects ready for
// serialization into application/ld+json script blocks. Malformed input yields
// a structurally valid minimal object, never an error.

const schemaContext = "https://schema.org"

// BreadcrumbItem is one (name, url) pair of a root-to-leaf breadcrumb trail.
type BreadcrumbItem struct {
	Name string
	URL  string
}

// BreadcrumbJSONLD builds a schema.org BreadcrumbList, positions numbered from
// one in input order.
func BreadcrumbJSONLD(items []BreadcrumbItem) map[string]any {
	elements := make([]any, 0, len(items))
	for i, item := range items {
		elements = append(elements, map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     item.Name,
			"item":     item.URL,
		})
	}
	return map[string]any{
		"@context":        schemaContext,
		"@type":           "BreadcrumbList",
		"itemListElement": elements,
	}
}

// OrganizationJSONLD builds the sitewide schema.org Organization block.
func OrganizationJSONLD(site config.Site) map[string]any {
	return map[string]any{
		"@context":     schemaContext,
		"@type":        "Organization",
		"@id":          site.BaseURL + "/#organization",
		"name":         site.Name,
		"legalName":    site.Name,
		"url":          site.BaseURL,
		"logo":         site.BaseURL + "/logo.png",
		"description":  site.Description,
		"email":        site.Email,
		"telephone":    site.Phone,
		"foundingDate": strconv.Itoa(site.FoundedYear),
		"sameAs": []any{
			site.Instagram,
			site.LinkedIn,
			site.Twitter,
			site.Facebook,
		},
		"contactPoint": map[string]any{
			"@type":       "ContactPoint",
			"telephone":   site.Phone,
			"email":       site.Email,
			"contactType": "customer service",
			"areaServed":  "Worldwide",
		},
		"address": map[string]any{
			"@type":           "PostalAddress",
			"addressLocality": "Global",
		},
	}
}

// WebsiteJSONLD builds the schema.org WebSite block with its search action.
func WebsiteJSONLD(site config.Site) map[string]any {
	return map[string]any{
		"@context":    schemaContext,
		"@type":       "WebSite",
		"@id":         site.BaseURL + "/#website",
		"url":         site.BaseURL,
		"name":        site.Name,
		"description": site.Description,
		"publisher": map[string]any{
			"@id": site.BaseURL + "/#organization",
		},
		"potentialAction": map[string]any{
			"@type": "SearchAction",
			"target": map[string]any{
				"@type":       "EntryPoint",
				"urlTemplate": site.BaseURL + "/services?search={search_term_string}",
			},
			"query-input": "required name=search_term_string",
		},
	}
}

// ProfessionalServiceJSONLD builds the sitewide schema.org ProfessionalService
// block with its offer catalog.
func ProfessionalServiceJSONLD(site config.Site) map[string]any {
	offers := []any{
		serviceOffer("Business Consulting", "Strategic business consulting for startups, SMEs, and corporations"),
		serviceOffer("Marketing Solutions", "Innovative marketing solutions to drive growth and brand awareness"),
		serviceOffer("Logistics Services", "Comprehensive logistics and supply chain management services"),
	}
	return map[string]any{
		"@context":    schemaContext,
		"@type":       "ProfessionalService",
		"@id":         site.BaseURL + "/#professionalservice",
		"name":        site.Name,
		"description": site.Description,
		"url":         site.BaseURL,
		"telephone":   site.Phone,
		"email":       site.Email,
		"priceRange":  "$$",
		"areaServed":  "Worldwide",
		"serviceType": []any{
			"Business Consulting",
			"Marketing Solutions",
			"Logistics Services",
			"Digital Marketing",
			"Business Strategy",
			"Supply Chain Management",
		},
		"hasOfferCatalog": map[string]any{
			"@type":           "OfferCatalog",
			"name":            "Business Services",
			"itemListElement": offers,
		},
	}
}

func serviceOffer(name, description string) map[string]any {
	return map[string]any{
		"@type": "Offer",
		"itemOffered": map[string]any{
			"@type":       "Service",
			"name":        name,
			"description": description,
		},
	}
}

// ServiceJSONLD builds a schema.org Service block for one service offering.
func ServiceJSONLD(site config.Site, name, description, pageURL string) map[string]any {
	return map[string]any{
		"@context":    schemaContext,
		"@type":       "Service",
		"name":        name,
		"description": description,
		"url":         pageURL,
		"provider": map[string]any{
			"@id": site.BaseURL + "/#organization",
		},
		"areaServed": "Worldwide",
	}
}

// FAQ is one question/answer pair.
type FAQ struct {
	Question string
	Answer   string
}

// FAQJSONLD builds a schema.org FAQPage block.
func FAQJSONLD(faqs []FAQ) map[string]any {
	entities := make([]any, 0, len(faqs))
	for _, faq := range faqs {
		entities = append(entities, map[string]any{
			"@type": "Question",
			"name":  faq.Question,
			"acceptedAnswer": map[string]any{
				"@type": "Answer",
				"text":  faq.Answer,
			},
		})
	}
	return map[string]any{
		"@context":   schemaContext,
		"@type":      "FAQPage",
		"mainEntity": entities,
	}
}

// ArticleInput carries the post fields an Article block needs.
type ArticleInput struct {
	Headline      string
	Description   string
	ImageURL      string
	DatePublished string
	AuthorName    string
	AuthorRole    string
	URL           string
}

// ArticleJSONLD builds a schema.org Article block for a blog post page.
func ArticleJSONLD(site config.Site, in ArticleInput) map[string]any {
	author := in.AuthorName
	if author == "" {
		author = site.Name
	}
	return map[string]any{
		"@context":      schemaContext,
		"@type":         "Article",
		"headline":      in.Headline,
		"description":   in.Description,
		"image":         in.ImageURL,
		"datePublished": in.DatePublished,
		"author": map[string]any{
			"@type":    "Person",
			"name":     author,
			"jobTitle": in.AuthorRole,
		},
		"publisher": map[string]any{
			"@type": "Organization",
			"name":  site.Name,
			"logo": map[string]any{
				"@type": "ImageObject",
				"url":   site.OGImage,
			},
		},
		"mainEntityOfPage": map[string]any{
			"@type": "WebPage",
			"@id":   in.URL,
		},
	}
}
