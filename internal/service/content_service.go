package service

import (
	"context"
	"fmt"

	"github.com/WelcomeWebWorks/Boiler-Plate/internal/cms"
)

// relatedLimit caps "other items" result sets.
const relatedLimit = 3

// Fetcher is the content-store query surface resolvers depend on. Satisfied by
// *cms.Client; stubbed in tests.
type Fetcher interface {
	Fetch(ctx context.Context, query string, params cms.Params, result any, opts ...cms.FetchOption) error
}

// ContentService resolves the documents each route family needs. Absent
// primary documents resolve to nil, never an error; callers render a
// not-found state instead of propagating a failure.
type ContentService struct {
	store Fetcher
}

// NewContentService creates a ContentService backed by the given store.
func NewContentService(store Fetcher) *ContentService {
	return &ContentService{store: store}
}

const (
	postProjection = `{
  "slug": slug.current,
  title,
  excerpt,
  content,
  date,
  readTime,
  category,
  image,
  authorName,
  authorRole,
  authorAvatar,
  seo
}`

	serviceProjection = `{
  "slug": slug.current,
  title,
  shortDescription,
  content,
  mainImage,
  seo
}`
)

// GetPost resolves a post by slug.
func (s *ContentService) GetPost(ctx context.Context, slug string) (*cms.Post, error) {
	query := `*[_type == "post" && slug.current == $slug][0] ` + postProjection
	var post *cms.Post
	if err := s.store.Fetch(ctx, query, cms.Params{"slug": slug}, &post, cms.WithKinds(cms.KindPost)); err != nil {
		return nil, fmt.Errorf("resolve post %q: %w", slug, err)
	}
	return post, nil
}

// ListPosts returns published posts ordered by date descending, excluding
// documents flagged noIndex.
func (s *ContentService) ListPosts(ctx context.Context) ([]cms.Post, error) {
	query := `*[_type == "post" && !(seo.noIndex == true)] | order(date desc) ` + postProjection
	var posts []cms.Post
	if err := s.store.Fetch(ctx, query, nil, &posts, cms.WithKinds(cms.KindPost)); err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

// RelatedPosts returns up to three posts sharing a category, excluding the
// current slug.
func (s *ContentService) RelatedPosts(ctx context.Context, category, currentSlug string) ([]cms.Post, error) {
	query := fmt.Sprintf(
		`*[_type == "post" && category == $category && slug.current != $currentSlug][0...%d] %s`,
		relatedLimit, postProjection)
	var posts []cms.Post
	params := cms.Params{"category": category, "currentSlug": currentSlug}
	if err := s.store.Fetch(ctx, query, params, &posts, cms.WithKinds(cms.KindPost)); err != nil {
		return nil, fmt.Errorf("resolve related posts: %w", err)
	}
	return posts, nil
}

// GetService resolves a service offering by slug.
func (s *ContentService) GetService(ctx context.Context, slug string) (*cms.Service, error) {
	query := `*[_type == "service" && slug.current == $slug][0] ` + serviceProjection
	var svc *cms.Service
	if err := s.store.Fetch(ctx, query, cms.Params{"slug": slug}, &svc, cms.WithKinds(cms.KindService)); err != nil {
		return nil, fmt.Errorf("resolve service %q: %w", slug, err)
	}
	return svc, nil
}

// ListServices returns all services ordered by creation time descending.
func (s *ContentService) ListServices(ctx context.Context) ([]cms.Service, error) {
	query := `*[_type == "service"] | order(_createdAt desc) ` + serviceProjection
	var services []cms.Service
	if err := s.store.Fetch(ctx, query, nil, &services, cms.WithKinds(cms.KindService)); err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	return services, nil
}

// OtherServices returns up to three services excluding the current slug.
func (s *ContentService) OtherServices(ctx context.Context, currentSlug string) ([]cms.Service, error) {
	query := fmt.Sprintf(
		`*[_type == "service" && slug.current != $currentSlug][0...%d] %s`,
		relatedLimit, serviceProjection)
	var services []cms.Service
	params := cms.Params{"currentSlug": currentSlug}
	if err := s.store.Fetch(ctx, query, params, &services, cms.WithKinds(cms.KindService)); err != nil {
		return nil, fmt.Errorf("resolve other services: %w", err)
	}
	return services, nil
}

// GetLegalPage resolves a legal document by slug.
func (s *ContentService) GetLegalPage(ctx context.Context, slug string) (*cms.LegalPage, error) {
	query := `*[_type == "legalPage" && slug.current == $slug][0]{
  "slug": slug.current,
  title,
  lastUpdated,
  content,
  seo
}`
	var page *cms.LegalPage
	if err := s.store.Fetch(ctx, query, cms.Params{"slug": slug}, &page, cms.WithKinds(cms.KindLegalPage)); err != nil {
		return nil, fmt.Errorf("resolve legal page %q: %w", slug, err)
	}
	return page, nil
}

// ListLegalPages returns the legal page link list ordered by creation time
// descending.
func (s *ContentService) ListLegalPages(ctx context.Context) ([]cms.SlugEntry, error) {
	query := `*[_type == "legalPage"] | order(_createdAt desc) { title, "slug": slug.current }`
	var pages []cms.SlugEntry
	if err := s.store.Fetch(ctx, query, nil, &pages, cms.WithKinds(cms.KindLegalPage)); err != nil {
		return nil, fmt.Errorf("list legal pages: %w", err)
	}
	return pages, nil
}

// GetHero resolves the home hero singleton.
func (s *ContentService) GetHero(ctx context.Context) (*cms.Hero, error) {
	var hero *cms.Hero
	if err := s.store.Fetch(ctx, `*[_type == "hero"][0]`, nil, &hero, cms.WithKinds(cms.KindHero)); err != nil {
		return nil, fmt.Errorf("resolve hero: %w", err)
	}
	return hero, nil
}

// GetAbout resolves the about section singleton.
func (s *ContentService) GetAbout(ctx context.Context) (*cms.About, error) {
	var about *cms.About
	if err := s.store.Fetch(ctx, `*[_type == "about"][0]`, nil, &about, cms.WithKinds(cms.KindAbout)); err != nil {
		return nil, fmt.Errorf("resolve about: %w", err)
	}
	return about, nil
}

// GetContactInfo resolves the contact-details singleton.
func (s *ContentService) GetContactInfo(ctx context.Context) (*cms.ContactInfo, error) {
	query := `*[_type == "contact"][0]{ title, email, phoneNumbers, address, locationLink }`
	var info *cms.ContactInfo
	if err := s.store.Fetch(ctx, query, nil, &info, cms.WithKinds(cms.KindContact)); err != nil {
		return nil, fmt.Errorf("resolve contact info: %w", err)
	}
	return info, nil
}

// ListTestimonials returns all testimonials.
func (s *ContentService) ListTestimonials(ctx context.Context) ([]cms.Testimonial, error) {
	var testimonials []cms.Testimonial
	if err := s.store.Fetch(ctx, `*[_type == "testimonial"]`, nil, &testimonials, cms.WithKinds(cms.KindTestimonial)); err != nil {
		return nil, fmt.Errorf("list testimonials: %w", err)
	}
	return testimonials, nil
}

// GetSiteSettings resolves the sitewide settings singleton.
func (s *ContentService) GetSiteSettings(ctx context.Context) (*cms.SiteSettings, error) {
	var settings *cms.SiteSettings
	if err := s.store.Fetch(ctx, `*[_type == "siteSettings"][0]`, nil, &settings, cms.WithKinds(cms.KindSiteSettings)); err != nil {
		return nil, fmt.Errorf("resolve site settings: %w", err)
	}
	return settings, nil
}

// SitemapContent aggregates the routable slugs the sitemap needs. Documents
// flagged noIndex are excluded at the query level.
type SitemapContent struct {
	Services   []cms.SlugEntry
	Posts      []cms.SlugEntry
	LegalPages []cms.SlugEntry
}

// SitemapEntries fetches the slug projections for every routable kind.
func (s *ContentService) SitemapEntries(ctx context.Context) (SitemapContent, error) {
	var content SitemapContent
	queries := []struct {
		kind   string
		target *[]cms.SlugEntry
	}{
		{cms.KindService, &content.Services},
		{cms.KindPost, &content.Posts},
		{cms.KindLegalPage, &content.LegalPages},
	}
	for _, q := range queries {
		query := fmt.Sprintf(
			`*[_type == %q && !(seo.noIndex == true)] { "slug": slug.current, _updatedAt }`, q.kind)
		if err := s.store.Fetch(ctx, query, nil, q.target, cms.WithKinds(q.kind)); err != nil {
			return SitemapContent{}, fmt.Errorf("sitemap entries for %s: %w", q.kind, err)
		}
	}
	return content, nil
}
