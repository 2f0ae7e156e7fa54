package handler

import (
	"fmt"
	"net/http"

	"github.com/WelcomeWebWorks/Boiler-Plate/internal/cms"
	"github.com/WelcomeWebWorks/Boiler-Plate/internal/seo"
	"github.com/gin-gonic/gin"
)

// pagePayload is the assembled response for one page render: the documents a
// route needs plus synthesized metadata and structured-data blocks.
type pagePayload struct {
	Meta           seo.Meta         `json:"meta"`
	StructuredData []map[string]any `json:"structuredData"`
	Data           any              `json:"data"`
}

func (a *API) respondNotFound(c *gin.Context, title, description string) {
	c.JSON(http.StatusNotFound, gin.H{
		"notFound": true,
		"meta":     gin.H{"title": title, "description": description},
	})
}

// GetHomePage assembles the home route: hero, about, services, testimonials
// and contact sections.
func (a *API) GetHomePage(c *gin.Context) {
	ctx := c.Request.Context()

	hero, err := a.content.GetHero(ctx)
	if err != nil {
		respondUpstreamError(c, "resolve home page", err)
		return
	}
	about, err := a.content.GetAbout(ctx)
	if err != nil {
		respondUpstreamError(c, "resolve home page", err)
		return
	}
	services, err := a.content.ListServices(ctx)
	if err != nil {
		respondUpstreamError(c, "resolve home page", err)
		return
	}
	testimonials, err := a.content.ListTestimonials(ctx)
	if err != nil {
		respondUpstreamError(c, "resolve home page", err)
		return
	}
	contact, err := a.content.GetContactInfo(ctx)
	if err != nil {
		respondUpstreamError(c, "resolve home page", err)
		return
	}

	meta := a.meta.PageMeta(
		a.site.Name+" - Global Business Solutions",
		a.site.Description,
		"/",
		append([]string{a.site.Name}, a.site.Keywords...),
		nil,
	)
	breadcrumb := seo.BreadcrumbJSONLD([]seo.BreadcrumbItem{
		{Name: "Home", URL: a.site.BaseURL},
	})

	c.JSON(http.StatusOK, pagePayload{
		Meta:           meta,
		StructuredData: []map[string]any{breadcrumb},
		Data: gin.H{
			"hero":         hero,
			"about":        about,
			"services":     services,
			"testimonials": testimonials,
			"contact":      contact,
		},
	})
}

// GetBlogIndex assembles the post listing route, newest first, noIndex posts
// excluded.
func (a *API) GetBlogIndex(c *gin.Context) {
	posts, err := a.content.ListPosts(c.Request.Context())
	if err != nil {
		respondUpstreamError(c, "resolve blog index", err)
		return
	}

	meta := a.meta.PageMeta(
		"Blog - Insights & Articles",
		fmt.Sprintf("Read the latest insights and articles from %s. Explore topics on business consulting, marketing strategies, logistics, and digital transformation.", a.site.Name),
		"/blog",
		[]string{
			"business blog",
			"consulting insights",
			"marketing articles",
			a.site.Name + " blog",
			"industry insights",
			"thought leadership",
		},
		nil,
	)
	breadcrumb := seo.BreadcrumbJSONLD([]seo.BreadcrumbItem{
		{Name: "Home", URL: a.site.BaseURL},
		{Name: "Blog", URL: a.site.URL("/blog")},
	})

	c.JSON(http.StatusOK, pagePayload{
		Meta:           meta,
		StructuredData: []map[string]any{breadcrumb},
		Data:           gin.H{"posts": posts},
	})
}

// GetPostPage assembles a post detail route with its related posts. An absent
// post renders as a not-found state rather than an error.
func (a *API) GetPostPage(c *gin.Context) {
	ctx := c.Request.Context()
	slug := c.Param("slug")

	post, err := a.content.GetPost(ctx, slug)
	if err != nil {
		respondUpstreamError(c, "resolve post", err)
		return
	}
	if post == nil {
		a.respondNotFound(c, "Post Not Found", "The requested blog post could not be found.")
		return
	}

	related, err := a.content.RelatedPosts(ctx, post.Category, slug)
	if err != nil {
		respondUpstreamError(c, "resolve related posts", err)
		return
	}

	path := "/blog/" + slug
	meta := a.meta.PageMeta(
		fmt.Sprintf("%s - %s Blog", post.Title, a.site.Name),
		postDescription(post, a.site.Name),
		path,
		[]string{post.Category, a.site.Name + " blog", "business insights", "industry articles"},
		post.Seo,
	)

	breadcrumb := seo.BreadcrumbJSONLD([]seo.BreadcrumbItem{
		{Name: "Home", URL: a.site.BaseURL},
		{Name: "Blog", URL: a.site.URL("/blog")},
		{Name: post.Title, URL: a.site.URL(path)},
	})
	article := seo.ArticleJSONLD(a.site, seo.ArticleInput{
		Headline:      post.Title,
		Description:   post.Excerpt,
		ImageURL:      a.assets.URLFor(post.Image),
		DatePublished: post.Date,
		AuthorName:    post.AuthorName,
		AuthorRole:    post.AuthorRole,
		URL:           a.site.URL(path),
	})

	c.JSON(http.StatusOK, pagePayload{
		Meta:           meta,
		StructuredData: []map[string]any{breadcrumb, article},
		Data: gin.H{
			"post":         a.postView(post),
			"relatedPosts": related,
		},
	})
}

func postDescription(post *cms.Post, siteName string) string {
	if post.Excerpt != "" {
		return post.Excerpt
	}
	return fmt.Sprintf("Read %s on the %s blog.", post.Title, siteName)
}

func (a *API) postView(post *cms.Post) gin.H {
	return gin.H{
		"slug":        post.Slug,
		"title":       post.Title,
		"excerpt":     post.Excerpt,
		"contentHtml": renderMarkdown(post.Content),
		"date":        post.Date,
		"readTime":    post.ReadTime,
		"category":    post.Category,
		"imageUrl":    a.assets.URLFor(post.Image),
		"author": gin.H{
			"name":      post.AuthorName,
			"role":      post.AuthorRole,
			"avatarUrl": a.assets.URLFor(post.AuthorAvatar),
		},
	}
}

// GetServicesIndex assembles the service listing route.
func (a *API) GetServicesIndex(c *gin.Context) {
	services, err := a.content.ListServices(c.Request.Context())
	if err != nil {
		respondUpstreamError(c, "resolve services index", err)
		return
	}

	meta := a.meta.PageMeta(
		"Our Services - Business Consulting, Marketing & Logistics",
		fmt.Sprintf("Explore %s's comprehensive range of business services including consulting, marketing solutions, logistics, and digital transformation services to help your business grow.", a.site.Name),
		"/services",
		[]string{
			"business consulting services",
			"marketing solutions",
			"logistics services",
			"digital marketing",
			"supply chain management",
			a.site.Name + " services",
		},
		nil,
	)
	breadcrumb := seo.BreadcrumbJSONLD([]seo.BreadcrumbItem{
		{Name: "Home", URL: a.site.BaseURL},
		{Name: "Services", URL: a.site.URL("/services")},
	})

	c.JSON(http.StatusOK, pagePayload{
		Meta:           meta,
		StructuredData: []map[string]any{breadcrumb},
		Data:           gin.H{"services": services},
	})
}

// GetServicePage assembles a service detail route with its alternatives and
// the sitewide stats block.
func (a *API) GetServicePage(c *gin.Context) {
	ctx := c.Request.Context()
	slug := c.Param("slug")

	svc, err := a.content.GetService(ctx, slug)
	if err != nil {
		respondUpstreamError(c, "resolve service", err)
		return
	}
	if svc == nil {
		a.respondNotFound(c, "Service Not Found", "The requested service could not be found.")
		return
	}

	others, err := a.content.OtherServices(ctx, slug)
	if err != nil {
		respondUpstreamError(c, "resolve other services", err)
		return
	}
	settings, err := a.content.GetSiteSettings(ctx)
	if err != nil {
		respondUpstreamError(c, "resolve site settings", err)
		return
	}

	path := "/services/" + slug
	description := svc.ShortDescription
	if description == "" {
		description = fmt.Sprintf("Discover our %s service at %s.", svc.Title, a.site.Name)
	}
	meta := a.meta.PageMeta(
		fmt.Sprintf("%s - %s Services", svc.Title, a.site.Name),
		description,
		path,
		[]string{svc.Title, a.site.Name, "business services", "consulting", "professional services"},
		svc.Seo,
	)

	breadcrumb := seo.BreadcrumbJSONLD([]seo.BreadcrumbItem{
		{Name: "Home", URL: a.site.BaseURL},
		{Name: "Services", URL: a.site.URL("/services")},
		{Name: svc.Title, URL: a.site.URL(path)},
	})
	serviceLD := seo.ServiceJSONLD(a.site, svc.Title, svc.ShortDescription, a.site.URL(path))

	var stats *cms.SiteStats
	if settings != nil {
		stats = settings.Stats
	}

	c.JSON(http.StatusOK, pagePayload{
		Meta:           meta,
		StructuredData: []map[string]any{breadcrumb, serviceLD},
		Data: gin.H{
			"service": gin.H{
				"slug":             svc.Slug,
				"title":            svc.Title,
				"shortDescription": svc.ShortDescription,
				"contentHtml":      renderMarkdown(svc.Content),
				"mainImageUrl":     a.assets.URLFor(svc.MainImage),
			},
			"otherServices": others,
			"stats":         stats,
		},
	})
}

// GetLegalPage assembles a legal document route.
func (a *API) GetLegalPage(c *gin.Context) {
	slug := c.Param("slug")

	page, err := a.content.GetLegalPage(c.Request.Context(), slug)
	if err != nil {
		respondUpstreamError(c, "resolve legal page", err)
		return
	}
	if page == nil {
		a.respondNotFound(c, "Page Not Found", "The requested page could not be found.")
		return
	}

	meta := a.meta.PageMeta(
		page.Title+" - Legal",
		fmt.Sprintf("Read our %s.", page.Title),
		"/legal/"+slug,
		nil,
		page.Seo,
	)

	c.JSON(http.StatusOK, pagePayload{
		Meta:           meta,
		StructuredData: []map[string]any{},
		Data: gin.H{
			"page": gin.H{
				"slug":        page.Slug,
				"title":       page.Title,
				"lastUpdated": page.LastUpdated,
				"contentHtml": renderMarkdown(page.Content),
			},
		},
	})
}

// GetContactPage assembles the contact route.
func (a *API) GetContactPage(c *gin.Context) {
	info, err := a.content.GetContactInfo(c.Request.Context())
	if err != nil {
		respondUpstreamError(c, "resolve contact page", err)
		return
	}

	meta := a.meta.PageMeta(
		"Contact Us - Get in Touch",
		fmt.Sprintf("Contact %s for business consulting, marketing, and logistics services. Call %s or email %s.", a.site.Name, a.site.Phone, a.site.Email),
		"/contact",
		[]string{
			"contact " + a.site.Name,
			"business consulting contact",
			"marketing services inquiry",
			"logistics consultation",
			"get in touch",
			"business inquiry",
		},
		nil,
	)
	breadcrumb := seo.BreadcrumbJSONLD([]seo.BreadcrumbItem{
		{Name: "Home", URL: a.site.BaseURL},
		{Name: "Contact", URL: a.site.URL("/contact")},
	})

	c.JSON(http.StatusOK, pagePayload{
		Meta:           meta,
		StructuredData: []map[string]any{breadcrumb},
		Data:           gin.H{"contact": info},
	})
}

// GetSiteBootstrap returns the sitewide data every page shares: identity,
// settings, footer links and the sitewide structured-data blocks.
func (a *API) GetSiteBootstrap(c *gin.Context) {
	ctx := c.Request.Context()

	settings, err := a.content.GetSiteSettings(ctx)
	if err != nil {
		respondUpstreamError(c, "resolve site settings", err)
		return
	}
	contact, err := a.content.GetContactInfo(ctx)
	if err != nil {
		respondUpstreamError(c, "resolve contact info", err)
		return
	}
	legalPages, err := a.content.ListLegalPages(ctx)
	if err != nil {
		respondUpstreamError(c, "resolve legal pages", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"site": gin.H{
			"name":        a.site.Name,
			"url":         a.site.BaseURL,
			"description": a.site.Description,
			"analyticsId": a.analyticsID,
			"links": gin.H{
				"twitter":   a.site.Twitter,
				"instagram": a.site.Instagram,
				"facebook":  a.site.Facebook,
				"linkedin":  a.site.LinkedIn,
			},
		},
		"settings":   settings,
		"contact":    contact,
		"legalPages": legalPages,
		"structuredData": []map[string]any{
			seo.OrganizationJSONLD(a.site),
			seo.WebsiteJSONLD(a.site),
			seo.ProfessionalServiceJSONLD(a.site),
		},
	})
}
