package handler

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/WelcomeWebWorks/Boiler-Plate/internal/cms"
	"github.com/WelcomeWebWorks/Boiler-Plate/internal/config"
	"github.com/WelcomeWebWorks/Boiler-Plate/internal/mailer"
	"github.com/WelcomeWebWorks/Boiler-Plate/internal/seo"
	"github.com/WelcomeWebWorks/Boiler-Plate/internal/service"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// fakeStore answers content queries from canned raw JSON keyed by a query
// fragment, and records subscriber writes.
type fakeStore struct {
	raw             map[string]string
	fetchErr        error
	canWrite        bool
	subscriberErr   error
	subscriberCalls int
}

func (f *fakeStore) Fetch(ctx context.Context, query string, params cms.Params, result any, opts ...cms.FetchOption) error {
	if f.fetchErr != nil {
		return f.fetchErr
	}
	raw := "null"
	for fragment, body := range f.raw {
		if strings.Contains(query, fragment) {
			raw = body
			break
		}
	}
	return json.Unmarshal([]byte(raw), result)
}

func (f *fakeStore) CanWrite() bool { return f.canWrite }

func (f *fakeStore) CreateSubscriber(ctx context.Context, sub cms.NewsletterSubscriber) error {
	f.subscriberCalls++
	return f.subscriberErr
}

type fakeMailer struct {
	err   error
	calls int
	last  mailer.Message
}

func (f *fakeMailer) Send(ctx context.Context, msg mailer.Message) error {
	f.calls++
	f.last = msg
	return f.err
}

func handlerTestSite() config.Site {
	return config.Site{
		Name:           "Acme Studio",
		BaseURL:        "https://acme.example",
		Description:    "We build things.",
		Email:          "hello@acme.example",
		WhatsAppNumber: "919876543210",
		Keywords:       []string{"acme", "studio"},
	}
}

func newTestAPI(store *fakeStore, m *fakeMailer) *API {
	site := handlerTestSite()
	assets := cms.NewAssetResolver("testproj", "production")
	return &API{
		site:             site,
		content:          service.NewContentService(store),
		leads:            service.NewLeadService(m, store, site, "onboarding@resend.dev", "leads@acme.example"),
		meta:             seo.NewSynthesizer(site, assets),
		assets:           assets,
		cache:            cms.NewQueryCache(),
		revalidateSecret: "test-webhook-secret",
		analyticsID:      "G-TEST",
	}
}

// newTestRouter registers the API routes the way the server does, including
// the session middleware the lead handlers need.
func newTestRouter(api *API) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(sessions.Sessions("site_session", cookie.NewStore([]byte("test-secret"))))

	r.GET("/robots.txt", api.Robots)
	r.GET("/sitemap.xml", api.Sitemap)
	r.GET("/api/og", api.RenderOGImage)
	r.POST("/api/revalidate", api.Revalidate)
	r.GET("/api/site", api.GetSiteBootstrap)
	r.POST("/api/contact", api.SubmitContact)
	r.POST("/api/contact/whatsapp", api.ContactWhatsApp)
	r.GET("/api/contact/cooldown", api.ContactCooldown)
	r.POST("/api/newsletter", api.SubmitNewsletter)
	r.POST("/api/popup", api.SubmitPopup)
	r.GET("/api/pages/home", api.GetHomePage)
	r.GET("/api/pages/blog", api.GetBlogIndex)
	r.GET("/api/pages/blog/:slug", api.GetPostPage)
	r.GET("/api/pages/services", api.GetServicesIndex)
	r.GET("/api/pages/services/:slug", api.GetServicePage)
	r.GET("/api/pages/legal/:slug", api.GetLegalPage)
	r.GET("/api/pages/contact", api.GetContactPage)
	return r
}
