package handler

import (
	"github.com/WelcomeWebWorks/Boiler-Plate/internal/cms"
	"github.com/WelcomeWebWorks/Boiler-Plate/internal/config"
	"github.com/WelcomeWebWorks/Boiler-Plate/internal/mailer"
	"github.com/WelcomeWebWorks/Boiler-Plate/internal/seo"
	"github.com/WelcomeWebWorks/Boiler-Plate/internal/service"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	site             config.Site
	content          *service.ContentService
	leads            *service.LeadService
	meta             *seo.Synthesizer
	assets           *cms.AssetResolver
	cache            *cms.QueryCache
	revalidateSecret string
	analyticsID      string
}

// NewAPI constructs the handler set with its service graph wired to the
// external content store and email provider.
func NewAPI(cfg config.AppConfig) *API {
	site := config.DefaultSite(cfg)
	cache := cms.NewQueryCache()
	client := cms.NewClient(cms.Config{
		ProjectID:  cfg.SanityProjectID,
		Dataset:    cfg.SanityDataset,
		APIVersion: cfg.SanityAPIVersion,
		WriteToken: cfg.SanityWriteToken,
		Cache:      cache,
	})
	assets := cms.NewAssetResolver(cfg.SanityProjectID, cfg.SanityDataset)

	return &API{
		site:             site,
		content:          service.NewContentService(client),
		leads:            service.NewLeadService(mailer.NewResend(cfg.ResendAPIKey), client, site, cfg.ContactFromEmail, cfg.ContactToEmail),
		meta:             seo.NewSynthesizer(site, assets),
		assets:           assets,
		cache:            cache,
		revalidateSecret: cfg.RevalidateSecret,
		analyticsID:      cfg.AnalyticsID,
	}
}
