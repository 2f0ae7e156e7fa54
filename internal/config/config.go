package config

import (
	"fmt"
	"os"
	"strings"
)

// AppConfig 汇总运行服务所需的基础配置。
type AppConfig struct {
	ListenAddr       string
	Port             string
	SessionSecret    string
	GinMode          string
	SiteBaseURL      string
	SanityProjectID  string
	SanityDataset    string
	SanityAPIVersion string
	SanityWriteToken string
	RevalidateSecret string
	ResendAPIKey     string
	ContactFromEmail string
	ContactToEmail   string
	AnalyticsID      string
}

// Load 从环境变量读取应用配置，并为缺失项提供安全的默认值。
func Load() AppConfig {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	listenAddr := strings.TrimSpace(os.Getenv("LISTEN_ADDR"))
	if listenAddr == "" {
		listenAddr = fmt.Sprintf(":%s", port)
	}

	sessionSecret := strings.TrimSpace(os.Getenv("SESSION_SECRET"))
	if sessionSecret == "" {
		sessionSecret = "boilerplate-dev-secret"
	}

	ginMode := strings.TrimSpace(os.Getenv("GIN_MODE"))
	if ginMode == "" {
		ginMode = "release"
	}

	siteBaseURL := strings.TrimSpace(os.Getenv("SITE_BASE_URL"))
	if siteBaseURL == "" {
		siteBaseURL = "https://www.companydomain.com"
	}
	siteBaseURL = strings.TrimRight(siteBaseURL, "/")

	projectID := strings.TrimSpace(os.Getenv("SANITY_PROJECT_ID"))

	dataset := strings.TrimSpace(os.Getenv("SANITY_DATASET"))
	if dataset == "" {
		dataset = "production"
	}

	apiVersion := strings.TrimSpace(os.Getenv("SANITY_API_VERSION"))
	if apiVersion == "" {
		apiVersion = "2024-01-01"
	}

	contactFrom := strings.TrimSpace(os.Getenv("CONTACT_FROM_EMAIL"))
	if contactFrom == "" {
		contactFrom = "onboarding@resend.dev"
	}

	return AppConfig{
		ListenAddr:       listenAddr,
		Port:             port,
		SessionSecret:    sessionSecret,
		GinMode:          ginMode,
		SiteBaseURL:      siteBaseURL,
		SanityProjectID:  projectID,
		SanityDataset:    dataset,
		SanityAPIVersion: apiVersion,
		SanityWriteToken: strings.TrimSpace(os.Getenv("SANITY_API_WRITE_TOKEN")),
		RevalidateSecret: strings.TrimSpace(os.Getenv("SANITY_REVALIDATE_SECRET")),
		ResendAPIKey:     strings.TrimSpace(os.Getenv("RESEND_API_KEY")),
		ContactFromEmail: contactFrom,
		ContactToEmail:   strings.TrimSpace(os.Getenv("CONTACT_TO_EMAIL")),
		AnalyticsID:      strings.TrimSpace(os.Getenv("ANALYTICS_ID")),
	}
}
