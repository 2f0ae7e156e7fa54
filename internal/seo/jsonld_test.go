package seo

import (
	"encoding/json"
	"testing"

	"github.com/WelcomeWebWorks/Boiler-Plate/internal/config"
)

func testSite() config.Site {
	return config.Site{
		Name:        "Acme Studio",
		BaseURL:     "https://acme.example",
		Description: "We build things.",
		Email:       "hello@acme.example",
		Phone:       "+1 555 0100",
		FoundedYear: 2024,
	}
}

func TestBreadcrumbJSONLDNumbersFromOne(t *testing.T) {
	block := BreadcrumbJSONLD([]BreadcrumbItem{
		{Name: "Home", URL: "https://acme.example"},
		{Name: "Blog", URL: "https://acme.example/blog"},
	})

	if block["@type"] != "BreadcrumbList" {
		t.Fatalf("unexpected @type %v", block["@type"])
	}
	elements, ok := block["itemListElement"].([]any)
	if !ok || len(elements) != 2 {
		t.Fatalf("expected 2 list items, got %v", block["itemListElement"])
	}
	first := elements[0].(map[string]any)
	second := elements[1].(map[string]any)
	if first["position"] != 1 || second["position"] != 2 {
		t.Fatalf("expected positions 1 and 2, got %v and %v", first["position"], second["position"])
	}
	if second["name"] != "Blog" {
		t.Fatalf("unexpected name %v", second["name"])
	}
}

func TestBreadcrumbJSONLDEmptyTrail(t *testing.T) {
	block := BreadcrumbJSONLD(nil)
	elements, ok := block["itemListElement"].([]any)
	if !ok || len(elements) != 0 {
		t.Fatalf("expected empty element list, got %v", block["itemListElement"])
	}
}

func TestOrganizationJSONLDSerializes(t *testing.T) {
	block := OrganizationJSONLD(testSite())

	raw, err := json.Marshal(block)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if decoded["@id"] != "https://acme.example/#organization" {
		t.Fatalf("unexpected @id %v", decoded["@id"])
	}
	if decoded["foundingDate"] != "2024" {
		t.Fatalf("expected founding date as string, got %v", decoded["foundingDate"])
	}
}

func TestWebsiteJSONLDReferencesOrganization(t *testing.T) {
	block := WebsiteJSONLD(testSite())

	publisher, ok := block["publisher"].(map[string]any)
	if !ok || publisher["@id"] != "https://acme.example/#organization" {
		t.Fatalf("expected publisher reference, got %v", block["publisher"])
	}
}

func TestFAQJSONLDEmptyInput(t *testing.T) {
	block := FAQJSONLD(nil)

	if block["@type"] != "FAQPage" {
		t.Fatalf("unexpected @type %v", block["@type"])
	}
	entities, ok := block["mainEntity"].([]any)
	if !ok || len(entities) != 0 {
		t.Fatalf("expected structurally valid empty FAQPage, got %v", block["mainEntity"])
	}
}

func TestArticleJSONLDAuthorFallsBackToSite(t *testing.T) {
	block := ArticleJSONLD(testSite(), ArticleInput{
		Headline: "Post",
		URL:      "https://acme.example/blog/post",
	})

	author, ok := block["author"].(map[string]any)
	if !ok {
		t.Fatalf("expected author block, got %v", block["author"])
	}
	if author["name"] != "Acme Studio" {
		t.Fatalf("expected site name fallback, got %v", author["name"])
	}
}
