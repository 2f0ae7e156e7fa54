package handler

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// signatureHeader carries the content store's webhook signature, formatted as
// "t=<timestamp>,v1=<base64url(HMAC-SHA256('<timestamp>.<body>'))>".
const signatureHeader = "sanity-webhook-signature"

const maxWebhookBody = 1 << 20

type revalidatePayload struct {
	Type string `json:"_type"`
	Slug *struct {
		Current string `json:"current"`
	} `json:"slug"`
}

// Revalidate receives change notifications from the content store and drops
// the cached queries touching the changed document kind. The next fetch for
// any affected route observes fresh data.
func (a *API) Revalidate(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		log.Printf("revalidate webhook: read body: %v", err)
		respondError(c, http.StatusInternalServerError, "unable to read request body")
		return
	}

	if !validSignature(body, c.GetHeader(signatureHeader), a.revalidateSecret) {
		c.String(http.StatusUnauthorized, "Invalid signature")
		return
	}

	var payload revalidatePayload
	if err := json.Unmarshal(body, &payload); err != nil || payload.Type == "" {
		c.String(http.StatusBadRequest, "Bad Request")
		return
	}

	dropped := a.cache.InvalidateKind(payload.Type)

	slug := ""
	if payload.Slug != nil {
		slug = payload.Slug.Current
	}
	log.Printf("revalidated kind %q (slug %q): %d cached queries dropped", payload.Type, slug, dropped)

	c.JSON(http.StatusOK, gin.H{
		"revalidated": true,
		"now":         time.Now().UnixMilli(),
		"body":        json.RawMessage(body),
	})
}

// validSignature checks the webhook signature against the shared secret. An
// empty secret rejects everything; the endpoint must not be open.
func validSignature(body []byte, header, secret string) bool {
	if secret == "" || header == "" {
		return false
	}

	var timestamp, signature string
	for _, part := range strings.Split(header, ",") {
		part = strings.TrimSpace(part)
		switch {
		case strings.HasPrefix(part, "t="):
			timestamp = strings.TrimPrefix(part, "t=")
		case strings.HasPrefix(part, "v1="):
			signature = strings.TrimPrefix(part, "v1=")
		}
	}
	if timestamp == "" || signature == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(timestamp))
	mac.Write([]byte("."))
	mac.Write(body)
	expected := base64.RawURLEncoding.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
