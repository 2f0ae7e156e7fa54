package handler

import (
	"log"
	"net/http"
	"time"

	"github.com/WelcomeWebWorks/Boiler-Plate/internal/service"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// lastContactSubmissionKey is the session key holding the timestamp of the
// visitor's last successful contact submission.
const lastContactSubmissionKey = "last_contact_submission"

func leadStatus(result service.SubmitResult) int {
	switch {
	case result.Success:
		return http.StatusOK
	case result.FieldErrors != nil:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// SubmitContact handles the contact form. A successful submission stamps the
// visitor's session so clients can honor the resubmission cooldown.
func (a *API) SubmitContact(c *gin.Context) {
	var msg service.ContactMessage
	if err := c.ShouldBind(&msg); err != nil {
		respondError(c, http.StatusBadRequest, "invalid form payload")
		return
	}

	result := a.leads.SubmitContact(c.Request.Context(), msg)
	if result.Success {
		a.stampContactSubmission(c)
	}
	c.JSON(leadStatus(result), result)
}

// ContactWhatsApp validates a contact message and returns the prefilled deep
// link. No server-side dispatch happens on this channel, but a well-formed
// submission still stamps the cooldown.
func (a *API) ContactWhatsApp(c *gin.Context) {
	var msg service.ContactMessage
	if err := c.ShouldBind(&msg); err != nil {
		respondError(c, http.StatusBadRequest, "invalid form payload")
		return
	}

	if fieldErrors := a.leads.ValidateContact(msg); fieldErrors != nil {
		c.JSON(http.StatusUnprocessableEntity, service.SubmitResult{
			Success:     false,
			Message:     "Please check the form for errors.",
			FieldErrors: fieldErrors,
		})
		return
	}

	a.stampContactSubmission(c)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"url":     a.leads.WhatsAppLink(msg),
	})
}

// ContactCooldown reports whether the visitor's session is inside the 24h
// resubmission window. A UX guard only; nothing server-side depends on it.
func (a *API) ContactCooldown(c *gin.Context) {
	session := sessions.Default(c)
	raw, ok := session.Get(lastContactSubmissionKey).(string)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"restricted": false})
		return
	}

	last, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"restricted": false})
		return
	}

	until := last.Add(service.ContactCooldown)
	if time.Now().After(until) {
		c.JSON(http.StatusOK, gin.H{"restricted": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"restricted": true,
		"until":      until.UTC().Format(time.RFC3339),
	})
}

func (a *API) stampContactSubmission(c *gin.Context) {
	session := sessions.Default(c)
	session.Set(lastContactSubmissionKey, time.Now().UTC().Format(time.RFC3339))
	if err := session.Save(); err != nil {
		log.Printf("failed to persist contact cooldown: %v", err)
	}
}

// SubmitNewsletter handles newsletter signups. The user agent falls back to
// the request header when the form omits it.
func (a *API) SubmitNewsletter(c *gin.Context) {
	var sub service.NewsletterSubscription
	if err := c.ShouldBind(&sub); err != nil {
		respondError(c, http.StatusBadRequest, "invalid form payload")
		return
	}
	if sub.UserAgent == "" {
		sub.UserAgent = c.Request.UserAgent()
	}

	result := a.leads.SubmitNewsletter(c.Request.Context(), sub)
	c.JSON(leadStatus(result), result)
}

// SubmitPopup handles the service-interest popup form.
func (a *API) SubmitPopup(c *gin.Context) {
	var inquiry service.PopupInquiry
	if err := c.ShouldBind(&inquiry); err != nil {
		respondError(c, http.StatusBadRequest, "invalid form payload")
		return
	}

	result := a.leads.SubmitPopup(c.Request.Context(), inquiry)
	c.JSON(leadStatus(result), result)
}
