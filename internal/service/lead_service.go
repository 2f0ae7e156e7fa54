package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/url"
	"reflect"
	"strings"
	"time"

	"github.com/WelcomeWebWorks/Boiler-Plate/internal/cms"
	"github.com/WelcomeWebWorks/Boiler-Plate/internal/config"
	"github.com/WelcomeWebWorks/Boiler-Plate/internal/mailer"
	"github.com/go-playground/validator/v10"
)

// ContactCooldown is how long a client should wait before showing the contact
// form again after a successful submission. UX guard only, tracked in the
// client's cookie session, not a server-enforced rate limit.
const ContactCooldown = 24 * time.Hour

// ContactMessage is a contact form submission.
type ContactMessage struct {
	Name    string `form:"name" json:"name" validate:"required,min=2"`
	Email   string `form:"email" json:"email" validate:"required,email"`
	Subject string `form:"subject" json:"subject" validate:"required,min=5"`
	Message string `form:"message" json:"message" validate:"required,min=10"`
}

// NewsletterSubscription is a newsletter signup submission.
type NewsletterSubscription struct {
	Email     string   `form:"email" json:"email" validate:"required,email"`
	UserAgent string   `form:"userAgent" json:"userAgent"`
	Latitude  *float64 `form:"latitude" json:"latitude" validate:"omitempty"`
	Longitude *float64 `form:"longitude" json:"longitude" validate:"omitempty"`
}

// PopupInquiry is a service-interest popup submission.
type PopupInquiry struct {
	Name    string `form:"name" json:"name" validate:"required,min=2"`
	Email   string `form:"email" json:"email" validate:"required,email"`
	Service string `form:"service" json:"service" validate:"required"`
	Message string `form:"message" json:"message"`
}

// SubmitResult is the terminal state of one lead submission.
type SubmitResult struct {
	Success     bool                `json:"success"`
	Message     string              `json:"message"`
	FieldErrors map[string][]string `json:"fieldErrors,omitempty"`
}

// SubscriberStore is the content-store write surface the newsletter path
// needs. Satisfied by *cms.Client.
type SubscriberStore interface {
	CanWrite() bool
	CreateSubscriber(ctx context.Context, sub cms.NewsletterSubscriber) error
}

// LeadService validates lead submissions and dispatches their side effect.
// Validation is a hard gate: no send or write is attempted for invalid input.
type LeadService struct {
	validate *validator.Validate
	mailer   mailer.Mailer
	store    SubscriberStore
	site     config.Site
	from     string
	to       string
	now      func() time.Time
}

// NewLeadService wires the workflow to its collaborators. When to is empty the
// site contact address receives the lead emails.
func NewLeadService(m mailer.Mailer, store SubscriberStore, site config.Site, from, to string) *LeadService {
	if to == "" {
		to = site.Email
	}
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &LeadService{
		validate: v,
		mailer:   m,
		store:    store,
		site:     site,
		from:     from,
		to:       to,
		now:      time.Now,
	}
}

// fieldMessages maps field+constraint to the human-readable message surfaced
// to the end user.
var fieldMessages = map[string]string{
	"name|required":    "Name must be at least 2 characters.",
	"name|min":         "Name must be at least 2 characters.",
	"email|required":   "Please enter a valid email address.",
	"email|email":      "Please enter a valid email address.",
	"subject|required": "Subject must be at least 5 characters.",
	"subject|min":      "Subject must be at least 5 characters.",
	"message|required": "Message must be at least 10 characters.",
	"message|min":      "Message must be at least 10 characters.",
	"service|required": "Please select a service.",
}

func (s *LeadService) fieldErrors(err error) map[string][]string {
	var verrs validator.ValidationErrors
	result := make(map[string][]string)
	if !errors.As(err, &verrs) {
		result["form"] = []string{"Invalid submission."}
		return result
	}
	for _, fe := range verrs {
		field := fe.Field()
		message, ok := fieldMessages[field+"|"+fe.Tag()]
		if !ok {
			message = "This field is invalid."
		}
		result[field] = append(result[field], message)
	}
	return result
}

// SubmitContact validates and dispatches a contact message by email, with the
// reply-to set to the submitter.
func (s *LeadService) SubmitContact(ctx context.Context, msg ContactMessage) SubmitResult {
	if err := s.validate.Struct(msg); err != nil {
		return SubmitResult{
			Success:     false,
			Message:     "Please check the form for errors.",
			FieldErrors: s.fieldErrors(err),
		}
	}

	email := mailer.Message{
		From:    s.site.Name + " <" + s.from + ">",
		To:      []string{s.to},
		ReplyTo: msg.Email,
		Subject: "New Contact Form Submission - " + s.site.Name,
		Text:    contactEmailText(msg),
		HTML:    contactEmailHTML(msg),
	}
	if err := s.mailer.Send(ctx, email); err != nil {
		log.Printf("contact email delivery failed: %v", err)
		return SubmitResult{Success: false, Message: "Failed to send email. Please try again later."}
	}
	return SubmitResult{Success: true, Message: "Message sent successfully! We will reply to you very shortly."}
}

// SubmitPopup validates and dispatches a popup service inquiry by email.
func (s *LeadService) SubmitPopup(ctx context.Context, inquiry PopupInquiry) SubmitResult {
	if err := s.validate.Struct(inquiry); err != nil {
		return SubmitResult{
			Success:     false,
			Message:     "Please fill all required fields correctly.",
			FieldErrors: s.fieldErrors(err),
		}
	}

	email := mailer.Message{
		From:    s.from,
		To:      []string{s.to},
		ReplyTo: inquiry.Email,
		Subject: "New Service Inquiry (" + inquiry.Service + ") - " + s.site.Name,
		Text:    popupEmailText(inquiry),
		HTML:    popupEmailHTML(inquiry),
	}
	if err := s.mailer.Send(ctx, email); err != nil {
		log.Printf("popup inquiry delivery failed: %v", err)
		return SubmitResult{Success: false, Message: "Failed to submit. Please try again."}
	}
	return SubmitResult{Success: true, Message: "Thank you! We will contact you soon."}
}

// SubmitNewsletter validates a subscription, records it in the content store,
// then best-effort notifies by email. A notification failure is logged but
// does not fail the submission; the store write is the source of truth.
func (s *LeadService) SubmitNewsletter(ctx context.Context, sub NewsletterSubscription) SubmitResult {
	if err := s.validate.Struct(sub); err != nil {
		return SubmitResult{
			Success:     false,
			Message:     "Please enter a valid email address.",
			FieldErrors: s.fieldErrors(err),
		}
	}

	// Missing write credentials are a configuration error; the store write
	// must not even be attempted.
	if !s.store.CanWrite() {
		log.Printf("newsletter subscription rejected: content-store write token is not configured")
		return SubmitResult{Success: false, Message: "System configuration error. Please contact support."}
	}

	userAgent := sub.UserAgent
	if userAgent == "" {
		userAgent = "Unknown"
	}
	device, _ := json.Marshal(map[string]string{"userAgent": userAgent})

	subscriber := cms.NewsletterSubscriber{
		Email:         sub.Email,
		Status:        "subscribed",
		DeviceDetails: string(device),
		SubscribedAt:  s.now().UTC().Format(time.RFC3339),
	}
	if sub.Latitude != nil && sub.Longitude != nil {
		subscriber.Location = &cms.GeoPoint{Latitude: *sub.Latitude, Longitude: *sub.Longitude}
	}

	if err := s.store.CreateSubscriber(ctx, subscriber); err != nil {
		log.Printf("newsletter subscriber write failed: %v", err)
		return SubmitResult{Success: false, Message: "Something went wrong. Please try again later."}
	}

	notification := mailer.Message{
		From:    s.from,
		To:      []string{s.to},
		Subject: "New Newsletter Subscription!",
		Text:    "New subscriber: " + sub.Email,
		HTML:    newsletterEmailHTML(sub.Email, s.site),
	}
	if err := s.mailer.Send(ctx, notification); err != nil {
		log.Printf("newsletter notification delivery failed (subscription already recorded): %v", err)
	}

	return SubmitResult{Success: true, Message: "Successfully subscribed to newsletter!"}
}

// WhatsAppLink formats a contact message into a prefilled deep link. This
// channel bypasses server dispatch entirely; the concern ends at URL
// construction.
func (s *LeadService) WhatsAppLink(msg ContactMessage) string {
	text := "*New Contact Submission*\n\n" +
		"*Name:* " + msg.Name + "\n" +
		"*Email:* " + msg.Email + "\n" +
		"*Subject:* " + msg.Subject + "\n" +
		"*Message:* " + msg.Message
	return "https://wa.me/" + s.site.WhatsAppNumber + "?text=" + url.QueryEscape(text)
}

// ValidateContact runs the contact schema without dispatching, for the
// WhatsApp channel which still requires well-formed input.
func (s *LeadService) ValidateContact(msg ContactMessage) map[string][]string {
	if err := s.validate.Struct(msg); err != nil {
		return s.fieldErrors(err)
	}
	return nil
}
