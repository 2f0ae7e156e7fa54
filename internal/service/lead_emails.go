package service

import (
	"fmt"
	"html"

	"github.com/WelcomeWebWorks/Boiler-Plate/internal/config"
)

// Email compositions for the lead-capture workflow. Every message carries a
// plain-text body alongside the HTML one; user-supplied values are escaped
// before interpolation into markup.

func contactEmailText(msg ContactMessage) string {
	return fmt.Sprintf("Name: %s\nEmail: %s\nSubject: %s\nMessage: %s",
		msg.Name, msg.Email, msg.Subject, msg.Message)
}

func contactEmailHTML(msg ContactMessage) string {
	return fmt.Sprintf(`<h2>New Contact Form Submission</h2>
<p><strong>Name:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Subject:</strong> %s</p>
<p><strong>Message:</strong></p>
<p>%s</p>`,
		html.EscapeString(msg.Name),
		html.EscapeString(msg.Email),
		html.EscapeString(msg.Subject),
		html.EscapeString(msg.Message))
}

func popupEmailText(inquiry PopupInquiry) string {
	message := inquiry.Message
	if message == "" {
		message = "No message provided"
	}
	return fmt.Sprintf("Name: %s\nEmail: %s\nService: %s\nMessage: %s",
		inquiry.Name, inquiry.Email, inquiry.Service, message)
}

func popupEmailHTML(inquiry PopupInquiry) string {
	body := fmt.Sprintf(`<h2>New Lead Alert</h2>
<p>A potential customer has shown interest through the website popup form.</p>
<p><strong>Name:</strong> %s</p>
<p><strong>Email:</strong> <a href="mailto:%s">%s</a></p>
<p><strong>Interested Service:</strong> %s</p>`,
		html.EscapeString(inquiry.Name),
		html.EscapeString(inquiry.Email),
		html.EscapeString(inquiry.Email),
		html.EscapeString(inquiry.Service))
	if inquiry.Message != "" {
		body += fmt.Sprintf("\n<p><strong>Message:</strong> %s</p>", html.EscapeString(inquiry.Message))
	}
	return body
}

func newsletterEmailHTML(email string, site config.Site) string {
	return fmt.Sprintf(`<h2>New Newsletter Subscriber</h2>
<p>Someone just subscribed to the %s newsletter.</p>
<p><strong>Subscriber Email:</strong> %s</p>
<p>This notification was sent from the website's newsletter form.</p>`,
		html.EscapeString(site.Name),
		html.EscapeString(email))
}
