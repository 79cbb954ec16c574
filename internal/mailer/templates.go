package mailer

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	texttemplate "text/template"
)

// Template names, one per customer-facing transition.
const (
	TplBookingReceived    = "booking_received"
	TplBookingConfirmed   = "booking_confirmed"
	TplProposalSent       = "proposal_sent"
	TplOfferCreated       = "offer_created"
	TplOfferAccepted      = "offer_accepted"
	TplOfferDeclined      = "offer_declined"
	TplOfferExpired       = "offer_expired"
	TplInvoiceIssued      = "invoice_issued"
	TplInvoiceApproved    = "invoice_approved"
	TplLunchOrderCreated  = "lunch_order_created"
	TplLunchOrderApproved = "lunch_order_approved"
	TplBookingReminder    = "booking_reminder"
)

var subjectLines = map[string]string{
	TplBookingReceived:    "We received your request ({{.Reference}})",
	TplBookingConfirmed:   "Your booking is confirmed ({{.Reference}})",
	TplProposalSent:       "Your proposal from Walla Walla Travel ({{.Reference}})",
	TplOfferCreated:       "A tour date is available for you ({{.Reference}})",
	TplOfferAccepted:      "Tour confirmed for {{.TourDate}} ({{.Reference}})",
	TplOfferDeclined:      "Tour offer declined ({{.Reference}})",
	TplOfferExpired:       "Your tour offer has expired ({{.Reference}})",
	TplInvoiceIssued:      "Invoice {{.Number}} from Walla Walla Travel",
	TplInvoiceApproved:    "Invoice {{.Number}} approved",
	TplLunchOrderCreated:  "Lunch order for your tour ({{.Reference}})",
	TplLunchOrderApproved: "Lunch order approved ({{.Reference}})",
	TplBookingReminder:    "Your {{.ServiceLabel}} is coming up ({{.Reference}})",
}

//go:embed templates/*.html
var templateFS embed.FS

// Registry holds the parsed email templates. Bodies come from the embedded
// templates directory, subjects from subjectLines above.
type Registry struct {
	bodies   *template.Template
	subjects map[string]*texttemplate.Template
}

func NewRegistry() (*Registry, error) {
	bodies, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse email templates: %w", err)
	}

	subjects := make(map[string]*texttemplate.Template, len(subjectLines))
	for name, line := range subjectLines {
		if bodies.Lookup(name+".html") == nil {
			return nil, fmt.Errorf("email template %s has no body file", name)
		}
		tpl, err := texttemplate.New(name).Parse(line)
		if err != nil {
			return nil, fmt.Errorf("parse subject for %s: %w", name, err)
		}
		subjects[name] = tpl
	}

	return &Registry{bodies: bodies, subjects: subjects}, nil
}

// Render produces a ready-to-send email for a registered template.
func (r *Registry) Render(name, to string, data any) (Email, error) {
	subjectTpl, ok := r.subjects[name]
	if !ok {
		return Email{}, fmt.Errorf("unknown email template %q", name)
	}

	var subject bytes.Buffer
	if err := subjectTpl.Execute(&subject, data); err != nil {
		return Email{}, fmt.Errorf("render subject %s: %w", name, err)
	}

	var body bytes.Buffer
	if err := r.bodies.ExecuteTemplate(&body, name+".html", data); err != nil {
		return Email{}, fmt.Errorf("render body %s: %w", name, err)
	}

	return Email{To: to, Subject: subject.String(), HTML: body.String()}, nil
}
