package mailer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func templateData(name string) map[string]any {
	base := map[string]any{
		"CustomerName":  "Ava",
		"Reference":     "WWT-2026-0042",
		"ServiceLabel":  "wine tour",
		"TourDate":      "Saturday, July 11, 2026",
		"PartySize":     6,
		"PickupAddress": "1 Main St, Walla Walla",
	}
	switch name {
	case TplProposalSent:
		base["Title"] = "Summer Tasting Day"
		base["Total"] = "$662.50"
		base["ViewURL"] = "https://wallawallatravel.com/p/abc"
		base["Items"] = []map[string]any{
			{
				"Description":   "Full day wine tour",
				"ServiceDate":   "July 11, 2026",
				"PartySize":     6,
				"DurationHours": 5,
				"Price":         "$575.00",
				"HourlyRate":    "$115.00",
				"LunchEstimate": "$105.00",
				"LunchNote":     "Lunch estimated at $17.50 per person, billed at cost",
			},
			{
				"Description": "Airport transfer",
				"ServiceDate": "July 12, 2026",
				"PartySize":   6,
				"Price":       "$87.50",
			},
		}
	case TplOfferCreated:
		base["Price"] = "$575.00"
		base["Message"] = "We had a cancellation for this Saturday."
		base["ExpiresAt"] = "July 9, 2026"
		base["AcceptURL"] = "https://wallawallatravel.com/o/accept"
		base["DeclineURL"] = "https://wallawallatravel.com/o/decline"
	case TplOfferAccepted:
		base["Price"] = "$575.00"
	case TplInvoiceIssued, TplInvoiceApproved:
		base["Number"] = "INV-2026-0007"
		base["Amount"] = "$662.50"
		base["Memo"] = "Balance for July 11 tour"
		base["ApproveURL"] = "https://wallawallatravel.com/i/approve"
	case TplLunchOrderCreated, TplLunchOrderApproved:
		base["PerPerson"] = "$17.50"
		base["Estimate"] = "$105.00"
		base["MenuNotes"] = "One vegetarian box included."
		base["ApproveURL"] = "https://wallawallatravel.com/l/approve"
	}
	return base
}

func TestRegistry_RenderAllTemplates(t *testing.T) {
	registry, err := NewRegistry()
	require.NoError(t, err)

	for name := range subjectLines {
		email, err := registry.Render(name, "ava@example.com", templateData(name))
		require.NoError(t, err, "template %s", name)
		assert.Equal(t, "ava@example.com", email.To)
		assert.NotEmpty(t, email.Subject, "template %s", name)
		assert.Contains(t, email.HTML, "Walla Walla Travel", "template %s", name)
	}
}

func TestRegistry_Render_UnknownTemplate(t *testing.T) {
	registry, err := NewRegistry()
	require.NoError(t, err)

	_, err = registry.Render("password_reset", "ava@example.com", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown email template")
}

func TestRegistry_Render_ProposalPricingBranch(t *testing.T) {
	registry, err := NewRegistry()
	require.NoError(t, err)

	email, err := registry.Render(TplProposalSent, "ava@example.com", templateData(TplProposalSent))
	require.NoError(t, err)

	// почасовая строка только у тура, у трансфера фиксированная
	assert.Contains(t, email.HTML, "$115.00/hour")
	assert.Contains(t, email.HTML, "Lunch estimate $105.00")
	assert.Contains(t, email.HTML, "Flat rate: <strong>$87.50</strong>")
}

func TestResendSender_Send(t *testing.T) {
	var got sendRequest
	var auth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/emails", r.URL.Path)
		auth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	sender := NewResendSender(srv.URL, "re_test_key", "Walla Walla Travel <tours@wallawallatravel.com>")
	err := sender.Send(context.Background(), Email{
		To:      "ava@example.com",
		Subject: "Your booking is confirmed (WWT-2026-0042)",
		HTML:    "<p>hello</p>",
	})

	require.NoError(t, err)
	assert.Equal(t, "Bearer re_test_key", auth)
	assert.Equal(t, "Walla Walla Travel <tours@wallawallatravel.com>", got.From)
	assert.Equal(t, []string{"ava@example.com"}, got.To)
	assert.Equal(t, "Your booking is confirmed (WWT-2026-0042)", got.Subject)
	assert.Equal(t, "<p>hello</p>", got.HTML)
}

func TestResendSender_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message":"invalid from address"}`))
	}))
	defer srv.Close()

	sender := NewResendSender(srv.URL, "re_test_key", "bad")
	err := sender.Send(context.Background(), Email{To: "ava@example.com"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "422")
	assert.Contains(t, err.Error(), "invalid from address")
}

func TestNewSender_DisabledWithoutKey(t *testing.T) {
	log := newTestLogger(t)

	sender := NewSender("", "", "tours@wallawallatravel.com", log)

	_, disabled := sender.(*DisabledSender)
	assert.True(t, disabled)
	require.NoError(t, sender.Send(context.Background(), Email{To: "ava@example.com", Subject: "s"}))
}
