package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/WallaWallaTravel/walla-walla-travel/internal/domain"
)

func TestActionToken_RoundTrip(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	token, err := m.ActionToken("inv-123", ActionApproveInvoice, time.Hour)
	require.NoError(t, err)

	id, err := m.ParseAction(token, ActionApproveInvoice)
	require.NoError(t, err)
	assert.Equal(t, "inv-123", id)
}

func TestParseAction_WrongAction(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	token, err := m.ActionToken("inv-123", ActionApproveInvoice, time.Hour)
	require.NoError(t, err)

	_, err = m.ParseAction(token, ActionRespondOffer)
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestParseAction_Expired(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	token, err := m.ActionToken("inv-123", ActionApproveInvoice, -time.Minute)
	require.NoError(t, err)

	_, err = m.ParseAction(token, ActionApproveInvoice)
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestParseAction_WrongSecret(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)
	other := NewTokenManager("other-secret", time.Hour)

	token, err := other.ActionToken("inv-123", ActionApproveInvoice, time.Hour)
	require.NoError(t, err)

	_, err = m.ParseAction(token, ActionApproveInvoice)
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestParseAction_Garbage(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	_, err := m.ParseAction("not-a-jwt", ActionApproveInvoice)
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestStaffToken_RoundTrip(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	token, err := m.StaffToken()
	require.NoError(t, err)
	require.NoError(t, m.ParseStaff(token))
}

func TestParseStaff_RejectsActionToken(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	token, err := m.ActionToken("inv-123", ActionApproveInvoice, time.Hour)
	require.NoError(t, err)

	err = m.ParseStaff(token)
	require.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCheckStaffPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("merlot-2026"), bcrypt.MinCost)
	require.NoError(t, err)

	require.NoError(t, CheckStaffPassword(string(hash), "merlot-2026"))
	require.ErrorIs(t, CheckStaffPassword(string(hash), "cabernet"), domain.ErrUnauthorized)
}
