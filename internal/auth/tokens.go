package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/WallaWallaTravel/walla-walla-travel/internal/domain"
)

// Actions carried by customer action-link tokens. Each emailed link is
// signed for exactly one resource and one action.
const (
	ActionApproveInvoice    = "approve_invoice"
	ActionApproveLunchOrder = "approve_lunch_order"
	ActionRespondOffer      = "respond_offer"
	ActionViewProposal      = "view_proposal"
)

const roleStaff = "staff"

// TokenManager signs and verifies the JWTs behind customer action links
// and staff sessions.
type TokenManager struct {
	secret   []byte
	staffTTL time.Duration
}

func NewTokenManager(secret string, staffTTL time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), staffTTL: staffTTL}
}

// ActionToken signs a single-purpose token: sub is the resource id, act the
// permitted action.
func (m *TokenManager) ActionToken(resourceID, action string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub": resourceID,
		"act": action,
		"exp": now.Add(ttl).Unix(),
		"iat": now.Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign action token: %w", err)
	}
	return signed, nil
}

// ParseAction verifies a token and returns the resource id it was signed
// for. A valid token with a different action is still unauthorized.
func (m *TokenManager) ParseAction(token, wantAction string) (string, error) {
	claims, err := m.parse(token)
	if err != nil {
		return "", err
	}

	if action, _ := claims["act"].(string); action != wantAction {
		return "", domain.ErrUnauthorized
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", domain.ErrUnauthorized
	}
	return sub, nil
}

// StaffToken signs a staff session token for the admin API.
func (m *TokenManager) StaffToken() (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"role": roleStaff,
		"exp":  now.Add(m.staffTTL).Unix(),
		"iat":  now.Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign staff token: %w", err)
	}
	return signed, nil
}

// ParseStaff verifies a staff session token.
func (m *TokenManager) ParseStaff(token string) error {
	claims, err := m.parse(token)
	if err != nil {
		return err
	}
	if role, _ := claims["role"].(string); role != roleStaff {
		return domain.ErrForbidden
	}
	return nil
}

func (m *TokenManager) parse(raw string) (jwt.MapClaims, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !tok.Valid {
		return nil, domain.ErrUnauthorized
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return claims, nil
}

// CheckStaffPassword compares a login attempt against the configured
// bcrypt hash.
func CheckStaffPassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return domain.ErrUnauthorized
	}
	return nil
}
