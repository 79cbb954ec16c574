package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/wb-go/wbf/ginext"

	"github.com/WallaWallaTravel/walla-walla-travel/internal/auth"
	"github.com/WallaWallaTravel/walla-walla-travel/internal/domain"
)

// StaffAuth guards the concierge endpoints with the bearer token handed
// out by the admin login.
func StaffAuth(tokens *auth.TokenManager) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "authorization required"})
			return
		}

		err := tokens.ParseStaff(strings.TrimPrefix(header, "Bearer "))
		switch {
		case errors.Is(err, domain.ErrForbidden):
			c.AbortWithStatusJSON(http.StatusForbidden, ginext.H{"error": "staff access only"})
			return
		case err != nil:
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "invalid or expired token"})
			return
		}

		c.Next()
	}
}
