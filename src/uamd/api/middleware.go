package api

import (
	"net/http"
	"strings"

	"github.com/bitswalk/uam/src/common/errors"
	"github.com/bitswalk/uam/src/uamd/auth"
	"github.com/gin-gonic/gin"
)

// GetClaimsFromContext retrieves the token claims stored by auth middleware
func GetClaimsFromContext(c *gin.Context) *auth.TokenClaims {
	if claims, exists := c.Get("claims"); exists {
		if tokenClaims, ok := claims.(*auth.TokenClaims); ok {
			return tokenClaims
		}
	}
	return nil
}

// authRequired is a middleware that requires a valid bearer token.
//
// The Authorization header is split on the first space and the second part is
// used as the token whatever the scheme says; "Bearer x" and "Token x" are
// treated identically. A missing header or missing second part is a 401;
// any verification failure, expiry included, is a 403.
func (a *API) authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errors.ErrMissingToken.ToResponse())
			return
		}

		_, token, found := strings.Cut(header, " ")
		if !found || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errors.ErrMissingToken.ToResponse())
			return
		}

		claims, err := a.jwtService.ValidateToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, errors.ErrTokenInvalid.ToResponse())
			return
		}

		// Store claims in context for handlers to use
		c.Set("claims", claims)
		c.Next()
	}
}

// adminRequired is a middleware that requires the ADMIN role.
// Must run after authRequired.
func (a *API) adminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaimsFromContext(c)
		if claims == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errors.ErrMissingToken.ToResponse())
			return
		}

		if !claims.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, errors.ErrForbidden.ToResponse())
			return
		}

		c.Next()
	}
}

// CORSMiddleware handles cross-origin requests, preflight included
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
