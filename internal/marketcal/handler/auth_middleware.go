package handler

import (
	"net/http"
	"strings"

	"marketcal/internal/marketcal/model"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

const principalContextKey = "principal"

// SessionClaims is the token payload the identity collaborator issues. The
// core only ever sees the Principal extracted here.
type SessionClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// AuthMiddleware parses the bearer token into a Principal and stores it on the
// request context. Missing or invalid tokens stop the request with 401.
func AuthMiddleware(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, model.ErrorResponse{
					Error: model.ErrorDetail{Code: "unauthorized", Message: "Bearer token required"},
				})
			}
			tokenStr := strings.TrimPrefix(header, "Bearer ")

			claims := &SessionClaims{}
			token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return secret, nil
			})
			if err != nil || !token.Valid || claims.Subject == "" {
				return c.JSON(http.StatusUnauthorized, model.ErrorResponse{
					Error: model.ErrorDetail{Code: "unauthorized", Message: "Invalid or expired token"},
				})
			}

			role := claims.Role
			if !model.AllowedRoles[role] {
				role = model.RoleUser
			}

			c.Set(principalContextKey, model.Principal{ID: claims.Subject, Role: role})
			return next(c)
		}
	}
}

// currentPrincipal returns the authenticated caller set by AuthMiddleware.
func currentPrincipal(c echo.Context) model.Principal {
	if p, ok := c.Get(principalContextKey).(model.Principal); ok {
		return p
	}
	return model.Principal{}
}
