package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/qmshan/blogapi/api/user"
)

const authUserKey = "authUser"

// SessionVerifier resolves a bearer token to the authenticated user.
type SessionVerifier interface {
	VerifyToken(token string) (*user.AuthUser, error)
}

// Auth creates an authorization middleware that rejects requests
// without a valid bearer session.
func Auth(verifier SessionVerifier) echo.MiddlewareFunc {
	return auth(verifier, func(c echo.Context) error {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
	})
}

// AuthWithLoginState behaves like Auth but rejects with the drive
// proxy's `{error, logged_in:false}` shape.
func AuthWithLoginState(verifier SessionVerifier) echo.MiddlewareFunc {
	return auth(verifier, func(c echo.Context) error {
		return c.JSON(http.StatusUnauthorized, map[string]interface{}{
			"error":     "not logged in",
			"logged_in": false,
		})
	})
}

func auth(verifier SessionVerifier, reject func(echo.Context) error) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := user.BearerToken(c)
			if token == "" {
				return reject(c)
			}

			authUser, err := verifier.VerifyToken(token)
			if err != nil {
				return reject(c)
			}

			c.Set(authUserKey, authUser)

			return next(c)
		}
	}
}

// CurrentUser returns the authenticated user set by Auth, nil when absent.
func CurrentUser(c echo.Context) *user.AuthUser {
	if u, ok := c.Get(authUserKey).(*user.AuthUser); ok {
		return u
	}
	return nil
}
