package middleware

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/nysp/correction-notices/internal/api/metrics"
	"github.com/nysp/correction-notices/internal/core/domain"
	"github.com/nysp/correction-notices/internal/core/ports"
)

// Authenticate resolves the bearer token on every request and stores the
// account for later middleware. A missing or unusable token fails with
// domain.ErrUnauthenticated.
func Authenticate(resolver ports.SessionResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				metrics.TokenResolutionsTotal.WithLabelValues("rejected").Inc()
				return domain.ErrUnauthenticated
			}

			account, err := resolver.Resolve(c.Request().Context(), token)
			if err != nil {
				if errors.Is(err, domain.ErrUnauthenticated) {
					metrics.TokenResolutionsTotal.WithLabelValues("rejected").Inc()
				} else {
					metrics.TokenResolutionsTotal.WithLabelValues("error").Inc()
				}
				return err
			}

			metrics.TokenResolutionsTotal.WithLabelValues("ok").Inc()
			setIdentity(c, account)
			return next(c)
		}
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
