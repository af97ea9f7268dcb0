package middleware

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/nysp/correction-notices/internal/api/metrics"
	"github.com/nysp/correction-notices/internal/core/domain"
	"github.com/nysp/correction-notices/internal/core/security"
)

// Authorize enforces the policy entry for op on res against the identity
// stored by Authenticate.
func Authorize(policy *security.Policy, res security.Resource, op security.Operation) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := policy.Authorize(Identity(c), res, op); err != nil {
				reason := "forbidden"
				if errors.Is(err, domain.ErrUnauthenticated) {
					reason = "unauthenticated"
				}
				metrics.AuthorizationDeniedTotal.WithLabelValues(string(res), string(op), reason).Inc()
				return err
			}
			return next(c)
		}
	}
}
