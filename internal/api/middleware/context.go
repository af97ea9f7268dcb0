package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/nysp/correction-notices/internal/core/domain"
)

const identityKey = "identity"

// Identity returns the account resolved by Authenticate, or nil on routes that
// do not authenticate.
func Identity(c echo.Context) *domain.Account {
	account, _ := c.Get(identityKey).(*domain.Account)
	return account
}

func setIdentity(c echo.Context, account *domain.Account) {
	c.Set(identityKey, account)
}
