package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/nysp/correction-notices/internal/core/domain"
)

type stubResolver struct {
	accounts map[string]*domain.Account
	err      error
}

func (s stubResolver) Resolve(_ context.Context, token string) (*domain.Account, error) {
	if s.err != nil {
		return nil, s.err
	}
	if a, ok := s.accounts[token]; ok {
		return a, nil
	}
	return nil, domain.ErrUnauthenticated
}

var alice = &domain.Account{ID: 1, Username: "alice", Role: domain.RoleOfficer}

func runAuth(t *testing.T, resolver stubResolver, header string) (*domain.Account, bool, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/drivers", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	var seen *domain.Account
	called := false
	err := Authenticate(resolver)(func(c echo.Context) error {
		called = true
		seen = Identity(c)
		return nil
	})(c)
	return seen, called, err
}

func TestAuthenticate_ValidToken(t *testing.T) {
	resolver := stubResolver{accounts: map[string]*domain.Account{"good": alice}}

	for _, header := range []string{"Bearer good", "bearer good", "BEARER  good"} {
		seen, called, err := runAuth(t, resolver, header)
		if err != nil {
			t.Fatalf("%q: handler error: %v", header, err)
		}
		if !called || seen != alice {
			t.Fatalf("%q: expected next called with alice, got called=%v identity=%+v", header, called, seen)
		}
	}
}

func TestAuthenticate_Rejected(t *testing.T) {
	resolver := stubResolver{accounts: map[string]*domain.Account{"good": alice}}

	for _, header := range []string{"", "Bearer", "Bearer ", "Token good", "Basic YWxpY2U6cHc=", "Bearer bad"} {
		_, called, err := runAuth(t, resolver, header)
		if called {
			t.Fatalf("%q: should not reach next", header)
		}
		if !errors.Is(err, domain.ErrUnauthenticated) {
			t.Fatalf("%q: expected ErrUnauthenticated, got %v", header, err)
		}
	}
}

func TestAuthenticate_StorageErrorPropagates(t *testing.T) {
	storageErr := domain.StorageError("find accounts", errors.New("timeout"))
	_, called, err := runAuth(t, stubResolver{err: storageErr}, "Bearer good")
	if called {
		t.Fatalf("should not reach next")
	}
	if !errors.Is(err, domain.ErrStorage) {
		t.Fatalf("expected storage error, got %v", err)
	}
}
