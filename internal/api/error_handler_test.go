package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nysp/correction-notices/internal/core/domain"
)

func TestHTTPErrorHandler_Mapping(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		code      int
		message   string
		challenge bool
	}{
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "incorrect username or password", true},
		{"unauthenticated", domain.ErrUnauthenticated, http.StatusUnauthorized, "could not validate credentials", true},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, "access denied", false},
		{"not found", domain.ErrDriverNotFound, http.StatusNotFound, "driver not found", false},
		{"conflict", domain.ErrDuplicateVIN, http.StatusConflict, domain.ErrDuplicateVIN.Error(), false},
		{"storage", domain.StorageError("find drivers", errors.New("socket closed")), http.StatusInternalServerError, "internal server error", false},
		{"echo error", echo.NewHTTPError(http.StatusUnprocessableEntity, "state is required"), http.StatusUnprocessableEntity, "state is required", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			NewHTTPErrorHandler(zerolog.Nop())(tt.err, c)

			assert.Equal(t, tt.code, rec.Code)
			var body errorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.message, body.Error)
			if tt.challenge {
				assert.Equal(t, "Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))
			} else {
				assert.Empty(t, rec.Header().Get(echo.HeaderWWWAuthenticate))
			}
		})
	}
}

func TestHTTPErrorHandler_StorageDetailNotLeaked(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(domain.StorageError("insert accounts", errors.New("E11000 $2a$10$hash")), c)

	assert.NotContains(t, rec.Body.String(), "E11000")
	assert.NotContains(t, rec.Body.String(), "$2a$")
}
