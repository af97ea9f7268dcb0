package handler

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/nysp/correction-notices/internal/api/metrics"
	"github.com/nysp/correction-notices/internal/core/domain"
	"github.com/nysp/correction-notices/internal/core/ports"
)

// TokenHandler exchanges form credentials for a bearer token.
type TokenHandler struct {
	auth ports.Authenticator
}

func NewTokenHandler(auth ports.Authenticator) *TokenHandler {
	return &TokenHandler{auth: auth}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Issue handles POST, PUT and DELETE /token. All three re-authenticate with
// the submitted credentials and return a fresh token.
//
// @Summary      Obtain a bearer token
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Accept       mpfd
// @Produce      json
// @Param        username  formData  string  true  "Account username"
// @Param        password  formData  string  true  "Account password"
// @Success      200       {object}  tokenResponse
// @Failure      401       {object}  errorResponse
// @Router       /token [post]
// @Router       /token [put]
// @Router       /token [delete]
func (h *TokenHandler) Issue(c echo.Context) error {
	username, password, err := formCredentials(c.Request())
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form body")
	}

	issued, err := h.auth.Login(c.Request().Context(), username, password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		} else {
			metrics.LoginsTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	c.Response().Header().Set("Cache-Control", "no-store")
	return c.JSON(http.StatusOK, tokenResponse{
		AccessToken: issued.AccessToken,
		TokenType:   issued.TokenType,
	})
}

// maxCredentialsBody caps the form body read by formCredentials.
const maxCredentialsBody = 8 << 10

// formCredentials reads username and password from an url-encoded or
// multipart body. net/http only parses url-encoded bodies for POST, PUT and
// PATCH, so that case is decoded here for DELETE as well. Query parameters
// are ignored.
func formCredentials(r *http.Request) (string, string, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get(echo.HeaderContentType))
	if mediaType == echo.MIMEMultipartForm {
		r.Body = io.NopCloser(io.LimitReader(r.Body, maxCredentialsBody))
		if err := r.ParseMultipartForm(maxCredentialsBody); err != nil {
			return "", "", err
		}
		return r.PostForm.Get("username"), r.PostForm.Get("password"), nil
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxCredentialsBody))
	if err != nil {
		return "", "", err
	}
	values, err := url.ParseQuery(string(body))
	if err != nil {
		return "", "", err
	}
	return values.Get("username"), values.Get("password"), nil
}
