package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/labstack/echo/v4"

	"github.com/nysp/correction-notices/internal/core/domain"
	"github.com/nysp/correction-notices/internal/core/security"
	"github.com/nysp/correction-notices/internal/core/service"
	"github.com/nysp/correction-notices/internal/infrastructure/db/memory"
)

const driverBody = `{
	"first_name": "Dale", "last_name": "Cooper", "address": "1 Main St", "city": "Albany",
	"state": "NY", "zip_code": "12207", "drivers_licence": "D-100", "drivers_licence_state": "NY",
	"birth_date": "1980-04-19", "height": 180, "weight": 80, "eyes": "brown"
}`

func newTestRouter(t *testing.T) *echo.Echo {
	t.Helper()
	log := zerolog.Nop()
	store := memory.NewDB().Store()
	idem := memory.NewIdempotencyStore()

	codec, err := security.NewTokenCodec(security.TokenConfig{Secret: "router-test-secret"})
	require.NoError(t, err)
	auth, err := service.NewAuthService(store.Accounts, security.NewPasswordHasher(bcrypt.MinCost), codec, log)
	require.NoError(t, err)

	ctx := context.Background()
	_, err = auth.CreateAccount(ctx, "alice", "password123", domain.RoleOfficer)
	require.NoError(t, err)
	_, err = auth.CreateAccount(ctx, "bob", "password123", domain.RoleCitizen)
	require.NoError(t, err)
	require.NoError(t, store.ViolationTypes.Create(ctx, &domain.ViolationType{Description: "Speeding", ViolationCode: "SPD"}))

	return NewRouter(Deps{
		Log:              log,
		Auth:             auth,
		Sessions:         auth,
		Policy:           security.NewPolicy(),
		Drivers:          service.NewDriverService(store.Drivers, store.CorrectionNotices, idem, log),
		Officers:         service.NewOfficerService(store.Officers, idem, log),
		VehicleOwners:    service.NewVehicleOwnerService(store.VehicleOwners, idem, log),
		Vehicles:         service.NewVehicleService(store.Vehicles, store.VehicleOwners, store.CorrectionNotices, idem, log),
		ViolationTypes:   service.NewViolationTypeService(store.ViolationTypes),
		Notices:          service.NewCorrectionNoticeService(store, idem, log),
		NoticeViolations: service.NewNoticeViolationService(store, idem, log),
		Registry:         prometheus.NewRegistry(),
	})
}

func do(e *echo.Echo, method, path, token, contentType, body string, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, e *echo.Echo, method, username, password string) *httptest.ResponseRecorder {
	t.Helper()
	form := url.Values{"username": {username}, "password": {password}}.Encode()
	return do(e, method, "/token", "", echo.MIMEApplicationForm, form)
}

func tokenFor(t *testing.T, e *echo.Echo, username string) string {
	t.Helper()
	rec := login(t, e, http.MethodPost, username, "password123")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "bearer", body.TokenType)
	require.NotEmpty(t, body.AccessToken)
	return body.AccessToken
}

func TestRouter_EndToEndScenario(t *testing.T) {
	e := newTestRouter(t)
	officer := tokenFor(t, e, "alice")

	rec := do(e, http.MethodPost, "/drivers", officer, echo.MIMEApplicationJSON, driverBody)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created domain.Driver
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotZero(t, created.ID)

	rec = do(e, http.MethodGet, "/drivers/1", "", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var fetched domain.Driver
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fetched))
	assert.Equal(t, created, fetched)
	assert.Equal(t, "D-100", fetched.DriversLicence)

	citizen := tokenFor(t, e, "bob")
	rec = do(e, http.MethodDelete, "/drivers/1", citizen, "", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = do(e, http.MethodGet, "/drivers/1", "", "", "")
	assert.Equal(t, http.StatusOK, rec.Code, "driver must survive the forbidden delete")
}

func TestRouter_MutationsRequireBearer(t *testing.T) {
	e := newTestRouter(t)

	for _, tc := range []struct{ method, path string }{
		{http.MethodPost, "/drivers"},
		{http.MethodPut, "/drivers/1"},
		{http.MethodDelete, "/vehicles/1"},
		{http.MethodPost, "/correction-notices"},
		{http.MethodDelete, "/notice-violations/1"},
	} {
		rec := do(e, tc.method, tc.path, "", echo.MIMEApplicationJSON, "{}")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", tc.method, tc.path)
		assert.Equal(t, "Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate), "%s %s", tc.method, tc.path)
	}

	rec := do(e, http.MethodPost, "/drivers", "forged.token.value", echo.MIMEApplicationJSON, driverBody)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"could not validate credentials"}`, rec.Body.String())
}

func TestRouter_CitizenCannotMutate(t *testing.T) {
	e := newTestRouter(t)
	citizen := tokenFor(t, e, "bob")

	rec := do(e, http.MethodPost, "/drivers", citizen, echo.MIMEApplicationJSON, driverBody)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"error":"access denied"}`, rec.Body.String())
}

func TestRouter_LoginFailuresAreIndistinguishable(t *testing.T) {
	e := newTestRouter(t)

	unknown := login(t, e, http.MethodPost, "nonexistent_user", "anything")
	wrong := login(t, e, http.MethodPost, "alice", "wrong_password")

	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, unknown.Code, wrong.Code)
	assert.Equal(t, unknown.Body.String(), wrong.Body.String())
	assert.Equal(t, "Bearer", unknown.Header().Get(echo.HeaderWWWAuthenticate))
	assert.Equal(t, "Bearer", wrong.Header().Get(echo.HeaderWWWAuthenticate))
}

func TestRouter_TokenAliases(t *testing.T) {
	e := newTestRouter(t)

	for _, method := range []string{http.MethodPut, http.MethodDelete} {
		rec := login(t, e, method, "alice", "password123")
		require.Equal(t, http.StatusOK, rec.Code, method)

		var body struct {
			AccessToken string `json:"access_token"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

		// The alias token works like any other.
		created := do(e, http.MethodPost, "/officers", body.AccessToken, echo.MIMEApplicationJSON,
			`{"personnel_number":"P-`+method+`","first_name":"Harry","last_name":"Truman","detachment":"Troop G"}`)
		assert.Equal(t, http.StatusCreated, created.Code, created.Body.String())
	}
}

func TestRouter_ValidationAndConflicts(t *testing.T) {
	e := newTestRouter(t)
	officer := tokenFor(t, e, "alice")

	bad := strings.Replace(driverBody, `"state": "NY"`, `"state": "NEW"`, 1)
	rec := do(e, http.MethodPost, "/drivers", officer, echo.MIMEApplicationJSON, bad)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = do(e, http.MethodPost, "/drivers", officer, echo.MIMEApplicationJSON, driverBody)
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = do(e, http.MethodPost, "/drivers", officer, echo.MIMEApplicationJSON, driverBody)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(e, http.MethodGet, "/drivers/999", "", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = do(e, http.MethodGet, "/drivers/abc", "", "", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = do(e, http.MethodPost, "/vehicles", officer, echo.MIMEApplicationJSON,
		`{"vehicle_owner_id":42,"vehicles_licence":"ABC123","state":"NY","colour":"red","make":"Ford","vin":"1HGCM82633A004352","year":2010,"type":"sedan"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_IdempotentCreateReplays(t *testing.T) {
	e := newTestRouter(t)
	officer := tokenFor(t, e, "alice")

	first := do(e, http.MethodPost, "/drivers", officer, echo.MIMEApplicationJSON, driverBody, "Idempotency-Key", "abc")
	second := do(e, http.MethodPost, "/drivers", officer, echo.MIMEApplicationJSON, driverBody, "Idempotency-Key", "abc")

	require.Equal(t, http.StatusCreated, first.Code)
	require.Equal(t, http.StatusCreated, second.Code)
	assert.JSONEq(t, first.Body.String(), second.Body.String())
}

func TestRouter_FullNoticeFlow(t *testing.T) {
	e := newTestRouter(t)
	officer := tokenFor(t, e, "alice")
	mime := echo.MIMEApplicationJSON

	require.Equal(t, http.StatusCreated, do(e, http.MethodPost, "/drivers", officer, mime, driverBody).Code)
	require.Equal(t, http.StatusCreated, do(e, http.MethodPost, "/vehicle-owners", officer, mime,
		`{"owner_name":"Audrey Horne","username":"ahorne","address":"2 Elm St","city":"Troy","state":"NY","zip_code":"12180"}`).Code)
	require.Equal(t, http.StatusCreated, do(e, http.MethodPost, "/vehicles", officer, mime,
		`{"vehicle_owner_id":1,"vehicles_licence":"ABC123","state":"NY","colour":"red","make":"Ford","vin":"1HGCM82633A004352","year":2010,"type":"sedan"}`).Code)
	require.Equal(t, http.StatusCreated, do(e, http.MethodPost, "/officers", officer, mime,
		`{"personnel_number":"P-1","first_name":"Harry","last_name":"Truman","detachment":"Troop G"}`).Code)

	rec := do(e, http.MethodPost, "/correction-notices", officer, mime,
		`{"driver_id":1,"vehicle_id":1,"officer_id":1,"violation_date":"2024-05-01","violation_time":"13:45","location":"Route 9","district":"Troop G","warning":true}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"violation_time":"13:45:00"`)

	rec = do(e, http.MethodPost, "/correction-notices", officer, mime,
		`{"driver_id":7,"vehicle_id":1,"officer_id":1,"violation_date":"2024-05-01","violation_time":"13:45","location":"Route 9","district":"Troop G"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(e, http.MethodPost, "/notice-violations", officer, mime, `{"correction_notice_id":1,"violation_type_id":9}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = do(e, http.MethodPost, "/notice-violations", officer, mime, `{"correction_notice_id":1,"violation_type_id":1}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(e, http.MethodGet, "/correction-notices/1/violations", "", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"notice_violation_id":1,"correction_notice_id":1,"violation_type_id":1}]`, rec.Body.String())

	rec = do(e, http.MethodGet, "/drivers/frequent-offenders?min_violations=0", "", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"drivers_licence":"D-100"`)
	rec = do(e, http.MethodGet, "/drivers/frequent-offenders", "", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	assert.Equal(t, http.StatusConflict, do(e, http.MethodDelete, "/drivers/1", officer, "", "").Code)
	assert.Equal(t, http.StatusConflict, do(e, http.MethodDelete, "/vehicles/1", officer, "", "").Code)
	assert.Equal(t, http.StatusNoContent, do(e, http.MethodDelete, "/correction-notices/1", officer, "", "").Code)
	assert.Equal(t, http.StatusNotFound, do(e, http.MethodGet, "/notice-violations/1", "", "", "").Code)
	assert.Equal(t, http.StatusNoContent, do(e, http.MethodDelete, "/drivers/1", officer, "", "").Code)
}

func TestRouter_OperationalRoutes(t *testing.T) {
	e := newTestRouter(t)

	assert.Equal(t, http.StatusOK, do(e, http.MethodGet, "/health", "", "", "").Code)
	assert.Equal(t, http.StatusOK, do(e, http.MethodGet, "/health/ready", "", "", "").Code)
	assert.Equal(t, http.StatusOK, do(e, http.MethodGet, "/violation-types", "", "", "").Code)
	assert.Equal(t, http.StatusOK, do(e, http.MethodGet, "/drivers/frequent-offenders", "", "", "").Code)
	assert.Equal(t, http.StatusUnprocessableEntity, do(e, http.MethodGet, "/drivers/frequent-offenders?min_violations=-1", "", "", "").Code)

	do(e, http.MethodGet, "/health", "", "", "")
	rec := do(e, http.MethodGet, "/metrics", "", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "requests_total")
}
