package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"admin-backend/internal/response"
	"admin-backend/pkg/config"
	"admin-backend/prometheus"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	prometheus.InitMetrics(&config.Config{Metrics: config.MetricsConfig{Prefix: "handler_test"}})
}

// These tests cover the validation paths that must reject a request before
// any data-layer call is made; the database is deliberately left
// uninitialized so an accidental write attempt would blow up loudly.

func postJSON(t *testing.T, handler echo.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, handler(e.NewContext(req, rec)))
	return rec
}

func envelope(t *testing.T, rec *httptest.ResponseRecorder) response.Envelope {
	t.Helper()
	var env response.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestSignUpRejectsMissingFields(t *testing.T) {
	bodies := []string{
		`{}`,
		`{"userName":"admin"}`,
		`{"userName":"admin","email":"a@b.test","password":"secret"}`,
	}
	for _, body := range bodies {
		rec := postJSON(t, SignUp, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %s", body)
		assert.Equal(t, "All fields are required.", envelope(t, rec).Message)
	}
}

func TestSignUpRejectsPasswordMismatch(t *testing.T) {
	rec := postJSON(t, SignUp,
		`{"userName":"admin","email":"a@b.test","password":"secret","confirmPassword":"other"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	env := envelope(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, "Passwords does not match.", env.Message)
}

func TestSignInRejectsMissingCredentials(t *testing.T) {
	for _, body := range []string{`{}`, `{"userName":"admin"}`, `{"password":"secret"}`} {
		rec := postJSON(t, SignIn, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %s", body)
	}
}

func TestAddCustomerRejectsEmptyName(t *testing.T) {
	e := echo.New()
	form := strings.NewReader("name=&email=x%40y.test")
	req := httptest.NewRequest(http.MethodPost, "/api/customer/addCustomer", form)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	require.NoError(t, AddCustomer(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := envelope(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, "name required", env.Message)
}
