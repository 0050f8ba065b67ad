package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestSuccessCarriesTimestamp(t *testing.T) {
	c, rec := newTestContext()

	require.NoError(t, Success(c, http.StatusOK, map[string]string{"ok": "yes"}, ""))

	var envelope Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NotEmpty(t, envelope.Timestamp)

	ts, err := time.Parse(time.RFC3339, envelope.Timestamp)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), ts, time.Minute)
}

func TestErrorCarriesTimestamp(t *testing.T) {
	c, rec := newTestContext()

	require.NoError(t, Error(c, http.StatusNotFound, "TOKEN_NOT_FOUND", "no token record found", ""))

	var envelope Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.NotEmpty(t, envelope.Timestamp)
	assert.False(t, envelope.Success)
}

func TestTimestampUsesConfiguredTimezone(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	SetLocation(loc)
	t.Cleanup(func() { SetLocation(time.UTC) })

	c, rec := newTestContext()
	require.NoError(t, Success(c, http.StatusOK, nil, "Service healthy"))

	var envelope Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, strings.HasSuffix(envelope.Timestamp, "+05:30"),
		"timestamp %q not rendered in Asia/Kolkata", envelope.Timestamp)
}
