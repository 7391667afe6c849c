package httpx

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/depscout/depscout/internal/domain/model"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRecover(t *testing.T) {
	handler := Recover(discardLogger())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestLogging(t *testing.T) {
	var buf strings.Builder
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	handler := Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/request/packages/abc", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(buf.String()), &entry))
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/request/packages/abc", entry["path"])
	assert.EqualValues(t, http.StatusTeapot, entry["status"])
}

func TestRequireToken(t *testing.T) {
	services := newTestServices(t)
	services.RequireAuth = true
	router := NewRouter(services)

	t.Run("missing token answers 401", func(t *testing.T) {
		rec := doSubmit(t, router, submitBody())
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "authentication_required")
	})

	t.Run("unknown token answers 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/request/packages", strings.NewReader(submitBody()))
		req.Header.Set("Authorization", "Bearer never-issued")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid_token")
	})

	t.Run("issued token passes", func(t *testing.T) {
		var pair model.TokenPair
		loginRec := doLogin(t, router, `{"login":"meg","password":"hunter2"}`)
		require.Equal(t, http.StatusOK, loginRec.Code)
		require.NoError(t, json.Unmarshal(loginRec.Body.Bytes(), &pair))

		req := httptest.NewRequest(http.MethodPut, "/request/packages", strings.NewReader(submitBody()))
		req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})
}
