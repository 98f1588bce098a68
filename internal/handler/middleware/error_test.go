//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"room-reserve/internal/handler/httperr"
	"room-reserve/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(mw gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw)
	return r
}

func perform(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestCustomRecovery(t *testing.T) {
	r := setupRouter(middleware.CustomRecovery())
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := perform(r, "/boom")

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":{"message":"Internal server error"}}`, w.Body.String())
}

func TestErrorHandler(t *testing.T) {
	t.Run("public error meta is serialized as the response", func(t *testing.T) {
		r := setupRouter(middleware.ErrorHandler())
		r.GET("/fail", func(c *gin.Context) {
			resp := httperr.Response{Status: http.StatusServiceUnavailable}
			resp.Error.Message = "try again later"
			_ = c.Error(errors.New("pool exhausted")).SetType(gin.ErrorTypePublic).SetMeta(resp)
		})

		w := perform(r, "/fail")

		require.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.JSONEq(t, `{"error":{"message":"try again later"}}`, w.Body.String())
	})

	t.Run("written responses pass through untouched", func(t *testing.T) {
		r := setupRouter(middleware.ErrorHandler())
		r.GET("/ok", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })

		w := perform(r, "/ok")

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"ok": true}`, w.Body.String())
	})
}
