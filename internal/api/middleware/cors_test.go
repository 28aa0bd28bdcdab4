package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/creatorchain/creatorchain/internal/api/middleware"
)

func corsRequest(router *gin.Engine, origin string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/content", nil)
	req.Header.Set("Origin", origin)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func newCORSRouter(origins []string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.CORS(origins))
	router.GET("/api/v1/content", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestCORS(t *testing.T) {
	t.Run("any origin when none configured", func(t *testing.T) {
		rec := corsRequest(newCORSRouter(nil), "https://anywhere.example")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("listed origin allowed", func(t *testing.T) {
		rec := corsRequest(newCORSRouter([]string{"https://creatorchain.app"}), "https://creatorchain.app")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "https://creatorchain.app", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("unlisted origin rejected", func(t *testing.T) {
		rec := corsRequest(newCORSRouter([]string{"https://creatorchain.app"}), "https://evil.example")
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
