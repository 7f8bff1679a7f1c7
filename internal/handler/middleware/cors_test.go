//go:build unit

package middleware_test

import (
	"net/http"
	nethttptest "net/http/httptest"
	"testing"

	"event-booking/internal/handler/middleware"
	"event-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func corsRouter(cfg config.CORSConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.NewCORSMiddleware(cfg))
	r.GET("/api/events", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func preflight(r *gin.Engine, origin string) *nethttptest.ResponseRecorder {
	req := nethttptest.NewRequest(http.MethodOptions, "/api/events", nil)
	req.Header.Set("Origin", origin)
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := nethttptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestCORSMiddleware(t *testing.T) {
	base := config.CORSConfig{
		AllowOrigins:  []string{"http://localhost:5173"},
		AllowMethods:  []string{"GET", "POST"},
		AllowHeaders:  []string{"Authorization", "Content-Type"},
		ExposeHeaders: []string{"X-Total-Count"},
	}

	t.Run("許可されたオリジン", func(t *testing.T) {
		rec := preflight(corsRouter(base), "http://localhost:5173")
		assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("許可されていないオリジン", func(t *testing.T) {
		rec := preflight(corsRouter(base), "http://evil.example.com")
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("ワイルドカードは全許可かつ資格情報なし", func(t *testing.T) {
		cfg := base
		cfg.AllowOrigins = []string{"*"}
		cfg.AllowCredentials = true

		rec := preflight(corsRouter(cfg), "http://anywhere.example.com")
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Credentials"))
	})
}
