package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRecovery(t *testing.T) {
	t.Run("recovers from panic", func(t *testing.T) {
		router := gin.New()
		router.Use(Recovery())
		router.GET("/panic", func(c *gin.Context) {
			panic("something broke")
		})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/panic", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Internal server error")
	})

	t.Run("panic after a written response leaves it untouched", func(t *testing.T) {
		router := gin.New()
		router.Use(Recovery())
		router.GET("/late", func(c *gin.Context) {
			c.String(http.StatusAccepted, "partial")
			panic("after write")
		})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/late", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusAccepted, w.Code)
		assert.Equal(t, "partial", w.Body.String())
	})

	t.Run("passes normal requests through", func(t *testing.T) {
		router := gin.New()
		router.Use(Recovery())
		router.GET("/ok", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "ok"})
		})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/ok", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
