package httpgin

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEtagMatches(t *testing.T) {
	tag := `W/"abc"`

	assert.True(t, etagMatches(`W/"abc"`, tag))
	assert.True(t, etagMatches(`"abc"`, tag))
	assert.True(t, etagMatches(`"x", W/"abc"`, tag))
	assert.True(t, etagMatches(`*`, tag))
	assert.False(t, etagMatches(``, tag))
	assert.False(t, etagMatches(`"abd"`, tag))
}

func TestWriteJSONWithCache(t *testing.T) {
	r := gin.New()
	r.GET("/x", func(c *gin.Context) {
		writeJSONWithCache(c, http.StatusOK, gin.H{"a": 1}, "public, max-age=30", true)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	require.Equal(t, http.StatusOK, w.Code)
	tag := w.Header().Get("ETag")
	assert.NotEmpty(t, tag)
	assert.Equal(t, "public, max-age=30", w.Header().Get("Cache-Control"))
	assert.JSONEq(t, `{"a":1}`, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("If-None-Match", tag)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotModified, w.Code)
	assert.Empty(t, w.Body.String())
}
