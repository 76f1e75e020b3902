package ratelimit

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareLimitsRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Middleware(New(2, time.Minute)))
	r.POST("/reports", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/reports", nil)
		r.ServeHTTP(w, req)
		require.Equal(t, 200, w.Code)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/reports", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, 429, w.Code)
}

func TestAllowAndRemaining(t *testing.T) {
	rl := New(3, time.Minute)

	require.True(t, rl.Allow("acct-1"))
	require.True(t, rl.Allow("acct-1"))
	require.Equal(t, 1, rl.Remaining("acct-1"))

	// Separate keys do not share a window
	require.Equal(t, 3, rl.Remaining("acct-2"))

	require.True(t, rl.Allow("acct-1"))
	require.False(t, rl.Allow("acct-1"))

	rl.Reset("acct-1")
	require.True(t, rl.Allow("acct-1"))
}

func TestWindowExpiry(t *testing.T) {
	rl := New(1, 10*time.Millisecond)

	require.True(t, rl.Allow("k"))
	require.False(t, rl.Allow("k"))

	time.Sleep(15 * time.Millisecond)
	require.True(t, rl.Allow("k"))
}
