package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testKey = []byte("test-key")

func call(t *testing.T, header string) (string, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var user string
	err := JWT(testKey)(func(c echo.Context) error {
		user, _ = c.Get("username").(string)
		return nil
	})(c)
	return user, err
}

func status(err error) int {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code
	}
	return 0
}

func TestJWTAcceptsValidToken(t *testing.T) {
	token, err := NewToken("admin", testKey, time.Now())
	require.NoError(t, err)

	for _, header := range []string{token, "Bearer " + token} {
		user, err := call(t, header)
		require.NoError(t, err)
		assert.Equal(t, "admin", user)
	}
}

func TestJWTRejects(t *testing.T) {
	expired, err := NewToken("admin", testKey, time.Now().Add(-2*TokenTTL))
	require.NoError(t, err)
	otherKey, err := NewToken("admin", []byte("other"), time.Now())
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		code   int
	}{
		{"missing", "", http.StatusBadRequest},
		{"garbage", "Bearer not-a-token", http.StatusBadRequest},
		{"expired", expired, http.StatusUnauthorized},
		{"wrong key", otherKey, http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := call(t, tt.header)
			require.Error(t, err)
			assert.Equal(t, tt.code, status(err))
		})
	}
}

func TestUserHashIsNormalized(t *testing.T) {
	assert.Equal(t, UserHashFromUsername("Admin ", testKey), UserHashFromUsername("admin", testKey))
	assert.NotEqual(t, UserHashFromUsername("admin", testKey), UserHashFromUsername("admin", []byte("other")))
}
