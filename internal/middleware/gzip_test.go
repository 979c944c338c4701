package middleware

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compress(t *testing.T, data string) []byte {
	t.Helper()
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, err := gz.Write([]byte(data))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	return buf.Bytes()
}

// echoHandler возвращает тело запроса и значение Content-Encoding
func echoHandler(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		w.Header().Set("X-Seen-Encoding", r.Header.Get("Content-Encoding"))
		_, _ = w.Write(body)
	})
}

func TestDecompressMiddleware_Plain(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/users/", strings.NewReader(`{"username":"alice"}`))
	w := httptest.NewRecorder()

	DecompressMiddleware(echoHandler(t)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"username":"alice"}`, w.Body.String())
}

func TestDecompressMiddleware_Gzip(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/users/", bytes.NewReader(compress(t, `{"username":"alice"}`)))
	req.Header.Set("Content-Encoding", "gzip")
	w := httptest.NewRecorder()

	DecompressMiddleware(echoHandler(t)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"username":"alice"}`, w.Body.String())
	assert.Equal(t, "", w.Header().Get("X-Seen-Encoding"))
}

func TestDecompressMiddleware_InvalidGzip(t *testing.T) {
	called := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	req := httptest.NewRequest(http.MethodPost, "/users/", strings.NewReader("not gzip"))
	req.Header.Set("Content-Encoding", "gzip")
	w := httptest.NewRecorder()

	DecompressMiddleware(handler).ServeHTTP(w, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"detail":"Invalid gzip data"}`, w.Body.String())
}
