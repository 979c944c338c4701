package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
)

// gzipBody закрывает и распаковщик, и исходное тело запроса
type gzipBody struct {
	*gzip.Reader
	orig io.Closer
}

func (b *gzipBody) Close() error {
	err := b.Reader.Close()
	if cerr := b.orig.Close(); err == nil {
		err = cerr
	}
	return err
}

// DecompressMiddleware распаковывает тела запросов с Content-Encoding: gzip.
// Сжатие ответов выполняет chi middleware.Compress.
func DecompressMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.Header.Get("Content-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		gz, err := gzip.NewReader(r.Body)
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = io.WriteString(w, `{"detail":"Invalid gzip data"}`)
			return
		}

		r.Body = &gzipBody{Reader: gz, orig: r.Body}
		r.Header.Del("Content-Encoding")
		r.ContentLength = -1
		next.ServeHTTP(w, r)
	})
}
