package middleware

import (
	"net/http"
)

const (
	DefaultBodyLimit int64 = 1 << 20  // 1 MB
	ImageBodyLimit   int64 = 10 << 20 // 10 MB, para imagens em base64
)

// BodyLimit limita o tamanho do corpo da requisição. A leitura além do limite
// falha com *http.MaxBytesError, tratado pelos handlers como 413.
func BodyLimit(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			}
			next.ServeHTTP(w, r)
		})
	}
}
