package httpclient

import "net/http"

const (
	headerAuthorization = "Authorization"
	bearerPrefix        = "Bearer "
)

// Authorize returns the header set to send with a request. When token is
// non-empty the result is a copy of h carrying "Authorization: Bearer <token>";
// otherwise h is returned as is. h itself is never written.
func Authorize(h http.Header, token string) http.Header {
	if token == "" {
		return h
	}
	out := h.Clone()
	if out == nil {
		out = make(http.Header, 1)
	}
	out.Set(headerAuthorization, bearerPrefix+token)
	return out
}
