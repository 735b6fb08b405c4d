package validators

import (
	"net/http"
	"strings"
)

// SessionToken pulls the opaque session token from the Authorization bearer
// header, falling back to the session_token query parameter.
func SessionToken(r *http.Request) string {
	if header := strings.TrimSpace(r.Header.Get("Authorization")); header != "" {
		if strings.HasPrefix(strings.ToLower(header), "bearer ") {
			return strings.TrimSpace(header[7:])
		}
		return header
	}
	return strings.TrimSpace(r.URL.Query().Get("session_token"))
}
