package middleware

import (
	"net/http"
	"sync"
)

// SerializeInvocations lets one request through at a time. The handler shares
// a single database connection and expects invocations one by one, as the
// Lambda runtime delivers them.
func SerializeInvocations(next http.Handler) http.Handler {
	var mu sync.Mutex
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		next.ServeHTTP(w, r)
	})
}
