package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/priyanshuroy/rover-security-api/internal/store"
)

// newTestRouter builds a router over a fresh in-memory store so every test
// starts from a clean state.
func newTestRouter() (*gin.Engine, *store.MemoryStore) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	st := store.NewMemoryStore()
	RegisterEventRoutes(r, st)
	RegisterEmployeeRoutes(r, st)
	return r, st
}

// doJSON performs one request with an optional JSON body and decodes the
// JSON response into out (when out is non-nil).
func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, out any) int {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if out != nil {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), out),
			"invalid JSON response: %s", w.Body.String())
	}
	return w.Code
}
