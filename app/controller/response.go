package controller

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"gemrock-store/models"
)

// SessionHeader carries the client profile id of cart and auth requests
const SessionHeader = "X-Session-ID"

// CatalogFallbackPath is where clients are sent when a product lookup fails
const CatalogFallbackPath = "/catalog/findings"

// writeJSON encodes v as the JSON response body
func writeJSON(w http.ResponseWriter, logger *zap.SugaredLogger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Errorf("❌ Error encoding response: %v", err)
	}
}

// sendError sends an error response with a machine-readable code
func sendError(w http.ResponseWriter, statusCode int, errorCode, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(models.ErrorResponse{
		Error:   errorCode,
		Message: message,
		Details: details,
	})
}

// sendProductNotFound answers an unknown product with a pointer back to the catalog
func sendProductNotFound(w http.ResponseWriter, id string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	_ = json.NewEncoder(w).Encode(models.ErrorResponse{
		Error:    "NOT_FOUND",
		Message:  "Product not found",
		Details:  "id=" + id,
		Redirect: CatalogFallbackPath,
	})
}

// decodeJSON reads the request body into v
func decodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

// productID parses the {id} path variable. ok is false for non-positive or malformed ids.
func productID(r *http.Request) (string, int, bool) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || id <= 0 {
		return raw, 0, false
	}
	return raw, id, true
}

// sessionID returns the client profile id of the request, generating one when absent
func sessionID(r *http.Request) (string, bool) {
	if id := strings.TrimSpace(r.Header.Get(SessionHeader)); id != "" {
		return id, false
	}
	return uuid.NewString(), true
}

// queryInt reads an integer query parameter, returning def when absent or malformed
func queryInt(r *http.Request, key string, def int) int {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}
