package httpapi

import (
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/library-backend/library/core"
)

const maxRequestBodyBytes = 1 << 20

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return core.ValidationFailed(map[string]string{"body": "must be a valid JSON document"})
	}

	return nil
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

// pageParams reads the 0-based page and the page size from the query string.
// Missing values fall back to the defaults of core.NewPageRequest.
func pageParams(r *http.Request, fieldErrors core.FieldErrors) (number, size int) {
	return intParam(r, "page", fieldErrors), intParam(r, "size", fieldErrors)
}

func intParam(r *http.Request, name string, fieldErrors core.FieldErrors) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		fieldErrors.Add(name, "must be a whole number")
		return 0
	}

	return value
}
