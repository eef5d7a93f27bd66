package http

import (
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/attendance-portal/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

// idParam reads a positive integer path parameter. Signs are rejected.
func idParam(r *http.Request, name string) (int64, bool) {
	raw := chi.URLParam(r, name)
	if !validator.IsNumeric(raw) {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// boolQuery treats a missing value as false and anything strconv can't parse as invalid.
func boolQuery(r *http.Request, name string) (bool, bool) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return false, true
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, false
	}
	return b, true
}
