package utils

import (
	"io"
	"medilabx-service/internal/pkg/exceptions"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
)

// ParseIDParam reads a positive numeric chi URL parameter.
func ParseIDParam(r *http.Request, paramName string) (int64, error) {
	raw := chi.URLParam(r, paramName)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, exceptions.ErrURLParamIDValidation(err, paramName)
	}
	if id <= 0 {
		return 0, exceptions.ErrURLParamIDValidation(nil, paramName)
	}
	return id, nil
}

// DecodeJSONBody decodes the request body into dst. An empty body leaves dst
// untouched.
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == io.EOF {
		return nil
	}
	if err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	return nil
}
