// Copyright (c) 2026 Fyyur. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package requestutil provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/fyyur/internal/platform/apperr"
	"github.com/taibuivan/fyyur/internal/platform/ctxutil"
	"github.com/taibuivan/fyyur/internal/platform/sec"
	"github.com/taibuivan/fyyur/internal/platform/validate"
)

// maxBodyBytes bounds JSON request bodies.
const maxBodyBytes = 1 << 20

/*
DecodeJSON reads the request body and decodes it into the target structure.

Unknown fields are rejected so that typos in optional fields surface as
validation errors instead of silently clearing data on a full-replace update.

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	decoder := json.NewDecoder(http.MaxBytesReader(nil, request.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
IntID parses a positive integer URL parameter.

Returns:
  - int: the identifier
  - error: a VALIDATION_ERROR naming the parameter when it is not a positive integer
*/
func IntID(request *http.Request, name string) (int, error) {
	raw := chi.URLParam(request, name)

	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, validate.RequiredError(name, "Must be a positive integer")
	}
	return id, nil
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
SearchTerm reads the search term from the query string.

Both "search_term" and the shorter "q" are accepted. A missing term is the
empty string, which matches every record.
*/
func SearchTerm(request *http.Request) string {
	query := request.URL.Query()
	if term, ok := query["search_term"]; ok && len(term) > 0 {
		return term[0]
	}
	return query.Get("q")
}

/*
RequiredEditor ensures the request is authenticated and returns the editor claims.

Returns:
  - *sec.AuthClaims: The authenticated editor claims
  - error: apperr.Unauthorized if the request is not authenticated
*/
func RequiredEditor(request *http.Request) (*sec.AuthClaims, error) {
	claims := ctxutil.GetEditor(request.Context())
	if claims == nil {
		return nil, apperr.Unauthorized("Authentication required")
	}
	return claims, nil
}
