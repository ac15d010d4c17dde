// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and form
decoding, ensuring consistent error handling.
*/
package requestutil

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/locallibrary/internal/platform/apperr"
)

// maxFormBytes bounds urlencoded form bodies.
const maxFormBytes = 1 << 20

// ErrInvalidForm is returned when the request body cannot be decoded.
var ErrInvalidForm = apperr.ValidationError("Invalid form payload")

/*
ID retrieves a named URL parameter (entity identifier) from the request.
*/
func ID(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
Form parses an application/x-www-form-urlencoded body.

Returns:
  - url.Values: the submitted fields (query string excluded)
  - error: ErrInvalidForm if the body is malformed
*/
func Form(writer http.ResponseWriter, request *http.Request) (url.Values, error) {
	request.Body = http.MaxBytesReader(writer, request.Body, maxFormBytes)

	if err := request.ParseForm(); err != nil {
		return nil, ErrInvalidForm
	}
	return request.PostForm, nil
}
