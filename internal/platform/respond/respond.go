// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package respond provides the HTTP response helpers used by the catalog
// handlers: rendered pages, redirects, and the process-wide error page.
//
// # Architecture
//
// Handlers never write bodies themselves. Every page goes through a
// [Responder], which buffers the rendered template so a failing template
// never leaves a half-written page behind. [Responder.Error] is the single
// error boundary: not-found and store failures end there.
package respond

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/taibuivan/locallibrary/internal/platform/apperr"
	"github.com/taibuivan/locallibrary/internal/platform/ctxutil"
)

// ErrorView is the template rendered by [Responder.Error].
const ErrorView = "error"

// Renderer turns a named template and its data into a page body.
type Renderer interface {
	Render(writer io.Writer, name string, data any) error
}

// ErrorPage is the data bag of the [ErrorView] template.
type ErrorPage struct {
	Title   string
	Message string
	Code    string
	Status  int
}

// Responder writes pages through a [Renderer].
type Responder struct {
	views Renderer
}

// New creates a [Responder] rendering with views.
func New(views Renderer) *Responder {
	return &Responder{views: views}
}

// Render writes a 200 OK page.
func (responder *Responder) Render(writer http.ResponseWriter, request *http.Request, name string, data any) {
	responder.RenderStatus(writer, request, http.StatusOK, name, data)
}

// RenderStatus writes a page with the given status code.
func (responder *Responder) RenderStatus(writer http.ResponseWriter, request *http.Request, status int, name string, data any) {
	var body bytes.Buffer
	if err := responder.views.Render(&body, name, data); err != nil {
		logger := ctxutil.GetLogger(request.Context())
		logger.ErrorContext(request.Context(), "template_render_failed",
			slog.String("view", name),
			slog.Any("error", err),
			slog.String("request_id", ctxutil.GetRequestID(request.Context())),
		)
		http.Error(writer, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	writer.Header().Set("Content-Type", "text/html; charset=utf-8")
	writer.WriteHeader(status)
	_, _ = body.WriteTo(writer)
}

// Redirect sends a 302 Found to url.
func (responder *Responder) Redirect(writer http.ResponseWriter, request *http.Request, url string) {
	http.Redirect(writer, request, url, http.StatusFound)
}

// Error converts any Go error into the rendered error page.
func (responder *Responder) Error(writer http.ResponseWriter, request *http.Request, err error) {
	var appError *apperr.AppError
	if !errors.As(err, &appError) {
		// Unexpected internal error: log full details but hide them from the client.
		logger := ctxutil.GetLogger(request.Context())
		logger.ErrorContext(request.Context(), "unhandled_error_swallowed",
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.GetRequestID(request.Context())),
		)
		appError = apperr.Internal(err)
	}

	// Always log 5xx errors as they indicate server-side issues.
	if appError.HTTPStatus >= 500 {
		logger := ctxutil.GetLogger(request.Context())
		logger.ErrorContext(request.Context(), "server_error",
			slog.String("code", appError.Code),
			slog.String("request_id", ctxutil.GetRequestID(request.Context())),
			slog.Any("cause", appError.Cause),
		)
	}

	responder.RenderStatus(writer, request, appError.HTTPStatus, ErrorView, ErrorPage{
		Title:   http.StatusText(appError.HTTPStatus),
		Message: appError.Message,
		Code:    appError.Code,
		Status:  appError.HTTPStatus,
	})
}
