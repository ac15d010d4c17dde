// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package validate provides chainable sanitizer/validator rules for submitted
// form fields. Failures are collected before a single [apperr.AppError] is
// returned.
//
// # Semantics
//
// A chain reads one form field and applies its steps in order. Sanitizers
// (Trim, Escape) rewrite the value seen by later steps. Every validator in a
// chain runs even after an earlier one failed, so one field can report more
// than one message. Optional stops the chain when the value is empty.
//
// This package is used exclusively in the service layer.
package validate

import (
	"net/url"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/taibuivan/locallibrary/internal/platform/apperr"
)

var (
	// alphanumericRegex matches the en-US alphanumeric alphabet.
	alphanumericRegex = regexp.MustCompile(`^[0-9A-Za-z]+$`)

	// htmlEscaper replaces HTML-significant characters with entities.
	htmlEscaper = strings.NewReplacer(
		"&", "&amp;",
		`"`, "&quot;",
		"'", "&#x27;",
		"<", "&lt;",
		">", "&gt;",
		"/", "&#x2F;",
		`\`, "&#x5C;",
		"`", "&#96;",
	)
)

// Validator collects field-level validation errors for one submission.
//
// # Concurrency
//
// Validator is not safe for concurrent use. A new instance must be created
// for every request.
type Validator struct {
	values url.Values
	errs   []apperr.FieldError
}

// New creates a [Validator] over submitted form values.
func New(values url.Values) *Validator {
	return &Validator{values: values}
}

// Field starts a rule chain over the named form field.
// A missing field is treated as the empty string.
func (v *Validator) Field(name string) *Chain {
	return &Chain{validator: v, field: name, value: v.values.Get(name)}
}

// Err returns a VALIDATION_ERROR [apperr.AppError] if any rules failed,
// or nil if all rules passed.
func (v *Validator) Err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return apperr.ValidationError("Validation failed", v.errs...)
}

// HasErrors reports whether any validation rule has failed so far.
func (v *Validator) HasErrors() bool {
	return len(v.errs) > 0
}

// add appends a [apperr.FieldError] to the internal slice.
func (v *Validator) add(field, message string) {
	v.errs = append(v.errs, apperr.FieldError{Field: field, Message: message})
}

// Chain is the rule pipeline of a single field.
type Chain struct {
	validator *Validator
	field     string
	value     string
	date      *time.Time
	stopped   bool
}

// Trim strips leading and trailing whitespace.
func (c *Chain) Trim() *Chain {
	if !c.stopped {
		c.value = strings.TrimSpace(c.value)
	}
	return c
}

// Escape replaces HTML-significant characters with their entities.
func (c *Chain) Escape() *Chain {
	if !c.stopped {
		c.value = Escape(c.value)
	}
	return c
}

// Required fails with message if the value has no characters.
func (c *Chain) Required(message string) *Chain {
	if !c.stopped && utf8.RuneCountInString(c.value) < 1 {
		c.validator.add(c.field, message)
	}
	return c
}

// Alphanumeric fails with message unless the value is made only of ASCII
// letters and digits. The empty string fails.
func (c *Chain) Alphanumeric(message string) *Chain {
	if !c.stopped && !IsAlphanumeric(c.value) {
		c.validator.add(c.field, message)
	}
	return c
}

// Optional ends the chain without errors when the value is empty.
func (c *Chain) Optional() *Chain {
	if c.value == "" {
		c.stopped = true
	}
	return c
}

// ISODate fails with message unless the value parses as an ISO 8601 date.
// On success the value is converted to a calendar date, see [ParseISODate].
func (c *Chain) ISODate(message string) *Chain {
	if c.stopped {
		return c
	}

	date, ok := ParseISODate(c.value)
	if !ok {
		c.validator.add(c.field, message)
		return c
	}

	c.date = date
	return c
}

// String returns the sanitized value.
func (c *Chain) String() string {
	return c.value
}

// Date returns the converted date, or nil when the field was empty or invalid.
func (c *Chain) Date() *time.Time {
	return c.date
}

// # Standalone Rules

// Escape replaces & < > " ' / \ and ` with HTML entities.
func Escape(value string) string {
	return htmlEscaper.Replace(value)
}

// IsAlphanumeric reports whether value is a non-empty run of [0-9A-Za-z].
func IsAlphanumeric(value string) bool {
	return alphanumericRegex.MatchString(value)
}
