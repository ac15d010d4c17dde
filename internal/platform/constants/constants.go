// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package constants holds the fixed values shared across the catalog server:
// HTTP timeouts, rate limits, catalog paths, header names and store drivers.
package constants

import "time"

// # Metadata

const (
	AppName    = "locallibrary"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	DefaultReadTimeout       = 5 * time.Second
	DefaultWriteTimeout      = 10 * time.Second
	DefaultIdleTimeout       = 120 * time.Second
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout bounds a request end to end, store queries included.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is the grace period for in-flight requests.
	ShutdownTimeout = 30 * time.Second
)

// # Rate Limiting

const (
	// Per client IP.
	DefaultRateLimitRPS   = 50.0
	DefaultRateLimitBurst = 100

	// Idle clients are forgotten after RateLimitClientTTL, checked every
	// RateLimitCleanupInterval.
	RateLimitCleanupInterval = 1 * time.Minute
	RateLimitClientTTL       = 3 * time.Minute
)

// # Catalog Routing

// Entity paths end with a slash; the id is appended.
const (
	CatalogPrefix  = "/catalog"
	AuthorListPath = CatalogPrefix + "/authors"
	GenreListPath  = CatalogPrefix + "/genres"
	AuthorPath     = CatalogPrefix + "/author/"
	GenrePath      = CatalogPrefix + "/genre/"
	BookPath       = CatalogPrefix + "/book/"
)

// # Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
)

// # Store Drivers

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)
