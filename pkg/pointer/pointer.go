// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pointer provides generic pointer helpers.
package pointer

// To returns a pointer to a copy of v.
// It is useful for optional struct fields (e.g. pointer.To(time.Now())).
func To[T any](v T) *T {
	return &v
}
