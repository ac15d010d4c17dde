// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package join runs a fixed pair of independent reads and waits for both.
//
// # Semantics
//
// Both calls start without ordering between them. The join completes only
// once both returned. The first error fails the join as a whole: its context
// is cancelled for the sibling, and no partial result is handed back.
package join

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Both runs first and second concurrently and returns both results.
func Both[A, B any](
	ctx context.Context,
	first func(context.Context) (A, error),
	second func(context.Context) (B, error),
) (A, B, error) {
	var (
		firstResult  A
		secondResult B
	)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		result, err := first(groupCtx)
		if err != nil {
			return err
		}
		firstResult = result
		return nil
	})

	group.Go(func() error {
		result, err := second(groupCtx)
		if err != nil {
			return err
		}
		secondResult = result
		return nil
	})

	if err := group.Wait(); err != nil {
		var zeroA A
		var zeroB B
		return zeroA, zeroB, err
	}

	return firstResult, secondResult, nil
}
