package repositories

import (
	"context"
	"fmt"
)

// DefaultPageSize is the number of rows requested per page.
const DefaultPageSize = 1000

// PageFunc loads one page of at most limit rows starting at offset.
type PageFunc[T any] func(ctx context.Context, limit, offset int) ([]T, error)

// FetchAll requests pages one after another and stops at the first page
// shorter than pageSize. A failed page or a cancelled context discards
// everything read so far.
func FetchAll[T any](ctx context.Context, pageSize int, page PageFunc[T]) ([]T, error) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	var all []T
	for offset := 0; ; offset += pageSize {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		items, err := page(ctx, pageSize, offset)
		if err != nil {
			return nil, fmt.Errorf("fetch page at offset %d: %w", offset, err)
		}
		all = append(all, items...)
		if len(items) < pageSize {
			break
		}
	}
	if all == nil {
		all = []T{}
	}
	return all, nil
}
