package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pagedSource(total int, calls *[]int) PageFunc[int] {
	return func(ctx context.Context, limit, offset int) ([]int, error) {
		*calls = append(*calls, offset)
		var page []int
		for i := offset; i < total && i < offset+limit; i++ {
			page = append(page, i)
		}
		return page, nil
	}
}

func TestFetchAll(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		pageSize  int
		wantCalls []int
	}{
		{"empty", 0, 10, []int{0}},
		{"single short page", 7, 10, []int{0}},
		{"exact multiple asks one more page", 20, 10, []int{0, 10, 20}},
		{"several pages", 25, 10, []int{0, 10, 20}},
		{"default page size", 1500, 0, []int{0, 1000}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls []int
			got, err := FetchAll(context.Background(), tt.pageSize, pagedSource(tt.total, &calls))
			require.NoError(t, err)
			assert.Len(t, got, tt.total)
			assert.Equal(t, tt.wantCalls, calls)
			for i, v := range got {
				assert.Equal(t, i, v)
			}
		})
	}
}

func TestFetchAll_PageErrorDiscardsPartialResult(t *testing.T) {
	boom := errors.New("connection reset")
	page := func(ctx context.Context, limit, offset int) ([]int, error) {
		if offset > 0 {
			return nil, boom
		}
		return make([]int, limit), nil
	}

	got, err := FetchAll(context.Background(), 5, page)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "offset 5")
}

func TestFetchAll_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	page := func(ctx context.Context, limit, offset int) ([]int, error) {
		calls++
		cancel()
		return make([]int, limit), nil
	}

	got, err := FetchAll(ctx, 3, page)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}
