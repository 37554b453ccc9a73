//go:build unit

package usecase_test

import (
	"testing"
	"time"

	"dogbarber-api/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListFilterDateBounds(t *testing.T) {
	day := time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)

	t.Run("no dates yields no bounds", func(t *testing.T) {
		from, to := usecase.ListFilter{}.DateBounds()
		assert.Nil(t, from)
		assert.Nil(t, to)
	})

	t.Run("equal from and to cover exactly that calendar day", func(t *testing.T) {
		filter := usecase.ListFilter{From: &day, To: &day}
		from, to := filter.DateBounds()
		require.NotNil(t, from)
		require.NotNil(t, to)
		assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), *from)
		assert.Equal(t, time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC), *to)
	})

	t.Run("upper bound is the start of the day after to", func(t *testing.T) {
		to := time.Date(2024, 6, 30, 23, 59, 59, 0, time.UTC)
		filter := usecase.ListFilter{To: &to}
		_, upper := filter.DateBounds()
		require.NotNil(t, upper)
		assert.Equal(t, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), *upper)
	})

	t.Run("bounds are computed on the UTC day", func(t *testing.T) {
		// 05:00 on June 16 in UTC+9 is 20:00 UTC on June 15
		tokyo := time.FixedZone("UTC+9", 9*3600)
		inTokyo := time.Date(2024, 6, 16, 5, 0, 0, 0, tokyo)
		filter := usecase.ListFilter{From: &inTokyo}
		from, _ := filter.DateBounds()
		require.NotNil(t, from)
		assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), *from)
	})

	t.Run("from alone leaves the upper bound open", func(t *testing.T) {
		filter := usecase.ListFilter{From: &day}
		from, to := filter.DateBounds()
		assert.NotNil(t, from)
		assert.Nil(t, to)
	})
}
