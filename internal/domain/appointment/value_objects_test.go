//go:build unit

package appointment_test

import (
	"encoding/json"
	"testing"
	"time"

	"dogbarber-api/internal/domain/appointment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("accepts zero and positive amounts", func(t *testing.T) {
		m, err := appointment.NewMoney(0)
		require.NoError(t, err)
		assert.Equal(t, int64(0), m.Cents())

		m, err = appointment.NewMoney(15000)
		require.NoError(t, err)
		assert.Equal(t, int64(15000), m.Cents())
	})

	t.Run("rejects negative amounts", func(t *testing.T) {
		_, err := appointment.NewMoney(-1)
		assert.Error(t, err)
	})
}

func TestMoneyString(t *testing.T) {
	tests := []struct {
		name  string
		cents int64
		want  string
	}{
		{name: "whole amount", cents: 15000, want: "150.00"},
		{name: "discounted amount keeps two digits", cents: 13500, want: "135.00"},
		{name: "sub-dollar amount", cents: 5, want: "0.05"},
		{name: "zero", cents: 0, want: "0.00"},
		{name: "single trailing digit", cents: 12340, want: "123.40"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, appointment.MustMoney(tt.cents).String())
		})
	}
}

func TestMoneyMarshalJSON(t *testing.T) {
	payload, err := json.Marshal(appointment.MustMoney(13500))
	require.NoError(t, err)
	// number literal, not a quoted string
	assert.Equal(t, "135.00", string(payload))
}

func TestMoneyUnmarshalJSON(t *testing.T) {
	t.Run("parses a number literal", func(t *testing.T) {
		var m appointment.Money
		require.NoError(t, json.Unmarshal([]byte("135.00"), &m))
		assert.Equal(t, int64(13500), m.Cents())
	})

	t.Run("parses a single fraction digit", func(t *testing.T) {
		var m appointment.Money
		require.NoError(t, json.Unmarshal([]byte("135.5"), &m))
		assert.Equal(t, int64(13550), m.Cents())
	})

	t.Run("parses a whole number", func(t *testing.T) {
		var m appointment.Money
		require.NoError(t, json.Unmarshal([]byte("135"), &m))
		assert.Equal(t, int64(13500), m.Cents())
	})

	t.Run("rejects more than two fraction digits", func(t *testing.T) {
		var m appointment.Money
		assert.Error(t, json.Unmarshal([]byte("135.001"), &m))
	})

	t.Run("rejects a signed fraction", func(t *testing.T) {
		var m appointment.Money
		assert.Error(t, json.Unmarshal([]byte(`"1.-1"`), &m))
	})

	t.Run("rejects a trailing dot", func(t *testing.T) {
		var m appointment.Money
		assert.Error(t, json.Unmarshal([]byte(`"135."`), &m))
	})

	t.Run("rejects a negative amount", func(t *testing.T) {
		var m appointment.Money
		assert.Error(t, json.Unmarshal([]byte("-1.00"), &m))
	})
}

func TestApplyPercentDiscount(t *testing.T) {
	tests := []struct {
		name  string
		cents int64
		pct   int64
		want  int64
	}{
		{name: "ten percent off 150.00", cents: 15000, pct: 10, want: 13500},
		{name: "ten percent off 100.00", cents: 10000, pct: 10, want: 9000},
		{name: "rounds half up", cents: 5, pct: 10, want: 5},
		{name: "zero percent is identity", cents: 15000, pct: 0, want: 15000},
		{name: "hundred percent zeroes out", cents: 15000, pct: 100, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := appointment.MustMoney(tt.cents).ApplyPercentDiscount(tt.pct)
			assert.Equal(t, tt.want, got.Cents())
		})
	}
}

func TestSameUTCDay(t *testing.T) {
	base := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)

	t.Run("same calendar day", func(t *testing.T) {
		assert.True(t, appointment.SameUTCDay(base, base.Add(13*time.Hour)))
	})

	t.Run("different calendar days", func(t *testing.T) {
		assert.False(t, appointment.SameUTCDay(base, base.Add(14*time.Hour)))
	})

	t.Run("compares in UTC regardless of zone", func(t *testing.T) {
		// 23:00 on June 15 in UTC+9 is 14:00 UTC the same day
		tokyo := time.FixedZone("UTC+9", 9*3600)
		inTokyo := time.Date(2024, 6, 15, 23, 0, 0, 0, tokyo)
		assert.True(t, appointment.SameUTCDay(base, inTokyo))
	})
}
