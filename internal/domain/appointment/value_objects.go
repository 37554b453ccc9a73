package appointment

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Money is a currency amount in cents. Prices are always derived through the
// pricing rules, never set by callers, and integer cents keep the 2-fraction-digit
// decimal semantics exact (no float rounding artifacts).
type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errors.New("money cannot be negative")
	}
	return Money{cents: cents}, nil
}

func MustMoney(cents int64) Money {
	m, err := NewMoney(cents)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) Cents() int64 {
	return m.cents
}

// ApplyPercentDiscount returns the amount reduced by pct percent,
// rounded half up to the nearest cent.
func (m Money) ApplyPercentDiscount(pct int64) Money {
	if pct <= 0 {
		return m
	}
	if pct >= 100 {
		return Money{}
	}
	return Money{cents: (m.cents*(100-pct) + 50) / 100}
}

// String renders the amount with exactly two fraction digits, e.g. "135.00".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}

// MarshalJSON emits a plain decimal number literal so API clients see
// 135.00 rather than a quoted string or a binary float approximation.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalJSON accepts the decimal literal form, quoted or not, with at
// most two fraction digits.
func (m *Money) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	whole, frac, hasFrac := strings.Cut(s, ".")

	cents, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid money literal %q", s)
	}
	cents *= 100

	if hasFrac {
		if len(frac) == 0 || len(frac) > 2 {
			return fmt.Errorf("invalid money literal %q", s)
		}
		for _, ch := range frac {
			if ch < '0' || ch > '9' {
				return fmt.Errorf("invalid money literal %q", s)
			}
		}
		for len(frac) < 2 {
			frac += "0"
		}
		fracCents, err := strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid money literal %q", s)
		}
		cents += fracCents
	}

	parsed, err := NewMoney(cents)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// SameUTCDay reports whether both instants fall on the same UTC calendar day.
func SameUTCDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
