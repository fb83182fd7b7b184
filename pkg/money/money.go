// Package money provides validation and precise addition of monetary values.
//
// A Money is a currency code plus a two-part fixed-point magnitude: whole
// units and a fractional nanos component scaled to one billionth of a unit.
// Keeping the magnitude in two integer fields avoids the precision loss that
// floating point would introduce when quota costs are accumulated into a
// billing total.
// Invariants:
//   - Currency code is exactly 3 characters.
//   - Units and Nanos agree in sign whenever both are non-zero.
//   - |Nanos| never exceeds 999,999,999.
//
// All operations are pure functions over immutable inputs and are safe to
// call concurrently without synchronization.
package money

import (
	"fmt"
	"math"
)

const (
	// MaxNanos is the largest fractional magnitude a well-formed Money
	// may hold, one nano short of a full unit.
	MaxNanos int32 = nanosPerUnit - 1

	// MinNanos is the smallest fractional magnitude a well-formed Money
	// may hold.
	MinNanos int32 = -MaxNanos

	// nanosPerUnit is the number of nanos in one whole unit.
	nanosPerUnit int32 = 1_000_000_000
)

// Money represents a monetary value in a specific currency.
// Invariants (checked by Validate, not on construction):
//   - CurrencyCode is exactly 3 characters (e.g. an ISO 4217 alpha code;
//     the code is not checked against any currency registry).
//   - Units and Nanos must not have strictly opposite signs.
//   - Nanos stays within [MinNanos, MaxNanos].
type Money struct {
	CurrencyCode string // 3-character currency code (e.g. "USD")
	Units        int64  // whole units, may be negative
	Nanos        int32  // billionths of a unit, sign matches Units
}

// Validate reports whether m is structurally well-formed.
// Invariants enforced:
//   - Currency code must be exactly 3 characters.
//   - Units and Nanos must not have strictly opposite signs.
//   - |Nanos| must not exceed MaxNanos.
//
// Returns nil if m is valid, otherwise an error matching
// ErrInvalidCurrencyCode, ErrSignMismatch, or ErrNanosOutOfRange.
func (m Money) Validate() error {
	if len(m.CurrencyCode) != 3 {
		return fmt.Errorf("%w: %q", ErrInvalidCurrencyCode, m.CurrencyCode)
	}
	if (m.Units > 0 && m.Nanos < 0) || (m.Units < 0 && m.Nanos > 0) {
		return fmt.Errorf("%w: units=%d, nanos=%d", ErrSignMismatch, m.Units, m.Nanos)
	}
	if m.Nanos > MaxNanos || m.Nanos < MinNanos {
		return fmt.Errorf("%w: %d", ErrNanosOutOfRange, m.Nanos)
	}
	return nil
}

// Sign returns the overall sign of m: +1 if positive, -1 if negative, and
// 0 if both fields are zero. Units decide unless they are zero, in which
// case Nanos decide.
func (m Money) Sign() int {
	switch {
	case m.Units > 0:
		return 1
	case m.Units < 0:
		return -1
	case m.Nanos > 0:
		return 1
	case m.Nanos < 0:
		return -1
	default:
		return 0
	}
}

// Add returns the sum of a and b.
// Both operands are assumed well-formed (see Validate); they must share the
// same currency code or Add fails with ErrCurrencyMismatch. A sum beyond the
// representable range fails with ErrPositiveOverflow or ErrNegativeOverflow.
func Add(a, b Money) (Money, error) {
	return add(a, b, false)
}

// AddClamped returns the sum of a and b, substituting the maximum or
// minimum representable value when the true sum would overflow.
// It still fails with ErrCurrencyMismatch on differing currency codes.
func AddClamped(a, b Money) (Money, error) {
	return add(a, b, true)
}

// add sums two Money values sharing a currency.
//
// The nanos fields are summed first; a carry of one whole unit moves into
// the units sum when the nanos sum crosses a full unit in magnitude. The
// carry boundary is strictly beyond one billion, so a two-operand nanos sum
// of exactly ±1,000,000,000 takes the no-carry path. A borrow step then
// restores sign agreement between the unit and nanos sums.
//
// Overflow is detected from the operand signs and the unit sums as computed
// before the borrow: two positive operands whose unit sum wrapped negative,
// or two negative operands whose unit sum (with or without the carry)
// wrapped back to non-negative. The borrow can re-wrap a wrapped unit sum,
// so the check must not look at the borrowed value.
func add(a, b Money, allowOverflow bool) (Money, error) {
	if a.CurrencyCode != b.CurrencyCode {
		return Money{}, fmt.Errorf(
			"%w: %s and %s", ErrCurrencyMismatch, a.CurrencyCode, b.CurrencyCode)
	}

	nanoSum, carry := sumNanos(a.Nanos, b.Nanos)
	unitSumNoCarry := a.Units + b.Units
	unitSum := unitSumNoCarry + carry

	signA := a.Sign()
	signB := b.Sign()
	switch {
	case signA > 0 && signB > 0 && unitSum < 0:
		if !allowOverflow {
			return Money{}, ErrPositiveOverflow
		}
		return Money{
			CurrencyCode: a.CurrencyCode,
			Units:        math.MaxInt64,
			Nanos:        MaxNanos,
		}, nil
	case signA < 0 && signB < 0 && (unitSumNoCarry >= 0 || unitSum >= 0):
		if !allowOverflow {
			return Money{}, ErrNegativeOverflow
		}
		return Money{
			CurrencyCode: a.CurrencyCode,
			Units:        math.MinInt64,
			Nanos:        MinNanos,
		}, nil
	}

	if unitSum > 0 && nanoSum < 0 {
		unitSum--
		nanoSum += nanosPerUnit
	} else if unitSum < 0 && nanoSum > 0 {
		unitSum--
		nanoSum -= nanosPerUnit
	}

	return Money{
		CurrencyCode: a.CurrencyCode,
		Units:        unitSum,
		Nanos:        nanoSum,
	}, nil
}

// sumNanos adds two nanos fields, splitting the result into the remaining
// nanos and a carry of -1, 0 or +1 whole units. Well-formed operands sum to
// at most ±1,999,999,998, so the int32 sum cannot itself overflow.
func sumNanos(a, b int32) (sum int32, carry int64) {
	sum = a + b
	if sum > nanosPerUnit {
		carry = 1
		sum -= nanosPerUnit
	} else if sum < -nanosPerUnit {
		carry = -1
		sum += nanosPerUnit
	}
	return sum, carry
}

// String returns a fixed-point representation of m, e.g. "4.100000000 USD".
func (m Money) String() string {
	nanos := m.Nanos
	if nanos < 0 {
		nanos = -nanos
	}
	if m.Units == 0 && m.Nanos < 0 {
		return fmt.Sprintf("-0.%09d %s", nanos, m.CurrencyCode)
	}
	return fmt.Sprintf("%d.%09d %s", m.Units, nanos, m.CurrencyCode)
}
