package rebalance

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownIdentity is returned when a holding identity has no price in its price source.
	ErrUnknownIdentity = errors.New("unknown identity")
	// ErrInvalidAllocation is matched by every AllocationError.
	ErrInvalidAllocation = errors.New("invalid allocation")
	// ErrInvalidAmount is returned for a negative amount.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInsufficientHolding is returned when removing more than what is held.
	ErrInsufficientHolding = errors.New("insufficient holding")
	// ErrUnknownHolding is returned when a holding is not part of the allocation.
	ErrUnknownHolding = errors.New("unknown holding")
	// ErrInvalidPrice is returned when a holding price is zero or negative.
	ErrInvalidPrice = errors.New("invalid price")
	// ErrCurrencyMismatch is returned when holdings are priced in different currencies.
	ErrCurrencyMismatch = errors.New("currency mismatch")
)

// AllocationReason tells why an allocation was rejected.
type AllocationReason int

const (
	AllocationNegative AllocationReason = iota + 1
	AllocationSumMismatch
	AllocationDuplicate
)

func (r AllocationReason) String() string {
	switch r {
	case AllocationNegative:
		return "negative"
	case AllocationSumMismatch:
		return "sum_mismatch"
	case AllocationDuplicate:
		return "duplicate"
	default:
		return fmt.Sprintf("AllocationReason(%d)", int(r))
	}
}

// AllocationError describes an allocation that failed validation.
type AllocationError struct {
	Reason AllocationReason
	ID     string   // offending holding, empty for AllocationSumMismatch
	Value  Fraction // offending fraction, or the actual sum for AllocationSumMismatch
}

func (e *AllocationError) Error() string {
	switch e.Reason {
	case AllocationNegative:
		return fmt.Sprintf("invalid allocation (%s): %q has fraction %s", e.Reason, e.ID, e.Value)
	case AllocationSumMismatch:
		return fmt.Sprintf("invalid allocation (%s): fractions sum to %s, want exactly 100%%", e.Reason, e.Value)
	case AllocationDuplicate:
		return fmt.Sprintf("invalid allocation (%s): %q appears more than once", e.Reason, e.ID)
	default:
		return fmt.Sprintf("invalid allocation (%s)", e.Reason)
	}
}

// Is makes every AllocationError match ErrInvalidAllocation.
func (e *AllocationError) Is(target error) bool { return target == ErrInvalidAllocation }
