package domain

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is matched by every rejected mutation of calculator state.
var ErrOutOfRange = errors.New("value out of range")

// RangeKind classifies why a value was rejected.
type RangeKind int

const (
	// NonPositiveDuration: a window duration of zero or fewer months.
	NonPositiveDuration RangeKind = iota + 1
	// EndBeforeStart: an end month that would give a duration of zero or fewer months.
	EndBeforeStart
	// NegativeWithdrawal: a monthly or annual withdrawal below zero.
	NegativeWithdrawal
)

func (k RangeKind) String() string {
	switch k {
	case NonPositiveDuration:
		return "duration must be positive"
	case EndBeforeStart:
		return "end month must not be earlier than start month"
	case NegativeWithdrawal:
		return "must not be less than zero"
	default:
		return "out of range"
	}
}

// Field names reported in OutOfRangeError.
const (
	FieldEndMonth          = "end_month"
	FieldDurationInMonths  = "duration_in_months"
	FieldMonthlyWithdrawal = "monthly_withdrawal"
	FieldAnnualWithdrawal  = "annual_withdrawal"
)

// OutOfRangeError reports a rejected mutation. The state it was applied to is unchanged.
type OutOfRangeError struct {
	Field string
	Kind  RangeKind
	Value string
}

func (e *OutOfRangeError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Kind)
	}
	return fmt.Sprintf("%s %s: %s", e.Field, e.Value, e.Kind)
}

// Unwrap lets errors.Is(err, ErrOutOfRange) match.
func (e *OutOfRangeError) Unwrap() error { return ErrOutOfRange }

func outOfRange(field string, kind RangeKind, value any) *OutOfRangeError {
	return &OutOfRangeError{Field: field, Kind: kind, Value: fmt.Sprint(value)}
}
