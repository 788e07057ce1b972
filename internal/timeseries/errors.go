package timeseries

import (
	"errors"
	"fmt"
)

var (
	// ErrUnresolvedReference is returned for an external reference to an id
	// that is not part of the evaluation.
	ErrUnresolvedReference = errors.New("unresolved reference")
	// ErrSelfReferenceAtZeroLag is returned for "$0", which would read the
	// period being computed.
	ErrSelfReferenceAtZeroLag = errors.New("self reference at zero lag")
	// ErrPeriodOutOfRange is returned when a lag points before the first period.
	ErrPeriodOutOfRange = errors.New("reference before first period")
	// ErrUnavailableValue is returned when a referenced period holds a
	// placeholder or an error instead of a number.
	ErrUnavailableValue = errors.New("referenced period has no value")
	// ErrScalarSelfReference is returned for "$n" inside a variable that is
	// only ever evaluated as a scalar.
	ErrScalarSelfReference = errors.New("internal reference in scalar value")
	// ErrSeriesInScalar is returned when a scalar value references a time
	// series, which has no single value.
	ErrSeriesInScalar = errors.New("time series referenced from scalar value")
)

// DuplicateIDError is returned when two variables share an id.
type DuplicateIDError struct {
	ID string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("duplicate variable id %q", e.ID)
}

// VariableError wraps the cause of a single variable's evaluation failure.
type VariableError struct {
	ID     string
	Period int
	Err    error
}

func (e *VariableError) Error() string {
	return fmt.Sprintf("variable %q, period %d: %v", e.ID, e.Period, e.Err)
}

func (e *VariableError) Unwrap() error {
	return e.Err
}
