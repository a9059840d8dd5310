package di

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrNoDescriptors is returned by New when the descriptor set is empty.
	ErrNoDescriptors = errors.New("di: no descriptors")

	// ErrNoConstructor is the cause of a ConstructionError for a descriptor
	// without a constructor (for example a zero Descriptor).
	ErrNoConstructor = errors.New("di: missing constructor")
)

// ConstructionError is returned when a component could not be instantiated.
//
// It aborts the whole container build. Cause is one of ErrNoConstructor,
// a *PanicError, or the error returned by the constructor.
type ConstructionError struct {
	Component string
	Cause     error
}

// Error implements the error interface.
func (e *ConstructionError) Error() string {
	// Example: di: cannot construct "garage.Car": boom
	return "di: cannot construct " + strconv.Quote(e.Component) + ": " + e.Cause.Error()
}

// Unwrap returns the underlying cause.
func (e *ConstructionError) Unwrap() error { return e.Cause }

// PanicError wraps a value recovered from a panicking constructor.
type PanicError struct{ Value any }

// Error implements the error interface.
func (e *PanicError) Error() string {
	return fmt.Sprintf("constructor panicked: %v", e.Value)
}

// DuplicateDescriptorError is returned by New when two descriptors produce the
// same concrete type.
type DuplicateDescriptorError struct{ Component string }

// Error implements the error interface.
func (e *DuplicateDescriptorError) Error() string {
	// Example: di: duplicate descriptor "garage.Engine"
	return "di: duplicate descriptor " + strconv.Quote(e.Component)
}

// NotFoundError is returned by GetBean when no bean is assignable to the
// requested type.
type NotFoundError struct{ Type string }

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	// Example: di: no bean assignable to "*garage.Truck"
	return "di: no bean assignable to " + strconv.Quote(e.Type)
}

// AmbiguousBeanError is returned by GetBean when more than one bean is
// assignable to the requested type.
type AmbiguousBeanError struct {
	Type       string
	Candidates []string
}

// Error implements the error interface.
func (e *AmbiguousBeanError) Error() string {
	// Example: di: 2 beans assignable to "garage.Alarm" [garage.Horn garage.Siren]
	return "di: " + strconv.Itoa(len(e.Candidates)) + " beans assignable to " +
		strconv.Quote(e.Type) + " [" + strings.Join(e.Candidates, " ") + "]"
}

// UnresolvedSlotError is returned by New under SlotPolicyError when a slot has
// zero or several candidate beans.
type UnresolvedSlotError struct {
	Resolution Resolution
}

// Error implements the error interface.
func (e *UnresolvedSlotError) Error() string {
	r := e.Resolution
	// Example: di: slot "alarm" on "garage.Car" (garage.Alarm) is ambiguous
	return "di: slot " + strconv.Quote(r.Slot) + " on " + strconv.Quote(r.Bean) +
		" (" + r.Type + ") is " + string(r.Status)
}
