package neuro

import (
	"fmt"
)

// Error is a wrapper for specific types of errors for which there is no additional information
// necessary. These errors are defined as global variables, and can all be compared directly.
type Error struct{ string }

func (err Error) Error() string {
	return err.string
}

// These are the global errors that may be returned.
var (
	ErrNotConnected      = Error{"Units are not connected"}
	ErrRegisterNilReturn = Error{"Function return is nil"}
	ErrRegisterTaken     = Error{"Name is already registered"}
	ErrNegativeIter      = Error{"Iteration is negative"}
	ErrNoHidden          = Error{"Network must have at least one hidden layer"}
)

// NilArgError documents errors resulting from certain arguments provided to a function being nil.
type NilArgError struct{ string }

func (err NilArgError) Error() string {
	return err.string + " is nil"
}

// SizeMismatchError is returned whenever a vector is given whose length does not match the size
// of the layer it is meant for. Nothing is truncated or padded.
type SizeMismatchError struct {
	Expected, Got int

	// Name is what was mismatched, e.g. "inputs" or "targets"
	Name string
}

func (err SizeMismatchError) Error() string {
	return fmt.Sprintf("Size mismatch for %s: expected %d, got %d", err.Name, err.Expected, err.Got)
}

// TypeMismatchError is returned by edge operations when the peer is not a Unit of the same
// Network (including when it is nil).
type TypeMismatchError struct {
	Peer *Unit
}

func (err TypeMismatchError) Error() string {
	if err.Peer == nil {
		return "Peer is not a unit: <nil>"
	}

	return fmt.Sprintf("Peer %v is not a unit of this network", err.Peer)
}

// UnsupportedFormatError is returned when serialization is requested in a format other than the
// ones that are supported.
type UnsupportedFormatError struct {
	Format Format
}

func (err UnsupportedFormatError) Error() string {
	return fmt.Sprintf("Can only serialize as %s, not %q", FormatJSON, string(err.Format))
}

// FormatError describes a serialized network that is well-formed but does not describe a
// consistent network, e.g. a layer with the wrong number of weights.
type FormatError struct {
	Field  string
	Reason string
}

func (err FormatError) Error() string {
	return fmt.Sprintf("Bad serialized network, field %q: %s", err.Field, err.Reason)
}
