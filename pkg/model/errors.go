package model

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel targets for errors.Is. The concrete error types below carry
// the offending parameter so callers can surface it to the user.
var (
	ErrMissingParameter     = errors.New("missing parameter")
	ErrInvalidParameter     = errors.New("invalid parameter")
	ErrDimensionMismatch    = errors.New("dimension mismatch")
	ErrUnrecognizedCategory = errors.New("unrecognized category")
)

// MissingParameterError reports a required parameter with no default.
type MissingParameterError struct {
	Name string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("missing parameter: %s", e.Name)
}

func (e *MissingParameterError) Is(target error) bool { return target == ErrMissingParameter }

// InvalidParameterError reports a value outside its domain-valid range.
type InvalidParameterError struct {
	Name   string
	Value  float64
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s = %v: %s", e.Name, e.Value, e.Reason)
}

func (e *InvalidParameterError) Is(target error) bool { return target == ErrInvalidParameter }

// DimensionMismatchError reports cost series with unequal period counts.
type DimensionMismatchError struct {
	Want int
	Got  int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("dimension mismatch: %d periods vs %d", e.Want, e.Got)
}

func (e *DimensionMismatchError) Is(target error) bool { return target == ErrDimensionMismatch }

// UnrecognizedCategoryError reports a source or parameter tag outside the
// fixed vocabulary.
type UnrecognizedCategoryError struct {
	Category string
	Known    []string
}

func (e *UnrecognizedCategoryError) Error() string {
	return fmt.Sprintf("unrecognized category %q, expected one of: %s",
		e.Category, strings.Join(e.Known, ", "))
}

func (e *UnrecognizedCategoryError) Is(target error) bool { return target == ErrUnrecognizedCategory }
