package model

import (
	"errors"
	"fmt"
)

// Defining possible error
var (
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrLengthMismatch   = errors.New("sequence length mismatch")
	ErrSequenceMismatch = errors.New("paired bases are not complementary")
)

// ParameterError reports an out-of-range or missing parameter on an edit
// call. It unwraps to ErrInvalidParameter.
type ParameterError struct {
	Field string
	Msg   string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s: %s", e.Field, e.Msg)
}

func (e *ParameterError) Unwrap() error {
	return ErrInvalidParameter
}

// LengthError reports a sequence whose length does not match the strand's
// traced position count. It unwraps to ErrLengthMismatch.
type LengthError struct {
	Want int
	Got  int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("sequence length mismatch: strand has %d positions, sequence has %d bases", e.Want, e.Got)
}

func (e *LengthError) Unwrap() error {
	return ErrLengthMismatch
}

// PairingError reports the first non-complementary paired position found
// by ValidatePairing. It unwraps to ErrSequenceMismatch.
type PairingError struct {
	Position int
	BaseA    Base
	BaseB    Base
}

func (e *PairingError) Error() string {
	return fmt.Sprintf("paired position %d is not complementary: %c vs %c", e.Position, e.BaseA, e.BaseB)
}

func (e *PairingError) Unwrap() error {
	return ErrSequenceMismatch
}
