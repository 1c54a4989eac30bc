// SPDX-License-Identifier: MIT

// Package apperrors defines the error taxonomy shared by the token engine.
package apperrors

import (
	"errors"
	"fmt"
)

// Sentinels matched through errors.Is on the typed errors below.
var (
	ErrUnknownIdentifier = errors.New("unknown identifier")
	ErrInvalidColor      = errors.New("invalid color")
	ErrApply             = errors.New("apply failed")
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrDecode            = errors.New("decode failure")
)

// UnknownIdentifierError is returned when a catalog lookup misses.
type UnknownIdentifierError struct {
	Kind string // "theme", "palette", "font", ...
	Name string
}

// NewUnknownIdentifier constructs an UnknownIdentifierError.
func NewUnknownIdentifier(kind, name string) error {
	return &UnknownIdentifierError{Kind: kind, Name: name}
}

func (e *UnknownIdentifierError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("unknown %s: %q", e.Kind, e.Name)
}

func (e *UnknownIdentifierError) Is(target error) bool {
	return target == ErrUnknownIdentifier
}

// InvalidColorError reports a malformed hex color.
type InvalidColorError struct {
	Value string
}

// NewInvalidColor constructs an InvalidColorError.
func NewInvalidColor(value string) error {
	return &InvalidColorError{Value: value}
}

func (e *InvalidColorError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("invalid color %q: want #rrggbb", e.Value)
}

func (e *InvalidColorError) Is(target error) bool {
	return target == ErrInvalidColor
}

// ApplyError wraps a failure at the style sink boundary.
type ApplyError struct {
	Key string
	Err error
}

// NewApplyError constructs an ApplyError for the given property.
func NewApplyError(key string, err error) error {
	return &ApplyError{Key: key, Err: err}
}

func (e *ApplyError) Error() string {
	if e == nil {
		return ""
	}
	if e.Key != "" {
		return fmt.Sprintf("apply error on %s: %v", e.Key, e.Err)
	}
	return fmt.Sprintf("apply error: %v", e.Err)
}

// Unwrap exposes the sink failure.
func (e *ApplyError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func (e *ApplyError) Is(target error) bool {
	return target == ErrApply
}

// UnsupportedFormatError is returned for unknown or reserved export targets.
type UnsupportedFormatError struct {
	Format   string
	Reserved bool
}

// NewUnsupportedFormat constructs an UnsupportedFormatError.
func NewUnsupportedFormat(format string, reserved bool) error {
	return &UnsupportedFormatError{Format: format, Reserved: reserved}
}

func (e *UnsupportedFormatError) Error() string {
	if e == nil {
		return ""
	}
	if e.Reserved {
		return fmt.Sprintf("unsupported format %q: reserved, not implemented", e.Format)
	}
	return fmt.Sprintf("unsupported format %q", e.Format)
}

func (e *UnsupportedFormatError) Is(target error) bool {
	return target == ErrUnsupportedFormat
}

// DecodeError describes share text that could not be parsed. The codec logs
// it and never hands it to callers as a failure.
type DecodeError struct {
	Err error
}

// NewDecodeError constructs a DecodeError.
func NewDecodeError(err error) error {
	return &DecodeError{Err: err}
}

func (e *DecodeError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("decode failure: %v", e.Err)
}

// Unwrap exposes the parse failure.
func (e *DecodeError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}
