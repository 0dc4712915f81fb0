// Package errors is the single error toolbox used across the service. Matching
// goes through the standard library, annotation goes through pkg/errors so
// that 5xx logs carry the stack of the first wrap.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

func New(text string) error {
	return stderrors.New(text)
}

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func As(err error, target any) bool {
	return stderrors.As(err, target)
}

func Join(errs ...error) error {
	return stderrors.Join(errs...)
}

// Errorf builds a new error carrying a stack trace.
func Errorf(format string, args ...any) error {
	return pkgerrors.Errorf(format, args...)
}

// Wrap annotates err with message and records a stack trace. Wrap(nil, ...) is nil.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

// WithMessage annotates err without recording another stack trace. Use it
// when err has already been wrapped further down the call chain.
func WithMessage(err error, message string) error {
	return pkgerrors.WithMessage(err, message)
}

func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}

// Cause returns the innermost error of a pkg/errors chain, typically the
// driver error behind a store failure.
func Cause(err error) error {
	return pkgerrors.Cause(err)
}
