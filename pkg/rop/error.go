package rop

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

const (
	CodeUnknown    = "error"
	CodeValidation = "validation"
	CodeCanceled   = "canceled"
)

var (
	// ErrInvalidArgument marks a programming error: a required Error was nil.
	ErrInvalidArgument = errors.New("rop: invalid argument")
	// ErrInvalidState marks a programming error: the wrong variant's payload was accessed.
	ErrInvalidState = errors.New("rop: invalid state")
)

// Kind names an Error variant.
type Kind int

const (
	KindSimple Kind = iota + 1
	KindValidation
	KindAggregate
)

func (k Kind) String() string {
	switch k {
	case KindSimple:
		return "simple"
	case KindValidation:
		return "validation"
	case KindAggregate:
		return "aggregate"
	default:
		return "unknown"
	}
}

// Error is the closed set of failures a Result can carry: *Simple,
// *Validation or *Aggregate. The marker method keeps other packages from
// adding variants.
type Error interface {
	error
	Kind() Kind
	sealed()
}

// Simple is an atomic failure.
type Simple struct {
	code    string
	message string
	cause   error
}

func NewSimple(code, message string) *Simple {
	return &Simple{code: code, message: message}
}

func (e *Simple) Code() string    { return e.code }
func (e *Simple) Message() string { return e.message }
func (e *Simple) Kind() Kind      { return KindSimple }
func (e *Simple) Unwrap() error   { return e.cause }
func (*Simple) sealed()           {}

func (e *Simple) Error() string {
	if e.code == "" {
		return e.message
	}
	return e.code + ": " + e.message
}

// FieldError is one named-field entry of a Validation.
type FieldError struct {
	Field   string
	Message string
}

func (f FieldError) String() string {
	return f.Field + ": " + f.Message
}

// Validation holds one or more field failures sharing a classification code.
type Validation struct {
	code    string
	entries []FieldError
}

// NewValidation panics with ErrInvalidArgument when no entries are given.
func NewValidation(code string, entries ...FieldError) *Validation {
	if len(entries) == 0 {
		panic(fmt.Errorf("%w: validation error needs at least one entry", ErrInvalidArgument))
	}
	return &Validation{code: code, entries: append([]FieldError(nil), entries...)}
}

// FieldInvalid is shorthand for a single-field Validation.
func FieldInvalid(code, field, message string) *Validation {
	return NewValidation(code, FieldError{Field: field, Message: message})
}

func (e *Validation) Code() string { return e.code }
func (e *Validation) Kind() Kind   { return KindValidation }
func (*Validation) sealed()        {}

// Entries returns a copy of the field entries in insertion order.
func (e *Validation) Entries() []FieldError {
	return append([]FieldError(nil), e.entries...)
}

func (e *Validation) Error() string {
	parts := make([]string, 0, len(e.entries))
	for _, f := range e.entries {
		parts = append(parts, f.String())
	}
	return e.code + ": " + strings.Join(parts, ", ")
}

// Aggregate wraps unrelated failures. Its entries are always *Simple or
// single-field *Validation values.
type Aggregate struct {
	entries []Error
}

// NewAggregate folds errs left to right through Combine. A single error is
// returned as is, nil entries are skipped and an empty call returns nil.
func NewAggregate(errs ...Error) Error {
	var acc Error
	for _, e := range errs {
		if IsNil(e) {
			continue
		}
		acc = Combine(acc, e)
	}
	return acc
}

func (e *Aggregate) Kind() Kind { return KindAggregate }
func (*Aggregate) sealed()      {}

// Entries returns a copy of the flattened entries.
func (e *Aggregate) Entries() []Error {
	return append([]Error(nil), e.entries...)
}

func (e *Aggregate) Error() string {
	parts := make([]string, 0, len(e.entries))
	for _, entry := range e.entries {
		parts = append(parts, entry.Error())
	}
	return strings.Join(parts, "; ")
}

func (e *Aggregate) Unwrap() []error {
	out := make([]error, 0, len(e.entries))
	for _, entry := range e.entries {
		out = append(out, entry)
	}
	return out
}

// Combine merges two failures. A nil left is the identity, a nil right is a
// usage error. Two Validations concatenate their entries under left's code;
// any other pair produces a flattened Aggregate. Operands are never mutated.
func Combine(left, right Error) Error {
	if IsNil(right) {
		panic(fmt.Errorf("%w: right error must not be nil", ErrInvalidArgument))
	}
	mustBeWellFormed(right)
	if IsNil(left) {
		return right
	}
	mustBeWellFormed(left)

	if lv, ok := left.(*Validation); ok {
		if rv, ok := right.(*Validation); ok {
			entries := make([]FieldError, 0, len(lv.entries)+len(rv.entries))
			entries = append(entries, lv.entries...)
			entries = append(entries, rv.entries...)
			return &Validation{code: lv.code, entries: entries}
		}
	}

	entries := flatten(nil, left)
	entries = flatten(entries, right)
	return &Aggregate{entries: entries}
}

// mustBeWellFormed rejects variants built as struct literals, which skip
// the constructors' at-least-one-entry check.
func mustBeWellFormed(err Error) {
	switch e := err.(type) {
	case *Validation:
		if len(e.entries) == 0 {
			panic(fmt.Errorf("%w: validation error without entries", ErrInvalidArgument))
		}
	case *Aggregate:
		if len(e.entries) == 0 {
			panic(fmt.Errorf("%w: aggregate error without entries", ErrInvalidArgument))
		}
	}
}

func flatten(dst []Error, err Error) []Error {
	switch e := err.(type) {
	case *Aggregate:
		return append(dst, e.entries...)
	case *Validation:
		if len(e.entries) == 1 {
			return append(dst, e)
		}
		for _, f := range e.entries {
			dst = append(dst, &Validation{code: e.code, entries: []FieldError{f}})
		}
		return dst
	case *Simple:
		return append(dst, e)
	default:
		panic(fmt.Errorf("%w: unknown error variant %T", ErrInvalidArgument, err))
	}
}

// Leaves returns the flattened entries of err: the entries of an Aggregate,
// one single-field Validation per field, or the Simple itself.
func Leaves(err Error) []Error {
	if IsNil(err) {
		return []Error{}
	}
	return flatten(nil, err)
}

// FromError converts a Go error into an Error. Values that already are an
// Error are returned unchanged, context cancellations get CodeCanceled, and
// joined errors become an Aggregate.
func FromError(err error) Error {
	if IsNil(err) {
		return nil
	}

	if e, ok := err.(Error); ok {
		return e
	}

	if IsCancellationError(err) {
		return &Simple{code: CodeCanceled, message: err.Error(), cause: err}
	}

	if parts, joined := GetErrors(err); joined {
		var acc Error
		for _, inner := range parts {
			if converted := FromError(inner); converted != nil {
				acc = Combine(acc, converted)
			}
		}
		if acc != nil {
			return acc
		}
	}

	return &Simple{code: CodeUnknown, message: err.Error(), cause: err}
}

// IsCancellationError reports whether err stems from a canceled or expired context.
func IsCancellationError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
