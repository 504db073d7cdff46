package template

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds. Every engine error wraps exactly one of these, so callers
// can classify failures with errors.Is while the message carries the
// specifics (offending token, argument count, placeholder text).
var (
	ErrSyntax        = errors.New("invalid template syntax")
	ErrUnknownField  = errors.New("unknown template field")
	ErrUnknownFilter = errors.New("unknown template filter")
	ErrArgument      = errors.New("invalid template filter argument")
)

type templateError struct {
	kind error
	msg  string
}

func (e *templateError) Error() string { return e.msg }

func (e *templateError) Unwrap() error { return e.kind }

func newError(kind error, format string, args ...any) error {
	return &templateError{kind: kind, msg: fmt.Sprintf(format, args...)}
}

// wrapPlaceholder attaches the raw placeholder text to an error so the
// caller can see which part of the template failed.
func wrapPlaceholder(raw string, err error) error {
	return fmt.Errorf("in placeholder '{%s}': %w", strings.TrimSpace(raw), err)
}
