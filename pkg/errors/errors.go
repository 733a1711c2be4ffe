// Package errors provides the structured error type shared by the diagram
// primitive, the region synthesizer and the figure tool.
//
// Every error carries a machine-readable Code so callers can tell a bad input
// (DEGENERATE_INPUT, INVALID_INPUT) from a broken internal invariant
// (INVARIANT_VIOLATION) without string matching:
//
//	res, err := regions.Synthesize(sites, log)
//	if errors.Is(err, errors.ErrCodeDegenerateInput) {
//	    // caller supplied fewer than 3 sites, duplicates, or a collinear set
//	}
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code represents a machine-readable error code.
type Code string

const (
	// ErrCodeDegenerateInput marks site sets the Voronoi primitive cannot
	// turn into a proper diagram: fewer than 3 sites, duplicates, non-finite
	// coordinates or an all-collinear layout.
	ErrCodeDegenerateInput Code = "DEGENERATE_INPUT"
	// ErrCodeInvariantViolation marks an internal consistency failure, e.g.
	// a ridge pointing at a site that is not indexed.
	ErrCodeInvariantViolation Code = "INVARIANT_VIOLATION"

	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
)

// noSite marks an error that is not about a particular site.
const noSite = -1

// Error carries a Code, the site the failure was found at (if any) and the
// error that caused it.
type Error struct {
	Code    Code
	Message string
	// Site is the input index of the offending site, or -1.
	Site  int
	Cause error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Code))
	if e.Site != noSite {
		fmt.Fprintf(&b, " (site %d)", e.Site)
	}
	b.WriteString(": ")
	b.WriteString(e.Message)
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Cause }

// New returns an error that is not tied to a site.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Site: noSite}
}

// Wrap is New with an underlying cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	e := New(code, format, args...)
	e.Cause = cause
	return e
}

// AtSite returns an error found while handling site.
func AtSite(site int, code Code, format string, args ...any) *Error {
	e := New(code, format, args...)
	e.Site = site
	return e
}

func as(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}

// Is reports whether the first *Error in err's chain has code.
func Is(err error, code Code) bool {
	e, ok := as(err)
	return ok && e.Code == code
}

// GetCode returns the code of the first *Error in err's chain, or "".
func GetCode(err error) Code {
	if e, ok := as(err); ok {
		return e.Code
	}
	return ""
}

// SiteOf returns the site an error was reported at.
func SiteOf(err error) (site int, ok bool) {
	e, found := as(err)
	if !found || e.Site == noSite {
		return 0, false
	}
	return e.Site, true
}
