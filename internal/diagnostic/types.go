package diagnostic

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Diagnostics holds all diagnostic information from a run.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code classifies the failure.
	Code Code
	// Message is the human-readable description.
	Message string
	// File is the drawing or compiled file this relates to (if any).
	File string
	// Subject is the character or element this relates to (if any).
	Subject string
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code Code, message, file, subject string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity: SeverityError,
		Code:     code,
		Message:  message,
		File:     file,
		Subject:  subject,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code Code, message, file, subject string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: SeverityWarning,
		Code:     code,
		Message:  message,
		File:     file,
		Subject:  subject,
	})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
}

// Sort orders errors and warnings by file, then subject.
func (d *Diagnostics) Sort() {
	less := func(s []Diagnostic) func(i, j int) bool {
		return func(i, j int) bool {
			if s[i].File != s[j].File {
				return s[i].File < s[j].File
			}
			return s[i].Subject < s[j].Subject
		}
	}

	sort.SliceStable(d.Errors, less(d.Errors))
	sort.SliceStable(d.Warnings, less(d.Warnings))
}

// Counts returns the number of errors per code.
func (d *Diagnostics) Counts() map[Code]int {
	counts := make(map[Code]int)
	for _, e := range d.Errors {
		counts[e.Code]++
	}

	return counts
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	parts := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.File != "" {
		prefix = append(prefix, d.File)
	}

	if d.Subject != "" {
		prefix = append(prefix, "("+d.Subject+")")
	}

	msg := d.Message
	if d.Code != CodeUnknown {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}

// Report renders every diagnostic, one per line, errors first.
func (d *Diagnostics) Report() string {
	var b strings.Builder

	for _, e := range d.Errors {
		fmt.Fprintf(&b, "%s: %s\n", e.Severity, e)
	}

	for _, w := range d.Warnings {
		fmt.Fprintf(&b, "%s: %s\n", w.Severity, w)
	}

	return b.String()
}
