// Package errors defines the static/runtime error taxonomy (spec §7) and
// renders diagnostics the way the teacher's internal/errors package
// renders CompilerError values: one line per error, source position
// first, message last.
package errors

import (
	"fmt"
	"strings"
)

// Phase distinguishes where a Diagnostic was raised, which in turn
// determines the process exit code (spec §6.2).
type Phase int

const (
	// PhaseStatic covers scan, parse, and resolve errors (exit 65).
	PhaseStatic Phase = iota
	// PhaseRuntime covers evaluation errors (exit 70).
	PhaseRuntime
)

// Kind is a specific error within a Phase's taxonomy (spec §7).
type Kind string

const (
	// Static kinds.
	UnexpectedToken          Kind = "UnexpectedToken"
	UnexpectedEOF            Kind = "UnexpectedEof"
	InvalidAssignment        Kind = "InvalidAssignment"
	TooManyArguments         Kind = "TooManyArguments"
	TooManyParameters        Kind = "TooManyParameters"
	InternalParse            Kind = "InternalParse"
	DuplicateLocal           Kind = "DuplicateLocal"
	ReadInOwnInitializer     Kind = "ReadInOwnInitializer"
	ReturnOutsideFunction    Kind = "ReturnOutsideFunction"
	ReturnValueInInitializer Kind = "ReturnValueInInitializer"
	ThisOutsideClass         Kind = "ThisOutsideClass"
	SuperOutsideSubclass     Kind = "SuperOutsideSubclass"
	InheritFromSelf          Kind = "InheritFromSelf"

	// Runtime kinds.
	UndefinedVariable     Kind = "UndefinedVariable"
	UndefinedProperty     Kind = "UndefinedProperty"
	NotCallable           Kind = "NotCallable"
	ArityMismatch         Kind = "ArityMismatch"
	TypeError             Kind = "TypeError"
	PropertyOnNonInstance Kind = "PropertyOnNonInstance"
	SuperNotClass         Kind = "SuperNotClass"
	IllegalComparison     Kind = "IllegalComparison"
)

// staticKinds is used to classify a Kind's Phase without each call site
// having to say so redundantly.
var staticKinds = map[Kind]bool{
	UnexpectedToken: true, UnexpectedEOF: true, InvalidAssignment: true,
	TooManyArguments: true, TooManyParameters: true, InternalParse: true,
	DuplicateLocal: true, ReadInOwnInitializer: true,
	ReturnOutsideFunction: true, ReturnValueInInitializer: true,
	ThisOutsideClass: true, SuperOutsideSubclass: true, InheritFromSelf: true,
}

// PhaseOf reports whether kind belongs to the static or runtime tier.
func PhaseOf(kind Kind) Phase {
	if staticKinds[kind] {
		return PhaseStatic
	}
	return PhaseRuntime
}

// Diagnostic is a single reported error: its kind, source line, and a
// human-readable detail message.
type Diagnostic struct {
	Kind    Kind
	Line    int
	Message string
}

func (d *Diagnostic) Error() string {
	return d.Format()
}

// Format renders one line per spec §6.3: "[line N] Kind: detail".
func (d *Diagnostic) Format() string {
	return fmt.Sprintf("[line %d] %s: %s", d.Line, d.Kind, d.Message)
}

// New constructs a Diagnostic.
func New(kind Kind, line int, format string, args ...any) *Diagnostic {
	return &Diagnostic{Kind: kind, Line: line, Message: fmt.Sprintf(format, args...)}
}

// FormatAll renders a batch of diagnostics, one per line, in the order
// given.
func FormatAll(diags []*Diagnostic) string {
	var sb strings.Builder
	for _, d := range diags {
		sb.WriteString(d.Format())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ExitCode maps the first diagnostic's phase to the process exit status
// spec §6.2 defines: 65 for static errors, 70 for runtime errors.
func ExitCode(diags []*Diagnostic) int {
	if len(diags) == 0 {
		return 0
	}
	if PhaseOf(diags[0].Kind) == PhaseStatic {
		return 65
	}
	return 70
}
